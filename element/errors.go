package element

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig matches every *ConfigError through errors.Is
var ErrInvalidConfig = errors.New("invalid element configuration")

// ConfigError reports a malformed or self-inconsistent element document
// It is fatal at startup
type ConfigError struct {
	Source string // File path or "<memory>"
	Field  string // Offending field, e.g. "elements[3].name" or "combinations[Air+Foo]"
	Reason string
	Err    error // Underlying decode error, if any
}

func (e *ConfigError) Error() string {
	msg := e.Source
	if e.Field != "" {
		msg += ": " + e.Field
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidConfig) hold for any ConfigError
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func configErrorf(source, field, format string, args ...any) *ConfigError {
	return &ConfigError{Source: source, Field: field, Reason: fmt.Sprintf(format, args...)}
}
