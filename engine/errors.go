package engine

import "errors"

// ErrInvalidOperation marks programmer errors such as moving an entity that is not drag-held
var ErrInvalidOperation = errors.New("invalid operation")
