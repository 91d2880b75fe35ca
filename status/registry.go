package status

import (
	"fmt"
	"sync/atomic"
)

// Registry holds named metrics published by systems and read by the debug overlay
// Systems cache pointers once; per-tick writes are plain atomic stores
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Line is one formatted metric for display
type Line struct {
	Key   string
	Value string
}

// Lines returns every metric formatted, ints first, then floats, then strings, each sorted by key
func (r *Registry) Lines() []Line {
	out := make([]Line, 0, r.Ints.Count()+r.Floats.Count()+r.Strings.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, Line{Key: key, Value: fmt.Sprintf("%d", v.Load())})
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, Line{Key: key, Value: fmt.Sprintf("%.2f", v.Get())})
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		out = append(out, Line{Key: key, Value: v.Load()})
	})
	return out
}
