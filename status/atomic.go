package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen is the maximum rune count kept by AtomicString
const MaxStringLen = 32

// AtomicFloat stores a float64 as bits; zero value is 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// AtomicString stores a string truncated to MaxStringLen runes; zero value is ""
// Truncation respects rune boundaries, element names are not ASCII-only
type AtomicString struct {
	ptr atomic.Pointer[string]
}

func (s *AtomicString) Store(val string) {
	if utf8.RuneCountInString(val) > MaxStringLen {
		n := 0
		for i := range val {
			if n == MaxStringLen {
				val = val[:i]
				break
			}
			n++
		}
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
