package status

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	a := m.Get("tick")
	b := m.Get("tick")
	if a != b {
		t.Error("Expected same pointer for repeated Get")
	}
	if !m.Has("tick") {
		t.Error("Expected Has to report registered key")
	}
	if m.Has("other") {
		t.Error("Expected Has false for unknown key")
	}
	if m.Count() != 1 {
		t.Errorf("Expected count 1, got %d", m.Count())
	}
}

func TestRegistryLinesSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("field.entities").Store(3)
	r.Ints.Get("anim.active").Store(1)
	r.Floats.Get("tick.ms").Set(0.5)
	r.Strings.Get("discovery.last").Store("Energy")

	lines := r.Lines()
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}

	expected := []Line{
		{"anim.active", "1"},
		{"field.entities", "3"},
		{"tick.ms", "0.50"},
		{"discovery.last", "Energy"},
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("Line %d: expected %+v, got %+v", i, want, lines[i])
		}
	}
}

func TestAtomicStringTruncatesRunes(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected zero value to be empty")
	}

	long := strings.Repeat("Ж", MaxStringLen+5)
	s.Store(long)
	got := s.Load()
	if !utf8.ValidString(got) {
		t.Fatal("Expected valid UTF-8 after truncation")
	}
	if n := utf8.RuneCountInString(got); n != MaxStringLen {
		t.Errorf("Expected %d runes, got %d", MaxStringLen, n)
	}
}
