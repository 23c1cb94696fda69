package mdp

import (
	"slices"
	"testing"
)

func TestSpace_Constructors(t *testing.T) {
	tests := []struct {
		name  string
		space Space
		want  []int
	}{
		{"range", Range(0, 6), []int{0, 1, 2, 3, 4, 5}},
		{"empty range", Range(3, 3), []int{}},
		{"reversed range", Range(5, 1), []int{}},
		{"interval", Interval(-2, 1), []int{-2, -1, 0, 1}},
		{"dedup and sort", NewSpace(3, 1, 3, 2), []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.space.Values()
			if !slices.Equal(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
				t.Errorf("Values() = %v, want %v", got, tt.want)
			}
			if tt.space.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", tt.space.Len(), len(tt.want))
			}
		})
	}
}

func TestSpace_Contains(t *testing.T) {
	s := NewSpace(0, 2, 4)
	for _, v := range []int{0, 2, 4} {
		if !s.Contains(v) {
			t.Errorf("expected %d in space", v)
		}
	}
	for _, v := range []int{-1, 1, 3, 5} {
		if s.Contains(v) {
			t.Errorf("did not expect %d in space", v)
		}
	}

	var zero Space
	if zero.Contains(0) {
		t.Error("zero space should contain nothing")
	}
}

func TestSpace_Bounds(t *testing.T) {
	s := Interval(-3, 7)
	if v, ok := s.Min(); !ok || v != -3 {
		t.Errorf("Min() = %d, %v", v, ok)
	}
	if v, ok := s.Max(); !ok || v != 7 {
		t.Errorf("Max() = %d, %v", v, ok)
	}

	if _, ok := NewSpace().Min(); ok {
		t.Error("empty space should have no min")
	}
	if !NewSpace().Empty() {
		t.Error("expected empty")
	}
}

func TestSpace_ValuesIsCopy(t *testing.T) {
	s := Range(0, 3)
	v := s.Values()
	v[0] = 99
	if s.Contains(99) || s.Values()[0] != 0 {
		t.Error("Values() must not alias internal storage")
	}
}

func TestSpace_String(t *testing.T) {
	if got := Range(0, 6).String(); got != "[0..5]" {
		t.Errorf("got %q", got)
	}
	if got := NewSpace(1, 5).String(); got != "[1 5]" {
		t.Errorf("got %q", got)
	}
	if got := NewSpace().String(); got != "{}" {
		t.Errorf("got %q", got)
	}
}
