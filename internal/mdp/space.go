package mdp

import (
	"fmt"
	"slices"
)

// Space is an ordered, de-duplicated set of integers.
type Space struct {
	values []int
	index  map[int]struct{}
}

func NewSpace(values ...int) Space {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	index := make(map[int]struct{}, len(sorted))
	for _, v := range sorted {
		index[v] = struct{}{}
	}
	return Space{values: sorted, index: index}
}

// Range returns the half-open interval [lo, hi).
func Range(lo, hi int) Space {
	if hi <= lo {
		return NewSpace()
	}
	values := make([]int, 0, hi-lo)
	for v := lo; v < hi; v++ {
		values = append(values, v)
	}
	return NewSpace(values...)
}

// Interval returns the closed interval [lo, hi].
func Interval(lo, hi int) Space {
	return Range(lo, hi+1)
}

func (s Space) Contains(v int) bool {
	_, ok := s.index[v]
	return ok
}

func (s Space) Len() int { return len(s.values) }

func (s Space) Empty() bool { return len(s.values) == 0 }

// Values returns a copy of the members in ascending order.
func (s Space) Values() []int {
	return slices.Clone(s.values)
}

// Min returns the smallest member. ok is false for an empty space.
func (s Space) Min() (v int, ok bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	return s.values[0], true
}

func (s Space) Max() (v int, ok bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	return s.values[len(s.values)-1], true
}

func (s Space) String() string {
	if len(s.values) == 0 {
		return "{}"
	}
	lo, hi := s.values[0], s.values[len(s.values)-1]
	if hi-lo+1 == len(s.values) {
		return fmt.Sprintf("[%d..%d]", lo, hi)
	}
	return fmt.Sprint(s.values)
}
