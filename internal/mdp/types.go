package mdp

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

type (
	State  = int
	Action = int
)

// Pair keys the outer level of a Dynamics table.
type Pair struct {
	State  State
	Action Action
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.State, p.Action)
}

// Outcome keys the inner level of a Dynamics table. Reward is compared by
// value, so -0 and +0 select the same entry.
type Outcome struct {
	Next   State
	Reward float64
}

func (o Outcome) String() string {
	return fmt.Sprintf("(%d,%g)", o.Next, o.Reward)
}

// Transitions maps each outcome of a pair to its probability mass.
type Transitions map[Outcome]float64

// Dynamics is the transition-and-reward model of a finite MDP.
type Dynamics map[Pair]Transitions

// Mass is the total probability carried by t.
func (t Transitions) Mass() float64 {
	total := 0.0
	for _, p := range t {
		total += p
	}
	return total
}

// Outcomes returns the keys of t ordered by next state, highest first.
func (t Transitions) Outcomes() []Outcome {
	keys := slices.Collect(maps.Keys(t))
	slices.SortFunc(keys, func(a, b Outcome) int {
		if c := cmp.Compare(b.Next, a.Next); c != 0 {
			return c
		}
		return cmp.Compare(a.Reward, b.Reward)
	})
	return keys
}

// Pairs returns the keys of d ordered by state then action.
func (d Dynamics) Pairs() []Pair {
	keys := slices.Collect(maps.Keys(d))
	slices.SortFunc(keys, func(a, b Pair) int {
		if c := cmp.Compare(a.State, b.State); c != 0 {
			return c
		}
		return cmp.Compare(a.Action, b.Action)
	})
	return keys
}

// NumOutcomes counts inner entries across all pairs.
func (d Dynamics) NumOutcomes() int {
	n := 0
	for _, t := range d {
		n += len(t)
	}
	return n
}

// Actions lists the admissible actions of s in ascending order.
func (d Dynamics) Actions(s State) []Action {
	var actions []Action
	for p := range d {
		if p.State == s {
			actions = append(actions, p.Action)
		}
	}
	slices.Sort(actions)
	return actions
}

// Equal reports whether d and other hold exactly the same entries.
func (d Dynamics) Equal(other Dynamics) bool {
	return maps.EqualFunc(d, other, func(a, b Transitions) bool {
		return maps.Equal(a, b)
	})
}
