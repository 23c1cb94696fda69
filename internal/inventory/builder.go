package inventory

import "github.com/san-kum/invdyn/internal/mdp"

// MaxDemand is the largest demand enumerated for order-up-to level oul.
// It keeps oul-d >= minState. A negative result means no demand fits.
func MaxDemand(oul, minState int) int {
	return oul - minState
}

// Reward is the negated period cost for order-up-to level oul and demand d.
//
// The backlog term only contributes when d > oul. Build never enumerates
// such demands (d <= MaxDemand(oul, min) <= oul whenever min >= 0), so
// under the current bounds the term is always zero; it is kept so the
// formula stays correct if the truncation floor is ever allowed below zero.
func Reward(oul, d int, holding, penalty float64) float64 {
	onHand := float64(max(0, oul-d))
	backlog := float64(max(0, d-oul))
	return -(holding*onHand + penalty*backlog)
}

// Build enumerates the dynamics of every admissible (state, action) pair.
//
// A pair is admissible when s+a is itself a member of states. For each one
// the demands 0..MaxDemand(s+a, p.MinState) map to the outcome
// (s+a-d, Reward(s+a, d)) with probability P(D = d). Empty spaces produce
// an empty table. The returned table is owned by the caller.
func Build(states, actions mdp.Space, p Params) (mdp.Dynamics, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	demand := NewDemand(p.Mu)
	dyn := make(mdp.Dynamics)

	for _, s := range states.Values() {
		for _, a := range actions.Values() {
			oul := s + a
			if !states.Contains(oul) {
				continue
			}

			top := MaxDemand(oul, p.MinState)
			trans := make(mdp.Transitions, max(top+1, 0))
			for d := 0; d <= top; d++ {
				out := mdp.Outcome{Next: oul - d, Reward: Reward(oul, d, p.Holding, p.Penalty)}
				trans[out] = demand.PMF(d)
			}
			dyn[mdp.Pair{State: s, Action: a}] = trans
		}
	}

	return dyn, nil
}
