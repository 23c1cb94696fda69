// Package inventory builds the transition-and-reward model of a
// single-product, periodic-review inventory problem with Poisson demand.
//
// Each period the controller observes the inventory level s, orders a
// units, raising the order-up-to level to s+a, and then demand d is
// realised. The next state is s+a-d and the period reward is the negated
// holding-plus-backlog cost.
//
// # Truncation
//
// The demand distribution has unbounded support but the state space does
// not. For an order-up-to level oul only demands 0..[MaxDemand](oul, min)
// are enumerated; the mass of larger demands is dropped and never
// renormalised, so a pair's probabilities can sum to less than one. Use
// the analysis package to inspect how much mass each pair loses.
//
// # Example
//
//	p := inventory.Params{MinState: 0, Mu: 2, Holding: 1, Penalty: 9}
//	dyn, err := inventory.Build(mdp.Range(0, 6), mdp.Range(0, 4), p)
package inventory
