package inventory

import "math"

// Params are the scalar inputs of the dynamics model.
type Params struct {
	// MinState is the truncation floor: no next state may fall below it.
	MinState int
	// Mu is the Poisson demand rate.
	Mu float64
	// Holding is the unit cost of inventory left over after demand.
	Holding float64
	// Penalty is the unit cost of backlogged demand.
	Penalty float64
}

func (p Params) Validate() error {
	if !(p.Mu > 0) || math.IsInf(p.Mu, 0) {
		return &ParamError{Field: "mu", Value: p.Mu, Wrapped: ErrDemandRate}
	}
	if !(p.Holding >= 0) || math.IsInf(p.Holding, 0) {
		return &ParamError{Field: "holding", Value: p.Holding, Wrapped: ErrNegativeCost}
	}
	if !(p.Penalty >= 0) || math.IsInf(p.Penalty, 0) {
		return &ParamError{Field: "penalty", Value: p.Penalty, Wrapped: ErrNegativeCost}
	}
	return nil
}
