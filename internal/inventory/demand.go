package inventory

import "gonum.org/v1/gonum/stat/distuv"

// Demand evaluates the Poisson probability mass function.
type Demand struct {
	dist distuv.Poisson
}

func NewDemand(mu float64) Demand {
	return Demand{dist: distuv.Poisson{Lambda: mu}}
}

// PMF returns P(D = d). It is zero for negative d.
func (d Demand) PMF(k int) float64 {
	if k < 0 {
		return 0
	}
	return d.dist.Prob(float64(k))
}

// Tail returns P(D > k), the mass lost when demands above k are dropped.
func (d Demand) Tail(k int) float64 {
	if k < 0 {
		return 1
	}
	return 1 - d.dist.CDF(float64(k))
}

func (d Demand) Mean() float64 { return d.dist.Mean() }

// PoissonPMF is a convenience wrapper around NewDemand(mu).PMF(k).
func PoissonPMF(k int, mu float64) float64 {
	return NewDemand(mu).PMF(k)
}
