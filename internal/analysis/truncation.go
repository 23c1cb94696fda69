package analysis

import (
	"math"

	"github.com/san-kum/invdyn/internal/mdp"
)

// PairReport describes the transitions of one (state, action) pair.
type PairReport struct {
	Pair     mdp.Pair
	Outcomes int
	Retained float64
	Dropped  float64
	// ExpectedReward and ExpectedNext are conditional on the retained mass.
	ExpectedReward float64
	ExpectedNext   float64
}

// Truncation reports every pair of dyn in state, action order.
func Truncation(dyn mdp.Dynamics) []PairReport {
	pairs := dyn.Pairs()
	reports := make([]PairReport, 0, len(pairs))
	for _, pair := range pairs {
		reports = append(reports, ReportPair(pair, dyn[pair]))
	}
	return reports
}

func ReportPair(pair mdp.Pair, trans mdp.Transitions) PairReport {
	rep := PairReport{Pair: pair, Outcomes: len(trans)}

	var reward, next float64
	for out, p := range trans {
		rep.Retained += p
		reward += p * out.Reward
		next += p * float64(out.Next)
	}
	rep.Dropped = math.Max(0, 1-rep.Retained)

	if rep.Retained > 0 {
		rep.ExpectedReward = reward / rep.Retained
		rep.ExpectedNext = next / rep.Retained
	}
	return rep
}

// Summary aggregates a whole table.
type Summary struct {
	Pairs       int      `json:"pairs" yaml:"pairs"`
	Outcomes    int      `json:"outcomes" yaml:"outcomes"`
	MinRetained float64  `json:"min_retained" yaml:"min_retained"`
	MeanDropped float64  `json:"mean_dropped" yaml:"mean_dropped"`
	Worst       mdp.Pair `json:"worst" yaml:"worst"`
}

// Summarize returns zero values for an empty table.
func Summarize(dyn mdp.Dynamics) Summary {
	reports := Truncation(dyn)
	if len(reports) == 0 {
		return Summary{}
	}

	sum := Summary{Pairs: len(reports), MinRetained: math.Inf(1)}
	dropped := 0.0
	for _, r := range reports {
		sum.Outcomes += r.Outcomes
		dropped += r.Dropped
		if r.Retained < sum.MinRetained {
			sum.MinRetained = r.Retained
			sum.Worst = r.Pair
		}
	}
	sum.MeanDropped = dropped / float64(len(reports))
	return sum
}
