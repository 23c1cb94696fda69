package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/invdyn/internal/analysis"
	"github.com/san-kum/invdyn/internal/inventory"
)

// PlotRetained charts retained probability mass across pairs in report
// order.
func PlotRetained(reports []analysis.PairReport) string {
	if len(reports) == 0 {
		return ""
	}

	data := make([]float64, len(reports))
	for i, r := range reports {
		data[i] = r.Retained
	}

	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Precision(3),
		asciigraph.Caption("retained mass per (s,a) pair"),
	)
}

// PlotDemand charts P(D = d) for d in 0..maxDemand.
func PlotDemand(mu float64, maxDemand int) string {
	if maxDemand < 0 {
		return ""
	}

	demand := inventory.NewDemand(mu)
	data := make([]float64, maxDemand+1)
	for d := range data {
		data[d] = demand.PMF(d)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("poisson pmf, mu=%g", mu)),
	)
}

func PlotSweep(points []analysis.SweepPoint) string {
	if len(points) == 0 {
		return ""
	}

	retained := make([]float64, len(points))
	dropped := make([]float64, len(points))
	for i, p := range points {
		retained[i] = p.Summary.MinRetained
		dropped[i] = p.Summary.MeanDropped
	}

	return asciigraph.PlotMany([][]float64{retained, dropped},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Precision(3),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("min retained (green) / mean dropped (red), mu %g..%g",
			points[0].Mu, points[len(points)-1].Mu)),
	)
}
