package analysis

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/invdyn/internal/inventory"
	"github.com/san-kum/invdyn/internal/mdp"
)

// SweepPoint is the summary for one demand rate.
type SweepPoint struct {
	Mu      float64
	Summary Summary
}

// Sweep rebuilds the dynamics once per demand rate between muMin and muMax
// (inclusive, steps values) and summarises each table. Builds run
// concurrently, at most workers at a time; results keep the grid order.
func Sweep(
	ctx context.Context,
	logger *log.Logger,
	states, actions mdp.Space,
	base inventory.Params,
	muMin, muMax float64,
	steps, workers int,
) ([]SweepPoint, error) {
	if steps < 1 {
		return nil, fmt.Errorf("sweep: steps must be at least 1, got %d", steps)
	}
	if workers < 1 {
		workers = 1
	}

	grid := make([]float64, steps)
	for i := range grid {
		if steps == 1 {
			grid[i] = muMin
			continue
		}
		grid[i] = muMin + float64(i)*(muMax-muMin)/float64(steps-1)
	}

	points := make([]SweepPoint, steps)
	var progressMu sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rate := range grid {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p := base
			p.Mu = rate
			dyn, err := inventory.Build(states, actions, p)
			if err != nil {
				return fmt.Errorf("sweep: mu=%g: %w", rate, err)
			}
			points[i] = SweepPoint{Mu: rate, Summary: Summarize(dyn)}

			if logger != nil {
				progressMu.Lock()
				done++
				logger.Debug("sweep point done", "mu", rate, "progress", fmt.Sprintf("%d/%d", done, steps))
				progressMu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
