package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/invdyn/internal/inventory"
	"github.com/san-kum/invdyn/internal/mdp"
)

func buildSmall(t *testing.T) mdp.Dynamics {
	t.Helper()
	dyn, err := inventory.Build(mdp.Range(0, 6), mdp.Range(0, 4),
		inventory.Params{MinState: 0, Mu: 2, Holding: 1, Penalty: 9})
	require.NoError(t, err)
	return dyn
}

func TestReportPair(t *testing.T) {
	trans := mdp.Transitions{
		{Next: 2, Reward: -2}: 0.5,
		{Next: 0, Reward: 0}:  0.25,
	}
	rep := ReportPair(mdp.Pair{State: 1, Action: 1}, trans)

	assert.Equal(t, 2, rep.Outcomes)
	assert.InDelta(t, 0.75, rep.Retained, 1e-12)
	assert.InDelta(t, 0.25, rep.Dropped, 1e-12)
	assert.InDelta(t, -1.0/0.75, rep.ExpectedReward, 1e-12)
	assert.InDelta(t, 1.0/0.75, rep.ExpectedNext, 1e-12)
}

func TestReportPair_Empty(t *testing.T) {
	rep := ReportPair(mdp.Pair{}, mdp.Transitions{})
	assert.Zero(t, rep.Retained)
	assert.Equal(t, 1.0, rep.Dropped)
	assert.Zero(t, rep.ExpectedReward)
}

func TestTruncation_MatchesPoissonTail(t *testing.T) {
	dyn := buildSmall(t)
	demand := inventory.NewDemand(2)

	reports := Truncation(dyn)
	require.Len(t, reports, len(dyn))
	assert.Equal(t, mdp.Pair{State: 0, Action: 0}, reports[0].Pair)

	for _, r := range reports {
		oul := r.Pair.State + r.Pair.Action
		assert.Equal(t, oul+1, r.Outcomes)
		assert.InDelta(t, demand.Tail(oul), r.Dropped, 1e-9, "pair %v", r.Pair)
	}
}

func TestSummarize(t *testing.T) {
	dyn := buildSmall(t)
	sum := Summarize(dyn)

	assert.Equal(t, 18, sum.Pairs)
	assert.Equal(t, dyn.NumOutcomes(), sum.Outcomes)
	assert.Equal(t, mdp.Pair{State: 0, Action: 0}, sum.Worst)
	assert.InDelta(t, math.Exp(-2), sum.MinRetained, 1e-12)
	assert.Greater(t, sum.MeanDropped, 0.0)
	assert.Less(t, sum.MeanDropped, 1.0)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(mdp.Dynamics{}))
}

func TestSweep(t *testing.T) {
	base := inventory.Params{MinState: 0, Holding: 1, Penalty: 9}
	points, err := Sweep(context.Background(), nil, mdp.Range(0, 6), mdp.Range(0, 4), base, 1, 3, 5, 2)
	require.NoError(t, err)
	require.Len(t, points, 5)

	for i, want := range []float64{1, 1.5, 2, 2.5, 3} {
		assert.InDelta(t, want, points[i].Mu, 1e-12)
		assert.Equal(t, 18, points[i].Summary.Pairs)
	}

	// Higher demand pushes more mass past the floor.
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i].Summary.MinRetained, points[i-1].Summary.MinRetained)
	}

	direct, err := inventory.Build(mdp.Range(0, 6), mdp.Range(0, 4),
		inventory.Params{MinState: 0, Mu: 2, Holding: 1, Penalty: 9})
	require.NoError(t, err)
	assert.Equal(t, Summarize(direct), points[2].Summary)
}

func TestSweep_SinglePoint(t *testing.T) {
	base := inventory.Params{Holding: 1, Penalty: 9}
	points, err := Sweep(context.Background(), nil, mdp.Range(0, 3), mdp.Range(0, 2), base, 4, 10, 1, 0)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 4.0, points[0].Mu)
}

func TestSweep_Errors(t *testing.T) {
	base := inventory.Params{Holding: 1, Penalty: 9}

	_, err := Sweep(context.Background(), nil, mdp.Range(0, 3), mdp.Range(0, 2), base, 1, 2, 0, 1)
	assert.Error(t, err)

	_, err = Sweep(context.Background(), nil, mdp.Range(0, 3), mdp.Range(0, 2), base, -1, 2, 3, 1)
	assert.ErrorIs(t, err, inventory.ErrDemandRate)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Sweep(ctx, nil, mdp.Range(0, 3), mdp.Range(0, 2), base, 1, 2, 3, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
