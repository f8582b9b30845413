// SPDX-License-Identifier: MIT

package ga_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/demetsp/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvolve_NegativeBudget(t *testing.T) {
	d, err := ga.NewDeme(rect(t), 4, 0.1)
	require.NoError(t, err)

	_, err = d.Evolve(context.Background(), -1)
	require.ErrorIs(t, err, ga.ErrInvalidGenerations)
}

func TestEvolve_ZeroBudget(t *testing.T) {
	d, err := ga.NewDeme(ring(t, 6), 4, 0.1, ga.WithSeed(seedDet))
	require.NoError(t, err)

	res, err := d.Evolve(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, res.Generations)
	assert.Len(t, res.History, 1)
	assert.Equal(t, d.Best().Order(), res.Best.Order())
}

func TestEvolve_CancelledContext(t *testing.T) {
	d, err := ga.NewDeme(ring(t, 8), 6, 0.1, ga.WithSeed(seedDet))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := d.Evolve(ctx, 50)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Generations)
	assert.Zero(t, d.Generation())
	assert.True(t, res.Best.IsValid())
}

// TestEvolve_HugeBudget runs with the largest budget the API accepts; a
// cancelled context must stop it before any generation is computed.
func TestEvolve_HugeBudget(t *testing.T) {
	d, err := ga.NewDeme(ring(t, 8), 6, 0.1, ga.WithSeed(seedDet))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var res ga.Result
	require.NotPanics(t, func() { res, err = d.Evolve(ctx, math.MaxInt) })
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Generations)
	assert.Len(t, res.History, 1)
	assert.LessOrEqual(t, cap(res.History), 1025)
}

// TestEvolve_BestNeverRegresses checks the best-ever bookkeeping against the
// recorded history.
func TestEvolve_BestNeverRegresses(t *testing.T) {
	d, err := ga.NewDeme(ring(t, 14), 20, 0.05, ga.WithSeed(seedDet))
	require.NoError(t, err)

	res, err := d.Evolve(context.Background(), 60)
	require.NoError(t, err)
	require.Len(t, res.History, 61)

	minCost := res.History[0].BestCost
	for i, st := range res.History {
		require.Equal(t, i, st.Generation)
		if st.BestCost < minCost {
			minCost = st.BestCost
		}
	}
	assert.Equal(t, minCost, res.Best.Cost())
	assert.Equal(t, minCost, res.History[res.BestGeneration].BestCost)
}

func TestEvolve_LogsThroughInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	d, err := ga.NewDeme(ring(t, 6), 4, 0.1, ga.WithSeed(seedDet), ga.WithLogger(logger))
	require.NoError(t, err)

	_, err = d.Evolve(context.Background(), 3)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, `"msg":"generation"`))
	assert.Equal(t, 1, strings.Count(out, `"msg":"evolution finished"`))
}

func TestStats(t *testing.T) {
	c := rect(t)
	d, err := ga.NewDeme(c, 3, 0, ga.WithSeed(seedDet))
	require.NoError(t, err)
	d.SetPopulation([]ga.Chromosome{
		fromOrder(t, c, 0, 1, 2, 3), // 14
		fromOrder(t, c, 0, 1, 3, 2), // 16
		fromOrder(t, c, 0, 2, 1, 3), // 18
	})

	st := d.Stats()
	assert.Equal(t, 0, st.Generation)
	assert.InDelta(t, 14.0, st.BestCost, 1e-12)
	assert.InDelta(t, 18.0, st.WorstCost, 1e-12)
	assert.InDelta(t, 16.0, st.MeanCost, 1e-12)
	assert.InDelta(t, 2.0, st.StdDevCost, 1e-12)
	assert.InDelta(t, 20.0-16.0, st.MeanFitness, 1e-12) // N*K = 4*5

	d.SetPopulation([]ga.Chromosome{fromOrder(t, c, 0, 1, 2, 3)})
	st = d.Stats()
	assert.Zero(t, st.StdDevCost)
	assert.InDelta(t, 14.0, st.MeanCost, 1e-12)
}
