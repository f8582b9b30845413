// SPDX-License-Identifier: MIT

package ga

import (
	"context"
	"fmt"
)

// historyPrealloc caps the History capacity reserved up front; longer runs
// grow it by append.
const historyPrealloc = 1024

// Result is the outcome of an Evolve run.
type Result struct {
	// Best is the fittest chromosome seen in any generation of the run,
	// including the population the run started from.
	Best Chromosome

	// BestGeneration is the deme generation in which Best was observed.
	BestGeneration int

	// Generations counts the generations actually computed.
	Generations int

	// History holds one entry per observed population, starting with the
	// population the run started from (len == Generations+1).
	History []GenerationStats
}

// Evolve advances the deme by up to generations generations, tracking the
// best tour ever observed. Since demes have no elitism, Result.Best may be
// better than the final population's Best.
//
// The context is checked between generations; on cancellation Evolve
// returns the partial result together with ctx.Err().
//
// Errors:
//   - ErrInvalidGenerations for a negative budget.
//   - ctx.Err() on cancellation.
//
// Complexity: O(generations·Size()·(Size()+N)).
func (d *Deme) Evolve(ctx context.Context, generations int) (Result, error) {
	if generations < 0 {
		return Result{}, fmt.Errorf("budget %d: %w", generations, ErrInvalidGenerations)
	}

	res := Result{
		Best:           d.Best(),
		BestGeneration: d.generation,
		History:        make([]GenerationStats, 0, min(generations, historyPrealloc)+1),
	}
	res.History = append(res.History, d.Stats())

	var (
		g    int
		best Chromosome
		st   GenerationStats
	)
	for g = 0; g < generations; g++ {
		if err := ctx.Err(); err != nil {
			d.logger.Info("evolution interrupted",
				"generation", d.generation,
				"best_cost", res.Best.Cost(),
				"err", err)
			return res, err
		}

		d.ComputeNextGeneration()
		res.Generations++

		st = d.Stats()
		res.History = append(res.History, st)
		d.logger.Debug("generation",
			"generation", st.Generation,
			"best_cost", st.BestCost,
			"mean_cost", st.MeanCost,
			"stddev_cost", st.StdDevCost)

		best = d.Best()
		if best.fitness > res.Best.fitness {
			res.Best = best
			res.BestGeneration = d.generation
			d.logger.Debug("new best tour",
				"generation", d.generation,
				"cost", best.cost)
		}
	}

	d.logger.Info("evolution finished",
		"generations", res.Generations,
		"best_cost", res.Best.Cost(),
		"best_generation", res.BestGeneration)

	return res, nil
}
