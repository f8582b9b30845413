// SPDX-License-Identifier: MIT

package ga

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarizes one population snapshot.
type GenerationStats struct {
	Generation  int     // generation index (0 = initial population)
	BestCost    float64 // shortest tour in the population
	WorstCost   float64 // longest tour in the population
	MeanCost    float64
	StdDevCost  float64 // sample standard deviation; 0 for a single chromosome
	MeanFitness float64
}

// Stats computes cost and fitness statistics over the current population.
//
// Complexity: O(Size()).
func (d *Deme) Stats() GenerationStats {
	costs := make([]float64, len(d.population))
	for i := range d.population {
		costs[i] = d.population[i].cost
	}

	st := GenerationStats{
		Generation:  d.generation,
		BestCost:    floats.Min(costs),
		WorstCost:   floats.Max(costs),
		MeanFitness: stat.Mean(d.weights, nil),
	}
	if len(costs) > 1 {
		st.MeanCost, st.StdDevCost = stat.MeanStdDev(costs, nil)
	} else {
		st.MeanCost = costs[0]
	}

	return st
}
