// SPDX-License-Identifier: MIT

package ga

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Deme is a fixed-size population of chromosomes evolved together.
//
// Each generation is built completely in a fresh buffer and only then
// swapped in, so readers never observe a half-replaced population. The
// population owns its chromosomes by value; callers only ever receive copies.
//
// There is no elitism: the best chromosome of a generation may be lost in
// the next one. Evolve tracks the best-ever tour across generations.
//
// A Deme is not safe for concurrent use.
type Deme struct {
	cities       Cities
	mutationRate float64
	population   []Chromosome
	weights      []float64 // weights[i] == population[i].Fitness()
	totalWeight  float64
	generation   int
	rng          *rand.Rand
	logger       *slog.Logger
}

// NewDeme builds a deme of popSize independently random chromosomes.
//
// Errors:
//   - ErrNilCities, ErrNoCities for a missing or empty instance.
//   - ErrInvalidPopulationSize when popSize < 1.
//   - ErrInvalidMutationRate when mutationRate ∉ [0,1] (NaN included).
//
// Complexity: O(popSize·N).
func NewDeme(c Cities, popSize int, mutationRate float64, opts ...Option) (*Deme, error) {
	if c == nil {
		return nil, ErrNilCities
	}
	if math.IsNaN(mutationRate) || mutationRate < 0 || mutationRate > 1 {
		return nil, fmt.Errorf("mutation rate %v: %w", mutationRate, ErrInvalidMutationRate)
	}
	if popSize < 1 {
		return nil, fmt.Errorf("population size %d: %w", popSize, ErrInvalidPopulationSize)
	}
	if c.Size() < 1 {
		return nil, ErrNoCities
	}

	o := gatherOptions(opts...)
	d := &Deme{
		cities:       c,
		mutationRate: mutationRate,
		rng:          o.rng,
		logger:       o.logger,
	}

	pop := make([]Chromosome, popSize)
	for i := range pop {
		pop[i] = NewChromosome(c, d.rng)
	}
	d.setPopulation(pop)

	return d, nil
}

// Size returns the (constant) population size.
func (d *Deme) Size() int { return len(d.population) }

// Generation returns how many generations have replaced the initial population.
func (d *Deme) Generation() int { return d.generation }

// MutationRate returns the per-parent mutation probability.
func (d *Deme) MutationRate() float64 { return d.mutationRate }

// Population returns independent copies of the current chromosomes in
// population order.
func (d *Deme) Population() []Chromosome {
	out := make([]Chromosome, len(d.population))
	for i := range d.population {
		out[i] = d.population[i].Clone()
	}

	return out
}

// ComputeNextGeneration replaces the whole population with offspring:
//
//  1. Select two parents independently by roulette (with replacement) and
//     take private copies of them.
//  2. Mutate each copy with probability MutationRate.
//  3. Recombine the copies into two children and append them to the buffer.
//  4. Repeat until the buffer holds Size() children, then swap it in.
//
// For an odd population the second child of the final pairing is dropped,
// so the size never changes.
//
// Complexity: O(Size()·(Size()+N)).
func (d *Deme) ComputeNextGeneration() {
	var (
		n    = len(d.population)
		next = make([]Chromosome, 0, n)
	)
	for len(next) < n {
		p1 := d.population[d.selectIndex()].Clone()
		p2 := d.population[d.selectIndex()].Clone()
		d.maybeMutate(&p1)
		d.maybeMutate(&p2)

		c1, c2 := p1.Recombine(p2, d.rng)
		next = append(next, c1)
		if len(next) < n {
			next = append(next, c2)
		}
	}

	d.setPopulation(next)
	d.generation++
}

// SelectParent picks a chromosome by fitness-proportionate (roulette-wheel)
// selection and returns a copy of it.
//
// Complexity: O(Size()+N).
func (d *Deme) SelectParent() Chromosome {
	return d.population[d.selectIndex()].Clone()
}

// Best returns a copy of the fittest chromosome; ties go to the earliest in
// population order. The copy stays valid after the deme moves on.
//
// Complexity: O(Size()+N).
func (d *Deme) Best() Chromosome {
	return d.population[d.bestIndex()].Clone()
}

func (d *Deme) bestIndex() int {
	var best int
	for i := 1; i < len(d.population); i++ {
		if d.population[i].fitness > d.population[best].fitness {
			best = i
		}
	}

	return best
}

func (d *Deme) selectIndex() int {
	return rouletteIndex(d.weights, d.totalWeight, d.rng)
}

func (d *Deme) maybeMutate(c *Chromosome) {
	if d.rng.Float64() < d.mutationRate {
		c.Mutate(d.rng)
	}
}

// setPopulation installs pop and refreshes the cached roulette weights.
func (d *Deme) setPopulation(pop []Chromosome) {
	weights := make([]float64, len(pop))
	for i := range pop {
		weights[i] = pop[i].fitness
	}
	d.population = pop
	d.weights = weights
	d.totalWeight = floats.Sum(weights)
}
