// SPDX-License-Identifier: MIT

package ga

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
)

// MinFitness is the floor applied to every fitness value. It only matters for
// tours whose every edge is a longest edge (cost == N*K), keeping the
// roulette weight strictly positive.
const MinFitness = 1e-9

// Cities is the problem instance a Chromosome is evaluated against.
// *cities.Cities satisfies it.
type Cities interface {
	// Size returns the number of cities N.
	Size() int

	// MaxDistance returns K, the largest pairwise distance between cities.
	MaxDistance() float64

	// TourCost returns the closed tour length of order (including the edge
	// from the last city back to the first).
	TourCost(order []int) float64

	// RandomPermutation returns a uniformly random permutation of 0..N-1
	// drawn from rng.
	RandomPermutation(rng *rand.Rand) []int
}

// Chromosome is one candidate tour: a permutation of the city indices plus
// its cached cost and fitness. The cache is refreshed every time the order
// changes, so Fitness never returns a stale value.
//
// Chromosome is a value type; Clone gives an independent copy. The zero
// value is not usable.
type Chromosome struct {
	cities  Cities
	order   []int
	cost    float64
	fitness float64
}

// NewChromosome returns a chromosome holding a uniformly random permutation
// of the cities, drawn from rng.
//
// Complexity: O(N).
func NewChromosome(c Cities, rng *rand.Rand) Chromosome {
	ch := Chromosome{cities: c, order: c.RandomPermutation(rng)}
	ch.evaluate()
	ch.assertValid("NewChromosome")

	return ch
}

// NewChromosomeFromOrder wraps an explicit visiting order. The slice is copied.
//
// Errors:
//   - ErrNilCities when c is nil.
//   - ErrInvalidOrder when order is not a permutation of 0..N-1.
//
// Complexity: O(N).
func NewChromosomeFromOrder(c Cities, order []int) (Chromosome, error) {
	if c == nil {
		return Chromosome{}, ErrNilCities
	}
	ch := Chromosome{cities: c, order: slices.Clone(order)}
	if !ch.IsValid() {
		return Chromosome{}, fmt.Errorf("%v: %w", order, ErrInvalidOrder)
	}
	ch.evaluate()

	return ch, nil
}

// Order returns a copy of the visiting order.
func (c Chromosome) Order() []int { return slices.Clone(c.order) }

// Len returns the number of cities in the tour.
func (c Chromosome) Len() int { return len(c.order) }

// Cost returns the closed tour length.
func (c Chromosome) Cost() float64 { return c.cost }

// Fitness returns N*K − cost, floored at MinFitness: shorter tours score
// higher and every tour scores above zero.
func (c Chromosome) Fitness() float64 { return c.fitness }

// Clone returns an independent copy sharing only the Cities collaborator.
func (c Chromosome) Clone() Chromosome {
	c.order = slices.Clone(c.order)

	return c
}

// String renders the tour and its cost.
func (c Chromosome) String() string {
	return fmt.Sprintf("%v cost=%g", c.order, c.cost)
}

// Mutate swaps the values at two positions drawn uniformly from [0, N).
// The positions may coincide, in which case the tour is unchanged.
// The deme decides when to call it; Mutate itself always mutates.
//
// Complexity: O(N) (fitness refresh).
func (c *Chromosome) Mutate(rng *rand.Rand) {
	var n = len(c.order)
	if n < 2 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n)
	c.order[i], c.order[j] = c.order[j], c.order[i]

	c.evaluate()
	c.assertValid("Mutate")
}

// Recombine produces two offspring by ordered crossover around a cut point
// k drawn uniformly from [1, N]:
//   - the first child keeps c's cities on [0,k) and fills the rest in other's order;
//   - the second child keeps other's cities on [k,N) and fills the rest in c's order.
//
// Neither parent is modified and the children are never mutated here.
// Panics if the parents have different lengths.
//
// Complexity: O(N).
func (c Chromosome) Recombine(other Chromosome, rng *rand.Rand) (Chromosome, Chromosome) {
	if len(c.order) != len(other.order) {
		panic(fmt.Sprintf("ga: Recombine: parent lengths differ (%d vs %d)", len(c.order), len(other.order)))
	}
	var n = len(c.order)
	if n == 0 {
		return c.Clone(), other.Clone()
	}

	return c.recombineAt(other, 1+rng.Intn(n))
}

// recombineAt is Recombine with a fixed cut point k ∈ [0, N].
func (c Chromosome) recombineAt(other Chromosome, k int) (Chromosome, Chromosome) {
	c.assertValid("Recombine")
	other.assertValid("Recombine")

	return crossoverChild(c, other, 0, k), crossoverChild(other, c, k, len(c.order))
}

// IsValid reports whether the order is a permutation of 0..N-1 with N taken
// from the Cities collaborator: right length, no duplicates, nothing out of range.
//
// Complexity: O(N) time and space.
func (c Chromosome) IsValid() bool {
	var n = len(c.order)
	if c.cities != nil && n != c.cities.Size() {
		return false
	}
	seen := make([]bool, n)
	for _, v := range c.order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// IsInRange reports whether value occurs in order[begin:end).
// Panics if end < begin or the range exceeds the tour.
//
// Complexity: O(end−begin).
func (c Chromosome) IsInRange(value, begin, end int) bool {
	if end < begin {
		panic(fmt.Sprintf("ga: IsInRange: end %d < begin %d", end, begin))
	}

	return slices.Contains(c.order[begin:end], value)
}

// evaluate refreshes cost and fitness from the current order.
func (c *Chromosome) evaluate() {
	var n = float64(len(c.order))
	c.cost = c.cities.TourCost(c.order)
	c.fitness = math.Max(n*c.cities.MaxDistance()-c.cost, MinFitness)
}

// assertValid panics when the permutation invariant is broken.
func (c Chromosome) assertValid(op string) {
	if !c.IsValid() {
		panic(fmt.Sprintf("ga: %s: order %v is not a permutation of 0..%d", op, c.order, len(c.order)-1))
	}
}
