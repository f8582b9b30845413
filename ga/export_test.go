// SPDX-License-Identifier: MIT

package ga

import "math/rand"

// Test bridge: exposes unexported operators to ga_test only.

// CrossoverChild exposes the OX operator with an explicit window.
func CrossoverChild(p1, p2 Chromosome, b, e int) Chromosome {
	return crossoverChild(p1, p2, b, e)
}

// RecombineAt exposes recombination with a fixed cut point.
func RecombineAt(c, other Chromosome, k int) (Chromosome, Chromosome) {
	return c.recombineAt(other, k)
}

// RouletteIndex exposes one roulette spin over explicit weights.
func RouletteIndex(weights []float64, total float64, rng *rand.Rand) int {
	return rouletteIndex(weights, total, rng)
}

// SetPopulation replaces the population with copies of pop.
func (d *Deme) SetPopulation(pop []Chromosome) {
	cp := make([]Chromosome, len(pop))
	for i := range pop {
		cp[i] = pop[i].Clone()
	}
	d.setPopulation(cp)
}
