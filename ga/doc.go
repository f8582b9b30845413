// SPDX-License-Identifier: MIT

// Package ga evolves tours for the Euclidean Travelling Salesperson Problem
// with a generational genetic algorithm.
//
// A Chromosome is a permutation of city indices with a cached cost and
// fitness. Its operators are:
//
//   - Mutate:    swap two uniformly chosen positions.
//   - Recombine: ordered crossover (OX) around a random cut point, giving
//     two children that are always valid permutations.
//
// Fitness maps cost to a positive roulette weight: N*K − cost, where N is
// the number of cities and K the longest pairwise distance, so shorter
// tours weigh more.
//
// A Deme is a fixed-size population. ComputeNextGeneration picks parent
// pairs by fitness-proportionate selection, mutates each parent copy with
// the deme's mutation rate, recombines them and swaps the offspring in as
// the next population. Evolve runs a generation budget and keeps the best
// tour seen.
//
// All randomness flows from one *rand.Rand per Deme (see WithSeed and
// WithRand), so runs are reproducible.
//
//	c, _ := cities.Random(50, 100, rand.New(rand.NewSource(1)))
//	d, _ := ga.NewDeme(c, 200, 0.05, ga.WithSeed(42))
//	res, _ := d.Evolve(ctx, 1000)
//	fmt.Println(res.Best.Cost(), res.Best.Order())
package ga
