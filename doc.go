// SPDX-License-Identifier: MIT

// Package demetsp is a genetic-algorithm solver for the Euclidean
// Travelling Salesperson Problem.
//
// Packages:
//
//	cities/      — the problem instance: points, distance matrix, tour cost
//	ga/          — Chromosome (tour + OX crossover + swap mutation) and Deme
//	               (roulette selection, generational replacement, Evolve)
//	matrix/      — row-major Dense storage used for pairwise distances
//	cmd/demetsp  — command-line driver
//
// A run builds a Deme over a Cities instance, advances it generation by
// generation and reads the best tour:
//
//	c, _ := cities.Random(40, 100, rand.New(rand.NewSource(1)))
//	d, _ := ga.NewDeme(c, 200, 0.05, ga.WithSeed(7))
//	res, _ := d.Evolve(context.Background(), 2000)
//	fmt.Println(res.Best.Cost(), res.Best.Order())
//
// Every random draw of a Deme comes from one seeded generator, so the same
// seed and inputs reproduce the same run.
//
//	go get github.com/katalvlaran/demetsp
package demetsp
