// SPDX-License-Identifier: MIT

package ga

import "errors"

// Sentinel errors returned by constructors and the evolution loop.
// Callers match them with errors.Is; returned values may carry context via %w.
//
// Invariant violations inside Chromosome (a corrupted permutation after
// mutation or crossover) are never reported through these: they panic,
// because they indicate a bug in the operators rather than bad input.
var (
	// ErrInvalidMutationRate is returned when a mutation rate lies outside [0,1] or is NaN.
	ErrInvalidMutationRate = errors.New("ga: mutation rate must be in [0,1]")

	// ErrInvalidPopulationSize is returned when a deme would hold fewer than one chromosome.
	ErrInvalidPopulationSize = errors.New("ga: population size must be >= 1")

	// ErrNilCities is returned when no Cities collaborator is supplied.
	ErrNilCities = errors.New("ga: nil cities")

	// ErrNoCities is returned when the Cities collaborator reports zero cities.
	ErrNoCities = errors.New("ga: no cities")

	// ErrInvalidOrder is returned when an explicit tour is not a permutation of 0..N-1.
	ErrInvalidOrder = errors.New("ga: order is not a permutation of the cities")

	// ErrInvalidGenerations is returned for a negative generation budget.
	ErrInvalidGenerations = errors.New("ga: generation budget must be >= 0")
)
