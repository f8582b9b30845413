// SPDX-License-Identifier: MIT

// Package ga - RNG utilities.
//
// Every random draw of a Deme (initial permutations, mutation positions,
// crossover cut points, roulette spins) comes from one *rand.Rand created
// once at construction. Nothing reads the global math/rand source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; a Deme must not be shared across
//     goroutines without external locking.
package ga

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0 (or no seed).
const DefaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
