// SPDX-License-Identifier: MIT

package ga

import (
	"math"
	"math/rand"
)

// rouletteIndex performs one fitness-proportionate spin over weights whose
// sum is total. It draws R uniformly from [0,total), scans the weights in
// order accumulating a partial sum, and returns the first index whose
// running sum reaches R.
//
// Policy:
//   - The last index is the catch-all when rounding leaves the running sum
//     just short of R.
//   - A total that is not a positive finite number falls back to a uniform
//     draw, since a zero-weight wheel has no proportional answer.
//
// weights must be non-empty.
//
// Complexity: O(len(weights)).
func rouletteIndex(weights []float64, total float64, rng *rand.Rand) int {
	var n = len(weights)
	if !(total > 0) || math.IsInf(total, 1) {
		return rng.Intn(n)
	}

	var (
		r = rng.Float64() * total
		p float64
		i int
	)
	for i = 0; i < n; i++ {
		p += weights[i]
		if p >= r {
			return i
		}
	}

	return n - 1
}
