// SPDX-License-Identifier: MIT
// Package ga_test provides helpers shared across *_test.go files in this
// package: deterministic instances, a tiny fake Cities and a permutation
// enumerator.
package ga_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/demetsp/cities"
	"github.com/katalvlaran/demetsp/ga"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the deterministic seed used by tests that need a generator.
	seedDet = int64(20240601)

	// rectOptimum is the perimeter of the 3×4 rectangle from rect().
	rectOptimum = 14.0
)

// rect returns the 3×4 rectangle 0:(0,0) 1:(3,0) 2:(3,4) 3:(0,4).
// Its tours cost 14 (perimeter), 16 or 18.
func rect(t testing.TB) *cities.Cities {
	t.Helper()
	c, err := cities.New([]cities.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}, {X: 0, Y: 4}})
	require.NoError(t, err)

	return c
}

// ring returns n cities on a gently rippled circle (no cost ties between
// rotations and reflections are required by callers).
func ring(t testing.TB, n int) *cities.Cities {
	t.Helper()
	pts := make([]cities.Point, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 10 + 0.7*float64((i*5)%7)
		pts[i] = cities.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}
	c, err := cities.New(pts)
	require.NoError(t, err)

	return c
}

func newRNG() *rand.Rand { return rand.New(rand.NewSource(seedDet)) }

// fromOrder wraps an explicit order, failing the test on error.
func fromOrder(t testing.TB, c ga.Cities, order ...int) ga.Chromosome {
	t.Helper()
	ch, err := ga.NewChromosomeFromOrder(c, order)
	require.NoError(t, err)

	return ch
}

// weightedPair is a two-city fake whose tour cost depends on the first city
// visited, so fitness is 1 for tours starting at 0 and 3 for tours starting
// at 1 (N*K = 2*2 = 4).
type weightedPair struct{}

var _ ga.Cities = weightedPair{}

func (weightedPair) Size() int            { return 2 }
func (weightedPair) MaxDistance() float64 { return 2 }
func (weightedPair) TourCost(order []int) float64 {
	if order[0] == 0 {
		return 3
	}

	return 1
}
func (weightedPair) RandomPermutation(*rand.Rand) []int { return []int{0, 1} }

// emptyCities reports zero cities.
type emptyCities struct{ weightedPair }

func (emptyCities) Size() int { return 0 }

// permutations returns every permutation of 0..n-1 (n! entries).
func permutations(n int) [][]int {
	var (
		out  [][]int
		cur  = make([]int, 0, n)
		used = make([]bool, n)
		rec  func()
	)
	rec = func() {
		if len(cur) == n {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			cur = append(cur, v)
			rec()
			cur = cur[:len(cur)-1]
			used[v] = false
		}
	}
	rec()

	return out
}

// isPermutation reports whether order is a permutation of 0..n-1.
func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
