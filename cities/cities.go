// SPDX-License-Identifier: MIT

// Package cities holds a Euclidean TSP instance: a fixed set of 2-D points,
// their precomputed pairwise distance matrix, and the tour helpers a solver
// needs (closed tour cost, longest edge, uniform random permutations).
//
// Design:
//   - Distances are computed once at construction into a *matrix.Dense and
//     checked for symmetry before the instance is handed out.
//   - Costs are rounded to 1e-9 to avoid cross-platform FP drift.
//   - Randomness is always drawn from a caller-supplied *rand.Rand.
package cities

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/demetsp/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// Point is a city location in the plane.
type Point struct {
	X, Y float64
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Cities is an immutable set of cities with precomputed distances.
// A *Cities is safe for concurrent reads.
type Cities struct {
	points  []Point
	dist    *matrix.Dense
	maxDist float64
}

// New builds a Cities instance from points. The slice is copied.
//
// Errors:
//   - ErrNoCities when points is empty.
//   - ErrInvalidCoordinate when a coordinate is NaN or ±Inf.
//
// Complexity: O(n²) time and space.
func New(points []Point) (*Cities, error) {
	if len(points) == 0 {
		return nil, ErrNoCities
	}

	var (
		n   = len(points)
		i   int
		j   int
		d   float64
		err error
	)
	for i = 0; i < n; i++ {
		if !finite(points[i].X) || !finite(points[i].Y) {
			return nil, fmt.Errorf("city %d %v: %w", i, points[i], ErrInvalidCoordinate)
		}
	}

	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y)
			if err = dist.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = dist.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	if err = matrix.ValidateSymmetric(dist, 0); err != nil {
		return nil, fmt.Errorf("cities: distance matrix: %w", err)
	}

	return &Cities{
		points:  append([]Point(nil), points...),
		dist:    dist,
		maxDist: dist.Max(),
	}, nil
}

// Size returns the number of cities. Complexity: O(1).
func (c *Cities) Size() int { return len(c.points) }

// Point returns the location of city i; it panics if i is out of range.
func (c *Cities) Point(i int) Point { return c.points[i] }

// Points returns a copy of all city locations in index order.
func (c *Cities) Points() []Point { return append([]Point(nil), c.points...) }

// Distance returns the Euclidean distance between cities i and j.
//
// Errors: matrix.ErrOutOfRange (wrapped) for invalid indices.
// Complexity: O(1).
func (c *Cities) Distance(i, j int) (float64, error) {
	return c.dist.At(i, j)
}

// MaxDistance returns K, the largest pairwise distance between any two
// cities (0 for a single city or all-coincident points).
// Complexity: O(1).
func (c *Cities) MaxDistance() float64 { return c.maxDist }

// TourCost returns the length of the closed tour visiting order in sequence
// and returning to order[0]. Empty and single-city orders cost 0.
//
// Contract:
//   - order must contain only indices in [0, Size()). A bad index is a caller
//     bug and panics.
//
// Complexity: O(n).
func (c *Cities) TourCost(order []int) float64 {
	var (
		n   = len(order)
		sum float64
		i   int
		w   float64
		err error
	)
	if n < 2 {
		return 0
	}
	for i = 0; i < n; i++ {
		w, err = c.dist.At(order[i], order[(i+1)%n])
		if err != nil {
			panic(fmt.Sprintf("cities: TourCost: %v", err))
		}
		sum += w
	}

	return round1e9(sum)
}

// RandomPermutation returns a uniformly random permutation of 0..Size()-1
// drawn from rng (Fisher–Yates).
//
// Complexity: O(n) time, O(n) space.
func (c *Cities) RandomPermutation(rng *rand.Rand) []int {
	return permRange(len(c.points), rng)
}

// permRange returns a shuffled permutation of 0..n-1.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)

	var i, j int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
