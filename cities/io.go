// SPDX-License-Identifier: MIT

package cities

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
)

// Read parses whitespace-separated "x y" coordinate pairs, one city per pair,
// in index order. Line breaks carry no meaning; "1 2 3 4" is two cities.
//
// Errors:
//   - ErrMalformedInput for unparsable numbers or a dangling coordinate.
//   - ErrNoCities for an empty stream.
//   - Errors from New and from the underlying reader.
func Read(r io.Reader) (*Cities, error) {
	var (
		sc     = bufio.NewScanner(r)
		coords []float64
		tok    string
		v      float64
		err    error
	)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tok = sc.Text()
		if v, err = strconv.ParseFloat(tok, 64); err != nil {
			return nil, fmt.Errorf("token %d %q: %w", len(coords), tok, ErrMalformedInput)
		}
		coords = append(coords, v)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("cities: read: %w", err)
	}
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("dangling coordinate after %d cities: %w", len(coords)/2, ErrMalformedInput)
	}

	pts := make([]Point, len(coords)/2)
	for i := range pts {
		pts[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}

	return New(pts)
}

// Write emits one "x y" line per city, in a format Read accepts.
func (c *Cities) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range c.points {
		if _, err := fmt.Fprintf(bw, "%s %s\n",
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Random places n cities uniformly in the square [0,side)×[0,side).
//
// Errors: ErrNoCities for n<1, ErrInvalidSide for a bad side.
func Random(n int, side float64, rng *rand.Rand) (*Cities, error) {
	if n < 1 {
		return nil, ErrNoCities
	}
	if !finite(side) || side <= 0 {
		return nil, ErrInvalidSide
	}

	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: rng.Float64() * side, Y: rng.Float64() * side}
	}

	return New(pts)
}
