// SPDX-License-Identifier: MIT

package cities

import "errors"

var (
	// ErrNoCities is returned when an instance would contain zero cities.
	ErrNoCities = errors.New("cities: no cities")

	// ErrInvalidCoordinate is returned for NaN or ±Inf coordinates.
	ErrInvalidCoordinate = errors.New("cities: coordinate must be finite")

	// ErrMalformedInput is returned by Read when the stream is not a
	// sequence of "x y" number pairs.
	ErrMalformedInput = errors.New("cities: malformed input")

	// ErrInvalidSide is returned by Random for a non-positive or non-finite side.
	ErrInvalidSide = errors.New("cities: side must be finite and > 0")
)
