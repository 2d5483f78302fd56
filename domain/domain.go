package domain

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidDimension is returned when the domain dimension is below 1.
	ErrInvalidDimension = errors.New("domain: dimension must be at least 1")

	// ErrInvalidRadius is returned when the cube radius is not positive.
	ErrInvalidRadius = errors.New("domain: radius must be positive")

	// ErrInvalidStep is returned when the step is not positive or does not
	// fit at least twice into the cube side.
	ErrInvalidStep = errors.New("domain: step must satisfy 0 < d < 2*radius")
)

// Ticks returns the axis coordinates covering [-radius, radius) with step d.
//
// The endpoint radius is excluded. Stepping is plain floating-point
// accumulation, so the count may differ by one from round(2*radius/d) for
// steps that do not divide the side exactly.
func Ticks(radius, d float64) []float64 {
	ticks := make([]float64, 0, int(2*radius/d)+1)
	for i := 0; ; i++ {
		v := -radius + float64(i)*d
		if v >= radius {
			break
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// UniformCube returns uniformly spaced points covering the hypercube
// [-radius, radius)^dim as a (nPoints, dim) matrix, one point per row.
//
// For dim == 1 the rows match Ticks(radius, d) exactly. For higher
// dimensions the rows enumerate the full Cartesian mesh of the tick axis
// with the last coordinate varying fastest.
func UniformCube(dim int, radius, d float64) (*mat.Dense, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}
	if radius <= 0 {
		return nil, ErrInvalidRadius
	}
	if d <= 0 || d >= 2*radius {
		return nil, ErrInvalidStep
	}

	ticks := Ticks(radius, d)
	n := len(ticks)

	if dim == 1 {
		points := mat.NewDense(n, 1, nil)
		for i, v := range ticks {
			points.Set(i, 0, v)
		}
		return points, nil
	}

	total := 1
	for k := 0; k < dim; k++ {
		total *= n
	}

	// Mixed-radix enumeration of the mesh: row i decomposes into one tick
	// subscript per axis, last axis fastest.
	points := mat.NewDense(total, dim, nil)
	sub := make([]int, dim)
	for i := 0; i < total; i++ {
		rem := i
		for j := dim - 1; j >= 0; j-- {
			sub[j] = rem % n
			rem /= n
		}
		for j := 0; j < dim; j++ {
			points.Set(i, j, ticks[sub[j]])
		}
	}
	return points, nil
}
