package family

import (
	"errors"
	"fmt"
)

// Function is a base function over a domain point, parameterized by extra
// scalar arguments. Implementations must be pure: the same point and
// parameters always yield the same value.
type Function func(point []float64, params ...float64) float64

// PointFunc is a member of a generated family: the base function with its
// parameter tuple bound.
type PointFunc func(point []float64) float64

// Distribution supplies parameter samples. Implementations are consumed
// read-only; Sample is called once per distribution per Generate call.
type Distribution interface {
	Sample(n int) []float64
}

var (
	// ErrNilFunction is returned when the base function is nil.
	ErrNilFunction = errors.New("family: base function must not be nil")

	// ErrInvalidCount is returned when the requested family size is below 1.
	ErrInvalidCount = errors.New("family: function count must be at least 1")
)

// ErrShortSample indicates a distribution returned fewer samples than
// requested.
type ErrShortSample struct {
	Want int
	Got  int
}

func (e *ErrShortSample) Error() string {
	return fmt.Sprintf("family: distribution returned %d samples, need %d", e.Got, e.Want)
}

// Generate builds a family of n functions from fn by sampling each
// distribution once and binding sample i of every distribution into
// function i.
//
// Parameter tuples are copied into each closure at creation time, so the
// functions stay stable regardless of later use of the loop index or the
// sample slices.
func Generate(fn Function, n int, dists ...Distribution) ([]PointFunc, error) {
	if fn == nil {
		return nil, ErrNilFunction
	}
	if n < 1 {
		return nil, ErrInvalidCount
	}

	samples := make([][]float64, len(dists))
	for i, dist := range dists {
		s := dist.Sample(n)
		if len(s) < n {
			return nil, &ErrShortSample{Want: n, Got: len(s)}
		}
		samples[i] = s
	}

	fns := make([]PointFunc, 0, n)
	for i := 0; i < n; i++ {
		// Fresh slice per function: each closure owns its parameters.
		params := make([]float64, len(samples))
		for j := range samples {
			params[j] = samples[j][i]
		}
		fns = append(fns, func(point []float64) float64 {
			return fn(point, params...)
		})
	}
	return fns, nil
}
