package dist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Rander draws one variate per call. All distuv distributions satisfy it.
type Rander interface {
	Rand() float64
}

// Source adapts a Rander to the Sample(n) capability consumed by the
// family generator.
type Source struct {
	r Rander
}

// FromRander wraps an arbitrary variate source.
func FromRander(r Rander) *Source {
	return &Source{r: r}
}

// Sample draws n variates.
func (s *Source) Sample(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.r.Rand()
	}
	return out
}

// NewUniform returns a seeded uniform distribution on [low, high).
func NewUniform(low, high float64, seed uint64) *Source {
	return FromRander(distuv.Uniform{
		Min: low,
		Max: high,
		Src: rand.NewSource(seed),
	})
}

// NewNormal returns a seeded normal distribution with mean mu and standard
// deviation sigma.
func NewNormal(mu, sigma float64, seed uint64) *Source {
	return FromRander(distuv.Normal{
		Mu:    mu,
		Sigma: sigma,
		Src:   rand.NewSource(seed),
	})
}

// NewExponential returns a seeded exponential distribution with the given
// rate.
func NewExponential(rate float64, seed uint64) *Source {
	return FromRander(distuv.Exponential{
		Rate: rate,
		Src:  rand.NewSource(seed),
	})
}

// Linspace is a deterministic distribution: Sample(n) returns n evenly
// spaced values from Low to High inclusive.
type Linspace struct {
	Low  float64
	High float64
}

// NewLinspace returns evenly spaced parameters on [low, high].
func NewLinspace(low, high float64) *Linspace {
	return &Linspace{Low: low, High: high}
}

// Sample returns n evenly spaced values from Low to High.
func (l *Linspace) Sample(n int) []float64 {
	if n == 1 {
		return []float64{l.Low}
	}
	return floats.Span(make([]float64, n), l.Low, l.High)
}

// Fixed cycles through an explicit value list. Useful in tests and for
// families tiled at known parameters.
type Fixed struct {
	Values []float64
}

// NewFixed returns a distribution cycling through values.
func NewFixed(values ...float64) *Fixed {
	return &Fixed{Values: values}
}

// Sample returns n values, repeating the list as needed.
func (f *Fixed) Sample(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = f.Values[i%len(f.Values)]
	}
	return out
}
