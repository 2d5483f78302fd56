package funcspace

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Snapshot is the serializable state of a built FunctionSpace. It carries
// the full singular vectors, so restoring never re-runs the SVD.
//
// Matrices are stored row-major. The snapshot package wraps this type in a
// self-describing compressed file format.
type Snapshot struct {
	DomainDim      int       `json:"domain_dim"`
	Radius         float64   `json:"radius"`
	Step           float64   `json:"step"`
	NumPoints      int       `json:"n_points"`
	NumFunctions   int       `json:"n_functions"`
	Rank           int       `json:"rank"`
	NumBasis       int       `json:"n_basis"`
	Domain         []float64 `json:"domain"`
	Samples        []float64 `json:"samples"`
	U              []float64 `json:"u"`
	SingularValues []float64 `json:"singular_values"`
}

// Snapshot captures the current state of the space, including its current
// truncation. All slices are copies.
func (fs *FunctionSpace) Snapshot() *Snapshot {
	nPoints, domainDim := fs.domain.Dims()
	_, nFunctions := fs.samples.Dims()
	_, rank := fs.u.Dims()

	return &Snapshot{
		DomainDim:      domainDim,
		Radius:         fs.radius,
		Step:           fs.step,
		NumPoints:      nPoints,
		NumFunctions:   nFunctions,
		Rank:           rank,
		NumBasis:       fs.nBasis,
		Domain:         rawCopy(fs.domain),
		Samples:        rawCopy(fs.samples),
		U:              rawCopy(fs.u),
		SingularValues: fs.SingularValues(),
	}
}

// FromSnapshot rebuilds a FunctionSpace from a snapshot without recomputing
// the SVD. Only WithLogger is honored among the options; the numeric state
// comes entirely from the snapshot.
func FromSnapshot(snap *Snapshot, opts ...Option) (*FunctionSpace, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := snap.validate(); err != nil {
		return nil, err
	}

	fs := &FunctionSpace{
		domain:  mat.NewDense(snap.NumPoints, snap.DomainDim, append([]float64(nil), snap.Domain...)),
		samples: mat.NewDense(snap.NumPoints, snap.NumFunctions, append([]float64(nil), snap.Samples...)),
		u:       mat.NewDense(snap.NumPoints, snap.Rank, append([]float64(nil), snap.U...)),
		s:       append([]float64(nil), snap.SingularValues...),
		dx:      math.Pow(snap.Step, float64(snap.DomainDim)),
		step:    snap.Step,
		radius:  snap.Radius,
		logger:  o.logger,
	}
	if err := fs.SelectTopBasis(snap.NumBasis); err != nil {
		return nil, err
	}

	fs.logger.WithDomain(snap.NumPoints, snap.DomainDim).Info("function space restored",
		"n_functions", snap.NumFunctions,
		"n_basis", snap.NumBasis,
	)
	return fs, nil
}

func (s *Snapshot) validate() error {
	switch {
	case s.DomainDim < 1:
		return fmt.Errorf("%w: domain dimension %d", ErrInvalidSnapshot, s.DomainDim)
	case s.Step <= 0:
		return fmt.Errorf("%w: step %v", ErrInvalidSnapshot, s.Step)
	case s.NumPoints < 1 || s.NumFunctions < 1 || s.Rank < 1:
		return fmt.Errorf("%w: empty dimensions", ErrInvalidSnapshot)
	case len(s.Domain) != s.NumPoints*s.DomainDim:
		return fmt.Errorf("%w: domain has %d values, want %d", ErrInvalidSnapshot, len(s.Domain), s.NumPoints*s.DomainDim)
	case len(s.Samples) != s.NumPoints*s.NumFunctions:
		return fmt.Errorf("%w: samples have %d values, want %d", ErrInvalidSnapshot, len(s.Samples), s.NumPoints*s.NumFunctions)
	case len(s.U) != s.NumPoints*s.Rank:
		return fmt.Errorf("%w: singular vectors have %d values, want %d", ErrInvalidSnapshot, len(s.U), s.NumPoints*s.Rank)
	case len(s.SingularValues) != s.Rank:
		return fmt.Errorf("%w: %d singular values, want %d", ErrInvalidSnapshot, len(s.SingularValues), s.Rank)
	}
	return nil
}

func rawCopy(m *mat.Dense) []float64 {
	raw := m.RawMatrix()
	if raw.Stride == raw.Cols {
		return append([]float64(nil), raw.Data[:raw.Rows*raw.Cols]...)
	}
	out := make([]float64, 0, raw.Rows*raw.Cols)
	for i := 0; i < raw.Rows; i++ {
		out = append(out, m.RawRowView(i)...)
	}
	return out
}
