package funcspace

import (
	"context"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/funcspace/domain"
	"github.com/hupe1980/funcspace/family"
)

// FunctionSpace owns a discretized domain, the sample matrix of a generated
// function family, and the truncated orthonormal basis derived from it.
//
// All fields except the current basis selection are immutable after
// construction. The aggregate is not safe for concurrent mutation:
// SelectTopBasis is a plain write.
type FunctionSpace struct {
	domain  *mat.Dense // (nPoints, domainDim) grid, one point per row
	samples *mat.Dense // (nPoints, nFunctions) family evaluations
	u       *mat.Dense // thin left singular vectors (nPoints, rank)
	s       []float64  // singular values, descending, full length
	basis   *mat.Dense // u[:, :nBasis] / sqrt(dx)
	dx      float64    // discrete volume element, step^domainDim
	step    float64
	radius  float64
	nBasis  int
	logger  *Logger
}

// New constructs a FunctionSpace from a base function, the dimension of its
// domain, and one parameter distribution per extra argument of fn.
//
// Construction discretizes the hypercube [-radius, radius)^domainDim,
// generates the function family, evaluates it on every grid point, and runs
// a thin SVD on the resulting sample matrix. The basis is the first nBasis
// left singular vectors scaled by 1/sqrt(dx), which makes its columns
// orthonormal under the dx-weighted discrete inner product. Right singular
// vectors are never computed.
func New(ctx context.Context, fn family.Function, domainDim int, dists []family.Distribution, opts ...Option) (*FunctionSpace, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	points, err := domain.UniformCube(domainDim, o.radius, o.step)
	if err != nil {
		return nil, err
	}

	fns, err := family.Generate(fn, o.numFunctions, dists...)
	if err != nil {
		return nil, err
	}

	evalStart := time.Now()
	samples, err := family.ValuesContext(ctx, fns, points, o.parallelism)
	if err != nil {
		return nil, err
	}
	evalDur := time.Since(evalStart)

	// The volume element follows the configured step and the grid's column
	// count, not the observed coordinate spacing.
	_, cols := points.Dims()
	dx := math.Pow(o.step, float64(cols))

	svdStart := time.Now()
	var svd mat.SVD
	if ok := svd.Factorize(samples, mat.SVDThinU); !ok {
		return nil, ErrSVDFailed
	}
	var u mat.Dense
	svd.UTo(&u)
	s := svd.Values(nil)
	svdDur := time.Since(svdStart)

	fs := &FunctionSpace{
		domain:  points,
		samples: samples,
		u:       &u,
		s:       s,
		dx:      dx,
		step:    o.step,
		radius:  o.radius,
		logger:  o.logger,
	}
	if err := fs.SelectTopBasis(o.numBasis); err != nil {
		return nil, err
	}

	rows, _ := points.Dims()
	fs.logger.WithDomain(rows, cols).Info("function space built",
		"n_functions", o.numFunctions,
		"n_basis", o.numBasis,
		"eval_duration", evalDur,
		"svd_duration", svdDur,
	)
	return fs, nil
}

// SelectTopBasis changes the number of basis functions in place by
// re-slicing the stored singular vectors. The SVD is never recomputed.
//
// n must lie in [1, rank] where rank is the number of available singular
// vectors; out-of-range values return *ErrBasisOutOfRange.
func (fs *FunctionSpace) SelectTopBasis(n int) error {
	rows, rank := fs.u.Dims()
	if n < 1 || n > rank {
		return &ErrBasisOutOfRange{Requested: n, Available: rank}
	}

	var basis mat.Dense
	basis.Scale(1/math.Sqrt(fs.dx), fs.u.Slice(0, rows, 0, n))
	fs.basis = &basis
	fs.nBasis = n
	return nil
}

// Basis returns the current (nPoints, nBasis) basis view. Columns are
// orthonormal under the dx-weighted inner product: Bᵀ B * dx ≈ I.
func (fs *FunctionSpace) Basis() *mat.Dense {
	return fs.basis
}

// SingularValues returns the singular values of the sample matrix in
// descending order. The full sequence is returned regardless of the current
// truncation; the slice is a copy and safe to retain.
func (fs *FunctionSpace) SingularValues() []float64 {
	return append([]float64(nil), fs.s...)
}

// Domain returns the (nPoints, domainDim) grid the family was evaluated on.
func (fs *FunctionSpace) Domain() *mat.Dense {
	return fs.domain
}

// Samples returns the (nPoints, nFunctions) sample matrix.
func (fs *FunctionSpace) Samples() *mat.Dense {
	return fs.samples
}

// Dx returns the discrete volume element step^domainDim.
func (fs *FunctionSpace) Dx() float64 {
	return fs.dx
}

// NumBasis returns the current number of basis functions.
func (fs *FunctionSpace) NumBasis() int {
	return fs.nBasis
}

// Reconstruct maps coefficients back into function-sample space as the
// linear combination basis @ coeffs. coeffs must have nBasis rows; shape
// mismatches panic in the underlying multiply, matching gonum semantics.
func (fs *FunctionSpace) Reconstruct(coeffs mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Mul(fs.basis, coeffs)
	return &out
}

// EncoderCoeffs projects every generated function onto the current basis:
// samplesᵀ @ basis * dx, the discrete approximation of ∫ fnᵢ(x) bⱼ(x) dx.
// Shape: (nFunctions, nBasis).
func (fs *FunctionSpace) EncoderCoeffs() *mat.Dense {
	var out mat.Dense
	out.Mul(fs.samples.T(), fs.basis)
	out.Scale(fs.dx, &out)
	return &out
}

// SignalCoeffs projects a signal, or a batch of signals stacked as columns,
// onto the current basis: signalᵀ @ basis * dx.
//
// A single-signal input (one column, e.g. a *mat.VecDense of length
// nPoints) collapses to a *mat.VecDense of length nBasis. A batch of m
// columns returns a (m, nBasis) *mat.Dense. Downstream code relies on the
// collapse, so it is part of the contract.
func (fs *FunctionSpace) SignalCoeffs(signal mat.Matrix) mat.Matrix {
	var out mat.Dense
	out.Mul(signal.T(), fs.basis)
	out.Scale(fs.dx, &out)
	if rows, _ := out.Dims(); rows == 1 {
		return mat.NewVecDense(fs.nBasis, append([]float64(nil), out.RawRowView(0)...))
	}
	return &out
}
