package funcspace_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/funcspace"
	"github.com/hupe1980/funcspace/dist"
	"github.com/hupe1980/funcspace/family"
)

func gaussian(point []float64, params ...float64) float64 {
	d := point[0] - params[0]
	return math.Exp(-d * d / 0.08)
}

// testSpace builds a small deterministic 1-D space: 40 grid points,
// 30 Gaussians with evenly spaced centers, 5 basis functions.
func testSpace(t *testing.T, opts ...funcspace.Option) *funcspace.FunctionSpace {
	t.Helper()

	base := []funcspace.Option{
		funcspace.WithNumFunctions(30),
		funcspace.WithNumBasis(5),
		funcspace.WithStep(0.05),
	}
	space, err := funcspace.New(context.Background(), gaussian, 1,
		[]family.Distribution{dist.NewLinspace(-1, 1)},
		append(base, opts...)...,
	)
	require.NoError(t, err)
	return space
}

func TestNewShapes(t *testing.T) {
	space := testSpace(t)

	rows, cols := space.Basis().Dims()
	assert.Equal(t, 40, rows)
	assert.Equal(t, 5, cols)
	assert.Equal(t, 5, space.NumBasis())

	sRows, sCols := space.Samples().Dims()
	assert.Equal(t, 40, sRows)
	assert.Equal(t, 30, sCols)

	s := space.SingularValues()
	require.Len(t, s, 30)
	for i := 1; i < len(s); i++ {
		assert.LessOrEqual(t, s[i], s[i-1])
		assert.GreaterOrEqual(t, s[i], 0.0)
	}
}

func TestBasisOrthonormality(t *testing.T) {
	space := testSpace(t)
	basis := space.Basis()

	var gram mat.Dense
	gram.Mul(basis.T(), basis)
	gram.Scale(space.Dx(), &gram)

	n, _ := gram.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, gram.At(i, j), 1e-9, "gram(%d,%d)", i, j)
		}
	}
}

func TestCoefficientRoundTrip(t *testing.T) {
	space := testSpace(t)

	c := mat.NewVecDense(5, []float64{1, -0.5, 0.25, 2, -1.5})
	signal := space.Reconstruct(c)

	got := space.SignalCoeffs(signal)
	vec, ok := got.(*mat.VecDense)
	require.True(t, ok, "single signal must collapse to a vector")
	require.Equal(t, 5, vec.Len())

	for i := 0; i < vec.Len(); i++ {
		assert.InDelta(t, c.AtVec(i), vec.AtVec(i), 1e-9)
	}
}

func TestSelectTopBasis(t *testing.T) {
	space := testSpace(t)

	original := mat.DenseCopyOf(space.Basis())
	sBefore := space.SingularValues()

	require.NoError(t, space.SelectTopBasis(3))

	truncated := space.Basis()
	rows, cols := truncated.Dims()
	assert.Equal(t, 40, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 3, space.NumBasis())

	// Exactly the first columns of the original basis, not recomputed.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Equal(t, original.At(i, j), truncated.At(i, j))
		}
	}

	// Singular values are unaffected by truncation.
	assert.Equal(t, sBefore, space.SingularValues())

	// Growing back within rank works from the stored singular vectors.
	require.NoError(t, space.SelectTopBasis(10))
	_, cols = space.Basis().Dims()
	assert.Equal(t, 10, cols)
}

func TestSelectTopBasisOutOfRange(t *testing.T) {
	space := testSpace(t)

	tests := []struct {
		name string
		n    int
	}{
		{"Zero", 0},
		{"Negative", -1},
		{"BeyondRank", 31}, // rank = min(40 points, 30 functions)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := space.SelectTopBasis(tt.n)
			var oor *funcspace.ErrBasisOutOfRange
			require.ErrorAs(t, err, &oor)
			assert.Equal(t, tt.n, oor.Requested)
			assert.Equal(t, 30, oor.Available)
		})
	}
}

func TestSignalCoeffsBatch(t *testing.T) {
	space := testSpace(t)

	// Three signals stacked as columns stay a matrix, one per row.
	batch := mat.NewDense(40, 3, nil)
	for j := 0; j < 40; j++ {
		x := space.Domain().At(j, 0)
		batch.Set(j, 0, math.Sin(x))
		batch.Set(j, 1, math.Cos(x))
		batch.Set(j, 2, x*x)
	}

	got := space.SignalCoeffs(batch)
	dense, ok := got.(*mat.Dense)
	require.True(t, ok, "batch input must stay a matrix")

	rows, cols := dense.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 5, cols)
}

func TestEncoderCoeffs(t *testing.T) {
	space := testSpace(t)

	coeffs := space.EncoderCoeffs()
	rows, cols := coeffs.Dims()
	assert.Equal(t, 30, rows)
	assert.Equal(t, 5, cols)

	// With most of the spectrum kept, reconstructing the family from its
	// own coefficients recovers the sample matrix closely.
	require.NoError(t, space.SelectTopBasis(20))
	coeffs = space.EncoderCoeffs()

	approx := space.Reconstruct(coeffs.T())
	samples := space.Samples()
	var maxErr float64
	for j := 0; j < 40; j++ {
		for i := 0; i < 30; i++ {
			maxErr = math.Max(maxErr, math.Abs(approx.At(j, i)-samples.At(j, i)))
		}
	}
	assert.Less(t, maxErr, 0.01)
}

func TestScenarioDim1(t *testing.T) {
	space := testSpace(t, funcspace.WithStep(0.1))

	rows, cols := space.Domain().Dims()
	require.Equal(t, 20, rows)
	require.Equal(t, 1, cols)

	assert.InDelta(t, -1.0, space.Domain().At(0, 0), 1e-12)
	assert.InDelta(t, 0.9, space.Domain().At(19, 0), 1e-9)
	assert.InDelta(t, 0.1, space.Dx(), 1e-15)
}

func TestVolumeElementDim2(t *testing.T) {
	plane := func(point []float64, params ...float64) float64 {
		return params[0]*point[0] + params[1]*point[1]
	}

	space, err := funcspace.New(context.Background(), plane, 2,
		[]family.Distribution{
			dist.NewLinspace(-1, 1),
			dist.NewLinspace(1, 2),
		},
		funcspace.WithNumFunctions(10),
		funcspace.WithNumBasis(2),
		funcspace.WithStep(0.2),
	)
	require.NoError(t, err)

	rows, cols := space.Domain().Dims()
	assert.Equal(t, 100, rows)
	assert.Equal(t, 2, cols)
	assert.InDelta(t, 0.04, space.Dx(), 1e-15)
}

func TestParallelMatchesSerial(t *testing.T) {
	serial := testSpace(t)
	parallel := testSpace(t, funcspace.WithParallelism(4))

	assert.Equal(t,
		serial.Samples().RawMatrix().Data,
		parallel.Samples().RawMatrix().Data,
	)
}

func TestConstantFamily(t *testing.T) {
	constant := func([]float64, ...float64) float64 { return 1 }

	space, err := funcspace.New(context.Background(), constant, 1,
		[]family.Distribution{dist.NewUniform(-1, 1, 42)},
		funcspace.WithNumFunctions(10),
		funcspace.WithNumBasis(1),
		funcspace.WithStep(0.1),
	)
	require.NoError(t, err)

	samples := space.Samples()
	rows, cols := samples.Dims()
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			assert.Equal(t, 1.0, samples.At(j, i))
		}
	}

	// Rank-one family: one dominant singular value, the rest ~0.
	s := space.SingularValues()
	assert.Greater(t, s[0], 1.0)
	for _, v := range s[1:] {
		assert.InDelta(t, 0, v, 1e-9)
	}
}

func TestFromSnapshot(t *testing.T) {
	space := testSpace(t)
	snap := space.Snapshot()

	restored, err := funcspace.FromSnapshot(snap)
	require.NoError(t, err)

	assert.Equal(t, space.Dx(), restored.Dx())
	assert.Equal(t, space.NumBasis(), restored.NumBasis())
	assert.Equal(t, space.SingularValues(), restored.SingularValues())
	assert.Equal(t, space.Basis().RawMatrix().Data, restored.Basis().RawMatrix().Data)

	// Projections agree exactly.
	c := mat.NewVecDense(5, []float64{1, 2, 3, 4, 5})
	want := space.SignalCoeffs(space.Reconstruct(c)).(*mat.VecDense)
	got := restored.SignalCoeffs(restored.Reconstruct(c)).(*mat.VecDense)
	assert.Equal(t, want.RawVector().Data, got.RawVector().Data)
}

func TestFromSnapshotValidation(t *testing.T) {
	space := testSpace(t)

	corrupt := func(mutate func(*funcspace.Snapshot)) error {
		snap := space.Snapshot()
		mutate(snap)
		_, err := funcspace.FromSnapshot(snap)
		return err
	}

	tests := []struct {
		name   string
		mutate func(*funcspace.Snapshot)
	}{
		{"ZeroDim", func(s *funcspace.Snapshot) { s.DomainDim = 0 }},
		{"BadStep", func(s *funcspace.Snapshot) { s.Step = 0 }},
		{"TruncatedDomain", func(s *funcspace.Snapshot) { s.Domain = s.Domain[:1] }},
		{"TruncatedSamples", func(s *funcspace.Snapshot) { s.Samples = s.Samples[:5] }},
		{"TruncatedU", func(s *funcspace.Snapshot) { s.U = s.U[:5] }},
		{"ShortSingularValues", func(s *funcspace.Snapshot) { s.SingularValues = s.SingularValues[:2] }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := corrupt(tt.mutate)
			assert.True(t, errors.Is(err, funcspace.ErrInvalidSnapshot), "got %v", err)
		})
	}

	t.Run("BasisOutOfRange", func(t *testing.T) {
		err := corrupt(func(s *funcspace.Snapshot) { s.NumBasis = 99 })
		var oor *funcspace.ErrBasisOutOfRange
		assert.ErrorAs(t, err, &oor)
	})
}

func TestNewValidation(t *testing.T) {
	t.Run("NilFunction", func(t *testing.T) {
		_, err := funcspace.New(context.Background(), nil, 1, nil)
		assert.ErrorIs(t, err, family.ErrNilFunction)
	})

	t.Run("BadDimension", func(t *testing.T) {
		_, err := funcspace.New(context.Background(), gaussian, 0,
			[]family.Distribution{dist.NewLinspace(-1, 1)})
		assert.Error(t, err)
	})

	t.Run("BasisBeyondRank", func(t *testing.T) {
		_, err := funcspace.New(context.Background(), gaussian, 1,
			[]family.Distribution{dist.NewLinspace(-1, 1)},
			funcspace.WithNumFunctions(10),
			funcspace.WithNumBasis(11),
			funcspace.WithStep(0.1),
		)
		var oor *funcspace.ErrBasisOutOfRange
		assert.ErrorAs(t, err, &oor)
	})
}
