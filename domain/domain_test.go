package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/funcspace/domain"
)

func TestTicks(t *testing.T) {
	ticks := domain.Ticks(1, 0.1)
	require.Len(t, ticks, 20)

	assert.InDelta(t, -1.0, ticks[0], 1e-12)
	assert.InDelta(t, 0.9, ticks[len(ticks)-1], 1e-9)
	for i := 1; i < len(ticks); i++ {
		assert.InDelta(t, 0.1, ticks[i]-ticks[i-1], 1e-9)
	}
}

func TestUniformCube(t *testing.T) {
	tests := []struct {
		name     string
		dim      int
		radius   float64
		d        float64
		wantRows int
	}{
		{"Dim1", 1, 1, 0.1, 20},
		{"Dim2", 2, 1, 0.1, 400},
		{"Dim3", 3, 1, 0.1, 8000},
		{"WideCube", 1, 2, 0.5, 8},
		{"TwoPerAxis", 2, 1, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := domain.UniformCube(tt.dim, tt.radius, tt.d)
			require.NoError(t, err)

			rows, cols := points.Dims()
			assert.Equal(t, tt.wantRows, rows)
			assert.Equal(t, tt.dim, cols)

			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					v := points.At(i, j)
					assert.GreaterOrEqual(t, v, -tt.radius)
					assert.Less(t, v, tt.radius)
				}
			}
		})
	}
}

func TestUniformCubeOrdering(t *testing.T) {
	// Two ticks per axis: rows must enumerate the mesh with the last axis
	// varying fastest.
	points, err := domain.UniformCube(2, 1, 1)
	require.NoError(t, err)

	want := [][]float64{
		{-1, -1},
		{-1, 0},
		{0, -1},
		{0, 0},
	}
	for i, row := range want {
		for j, v := range row {
			assert.InDelta(t, v, points.At(i, j), 1e-12, "row %d col %d", i, j)
		}
	}
}

func TestUniformCubeMatchesTicks(t *testing.T) {
	points, err := domain.UniformCube(1, 1, 0.05)
	require.NoError(t, err)

	ticks := domain.Ticks(1, 0.05)
	rows, _ := points.Dims()
	require.Equal(t, len(ticks), rows)
	for i, v := range ticks {
		assert.Equal(t, v, points.At(i, 0))
	}
}

func TestUniformCubeValidation(t *testing.T) {
	tests := []struct {
		name    string
		dim     int
		radius  float64
		d       float64
		wantErr error
	}{
		{"ZeroDim", 0, 1, 0.1, domain.ErrInvalidDimension},
		{"NegativeDim", -2, 1, 0.1, domain.ErrInvalidDimension},
		{"ZeroRadius", 1, 0, 0.1, domain.ErrInvalidRadius},
		{"NegativeRadius", 1, -1, 0.1, domain.ErrInvalidRadius},
		{"ZeroStep", 1, 1, 0, domain.ErrInvalidStep},
		{"StepTooLarge", 1, 1, 2, domain.ErrInvalidStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.UniformCube(tt.dim, tt.radius, tt.d)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
