package classifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestStandardScaler(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 10,
		3, 10,
		4, 10,
	})

	var s StandardScaler
	require.NoError(t, s.Fit(X))

	out, err := s.Transform(X)
	require.NoError(t, err)

	// First column standardizes to zero mean; the zero-variance second
	// column is centered but not scaled.
	var sum float64
	for i := 0; i < 4; i++ {
		sum += out.At(i, 0)
		require.Equal(t, 0.0, out.At(i, 1))
	}
	require.InDelta(t, 0.0, sum, 1e-12)
	require.InDelta(t, out.At(3, 0), -out.At(0, 0), 1e-12)
}

func TestStandardScaler_PopulationStd(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})

	var s StandardScaler
	require.NoError(t, s.Fit(X))

	out, err := s.Transform(X)
	require.NoError(t, err)

	// The scale is the population deviation sqrt(5/4), not the sample
	// deviation sqrt(5/3).
	require.InDelta(t, -1.5/math.Sqrt(1.25), out.At(0, 0), 1e-12)
}

func TestStandardScaler_NotFitted(t *testing.T) {
	var s StandardScaler
	_, err := s.Transform(mat.NewDense(1, 2, []float64{1, 2}))
	require.Error(t, err)
}

func TestStandardScaler_ColumnMismatch(t *testing.T) {
	var s StandardScaler
	require.NoError(t, s.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})))

	_, err := s.Transform(mat.NewDense(2, 3, nil))
	require.Error(t, err)
}
