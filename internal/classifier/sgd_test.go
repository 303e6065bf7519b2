package classifier

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// separableSet builds a 1-D dataset with the negative class at lo and the
// positive class at hi.
func separableSet(n int, lo, hi float64) (*mat.Dense, []uint8) {
	data := make([]float64, 2*n)
	labels := make([]uint8, 2*n)
	for i := 0; i < n; i++ {
		data[i] = lo
		data[n+i] = hi
		labels[n+i] = 1
	}
	return mat.NewDense(2*n, 1, data), labels
}

func TestSGDLogistic_Separable(t *testing.T) {
	X, y := separableSet(100, -1, 1)

	c := NewSGDLogistic(1)
	require.NoError(t, c.Fit(X, y))

	probs, err := c.PredictProba(X)
	require.NoError(t, err)
	require.Less(t, probs[0], 0.2)
	require.Greater(t, probs[len(probs)-1], 0.8)
}

func TestSGDLogistic_Reproducible(t *testing.T) {
	X, y := separableSet(50, -1, 1)

	a := NewSGDLogistic(7)
	b := NewSGDLogistic(7)
	require.NoError(t, a.Fit(X, y))
	require.NoError(t, b.Fit(X, y))

	pa, err := a.PredictProba(X)
	require.NoError(t, err)
	pb, err := b.PredictProba(X)
	require.NoError(t, err)
	require.Equal(t, pa, pb)
}

func TestSGDLogistic_Errors(t *testing.T) {
	c := NewSGDLogistic(1)

	_, err := c.PredictProba(mat.NewDense(1, 1, []float64{1}))
	require.Error(t, err, "predict before fit")

	err = c.Fit(mat.NewDense(2, 1, []float64{1, 2}), []uint8{1})
	require.Error(t, err, "label count mismatch")
}

func TestPipeline_UnscaledFeatures(t *testing.T) {
	// Raw features far from the origin; without standardization SGD on
	// these would need a far smaller learning rate to converge.
	X, y := separableSet(100, 10000, 20000)

	p := NewPipeline(42)
	require.NoError(t, p.Fit(X, y))

	probs, err := p.PredictProba(X)
	require.NoError(t, err)
	require.Less(t, probs[0], 0.2)
	require.Greater(t, probs[len(probs)-1], 0.8)
}
