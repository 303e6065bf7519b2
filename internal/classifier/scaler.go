package classifier

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// StandardScaler centers each feature column to zero mean and scales it to
// unit variance.
type StandardScaler struct {
	mean []float64
	std  []float64
}

// Fit learns the per-column mean and population standard deviation of X
// (divisor n, not the Bessel-corrected n-1). Zero-variance columns keep a
// scale of 1 so they pass through centered.
func (s *StandardScaler) Fit(X *mat.Dense) error {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return errors.New("cannot fit scaler on empty matrix")
	}

	s.mean = make([]float64, cols)
	s.std = make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, X)
		s.mean[j] = stat.Mean(col, nil)
		s.std[j] = stat.PopStdDev(col, nil)
		if s.std[j] == 0 {
			s.std[j] = 1
		}
	}
	return nil
}

// Transform returns a standardized copy of X.
func (s *StandardScaler) Transform(X *mat.Dense) (*mat.Dense, error) {
	if s.mean == nil {
		return nil, errors.New("scaler is not fitted")
	}
	rows, cols := X.Dims()
	if cols != len(s.mean) {
		return nil, fmt.Errorf("matrix has %d columns, scaler was fitted on %d", cols, len(s.mean))
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, (X.At(i, j)-s.mean[j])/s.std[j])
		}
	}
	return out, nil
}
