package classifier

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SGDLogistic is a binary logistic regression classifier trained with
// stochastic gradient descent on log loss.
type SGDLogistic struct {
	// Epochs is the number of full passes over the training data.
	Epochs int

	// Eta0 is the initial learning rate; each update uses
	// eta0 / (1 + eta0*alpha*t), an inverse-scaling schedule.
	Eta0 float64

	// Alpha is the L2 regularization strength.
	Alpha float64

	// Seed drives the shuffle order, making fits reproducible.
	Seed int64

	weights []float64
	bias    float64
}

// NewSGDLogistic returns a classifier with the default training schedule.
func NewSGDLogistic(seed int64) *SGDLogistic {
	return &SGDLogistic{
		Epochs: 5,
		Eta0:   0.1,
		Alpha:  1e-4,
		Seed:   seed,
	}
}

// Fit trains the model on X (one row per sample) and binary labels y.
func (c *SGDLogistic) Fit(X *mat.Dense, y []uint8) error {
	rows, cols := X.Dims()
	if rows == 0 {
		return errors.New("cannot fit on empty training set")
	}
	if len(y) != rows {
		return fmt.Errorf("got %d labels for %d samples", len(y), rows)
	}

	c.weights = make([]float64, cols)
	c.bias = 0

	rng := rand.New(rand.NewSource(c.Seed))
	order := make([]int, rows)
	for i := range order {
		order[i] = i
	}

	t := 1.0
	for epoch := 0; epoch < c.Epochs; epoch++ {
		rng.Shuffle(rows, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		for _, idx := range order {
			row := X.RawRowView(idx)
			p := sigmoid(floats.Dot(c.weights, row) + c.bias)
			grad := p - float64(y[idx])

			eta := c.Eta0 / (1 + c.Eta0*c.Alpha*t)
			for j := range c.weights {
				c.weights[j] -= eta * (grad*row[j] + c.Alpha*c.weights[j])
			}
			c.bias -= eta * grad
			t++
		}
	}
	return nil
}

// PredictProba returns the per-sample probability of the positive class.
func (c *SGDLogistic) PredictProba(X *mat.Dense) ([]float64, error) {
	if c.weights == nil {
		return nil, errors.New("model is not fitted")
	}
	rows, cols := X.Dims()
	if cols != len(c.weights) {
		return nil, fmt.Errorf("matrix has %d columns, model was fitted on %d", cols, len(c.weights))
	}

	probs := make([]float64, rows)
	for i := 0; i < rows; i++ {
		probs[i] = sigmoid(floats.Dot(c.weights, X.RawRowView(i)) + c.bias)
	}
	return probs, nil
}

func sigmoid(z float64) float64 {
	// Clamp to keep Exp well away from overflow.
	if z > 35 {
		return 1
	}
	if z < -35 {
		return 0
	}
	return 1 / (1 + math.Exp(-z))
}
