package classifier

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Pipeline chains a StandardScaler into an SGDLogistic model, the
// standardize-then-classify composition the pixel pipeline trains.
type Pipeline struct {
	Scaler *StandardScaler
	Model  *SGDLogistic
}

// NewPipeline builds a pipeline with default hyperparameters and the given
// shuffle seed.
func NewPipeline(seed int64) *Pipeline {
	return &Pipeline{
		Scaler: &StandardScaler{},
		Model:  NewSGDLogistic(seed),
	}
}

// Fit standardizes X and trains the model against y.
func (p *Pipeline) Fit(X *mat.Dense, y []uint8) error {
	if err := p.Scaler.Fit(X); err != nil {
		return fmt.Errorf("failed to fit scaler: %w", err)
	}
	scaled, err := p.Scaler.Transform(X)
	if err != nil {
		return fmt.Errorf("failed to transform features: %w", err)
	}
	if err := p.Model.Fit(scaled, y); err != nil {
		return fmt.Errorf("failed to fit model: %w", err)
	}
	return nil
}

// PredictProba returns positive-class probabilities for the rows of X.
func (p *Pipeline) PredictProba(X *mat.Dense) ([]float64, error) {
	scaled, err := p.Scaler.Transform(X)
	if err != nil {
		return nil, fmt.Errorf("failed to transform features: %w", err)
	}
	return p.Model.PredictProba(scaled)
}
