// Package classifier implements a small pixel classifier: feature
// standardization chained into a logistic regression fit by stochastic
// gradient descent.
//
// The API follows the Fit/Transform/PredictProba shape familiar from
// scikit-learn style libraries. Matrices are gonum mat.Dense values with one
// row per sample. The model is intentionally simple; its job is to produce a
// plausibly noisy probability surface for the downstream mask processing,
// not to win a leaderboard.
package classifier
