// Package pipeline wires the full training and prediction flow for the
// pixel-based footprint classifier: load the labeled scene, rasterize the
// ground truth into a mask, fit the classifier, predict a probability
// surface, threshold it, vectorize the result back into polygons, and score
// the round trip against the training polygons.
package pipeline
