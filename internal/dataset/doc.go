// Package dataset loads the three inputs of the pipeline: the grid-size CSV
// mapping image ids to geographic extents, the training CSV mapping
// (image id, class type) to ground-truth MultiPolygon WKT, and the
// three-band satellite image itself.
//
// Lookups that find no matching row return errors wrapping ErrNotFound so
// callers can distinguish a missing image id from a malformed file.
package dataset
