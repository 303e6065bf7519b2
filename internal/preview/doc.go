// Package preview renders the pipeline's intermediate products as ordinary
// images so each stage can be inspected on disk: a percentile-stretched view
// of the raw bands, a color-ramped probability heatmap, and binary mask
// renderings.
//
// Raw satellite bands use the full 16-bit range sparsely, so a linear 0-255
// mapping looks almost black. StretchPercentile clips each channel to its
// low/high percentiles before scaling, the standard display stretch.
//
// Previews are written in PNG, JPEG, or WebP depending on the output path's
// extension.
package preview
