// Package raster provides binary pixel masks and conversions between vector
// geometry and pixel space.
//
// A Mask is a single-channel array where 1 marks class membership and 0 marks
// background. Masks are produced either by rasterizing polygon geometry
// (scanline fill of exterior rings followed by hole punching) or by
// thresholding a per-pixel probability surface.
//
// # Coordinate System
//
// Pixel (0, 0) is the top-left corner, X increases rightward, Y increases
// downward. Geometry coordinates are in the same pixel frame: a polygon
// covers pixel (x, y) when it contains the pixel center (x+0.5, y+0.5),
// tested with the even-odd rule.
//
// # Metrics
//
// PixelJaccard scores a predicted mask against ground truth as
// tp / (tp + fp + fn), the intersection-over-union of the two foregrounds.
package raster
