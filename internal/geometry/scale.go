package geometry

import (
	"fmt"

	"github.com/peterstace/simplefeatures/geom"
)

// Scalers holds the per-axis factors that map geographic coordinates onto
// pixel coordinates.
type Scalers struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ForImage derives the scalers for an image of the given pixel dimensions
// and geographic extents xMax (positive) and yMin (negative).
//
// The axes are shrunk by w/(w+1) and h/(h+1) before dividing by the extents,
// matching the convention of the published grid sizes.
func ForImage(width, height int, xMax, yMin float64) (Scalers, error) {
	if width <= 0 || height <= 0 {
		return Scalers{}, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if xMax == 0 || yMin == 0 {
		return Scalers{}, fmt.Errorf("degenerate grid extents xMax=%v yMin=%v", xMax, yMin)
	}
	w := float64(width)
	h := float64(height)
	return Scalers{
		X: w * (w / (w + 1)) / xMax,
		Y: h * (h / (h + 1)) / yMin,
	}, nil
}

// Invert returns the scalers mapping pixel coordinates back to geographic
// coordinates.
func (s Scalers) Invert() Scalers {
	return Scalers{X: 1 / s.X, Y: 1 / s.Y}
}

// Scale applies the scalers to a geometry about the origin.
func Scale(g geom.Geometry, s Scalers) geom.Geometry {
	return g.TransformXY(func(xy geom.XY) geom.XY {
		return geom.XY{X: xy.X * s.X, Y: xy.Y * s.Y}
	})
}
