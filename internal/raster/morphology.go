package raster

import "github.com/anthonynsimon/bild/effect"

// Open performs a morphological opening (erode then dilate) on the mask,
// removing speckles smaller than the structuring radius while preserving the
// extent of larger regions.
//
// A radius of 0 or less returns the mask unchanged.
func Open(m *Mask, radius int) (*Mask, error) {
	if radius <= 0 {
		return m, nil
	}
	eroded := effect.Erode(m.Image(), float64(radius))
	dilated := effect.Dilate(eroded, float64(radius))
	return FromImage(dilated)
}
