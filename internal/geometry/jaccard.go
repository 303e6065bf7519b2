package geometry

import (
	"fmt"

	"github.com/peterstace/simplefeatures/geom"
)

// Jaccard computes the area of intersection over the area of union of two
// geometries. Two empty geometries score 0.
func Jaccard(a, b geom.Geometry) (float64, error) {
	inter, err := geom.Intersection(a, b)
	if err != nil {
		return 0, fmt.Errorf("failed to intersect geometries: %w", err)
	}
	union, err := geom.Union(a, b)
	if err != nil {
		return 0, fmt.Errorf("failed to union geometries: %w", err)
	}

	unionArea := union.Area()
	if unionArea == 0 {
		return 0, nil
	}
	return inter.Area() / unionArea, nil
}
