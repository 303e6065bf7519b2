package vectorize

import (
	"fmt"
	"image"

	"github.com/peterstace/simplefeatures/geom"

	"satpoly/internal/raster"
)

// MaskToPolygons vectorizes the foreground of a binary mask into a
// MultiPolygon.
//
// epsilon is the Ramer-Douglas-Peucker tolerance in pixels; minArea drops
// shells and holes whose traced area falls below it, which removes the
// speckle artifacts a noisy classifier leaves behind. The result is always a
// MultiPolygon (possibly empty) in pixel coordinates.
func MaskToPolygons(m *raster.Mask, epsilon, minArea float64) (geom.MultiPolygon, error) {
	var polys []geom.Polygon
	for _, c := range traceContours(m) {
		shell := simplifyRing(c.ring, epsilon)
		if len(shell) < 3 || ringArea(shell) < minArea {
			continue
		}

		rings := []geom.LineString{ringToLineString(shell)}
		for _, h := range c.holes {
			hole := simplifyRing(h, epsilon)
			if len(hole) < 3 || ringArea(hole) < minArea {
				continue
			}
			rings = append(rings, ringToLineString(hole))
		}

		poly := geom.NewPolygon(rings)
		if poly.Validate() != nil {
			// Simplification can push a hole outside its shell, or the shell
			// can revisit an articulation pixel where two lobes of the
			// component touch diagonally. Retry without holes, then salvage
			// the lobes as separate polygons rather than losing the whole
			// component.
			poly = geom.NewPolygon(rings[:1])
			if poly.Validate() != nil {
				polys = append(polys, splitShell(shell, minArea)...)
				continue
			}
		}
		polys = append(polys, poly)
	}

	if len(polys) == 0 {
		return geom.MultiPolygon{}, nil
	}

	mp := geom.NewMultiPolygon(polys)
	if mp.Validate() == nil {
		return mp, nil
	}
	// Adjacent components can simplify into overlapping polygons, which a
	// MultiPolygon must not contain. Dissolve the overlaps by union.
	return unionPolygons(polys)
}

// splitShell recovers the lobes of a self-touching shell ring. The ring is
// cut at repeated vertices into simple sub-rings, and each lobe that still
// clears the area filter becomes its own hole-free polygon.
func splitShell(ring []image.Point, minArea float64) []geom.Polygon {
	var polys []geom.Polygon
	for _, sub := range splitRing(ring) {
		if ringArea(sub) < minArea {
			continue
		}
		poly := geom.NewPolygon([]geom.LineString{ringToLineString(sub)})
		if poly.Validate() != nil {
			continue
		}
		polys = append(polys, poly)
	}
	return polys
}

// splitRing decomposes a ring that revisits vertices into simple sub-rings.
// Each time a vertex repeats, the loop walked since its first occurrence is
// extracted; degenerate loops of fewer than three points are discarded.
func splitRing(ring []image.Point) [][]image.Point {
	var out [][]image.Point
	idx := make(map[image.Point]int, len(ring))
	path := make([]image.Point, 0, len(ring))
	for _, p := range ring {
		if j, ok := idx[p]; ok {
			loop := append([]image.Point{}, path[j:]...)
			if len(loop) >= 3 {
				out = append(out, loop)
			}
			for _, q := range path[j+1:] {
				delete(idx, q)
			}
			path = path[:j+1]
			continue
		}
		idx[p] = len(path)
		path = append(path, p)
	}
	if len(path) >= 3 {
		out = append(out, path)
	}
	return out
}

// unionPolygons merges individually valid polygons into one valid
// MultiPolygon by pairwise union.
func unionPolygons(polys []geom.Polygon) (geom.MultiPolygon, error) {
	merged := polys[0].AsGeometry()
	for _, p := range polys[1:] {
		var err error
		merged, err = geom.Union(merged, p.AsGeometry())
		if err != nil {
			return geom.MultiPolygon{}, fmt.Errorf("failed to merge overlapping polygons: %w", err)
		}
	}
	return asMultiPolygon(merged)
}

// asMultiPolygon coerces a Polygon or MultiPolygon geometry to a
// MultiPolygon so callers always receive the same type.
func asMultiPolygon(g geom.Geometry) (geom.MultiPolygon, error) {
	switch {
	case g.IsEmpty():
		return geom.MultiPolygon{}, nil
	case g.Type() == geom.TypePolygon:
		return geom.NewMultiPolygon([]geom.Polygon{g.MustAsPolygon()}), nil
	case g.Type() == geom.TypeMultiPolygon:
		return g.MustAsMultiPolygon(), nil
	default:
		return geom.MultiPolygon{}, fmt.Errorf("unexpected %s geometry from polygon union", g.Type())
	}
}

func ringToLineString(ring []image.Point) geom.LineString {
	coords := make([]float64, 0, 2*(len(ring)+1))
	for _, p := range ring {
		coords = append(coords, float64(p.X), float64(p.Y))
	}
	coords = append(coords, float64(ring[0].X), float64(ring[0].Y))
	return geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
}
