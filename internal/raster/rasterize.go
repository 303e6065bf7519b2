package raster

import (
	"fmt"
	"math"
	"sort"

	"github.com/peterstace/simplefeatures/geom"
)

// FromGeometry rasterizes polygon geometry into a binary mask.
//
// The geometry must be a Polygon or MultiPolygon in pixel coordinates.
// Exterior rings are filled with 1 first, then interior rings (holes) are
// filled back to 0, so holes always win over overlapping shells. An empty
// geometry produces an all-background mask.
//
// A pixel is covered when its center (x+0.5, y+0.5) lies inside the ring
// under the even-odd rule.
func FromGeometry(g geom.Geometry, width, height int) (*Mask, error) {
	m, err := NewMask(width, height)
	if err != nil {
		return nil, err
	}

	exteriors, interiors, err := polygonRings(g)
	if err != nil {
		return nil, err
	}
	for _, ring := range exteriors {
		fillRing(m, ring, 1)
	}
	for _, ring := range interiors {
		fillRing(m, ring, 0)
	}
	return m, nil
}

// polygonRings flattens a Polygon or MultiPolygon into its exterior and
// interior rings.
func polygonRings(g geom.Geometry) (exteriors, interiors [][]geom.XY, err error) {
	if g.IsEmpty() {
		return nil, nil, nil
	}

	var polys []geom.Polygon
	switch g.Type() {
	case geom.TypePolygon:
		polys = append(polys, g.MustAsPolygon())
	case geom.TypeMultiPolygon:
		mp := g.MustAsMultiPolygon()
		for i := 0; i < mp.NumPolygons(); i++ {
			polys = append(polys, mp.PolygonN(i))
		}
	default:
		return nil, nil, fmt.Errorf("cannot rasterize %s geometry", g.Type())
	}

	for _, p := range polys {
		exteriors = append(exteriors, ringCoords(p.ExteriorRing()))
		for i := 0; i < p.NumInteriorRings(); i++ {
			interiors = append(interiors, ringCoords(p.InteriorRingN(i)))
		}
	}
	return exteriors, interiors, nil
}

func ringCoords(ls geom.LineString) []geom.XY {
	seq := ls.Coordinates()
	coords := make([]geom.XY, seq.Length())
	for i := 0; i < seq.Length(); i++ {
		coords[i] = seq.GetXY(i)
	}
	return coords
}

// fillRing scanline-fills a single closed ring with v using the even-odd rule.
func fillRing(m *Mask, ring []geom.XY, v uint8) {
	if len(ring) < 3 {
		return
	}

	minY, maxY := ring[0].Y, ring[0].Y
	for _, p := range ring[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := maxInt(0, int(math.Floor(minY)))
	y1 := minInt(m.height-1, int(math.Ceil(maxY)))

	var xs []float64
	for y := y0; y <= y1; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]

		// Gather edge crossings with the scanline through the pixel centers.
		// The half-open [min, max) test counts each vertex crossing once.
		for i := 0; i < len(ring); i++ {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if a.Y == b.Y {
				continue
			}
			lo, hi := a.Y, b.Y
			if lo > hi {
				lo, hi = hi, lo
			}
			if yc < lo || yc >= hi {
				continue
			}
			t := (yc - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			// Pixel x is inside when xs[i] <= x+0.5 < xs[i+1].
			start := int(math.Ceil(xs[i] - 0.5))
			end := int(math.Ceil(xs[i+1]-0.5)) - 1
			start = maxInt(start, 0)
			end = minInt(end, m.width-1)
			for x := start; x <= end; x++ {
				m.pix[y*m.width+x] = v
			}
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
