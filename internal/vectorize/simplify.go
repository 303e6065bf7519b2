package vectorize

import (
	"image"
	"math"
)

// simplifyRing reduces a closed ring with Ramer-Douglas-Peucker, keeping
// every point that deviates from the simplified chain by more than epsilon
// pixels. The ring is treated as a closed polyline anchored at its first
// point; a trailing duplicate of the first point is stripped before
// simplification. Epsilon of 0 or less returns the deduplicated ring.
func simplifyRing(ring []image.Point, epsilon float64) []image.Point {
	for len(ring) > 1 && ring[len(ring)-1] == ring[0] {
		ring = ring[:len(ring)-1]
	}
	if epsilon <= 0 || len(ring) < 3 {
		return ring
	}

	closed := append(append([]image.Point{}, ring...), ring[0])
	keep := make([]bool, len(closed))
	keep[0] = true
	keep[len(closed)-1] = true
	douglasPeucker(closed, 0, len(closed)-1, epsilon, keep)

	out := make([]image.Point, 0, len(ring))
	for i := 0; i < len(closed)-1; i++ {
		if keep[i] {
			out = append(out, closed[i])
		}
	}
	return out
}

// douglasPeucker marks the points of pts[first:last+1] that survive
// simplification with tolerance epsilon.
func douglasPeucker(pts []image.Point, first, last int, epsilon float64, keep []bool) {
	if last <= first+1 {
		return
	}

	maxDist := 0.0
	maxIdx := first
	for i := first + 1; i < last; i++ {
		if d := perpendicularDistance(pts[i], pts[first], pts[last]); d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist <= epsilon {
		return
	}
	keep[maxIdx] = true
	douglasPeucker(pts, first, maxIdx, epsilon, keep)
	douglasPeucker(pts, maxIdx, last, epsilon, keep)
}

// perpendicularDistance returns the distance from p to the segment ab.
// When a == b it degenerates to the point distance.
func perpendicularDistance(p, a, b image.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	if dx == 0 && dy == 0 {
		return math.Hypot(float64(p.X-a.X), float64(p.Y-a.Y))
	}
	num := math.Abs(dy*float64(p.X) - dx*float64(p.Y) + float64(b.X*a.Y) - float64(b.Y*a.X))
	return num / math.Hypot(dx, dy)
}

// ringArea returns the absolute shoelace area of a ring of pixel
// coordinates. Rings with fewer than three points have zero area.
func ringArea(ring []image.Point) float64 {
	if len(ring) < 3 {
		return 0
	}
	sum := 0.0
	for i := range ring {
		j := (i + 1) % len(ring)
		sum += float64(ring[i].X)*float64(ring[j].Y) - float64(ring[j].X)*float64(ring[i].Y)
	}
	return math.Abs(sum) / 2
}
