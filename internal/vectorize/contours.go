package vectorize

import (
	"image"

	"satpoly/internal/raster"
)

// contour is a traced component boundary: a closed ring of boundary pixel
// coordinates plus the holes nested directly inside it.
type contour struct {
	ring  []image.Point
	holes [][]image.Point
}

// labeling assigns component ids to foreground pixels (8-connected) and
// background pixels (4-connected). Ids start at 1; 0 means "other class".
type labeling struct {
	width, height int
	fg            []int32
	bg            []int32
	numFG         int
	numBG         int
	bgOnBorder    []bool // indexed by background id

	// firstFG and firstBG hold each component's topmost-leftmost pixel,
	// recorded as the components are discovered in scan order. That pixel's
	// west neighbor is outside the component, making it a valid
	// Moore-tracing start.
	firstFG []image.Point
	firstBG []image.Point
}

// traceContours finds every foreground component of the mask, traces its
// outer boundary, and attaches the boundaries of the holes it encloses.
func traceContours(m *raster.Mask) []contour {
	lab := labelMask(m)

	// Associate each enclosed background component with the foreground
	// component directly above its topmost pixel.
	holesOf := make(map[int32][][]image.Point)
	for id := int32(1); id <= int32(lab.numBG); id++ {
		if lab.bgOnBorder[id] {
			continue
		}
		start := lab.firstBG[id-1]
		parent := lab.fg[(start.Y-1)*lab.width+start.X]
		if parent == 0 {
			continue
		}
		ring := lab.trace(lab.bg, id, start)
		holesOf[parent] = append(holesOf[parent], ring)
	}

	contours := make([]contour, 0, lab.numFG)
	for id := int32(1); id <= int32(lab.numFG); id++ {
		contours = append(contours, contour{
			ring:  lab.trace(lab.fg, id, lab.firstFG[id-1]),
			holes: holesOf[id],
		})
	}
	return contours
}

// labelMask labels foreground and background components of the mask.
func labelMask(m *raster.Mask) *labeling {
	w, h := m.Width(), m.Height()
	lab := &labeling{
		width:  w,
		height: h,
		fg:     make([]int32, w*h),
		bg:     make([]int32, w*h),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if m.At(x, y) != 0 {
				if lab.fg[i] == 0 {
					lab.numFG++
					lab.firstFG = append(lab.firstFG, image.Point{X: x, Y: y})
					lab.flood(m, lab.fg, int32(lab.numFG), x, y, true)
				}
			} else if lab.bg[i] == 0 {
				lab.numBG++
				lab.firstBG = append(lab.firstBG, image.Point{X: x, Y: y})
				lab.flood(m, lab.bg, int32(lab.numBG), x, y, false)
			}
		}
	}

	lab.bgOnBorder = make([]bool, lab.numBG+1)
	for x := 0; x < w; x++ {
		lab.bgOnBorder[lab.bg[x]] = true
		lab.bgOnBorder[lab.bg[(h-1)*w+x]] = true
	}
	for y := 0; y < h; y++ {
		lab.bgOnBorder[lab.bg[y*w]] = true
		lab.bgOnBorder[lab.bg[y*w+w-1]] = true
	}
	lab.bgOnBorder[0] = true
	return lab
}

// flood labels one connected component with id using an explicit stack,
// so deep components cannot overflow the goroutine stack. Foreground uses
// 8-connectivity, background 4-connectivity.
func (l *labeling) flood(m *raster.Mask, labels []int32, id int32, x, y int, eightConn bool) {
	want := uint8(0)
	if eightConn {
		want = 1
	}
	stack := []image.Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= l.width || p.Y < 0 || p.Y >= l.height {
			continue
		}
		i := p.Y*l.width + p.X
		if labels[i] != 0 || m.At(p.X, p.Y) != want {
			continue
		}
		labels[i] = id

		stack = append(stack,
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X - 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y + 1},
			image.Point{X: p.X, Y: p.Y - 1},
		)
		if eightConn {
			stack = append(stack,
				image.Point{X: p.X + 1, Y: p.Y + 1},
				image.Point{X: p.X + 1, Y: p.Y - 1},
				image.Point{X: p.X - 1, Y: p.Y + 1},
				image.Point{X: p.X - 1, Y: p.Y - 1},
			)
		}
	}
}

// moore holds the 8-neighborhood in clockwise order (image coordinates,
// Y down): E, SE, S, SW, W, NW, N, NE.
var moore = [8]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// traceState identifies one step of the boundary walk: the pixel being
// entered and the direction of entry. The walk is deterministic, so a
// repeated state means the boundary cycle is complete.
type traceState struct {
	x, y, dir int
}

// trace walks the boundary of one component with Moore-neighbor tracing,
// terminating when a (pixel, entry direction) state repeats. A single
// isolated pixel yields a one-point ring.
func (l *labeling) trace(labels []int32, id int32, start image.Point) []image.Point {
	inside := func(p image.Point) bool {
		if p.X < 0 || p.X >= l.width || p.Y < 0 || p.Y >= l.height {
			return false
		}
		return labels[p.Y*l.width+p.X] == id
	}

	ring := []image.Point{start}
	p := start
	scan := 5 // start scanning at NW: the W neighbor of the start pixel is outside
	seen := make(map[traceState]bool)

	for {
		dir := -1
		for i := 0; i < 8; i++ {
			d := (scan + i) % 8
			if inside(p.Add(moore[d])) {
				dir = d
				break
			}
		}
		if dir == -1 {
			return ring // isolated pixel
		}
		next := p.Add(moore[dir])
		state := traceState{x: next.X, y: next.Y, dir: dir}
		if seen[state] {
			return ring
		}
		seen[state] = true
		ring = append(ring, next)
		p = next
		// Resume scanning one step past the backtrack neighbor.
		scan = (dir + 5) % 8
	}
}
