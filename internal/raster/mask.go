package raster

import (
	"fmt"
	"image"
	"image/color"
)

// Mask is a single-channel binary pixel array.
//
// Values are 0 (background) or 1 (foreground). The zero value is not usable;
// construct masks with NewMask, FromGeometry, or Binarize.
type Mask struct {
	width  int
	height int
	pix    []uint8
}

// NewMask creates an all-background mask of the given dimensions.
func NewMask(width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid mask dimensions %dx%d", width, height)
	}
	return &Mask{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}, nil
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// At returns the value at (x, y). Out-of-bounds coordinates return 0.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.pix[y*m.width+x]
}

// Set writes v at (x, y). Out-of-bounds coordinates are ignored.
// Any non-zero v is stored as 1.
func (m *Mask) Set(x, y int, v uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	if v != 0 {
		v = 1
	}
	m.pix[y*m.width+x] = v
}

// CountNonZero returns the number of foreground pixels.
func (m *Mask) CountNonZero() int {
	n := 0
	for _, v := range m.pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Labels returns the mask contents as a flat row-major slice of 0/1 labels.
// The returned slice aliases the mask storage.
func (m *Mask) Labels() []uint8 {
	return m.pix
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	pix := make([]uint8, len(m.pix))
	copy(pix, m.pix)
	return &Mask{width: m.width, height: m.height, pix: pix}
}

// Image renders the mask as an 8-bit grayscale image with foreground pixels
// set to 255.
func (m *Mask) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.pix[y*m.width+x] != 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// FromImage builds a mask from a grayscale rendering: pixels with luminance
// of 128 or more become foreground. It is the inverse of Image.
func FromImage(img image.Image) (*Mask, error) {
	bounds := img.Bounds()
	m, err := NewMask(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			if c.Y >= 128 {
				m.pix[y*m.width+x] = 1
			}
		}
	}
	return m, nil
}

// Binarize thresholds a row-major probability surface into a mask.
// A pixel becomes foreground when its probability is >= threshold.
func Binarize(probs []float64, width, height int, threshold float64) (*Mask, error) {
	if len(probs) != width*height {
		return nil, fmt.Errorf("probability surface has %d values, want %d", len(probs), width*height)
	}
	m, err := NewMask(width, height)
	if err != nil {
		return nil, err
	}
	for i, p := range probs {
		if p >= threshold {
			m.pix[i] = 1
		}
	}
	return m, nil
}
