package preview

import (
	"fmt"
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"

	"satpoly/internal/raster"
)

// Heatmap renders a region of a row-major probability surface as a
// blue-to-yellow ramp, blended in Luv space so the gradient stays
// perceptually even.
func Heatmap(probs []float64, width, height int, rect image.Rectangle) (*image.RGBA, error) {
	if len(probs) != width*height {
		return nil, fmt.Errorf("probability surface has %d values, want %d", len(probs), width*height)
	}
	rect, err := clampRegion(rect, width, height)
	if err != nil {
		return nil, err
	}

	cold := colorful.Color{R: 0.05, G: 0.05, B: 0.35}
	hot := colorful.Color{R: 0.95, G: 0.85, B: 0.10}

	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			p := probs[y*width+x]
			if p < 0 {
				p = 0
			} else if p > 1 {
				p = 1
			}
			c := cold.BlendLuv(hot, p).Clamped()
			r, g, b := c.RGB255()
			o := out.PixOffset(x-rect.Min.X, y-rect.Min.Y)
			out.Pix[o] = r
			out.Pix[o+1] = g
			out.Pix[o+2] = b
			out.Pix[o+3] = 255
		}
	}
	return out, nil
}

// RenderMask renders a region of a binary mask as a grayscale image with
// foreground pixels at full white.
func RenderMask(m *raster.Mask, rect image.Rectangle) (*image.Gray, error) {
	rect, err := clampRegion(rect, m.Width(), m.Height())
	if err != nil {
		return nil, err
	}

	out := image.NewGray(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if m.At(x, y) != 0 {
				out.Pix[out.PixOffset(x-rect.Min.X, y-rect.Min.Y)] = 255
			}
		}
	}
	return out, nil
}
