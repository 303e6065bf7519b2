package preview

import (
	"fmt"
	"image"
	"sort"

	"gonum.org/v1/gonum/stat"

	"satpoly/internal/dataset"
)

// StretchPercentile renders a region of a band image with a per-channel
// percentile contrast stretch.
//
// For each channel, values at or below the lo quantile map to 0 and values
// at or above the hi quantile map to 255, with linear scaling in between.
// Quantiles are in [0, 1]; the usual display stretch is 0.01 and 0.99.
func StretchPercentile(b *dataset.BandImage, rect image.Rectangle, lo, hi float64) (*image.RGBA, error) {
	rect, err := clampRegion(rect, b.Width(), b.Height())
	if err != nil {
		return nil, err
	}
	if lo < 0 || hi > 1 || lo >= hi {
		return nil, fmt.Errorf("invalid quantile range [%v, %v]", lo, hi)
	}

	n := rect.Dx() * rect.Dy()
	mins := make([]float64, dataset.Channels)
	scales := make([]float64, dataset.Channels)
	values := make([]float64, n)
	for ch := 0; ch < dataset.Channels; ch++ {
		i := 0
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				values[i] = float64(b.At(x, y, ch))
				i++
			}
		}
		sort.Float64s(values)
		min := stat.Quantile(lo, stat.Empirical, values, nil)
		max := stat.Quantile(hi, stat.Empirical, values, nil)
		mins[ch] = min
		if max > min {
			scales[ch] = 255 / (max - min)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			o := out.PixOffset(x-rect.Min.X, y-rect.Min.Y)
			for ch := 0; ch < dataset.Channels; ch++ {
				v := (float64(b.At(x, y, ch)) - mins[ch]) * scales[ch]
				out.Pix[o+ch] = clampByte(v)
			}
			out.Pix[o+3] = 255
		}
	}
	return out, nil
}

// clampRegion validates a crop region against image dimensions. A zero
// rectangle selects the whole image.
func clampRegion(rect image.Rectangle, width, height int) (image.Rectangle, error) {
	if rect == (image.Rectangle{}) {
		return image.Rect(0, 0, width, height), nil
	}
	if rect.Min.X < 0 || rect.Min.Y < 0 || rect.Max.X > width || rect.Max.Y > height {
		return image.Rectangle{}, fmt.Errorf("region %v outside image bounds %dx%d", rect, width, height)
	}
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return image.Rectangle{}, fmt.Errorf("empty region %v", rect)
	}
	return rect, nil
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
