package preview

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"satpoly/internal/dataset"
)

func gradientImage(w, h int) *dataset.BandImage {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(255 * x / (w - 1))
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return dataset.FromImage(img)
}

func TestStretchPercentile(t *testing.T) {
	b := gradientImage(64, 8)

	out, err := StretchPercentile(b, image.Rectangle{}, 0.01, 0.99)
	require.NoError(t, err)
	require.Equal(t, 64, out.Bounds().Dx())
	require.Equal(t, 8, out.Bounds().Dy())

	// The darkest column clips to 0 and the brightest to 255.
	r, _, _, _ := out.At(0, 0).RGBA()
	require.Equal(t, uint32(0), r>>8)
	r, _, _, _ = out.At(63, 0).RGBA()
	require.Equal(t, uint32(255), r>>8)
}

func TestStretchPercentile_Region(t *testing.T) {
	b := gradientImage(64, 8)

	out, err := StretchPercentile(b, image.Rect(10, 2, 30, 6), 0.01, 0.99)
	require.NoError(t, err)
	require.Equal(t, 20, out.Bounds().Dx())
	require.Equal(t, 4, out.Bounds().Dy())
}

func TestStretchPercentile_FlatChannel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 100, G: 100, B: 100, A: 255})
		}
	}

	// A zero-range channel must not divide by zero.
	out, err := StretchPercentile(dataset.FromImage(img), image.Rectangle{}, 0.01, 0.99)
	require.NoError(t, err)
	r, _, _, _ := out.At(4, 4).RGBA()
	require.Equal(t, uint32(0), r>>8)
}

func TestStretchPercentile_Invalid(t *testing.T) {
	b := gradientImage(16, 16)

	_, err := StretchPercentile(b, image.Rect(0, 0, 99, 99), 0.01, 0.99)
	require.Error(t, err)

	_, err = StretchPercentile(b, image.Rectangle{}, 0.99, 0.01)
	require.Error(t, err)

	_, err = StretchPercentile(b, image.Rectangle{}, -0.1, 0.99)
	require.Error(t, err)
}
