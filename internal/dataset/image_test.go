package dataset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestLoadBandImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{G: 128, A: 255})
	src.Set(2, 1, color.RGBA{B: 1, A: 255})

	b, err := LoadBandImage(writePNG(t, src))
	require.NoError(t, err)
	require.Equal(t, 4, b.Width())
	require.Equal(t, 2, b.Height())

	// 8-bit samples are widened to 16-bit scale.
	require.Equal(t, float32(65535), b.At(0, 0, 0))
	require.Equal(t, float32(0), b.At(0, 0, 1))
	require.Equal(t, float32(128*257), b.At(1, 0, 1))
	require.Equal(t, float32(257), b.At(2, 1, 2))
}

func TestLoadBandImage_MissingFile(t *testing.T) {
	_, err := LoadBandImage(filepath.Join(t.TempDir(), "nope.tif"))
	require.Error(t, err)
}

func TestLoadBandImage_NotAnImage(t *testing.T) {
	path := writeFile(t, "bogus.tif", "this is not a tiff")
	_, err := LoadBandImage(path)
	require.Error(t, err)
}

func TestFeatureMatrix(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	b := FromImage(src)

	X := b.FeatureMatrix()
	rows, cols := X.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, Channels, cols)

	// Row order is row-major over pixels; the lit pixel is row 3.
	require.Equal(t, 65535.0, X.At(3, 0))
	require.Equal(t, 65535.0, X.At(3, 2))
	require.Equal(t, 0.0, X.At(0, 0))
}
