package dataset

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	"gonum.org/v1/gonum/mat"
)

// Channels is the number of spectral bands carried per pixel.
const Channels = 3

// BandImage is a three-band raster with float32 samples in row-major,
// channel-interleaved order.
//
// Samples are stored at 16-bit scale (0-65535) regardless of the source
// bit depth, so 8-bit and 16-bit inputs land on a common range.
type BandImage struct {
	width  int
	height int
	pix    []float32
}

// LoadBandImage decodes a TIFF, PNG, or JPEG file into a BandImage.
func LoadBandImage(path string) (*BandImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image into a BandImage.
func FromImage(img image.Image) *BandImage {
	bounds := img.Bounds()
	b := &BandImage{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		pix:    make([]float32, bounds.Dx()*bounds.Dy()*Channels),
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			b.pix[i] = float32(r)
			b.pix[i+1] = float32(g)
			b.pix[i+2] = float32(bl)
			i += Channels
		}
	}
	return b
}

// Width returns the image width in pixels.
func (b *BandImage) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *BandImage) Height() int { return b.height }

// At returns the sample of one band at (x, y).
func (b *BandImage) At(x, y, band int) float32 {
	return b.pix[(y*b.width+x)*Channels+band]
}

// FeatureMatrix reshapes the image into an N x Channels matrix with one row
// per pixel, the per-pixel feature layout the classifier trains on.
func (b *BandImage) FeatureMatrix() *mat.Dense {
	n := b.width * b.height
	data := make([]float64, n*Channels)
	for i, v := range b.pix {
		data[i] = float64(v)
	}
	return mat.NewDense(n, Channels, data)
}
