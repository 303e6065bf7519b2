package preview

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// maxPreviewSide bounds preview dimensions; larger renders are scaled down
// so a full-scene heatmap does not land as a 40MB file.
const maxPreviewSide = 2048

// Save writes a preview image, choosing the encoder from the path's
// extension: .png, .jpg/.jpeg, or .webp. Oversized images are scaled down
// to fit maxPreviewSide on their longest edge.
func Save(img image.Image, path string, quality int) error {
	bounds := img.Bounds()
	if bounds.Dx() > maxPreviewSide || bounds.Dy() > maxPreviewSide {
		img = imaging.Fit(img, maxPreviewSide, maxPreviewSide, imaging.Lanczos)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imaging.Save(img, path)
	case ".jpg", ".jpeg":
		return imaging.Save(img, path, imaging.JPEGQuality(quality))
	case ".webp":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create preview: %w", err)
		}
		if err := webp.Encode(f, img, &webp.Options{Quality: float32(quality)}); err != nil {
			f.Close()
			return fmt.Errorf("failed to encode webp preview: %w", err)
		}
		return f.Close()
	default:
		return fmt.Errorf("unsupported preview format %q", filepath.Ext(path))
	}
}
