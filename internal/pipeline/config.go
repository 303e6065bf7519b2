package pipeline

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Config holds everything needed for one pipeline run. The zero value is not
// usable; at minimum DataDir, ImageID, and ClassType must be set.
type Config struct {
	// DataDir is the dataset root holding grid_sizes.csv, train_wkt_v4.csv,
	// and the three_band/ image directory.
	DataDir string

	// ImageID selects the scene, e.g. "6120_2_2".
	ImageID string

	// ClassType selects the ground-truth class, e.g. "1" for buildings.
	ClassType string

	// GridCSV, TrainCSV, and ImagePath override the conventional locations
	// under DataDir when non-empty.
	GridCSV   string
	TrainCSV  string
	ImagePath string

	// Threshold turns the probability surface into a binary mask.
	// Nil selects the default of 0.3; an explicit 0 marks every pixel.
	Threshold *float64

	// Epsilon is the polygon simplification tolerance in pixels.
	// Nil selects the default of 10; an explicit 0 disables simplification.
	Epsilon *float64

	// MinArea drops vectorized rings below this area in square pixels.
	// Nil selects the default of 10; an explicit 0 keeps every ring.
	MinArea *float64

	// SmoothRadius applies a morphological opening of this radius to the
	// binary mask before vectorization. Zero disables it.
	SmoothRadius int

	// Seed drives the training shuffle, making runs reproducible.
	Seed int64

	// PreviewDir enables stage previews when non-empty.
	PreviewDir string

	// PreviewFormat is the preview file extension: png, jpeg, or webp.
	PreviewFormat string

	// PreviewQuality applies to lossy preview formats.
	PreviewQuality int

	// PreviewRegion crops previews to a region of interest. The zero
	// rectangle previews the whole scene.
	PreviewRegion image.Rectangle

	// Log receives stage progress; logrus.StandardLogger when nil.
	Log *logrus.Logger
}

// withDefaults fills unset optional fields with the stock demo values.
func (c Config) withDefaults() (Config, error) {
	if c.ImageID == "" || c.ClassType == "" {
		return c, fmt.Errorf("image id and class type are required")
	}
	if c.GridCSV == "" {
		c.GridCSV = filepath.Join(c.DataDir, "grid_sizes.csv")
	}
	if c.TrainCSV == "" {
		c.TrainCSV = filepath.Join(c.DataDir, "train_wkt_v4.csv")
	}
	if c.ImagePath == "" {
		c.ImagePath = filepath.Join(c.DataDir, "three_band", c.ImageID+".tif")
	}
	if c.Threshold == nil {
		c.Threshold = f64(0.3)
	}
	if c.Epsilon == nil {
		c.Epsilon = f64(10)
	}
	if c.MinArea == nil {
		c.MinArea = f64(10)
	}
	if c.PreviewFormat == "" {
		c.PreviewFormat = "png"
	}
	if c.PreviewQuality == 0 {
		c.PreviewQuality = 90
	}
	if c.Log == nil {
		c.Log = logrus.StandardLogger()
	}
	return c, nil
}

func f64(v float64) *float64 { return &v }
