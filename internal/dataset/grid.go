package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrNotFound indicates that a CSV lookup matched no row.
var ErrNotFound = errors.New("not found")

// GridSize holds the geographic extents of one image: X spans [0, XMax] and
// Y spans [YMin, 0], with YMin negative.
type GridSize struct {
	ImageID string  `json:"image_id"`
	XMax    float64 `json:"x_max"`
	YMin    float64 `json:"y_min"`
}

// LoadGridSize scans a grid-size CSV (image id, Xmax, Ymin per row) for the
// given image id. Header rows and rows with the wrong field count are
// skipped.
func LoadGridSize(path, imageID string) (*GridSize, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid sizes: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read grid sizes: %w", err)
		}
		if len(record) != 3 || record[0] != imageID {
			continue
		}
		xMax, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad Xmax for image %s: %w", imageID, err)
		}
		yMin, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("bad Ymin for image %s: %w", imageID, err)
		}
		return &GridSize{ImageID: imageID, XMax: xMax, YMin: yMin}, nil
	}
	return nil, fmt.Errorf("grid size for image %s: %w", imageID, ErrNotFound)
}
