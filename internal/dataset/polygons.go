package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/peterstace/simplefeatures/geom"
)

// LoadTrainingPolygons scans a training CSV (image id, class type, WKT per
// row) for the ground-truth geometry of one class in one image.
//
// The WKT field may be arbitrarily large; MultiPolygons spanning megabytes
// are routine for dense classes.
func LoadTrainingPolygons(path, imageID, classType string) (geom.Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("failed to open training polygons: %w", err)
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
			return geom.Geometry{}, fmt.Errorf("failed to read training polygons: %w", err)
		}
		if len(record) != 3 || record[0] != imageID || record[1] != classType {
			continue
		}
		g, err := geom.UnmarshalWKT(record[2])
		if err != nil {
			return geom.Geometry{}, fmt.Errorf("bad WKT for image %s class %s: %w", imageID, classType, err)
		}
		return g, nil
	}
	return geom.Geometry{}, fmt.Errorf("training polygons for image %s class %s: %w", imageID, classType, ErrNotFound)
}
