package pipeline

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/sirupsen/logrus"

	"satpoly/internal/classifier"
	"satpoly/internal/dataset"
	"satpoly/internal/geometry"
	"satpoly/internal/preview"
	"satpoly/internal/raster"
	"satpoly/internal/vectorize"
)

// Result summarizes one pipeline run.
type Result struct {
	ImageID          string                     `json:"image_id"`
	ClassType        string                     `json:"class_type"`
	TrainPixels      int                        `json:"train_pixels"`
	AveragePrecision float64                    `json:"average_precision"`
	PixelJaccard     *raster.PixelJaccardResult `json:"pixel_jaccard"`
	Polygons         int                        `json:"polygons"`
	PredictionBytes  int                        `json:"prediction_bytes"`
	FinalJaccard     float64                    `json:"final_jaccard"`
}

// Run executes the full pipeline for one scene and class.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	log := cfg.Log

	grid, err := dataset.LoadGridSize(cfg.GridCSV, cfg.ImageID)
	if err != nil {
		return nil, fmt.Errorf("load grid size: %w", err)
	}
	train, err := dataset.LoadTrainingPolygons(cfg.TrainCSV, cfg.ImageID, cfg.ClassType)
	if err != nil {
		return nil, fmt.Errorf("load training polygons: %w", err)
	}

	start := time.Now()
	img, err := dataset.LoadBandImage(cfg.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("load band image: %w", err)
	}
	width, height := img.Width(), img.Height()
	log.WithFields(logrus.Fields{
		"image":   cfg.ImageID,
		"class":   cfg.ClassType,
		"width":   width,
		"height":  height,
		"elapsed": time.Since(start),
	}).Info("loaded scene")

	scalers, err := geometry.ForImage(width, height, grid.XMax, grid.YMin)
	if err != nil {
		return nil, fmt.Errorf("derive scalers: %w", err)
	}
	trainScaled := geometry.Scale(train, scalers)
	truth, err := raster.FromGeometry(trainScaled, width, height)
	if err != nil {
		return nil, fmt.Errorf("rasterize training polygons: %w", err)
	}
	log.WithField("foreground_pixels", truth.CountNonZero()).Info("rasterized ground truth")

	if err := savePreview(cfg, "scene", func() (image.Image, error) {
		return preview.StretchPercentile(img, cfg.PreviewRegion, 0.01, 0.99)
	}); err != nil {
		return nil, err
	}
	if err := savePreview(cfg, "truth_mask", func() (image.Image, error) {
		return preview.RenderMask(truth, cfg.PreviewRegion)
	}); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	features := img.FeatureMatrix()
	labels := truth.Labels()
	model := classifier.NewPipeline(cfg.Seed)
	log.Info("training")
	if err := model.Fit(features, labels); err != nil {
		return nil, fmt.Errorf("train classifier: %w", err)
	}
	probs, err := model.PredictProba(features)
	if err != nil {
		return nil, fmt.Errorf("predict probabilities: %w", err)
	}
	avgPrecision, err := classifier.AveragePrecision(labels, probs)
	if err != nil {
		return nil, fmt.Errorf("score predictions: %w", err)
	}
	log.WithFields(logrus.Fields{
		"average_precision": avgPrecision,
		"elapsed":           time.Since(start),
	}).Info("trained classifier")

	if err := savePreview(cfg, "probability", func() (image.Image, error) {
		return preview.Heatmap(probs, width, height, cfg.PreviewRegion)
	}); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	predMask, err := raster.Binarize(probs, width, height, *cfg.Threshold)
	if err != nil {
		return nil, fmt.Errorf("threshold probabilities: %w", err)
	}
	predMask, err = raster.Open(predMask, cfg.SmoothRadius)
	if err != nil {
		return nil, fmt.Errorf("smooth predicted mask: %w", err)
	}
	pixelScore, err := raster.PixelJaccard(predMask, truth)
	if err != nil {
		return nil, fmt.Errorf("score predicted mask: %w", err)
	}
	log.WithFields(logrus.Fields{
		"threshold": *cfg.Threshold,
		"jaccard":   pixelScore.Jaccard,
	}).Info("thresholded prediction")

	if err := savePreview(cfg, "predicted_mask", func() (image.Image, error) {
		return preview.RenderMask(predMask, cfg.PreviewRegion)
	}); err != nil {
		return nil, err
	}

	start = time.Now()
	predPolygons, err := vectorize.MaskToPolygons(predMask, *cfg.Epsilon, *cfg.MinArea)
	if err != nil {
		return nil, fmt.Errorf("vectorize predicted mask: %w", err)
	}
	log.WithFields(logrus.Fields{
		"polygons": predPolygons.NumPolygons(),
		"elapsed":  time.Since(start),
	}).Info("vectorized prediction")

	roundTrip, err := raster.FromGeometry(predPolygons.AsGeometry(), width, height)
	if err != nil {
		return nil, fmt.Errorf("rasterize predicted polygons: %w", err)
	}
	if err := savePreview(cfg, "roundtrip_mask", func() (image.Image, error) {
		return preview.RenderMask(roundTrip, cfg.PreviewRegion)
	}); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Scale back to geographic coordinates and serialize exactly the way a
	// submission would be written, then re-parse so the final score reflects
	// the serialized geometry rather than the in-memory one.
	predGeo := geometry.Scale(predPolygons.AsGeometry(), scalers.Invert())
	wkt := predGeo.AsText()
	final, err := geom.UnmarshalWKT(wkt)
	if err != nil {
		return nil, fmt.Errorf("re-parse prediction WKT: %w", err)
	}
	finalJaccard, err := geometry.Jaccard(final, train)
	if err != nil {
		return nil, fmt.Errorf("score final polygons: %w", err)
	}
	log.WithFields(logrus.Fields{
		"prediction_bytes": len(wkt),
		"final_jaccard":    finalJaccard,
	}).Info("scored prediction")

	return &Result{
		ImageID:          cfg.ImageID,
		ClassType:        cfg.ClassType,
		TrainPixels:      truth.CountNonZero(),
		AveragePrecision: avgPrecision,
		PixelJaccard:     pixelScore,
		Polygons:         predPolygons.NumPolygons(),
		PredictionBytes:  len(wkt),
		FinalJaccard:     finalJaccard,
	}, nil
}

// savePreview renders and writes one stage preview when previews are
// enabled. Render errors fail the run; a preview that cannot be produced
// means the stage output is broken.
func savePreview(cfg Config, name string, render func() (image.Image, error)) error {
	if cfg.PreviewDir == "" {
		return nil
	}
	if err := os.MkdirAll(cfg.PreviewDir, 0o755); err != nil {
		return fmt.Errorf("create preview dir: %w", err)
	}
	img, err := render()
	if err != nil {
		return fmt.Errorf("render %s preview: %w", name, err)
	}
	path := filepath.Join(cfg.PreviewDir, name+"."+cfg.PreviewFormat)
	if err := preview.Save(img, path, cfg.PreviewQuality); err != nil {
		return fmt.Errorf("save %s preview: %w", name, err)
	}
	cfg.Log.WithField("path", path).Debug("wrote preview")
	return nil
}
