package main

import (
	"fmt"
	"image"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"satpoly/internal/pipeline"
)

type options struct {
	dataDir        string
	imageID        string
	classType      string
	threshold      float64
	epsilon        float64
	minArea        float64
	smoothRadius   int
	seed           int64
	previewDir     string
	previewFormat  string
	previewQuality int
	previewRegion  string
	logLevel       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "satpoly",
		Short: "Train a pixel classifier on a labeled satellite scene and vectorize its prediction",
		Long: `satpoly runs the full training and prediction pipeline for a pixel-based
footprint classifier: it rasterizes the ground-truth polygons of one scene
into a mask, trains a logistic regression on per-pixel band values, predicts
a probability surface, thresholds it, vectorizes the result back into
polygons, and scores the round trip against the ground truth.`,
		Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.dataDir, "data-dir", "data", "dataset root with grid_sizes.csv, train_wkt_v4.csv and three_band/")
	f.StringVar(&opts.imageID, "image", "6120_2_2", "scene image id")
	f.StringVar(&opts.classType, "class", "1", "ground-truth class type (1 = buildings)")
	f.Float64Var(&opts.threshold, "threshold", 0.3, "probability threshold for the binary mask")
	f.Float64Var(&opts.epsilon, "epsilon", 10, "polygon simplification tolerance in pixels")
	f.Float64Var(&opts.minArea, "min-area", 10, "minimum polygon area in square pixels")
	f.IntVar(&opts.smoothRadius, "smooth-radius", 0, "morphological opening radius for the binary mask (0 = off)")
	f.Int64Var(&opts.seed, "seed", 42, "training shuffle seed")
	f.StringVar(&opts.previewDir, "preview-dir", "", "write stage previews to this directory")
	f.StringVar(&opts.previewFormat, "preview-format", "png", "preview format: png|jpeg|webp")
	f.IntVar(&opts.previewQuality, "preview-quality", 90, "preview quality for lossy formats")
	f.StringVar(&opts.previewRegion, "preview-region", "", "preview crop as x1,y1,x2,y2 (default: whole scene)")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug|info|warn|error")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	log := logrus.New()
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
	}
	log.SetLevel(level)

	region, err := parseRegion(opts.previewRegion)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.Run(ctx, pipeline.Config{
		DataDir:        opts.dataDir,
		ImageID:        opts.imageID,
		ClassType:      opts.classType,
		Threshold:      &opts.threshold,
		Epsilon:        &opts.epsilon,
		MinArea:        &opts.minArea,
		SmoothRadius:   opts.smoothRadius,
		Seed:           opts.seed,
		PreviewDir:     opts.previewDir,
		PreviewFormat:  opts.previewFormat,
		PreviewQuality: opts.previewQuality,
		PreviewRegion:  region,
		Log:            log,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "image %s class %s\n", result.ImageID, result.ClassType)
	fmt.Fprintf(out, "  average precision %.4f\n", result.AveragePrecision)
	fmt.Fprintf(out, "  pixel jaccard     %.4f\n", result.PixelJaccard.Jaccard)
	fmt.Fprintf(out, "  polygons          %d\n", result.Polygons)
	fmt.Fprintf(out, "  prediction size   %d bytes\n", result.PredictionBytes)
	fmt.Fprintf(out, "  final jaccard     %.4f\n", result.FinalJaccard)
	return nil
}

// parseRegion parses "x1,y1,x2,y2" into a rectangle. An empty string keeps
// the zero rectangle, which previews the whole scene.
func parseRegion(s string) (image.Rectangle, error) {
	if s == "" {
		return image.Rectangle{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("invalid preview region %q: want x1,y1,x2,y2", s)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("invalid preview region %q: %w", s, err)
		}
		vals[i] = v
	}
	return image.Rect(vals[0], vals[1], vals[2], vals[3]), nil
}
