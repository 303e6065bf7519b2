package raster

import "fmt"

// PixelJaccardResult contains the pixel-level overlap between a predicted
// mask and ground truth.
type PixelJaccardResult struct {
	TruePositives  int     `json:"true_positives"`
	FalsePositives int     `json:"false_positives"`
	FalseNegatives int     `json:"false_negatives"`
	Jaccard        float64 `json:"jaccard"`
}

// PixelJaccard computes tp / (tp + fp + fn) between two masks of equal size.
//
// When both masks are entirely background the Jaccard index is reported as 0.
func PixelJaccard(pred, truth *Mask) (*PixelJaccardResult, error) {
	if pred.width != truth.width || pred.height != truth.height {
		return nil, fmt.Errorf("mask size mismatch: %dx%d vs %dx%d",
			pred.width, pred.height, truth.width, truth.height)
	}

	var tp, fp, fn int
	for i := range pred.pix {
		p := pred.pix[i] != 0
		t := truth.pix[i] != 0
		switch {
		case p && t:
			tp++
		case p && !t:
			fp++
		case !p && t:
			fn++
		}
	}

	res := &PixelJaccardResult{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}
	if denom := tp + fp + fn; denom > 0 {
		res.Jaccard = float64(tp) / float64(denom)
	}
	return res, nil
}
