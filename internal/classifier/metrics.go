package classifier

import (
	"fmt"
	"sort"
)

// AveragePrecision computes the area under the precision-recall curve for
// binary labels y scored by the model.
//
// Samples are ranked by descending score; precision is accumulated at every
// rank that recalls a positive. Ties are broken by input order. Returns 0
// when y contains no positives.
func AveragePrecision(y []uint8, scores []float64) (float64, error) {
	if len(y) != len(scores) {
		return 0, fmt.Errorf("got %d labels for %d scores", len(y), len(scores))
	}

	positives := 0
	for _, v := range y {
		if v != 0 {
			positives++
		}
	}
	if positives == 0 {
		return 0, nil
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	var sum float64
	tp := 0
	for rank, idx := range order {
		if y[idx] != 0 {
			tp++
			sum += float64(tp) / float64(rank+1)
		}
	}
	return sum / float64(positives), nil
}
