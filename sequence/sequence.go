// Package sequence applies a resolved reading order to panel records.
//
// The order package produces a permutation of panel indices; this package
// turns that permutation into reordered panel lists with 1-based
// ReadingOrder stamps, the form downstream timeline and audio stages
// consume.
package sequence

import (
	"github.com/yomikata/koma/model"
	"github.com/yomikata/koma/order"
)

// Reorder returns panels rearranged according to the index permutation.
// The input slice is not modified. Invalid or duplicate indices are
// skipped and any panel the permutation misses is appended in original
// order, so the result always contains every input panel exactly once.
func Reorder(panels []model.Panel, perm []int) []model.Panel {
	result := make([]model.Panel, 0, len(panels))
	seen := make([]bool, len(panels))

	for _, idx := range perm {
		if idx < 0 || idx >= len(panels) || seen[idx] {
			continue
		}
		seen[idx] = true
		result = append(result, panels[idx])
	}

	for i, p := range panels {
		if !seen[i] {
			result = append(result, p)
		}
	}

	return result
}

// Annotate reorders panels by the permutation and stamps each with its
// 1-based reading-order position.
func Annotate(panels []model.Panel, perm []int) []model.Panel {
	result := Reorder(panels, perm)
	for i := range result {
		result[i].ReadingOrder = i + 1
	}
	return result
}

// AnnotatePage estimates the reading order for the panels on a page and
// returns them reordered and stamped. A nil estimator uses the default
// configuration.
func AnnotatePage(page model.Page, panels []model.Panel, est *order.Estimator) []model.Panel {
	if est == nil {
		est = order.NewEstimator()
	}

	boxes := make([]model.Box, len(panels))
	for i, p := range panels {
		boxes[i] = p.Box
	}

	perm := est.Estimate(boxes, page.Width, page.Height)
	return Annotate(panels, perm)
}
