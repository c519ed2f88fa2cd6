package order

import (
	"math"

	"github.com/yomikata/koma/model"
)

// Estimator resolves manga panel reading order. It is stateless apart from
// its immutable configuration, so a single Estimator may serve concurrent
// pages.
type Estimator struct {
	config Config
}

// NewEstimator creates an estimator with the default thresholds.
func NewEstimator() *Estimator {
	return &Estimator{config: DefaultConfig()}
}

// NewEstimatorWithConfig creates an estimator with custom thresholds.
func NewEstimatorWithConfig(config Config) *Estimator {
	return &Estimator{config: config}
}

// Config returns the estimator's configuration.
func (e *Estimator) Config() Config {
	return e.config
}

// Estimate returns the indices of panels in right-to-left, top-to-bottom
// reading order. The result is always a permutation of [0, len(panels)):
// empty input yields an empty order, a single panel yields [0], and pages
// that resist division degrade to a direct geometric sort rather than
// failing. 4-koma layouts are auto-detected.
func (e *Estimator) Estimate(panels []model.Box, pageWidth, pageHeight float64) []int {
	return e.EstimateWithLayout(panels, pageWidth, pageHeight, nil)
}

// EstimateWithLayout is Estimate with explicit control over the 4-koma
// path: nil auto-detects, a non-nil value forces the layout decision.
func (e *Estimator) EstimateWithLayout(panels []model.Box, pageWidth, pageHeight float64, fourKoma *bool) []int {
	if len(panels) == 0 {
		return []int{}
	}

	// Non-finite geometry makes every comparison below meaningless, so
	// the input order is returned as-is. See the package documentation.
	if !finiteInput(panels, pageWidth, pageHeight) {
		return identity(len(panels))
	}

	if len(panels) == 1 {
		return []int{0}
	}

	isFourKoma := fourKoma != nil && *fourKoma
	if fourKoma == nil {
		isFourKoma = e.IsFourKoma(panels, pageWidth)
	}
	if isFourKoma {
		return orderByVerticalCenter(panels)
	}

	page := model.Page{Width: pageWidth, Height: pageHeight}
	tree := buildDivisionTree(panels, page, e.config, e.config.MaxDepth)
	sequence := tree.collectLeaves(nil)

	return reconcile(sequence, panels)
}

// reconcile maps the geometric traversal sequence back onto the caller's
// panel indices. For each traversal box the first unused panel with
// positive-area overlap is an immediate match; failing that, the unused
// panel with the nearest center wins. Any index still unused once the
// sequence is exhausted (merged leaves can cover several panels) is
// appended in original list order, so the result is always a permutation.
func reconcile(sequence []model.Box, panels []model.Box) []int {
	used := make([]bool, len(panels))
	result := make([]int, 0, len(panels))

	for _, seqBox := range sequence {
		seqCenter := seqBox.Center()
		best := -1
		bestDist := math.Inf(1)

		for i, b := range panels {
			if used[i] {
				continue
			}

			dist := seqCenter.Distance(b.Center())
			if seqBox.Overlap(b) > 0 {
				dist = 0
			}

			if dist < bestDist {
				bestDist = dist
				best = i
			}
		}

		if best >= 0 {
			used[best] = true
			result = append(result, best)
		}
	}

	for i := range panels {
		if !used[i] {
			result = append(result, i)
		}
	}

	return result
}

func finiteInput(panels []model.Box, pageWidth, pageHeight float64) bool {
	if math.IsNaN(pageWidth) || math.IsInf(pageWidth, 0) ||
		math.IsNaN(pageHeight) || math.IsInf(pageHeight, 0) {
		return false
	}
	for _, b := range panels {
		if !b.IsFinite() {
			return false
		}
	}
	return true
}

func identity(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}
