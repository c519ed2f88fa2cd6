package order

import (
	"math"
	"sort"

	"github.com/yomikata/koma/model"
)

// IsFourKoma reports whether the panels form a 4-koma layout: exactly four
// near-full-width strips stacked at roughly even vertical intervals. Such
// pages are read strictly top-to-bottom, so the estimator orders them by
// vertical center without building a division tree.
//
// The layout qualifies when the mean panel width is at least
// FourKomaWidthRatio of the page width and every gap between consecutive
// sorted vertical centers deviates from the mean gap by strictly less than
// FourKomaGapTolerance of the mean.
func (e *Estimator) IsFourKoma(panels []model.Box, pageWidth float64) bool {
	if len(panels) != 4 {
		return false
	}

	totalWidth := 0.0
	for _, b := range panels {
		totalWidth += b.Width()
	}
	if totalWidth/4 < pageWidth*e.config.FourKomaWidthRatio {
		return false
	}

	centers := make([]float64, len(panels))
	for i, b := range panels {
		centers[i] = b.Center().Y
	}
	sort.Float64s(centers)

	gaps := make([]float64, 0, len(centers)-1)
	total := 0.0
	for i := 0; i < len(centers)-1; i++ {
		gap := centers[i+1] - centers[i]
		gaps = append(gaps, gap)
		total += gap
	}
	mean := total / float64(len(gaps))

	// Panels stacked at identical centers have a zero mean gap and can
	// never satisfy the strict deviation bound.
	for _, gap := range gaps {
		if math.Abs(gap-mean) >= mean*e.config.FourKomaGapTolerance {
			return false
		}
	}

	return true
}

// orderByVerticalCenter returns the panel indices sorted by ascending
// vertical center. Ties keep the original input order.
func orderByVerticalCenter(panels []model.Box) []int {
	indices := make([]int, len(panels))
	for i := range indices {
		indices[i] = i
	}

	sort.SliceStable(indices, func(i, j int) bool {
		return panels[indices[i]].Center().Y < panels[indices[j]].Center().Y
	})

	return indices
}
