package order

import (
	"math"
	"sort"

	"github.com/yomikata/koma/model"
)

// Orientation indicates which way a gutter runs across the page.
type Orientation int

const (
	// Horizontal gutters run across the page and divide top from bottom.
	Horizontal Orientation = iota
	// Vertical gutters run down the page and divide right from left.
	Vertical
)

// String returns a string representation of the orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Gutter represents an empty band between panels that can divide the panel
// set in two. Gutters are transient: they exist only while one division
// step decides where to split.
type Gutter struct {
	// Orientation of the band.
	Orientation Orientation

	// Position is the center line of the band: a Y coordinate for
	// horizontal gutters, an X coordinate for vertical ones.
	Position float64

	// Start and End bound the band along the opposite axis, derived from
	// the panels adjacent to the gap.
	Start float64
	End   float64
}

// axisRange is a panel's extent along one axis.
type axisRange struct {
	start, end float64
}

// detectGutters finds the horizontal and vertical gutters of at least
// minSize between panels. Panels are projected onto each axis, the
// projections are sorted by their start coordinate, and every adjacent pair
// whose gap reaches minSize yields a gutter. The sorts are stable so equal
// start coordinates keep input order and identical input always yields
// identical gutters. A set of one panel or fewer has no gutters.
func detectGutters(panels []model.Box, minSize float64) (horizontal, vertical []Gutter) {
	if len(panels) <= 1 {
		return nil, nil
	}

	// Horizontal gutters: gaps between vertical extents.
	yRanges := make([]axisRange, len(panels))
	for i, b := range panels {
		yRanges[i] = axisRange{start: b.Y1, end: b.Y2}
	}
	sort.SliceStable(yRanges, func(i, j int) bool {
		return yRanges[i].start < yRanges[j].start
	})

	for i := 0; i < len(yRanges)-1; i++ {
		bottom := yRanges[i].end
		top := yRanges[i+1].start

		if top-bottom < minSize {
			continue
		}

		// Span across the panels plausibly on either side of the gap,
		// widened by minSize as tolerance.
		left := math.Inf(1)
		right := math.Inf(-1)
		for _, b := range panels {
			if b.Y2 <= bottom+minSize && b.X1 < left {
				left = b.X1
			}
			if b.Y1 >= top-minSize && b.X2 > right {
				right = b.X2
			}
		}

		horizontal = append(horizontal, Gutter{
			Orientation: Horizontal,
			Position:    (top + bottom) / 2,
			Start:       left,
			End:         right,
		})
	}

	// Vertical gutters: gaps between horizontal extents.
	xRanges := make([]axisRange, len(panels))
	for i, b := range panels {
		xRanges[i] = axisRange{start: b.X1, end: b.X2}
	}
	sort.SliceStable(xRanges, func(i, j int) bool {
		return xRanges[i].start < xRanges[j].start
	})

	for i := 0; i < len(xRanges)-1; i++ {
		right := xRanges[i].end
		left := xRanges[i+1].start

		if left-right < minSize {
			continue
		}

		top := math.Inf(1)
		bottom := math.Inf(-1)
		for _, b := range panels {
			if b.X2 <= right+minSize && b.Y1 < top {
				top = b.Y1
			}
			if b.X1 >= left-minSize && b.Y2 > bottom {
				bottom = b.Y2
			}
		}

		vertical = append(vertical, Gutter{
			Orientation: Vertical,
			Position:    (left + right) / 2,
			Start:       top,
			End:         bottom,
		})
	}

	return horizontal, vertical
}

// selectGutter picks the candidate that divides the panel set most evenly,
// or nil if no candidate puts panels on both sides. Each candidate is
// scored by |sideA - sideB| / total; the minimum wins. Ties keep the first
// candidate in enumeration order, horizontal before vertical.
func selectGutter(horizontal, vertical []Gutter, panels []model.Box) *Gutter {
	var best *Gutter
	bestScore := math.Inf(1)

	consider := func(g Gutter) {
		var before, after int
		for _, b := range panels {
			c := b.Center()
			coord := c.Y
			if g.Orientation == Vertical {
				coord = c.X
			}
			if coord < g.Position {
				before++
			} else {
				after++
			}
		}

		// A gutter with everything on one side divides nothing.
		if before == 0 || after == 0 {
			return
		}

		score := math.Abs(float64(before-after)) / float64(len(panels))
		if score < bestScore {
			bestScore = score
			best = &g
		}
	}

	for _, g := range horizontal {
		consider(g)
	}
	for _, g := range vertical {
		consider(g)
	}

	return best
}
