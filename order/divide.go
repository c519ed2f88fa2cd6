package order

import (
	"sort"

	"github.com/yomikata/koma/model"
)

// panelNode is one node of the division tree. The tree is an owned
// structure built fresh for every estimate; interior nodes have exactly two
// children stored in reading order (right or top subtree first).
type panelNode struct {
	box      model.Box
	children [2]*panelNode
	leaf     bool
}

// buildDivisionTree recursively splits the panel set along its best gutter.
// The leaf set of the returned tree covers every input panel exactly once;
// when no split is possible (no gutter, one-sided split, or the depth cap
// is exhausted) the remaining panels collapse into a single merged leaf.
func buildDivisionTree(panels []model.Box, page model.Page, cfg Config, depth int) *panelNode {
	if len(panels) == 0 {
		return &panelNode{
			box:  model.Box{X2: page.Width, Y2: page.Height},
			leaf: true,
		}
	}
	if len(panels) == 1 {
		return &panelNode{box: panels[0], leaf: true}
	}
	if depth <= 0 {
		return mergedLeaf(panels)
	}

	horizontal, vertical := detectGutters(panels, cfg.MinGutterSize)
	gutter := selectGutter(horizontal, vertical, panels)
	if gutter == nil {
		return mergedLeaf(panels)
	}

	first, second := partition(panels, *gutter)
	if len(first) == 0 || len(second) == 0 {
		return mergedLeaf(panels)
	}

	return &panelNode{
		box: unionBox(panels),
		children: [2]*panelNode{
			buildDivisionTree(first, page, cfg, depth-1),
			buildDivisionTree(second, page, cfg, depth-1),
		},
	}
}

// partition splits panels by which side of the gutter their center falls
// on. The first group is the one read first: for a vertical gutter the
// panels whose center X is at or beyond the gutter position (the right
// side, read first in RTL), for a horizontal gutter the panels whose center
// Y is strictly above it. A center exactly on the position lands on the
// ">= side" in both cases: the first group for vertical gutters, the second
// for horizontal ones.
func partition(panels []model.Box, g Gutter) (first, second []model.Box) {
	for _, b := range panels {
		c := b.Center()
		if g.Orientation == Vertical {
			if c.X >= g.Position {
				first = append(first, b)
			} else {
				second = append(second, b)
			}
		} else {
			if c.Y < g.Position {
				first = append(first, b)
			} else {
				second = append(second, b)
			}
		}
	}
	return first, second
}

// mergedLeaf collapses panels that can no longer be divided into one leaf
// covering their union. The panels are sorted by (-centerX, centerY) first
// so that any order recoverable downstream is biased toward right-to-left,
// top-to-bottom. Fine-grained order inside the merged group is lost; this
// is the deliberate lossy fallback.
func mergedLeaf(panels []model.Box) *panelNode {
	sorted := make([]model.Box, len(panels))
	copy(sorted, panels)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].Center(), sorted[j].Center()
		if ci.X != cj.X {
			return ci.X > cj.X
		}
		return ci.Y < cj.Y
	})

	return &panelNode{box: unionBox(sorted), leaf: true}
}

// unionBox returns the bounding box of all panels.
func unionBox(panels []model.Box) model.Box {
	box := panels[0]
	for _, b := range panels[1:] {
		box = box.Union(b)
	}
	return box
}

// collectLeaves walks the tree depth-first, children in stored order, and
// appends every leaf box to dst. Since children are stored reading-first,
// the result is the geometric reading sequence.
func (n *panelNode) collectLeaves(dst []model.Box) []model.Box {
	if n.leaf {
		return append(dst, n.box)
	}
	for _, child := range n.children {
		dst = child.collectLeaves(dst)
	}
	return dst
}
