// Package order resolves the reading order of manga panels.
//
// Manga pages are read right-to-left, top-to-bottom. Given the bounding
// boxes of the panels on a page, the [Estimator] produces a permutation of
// the input indices in that reading sequence using recursive gutter-based
// page division: the panel set is split along the most balanced empty band
// (gutter) between panels, each half is split again, and the resulting
// binary tree is walked depth-first with the right (or top) subtree first.
//
// The estimator is total. It never panics for finite input: an empty panel
// list yields an empty order, a single panel yields [0], and pages where no
// usable gutter exists degrade to a direct geometric sort. Input containing
// NaN or infinite coordinates yields the identity permutation.
//
// Basic usage:
//
//	est := order.NewEstimator()
//	seq := est.Estimate(boxes, pageWidth, pageHeight)
//
// The common four-strip "4-koma" layout is recognized up front and ordered
// strictly top-to-bottom without building a division tree. Auto-detection
// can be overridden per page via [Estimator.EstimateWithLayout].
//
// When a horizontal and a vertical gutter split the panel set equally well,
// the horizontal one wins: candidates are scored in enumeration order,
// horizontal before vertical, and only a strictly better score displaces an
// earlier candidate. The rule is arbitrary but deterministic.
package order
