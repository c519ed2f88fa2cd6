// Package model provides the geometric primitives and domain records shared
// across the library.
//
// The central type is [Box], a panel bounding box given by its corner
// coordinates (X1, Y1, X2, Y2) in page pixel space with the origin at the
// top-left corner. Box methods are total: degenerate and inverted boxes are
// tolerated everywhere and report zero area rather than failing.
//
// [Page] carries page dimensions and [Panel] is a detected panel record that
// can be stamped with its 1-based reading-order position.
package model
