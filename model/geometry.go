package model

import "math"

// Point represents a 2D point in page pixel space.
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Box represents a panel bounding box by its corner coordinates.
// Coordinates use the image convention: the origin is the top-left corner
// of the page and Y increases downward. A well-formed box has X2 >= X1 and
// Y2 >= Y1, but detectors occasionally emit degenerate or inverted boxes,
// so none of the methods assume it.
type Box struct {
	X1, Y1, X2, Y2 float64
}

// NewBox creates a bounding box from corner coordinates.
func NewBox(x1, y1, x2, y2 float64) Box {
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the horizontal extent of the box.
// Negative for inverted boxes.
func (b Box) Width() float64 {
	return b.X2 - b.X1
}

// Height returns the vertical extent of the box.
// Negative for inverted boxes.
func (b Box) Height() float64 {
	return b.Y2 - b.Y1
}

// Center returns the center point.
func (b Box) Center() Point {
	return Point{
		X: (b.X1 + b.X2) / 2,
		Y: (b.Y1 + b.Y2) / 2,
	}
}

// Area returns the area of the box.
// Degenerate and inverted boxes report zero area.
func (b Box) Area() float64 {
	return math.Max(0, b.Width()*b.Height())
}

// Union returns the smallest box covering both boxes.
func (b Box) Union(other Box) Box {
	return Box{
		X1: math.Min(b.X1, other.X1),
		Y1: math.Min(b.Y1, other.Y1),
		X2: math.Max(b.X2, other.X2),
		Y2: math.Max(b.Y2, other.Y2),
	}
}

// Overlap returns the intersection area with another box.
// Boxes that only touch at an edge or corner have zero overlap.
func (b Box) Overlap(other Box) float64 {
	x1 := math.Max(b.X1, other.X1)
	y1 := math.Max(b.Y1, other.Y1)
	x2 := math.Min(b.X2, other.X2)
	y2 := math.Min(b.Y2, other.Y2)

	if x2 <= x1 || y2 <= y1 {
		return 0
	}

	return (x2 - x1) * (y2 - y1)
}

// IoU returns the intersection-over-union ratio with another box.
// Returns a value between 0 and 1.
func (b Box) IoU(other Box) float64 {
	overlap := b.Overlap(other)
	union := b.Area() + other.Area() - overlap

	if union == 0 {
		return 0
	}

	return overlap / union
}

// Contains checks if a point is inside the box, edges included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.X1 && p.X <= b.X2 &&
		p.Y >= b.Y1 && p.Y <= b.Y2
}

// IsFinite reports whether all four coordinates are finite numbers.
func (b Box) IsFinite() bool {
	return isFinite(b.X1) && isFinite(b.Y1) && isFinite(b.X2) && isFinite(b.Y2)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
