package model

// Page holds the pixel dimensions of a manga page.
type Page struct {
	Width  float64
	Height float64
}

// IsValid reports whether both dimensions are positive finite numbers.
func (p Page) IsValid() bool {
	return isFinite(p.Width) && isFinite(p.Height) && p.Width > 0 && p.Height > 0
}

// Panel represents a detected manga panel.
type Panel struct {
	// Index is the panel's position in the detector's output list.
	Index int

	// Box is the panel's bounding box on the page.
	Box Box

	// ReadingOrder is the 1-based position in the page's reading sequence,
	// or 0 if the panel has not been sequenced yet.
	ReadingOrder int
}
