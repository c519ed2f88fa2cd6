// Package koma provides a fluent API for resolving the reading order of
// manga panels.
//
// Basic usage:
//
//	seq := koma.Order(boxes, pageWidth, pageHeight)
//
// With options:
//
//	seq := koma.Panels(boxes).
//	    PageSize(1654, 2339).
//	    MinGutter(8).
//	    FourKoma(false).
//	    Order()
//
// For advanced use cases, the lower-level order package is also available.
package koma

import (
	"github.com/yomikata/koma/model"
	"github.com/yomikata/koma/order"
	"github.com/yomikata/koma/sequence"
)

// Request accumulates panel geometry and options for one reading-order
// estimate. Requests are built with Panels and the chained option methods,
// and resolved with Order or Annotated.
type Request struct {
	boxes      []model.Box
	pageWidth  float64
	pageHeight float64
	config     order.Config
	fourKoma   *bool
}

// Panels starts a request for the given panel bounding boxes.
// The boxes are only read, never modified.
func Panels(boxes []model.Box) *Request {
	return &Request{
		boxes:  boxes,
		config: order.DefaultConfig(),
	}
}

// PageSize sets the page dimensions in pixels.
func (r *Request) PageSize(width, height float64) *Request {
	r.pageWidth = width
	r.pageHeight = height
	return r
}

// MinGutter overrides the minimum gutter size threshold.
func (r *Request) MinGutter(size float64) *Request {
	r.config.MinGutterSize = size
	return r
}

// MaxDepth overrides the division recursion depth cap.
func (r *Request) MaxDepth(depth int) *Request {
	r.config.MaxDepth = depth
	return r
}

// FourKoma forces the 4-koma layout decision instead of auto-detecting.
func (r *Request) FourKoma(fourKoma bool) *Request {
	r.fourKoma = &fourKoma
	return r
}

// Config replaces all thresholds at once.
func (r *Request) Config(config order.Config) *Request {
	r.config = config
	return r
}

// Order resolves the request and returns the panel indices in reading
// order. The result is always a permutation of the input indices.
func (r *Request) Order() []int {
	est := order.NewEstimatorWithConfig(r.config)
	return est.EstimateWithLayout(r.boxes, r.pageWidth, r.pageHeight, r.fourKoma)
}

// Annotated resolves the request and returns panel records in reading
// order, each stamped with its 1-based ReadingOrder and carrying the
// original input index.
func (r *Request) Annotated() []model.Panel {
	panels := make([]model.Panel, len(r.boxes))
	for i, b := range r.boxes {
		panels[i] = model.Panel{Index: i, Box: b}
	}
	return sequence.Annotate(panels, r.Order())
}

// Order is a one-shot convenience that resolves reading order with the
// default thresholds.
//
// Example:
//
//	seq := koma.Order(boxes, 1654, 2339)
func Order(boxes []model.Box, pageWidth, pageHeight float64) []int {
	return Panels(boxes).PageSize(pageWidth, pageHeight).Order()
}
