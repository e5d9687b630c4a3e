// Package filterdriver invokes the concrete filter primitive library
// over a render sub-buffer, in the order a group declares its
// filters. It owns no caching: the group's own cache entry already
// covers the post-filter pixel result, so a second cache here would
// only duplicate memory for no benefit.
package filterdriver

import (
	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/internal/filter"
	"github.com/svgraster/raster/pixbuf"
)

// Filter is one primitive in a group's filter chain. Implementations
// wrap internal/filter's concrete pixel algorithms.
type Filter interface {
	// apply reads src and writes the filtered result into dst over bounds, in device
	// pixels. src and dst may be the same buffer only if the
	// underlying primitive tolerates in-place application; callers
	// that can't guarantee this pass distinct buffers.
	apply(src, dst *pixbuf.PixelBuffer, bounds geom.Rect)

	// expandBounds returns how far the filter's effect can reach
	// outside its nominal input region, used to size the sub-buffer
	// large enough to hold the filtered result without clipping.
	expandBounds(input geom.Rect) geom.Rect
}

// GaussianBlur blurs its input independently along each axis,
// grounded in internal/filter's separable two-pass implementation.
// RadiusX and RadiusY are standard deviations in device pixels.
type GaussianBlur struct {
	RadiusX float64
	RadiusY float64
}

func (f GaussianBlur) apply(src, dst *pixbuf.PixelBuffer, bounds geom.Rect) {
	(&filter.BlurFilter{RadiusX: f.RadiusX, RadiusY: f.RadiusY}).Apply(src, dst, bounds)
}

func (f GaussianBlur) expandBounds(input geom.Rect) geom.Rect {
	return (&filter.BlurFilter{RadiusX: f.RadiusX, RadiusY: f.RadiusY}).ExpandBounds(input)
}

// ColorMatrix applies the standard SVG 4x5 feColorMatrix
// transformation. Matrix is row-major: rows R,G,B,A, five columns
// each (four multipliers plus a bias), matching feColorMatrix's
// values attribute layout.
//
// maskengine's luminance-to-alpha reduction and this filter's
// canonical luminance row share the same BT.709 constants, so a
// caller that wants luminanceToAlpha semantics can build one via
// NewLuminanceToAlphaColorMatrix.
type ColorMatrix struct {
	Matrix [20]float64
}

// NewLuminanceToAlphaColorMatrix returns the canonical feColorMatrix
// type="luminanceToAlpha" matrix: output alpha is the BT.709 luminance
// of the input, RGB zeroed.
func NewLuminanceToAlphaColorMatrix() ColorMatrix {
	var m ColorMatrix
	m.Matrix[15], m.Matrix[16], m.Matrix[17] = 0.2126, 0.7152, 0.0722
	return m
}

func (f ColorMatrix) apply(src, dst *pixbuf.PixelBuffer, bounds geom.Rect) {
	var m32 [20]float32
	for i, v := range f.Matrix {
		m32[i] = float32(v)
	}
	(&filter.ColorMatrixFilter{Matrix: m32}).Apply(src, dst, bounds)
}

func (f ColorMatrix) expandBounds(input geom.Rect) geom.Rect {
	return (&filter.ColorMatrixFilter{}).ExpandBounds(input)
}

// DropShadow composites a blurred, offset, colorized copy of the
// input's alpha channel beneath the input, matching feDropShadow's
// defined equivalence to feGaussianBlur + feOffset + feFlood +
// feComposite.
type DropShadow struct {
	Dx, Dy       float64
	StdDeviation float64
	Color        geom.RGBA
}

func (f DropShadow) apply(src, dst *pixbuf.PixelBuffer, bounds geom.Rect) {
	(&filter.DropShadowFilter{
		OffsetX:    f.Dx,
		OffsetY:    f.Dy,
		BlurRadius: f.StdDeviation,
		Color:      f.Color,
	}).Apply(src, dst, bounds)
}

func (f DropShadow) expandBounds(input geom.Rect) geom.Rect {
	return (&filter.DropShadowFilter{
		OffsetX:    f.Dx,
		OffsetY:    f.Dy,
		BlurRadius: f.StdDeviation,
	}).ExpandBounds(input)
}

// Apply runs filters in declared order over buf, using pool to
// acquire the scratch buffer each primitive writes into and releasing
// scratch buffers back to pool as it goes. bounds is the sub-buffer's
// full extent in its own local pixel space (0,0)-(w,h); it is not the
// cache fingerprint's transform, just the region filters are allowed
// to read and write.
//
// Apply returns the final buffer holding the filtered result, which
// is buf itself when filters is empty, or the last scratch buffer
// acquired from pool otherwise. Callers must not assume the returned
// buffer is buf once filters is non-empty.
func Apply(filters []Filter, buf *pixbuf.PixelBuffer, bounds geom.Rect, pool *pixbuf.Pool) *pixbuf.PixelBuffer {
	current := buf
	for _, f := range filters {
		scratch, ok := pool.Acquire(current.Width(), current.Height())
		if !ok {
			continue
		}
		f.apply(current, scratch, bounds)
		if current != buf {
			pool.Release(current)
		}
		current = scratch
	}
	return current
}

// ExpandBounds folds expandBounds over filters in order, returning how
// far the final filtered result can extend past input.
func ExpandBounds(filters []Filter, input geom.Rect) geom.Rect {
	bounds := input
	for _, f := range filters {
		bounds = f.expandBounds(bounds)
	}
	return bounds
}
