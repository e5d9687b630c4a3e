// Package svgtree defines the node interfaces the renderer consumes
// as its input tree, plus a minimal literal fixture set used by tests.
// It does not parse XML or resolve attributes: by the time a tree
// reaches this package every transform, paint, and reference has
// already been resolved by the parser that built it.
package svgtree

import (
	"image"

	"github.com/svgraster/raster/compositor"
	"github.com/svgraster/raster/filterdriver"
	"github.com/svgraster/raster/geom"
)

// Node is the common interface every tree element satisfies.
type Node interface {
	// Children returns the node's direct children in document order.
	// Leaf nodes (Path, raster Image) return nil.
	Children() []Node

	// ContentHash returns a stable hash of the node's own content
	// (not its children's), used as one input to the render cache's
	// fingerprint. Parsers are expected to derive this from the
	// node's resolved attributes so that two structurally identical
	// subtrees hash identically.
	ContentHash() uint64
}

// FillRule selects how a path's self-intersections resolve to filled
// regions.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// PaintOrder controls whether a path's fill or stroke is drawn first.
type PaintOrder int

const (
	PaintFillThenStroke PaintOrder = iota
	PaintStrokeThenFill
)

// RenderingMode hints at the speed/quality tradeoff for image
// resampling and similar operations. It mirrors the SVG
// image-rendering property's two practically-distinct values.
type RenderingMode int

const (
	RenderingAuto RenderingMode = iota
	RenderingOptimizeSpeed
)

// Paint is a resolved paint server: a flat color, or (for the
// pathrenderer test helper) a two-stop linear gradient. Full gradient
// and pattern support is out of scope; see pathrenderer's strokeCoverage doc.
type Paint struct {
	Color geom.RGBA

	// IsGradient, when true, overrides Color with a simple two-stop
	// linear gradient from GradientFrom to GradientTo.
	IsGradient   bool
	GradientFrom geom.Point
	GradientTo   geom.Point
	GradientStop0 geom.RGBA
	GradientStop1 geom.RGBA
}

// Stroke describes path stroking parameters.
type Stroke struct {
	Paint       Paint
	Width       float64
	DashArray   []float64
	DashOffset  float64
}

// ClipPath is a clip-path reference: the subtree whose filled regions
// punch holes in the target, plus an optional nested clip applied to
// that subtree itself.
type ClipPath struct {
	Root    Node
	Nested  *ClipPath
}

// MaskKind selects how a rendered mask subtree reduces to a coverage
// value per pixel.
type MaskKind int

const (
	MaskKindLuminance MaskKind = iota
	MaskKindAlpha
)

// Mask is a mask reference: the subtree to render into a coverage
// buffer, the declared region it's clipped to, its reduction kind,
// and an optional nested mask applied to that subtree itself.
type Mask struct {
	Root   Node
	Region geom.Rect
	Kind   MaskKind
	Nested *Mask
}

// Group is an interior node: it contributes a transform, opacity,
// blend mode, and optional effects, and composites its rendered
// children back into its parent.
type Group interface {
	Node

	// LocalTransform is the group's own affine transform, relative to
	// its parent.
	LocalTransform() geom.Transform

	// AbsTransform is the group's transform composed with every
	// ancestor transform down to the root.
	AbsTransform() geom.Transform

	Opacity() float64
	BlendMode() compositor.BlendMode

	// ShouldIsolate reports whether this group must become an
	// off-screen layer: true when opacity != 1, blend mode != Normal,
	// or any filter/clip/mask is present.
	ShouldIsolate() bool

	Filters() []filterdriver.Filter
	ClipPath() *ClipPath
	Mask() *Mask

	// LayerBBox is the group's content bounding box in its own local
	// user-space coordinates, before LocalTransform is applied.
	LayerBBox() geom.Rect
}

// Path is a leaf node describing a single filled and/or stroked path.
type Path interface {
	Node

	Visible() bool
	Fill() (Paint, FillRule, bool) // ok=false means unfilled
	Stroke() (Stroke, bool)        // ok=false means unstroked
	PaintOrder() PaintOrder

	// Segments returns the path geometry as a flattened sequence of
	// line segments (curves already tessellated by the parser).
	Segments() [][]geom.Point

	LocalTransform() geom.Transform
}

// ImageKind distinguishes a raster source from a nested vector
// document.
type ImageKind int

const (
	ImageKindRaster ImageKind = iota
	ImageKindVector
)

// Image is a leaf node that paints a raster source or rasterizes a
// nested SVG document into a view box.
type Image interface {
	Node

	Kind() ImageKind

	// Raster fields: valid when Kind() == ImageKindRaster.
	RasterPixels() image.Image
	NaturalWidth() int
	NaturalHeight() int

	// Vector fields: valid when Kind() == ImageKindVector.
	NestedRoot() Node
	Href() string

	ViewBox() geom.Rect
	Align() ImageAlign
	Slice() bool
	RenderingMode() RenderingMode
	LocalTransform() geom.Transform
}

// ImageAlign selects how a source rect is positioned within a
// destination view box once aspect ratio has been preserved,
// mirroring SVG's preserveAspectRatio align keywords in their
// collapsed (xMidYMid-style) form.
type ImageAlign int

const (
	AlignMid ImageAlign = iota
	AlignMin
	AlignMax
)

// Text nodes render as their flattened group of paths: the renderer
// treats a Text node identically to a Group, so Text is declared here
// only as documentation of the input contract, not as a distinct
// interface the renderer branches on.
type Text = Group
