package svgtree

import (
	"image"

	"github.com/svgraster/raster/compositor"
	"github.com/svgraster/raster/filterdriver"
	"github.com/svgraster/raster/geom"
)

// LiteralGroup is a plain-struct Group implementation for tests and
// for embedding applications that already hold a resolved tree in
// some other shape and just need to satisfy this package's
// interfaces. Production parsers are free to implement Group directly
// over their own node types instead.
type LiteralGroup struct {
	ContentHashValue uint64
	ChildNodes       []Node
	Local            geom.Transform
	Abs              geom.Transform
	OpacityValue     float64
	Blend            compositor.BlendMode
	FilterList       []filterdriver.Filter
	Clip             *ClipPath
	MaskRef          *Mask
	BBox             geom.Rect
}

func (g *LiteralGroup) Children() []Node             { return g.ChildNodes }
func (g *LiteralGroup) ContentHash() uint64           { return g.ContentHashValue }
func (g *LiteralGroup) LocalTransform() geom.Transform { return g.Local }
func (g *LiteralGroup) AbsTransform() geom.Transform   { return g.Abs }
func (g *LiteralGroup) Opacity() float64               { return g.OpacityValue }
func (g *LiteralGroup) BlendMode() compositor.BlendMode { return g.Blend }
func (g *LiteralGroup) Filters() []filterdriver.Filter  { return g.FilterList }
func (g *LiteralGroup) ClipPath() *ClipPath             { return g.Clip }
func (g *LiteralGroup) Mask() *Mask                     { return g.MaskRef }
func (g *LiteralGroup) LayerBBox() geom.Rect            { return g.BBox }

// ShouldIsolate reports whether any isolation-triggering attribute is
// set: opacity other than 1, a non-Normal blend mode, a filter chain,
// a clip-path, or a mask.
func (g *LiteralGroup) ShouldIsolate() bool {
	if g.OpacityValue != 1 {
		return true
	}
	if g.Blend != compositor.BlendNormal {
		return true
	}
	if len(g.FilterList) > 0 {
		return true
	}
	if g.Clip != nil || g.MaskRef != nil {
		return true
	}
	return false
}

// LiteralPath is a plain-struct Path implementation for tests.
type LiteralPath struct {
	ContentHashValue uint64
	VisibleValue     bool
	FillPaint        Paint
	FillRuleValue    FillRule
	HasFill          bool
	StrokeValue      Stroke
	HasStroke        bool
	Order            PaintOrder
	SegmentList      [][]geom.Point
	Local            geom.Transform
}

func (p *LiteralPath) Children() []Node              { return nil }
func (p *LiteralPath) ContentHash() uint64            { return p.ContentHashValue }
func (p *LiteralPath) Visible() bool                  { return p.VisibleValue }
func (p *LiteralPath) PaintOrder() PaintOrder         { return p.Order }
func (p *LiteralPath) Segments() [][]geom.Point       { return p.SegmentList }
func (p *LiteralPath) LocalTransform() geom.Transform { return p.Local }

func (p *LiteralPath) Fill() (Paint, FillRule, bool) {
	return p.FillPaint, p.FillRuleValue, p.HasFill
}

func (p *LiteralPath) Stroke() (Stroke, bool) {
	return p.StrokeValue, p.HasStroke
}

// LiteralImage is a plain-struct Image implementation for tests.
type LiteralImage struct {
	ContentHashValue uint64
	KindValue        ImageKind
	Pixels           image.Image
	NaturalW         int
	NaturalH         int
	Nested           Node
	HrefValue        string
	ViewBoxValue     geom.Rect
	AlignValue       ImageAlign
	SliceValue       bool
	Mode             RenderingMode
	Local            geom.Transform
}

func (i *LiteralImage) Children() []Node { return nil }
func (i *LiteralImage) ContentHash() uint64            { return i.ContentHashValue }
func (i *LiteralImage) Kind() ImageKind                { return i.KindValue }
func (i *LiteralImage) RasterPixels() image.Image      { return i.Pixels }
func (i *LiteralImage) NaturalWidth() int              { return i.NaturalW }
func (i *LiteralImage) NaturalHeight() int             { return i.NaturalH }
func (i *LiteralImage) NestedRoot() Node               { return i.Nested }
func (i *LiteralImage) Href() string                   { return i.HrefValue }
func (i *LiteralImage) ViewBox() geom.Rect             { return i.ViewBoxValue }
func (i *LiteralImage) Align() ImageAlign              { return i.AlignValue }
func (i *LiteralImage) Slice() bool                    { return i.SliceValue }
func (i *LiteralImage) RenderingMode() RenderingMode   { return i.Mode }
func (i *LiteralImage) LocalTransform() geom.Transform { return i.Local }

// NewRect builds a single-path rectangle fixture, filled with color,
// at the given local position and size. Used throughout the test
// suite to stand in for a parsed <rect>.
func NewRect(x, y, w, h float64, color geom.RGBA) *LiteralPath {
	pts := []geom.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
	return &LiteralPath{
		VisibleValue:  true,
		FillPaint:     Paint{Color: color},
		FillRuleValue: FillRuleNonZero,
		HasFill:       true,
		SegmentList:   [][]geom.Point{pts},
		Local:         geom.Identity(),
	}
}
