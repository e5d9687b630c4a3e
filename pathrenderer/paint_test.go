package pathrenderer

import (
	"testing"

	"github.com/svgraster/raster/compositor"
	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/pixbuf"
	"github.com/svgraster/raster/svgtree"
)

func TestRenderFillsFlatColorRect(t *testing.T) {
	target, _ := pixbuf.NewZeroed(10, 10)
	rect := svgtree.NewRect(0, 0, 10, 10, geom.RGB(0, 1, 0))

	Render(rect, compositor.BlendSourceOver, geom.Identity(), target)

	r, g, b, a := target.GetPremultiplied(5, 5)
	if r != 0 || g != 255 || b != 0 || a != 255 {
		t.Errorf("filled rect center = (%d,%d,%d,%d), want opaque green", r, g, b, a)
	}
}

func TestRenderSkipsInvisiblePath(t *testing.T) {
	target, _ := pixbuf.NewZeroed(4, 4)
	rect := svgtree.NewRect(0, 0, 4, 4, geom.RGB(1, 0, 0))
	rect.VisibleValue = false

	Render(rect, compositor.BlendSourceOver, geom.Identity(), target)

	_, _, _, a := target.GetPremultiplied(2, 2)
	if a != 0 {
		t.Error("an invisible path must not paint any pixels")
	}
}

func TestRenderHonorsPaintOrderFillThenStroke(t *testing.T) {
	target, _ := pixbuf.NewZeroed(10, 10)
	rect := svgtree.NewRect(1, 1, 8, 8, geom.RGB(0, 0, 1))
	rect.HasStroke = true
	rect.StrokeValue = svgtree.Stroke{Width: 4, Paint: svgtree.Paint{Color: geom.RGB(1, 0, 0)}}
	rect.Order = svgtree.PaintFillThenStroke

	Render(rect, compositor.BlendSourceOver, geom.Identity(), target)

	// Fill-then-stroke means the stroke paints last, so the
	// fill/stroke overlap region (near the rect border) should show
	// the stroke's red, not the fill's blue.
	r, _, b, _ := target.GetPremultiplied(1, 5)
	if r == 0 && b != 0 {
		t.Errorf("expected stroke red to paint over fill blue at the border, got r=%d b=%d", r, b)
	}
}
