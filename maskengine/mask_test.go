package maskengine

import (
	"testing"

	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/pathrenderer"
	"github.com/svgraster/raster/pixbuf"
	"github.com/svgraster/raster/rendercache"
	"github.com/svgraster/raster/svgtree"
)

func renderWhiteRect(node svgtree.Node, transform geom.Transform, target *pixbuf.PixelBuffer, cache *rendercache.RenderCache, pool *pixbuf.Pool) {
	group, ok := node.(*svgtree.LiteralGroup)
	if !ok {
		return
	}
	for _, child := range group.Children() {
		path := child.(*svgtree.LiteralPath)
		w, h := target.Width(), target.Height()
		cov := pathrenderer.Rasterize(path.Segments(), pathrenderer.FillRuleNonZero, transform, w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				a := cov[y*w+x]
				if a != 0 {
					target.SetPremultiplied(x, y, a, a, a, a)
				}
			}
		}
	}
}

func TestApplyEmptyMaskClearsTarget(t *testing.T) {
	target, _ := pixbuf.NewZeroed(4, 4)
	target.Fill(geom.RGB(1, 1, 1))

	mask := &svgtree.Mask{Root: &svgtree.LiteralGroup{}}
	pool := pixbuf.NewPool()
	cache := rendercache.NewDisabled()

	Apply(mask, geom.Identity(), target, cache, pool, renderWhiteRect)

	_, _, _, a := target.GetPremultiplied(1, 1)
	if a != 0 {
		t.Error("an empty mask must clear the target to fully transparent")
	}
}

func TestApplyLuminanceMaskWhiteRegionPreservesCoverage(t *testing.T) {
	target, _ := pixbuf.NewZeroed(10, 10)
	target.Fill(geom.RGBA2(1, 0, 0, 1))

	maskContent := &svgtree.LiteralGroup{ChildNodes: []svgtree.Node{svgtree.NewRect(0, 0, 10, 10, geom.RGB(1, 1, 1))}}
	mask := &svgtree.Mask{Root: maskContent, Region: geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}, Kind: svgtree.MaskKindLuminance}
	pool := pixbuf.NewPool()
	cache := rendercache.NewDisabled()

	Apply(mask, geom.Identity(), target, cache, pool, renderWhiteRect)

	_, _, _, a := target.GetPremultiplied(5, 5)
	if a != 255 {
		t.Errorf("full-coverage white mask should preserve target alpha, got %d", a)
	}
}

func TestApplyClipsMaskContentToDeclaredRegion(t *testing.T) {
	target, _ := pixbuf.NewZeroed(10, 10)
	target.Fill(geom.RGBA2(0, 1, 0, 1))

	maskContent := &svgtree.LiteralGroup{ChildNodes: []svgtree.Node{svgtree.NewRect(0, 0, 10, 10, geom.RGB(1, 1, 1))}}
	mask := &svgtree.Mask{Root: maskContent, Region: geom.Rect{X: 0, Y: 0, Width: 5, Height: 5}, Kind: svgtree.MaskKindLuminance}
	pool := pixbuf.NewPool()
	cache := rendercache.NewDisabled()

	Apply(mask, geom.Identity(), target, cache, pool, renderWhiteRect)

	_, _, _, aInRegion := target.GetPremultiplied(2, 2)
	_, _, _, aOutRegion := target.GetPremultiplied(8, 8)
	if aInRegion == 0 {
		t.Error("pixel inside the mask region should remain visible")
	}
	if aOutRegion != 0 {
		t.Error("pixel outside the mask region should be clipped")
	}
}
