// Package maskengine builds a luminance or alpha coverage buffer from
// a mask subtree (itself rendered, unlike clipengine's pure geometry
// pass) and applies it to a render target.
package maskengine

import (
	"github.com/svgraster/raster/compositor"
	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/pixbuf"
	"github.com/svgraster/raster/rendercache"
	"github.com/svgraster/raster/svgtree"
)

// RenderFunc renders node into target under transform, consulting
// cache and pool exactly as GroupRenderer's own recursion would. See
// clipengine.RenderFunc for why this is a callback rather than a
// direct import of the raster package.
type RenderFunc func(node svgtree.Node, transform geom.Transform, target *pixbuf.PixelBuffer, cache *rendercache.RenderCache, pool *pixbuf.Pool)

// Apply renders mask's subtree, reduces it to a coverage buffer per
// mask.Kind, clips that buffer to mask.Region, and multiplies
// target's premultiplied channels by it in place.
//
// A mask with no children clears target to fully transparent — an
// empty mask masks everything out, matching SVG's "no content = no
// visibility" mask semantics.
func Apply(mask *svgtree.Mask, transform geom.Transform, target *pixbuf.PixelBuffer, cache *rendercache.RenderCache, pool *pixbuf.Pool, render RenderFunc) {
	if mask == nil || target == nil {
		return
	}
	if mask.Root == nil || len(mask.Root.Children()) == 0 {
		target.Clear()
		return
	}

	w, h := target.Width(), target.Height()
	sub, ok := pool.Acquire(w, h)
	if !ok {
		return
	}
	defer pool.Release(sub)

	render(mask.Root, transform, sub, cache, pool)

	clipToRegion(sub, mask.Region, transform)

	if mask.Nested != nil {
		nestedCache := rendercache.NewDisabled()
		nestedPool := pixbuf.NewPool()
		Apply(mask.Nested, transform, sub, nestedCache, nestedPool, render)
	}

	switch mask.Kind {
	case svgtree.MaskKindAlpha:
		compositor.ApplyAlphaMask(target, sub)
	default:
		compositor.ApplyLuminanceMask(target, sub)
	}
}

// clipToRegion zeroes every pixel of buf outside region (transformed
// to device space), implementing the mask's declared rectangular
// extent ahead of its luminance/alpha reduction.
func clipToRegion(buf *pixbuf.PixelBuffer, region geom.Rect, transform geom.Transform) {
	if region.IsEmpty() {
		return
	}
	device := region.Transform(transform)
	bounds := geom.FloorCeil(device)

	w, h := buf.Width(), buf.Height()
	for y := 0; y < h; y++ {
		inY := y >= bounds.Y && y < bounds.Y+bounds.Height
		for x := 0; x < w; x++ {
			if inY && x >= bounds.X && x < bounds.X+bounds.Width {
				continue
			}
			buf.SetPremultiplied(x, y, 0, 0, 0, 0)
		}
	}
}
