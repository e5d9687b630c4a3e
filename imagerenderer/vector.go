package imagerenderer

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

// Vector rasterizes img's nested document into a sub-buffer, clips it
// to the image's view box, and composites the result onto target at
// the identity placement (the caller's transform is folded into the
// sub-render itself rather than applied again at composite time).
//
// The sub-buffer is cache-keyed by the image's href, its pixel size,
// and the active transform, so repeated placements of the same linked
// document composite straight from cache.
func Vector(img svgtree.Image, blendMode compositor.BlendMode, transform geom.Transform, target *pixbuf.PixelBuffer, cache *rendercache.RenderCache, pool *pixbuf.Pool, render RenderFunc) {
	root := img.NestedRoot()
	if root == nil || target == nil {
		return
	}

	local := transform.PreConcat(img.LocalTransform())
	w, h := target.Width(), target.Height()

	key := geom.NewFingerprintHasher().MixString(img.Href()).MixInt(w).MixInt(h)
	key = key.MixTransform(local)

	sub, fromCache := cache.Get(key)
	if !fromCache {
		var ok bool
		sub, ok = pool.Acquire(w, h)
		if !ok {
			return
		}
		render(root, local, sub, cache, pool)
		clipToViewBox(sub, img.ViewBox(), local)
		cache.InsertOrEvict(key, sub)
	}

	compositor.Draw(target, sub, 0, 0, compositor.Options{Mode: blendMode, Opacity: 1})
}

// clipToViewBox zeroes every pixel of buf outside viewBox (mapped to
// device space by transform), the optional clip a nested document's
// view box imposes on its own rendered content.
func clipToViewBox(buf *pixbuf.PixelBuffer, viewBox geom.Rect, transform geom.Transform) {
	if viewBox.IsEmpty() {
		return
	}
	bounds := geom.FloorCeil(viewBox.Transform(transform))
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
