// Package clipengine builds an alpha mask from a clip-path subtree and
// applies it to a render target. A clip-path only ever contributes
// coverage: every visible path in it punches a hole in an
// otherwise-opaque mask, regardless of color.
package clipengine

import (
	"github.com/svgraster/raster/compositor"
	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/pathrenderer"
	"github.com/svgraster/raster/pixbuf"
	"github.com/svgraster/raster/rendercache"
	"github.com/svgraster/raster/svgtree"
)

// RenderFunc renders node into target under transform, consulting
// cache and pool exactly as GroupRenderer's own recursion would. The
// raster package supplies its own group-walking method as this
// callback so clipengine can recurse into arbitrary subtrees without
// importing the raster package (which itself imports clipengine).
type RenderFunc func(node svgtree.Node, transform geom.Transform, target *pixbuf.PixelBuffer, cache *rendercache.RenderCache, pool *pixbuf.Pool)

// Apply builds the coverage mask described by clip (transformed by
// transform) and multiplies target's premultiplied channels by it in
// place.
//
// Algorithm: acquire a sub-buffer sized to target, fill it black and
// opaque, then draw every visible path in clip's subtree onto it with
// blend mode DestinationOut so each path punches a transparent hole
// where it covers. A child
// group that itself carries a nested clip-path is rendered into its
// own fresh sub-buffer, clipped recursively via Apply, and composited
// back onto the hole-punch buffer with blend mode Xor. The resulting
// buffer is inverted (so covered regions read as opaque) and applied
// to target via compositor.ApplyAlphaMask.
func Apply(clip *svgtree.ClipPath, transform geom.Transform, target *pixbuf.PixelBuffer, cache *rendercache.RenderCache, pool *pixbuf.Pool, render RenderFunc) {
	if clip == nil || clip.Root == nil || target == nil {
		return
	}

	w, h := target.Width(), target.Height()
	sub, ok := pool.Acquire(w, h)
	if !ok {
		return
	}
	defer pool.Release(sub)

	sub.Fill(geom.RGBA2(0, 0, 0, 1))

	punchHoles(clip.Root, transform, sub, pool, render)

	if clip.Nested != nil {
		nestedCache := rendercache.NewDisabled()
		nestedPool := pixbuf.NewPool()
		nestedTarget, ok := nestedPool.Acquire(w, h)
		if ok {
			render(clip.Root, transform, nestedTarget, nestedCache, nestedPool)
			Apply(clip.Nested, transform, nestedTarget, nestedCache, nestedPool, render)
			compositor.Draw(sub, nestedTarget, 0, 0, compositor.Options{Mode: compositor.BlendXor, Opacity: 1})
			nestedPool.Release(nestedTarget)
		}
	}

	compositor.InvertAlpha(sub)
	compositor.ApplyAlphaMask(target, sub)
}

// punchHoles walks node's subtree and draws every Path it finds onto
// mask with blend mode DestinationOut, which removes alpha wherever the
// path covers. Group children are flattened in place: their own
// transforms compose into transform as the walk descends, and a child
// group's mask/filter is ignored here — only its path geometry matters
// for the hole-punching pass. A group with its own clip-path is instead
// rendered whole into a fresh sub-buffer (which applies that clip) and
// Xor-composited onto mask.
func punchHoles(node svgtree.Node, transform geom.Transform, mask *pixbuf.PixelBuffer, pool *pixbuf.Pool, render RenderFunc) {
	switch n := node.(type) {
	case svgtree.Path:
		if !n.Visible() {
			return
		}
		local := transform.PreConcat(n.LocalTransform())
		drawPathCoverage(n, local, mask, compositor.BlendDestinationOut)
	case svgtree.Group:
		if n.ClipPath() != nil {
			layer, ok := pool.Acquire(mask.Width(), mask.Height())
			if !ok {
				return
			}
			render(n, transform, layer, rendercache.NewDisabled(), pool)
			compositor.Draw(mask, layer, 0, 0, compositor.Options{Mode: compositor.BlendXor, Opacity: 1})
			pool.Release(layer)
			return
		}
		local := transform.PreConcat(n.LocalTransform())
		for _, child := range n.Children() {
			punchHoles(child, local, mask, pool, render)
		}
	default:
		for _, child := range node.Children() {
			punchHoles(child, transform, mask, pool, render)
		}
	}
}

// drawPathCoverage rasterizes p's geometry and draws it into mask as
// opaque white scaled by coverage, ignoring paint: clip geometry only
// ever contributes coverage, and the blend mode (DestinationOut) is
// what actually punches the hole in the caller's black mask buffer.
func drawPathCoverage(p svgtree.Path, transform geom.Transform, mask *pixbuf.PixelBuffer, mode compositor.BlendMode) {
	w, h := mask.Width(), mask.Height()
	// Clip geometry has no paint of its own; SVG's default clip-rule
	// is nonzero, so coverage is computed with that rule regardless of
	// whatever fill the path happens to declare.
	cov := pathrenderer.Rasterize(p.Segments(), pathrenderer.FillRuleNonZero, transform, w, h)

	src, ok := pixbuf.NewZeroed(w, h)
	if !ok {
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := cov[y*w+x]
			if a != 0 {
				src.SetPremultiplied(x, y, a, a, a, a)
			}
		}
	}
	compositor.Draw(mask, src, 0, 0, compositor.Options{Mode: mode, Opacity: 1})
}
