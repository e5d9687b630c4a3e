package raster

import (
	"log/slog"

	"github.com/svgraster/raster/clipengine"
	"github.com/svgraster/raster/compositor"
	"github.com/svgraster/raster/filterdriver"
	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/imagerenderer"
	"github.com/svgraster/raster/maskengine"
	"github.com/svgraster/raster/pathrenderer"
	"github.com/svgraster/raster/pixbuf"
	"github.com/svgraster/raster/rendercache"
	"github.com/svgraster/raster/svgtree"
)

// groupRenderer walks one svgtree, dispatching each node kind to the
// package that knows how to paint it. Its render method doubles as
// the RenderFunc callback clipengine, maskengine, and imagerenderer
// require to recurse into arbitrary subtrees without importing this
// package back (which would create an import cycle).
type groupRenderer struct {
	maxBBox geom.IntRect
	logger  *slog.Logger
}

func (r *groupRenderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}

// render dispatches node to the appropriate leaf or group handling,
// composing transform down the tree as it goes.
func (r *groupRenderer) render(node svgtree.Node, transform geom.Transform, target *pixbuf.PixelBuffer, cache *rendercache.RenderCache, pool *pixbuf.Pool) {
	switch n := node.(type) {
	case svgtree.Group:
		r.renderGroup(n, transform, target, cache, pool)
	case svgtree.Path:
		if n.Visible() {
			pathrenderer.Render(n, compositor.BlendSourceOver, transform.PreConcat(n.LocalTransform()), target)
		}
	case svgtree.Image:
		r.renderImage(n, transform, target, cache, pool)
	default:
		for _, child := range node.Children() {
			r.render(child, transform, target, cache, pool)
		}
	}
}

func (r *groupRenderer) renderImage(img svgtree.Image, transform geom.Transform, target *pixbuf.PixelBuffer, cache *rendercache.RenderCache, pool *pixbuf.Pool) {
	switch img.Kind() {
	case svgtree.ImageKindRaster:
		imagerenderer.Raster(img, compositor.BlendSourceOver, transform, target, pool)
	case svgtree.ImageKindVector:
		imagerenderer.Vector(img, compositor.BlendSourceOver, transform, target, cache, pool, r.render)
	}
}

// renderGroup implements the central Tier 0/1/2 isolation algorithm:
// a group with nothing to isolate recurses straight into the parent
// buffer; otherwise its children render into a pooled, cache-keyed
// sub-buffer that is composited back once, with effects applied in
// the fixed filter -> clip -> mask order for Tier 2.
func (r *groupRenderer) renderGroup(g svgtree.Group, parentTransform geom.Transform, target *pixbuf.PixelBuffer, cache *rendercache.RenderCache, pool *pixbuf.Pool) {
	tPrime := parentTransform.PreConcat(g.LocalTransform())

	if !g.ShouldIsolate() {
		for _, child := range g.Children() {
			r.render(child, tPrime, target, cache, pool)
		}
		return
	}

	filters := g.Filters()
	var deviceRect geom.IntRect
	if len(filters) == 0 {
		deviceRect = geom.FloorCeil(g.LayerBBox().Transform(tPrime)).Expand(2)
	} else {
		expanded := filterdriver.ExpandBounds(filters, g.LayerBBox())
		deviceRect = geom.Truncate(expanded.Transform(tPrime))
	}
	deviceRect = deviceRect.Clamp(r.maxBBox)
	if deviceRect.IsEmpty() {
		r.log().Debug("skipping group with empty isolated bounds", "reason", "geometry-invalid")
		return
	}

	// Tier 2 whenever an effect is present or the group's absolute
	// transform is non-identity (conservative: see the open question
	// this elects to resolve that way in DESIGN.md).
	tier2 := len(filters) > 0 || g.ClipPath() != nil || g.Mask() != nil || !g.AbsTransform().IsIdentity()

	var key geom.Fingerprint
	var childTransform geom.Transform
	if tier2 {
		key = geom.FingerprintOf(g.ContentHash(), deviceRect.Width, deviceRect.Height, tPrime, true)
		childTransform = geom.Translate(float64(-deviceRect.X), float64(-deviceRect.Y)).PreConcat(tPrime)
	} else {
		key = geom.FingerprintOf(g.ContentHash(), deviceRect.Width, deviceRect.Height, geom.Identity(), false)
		childTransform = geom.Translate(float64(-deviceRect.X), float64(-deviceRect.Y)).PreConcat(parentTransform)
	}

	sub, hit := cache.Get(key)
	if !hit {
		acquired, ok := pool.Acquire(deviceRect.Width, deviceRect.Height)
		if !ok {
			r.log().Warn("failed to acquire isolated sub-buffer", "width", deviceRect.Width, "height", deviceRect.Height)
			return
		}
		sub = acquired

		for _, child := range g.Children() {
			r.render(child, childTransform, sub, cache, pool)
		}

		if tier2 {
			localBBox := g.LayerBBox().Transform(tPrime)
			localBBox.X -= float64(deviceRect.X)
			localBBox.Y -= float64(deviceRect.Y)
			sub = filterdriver.Apply(filters, sub, localBBox, pool)
			if clip := g.ClipPath(); clip != nil {
				clipengine.Apply(clip, childTransform, sub, cache, pool, r.render)
			}
			if mask := g.Mask(); mask != nil {
				maskengine.Apply(mask, childTransform, sub, cache, pool, r.render)
			}
		}

		cache.InsertOrEvict(key, sub)
	}

	if tier2 {
		compositor.Draw(target, sub, deviceRect.X, deviceRect.Y, compositor.Options{Mode: g.BlendMode(), Opacity: g.Opacity()})
	} else {
		placement := geom.Translate(float64(deviceRect.X), float64(deviceRect.Y)).PreConcat(g.LocalTransform())
		compositor.DrawTransformed(target, sub, 0, 0, placement, compositor.Options{Mode: g.BlendMode(), Opacity: g.Opacity()})
	}
}
