// Package raster is the entry point for rasterizing a resolved SVG
// tree (package svgtree) into a premultiplied-alpha pixel buffer
// (package pixbuf), coordinating the sub-pixmap cache, pixel-buffer
// pool, compositor, and the clip/mask/filter/path/image renderers
// that do the per-node work.
package raster

import (
	"context"
	"fmt"

	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/pixbuf"
	"github.com/svgraster/raster/rendercache"
	"github.com/svgraster/raster/svgtree"
)

// Render rasterizes tree into target, fitting the document's natural
// size per fitMode and placing it with rootTransform composed on top
// of that fit. cache is consulted and mutated by every isolated group
// encountered; pass rendercache.New(n, pool) for a warm cache shared
// across repeated renders of related documents, or
// rendercache.NewDisabled() to render without caching.
//
// ctx is checked for cancellation only before the render starts and
// after it finishes; the tree walk itself does not observe ctx. The
// render is synchronous and single-threaded, so ctx carries no
// deadline logic of its own; callers that need a time box must
// enforce it at the call site.
//
// Render returns a non-nil error only for a cancelled context or when
// the target size exceeds the pool's maximum representable
// dimension (ErrOversizedPixmap, wrapped with the offending size).
// Every other failure is absorbed locally and the rest of the tree
// still renders: a subtree that fails to allocate is logged at warn
// level, an empty bounding rectangle at debug level, and a missing
// linked resource is skipped without a log entry.
func Render(ctx context.Context, tree svgtree.Node, fitMode FitMode, rootTransform geom.Transform, target *pixbuf.PixelBuffer, cache *rendercache.RenderCache, opts ...RenderOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(&options)
	}

	w, h := target.Width(), target.Height()
	if pixbuf.SizeClass(w, h) < 0 {
		return fmt.Errorf("raster: %w: %dx%d", ErrOversizedPixmap, w, h)
	}

	// One pool backs both the cache's eviction returns and every
	// Acquire call this render makes directly — the pool must outlive
	// every buffer it hands out during the call, so a cache built here
	// and the recursion below always share the same instance. A
	// caller-supplied cache carries its own pool; reuse that one too,
	// falling back to a fresh pool only for a disabled cache with none.
	var pool *pixbuf.Pool
	if cache == nil {
		pool = pixbuf.NewPool()
		cache = rendercache.New(options.cacheCapacity, pool)
	} else if p := cache.Pool(); p != nil {
		pool = p
	} else {
		pool = pixbuf.NewPool()
	}

	maxSide := int(float64(maxInt(w, h)) * options.maxBBoxScale)
	maxBBox := geom.IntRect{
		X:      -maxSide,
		Y:      -maxSide,
		Width:  w + 2*maxSide,
		Height: h + 2*maxSide,
	}

	root := &groupRenderer{maxBBox: maxBBox, logger: options.logger}
	root.render(tree, rootTransform, target, cache, pool)

	return ctx.Err()
}

// FitTransform computes the transform that maps a document's natural
// naturalW x naturalH coordinate space onto the pixel size fitMode
// resolves it to, for callers that want to size their target buffer
// to match before calling Render.
func FitTransform(fitMode FitMode, naturalW, naturalH float64) (geom.Transform, int, int) {
	w, h, scale := fitMode.resolve(naturalW, naturalH)
	return geom.Scale(scale, scale), w, h
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
