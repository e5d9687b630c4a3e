// Package imagerenderer paints the two leaf Image variants: a
// preloaded raster source fitted into a view box, and a nested SVG
// document rasterized recursively into a sub-buffer.
package imagerenderer

import (
	stdimage "image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/svgraster/raster/compositor"
	"github.com/svgraster/raster/geom"
	internalimage "github.com/svgraster/raster/internal/image"
	"github.com/svgraster/raster/pixbuf"
	"github.com/svgraster/raster/svgtree"
)

// Raster paints img's preloaded pixel source into target under
// transform, fitted into img's view box per its align/slice setting.
//
// The source is first prefiltered to roughly the size it will occupy
// on the device with golang.org/x/image/draw's Catmull-Rom kernel —
// the ecosystem's own resampling path — then mapped through transform
// one destination pixel at a time with the donor's own interpolation
// routines, which handle the rotation/skew a single whole-image scale
// cannot. RenderingMode selects nearest-neighbor for OptimizeSpeed and
// bicubic otherwise.
func Raster(img svgtree.Image, blendMode compositor.BlendMode, transform geom.Transform, target *pixbuf.PixelBuffer, pool *pixbuf.Pool) {
	nw, nh := img.NaturalWidth(), img.NaturalHeight()
	if nw <= 0 || nh <= 0 || target == nil {
		return
	}

	viewBox := img.ViewBox()
	fitted := fitRect(float64(nw), float64(nh), viewBox, img.Align(), img.Slice())
	if fitted.IsEmpty() {
		return
	}
	local := transform.PreConcat(img.LocalTransform())

	clipBox := viewBox
	if !img.Slice() {
		clipBox = fitted
	}
	w, h := target.Width(), target.Height()
	deviceClip := geom.FloorCeil(clipBox.Transform(local)).Clamp(geom.IntRect{Width: w, Height: h})
	if deviceClip.IsEmpty() {
		return
	}

	inv, ok := local.Invert()
	if !ok {
		return
	}

	mode := internalimage.InterpBicubic
	if img.RenderingMode() == svgtree.RenderingOptimizeSpeed {
		mode = internalimage.InterpNearest
	}

	sampleSrc := prefilter(img.RasterPixels(), fitted, local, mode)

	scratch, ok := pool.Acquire(w, h)
	if !ok {
		return
	}
	defer pool.Release(scratch)

	for y := deviceClip.Y; y < deviceClip.Y+deviceClip.Height; y++ {
		for x := deviceClip.X; x < deviceClip.X+deviceClip.Width; x++ {
			lx, ly := inv.TransformPoint(float64(x)+0.5, float64(y)+0.5)
			u := (lx - fitted.X) / fitted.Width
			v := (ly - fitted.Y) / fitted.Height
			if u < 0 || u > 1 || v < 0 || v > 1 {
				continue
			}
			r, g, b, a := internalimage.Sample(sampleSrc, u, v, mode)
			scratch.SetPremultiplied(x, y, premulByte(r, a), premulByte(g, a), premulByte(b, a), a)
		}
	}

	compositor.Draw(target, scratch, 0, 0, compositor.Options{Mode: blendMode, Opacity: 1})
}

// prefilter resamples src down (or up) to roughly the pixel footprint
// it will occupy once placed by local, so that the per-pixel transform
// mapping in Raster samples a source already band-limited to the
// destination's scale instead of aliasing against the full-resolution
// original.
func prefilter(src stdimage.Image, fitted geom.Rect, local geom.Transform, mode internalimage.InterpolationMode) *internalimage.ImageBuf {
	dx, dy := local.TransformVector(fitted.Width, 0)
	ex, ey := local.TransformVector(0, fitted.Height)
	deviceW := math.Hypot(dx, dy)
	deviceH := math.Hypot(ex, ey)

	targetW := roundPositive(deviceW)
	targetH := roundPositive(deviceH)

	bounds := src.Bounds()
	if mode == internalimage.InterpNearest || (targetW == bounds.Dx() && targetH == bounds.Dy()) {
		return internalimage.FromStdImage(src)
	}

	dst := stdimage.NewRGBA(stdimage.Rect(0, 0, targetW, targetH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return internalimage.FromStdImage(dst)
}

func roundPositive(v float64) int {
	n := int(v + 0.5)
	if n < 1 {
		return 1
	}
	return n
}

func premulByte(c, a uint8) uint8 {
	return uint8(uint16(c) * uint16(a) / 255)
}
