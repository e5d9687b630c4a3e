package compositor

import "github.com/svgraster/raster/pixbuf"

// Options controls a single Draw call: which blend mode to composite
// with, the group opacity to apply to the source, and an optional
// per-pixel alpha mask (0-255, full-buffer-sized, produced by
// maskengine or clipengine) to multiply into the source alpha before
// blending.
type Options struct {
	Mode    BlendMode
	Opacity float64
	Mask    []uint8 // optional, must be src.Width()*src.Height() long
	Space   ColorSpace
}

// Draw composites src onto dst at offset (x0,y0), applying opts.Mode,
// opts.Opacity, and opts.Mask. Regions of src that fall outside dst
// are silently clipped. Both buffers must already hold premultiplied
// channels.
func Draw(dst, src *pixbuf.PixelBuffer, x0, y0 int, opts Options) {
	opacity := opts.Opacity
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}

	blendFunc := GetBlendFuncInSpace(opts.Mode, opts.Space)

	srcW, srcH := src.Width(), src.Height()
	dstW, dstH := dst.Width(), dst.Height()

	x1 := x0 + srcW
	y1 := y0 + srcH
	cx0, cy0, cx1, cy1 := x0, y0, x1, y1
	if cx0 < 0 {
		cx0 = 0
	}
	if cy0 < 0 {
		cy0 = 0
	}
	if cx1 > dstW {
		cx1 = dstW
	}
	if cy1 > dstH {
		cy1 = dstH
	}

	for dy := cy0; dy < cy1; dy++ {
		sy := dy - y0
		for dx := cx0; dx < cx1; dx++ {
			sx := dx - x0

			sr, sg, sb, sa := src.GetPremultiplied(sx, sy)

			if opts.Mask != nil {
				m := opts.Mask[sy*srcW+sx]
				sr = mulDiv255(sr, m)
				sg = mulDiv255(sg, m)
				sb = mulDiv255(sb, m)
				sa = mulDiv255(sa, m)
			}

			if opacity < 1.0 {
				o := uint8(opacity*255 + 0.5)
				sr = mulDiv255(sr, o)
				sg = mulDiv255(sg, o)
				sb = mulDiv255(sb, o)
				sa = mulDiv255(sa, o)
			}

			dr, dg, db, da := dst.GetPremultiplied(dx, dy)
			r, g, b, a := blendFunc(sr, sg, sb, sa, dr, dg, db, da)
			dst.SetPremultiplied(dx, dy, r, g, b, a)
		}
	}
}

// DrawFull composites src onto dst at (0,0) with opaque SourceOver,
// the common case for the final layer of a group that has no blend
// mode, mask, or opacity applied.
func DrawFull(dst, src *pixbuf.PixelBuffer) {
	Draw(dst, src, 0, 0, Options{Mode: BlendSourceOver, Opacity: 1})
}
