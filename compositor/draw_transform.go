package compositor

import (
	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/pixbuf"
)

// DrawTransformed composites src onto dst as if src's own (0,0) origin
// were first placed by transform, then offset by (x0,y0). Used by the
// group renderer's Tier-1 composite step, where a cached sub-buffer was
// rendered without its owning group's local transform so the same
// cache entry can serve any placement of that transform — the
// transform is applied only here, at composite time.
//
// Every destination pixel covered by the transformed source bounds is
// mapped back through transform's inverse and sampled from src with
// nearest-neighbor lookup: src already holds anti-aliased content
// (coverage-accumulated at render time), so a second resampling pass
// only needs to reposition it, not re-filter it.
func DrawTransformed(dst, src *pixbuf.PixelBuffer, x0, y0 int, transform geom.Transform, opts Options) {
	inv, ok := transform.Invert()
	if !ok {
		return
	}

	opacity := opts.Opacity
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	blendFunc := GetBlendFuncInSpace(opts.Mode, opts.Space)

	srcW, srcH := src.Width(), src.Height()
	bounds := geom.FloorCeil(geom.Rect{Width: float64(srcW), Height: float64(srcH)}.Transform(transform))
	bounds.X += x0
	bounds.Y += y0
	bounds = bounds.Clamp(geom.IntRect{Width: dst.Width(), Height: dst.Height()})
	if bounds.IsEmpty() {
		return
	}

	for dy := bounds.Y; dy < bounds.Y+bounds.Height; dy++ {
		for dx := bounds.X; dx < bounds.X+bounds.Width; dx++ {
			lx, ly := inv.TransformPoint(float64(dx-x0)+0.5, float64(dy-y0)+0.5)
			sx, sy := int(lx), int(ly)
			if sx < 0 || sx >= srcW || sy < 0 || sy >= srcH {
				continue
			}

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
