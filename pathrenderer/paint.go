package pathrenderer

import (
	"github.com/svgraster/raster/compositor"
	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/pixbuf"
	"github.com/svgraster/raster/svgtree"
)

// Render fills and/or strokes path into target at transform, in the
// order path.PaintOrder() declares, compositing with blendMode.
func Render(path svgtree.Path, blendMode compositor.BlendMode, transform geom.Transform, target *pixbuf.PixelBuffer) {
	if path == nil || target == nil || !path.Visible() {
		return
	}
	local := transform.PreConcat(path.LocalTransform())
	w, h := target.Width(), target.Height()
	segments := path.Segments()

	fill := func() {
		paint, rule, ok := path.Fill()
		if !ok {
			return
		}
		cov := Rasterize(segments, toPathRule(rule), local, w, h)
		paintCoverage(target, cov, paint, local, blendMode, w, h)
	}
	stroke := func() {
		s, ok := path.Stroke()
		if !ok {
			return
		}
		cov := strokeCoverage(s, segments, local, w, h)
		paintCoverage(target, cov, s.Paint, local, blendMode, w, h)
	}

	if path.PaintOrder() == svgtree.PaintStrokeThenFill {
		stroke()
		fill()
	} else {
		fill()
		stroke()
	}
}

func toPathRule(r svgtree.FillRule) FillRule {
	if r == svgtree.FillRuleEvenOdd {
		return FillRuleEvenOdd
	}
	return FillRuleNonZero
}

// paintCoverage builds a premultiplied color buffer from paint scaled
// by cov and composites it onto target. Gradient paints are sampled
// in the path's own local space (transform inverted per pixel) so the
// gradient axis follows the path rather than the device grid.
func paintCoverage(target *pixbuf.PixelBuffer, cov []uint8, paint svgtree.Paint, transform geom.Transform, mode compositor.BlendMode, w, h int) {
	hasCoverage := false
	for _, v := range cov {
		if v != 0 {
			hasCoverage = true
			break
		}
	}
	if !hasCoverage {
		return
	}

	src, ok := pixbuf.NewZeroed(w, h)
	if !ok {
		return
	}

	inv, invertible := transform.Invert()
	var dir geom.Vec2
	var lenSq float64
	if paint.IsGradient {
		dir = geom.PointSub(paint.GradientTo, paint.GradientFrom)
		lenSq = dir.Dot(dir)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := cov[y*w+x]
			if a == 0 {
				continue
			}
			color := paint.Color
			if paint.IsGradient && invertible {
				local := geom.Pt(transformInvertPoint(inv, x, y))
				t := 0.0
				if lenSq > 0 {
					t = geom.PointSub(local, paint.GradientFrom).Dot(dir) / lenSq
				}
				if t < 0 {
					t = 0
				} else if t > 1 {
					t = 1
				}
				color = paint.GradientStop0.Lerp(paint.GradientStop1, t)
			}
			pm := color.Premultiply()
			r := mulByCoverage(toByte(pm.R), a)
			g := mulByCoverage(toByte(pm.G), a)
			b := mulByCoverage(toByte(pm.B), a)
			al := mulByCoverage(toByte(pm.A), a)
			src.SetPremultiplied(x, y, r, g, b, al)
		}
	}

	compositor.Draw(target, src, 0, 0, compositor.Options{Mode: mode, Opacity: 1})
}

func transformInvertPoint(inv geom.Transform, x, y int) (float64, float64) {
	return inv.TransformPoint(float64(x)+0.5, float64(y)+0.5)
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func mulByCoverage(channel, cov uint8) uint8 {
	return uint8(uint32(channel) * uint32(cov) / 255)
}
