package compositor

import "github.com/svgraster/raster/internal/color"

// ColorSpace selects which space a blend's RGB math runs in, mirroring
// SVG's color-interpolation property. Alpha is always linear and is
// never converted.
type ColorSpace uint8

const (
	// ColorSpaceSRGB blends directly on the premultiplied sRGB bytes
	// every PixelBuffer stores, SVG's default for most properties.
	ColorSpaceSRGB ColorSpace = iota
	// ColorSpaceLinearRGB blends in linear light, the default SVG
	// mandates for filter primitives (color-interpolation-filters).
	ColorSpaceLinearRGB
)

// GetBlendFuncInSpace wraps a blend mode so its RGB math runs in the
// requested color space. ColorSpaceSRGB is a no-op wrapper around
// GetBlendFunc; ColorSpaceLinearRGB converts both operands to linear
// light, blends, and converts the result back.
func GetBlendFuncInSpace(mode BlendMode, space ColorSpace) BlendFunc {
	base := GetBlendFunc(mode)
	if space == ColorSpaceSRGB {
		return base
	}
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		srcLinear := toLinearPremultiplied(sr, sg, sb, sa)
		dstLinear := toLinearPremultiplied(dr, dg, db, da)

		lr, lg, lb, la := base(srcLinear.R, srcLinear.G, srcLinear.B, srcLinear.A,
			dstLinear.R, dstLinear.G, dstLinear.B, dstLinear.A)

		return fromLinearPremultiplied(color.ColorU8{R: lr, G: lg, B: lb, A: la})
	}
}

// toLinearPremultiplied unpremultiplies, converts sRGB to linear,
// then re-premultiplies in the linear space.
func toLinearPremultiplied(r, g, b, a byte) color.ColorU8 {
	f := color.U8ToF32(color.ColorU8{R: r, G: g, B: b, A: a})
	if f.A > 0 {
		f.R /= f.A
		f.G /= f.A
		f.B /= f.A
	}
	lin := color.SRGBToLinearColor(f)
	lin.R *= lin.A
	lin.G *= lin.A
	lin.B *= lin.A
	return color.F32ToU8(lin)
}

// fromLinearPremultiplied is the inverse of toLinearPremultiplied.
func fromLinearPremultiplied(c color.ColorU8) (byte, byte, byte, byte) {
	f := color.U8ToF32(c)
	if f.A > 0 {
		f.R /= f.A
		f.G /= f.A
		f.B /= f.A
	}
	srgb := color.LinearToSRGBColor(f)
	srgb.R *= srgb.A
	srgb.G *= srgb.A
	srgb.B *= srgb.A
	out := color.F32ToU8(srgb)
	return out.R, out.G, out.B, out.A
}
