package compositor

import "github.com/svgraster/raster/pixbuf"

// ApplyAlphaMask multiplies target's premultiplied channels in place
// by mask's own alpha channel, pixel for pixel. Used by ClipEngine for
// its inverted clip-hole buffer and by MaskEngine for mask
// content declared maskType="alpha". target and mask must have
// identical dimensions.
func ApplyAlphaMask(target, mask *pixbuf.PixelBuffer) {
	applyMaskBytes(target, alphaMaskBytes(mask))
}

// ApplyLuminanceMask reduces mask to a single coverage byte per pixel
// via BT.709 luminance (SVG's default maskType for <mask> content)
// and multiplies target's premultiplied channels in place by that
// coverage. target and mask must have identical dimensions.
func ApplyLuminanceMask(target, mask *pixbuf.PixelBuffer) {
	applyMaskBytes(target, luminanceMaskBytes(mask))
}

// applyMaskBytes multiplies every premultiplied channel of target by
// the corresponding row-major coverage byte in coverage.
func applyMaskBytes(target *pixbuf.PixelBuffer, coverage []uint8) {
	w, h := target.Width(), target.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m := coverage[y*w+x]
			if m == 255 {
				continue
			}
			r, g, b, a := target.GetPremultiplied(x, y)
			target.SetPremultiplied(x, y, mulDiv255(r, m), mulDiv255(g, m), mulDiv255(b, m), mulDiv255(a, m))
		}
	}
}

// luminanceMaskBytes reduces buf to a single coverage byte per pixel
// using its luminance times its own alpha.
func luminanceMaskBytes(buf *pixbuf.PixelBuffer) []uint8 {
	w, h := buf.Width(), buf.Height()
	out := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := buf.GetPremultiplied(x, y)
			// Premultiplied luminance: unpremultiplying and
			// re-multiplying by alpha cancel out algebraically, so the
			// BT.709 weights can be applied directly to the
			// premultiplied channels.
			lum := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
			if lum > 255 {
				lum = 255
			}
			out[y*w+x] = uint8(lum + 0.5)
		}
	}
	return out
}

// alphaMaskBytes reduces buf to its alpha channel alone.
func alphaMaskBytes(buf *pixbuf.PixelBuffer) []uint8 {
	w, h := buf.Width(), buf.Height()
	out := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := buf.GetPremultiplied(x, y)
			out[y*w+x] = a
		}
	}
	return out
}

// InvertAlpha flips buf's alpha channel (255-a) in place and sets
// every color channel to the new alpha, discarding the old color
// (opaque white where the result is opaque). ClipEngine uses this to turn a
// black-fill-then-punch-holes buffer into the inverted coverage mask
// it applies to its target.
func InvertAlpha(buf *pixbuf.PixelBuffer) {
	w, h := buf.Width(), buf.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := buf.GetPremultiplied(x, y)
			inv := 255 - a
			buf.SetPremultiplied(x, y, inv, inv, inv, inv)
		}
	}
}
