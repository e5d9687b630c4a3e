// Package pixbuf provides the premultiplied-alpha pixel buffer and the
// size-classed pool that recycles its storage across recursive render
// calls.
package pixbuf

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/svgraster/raster/geom"
)

// Compile-time interface checks: a PixelBuffer is usable directly as a
// destination for anything in the standard image/draw ecosystem.
var (
	_ image.Image = (*PixelBuffer)(nil)
	_ draw.Image  = (*PixelBuffer)(nil)
)

// PixelBuffer owns a contiguous, row-major, 4-byte-per-pixel
// premultiplied RGBA8 buffer. buffer_len is always width*height*4;
// width and height are each in [1, 1<<16].
type PixelBuffer struct {
	width  int
	height int
	data   []uint8
}

// NewZeroed allocates a new zero-filled buffer of the given logical
// size. Returns (nil, false) only if the OS allocation itself fails
// (never signaled by Go's allocator under normal operation, but kept
// as a named failure mode so callers have a single place to handle
// AllocationFailed).
func NewZeroed(width, height int) (*PixelBuffer, bool) {
	if width <= 0 || height <= 0 {
		return nil, false
	}
	return &PixelBuffer{width: width, height: height, data: make([]uint8, width*height*4)}, true
}

// FromStorage wraps an existing byte slice as a PixelBuffer view. The
// slice's length must equal width*height*4 exactly; a shorter slice
// (as handed out by the pool for a virtual size smaller than its
// backing storage) is rejected here deliberately — the pool slices
// the backing array down to length before calling this.
func FromStorage(data []uint8, width, height int) (*PixelBuffer, bool) {
	if width <= 0 || height <= 0 || len(data) != width*height*4 {
		return nil, false
	}
	return &PixelBuffer{width: width, height: height, data: data}, true
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int { return b.height }

// Bytes returns the underlying premultiplied RGBA8 storage for
// reading. Callers must not retain it past the buffer's release to a
// pool.
func (b *PixelBuffer) Bytes() []uint8 { return b.data }

// BytesMut returns the underlying storage for writing.
func (b *PixelBuffer) BytesMut() []uint8 { return b.data }

// Fill overwrites every pixel with the premultiplied form of c.
func (b *PixelBuffer) Fill(c geom.RGBA) {
	p := c.Premultiply()
	r := uint8(clamp255(p.R * 255))
	g := uint8(clamp255(p.G * 255))
	bl := uint8(clamp255(p.B * 255))
	a := uint8(clamp255(p.A * 255))
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = r
		b.data[i+1] = g
		b.data[i+2] = bl
		b.data[i+3] = a
	}
}

// Clear sets every pixel to fully transparent.
func (b *PixelBuffer) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// GetPremultiplied returns the premultiplied byte channels at (x,y).
// Out-of-bounds coordinates return fully transparent.
func (b *PixelBuffer) GetPremultiplied(x, y int) (r, g, bl, a uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, 0, 0, 0
	}
	i := (y*b.width + x) * 4
	return b.data[i+0], b.data[i+1], b.data[i+2], b.data[i+3]
}

// SetPremultiplied writes premultiplied byte channels at (x,y).
// Out-of-bounds coordinates are ignored.
func (b *PixelBuffer) SetPremultiplied(x, y int, r, g, bl, a uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.data[i+0] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = a
}

// FillSpan fills a horizontal span [x1,x2) on row y with a solid
// premultiplied color, using a doubling copy once the span is long
// enough to amortize the per-pixel write.
func (b *PixelBuffer) FillSpan(x1, x2, y int, r, g, bl, a uint8) {
	if y < 0 || y >= b.height || x1 >= x2 {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > b.width {
		x2 = b.width
	}
	if x1 >= x2 {
		return
	}

	startIdx := (y*b.width + x1) * 4
	length := x2 - x1

	if length < 16 {
		for i := 0; i < length; i++ {
			idx := startIdx + i*4
			b.data[idx+0] = r
			b.data[idx+1] = g
			b.data[idx+2] = bl
			b.data[idx+3] = a
		}
		return
	}

	b.data[startIdx+0] = r
	b.data[startIdx+1] = g
	b.data[startIdx+2] = bl
	b.data[startIdx+3] = a

	filled := 1
	for filled < length {
		copyLen := filled
		if filled+copyLen > length {
			copyLen = length - filled
		}
		copy(b.data[startIdx+filled*4:], b.data[startIdx:startIdx+copyLen*4])
		filled += copyLen
	}
}

// AsImage returns an image.RGBA view that shares the buffer's pixel
// storage in premultiplied form, used by the PNG encode helpers and by
// tests that want to compare against golang.org/x/image/draw output.
func (b *PixelBuffer) AsImage() *image.RGBA {
	return &image.RGBA{Pix: b.data, Stride: b.width * 4, Rect: image.Rect(0, 0, b.width, b.height)}
}

// At implements image.Image. Premultiplied storage maps directly onto
// Go's color.RGBA, which is itself premultiplied.
func (b *PixelBuffer) At(x, y int) color.Color {
	r, g, bl, a := b.GetPremultiplied(x, y)
	return color.RGBA{R: r, G: g, B: bl, A: a}
}

// Set implements draw.Image.
func (b *PixelBuffer) Set(x, y int, c color.Color) {
	r, g, bl, a := color.RGBAModel.Convert(c).(color.RGBA).RGBA()
	b.SetPremultiplied(x, y, uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(a>>8))
}

// Bounds implements image.Image.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements image.Image.
func (b *PixelBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
