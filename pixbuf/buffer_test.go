package pixbuf

import (
	"testing"

	"github.com/svgraster/raster/geom"
)

func TestNewZeroedIsZero(t *testing.T) {
	b, ok := NewZeroed(4, 4)
	if !ok {
		t.Fatal("NewZeroed failed")
	}
	for _, v := range b.Bytes() {
		if v != 0 {
			t.Fatalf("expected all-zero buffer, found %d", v)
		}
	}
}

func TestFromStorageLengthMismatch(t *testing.T) {
	_, ok := FromStorage(make([]uint8, 10), 4, 4)
	if ok {
		t.Fatal("expected FromStorage to reject a short slice")
	}
}

func TestFillPremultipliesAlpha(t *testing.T) {
	b, _ := NewZeroed(1, 1)
	b.Fill(geom.RGBA2(1, 0, 0, 0.5))
	r, _, _, a := b.GetPremultiplied(0, 0)
	if a != 127 && a != 128 {
		t.Fatalf("alpha channel = %d, want ~127", a)
	}
	if r > a {
		t.Fatalf("premultiplied red %d must not exceed alpha %d", r, a)
	}
}

func TestFillSpanLong(t *testing.T) {
	b, _ := NewZeroed(40, 1)
	b.FillSpan(0, 40, 0, 10, 20, 30, 255)
	for x := 0; x < 40; x++ {
		r, g, bl, a := b.GetPremultiplied(x, 0)
		if r != 10 || g != 20 || bl != 30 || a != 255 {
			t.Fatalf("pixel %d = (%d,%d,%d,%d), want (10,20,30,255)", x, r, g, bl, a)
		}
	}
}

func TestFillSpanOutOfBoundsRow(t *testing.T) {
	b, _ := NewZeroed(4, 4)
	b.FillSpan(0, 4, 10, 1, 1, 1, 1) // should not panic
	r, _, _, _ := b.GetPremultiplied(0, 0)
	if r != 0 {
		t.Fatal("out-of-range row must not affect buffer contents")
	}
}

func TestSetPremultipliedOutOfBoundsIgnored(t *testing.T) {
	b, _ := NewZeroed(2, 2)
	b.SetPremultiplied(-1, 0, 1, 2, 3, 4) // must not panic
	b.SetPremultiplied(0, -1, 1, 2, 3, 4)
}

func TestBounds(t *testing.T) {
	b, _ := NewZeroed(3, 5)
	r := b.Bounds()
	if r.Dx() != 3 || r.Dy() != 5 {
		t.Fatalf("Bounds() = %+v, want 3x5", r)
	}
}
