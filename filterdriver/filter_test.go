package filterdriver

import (
	"testing"

	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/pixbuf"
)

func TestApplyWithNoFiltersReturnsOriginalBuffer(t *testing.T) {
	buf, _ := pixbuf.NewZeroed(4, 4)
	pool := pixbuf.NewPool()

	got := Apply(nil, buf, geom.Rect{Width: 4, Height: 4}, pool)
	if got != buf {
		t.Fatal("Apply with no filters must return the input buffer unchanged")
	}
}

func TestApplyGaussianBlurSpreadsASinglePixel(t *testing.T) {
	buf, _ := pixbuf.NewZeroed(9, 9)
	buf.SetPremultiplied(4, 4, 255, 255, 255, 255)
	pool := pixbuf.NewPool()

	out := Apply([]Filter{GaussianBlur{RadiusX: 1.5, RadiusY: 1.5}}, buf, geom.Rect{Width: 9, Height: 9}, pool)

	_, _, _, aCenter := out.GetPremultiplied(4, 4)
	_, _, _, aNeighbor := out.GetPremultiplied(5, 4)
	if aCenter == 0 {
		t.Fatal("blurred center pixel should retain nonzero coverage")
	}
	if aNeighbor == 0 {
		t.Fatal("blur should spread coverage into neighboring pixels")
	}
	if aNeighbor >= aCenter {
		t.Errorf("neighbor alpha %d should be less than center alpha %d", aNeighbor, aCenter)
	}
}

func TestApplyColorMatrixGrayscaleEqualizesChannels(t *testing.T) {
	buf, _ := pixbuf.NewZeroed(1, 1)
	buf.SetPremultiplied(0, 0, 200, 50, 10, 255)
	pool := pixbuf.NewPool()

	grayscale := ColorMatrix{Matrix: [20]float64{
		0.2126, 0.7152, 0.0722, 0, 0,
		0.2126, 0.7152, 0.0722, 0, 0,
		0.2126, 0.7152, 0.0722, 0, 0,
		0, 0, 0, 1, 0,
	}}

	out := Apply([]Filter{grayscale}, buf, geom.Rect{Width: 1, Height: 1}, pool)
	r, g, b, _ := out.GetPremultiplied(0, 0)
	if r != g || g != b {
		t.Errorf("grayscale matrix should equalize channels, got r=%d g=%d b=%d", r, g, b)
	}
}

func TestApplyDropShadowDarkensBehindTransparentNeighbor(t *testing.T) {
	buf, _ := pixbuf.NewZeroed(6, 6)
	buf.SetPremultiplied(2, 2, 255, 255, 255, 255)
	pool := pixbuf.NewPool()

	shadow := DropShadow{Dx: 1, Dy: 1, StdDeviation: 0.5, Color: geom.RGBA2(0, 0, 0, 0.8)}
	out := Apply([]Filter{shadow}, buf, geom.Rect{Width: 6, Height: 6}, pool)

	_, _, _, a := out.GetPremultiplied(3, 3)
	if a == 0 {
		t.Fatal("drop shadow offset into an empty neighbor pixel should deposit visible shadow alpha")
	}
}

func TestExpandBoundsGrowsForBlurAndShrinksNeverForColorMatrix(t *testing.T) {
	input := geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	out := ExpandBounds([]Filter{GaussianBlur{RadiusX: 2, RadiusY: 2}, ColorMatrix{}}, input)

	if out.Width <= input.Width || out.Height <= input.Height {
		t.Errorf("blur should expand bounds, got %+v from input %+v", out, input)
	}
}
