package compositor

import "testing"

func TestBlendLuminosityIdentityWhenEqual(t *testing.T) {
	// Luminosity(src, dst) with identical source and destination must
	// reproduce the destination, since SetLum(dst, Lum(src)) is a
	// no-op when src == dst.
	r, g, b, a := blendLuminosity(100, 150, 200, 255, 100, 150, 200, 255)
	if r != 100 || g != 150 || b != 200 || a != 255 {
		t.Errorf("blendLuminosity(equal inputs) = (%d,%d,%d,%d), want (100,150,200,255)", r, g, b, a)
	}
}

func TestBlendHueTransparentSourcePassesThroughDest(t *testing.T) {
	r, g, b, a := blendHue(0, 0, 0, 0, 10, 20, 30, 255)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("blendHue with transparent source = (%d,%d,%d,%d), want dest unchanged", r, g, b, a)
	}
}

func TestSetSatZeroForGray(t *testing.T) {
	r, g, b := setSat(0.5, 0.5, 0.5, 0.8)
	if sat(r, g, b) != 0 {
		t.Error("a gray input (zero saturation) must stay zero-saturation regardless of target sat")
	}
}

func TestMin3Max3(t *testing.T) {
	if min3(3, 1, 2) != 1 {
		t.Error("min3 incorrect")
	}
	if max3(3, 1, 2) != 3 {
		t.Error("max3 incorrect")
	}
}
