package compositor

import "testing"

func TestGetBlendFuncInSpaceSRGBIsIdentityWrapper(t *testing.T) {
	r1, g1, b1, a1 := GetBlendFunc(BlendMultiply)(200, 100, 50, 255, 10, 20, 30, 255)
	r2, g2, b2, a2 := GetBlendFuncInSpace(BlendMultiply, ColorSpaceSRGB)(200, 100, 50, 255, 10, 20, 30, 255)
	if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
		t.Fatal("ColorSpaceSRGB must behave identically to GetBlendFunc")
	}
}

func TestGetBlendFuncInSpaceLinearRoundTripsOpaqueWhite(t *testing.T) {
	// Opaque white has no gamma ambiguity: sRGB 255 <-> linear 1.0 at
	// both ends, so blending white over white in linear space must
	// still yield opaque white.
	fn := GetBlendFuncInSpace(BlendSourceOver, ColorSpaceLinearRGB)
	r, g, b, a := fn(255, 255, 255, 255, 0, 0, 0, 0)
	if r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("linear-space source-over of opaque white = (%d,%d,%d,%d), want (255,255,255,255)", r, g, b, a)
	}
}
