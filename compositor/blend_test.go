package compositor

import "testing"

func TestBlendSourceOverDefault(t *testing.T) {
	r, g, b, a := blendSourceOver(255, 0, 0, 255, 0, 0, 255, 255)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("opaque red over opaque blue = (%d,%d,%d,%d), want (255,0,0,255)", r, g, b, a)
	}
}

func TestGetBlendFuncCoversEveryMode(t *testing.T) {
	modes := []BlendMode{
		BlendClear, BlendSource, BlendDestination, BlendSourceOver,
		BlendDestinationOver, BlendSourceIn, BlendDestinationIn, BlendSourceOut,
		BlendDestinationOut, BlendSourceAtop, BlendDestinationAtop, BlendXor,
		BlendPlus, BlendModulate, BlendNormal, BlendMultiply, BlendScreen,
		BlendOverlay, BlendDarken, BlendLighten, BlendColorDodge, BlendColorBurn,
		BlendHardLight, BlendSoftLight, BlendDifference, BlendExclusion,
		BlendHue, BlendSaturation, BlendColor, BlendLuminosity,
	}
	for _, m := range modes {
		if GetBlendFunc(m) == nil {
			t.Errorf("GetBlendFunc(%d) returned nil", m)
		}
	}
}

func TestGetBlendFuncUnknownFallsBackToSourceOver(t *testing.T) {
	fn := GetBlendFunc(BlendMode(255))
	r, g, b, a := fn(255, 0, 0, 255, 0, 0, 0, 0)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Error("unknown blend mode did not fall back to source-over behavior")
	}
}

func TestBlendMultiplyBlack(t *testing.T) {
	// Multiply with opaque black source always yields black, regardless
	// of destination.
	r, g, b, a := blendMultiply(0, 0, 0, 255, 200, 150, 100, 255)
	if r != 0 || g != 0 || b != 0 || a != 255 {
		t.Errorf("blendMultiply with black source = (%d,%d,%d,%d), want (0,0,0,255)", r, g, b, a)
	}
}

func TestBlendScreenWhite(t *testing.T) {
	// Screen with opaque white source always yields white.
	r, g, b, a := blendScreen(255, 255, 255, 255, 50, 60, 70, 255)
	if r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("blendScreen with white source = (%d,%d,%d,%d), want (255,255,255,255)", r, g, b, a)
	}
}
