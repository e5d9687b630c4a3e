package imagerenderer

import (
	"testing"

	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/svgtree"
)

func TestFitRectMeetCentersNarrowerSource(t *testing.T) {
	viewBox := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	fitted := fitRect(50, 100, viewBox, svgtree.AlignMid, false)

	if fitted.Width != 50 || fitted.Height != 100 {
		t.Fatalf("meet should scale by the limiting axis, got %+v", fitted)
	}
	if fitted.X != 25 {
		t.Errorf("xMidYMid should center the fitted rect, got X=%v", fitted.X)
	}
}

func TestFitRectSliceCoversViewBox(t *testing.T) {
	viewBox := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	fitted := fitRect(50, 100, viewBox, svgtree.AlignMid, true)

	if fitted.Width < 100 || fitted.Height < 100 {
		t.Errorf("slice should cover the whole view box, got %+v", fitted)
	}
}

func TestFitRectAlignMinAnchorsAtOrigin(t *testing.T) {
	viewBox := geom.Rect{X: 10, Y: 10, Width: 100, Height: 50}
	fitted := fitRect(100, 50, viewBox, svgtree.AlignMin, false)

	if fitted.X != 10 || fitted.Y != 10 {
		t.Errorf("AlignMin should anchor at the view box origin, got %+v", fitted)
	}
}
