package geom

import (
	"math"
	"testing"
)

func TestPointLerp(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, 20)
	mid := p.Lerp(q, 0.5)
	if mid != (Point{X: 5, Y: 10}) {
		t.Fatalf("Lerp midpoint = %+v, want {5,10}", mid)
	}
}

func TestPointDistance(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(3, 4)
	if d := p.Distance(q); math.Abs(d-5) > 1e-12 {
		t.Fatalf("Distance = %v, want 5", d)
	}
}

func TestPointApplyTransform(t *testing.T) {
	p := Pt(1, 1)
	got := p.Apply(Translate(2, 3))
	if got != (Point{X: 3, Y: 4}) {
		t.Fatalf("Apply(Translate) = %+v, want {3,4}", got)
	}
}
