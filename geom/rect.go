package geom

import "math"

// Rect is an axis-aligned rectangle in float user-space coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// IsEmpty reports whether the rectangle has non-positive area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Transform returns the axis-aligned bounding box of r's four corners
// after applying t. The result is always axis-aligned even if t rotates
// or shears, matching the "transform the bbox, not the shape" contract
// the group renderer relies on for Tier 1/2 bounding rectangles.
func (r Rect) Transform(t Transform) Rect {
	corners := [4][2]float64{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X, r.Y + r.Height},
		{r.X + r.Width, r.Y + r.Height},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := t.TransformPoint(c[0], c[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// IntRect is an integer pixel rectangle, the unit the pool and cache
// operate in.
type IntRect struct {
	X, Y, Width, Height int
}

// IsEmpty reports whether the rectangle has non-positive area.
func (r IntRect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Expand grows the rectangle by n pixels on every side. Used for the
// anti-aliased-edge safety margin on non-filtered isolated groups.
func (r IntRect) Expand(n int) IntRect {
	return IntRect{
		X:      r.X - n,
		Y:      r.Y - n,
		Width:  r.Width + 2*n,
		Height: r.Height + 2*n,
	}
}

// Clamp intersects r with bound, returning an empty rectangle if they
// do not overlap.
func (r IntRect) Clamp(bound IntRect) IntRect {
	x0 := maxInt(r.X, bound.X)
	y0 := maxInt(r.Y, bound.Y)
	x1 := minInt(r.X+r.Width, bound.X+bound.Width)
	y1 := minInt(r.Y+r.Height, bound.Y+bound.Height)
	if x1 <= x0 || y1 <= y0 {
		return IntRect{}
	}
	return IntRect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// FloorCeil converts a float Rect to an IntRect by flooring the origin
// and ceiling the extent, the rounding rule the spec requires so that
// no partially-covered pixel is left out of the isolated layer.
func FloorCeil(r Rect) IntRect {
	x0 := int(math.Floor(r.X))
	y0 := int(math.Floor(r.Y))
	x1 := int(math.Ceil(r.X + r.Width))
	y1 := int(math.Ceil(r.Y + r.Height))
	return IntRect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Truncate converts a float Rect to an IntRect by truncating toward
// zero on both origin and extent, used for filtered groups whose
// region already accounts for filter expansion.
func Truncate(r Rect) IntRect {
	x0 := int(r.X)
	y0 := int(r.Y)
	x1 := int(r.X + r.Width)
	y1 := int(r.Y + r.Height)
	return IntRect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
