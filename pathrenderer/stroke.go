package pathrenderer

import (
	"math"

	"github.com/svgraster/raster/geom"
	"github.com/svgraster/raster/svgtree"
)

// strokeQuad builds the four corners of the rectangle covering the
// segment p0->p1 at half-width hw, offset perpendicular to the
// segment's direction. Degenerate (zero-length) segments collapse to
// a zero-area quad and simply rasterize to no coverage.
func strokeQuad(p0, p1 geom.Point, hw float64) []geom.Point {
	dir := geom.PointSub(p1, p0).Normalize()
	perp := dir.Perp().Mul(hw)
	return []geom.Point{
		{X: p0.X + perp.X, Y: p0.Y + perp.Y},
		{X: p1.X + perp.X, Y: p1.Y + perp.Y},
		{X: p1.X - perp.X, Y: p1.Y - perp.Y},
		{X: p0.X - perp.X, Y: p0.Y - perp.Y},
	}
}

// dashSegments splits the open polyline loop into the "on" line
// segments implied by dash and offset. An empty dash array (or one
// summing to zero) returns every edge of loop verbatim, i.e. a solid
// stroke.
func dashSegments(loop []geom.Point, dash []float64, offset float64) [][2]geom.Point {
	var result [][2]geom.Point
	total := 0.0
	for _, d := range dash {
		total += d
	}
	if len(dash) == 0 || total <= 0 {
		for i := 0; i+1 < len(loop); i++ {
			result = append(result, [2]geom.Point{loop[i], loop[i+1]})
		}
		return result
	}

	pos := math.Mod(offset, total)
	if pos < 0 {
		pos += total
	}
	idx := 0
	for pos >= dash[idx] {
		pos -= dash[idx]
		idx = (idx + 1) % len(dash)
	}
	on := idx%2 == 0
	remaining := dash[idx] - pos

	for i := 0; i+1 < len(loop); i++ {
		p0, p1 := loop[i], loop[i+1]
		segLen := p0.Distance(p1)
		if segLen == 0 {
			continue
		}
		traveled := 0.0
		for traveled < segLen {
			step := math.Min(remaining, segLen-traveled)
			a := p0.Lerp(p1, traveled/segLen)
			b := p0.Lerp(p1, (traveled+step)/segLen)
			if on {
				result = append(result, [2]geom.Point{a, b})
			}
			traveled += step
			remaining -= step
			if remaining <= 1e-9 {
				idx = (idx + 1) % len(dash)
				remaining = dash[idx]
				on = !on
			}
		}
	}
	return result
}

// strokeCoverage rasterizes stroke's outline over segments (closed
// polygon loops in local space), transformed by transform, into a
// w x h device-space coverage grid. Each dash-on piece becomes its own
// rectangular quad; overlapping quads at joins are combined by taking
// the maximum coverage rather than a winding-rule union, since
// adjoining quads can carry opposing winding and would otherwise
// cancel at the seam.
//
// Joins and caps are not mitered or rounded: each segment's quad ends
// square at its own endpoints. This is the "modest" stroke model the
// package ships; gradient and pattern strokes beyond a flat or
// two-stop-gradient paint are out of scope.
func strokeCoverage(stroke svgtree.Stroke, segments [][]geom.Point, transform geom.Transform, w, h int) []uint8 {
	out := make([]uint8, w*h)
	hw := stroke.Width / 2
	if hw <= 0 {
		return out
	}

	for _, loop := range segments {
		if len(loop) < 2 {
			continue
		}
		closed := make([]geom.Point, len(loop)+1)
		copy(closed, loop)
		closed[len(loop)] = loop[0]

		for _, seg := range dashSegments(closed, stroke.DashArray, stroke.DashOffset) {
			quad := strokeQuad(seg[0], seg[1], hw)
			cov := Rasterize([][]geom.Point{quad}, FillRuleNonZero, transform, w, h)
			for i, v := range cov {
				if v > out[i] {
					out[i] = v
				}
			}
		}
	}
	return out
}
