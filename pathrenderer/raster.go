// Package pathrenderer fills and strokes a single path against a
// target pixel buffer. It implements a modest scanline/coverage
// rasterizer (4x4 supersampled point-in-polygon testing) rather than
// a production-grade active-edge-table rasterizer: correctness and
// readability over raw throughput, since this package exists to make
// the rendering core runnable end to end rather than to win a
// benchmark.
package pathrenderer

import "github.com/svgraster/raster/geom"

// FillRule mirrors svgtree.FillRule without importing svgtree, so this
// package's core rasterizer has no dependency on the tree contract and
// can be reused directly by clipengine for hole-punching geometry.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// samplesPerAxis is the supersampling factor in each of x and y;
// coverage is the fraction of the samplesPerAxis^2 grid inside the
// path at a given pixel.
const samplesPerAxis = 4

type edge struct {
	x0, y0, x1, y1 float64
	winding        int
}

// buildEdges flattens segments (each a closed polygon loop in local
// space) into directed device-space edges by applying transform,
// skipping horizontal edges (they never contribute a crossing).
func buildEdges(segments [][]geom.Point, transform geom.Transform) []edge {
	var edges []edge
	for _, loop := range segments {
		n := len(loop)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := loop[i].Apply(transform)
			p1 := loop[(i+1)%n].Apply(transform)
			if p0.Y == p1.Y {
				continue
			}
			w := 1
			if p0.Y > p1.Y {
				p0, p1 = p1, p0
				w = -1
			}
			edges = append(edges, edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, winding: w})
		}
	}
	return edges
}

// xAt returns the edge's x coordinate at height y. Callers only call
// this once y0 <= y < y1 has been verified.
func (e edge) xAt(y float64) float64 {
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + t*(e.x1-e.x0)
}

// inside reports whether point (x,y) is inside the polygon described
// by edges under rule.
func inside(edges []edge, x, y float64, rule FillRule) bool {
	winding := 0
	crossings := 0
	for _, e := range edges {
		if y < e.y0 || y >= e.y1 {
			continue
		}
		if e.xAt(y) > x {
			winding += e.winding
			crossings++
		}
	}
	if rule == FillRuleEvenOdd {
		return crossings%2 == 1
	}
	return winding != 0
}

// Rasterize computes per-pixel anti-aliased coverage (0-255) for
// segments (closed polygon loops in local space) transformed by
// transform, into a w x h device-space grid.
func Rasterize(segments [][]geom.Point, rule FillRule, transform geom.Transform, w, h int) []uint8 {
	out := make([]uint8, w*h)
	edges := buildEdges(segments, transform)
	if len(edges) == 0 {
		return out
	}

	const total = samplesPerAxis * samplesPerAxis
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hits := 0
			for sy := 0; sy < samplesPerAxis; sy++ {
				sampleY := float64(y) + (float64(sy)+0.5)/samplesPerAxis
				for sx := 0; sx < samplesPerAxis; sx++ {
					sampleX := float64(x) + (float64(sx)+0.5)/samplesPerAxis
					if inside(edges, sampleX, sampleY, rule) {
						hits++
					}
				}
			}
			if hits > 0 {
				out[y*w+x] = uint8(hits * 255 / total)
			}
		}
	}
	return out
}
