// Package sidemesh generates the vertical quad strips between two adjacent
// Z-levels and two adjacent loop sub-edges (§4.E).
//
// Doc-comment shape (Arguments:/Returns: blocks) follows the teacher's
// recast.RasterizeTriangle(s) in recast/rasterization.go; the per-edge
// horizontal/vertical double loop mirrors that function's per-span nested
// iteration, generalized from voxel spans to target-edge-length spans.
package sidemesh

import (
	"context"
	"math"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/meshdata"
	"github.com/arl/fastgeomesh/meshopts"
)

// GenerateLoop emits the side quads for one closed loop (the outer
// footprint when outward is true, a hole when outward is false), in
// deterministic edge-then-horizontal-then-vertical order (§5 ordering
// guarantees).
//
//	Arguments:
//	ctx         Checked every 10 emitted quads (§5 "checked at bounded intervals"); a cancelled
//	            ctx aborts generation and returns its error.
//	loop        Loop vertices in CCW order (Polygon2D stores holes CCW too); outward=false inverts hole winding.
//	zLevels     Sorted, ε-separated Z elevations spanning the loop's extent.
//	opts        Meshing options (drives target edge length & near-segment/hole refinement upstream).
//	outward     True to orient the quad normal outward (footprint), false to invert it (hole).
//	onProgress  Optional; called with the running quad count every 10 emitted quads.
//
// Returns one quad per (horizontal sub-edge × vertical span); see §8
// invariant 3 for the expected total count.
func GenerateLoop(ctx context.Context, loop []geom.Vec2, zLevels []float64, opts meshopts.MesherOptions, outward bool, onProgress func(count int)) ([]meshdata.Quad, error) {
	if len(loop) < 3 || len(zLevels) < 2 {
		return nil, nil
	}

	targetXY := opts.TargetEdgeLengthXY.Value()
	var quads []meshdata.Quad

	n := len(loop)
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[(i+1)%n]

		hDiv := HorizontalDivisions(a, b, targetXY)
		for h := 0; h < hDiv; h++ {
			t0 := float64(h) / float64(hDiv)
			t1 := float64(h+1) / float64(hDiv)
			p0 := a.Lerp(b, t0)
			p1 := a.Lerp(b, t1)

			for k := 0; k+1 < len(zLevels); k++ {
				z0, z1 := zLevels[k], zLevels[k+1]
				quads = append(quads, quadFor(p0, p1, z0, z1, outward))

				if len(quads)%10 == 0 {
					if onProgress != nil {
						onProgress(len(quads))
					}
					if err := ctx.Err(); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return quads, nil
}

// CountQuads returns the quad count GenerateLoop would produce for loop and
// zLevels, without generating any quads; used to scale progress fractions
// across multiple loops ahead of time (§4.E).
func CountQuads(loop []geom.Vec2, zLevels []float64, opts meshopts.MesherOptions) int {
	if len(loop) < 3 || len(zLevels) < 2 {
		return 0
	}
	targetXY := opts.TargetEdgeLengthXY.Value()
	spans := len(zLevels) - 1

	total := 0
	n := len(loop)
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[(i+1)%n]
		total += HorizontalDivisions(a, b, targetXY) * spans
	}
	return total
}

// HorizontalDivisions returns hDiv = max(1, ceil(|b-a| / targetEdgeLengthXY))
// for the edge (a,b) (§4.E).
func HorizontalDivisions(a, b geom.Vec2, targetEdgeLengthXY float64) int {
	if targetEdgeLengthXY <= 0 {
		return 1
	}
	length := b.Sub(a).Length()
	hDiv := int(math.Ceil(length / targetEdgeLengthXY))
	if hDiv < 1 {
		hDiv = 1
	}
	return hDiv
}

// quadFor builds the quad spanning the horizontal interval [p0,p1] and the
// vertical interval [z0,z1]. Winding: outward orders corners
// (p0,z0)(p1,z0)(p1,z1)(p0,z1); a hole loop swaps the pair to invert the
// normal (§4.E).
func quadFor(p0, p1 geom.Vec2, z0, z1 float64, outward bool) meshdata.Quad {
	c00 := p0.To3(z0)
	c10 := p1.To3(z0)
	c11 := p1.To3(z1)
	c01 := p0.To3(z1)

	if outward {
		return meshdata.Quad{A: c00, B: c10, C: c11, D: c01}
	}
	return meshdata.Quad{A: c10, B: c00, C: c01, D: c11}
}
