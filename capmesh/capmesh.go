// Package capmesh tessellates a cap (bottom or top) of a prism footprint,
// optionally perforated by holes, into quads (and leftover triangles) at a
// fixed Z elevation (§4.F).
//
// The fast path handles the common case of a hole-free axis-aligned
// rectangular footprint with a uniform quad grid. The general path
// tessellates the footprint-with-holes via bridging + ear clipping
// (tessellate.go), pairs adjacent triangles into quads greedily by quality
// (pairing.go), and optionally emits triangles that could not be paired.
package capmesh

import (
	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/meshdata"
	"github.com/arl/fastgeomesh/meshopts"
	"github.com/arl/fastgeomesh/polygon"
	"github.com/arl/fastgeomesh/spatial"
)

// Result is one cap's tessellation output.
type Result struct {
	Quads     []meshdata.Quad
	Triangles []meshdata.Triangle
}

// Generate tessellates the footprint (minus holes) at elevation z. top
// selects upward-facing winding (true) or downward-facing winding (false,
// the bottom cap).
func Generate(footprint polygon.Polygon2D, holes []polygon.Polygon2D, z float64, top bool, opts meshopts.MesherOptions) Result {
	eps := opts.Epsilon.Value()

	if len(holes) == 0 && footprint.IsAxisAlignedRectangle(eps) {
		return Result{Quads: rectangleGrid(footprint, z, opts.TargetEdgeLengthXY.Value(), top)}
	}

	outer := densifyForRefinement(footprint.Vertices(), holes, opts)
	holeRings := make([][]geom.Vec2, len(holes))
	for i, h := range holes {
		holeRings[i] = densifyRing(h.Vertices(), holeTargetEdgeLength(opts))
	}

	verts, tris := tessellate(outer, holeRings, eps)
	quadIdx, leftoverIdx := pairTriangles(verts, tris, opts.MinCapQuadQuality, eps)

	var res Result
	res.Quads = make([]meshdata.Quad, 0, len(quadIdx))
	for _, qi := range quadIdx {
		corners := [4]geom.Vec2{verts[qi[0]], verts[qi[1]], verts[qi[2]], verts[qi[3]]}
		if signedArea2D(corners[:]) < 0 {
			corners = [4]geom.Vec2{corners[0], corners[3], corners[2], corners[1]}
		}
		res.Quads = append(res.Quads, capQuad(corners, z, top, true))
	}

	if opts.OutputRejectedCapTriangles {
		res.Triangles = make([]meshdata.Triangle, 0, len(leftoverIdx))
		for _, ti := range leftoverIdx {
			t := tris[ti]
			a, b, c := verts[t[0]], verts[t[1]], verts[t[2]]
			if polygon.Orient(a, b, c, eps) != polygon.CCW {
				a, b, c = a, c, b
			}
			res.Triangles = append(res.Triangles, capTriangle(a, b, c, z, top))
		}
	}
	return res
}

// holeTargetEdgeLength returns the near-hole override edge length if set,
// else the base target.
func holeTargetEdgeLength(opts meshopts.MesherOptions) float64 {
	if opts.TargetEdgeLengthXYNearHoles != nil {
		return opts.TargetEdgeLengthXYNearHoles.Value()
	}
	return opts.TargetEdgeLengthXY.Value()
}

// densifyForRefinement splits outer-ring edges lying within HoleRefineBand
// of any hole boundary down to the near-hole target edge length, giving the
// ear-clip tessellation finer triangles close to holes without a true
// Steiner-point CDT refinement pass (§4.F refinement bands; Open Question
// resolved in DESIGN.md: boundary densification, not interior Steiner
// insertion).
func densifyForRefinement(outer []geom.Vec2, holes []polygon.Polygon2D, opts meshopts.MesherOptions) []geom.Vec2 {
	if opts.TargetEdgeLengthXYNearHoles == nil || len(holes) == 0 {
		return append([]geom.Vec2(nil), outer...)
	}
	fineTarget := opts.TargetEdgeLengthXYNearHoles.Value()
	band := opts.HoleRefineBand

	var out []geom.Vec2
	n := len(outer)
	for i := 0; i < n; i++ {
		a, b := outer[i], outer[(i+1)%n]
		out = append(out, a)
		if nearAnyHole(a, b, holes, band) {
			out = append(out, subdivideEdge(a, b, fineTarget)...)
		}
	}
	return out
}

func nearAnyHole(a, b geom.Vec2, holes []polygon.Polygon2D, band float64) bool {
	for _, h := range holes {
		if spatial.NearAnySegment(a, b, h.Vertices(), band) {
			return true
		}
	}
	return false
}

func subdivideEdge(a, b geom.Vec2, target float64) []geom.Vec2 {
	n := divisions(b.Sub(a).Length(), target)
	var pts []geom.Vec2
	for k := 1; k < n; k++ {
		pts = append(pts, a.Lerp(b, float64(k)/float64(n)))
	}
	return pts
}

// densifyRing splits every edge of ring down to target edge length.
func densifyRing(ring []geom.Vec2, target float64) []geom.Vec2 {
	var out []geom.Vec2
	n := len(ring)
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		out = append(out, a)
		out = append(out, subdivideEdge(a, b, target)...)
	}
	return out
}
