package capmesh

import (
	"math"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/internal/pool"
	"github.com/arl/fastgeomesh/polygon"
)

// tessellate triangulates a simple polygon with holes into a triangle soup
// using hole elimination by bridging followed by ear clipping (§4.F general
// path).
//
// Grounded on the teacher's recast/meshdetail.go delaunayHull/completeFacet/
// triangulateHull family: that code builds a triangle soup over a point set
// by repeatedly completing the "best" facet against the current hull. Here
// the input is already a polygon boundary rather than a scattered point set,
// so the equivalent operation is hole bridging (fold every hole into one
// simple outer ring) followed by ear clipping of that ring — the textbook
// reduction from "polygon with holes" to "simple polygon" triangulation.
func tessellate(outer []geom.Vec2, holes [][]geom.Vec2, eps float64) ([]geom.Vec2, [][3]int) {
	ring := bridgeHoles(outer, holes, eps)
	tris := earClip(ring, eps)
	return ring, tris
}

// bridgeHoles folds every hole ring into outer by inserting a pair of
// coincident bridge edges from a rightmost hole vertex to the nearest
// visible outer-ring vertex, producing one simple (possibly
// self-touching-at-bridges) ring.
func bridgeHoles(outer []geom.Vec2, holes [][]geom.Vec2, eps float64) []geom.Vec2 {
	merged := pool.AcquireVec2Scratch()
	merged = append(merged, outer...)
	for _, hole := range holes {
		if len(hole) < 3 {
			continue
		}
		cw := append([]geom.Vec2(nil), hole...)
		reverseVec2(cw)

		hvIdx := rightmostIndex(cw)
		hv := cw[hvIdx]
		bridgeIdx := findBridgeVertex(merged, hv, eps)

		next := spliceHole(merged, bridgeIdx, cw, hvIdx)
		pool.ReleaseVec2Scratch(merged)
		merged = next
	}
	// merged's backing array came from spliceHole's own allocation (or,
	// with no holes, still owns the pooled buffer); copy out before
	// returning it to the pool so the caller's ring can't be clobbered by
	// a later Acquire.
	out := append([]geom.Vec2(nil), merged...)
	pool.ReleaseVec2Scratch(merged)
	return out
}

func rightmostIndex(ring []geom.Vec2) int {
	best := 0
	for i, v := range ring {
		if v.X > ring[best].X {
			best = i
		}
	}
	return best
}

// findBridgeVertex returns the index in ring of the vertex nearest to hv
// whose connecting segment crosses no ring edge.
func findBridgeVertex(ring []geom.Vec2, hv geom.Vec2, eps float64) int {
	best, bestDist := -1, math.Inf(1)
	for i, v := range ring {
		if segmentCrossesRing(hv, v, ring, i, eps) {
			continue
		}
		d := hv.Sub(v).LengthSq()
		if d < bestDist {
			bestDist, best = d, i
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func segmentCrossesRing(p, q geom.Vec2, ring []geom.Vec2, qIdx int, eps float64) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if i == qIdx || j == qIdx {
			continue
		}
		if polygon.SegmentsIntersect(p, q, ring[i], ring[j], eps) {
			return true
		}
	}
	return false
}

// spliceHole inserts hole (starting at hvIdx, traversing the full ring back
// to hvIdx) into merged right after index bridgeIdx, with a doubled bridge
// vertex on both sides closing the zero-width channel.
func spliceHole(merged []geom.Vec2, bridgeIdx int, hole []geom.Vec2, hvIdx int) []geom.Vec2 {
	out := append([]geom.Vec2(nil), merged[:bridgeIdx+1]...)
	n := len(hole)
	for k := 0; k <= n; k++ {
		out = append(out, hole[(hvIdx+k)%n])
	}
	out = append(out, merged[bridgeIdx])
	out = append(out, merged[bridgeIdx+1:]...)
	return out
}

func reverseVec2(v []geom.Vec2) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

// earClip triangulates a simple (possibly bridge-degenerate) CCW ring,
// repeatedly clipping convex vertices whose ear triangle contains no other
// remaining ring vertex.
func earClip(ring []geom.Vec2, eps float64) [][3]int {
	n := len(ring)
	if n < 3 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var tris [][3]int
	i := 0
	failStreak := 0
	for len(idx) > 3 {
		m := len(idx)
		if failStreak >= m {
			// Degenerate or self-intersecting ring; fan the remainder as a
			// best-effort fallback rather than looping forever.
			break
		}
		prev := idx[(i-1+m)%m]
		cur := idx[i]
		next := idx[(i+1)%m]

		if isEar(ring, idx, i, eps) {
			tris = append(tris, [3]int{prev, cur, next})
			idx = append(idx[:i], idx[i+1:]...)
			if i >= len(idx) {
				i = 0
			}
			failStreak = 0
		} else {
			i = (i + 1) % len(idx)
			failStreak++
		}
	}
	for k := 1; k+1 < len(idx); k++ {
		tris = append(tris, [3]int{idx[0], idx[k], idx[k+1]})
	}
	return tris
}

func isEar(ring []geom.Vec2, idx []int, i int, eps float64) bool {
	n := len(idx)
	prev := idx[(i-1+n)%n]
	cur := idx[i]
	next := idx[(i+1)%n]
	a, b, c := ring[prev], ring[cur], ring[next]

	if polygon.Orient(a, b, c, eps) != polygon.CCW {
		return false
	}
	for k := 0; k < n; k++ {
		if k == (i-1+n)%n || k == i || k == (i+1)%n {
			continue
		}
		pt := ring[idx[k]]
		if pt.Sub(a).Length() < eps || pt.Sub(b).Length() < eps || pt.Sub(c).Length() < eps {
			// a bridge duplicate of a corner does not block the ear
			continue
		}
		if pointInTriangle(pt, a, b, c, eps) {
			return false
		}
	}
	return true
}

func pointInTriangle(p, a, b, c geom.Vec2, eps float64) bool {
	o1 := polygon.Orient(a, b, p, eps)
	o2 := polygon.Orient(b, c, p, eps)
	o3 := polygon.Orient(c, a, p, eps)
	hasCW := o1 == polygon.CW || o2 == polygon.CW || o3 == polygon.CW
	hasCCW := o1 == polygon.CCW || o2 == polygon.CCW || o3 == polygon.CCW
	return !(hasCW && hasCCW)
}
