package capmesh

import (
	"sort"

	"github.com/arl/fastgeomesh/geom"
)

// quadCandidate is a pairing of two triangles sharing an edge into one of
// the two possible quads (§4.F: "construct the two possible quads, keep
// whichever is convex").
type quadCandidate struct {
	triA, triB int
	quad       [4]int
	score      float64
}

// pairTriangles greedily merges adjacent triangle pairs into quads in
// descending quality order, subject to minQuality. Triangles left unpaired
// (no valid convex merge, or already claimed by a higher-scoring pair) are
// returned as leftover.
//
// Grounded on other_examples gomesh's candidate-generation/scoring/greedy-
// accept shape (mesh-candidates.go, mesh-triangle_ops.go): there candidates
// are re-diagonalizations of an existing triangulation searched exhaustively
// in parallel; here candidates are quads formed by erasing the shared
// diagonal of two triangles, scored once and accepted in a single
// deterministic descending-score pass.
func pairTriangles(verts []geom.Vec2, tris [][3]int, minQuality, eps float64) (quads [][4]int, leftover []int) {
	edgeTris := make(map[[2]int][]int)
	for ti, t := range tris {
		edges := [3][2]int{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}}
		for _, e := range edges {
			edgeTris[edgeKey(e[0], e[1])] = append(edgeTris[edgeKey(e[0], e[1])], ti)
		}
	}

	seenPairs := make(map[[2]int]bool)
	var candidates []quadCandidate
	for k, list := range edgeTris {
		if len(list) != 2 {
			continue
		}
		triA, triB := list[0], list[1]
		pk := edgeKey(triA, triB)
		if seenPairs[pk] {
			continue
		}
		seenPairs[pk] = true

		u, v := k[0], k[1]
		p, ok1 := apexOf(tris[triA], u, v)
		q, ok2 := apexOf(tris[triB], u, v)
		if !ok1 || !ok2 {
			continue
		}

		quad, score, ok := bestQuadOrdering(verts, p, u, q, v)
		if !ok {
			continue
		}
		candidates = append(candidates, quadCandidate{triA: triA, triB: triB, quad: quad, score: score})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].triA != candidates[j].triA {
			return candidates[i].triA < candidates[j].triA
		}
		return candidates[i].triB < candidates[j].triB
	})

	used := make(map[int]bool)
	for _, c := range candidates {
		if used[c.triA] || used[c.triB] {
			continue
		}
		if c.score < minQuality {
			continue
		}
		used[c.triA] = true
		used[c.triB] = true
		quads = append(quads, c.quad)
	}

	for ti := range tris {
		if !used[ti] {
			leftover = append(leftover, ti)
		}
	}
	return quads, leftover
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// apexOf returns the vertex of t that is neither u nor v.
func apexOf(t [3]int, u, v int) (int, bool) {
	for _, x := range t {
		if x != u && x != v {
			return x, true
		}
	}
	return 0, false
}

// bestQuadOrdering tries both boundary orderings of the merged quadrilateral
// (erasing diagonal u-v leaves a boundary walk p,u,q,v or its mirror
// p,v,q,u) and keeps whichever is a convex quad, scored by quadQuality.
func bestQuadOrdering(verts []geom.Vec2, p, u, q, v int) ([4]int, float64, bool) {
	orderings := [2][4]int{{p, u, q, v}, {p, v, q, u}}
	bestScore := -1.0
	var best [4]int
	found := false
	for _, order := range orderings {
		corners := [4]geom.Vec2{verts[order[0]], verts[order[1]], verts[order[2]], verts[order[3]]}
		if !isConvexQuad(corners) {
			continue
		}
		score := quadQuality(corners)
		if score > bestScore {
			bestScore, best, found = score, order, true
		}
	}
	return best, bestScore, found
}
