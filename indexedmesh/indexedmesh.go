// Package indexedmesh builds a deduplicated, indexed vertex/face
// representation from a meshdata.Mesh (§4.I).
//
// Vertex dedup is grounded on the teacher's recast/mesh.go addVertex: a
// quantized-coordinate hash bucket with linear probing for exact (here,
// tolerance-rounded) matches, the same technique used there to merge
// coincident polygon-mesh vertices.
package indexedmesh

import (
	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/meshdata"
)

// IndexedMesh is the deduplicated output of a meshing run: a unique vertex
// pool plus quads/triangles expressed as indices into it, preserving the
// emission order of the source Mesh, plus the derived undirected edge list
// (§3 IndexedMesh.edges, §4.I invariant 7).
type IndexedMesh struct {
	Vertices    []geom.Vec3
	QuadIndices [][4]int
	TriIndices  [][3]int
	Edges       [][2]int
}

type vertexKey [3]int64

// Build deduplicates every vertex referenced by m's quads/triangles/points
// at tolerance, rounding each coordinate to the nearest tol before hashing
// so coincident corners emitted by independent stages (side mesher, cap
// mesher) collapse to one vertex.
func Build(m meshdata.Mesh, tol float64) IndexedMesh {
	if tol <= 0 {
		tol = 1e-9
	}
	index := make(map[vertexKey]int)
	var out IndexedMesh

	lookup := func(v geom.Vec3) int {
		k := quantize(v, tol)
		if i, ok := index[k]; ok {
			return i
		}
		i := len(out.Vertices)
		index[k] = i
		out.Vertices = append(out.Vertices, v)
		return i
	}

	for _, q := range m.Quads() {
		out.QuadIndices = append(out.QuadIndices, [4]int{
			lookup(q.A), lookup(q.B), lookup(q.C), lookup(q.D),
		})
	}
	for _, t := range m.Triangles() {
		out.TriIndices = append(out.TriIndices, [3]int{
			lookup(t.A), lookup(t.B), lookup(t.C),
		})
	}
	for _, p := range m.Points() {
		lookup(p)
	}

	out.Edges = edgesOf(out.QuadIndices, out.TriIndices)
	return out
}

// edgesOf derives the undirected, global edge list for every quad/triangle's
// consecutive cyclic vertex pairs, endpoints sorted and deduplicated while
// preserving first-seen order (§3, §4.I invariant 7).
func edgesOf(quads [][4]int, tris [][3]int) [][2]int {
	seen := make(map[[2]int]bool)
	var edges [][2]int

	addEdge := func(u, v int) {
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if seen[key] {
			return
		}
		seen[key] = true
		edges = append(edges, key)
	}

	for _, q := range quads {
		for i := 0; i < 4; i++ {
			addEdge(q[i], q[(i+1)%4])
		}
	}
	for _, t := range tris {
		for i := 0; i < 3; i++ {
			addEdge(t[i], t[(i+1)%3])
		}
	}
	return edges
}

func quantize(v geom.Vec3, tol float64) vertexKey {
	return vertexKey{
		round(v.X / tol),
		round(v.Y / tol),
		round(v.Z / tol),
	}
}

func round(f float64) int64 {
	if f >= 0 {
		return int64(f + 0.5)
	}
	return int64(f - 0.5)
}
