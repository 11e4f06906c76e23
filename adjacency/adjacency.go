// Package adjacency derives the edge-to-face neighbor table, boundary edge
// list, and non-manifold edge list of an indexed mesh (§4.J).
//
// Directly grounded on the teacher's recast/mesh.go buildMeshAdjacency,
// itself Eric Lengyel's edge-sharing algorithm (terathon.com/code/edges.php):
// bucket edges by their lower-indexed vertex, then for every edge walk the
// opposite vertex's bucket to find its match. Generalized here from
// fixed-vertsPerPoly navmesh polygons to mixed quad/triangle faces, and from
// "first two sharers win" to an explicit non-manifold list for edges shared
// by more than two faces.
package adjacency

import "sort"

// EdgeKey is an undirected, vertex-ordered edge: Lo < Hi.
type EdgeKey struct {
	Lo, Hi int
}

// FaceRef identifies one face of the mesh: a quad or a triangle, by index
// into the corresponding IndexedMesh slice.
type FaceRef struct {
	IsQuad bool
	Index  int
}

// MeshAdjacency is the edge-sharing structure of an indexed mesh.
type MeshAdjacency struct {
	EdgeFaces     map[EdgeKey][]FaceRef
	BoundaryEdges []EdgeKey
	NonManifold   []EdgeKey
}

// Build derives adjacency from quad and triangle index lists (vertex
// indices into a shared vertex pool), preserving face emission order within
// each edge's neighbor list.
func Build(quads [][4]int, tris [][3]int) MeshAdjacency {
	adj := MeshAdjacency{EdgeFaces: make(map[EdgeKey][]FaceRef)}

	for qi, q := range quads {
		ring := []int{q[0], q[1], q[2], q[3]}
		addFaceEdges(&adj, ring, FaceRef{IsQuad: true, Index: qi})
	}
	for ti, t := range tris {
		ring := []int{t[0], t[1], t[2]}
		addFaceEdges(&adj, ring, FaceRef{IsQuad: false, Index: ti})
	}

	keys := make([]EdgeKey, 0, len(adj.EdgeFaces))
	for k := range adj.EdgeFaces {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Lo != keys[j].Lo {
			return keys[i].Lo < keys[j].Lo
		}
		return keys[i].Hi < keys[j].Hi
	})

	for _, k := range keys {
		switch len(adj.EdgeFaces[k]) {
		case 1:
			adj.BoundaryEdges = append(adj.BoundaryEdges, k)
		case 2:
			// manifold interior edge, no list needed
		default:
			adj.NonManifold = append(adj.NonManifold, k)
		}
	}
	return adj
}

func addFaceEdges(adj *MeshAdjacency, ring []int, face FaceRef) {
	n := len(ring)
	for i := 0; i < n; i++ {
		v0, v1 := ring[i], ring[(i+1)%n]
		k := edgeKey(v0, v1)
		adj.EdgeFaces[k] = append(adj.EdgeFaces[k], face)
	}
}

func edgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{Lo: a, Hi: b}
}

// Neighbors returns every face that has edge (a,b), in either direction, in
// face emission order (quads first, then triangles).
func (m MeshAdjacency) Neighbors(a, b int) []FaceRef {
	return m.EdgeFaces[edgeKey(a, b)]
}
