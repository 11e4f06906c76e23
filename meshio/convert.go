package meshio

import (
	"github.com/arl/fastgeomesh/indexedmesh"
)

// FromIndexedMesh assembles the record sets meshio writes, using im's own
// derived edge list (first-seen order, per §3/§4.I invariant 7) rather than
// recomputing one from adjacency.
func FromIndexedMesh(im indexedmesh.IndexedMesh) (LegacyMesh, TaggedMesh) {
	legacy := LegacyMesh{Vertices: im.Vertices, Edges: im.Edges, Quads: im.QuadIndices}
	tagged := TaggedMesh{
		Vertices:  im.Vertices,
		Quads:     im.QuadIndices,
		Triangles: im.TriIndices,
		Edges:     im.Edges,
	}
	return legacy, tagged
}
