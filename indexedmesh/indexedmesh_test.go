package indexedmesh_test

import (
	"testing"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/indexedmesh"
	"github.com/arl/fastgeomesh/meshdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeduplicatesSharedCorners(t *testing.T) {
	// Two quads sharing an edge: (1,0)-(1,1) is emitted by both.
	q1 := meshdata.Quad{A: geom.Vec3{X: 0, Y: 0}, B: geom.Vec3{X: 1, Y: 0}, C: geom.Vec3{X: 1, Y: 1}, D: geom.Vec3{X: 0, Y: 1}}
	q2 := meshdata.Quad{A: geom.Vec3{X: 1, Y: 0}, B: geom.Vec3{X: 2, Y: 0}, C: geom.Vec3{X: 2, Y: 1}, D: geom.Vec3{X: 1, Y: 1}}
	m := meshdata.Empty().AddQuad(q1).AddQuad(q2)

	im := indexedmesh.Build(m, 1e-9)
	assert.Len(t, im.Vertices, 6)
	assert.Len(t, im.QuadIndices, 2)
	assert.Equal(t, im.QuadIndices[0][1], im.QuadIndices[1][0])
	assert.Equal(t, im.QuadIndices[0][2], im.QuadIndices[1][3])
}

func TestBuildMergesWithinTolerance(t *testing.T) {
	q1 := meshdata.Quad{A: geom.Vec3{X: 0, Y: 0}, B: geom.Vec3{X: 1, Y: 0}, C: geom.Vec3{X: 1, Y: 1}, D: geom.Vec3{X: 0, Y: 1}}
	q2 := meshdata.Quad{A: geom.Vec3{X: 1 + 1e-10, Y: 0}, B: geom.Vec3{X: 2, Y: 0}, C: geom.Vec3{X: 2, Y: 1}, D: geom.Vec3{X: 1, Y: 1}}
	m := meshdata.Empty().AddQuad(q1).AddQuad(q2)

	im := indexedmesh.Build(m, 1e-6)
	assert.Len(t, im.Vertices, 6)
}

func TestBuildDerivesDedupedUndirectedEdges(t *testing.T) {
	// Two quads sharing an edge: 8 quad-boundary edges total, one shared,
	// so 7 distinct undirected edges.
	q1 := meshdata.Quad{A: geom.Vec3{X: 0, Y: 0}, B: geom.Vec3{X: 1, Y: 0}, C: geom.Vec3{X: 1, Y: 1}, D: geom.Vec3{X: 0, Y: 1}}
	q2 := meshdata.Quad{A: geom.Vec3{X: 1, Y: 0}, B: geom.Vec3{X: 2, Y: 0}, C: geom.Vec3{X: 2, Y: 1}, D: geom.Vec3{X: 1, Y: 1}}
	m := meshdata.Empty().AddQuad(q1).AddQuad(q2)

	im := indexedmesh.Build(m, 1e-9)
	require.Len(t, im.Edges, 7)

	for _, e := range im.Edges {
		assert.Less(t, e[0], e[1])
	}
	// First-seen order: q1's first edge is its own (0,1) pair.
	assert.Equal(t, im.QuadIndices[0][0], im.Edges[0][0])
	assert.Equal(t, im.QuadIndices[0][1], im.Edges[0][1])
}
