package adjacency_test

import (
	"testing"

	"github.com/arl/fastgeomesh/adjacency"
	"github.com/stretchr/testify/assert"
)

func TestBuildTwoQuadStrip(t *testing.T) {
	// Two unit quads sharing edge (1,4): a 2x1 grid of 6 vertices.
	// quad0: 0,1,4,3   quad1: 1,2,5,4
	quads := [][4]int{{0, 1, 4, 3}, {1, 2, 5, 4}}
	adj := adjacency.Build(quads, nil)

	shared := adj.Neighbors(1, 4)
	assert.Len(t, shared, 2)

	// Every other edge of the 2x1 strip is a boundary edge: the two quads
	// have 7 distinct edges, and all but the shared interior edge (1,4) lie
	// on the perimeter, giving 6 boundary edges.
	assert.Len(t, adj.BoundaryEdges, 6)
	assert.Empty(t, adj.NonManifold)
}

func TestBuildNonManifoldEdge(t *testing.T) {
	tris := [][3]int{{0, 1, 2}, {0, 1, 3}, {0, 1, 4}}
	adj := adjacency.Build(nil, tris)
	assert.Len(t, adj.NonManifold, 1)
	assert.Len(t, adj.Neighbors(0, 1), 3)
}
