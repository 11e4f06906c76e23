package meshio_test

import (
	"bytes"
	"testing"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/meshio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyRoundTrip(t *testing.T) {
	// S4 from spec.md: 4 vertices, 4 edges, 1 quad.
	m := meshio.LegacyMesh{
		Vertices: []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Edges:    [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		Quads:    [][4]int{{0, 1, 2, 3}},
	}

	var buf bytes.Buffer
	require.NoError(t, meshio.WriteLegacy(&buf, m))

	back, err := meshio.ReadLegacy(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.Vertices, back.Vertices)
	assert.Equal(t, m.Edges, back.Edges)
	assert.Equal(t, m.Quads, back.Quads)
}

func TestLegacyReadRejectsMalformedIndex(t *testing.T) {
	_, err := meshio.ReadLegacy(bytes.NewBufferString("1\n1 0 0 0\n0\n1\n1 0 0 0 0\n"))
	assert.Error(t, err)
}

func TestTaggedRoundTrip(t *testing.T) {
	m := meshio.TaggedMesh{
		Vertices:  []geom.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Quads:     [][4]int{{0, 1, 2, 3}},
		Triangles: [][3]int{{0, 1, 2}},
		Edges:     [][2]int{{0, 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, meshio.WriteTagged(&buf, m))

	back, err := meshio.ReadTagged(&buf)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestTaggedIgnoresCommentsAndBlankLines(t *testing.T) {
	text := "# a comment\n\nv 0 0 0\n\n# another\nv 1 0 0\n"
	back, err := meshio.ReadTagged(bytes.NewBufferString(text))
	require.NoError(t, err)
	assert.Len(t, back.Vertices, 2)
}

func TestTaggedRejectsUnknownTag(t *testing.T) {
	_, err := meshio.ReadTagged(bytes.NewBufferString("x 1 2 3\n"))
	assert.Error(t, err)
}
