package meshdata_test

import (
	"testing"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/meshdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReturnsNewValue(t *testing.T) {
	m0 := meshdata.Empty()
	q := meshdata.Quad{A: geom.Vec3{X: 0}, B: geom.Vec3{X: 1}, C: geom.Vec3{X: 1, Y: 1}, D: geom.Vec3{Y: 1}}
	m1 := m0.AddQuad(q)

	assert.Equal(t, 0, m0.QuadCount())
	assert.Equal(t, 1, m1.QuadCount())
}

func TestAddDoesNotAliasAcrossBranches(t *testing.T) {
	base := meshdata.Empty().AddQuad(meshdata.Quad{})
	left := base.AddQuad(meshdata.Quad{A: geom.Vec3{X: 1}})
	right := base.AddQuad(meshdata.Quad{A: geom.Vec3{X: 2}})

	assert.Equal(t, 2, left.QuadCount())
	assert.Equal(t, 2, right.QuadCount())
	assert.NotEqual(t, left.Quads()[1].A, right.Quads()[1].A)
	assert.Equal(t, 1, base.QuadCount())
}

func TestAddPointsAndSegments(t *testing.T) {
	m := meshdata.Empty().
		AddPoints([]geom.Vec3{{X: 1}, {X: 2}}).
		AddInternalSegment(geom.Segment3D{A: geom.Vec3{X: 1}, B: geom.Vec3{X: 2}})

	assert.Len(t, m.Points(), 2)
	assert.Len(t, m.Segments(), 1)
}

func TestAddInternalSegmentsBulk(t *testing.T) {
	segs := []geom.Segment3D{
		{A: geom.Vec3{X: 1}, B: geom.Vec3{X: 2}},
		{A: geom.Vec3{X: 3}, B: geom.Vec3{X: 4}},
	}
	m := meshdata.Empty().AddInternalSegments(segs)

	require.Len(t, m.Segments(), 2)
	assert.Equal(t, segs, m.Segments())
}
