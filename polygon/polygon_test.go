package polygon_test

import (
	"testing"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(x, y float64) geom.Vec2 { return geom.Vec2{X: x, Y: y} }

func TestNewReversesClockwiseInput(t *testing.T) {
	// clockwise unit square
	cw := []geom.Vec2{v(0, 0), v(0, 1), v(1, 1), v(1, 0)}
	p, err := polygon.New(cw, 1e-9)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p.SignedArea(), 1e-9)
}

func TestNewRejectsTooFewVertices(t *testing.T) {
	_, err := polygon.New([]geom.Vec2{v(0, 0), v(1, 0)}, 1e-9)
	assert.Error(t, err)
}

func TestNewRejectsCollinearTriangle(t *testing.T) {
	_, err := polygon.New([]geom.Vec2{v(0, 0), v(1, 0), v(2, 0)}, 1e-9)
	assert.Error(t, err)
}

func TestNewRejectsFigureEight(t *testing.T) {
	// two crossing edges: (0,0)-(1,1) and (0,1)-(1,0) with wrap-around edges
	figureEight := []geom.Vec2{v(0, 0), v(1, 1), v(0, 1), v(1, 0)}
	_, err := polygon.New(figureEight, 1e-9)
	assert.Error(t, err)
}

func TestNewRejectsDuplicateVertex(t *testing.T) {
	_, err := polygon.New([]geom.Vec2{v(0, 0), v(1, 0), v(1, 0), v(0, 1)}, 1e-9)
	assert.Error(t, err)
}

func TestIsAxisAlignedRectangle(t *testing.T) {
	rect := []geom.Vec2{v(0, 0), v(4, 0), v(4, 2), v(0, 2)}
	p, err := polygon.New(rect, 1e-9)
	require.NoError(t, err)
	assert.True(t, p.IsAxisAlignedRectangle(1e-9))

	lshape := []geom.Vec2{v(0, 0), v(6, 0), v(6, 3), v(3, 3), v(3, 6), v(0, 6)}
	p2, err := polygon.New(lshape, 1e-9)
	require.NoError(t, err)
	assert.False(t, p2.IsAxisAlignedRectangle(1e-9))
}

func TestPerimeter(t *testing.T) {
	rect := []geom.Vec2{v(0, 0), v(4, 0), v(4, 2), v(0, 2)}
	p, err := polygon.New(rect, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, 12, p.Perimeter(), 1e-9)
}

func TestSegmentsIntersect(t *testing.T) {
	assert.True(t, polygon.SegmentsIntersect(v(0, 0), v(2, 2), v(0, 2), v(2, 0), 1e-9))
	assert.False(t, polygon.SegmentsIntersect(v(0, 0), v(1, 0), v(0, 1), v(1, 1), 1e-9))
}

func TestDistancePointSegment(t *testing.T) {
	d := polygon.DistancePointSegment(v(1, 1), v(0, 0), v(2, 0))
	assert.InDelta(t, 1, d, 1e-9)

	// projection clamps to endpoint
	d2 := polygon.DistancePointSegment(v(-1, 0), v(0, 0), v(2, 0))
	assert.InDelta(t, 1, d2, 1e-9)
}
