package spatial_test

import (
	"testing"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/spatial"
	"github.com/stretchr/testify/assert"
)

func square() []geom.Vec2 {
	return []geom.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
}

func TestPointInPolygon(t *testing.T) {
	sq := square()
	assert.True(t, spatial.PointInPolygon(geom.Vec2{X: 2, Y: 2}, sq, 1e-9))
	assert.False(t, spatial.PointInPolygon(geom.Vec2{X: 5, Y: 2}, sq, 1e-9))
	assert.False(t, spatial.PointInPolygon(geom.Vec2{X: -1, Y: 2}, sq, 1e-9))
}

func TestPointInPolygonOnEdgeWithinToleranceIsInside(t *testing.T) {
	sq := square()
	assert.True(t, spatial.PointInPolygon(geom.Vec2{X: 0, Y: 2}, sq, 1e-9))
	assert.True(t, spatial.PointInPolygon(geom.Vec2{X: 4 + 1e-10, Y: 2}, sq, 1e-6))
}

func TestPointInFootprintMinusHoles(t *testing.T) {
	footprint := square()
	hole := []geom.Vec2{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}}

	assert.True(t, spatial.PointInFootprintMinusHoles(geom.Vec2{X: 0.5, Y: 0.5}, footprint, [][]geom.Vec2{hole}, 1e-9))
	assert.False(t, spatial.PointInFootprintMinusHoles(geom.Vec2{X: 2, Y: 2}, footprint, [][]geom.Vec2{hole}, 1e-9))
}

func TestChunkyPolyIndexWithinDistance(t *testing.T) {
	segs := []geom.Segment2D{
		{A: geom.Vec2{X: 0, Y: 0}, B: geom.Vec2{X: 10, Y: 0}},
		{A: geom.Vec2{X: 0, Y: 10}, B: geom.Vec2{X: 10, Y: 10}},
		{A: geom.Vec2{X: 20, Y: 20}, B: geom.Vec2{X: 30, Y: 20}},
	}
	idx := spatial.NewChunkyPolyIndex(segs, 1)

	assert.True(t, idx.WithinDistance(geom.Vec2{X: 5, Y: 0.1}, 0.5))
	assert.False(t, idx.WithinDistance(geom.Vec2{X: 5, Y: 5}, 0.5))
	assert.True(t, idx.WithinDistance(geom.Vec2{X: 25, Y: 20.2}, 0.5))
}

func TestChunkyPolyIndexEmpty(t *testing.T) {
	idx := spatial.NewChunkyPolyIndex(nil, 4)
	assert.False(t, idx.WithinDistance(geom.Vec2{}, 1))
}
