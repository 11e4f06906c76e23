package geom_test

import (
	"testing"

	"github.com/arl/fastgeomesh/geom"
	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := geom.Vec2{X: 1, Y: 2}
	b := geom.Vec2{X: 3, Y: -1}

	assert.Equal(t, geom.Vec2{X: 4, Y: 1}, a.Add(b))
	assert.Equal(t, geom.Vec2{X: -2, Y: 3}, a.Sub(b))
	assert.Equal(t, geom.Vec2{X: 2, Y: 4}, a.Scale(2))
	assert.InDelta(t, 1, a.Dot(b), 1e-12)
	assert.InDelta(t, -7, a.Cross(b), 1e-12)
}

func TestVec2NormalizeZero(t *testing.T) {
	assert.Equal(t, geom.Vec2{}, geom.Vec2{}.Normalize())

	v := geom.Vec2{X: 3, Y: 4}
	n := v.Normalize()
	assert.InDelta(t, 1, n.Length(), 1e-12)
}

func TestVec2Lerp(t *testing.T) {
	a := geom.Vec2{X: 0, Y: 0}
	b := geom.Vec2{X: 10, Y: 0}
	assert.Equal(t, geom.Vec2{X: 5, Y: 0}, a.Lerp(b, 0.5))
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
}

func TestVec3CrossAndNormalize(t *testing.T) {
	x := geom.Vec3{X: 1, Y: 0, Z: 0}
	y := geom.Vec3{X: 0, Y: 1, Z: 0}
	z := x.Cross(y)
	assert.Equal(t, geom.Vec3{X: 0, Y: 0, Z: 1}, z)

	assert.Equal(t, geom.Vec3{}, geom.Vec3{}.Normalize())
}

func TestVec3XY(t *testing.T) {
	v := geom.Vec3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, geom.Vec2{X: 1, Y: 2}, v.XY())
	assert.Equal(t, v, v.XY().To3(3))
}
