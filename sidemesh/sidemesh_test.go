package sidemesh_test

import (
	"context"
	"testing"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/meshopts"
	"github.com/arl/fastgeomesh/sidemesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectLoop() []geom.Vec2 {
	return []geom.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}}
}

func buildOpts(t *testing.T) meshopts.MesherOptions {
	t.Helper()
	xy, err := geom.NewEdgeLength(1)
	require.NoError(t, err)
	z, err := geom.NewEdgeLength(1)
	require.NoError(t, err)
	o, err := meshopts.Build(meshopts.WithTargetEdgeLengthXY(xy), meshopts.WithTargetEdgeLengthZ(z))
	require.NoError(t, err)
	return o
}

func TestGenerateLoopRectangleQuadCount(t *testing.T) {
	// S1 from spec.md: rectangle 4x2, targetEdgeLengthXY=1, one vertical span.
	quads, err := sidemesh.GenerateLoop(context.Background(), rectLoop(), []float64{0, 1}, buildOpts(t), true, nil)
	require.NoError(t, err)
	assert.Len(t, quads, 12) // (4+2+4+2) edges * 1 vertical span
}

func TestHorizontalDivisions(t *testing.T) {
	assert.Equal(t, 4, sidemesh.HorizontalDivisions(geom.Vec2{}, geom.Vec2{X: 4}, 1))
	assert.Equal(t, 1, sidemesh.HorizontalDivisions(geom.Vec2{}, geom.Vec2{X: 0.4}, 1))
}

func TestGenerateLoopWindingInverted(t *testing.T) {
	outward, err := sidemesh.GenerateLoop(context.Background(), rectLoop(), []float64{0, 1}, buildOpts(t), true, nil)
	require.NoError(t, err)
	inward, err := sidemesh.GenerateLoop(context.Background(), rectLoop(), []float64{0, 1}, buildOpts(t), false, nil)
	require.NoError(t, err)

	require.NotEmpty(t, outward)
	require.NotEmpty(t, inward)
	// Same corner set, opposite winding (B/A and D/C swapped).
	assert.Equal(t, outward[0].A, inward[0].B)
	assert.Equal(t, outward[0].B, inward[0].A)
}

func TestGenerateLoopReportsProgressEvery10Quads(t *testing.T) {
	// Rectangle 10x1 with targetEdgeLengthXY=1 yields 22 side quads over one
	// vertical span, so onProgress should fire at 10 and 20.
	loop := []geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 1}, {X: 0, Y: 1}}
	var seen []int
	quads, err := sidemesh.GenerateLoop(context.Background(), loop, []float64{0, 1}, buildOpts(t), true, func(n int) {
		seen = append(seen, n)
	})
	require.NoError(t, err)
	assert.Len(t, quads, 22)
	assert.Equal(t, []int{10, 20}, seen)
}

func TestGenerateLoopCancelledMidGeneration(t *testing.T) {
	loop := []geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 1}, {X: 0, Y: 1}}
	ctx, cancel := context.WithCancel(context.Background())
	_, err := sidemesh.GenerateLoop(ctx, loop, []float64{0, 1}, buildOpts(t), true, func(n int) {
		if n == 10 {
			cancel()
		}
	})
	assert.Error(t, err)
}

func TestCountQuadsMatchesGenerateLoop(t *testing.T) {
	quads, err := sidemesh.GenerateLoop(context.Background(), rectLoop(), []float64{0, 1, 2}, buildOpts(t), true, nil)
	require.NoError(t, err)
	assert.Equal(t, len(quads), sidemesh.CountQuads(rectLoop(), []float64{0, 1, 2}, buildOpts(t)))
}
