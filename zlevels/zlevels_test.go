package zlevels_test

import (
	"testing"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/meshopts"
	"github.com/arl/fastgeomesh/zlevels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opts(t *testing.T, targetZ float64) meshopts.MesherOptions {
	t.Helper()
	xy, err := geom.NewEdgeLength(1)
	require.NoError(t, err)
	z, err := geom.NewEdgeLength(targetZ)
	require.NoError(t, err)
	o, err := meshopts.Build(meshopts.WithTargetEdgeLengthXY(xy), meshopts.WithTargetEdgeLengthZ(z))
	require.NoError(t, err)
	return o
}

func TestBuildUniformSubdivision(t *testing.T) {
	levels := zlevels.Build(0, 4, opts(t, 1), nil)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, levels)
}

func TestBuildEndpointsOnlyWhenTargetLargerThanExtent(t *testing.T) {
	levels := zlevels.Build(0, 1, opts(t, 100), nil)
	assert.Equal(t, []float64{0, 1}, levels)
}

func TestBuildIncludesAuxiliaryLevelsStrictlyInside(t *testing.T) {
	levels := zlevels.Build(0, 10, opts(t, 100), []float64{5, 0, 10, -1, 11})
	assert.Equal(t, []float64{0, 5, 10}, levels)
}

func TestBuildIsStrictlyIncreasing(t *testing.T) {
	levels := zlevels.Build(0, 3, opts(t, 1), []float64{1.0000000001, 2})
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i], levels[i-1])
	}
	assert.Equal(t, 0.0, levels[0])
	assert.Equal(t, 3.0, levels[len(levels)-1])
}
