package meshopts_test

import (
	"testing"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/meshopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edgeLen(t *testing.T, v float64) geom.EdgeLength {
	t.Helper()
	l, err := geom.NewEdgeLength(v)
	require.NoError(t, err)
	return l
}

func TestBuildDefaults(t *testing.T) {
	o, err := meshopts.Build(
		meshopts.WithTargetEdgeLengthXY(edgeLen(t, 1)),
		meshopts.WithTargetEdgeLengthZ(edgeLen(t, 1)),
	)
	require.NoError(t, err)
	assert.True(t, o.GenerateBottomCap)
	assert.True(t, o.GenerateTopCap)
	assert.Equal(t, 0.3, o.MinCapQuadQuality)
}

func TestBuildRejectsMissingEdgeLengths(t *testing.T) {
	_, err := meshopts.Build()
	assert.Error(t, err)
}

func TestBuildRejectsRefinementLargerThanBase(t *testing.T) {
	_, err := meshopts.Build(
		meshopts.WithTargetEdgeLengthXY(edgeLen(t, 1)),
		meshopts.WithTargetEdgeLengthZ(edgeLen(t, 1)),
		meshopts.WithHoleRefinement(edgeLen(t, 2), 1),
	)
	assert.Error(t, err)
}

func TestBuildAggregatesMultipleErrors(t *testing.T) {
	_, err := meshopts.Build(meshopts.WithMinCapQuadQuality(2))
	require.Error(t, err)
	// both missing edge lengths and bad quality should be reported together
	assert.Contains(t, err.Error(), "MinCapQuadQuality")
}

func TestValidateIsIdempotent(t *testing.T) {
	o, err := meshopts.Build(
		meshopts.WithTargetEdgeLengthXY(edgeLen(t, 1)),
		meshopts.WithTargetEdgeLengthZ(edgeLen(t, 1)),
	)
	require.NoError(t, err)
	assert.NoError(t, o.Validate())
	assert.NoError(t, o.Validate())
}

func TestClassifyComplexity(t *testing.T) {
	assert.Equal(t, meshopts.Trivial, meshopts.ClassifyComplexity(9))
	assert.Equal(t, meshopts.Simple, meshopts.ClassifyComplexity(49))
	assert.Equal(t, meshopts.Moderate, meshopts.ClassifyComplexity(199))
	assert.Equal(t, meshopts.Complex, meshopts.ClassifyComplexity(999))
	assert.Equal(t, meshopts.Extreme, meshopts.ClassifyComplexity(1000))
}

func TestEstimateComplexity(t *testing.T) {
	est := meshopts.EstimateComplexity(10, 0, 0)
	assert.Equal(t, 15, est.EstQuadCount)
	assert.Equal(t, 3, est.EstTriCount)
	assert.Equal(t, int64(18*160), est.EstPeakMemoryBytes)
	assert.Equal(t, 1, est.RecommendedParallelism)
}
