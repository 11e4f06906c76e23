package geom_test

import (
	"math"
	"testing"

	"github.com/arl/fastgeomesh/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdgeLengthBounds(t *testing.T) {
	_, err := geom.NewEdgeLength(0)
	assert.Error(t, err)

	_, err = geom.NewEdgeLength(math.NaN())
	assert.Error(t, err)

	_, err = geom.NewEdgeLength(math.Inf(1))
	assert.Error(t, err)

	_, err = geom.NewEdgeLength(2e6)
	assert.Error(t, err)

	lo, err := geom.NewEdgeLength(1e-6)
	require.NoError(t, err)
	assert.Equal(t, 1e-6, lo.Value())

	hi, err := geom.NewEdgeLength(1e6)
	require.NoError(t, err)
	assert.Equal(t, 1e6, hi.Value())
}

func TestNewToleranceBounds(t *testing.T) {
	_, err := geom.NewTolerance(0)
	assert.Error(t, err)

	_, err = geom.NewTolerance(1)
	assert.Error(t, err)

	ok, err := geom.NewTolerance(1e-9)
	require.NoError(t, err)
	assert.Equal(t, 1e-9, ok.Value())
}
