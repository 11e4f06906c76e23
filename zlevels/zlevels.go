// Package zlevels builds the sorted, deduplicated set of Z elevations that
// bound side-quad generation (§4.D).
//
// The stepping logic (divide the vertical extent into target-edge-length
// spans, then fold in feature-induced levels before a final sort+unique
// pass) mirrors the teacher's CalcGridSize/rasterization span-stepping style
// in recast/recast.go and recast/rasterization.go, applied here to a single
// vertical axis rather than a voxel grid.
package zlevels

import (
	"math"
	"sort"

	"github.com/arl/fastgeomesh/meshopts"
)

// Build returns the sorted, ε-separated Z levels spanning [z0, z1],
// including both endpoints, for the given target vertical edge length and
// set of feature-induced auxiliary Z values gathered by the caller
// (auxiliary levels, auxiliary points/segments, and internal surface
// elevations) (§4.D).
func Build(z0, z1 float64, opts meshopts.MesherOptions, auxZs []float64) []float64 {
	eps := opts.Epsilon.Value()
	levels := []float64{z0, z1}

	targetZ := opts.TargetEdgeLengthZ.Value()
	extent := z1 - z0
	if targetZ > 0 && extent > 0 {
		vDiv := int(math.Ceil(extent / targetZ))
		if vDiv < 1 {
			vDiv = 1
		}
		for k := 1; k < vDiv; k++ {
			t := float64(k) / float64(vDiv)
			levels = append(levels, z0+extent*t)
		}
	}

	lo, hi := z0+eps, z1-eps
	for _, z := range auxZs {
		if z > lo && z < hi {
			levels = append(levels, z)
		}
	}

	sort.Float64s(levels)
	return dedupe(levels, eps)
}

// dedupe keeps the first of any run of values within eps of the previous
// retained value, preserving ascending order and the two endpoints.
func dedupe(sorted []float64, eps float64) []float64 {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, z := range sorted[1:] {
		if z-out[len(out)-1] > eps {
			out = append(out, z)
		}
	}
	return out
}
