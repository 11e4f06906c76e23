// Package pool provides bounded sync.Pool-backed scratch buffers for the
// cap tessellator's hot path, so repeated meshing runs don't re-allocate a
// fresh []geom.Vec2 backing array per call.
//
// Grounded on the Acquire/Release sync.Pool idiom in
// mirstar13-3d-graphics/object_pool.go (AcquireTriangle/ReleaseTriangle):
// same Get-cast-reset-Put shape, adapted from pooled *Triangle/*Point
// objects to pooled scratch slices.
package pool

import (
	"sync"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/internal/perf"
)

// vec2SlicePool has no New func: a nil Get result means the pool was empty,
// which lets Acquire tell a reuse (hit) from a fresh allocation (miss)
// apart, unlike the always-populated New-func form.
var vec2SlicePool sync.Pool

// AcquireVec2Scratch returns a zero-length scratch slice with spare
// capacity, reused from the pool when available.
func AcquireVec2Scratch() []geom.Vec2 {
	if v, ok := vec2SlicePool.Get().([]geom.Vec2); ok {
		perf.RecordPoolHit()
		return v[:0]
	}
	perf.RecordPoolMiss()
	return make([]geom.Vec2, 0, 64)
}

// maxRetainedCap is the largest backing-array capacity the pool keeps;
// larger buffers are left to the garbage collector.
const maxRetainedCap = 4096

// ReleaseVec2Scratch returns s to the pool for reuse, unless its capacity
// exceeds maxRetainedCap. Callers must not retain s after calling this.
func ReleaseVec2Scratch(s []geom.Vec2) {
	if cap(s) > maxRetainedCap {
		return
	}
	vec2SlicePool.Put(s[:0])
}
