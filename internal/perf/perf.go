// Package perf implements atomic, process-wide meshing performance counters
// (§4.K "LivePerformanceStats").
package perf

import "sync/atomic"

// Counters are the live performance counters maintained across every
// meshing run in a process.
var (
	meshingOperations  int64
	quadsGenerated     int64
	trianglesGenerated int64
	poolHits           int64
	poolMisses         int64
)

// Snapshot is a point-in-time read of every counter.
type Snapshot struct {
	MeshingOperations  int64
	QuadsGenerated     int64
	TrianglesGenerated int64
	PoolHits           int64
	PoolMisses         int64
}

// RecordOperation increments the completed-meshing-operation counter.
func RecordOperation() { atomic.AddInt64(&meshingOperations, 1) }

// RecordQuads adds n to the generated-quad counter.
func RecordQuads(n int) {
	if n > 0 {
		atomic.AddInt64(&quadsGenerated, int64(n))
	}
}

// RecordTriangles adds n to the generated-triangle counter.
func RecordTriangles(n int) {
	if n > 0 {
		atomic.AddInt64(&trianglesGenerated, int64(n))
	}
}

// RecordPoolHit increments the scratch-buffer pool hit counter.
func RecordPoolHit() { atomic.AddInt64(&poolHits, 1) }

// RecordPoolMiss increments the scratch-buffer pool miss counter.
func RecordPoolMiss() { atomic.AddInt64(&poolMisses, 1) }

// Read returns a consistent-enough snapshot of all counters. Individual
// fields may be read at slightly different instants under concurrent
// writers; that's acceptable for a live stats readout.
func Read() Snapshot {
	return Snapshot{
		MeshingOperations:  atomic.LoadInt64(&meshingOperations),
		QuadsGenerated:     atomic.LoadInt64(&quadsGenerated),
		TrianglesGenerated: atomic.LoadInt64(&trianglesGenerated),
		PoolHits:           atomic.LoadInt64(&poolHits),
		PoolMisses:         atomic.LoadInt64(&poolMisses),
	}
}

// reset clears every counter; used by tests only.
func reset() {
	atomic.StoreInt64(&meshingOperations, 0)
	atomic.StoreInt64(&quadsGenerated, 0)
	atomic.StoreInt64(&trianglesGenerated, 0)
	atomic.StoreInt64(&poolHits, 0)
	atomic.StoreInt64(&poolMisses, 0)
}
