// Package meshdata implements Quad, Triangle and the immutable Mesh
// accumulator (§3, §4.H).
//
// Mesh follows the append-returns-new-value idiom: every Add* method
// returns a new Mesh, and the previous value remains valid and unaffected.
// Each returned slice is re-sliced to a three-index expression (cap==len)
// before being stored, the standard Go technique for guaranteeing that a
// later Add from any copy of a Mesh allocates a fresh backing array instead
// of clobbering memory another goroutine might still be appending to — this
// is what gives the "shareable across threads without synchronization"
// guarantee of §4.H without hand-rolling a persistent vector type.
package meshdata

import "github.com/arl/fastgeomesh/geom"

// Quad is four 3D corners in CCW order with an optional quality score.
type Quad struct {
	A, B, C, D geom.Vec3
	Quality    float64
	HasQuality bool
}

// Triangle is three 3D corners in CCW order with an optional quality score.
type Triangle struct {
	A, B, C    geom.Vec3
	Quality    float64
	HasQuality bool
}

// Mesh is an immutable accumulator of quads, triangles, standalone points,
// and internal 3D segments.
type Mesh struct {
	quads     []Quad
	triangles []Triangle
	points    []geom.Vec3
	segments  []geom.Segment3D
}

// Empty returns the zero-value Mesh.
func Empty() Mesh { return Mesh{} }

// Quads returns the accumulated quads in emission order.
func (m Mesh) Quads() []Quad { return m.quads }

// Triangles returns the accumulated triangles in emission order.
func (m Mesh) Triangles() []Triangle { return m.triangles }

// Points returns the accumulated standalone points.
func (m Mesh) Points() []geom.Vec3 { return m.points }

// Segments returns the accumulated internal 3D segments.
func (m Mesh) Segments() []geom.Segment3D { return m.segments }

// QuadCount is O(1).
func (m Mesh) QuadCount() int { return len(m.quads) }

// TriangleCount is O(1).
func (m Mesh) TriangleCount() int { return len(m.triangles) }

// AddQuad returns a new Mesh with q appended.
func (m Mesh) AddQuad(q Quad) Mesh {
	m.quads = appendPersist(m.quads, q)
	return m
}

// AddQuads returns a new Mesh with every element of qs appended, in order.
func (m Mesh) AddQuads(qs []Quad) Mesh {
	m.quads = appendPersist(m.quads, qs...)
	return m
}

// AddQuadsSpan is an alias of AddQuads kept for call sites that emit a
// pre-sized contiguous span (e.g. side-face generation for one loop edge).
func (m Mesh) AddQuadsSpan(qs []Quad) Mesh { return m.AddQuads(qs) }

// AddTriangle returns a new Mesh with t appended.
func (m Mesh) AddTriangle(t Triangle) Mesh {
	m.triangles = appendPersist(m.triangles, t)
	return m
}

// AddTriangles returns a new Mesh with every element of ts appended.
func (m Mesh) AddTriangles(ts []Triangle) Mesh {
	m.triangles = appendPersist(m.triangles, ts...)
	return m
}

// AddTrianglesSpan is an alias of AddTriangles for pre-sized spans.
func (m Mesh) AddTrianglesSpan(ts []Triangle) Mesh { return m.AddTriangles(ts) }

// AddPoint returns a new Mesh with p appended.
func (m Mesh) AddPoint(p geom.Vec3) Mesh {
	m.points = appendPersist(m.points, p)
	return m
}

// AddPoints returns a new Mesh with every element of ps appended.
func (m Mesh) AddPoints(ps []geom.Vec3) Mesh {
	m.points = appendPersist(m.points, ps...)
	return m
}

// AddInternalSegment returns a new Mesh with s appended.
func (m Mesh) AddInternalSegment(s geom.Segment3D) Mesh {
	m.segments = appendPersist(m.segments, s)
	return m
}

// AddInternalSegments returns a new Mesh with every element of ss appended.
func (m Mesh) AddInternalSegments(ss []geom.Segment3D) Mesh {
	m.segments = appendPersist(m.segments, ss...)
	return m
}

// appendPersist appends items to s and returns a slice whose capacity
// equals its length, so the caller's next append always starts a fresh
// backing array.
func appendPersist[T any](s []T, items ...T) []T {
	out := append(s, items...)
	return out[:len(out):len(out)]
}
