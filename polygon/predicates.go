// Package polygon implements orientation/intersection predicates and the
// validated Polygon2D value type (§4.B).
//
// The cross-product orientation test and the 2D distance-to-segment formula
// are adapted from the teacher's vcross2/distancePtSeg2d helpers in
// recast/meshdetail.go (there computed on the XZ plane of a float32 voxel
// mesh; here on the XY plane of a float64 footprint).
package polygon

import (
	"math"

	"github.com/arl/fastgeomesh/geom"
)

// Orientation of three points.
type Orientation int

const (
	Collinear Orientation = 0
	CW        Orientation = -1
	CCW       Orientation = 1
)

// Orient returns the orientation of the triplet (a,b,c), using the signed
// area of the triangle they form; values whose magnitude is below eps are
// treated as Collinear.
func Orient(a, b, c geom.Vec2, eps float64) Orientation {
	cross := b.Sub(a).Cross(c.Sub(a))
	if math.Abs(cross) < eps {
		return Collinear
	}
	if cross > 0 {
		return CCW
	}
	return CW
}

// OnSegment reports whether p lies on the closed segment [a,b]: a, b, p must
// be collinear within eps and p must lie inside the segment's bounding box
// expanded by eps.
func OnSegment(a, b, p geom.Vec2, eps float64) bool {
	if Orient(a, b, p, eps) != Collinear {
		return false
	}
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return p.X >= minX-eps && p.X <= maxX+eps && p.Y >= minY-eps && p.Y <= maxY+eps
}

// SegmentsIntersect reports whether the closed segments p1q1 and p2q2
// intersect (including touching at an endpoint and collinear overlap), via
// the classic four-orientation test with a collinear-overlap fallback.
func SegmentsIntersect(p1, q1, p2, q2 geom.Vec2, eps float64) bool {
	o1 := Orient(p1, q1, p2, eps)
	o2 := Orient(p1, q1, q2, eps)
	o3 := Orient(p2, q2, p1, eps)
	o4 := Orient(p2, q2, q1, eps)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == Collinear && OnSegment(p1, q1, p2, eps) {
		return true
	}
	if o2 == Collinear && OnSegment(p1, q1, q2, eps) {
		return true
	}
	if o3 == Collinear && OnSegment(p2, q2, p1, eps) {
		return true
	}
	if o4 == Collinear && OnSegment(p2, q2, q1, eps) {
		return true
	}
	return false
}

// DistancePointSegment returns the Euclidean distance from pt to the
// segment [a,b], projecting pt onto the segment and clamping the
// projection parameter to [0,1] (§4.G).
func DistancePointSegment(pt, a, b geom.Vec2) float64 {
	ab := b.Sub(a)
	d := ab.LengthSq()
	t := 0.0
	if d > 0 {
		t = pt.Sub(a).Dot(ab) / d
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Scale(t))
	return pt.Sub(closest).Length()
}
