package capmesh

import (
	"math"

	"github.com/arl/fastgeomesh/geom"
)

// quadQuality scores a planar quad (corners in an order that is assumed
// already CCW) as:
//
//	q = 0.5*aspect + 0.4*ortho + 0.1*areaScore
//
// aspect  = minEdge/maxEdge (0 if minEdge is ~0)
// ortho   = mean over corners of (1 - |a.b|/(|a||b|)) for the two edge
//           vectors meeting at that corner
// areaScore = 1 if |signedArea| > 1e-12 else 0
//
// (§4.F).
func quadQuality(corners [4]geom.Vec2) float64 {
	aspect := aspectRatio(corners)
	ortho := orthogonality(corners)
	areaScore := 0.0
	if math.Abs(signedArea2D(corners[:])) > 1e-12 {
		areaScore = 1
	}
	return 0.5*aspect + 0.4*ortho + 0.1*areaScore
}

func aspectRatio(corners [4]geom.Vec2) float64 {
	minEdge, maxEdge := math.Inf(1), 0.0
	for i := 0; i < 4; i++ {
		l := corners[(i+1)%4].Sub(corners[i]).Length()
		if l < minEdge {
			minEdge = l
		}
		if l > maxEdge {
			maxEdge = l
		}
	}
	if maxEdge < 1e-12 || minEdge < 1e-9 {
		return 0
	}
	return minEdge / maxEdge
}

func orthogonality(corners [4]geom.Vec2) float64 {
	var sum float64
	for i := 0; i < 4; i++ {
		prev := corners[(i+3)%4]
		cur := corners[i]
		next := corners[(i+1)%4]
		a := prev.Sub(cur)
		b := next.Sub(cur)
		la, lb := a.Length(), b.Length()
		if la < 1e-12 || lb < 1e-12 {
			continue
		}
		cosAngle := math.Abs(a.Dot(b)) / (la * lb)
		sum += 1 - cosAngle
	}
	return sum / 4
}

func signedArea2D(pts []geom.Vec2) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

// isConvexQuad reports whether corners form a convex quad: the sign of all
// four edge cross products must agree, within a -1e-12 tolerance (§4.F).
func isConvexQuad(corners [4]geom.Vec2) bool {
	const tol = -1e-12
	var sign float64
	for i := 0; i < 4; i++ {
		a := corners[i]
		b := corners[(i+1)%4]
		c := corners[(i+2)%4]
		cross := b.Sub(a).Cross(c.Sub(b))
		if math.Abs(cross) < 1e-12 {
			continue
		}
		if sign == 0 {
			sign = cross
			continue
		}
		if sign > 0 && cross < tol {
			return false
		}
		if sign < 0 && cross > -tol {
			return false
		}
	}
	return true
}
