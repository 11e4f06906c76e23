// Package spatial implements point-location and proximity acceleration
// queries over 2D footprints, holes and constraint segments (§4.G).
package spatial

import (
	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/polygon"
)

// PointInPolygon reports whether p lies inside the closed polygon verts
// (CCW or CW, either works), using horizontal ray-casting parity with a
// boundary check so a point lying on an edge within eps counts as inside
// rather than being at the mercy of the parity test's tie-breaking (§4.G).
func PointInPolygon(p geom.Vec2, verts []geom.Vec2, eps float64) bool {
	n := len(verts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		if polygon.OnSegment(verts[j], verts[i], p, eps) {
			return true
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := verts[i], verts[j]
		crosses := (vi.Y > p.Y) != (vj.Y > p.Y)
		if !crosses {
			continue
		}
		xAtY := (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
		if p.X < xAtY {
			inside = !inside
		}
	}
	return inside
}

// PointInFootprintMinusHoles reports whether p is inside footprint and
// outside every hole in holes, both tests honoring eps at the boundary.
func PointInFootprintMinusHoles(p geom.Vec2, footprint []geom.Vec2, holes [][]geom.Vec2, eps float64) bool {
	if !PointInPolygon(p, footprint, eps) {
		return false
	}
	for _, h := range holes {
		if PointInPolygon(p, h, eps) {
			return false
		}
	}
	return true
}

// NearAnySegment reports whether the midpoint of a,b lies within band of any
// segment in a ring's consecutive-vertex edges.
func NearAnySegment(a, b geom.Vec2, ring []geom.Vec2, band float64) bool {
	mid := a.Lerp(b, 0.5)
	n := len(ring)
	for i := 0; i < n; i++ {
		if polygon.DistancePointSegment(mid, ring[i], ring[(i+1)%n]) <= band {
			return true
		}
	}
	return false
}
