package capmesh

import (
	"math"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/meshdata"
	"github.com/arl/fastgeomesh/polygon"
)

// rectangleGrid is the fast path for an axis-aligned rectangular footprint
// with no holes: a uniform grid of quads, each near-unit quality since every
// cell is itself an axis-aligned rectangle (§4.F "fast path").
func rectangleGrid(p polygon.Polygon2D, z float64, targetXY float64, top bool) []meshdata.Quad {
	minX, minY, maxX, maxY := p.Bounds()
	nx := divisions(maxX-minX, targetXY)
	ny := divisions(maxY-minY, targetXY)

	dx := (maxX - minX) / float64(nx)
	dy := (maxY - minY) / float64(ny)

	quads := make([]meshdata.Quad, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x0, x1 := minX+float64(i)*dx, minX+float64(i+1)*dx
			y0, y1 := minY+float64(j)*dy, minY+float64(j+1)*dy
			corners := [4]geom.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
			quads = append(quads, capQuad(corners, z, top, true))
		}
	}
	return quads
}

func divisions(extent, target float64) int {
	if target <= 0 || extent <= 0 {
		return 1
	}
	n := int(math.Ceil(extent / target))
	if n < 1 {
		n = 1
	}
	return n
}

// capQuad lifts a CCW-in-XY quad to elevation z, reversing winding for the
// bottom cap so its normal points downward (§4.F orientation rule), and
// attaches a computed quality score when withQuality is true.
func capQuad(corners [4]geom.Vec2, z float64, top bool, withQuality bool) meshdata.Quad {
	ordered := corners
	if !top {
		ordered = [4]geom.Vec2{corners[0], corners[3], corners[2], corners[1]}
	}
	q := meshdata.Quad{
		A: ordered[0].To3(z),
		B: ordered[1].To3(z),
		C: ordered[2].To3(z),
		D: ordered[3].To3(z),
	}
	if withQuality {
		q.Quality = quadQuality(corners)
		q.HasQuality = true
	}
	return q
}

// capTriangle lifts a CCW-in-XY triangle to elevation z, reversing winding
// for the bottom cap.
func capTriangle(a, b, c geom.Vec2, z float64, top bool) meshdata.Triangle {
	if top {
		return meshdata.Triangle{A: a.To3(z), B: b.To3(z), C: c.To3(z)}
	}
	return meshdata.Triangle{A: a.To3(z), B: c.To3(z), C: b.To3(z)}
}
