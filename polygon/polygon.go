package polygon

import (
	"math"

	"github.com/arl/fastgeomesh/fgmerr"
	"github.com/arl/fastgeomesh/geom"
)

// Polygon2D is an immutable, validated CCW simple polygon with at least 3
// vertices, no zero-length edges, no duplicate vertices and no
// self-intersection (§3, §4.B).
type Polygon2D struct {
	verts []geom.Vec2
}

// New validates verts at the given tolerance and returns a Polygon2D,
// reversing a clockwise input to CCW before validating (§4.B: "Factory:
// reverses CW to CCW prior to validation").
func New(verts []geom.Vec2, eps float64) (Polygon2D, error) {
	if len(verts) < 3 {
		return Polygon2D{}, fgmerr.Newf(fgmerr.CodeValidationInput,
			"polygon needs at least 3 vertices, got %d", len(verts))
	}

	ordered := append([]geom.Vec2(nil), verts...)
	if signedArea(ordered) < 0 {
		reverse(ordered)
	}

	if err := validate(ordered, eps); err != nil {
		return Polygon2D{}, err
	}
	return Polygon2D{verts: ordered}, nil
}

// Vertices returns the (CCW) vertex sequence. The returned slice must not be
// mutated by the caller.
func (p Polygon2D) Vertices() []geom.Vec2 { return p.verts }

// Count returns the number of vertices.
func (p Polygon2D) Count() int { return len(p.verts) }

// SignedArea returns ½·Σ(x_j·y_i − x_i·y_j) over cyclic (j=prev, i=curr)
// (§4.A). Positive for a CCW polygon.
func (p Polygon2D) SignedArea() float64 { return signedArea(p.verts) }

// Perimeter returns the sum of edge lengths.
func (p Polygon2D) Perimeter() float64 {
	var total float64
	n := len(p.verts)
	for i := 0; i < n; i++ {
		total += geom.Segment2D{A: p.verts[i], B: p.verts[(i+1)%n]}.Length()
	}
	return total
}

// IsAxisAlignedRectangle reports whether the polygon is an axis-aligned
// rectangle: exactly 4 vertices, each a corner of the bounding box, and each
// edge axis-aligned within eps (§4.A).
func (p Polygon2D) IsAxisAlignedRectangle(eps float64) bool {
	if len(p.verts) != 4 {
		return false
	}
	minX, minY, maxX, maxY := p.Bounds()

	corners := map[[2]float64]bool{
		{minX, minY}: true, {maxX, minY}: true,
		{maxX, maxY}: true, {minX, maxY}: true,
	}
	for _, v := range p.verts {
		matched := false
		for c := range corners {
			if math.Abs(v.X-c[0]) <= eps && math.Abs(v.Y-c[1]) <= eps {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for i := 0; i < 4; i++ {
		a, b := p.verts[i], p.verts[(i+1)%4]
		if math.Abs(a.X-b.X) > eps && math.Abs(a.Y-b.Y) > eps {
			return false
		}
	}
	return true
}

// Bounds returns the axis-aligned bounding box (minX, minY, maxX, maxY).
func (p Polygon2D) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = p.verts[0].X, p.verts[0].Y
	maxX, maxY = minX, minY
	for _, v := range p.verts[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return
}

func signedArea(verts []geom.Vec2) float64 {
	var sum float64
	n := len(verts)
	for i := 0; i < n; i++ {
		j := (i - 1 + n) % n
		sum += verts[j].X*verts[i].Y - verts[i].X*verts[j].Y
	}
	return sum / 2
}

func reverse(verts []geom.Vec2) {
	for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
		verts[i], verts[j] = verts[j], verts[i]
	}
}

// validate rejects: <3 vertices, |area|<eps (degenerate), any edge length
// <eps, any duplicate vertex pair, any non-adjacent edge intersection
// (§4.B).
func validate(verts []geom.Vec2, eps float64) error {
	n := len(verts)
	if n < 3 {
		return fgmerr.Newf(fgmerr.CodeValidationInput, "polygon needs at least 3 vertices, got %d", n)
	}
	if math.Abs(signedArea(verts)) < eps {
		return fgmerr.New(fgmerr.CodeValidationInput, "polygon is degenerate (zero area)")
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if (geom.Segment2D{A: verts[i], B: verts[j]}).Length() < eps {
			return fgmerr.Newf(fgmerr.CodeValidationInput, "polygon edge %d has zero length", i)
		}
		for k := i + 1; k < n; k++ {
			if i == k {
				continue
			}
			if verts[i].Sub(verts[k]).Length() < eps {
				return fgmerr.Newf(fgmerr.CodeValidationInput, "polygon vertices %d and %d are duplicates", i, k)
			}
		}
	}
	for i := 0; i < n; i++ {
		a1, b1 := verts[i], verts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// skip edges adjacent to edge i (sharing a vertex)
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			a2, b2 := verts[j], verts[(j+1)%n]
			if SegmentsIntersect(a1, b1, a2, b2, eps) {
				return fgmerr.Newf(fgmerr.CodeValidationInput,
					"polygon edges %d and %d self-intersect", i, j)
			}
		}
	}
	return nil
}
