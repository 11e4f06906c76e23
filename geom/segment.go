package geom

// Segment2D is an ordered pair of 2D endpoints.
type Segment2D struct {
	A, B Vec2
}

// Length returns the Euclidean length of the segment.
func (s Segment2D) Length() float64 { return s.B.Sub(s.A).Length() }

// Segment3D is an ordered pair of 3D endpoints.
type Segment3D struct {
	A, B Vec3
}

// Length returns the Euclidean length of the segment.
func (s Segment3D) Length() float64 { return s.B.Sub(s.A).Length() }
