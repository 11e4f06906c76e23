// Package geom provides the immutable 2D/3D value types that the rest of
// fastgeomesh builds on: vectors, segments, and the Tolerance/EdgeLength
// bounded scalars. Arithmetic follows IEEE-754 double precision throughout.
//
// The API shape (component access, Add/Sub/Scale/Dot/Cross/Length/Normalize)
// is modelled on the teacher's vendored vector package
// (github.com/aurelien-rainone/gogeo/f32/d3.Vec3), translated from a
// float32 slice to an immutable float64 struct: fastgeomesh's value objects
// are never mutated in place (§3), and CAD-grade precision calls for
// doubles rather than the float32 used by the navmesh voxel grid.
package geom

import "math"

// Vec2 is an immutable 2D vector (or point).
type Vec2 struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product v.w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the scalar 2D cross product (v.X*w.Y - v.Y*w.X).
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Sqrt(v.LengthSq()) }

// LengthSq returns the squared Euclidean length of v, cheaper than Length
// when only comparisons are needed.
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

// Normalize returns v scaled to unit length, or the zero vector if v is
// (numerically) the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Lerp returns the point at parameter t along the segment v->w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

// To3 lifts v into 3D at the given z elevation.
func (v Vec2) To3(z float64) Vec3 { return Vec3{v.X, v.Y, z} }

// Vec3 is an immutable 3D vector (or point).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product v.w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the 3D cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSq()) }

// LengthSq returns the squared Euclidean length of v.
func (v Vec3) LengthSq() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Normalize returns v scaled to unit length, or the zero vector if v is
// (numerically) the zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// XY drops the Z component.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }
