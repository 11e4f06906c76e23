// Package prism implements PrismStructureDefinition and the Mesher
// orchestrator that assembles side faces and caps into one Mesh (§4.K).
//
// PrismStructureDefinition follows the same append-returns-new-value idiom
// as meshdata.Mesh: every With* mutator returns a new value and the
// receiver is left untouched, and every stored slice is re-sliced to
// cap==len before being kept so a later With from any copy starts a fresh
// backing array.
package prism

import (
	"github.com/arl/fastgeomesh/fgmerr"
	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/polygon"
)

// InternalSurface is an optional interior horizontal surface: its own
// footprint (not necessarily the outer one), perforated by its own holes,
// meshed at an elevation strictly between the structure's base and top
// (§3 "internalSurfaces").
type InternalSurface struct {
	Outer polygon.Polygon2D
	Z     float64
	Holes []polygon.Polygon2D
}

// PrismStructureDefinition is the input to a meshing run: an outer
// footprint extruded between two Z elevations, optionally perforated by
// holes, with optional auxiliary Z levels, internal constraint segments,
// interior horizontal surfaces, and auxiliary 3D geometry (§3, §4.A).
type PrismStructureDefinition struct {
	footprint        polygon.Polygon2D
	holes            []polygon.Polygon2D
	baseZ            float64
	topZ             float64
	auxZLevels       []float64
	segments         []geom.Segment2D
	internalSurfaces []InternalSurface
	auxPoints        []geom.Vec3
	auxSegments      []geom.Segment3D
}

// NewPrismStructureDefinition validates topZ > baseZ and returns the base
// structure with no holes, auxiliary levels, or constraint segments.
func NewPrismStructureDefinition(footprint polygon.Polygon2D, baseZ, topZ float64) (PrismStructureDefinition, error) {
	if !(topZ > baseZ) {
		return PrismStructureDefinition{}, fgmerr.Newf(fgmerr.CodeValidationInput,
			"topElevation (%g) must be greater than baseElevation (%g)", topZ, baseZ)
	}
	return PrismStructureDefinition{footprint: footprint, baseZ: baseZ, topZ: topZ}, nil
}

// Footprint returns the outer boundary.
func (d PrismStructureDefinition) Footprint() polygon.Polygon2D { return d.footprint }

// Holes returns the perforating holes, in the order they were added.
func (d PrismStructureDefinition) Holes() []polygon.Polygon2D { return d.holes }

// BaseElevation returns the bottom Z.
func (d PrismStructureDefinition) BaseElevation() float64 { return d.baseZ }

// TopElevation returns the top Z.
func (d PrismStructureDefinition) TopElevation() float64 { return d.topZ }

// AuxiliaryZLevels returns the additional Z levels forced into the level set.
func (d PrismStructureDefinition) AuxiliaryZLevels() []float64 { return d.auxZLevels }

// ConstraintSegments returns the 2D constraint segments, in the order they
// were added. They are stored on the definition only: no meshing stage reads
// them, so they neither refine the caps nor add Z levels.
func (d PrismStructureDefinition) ConstraintSegments() []geom.Segment2D { return d.segments }

// InternalSurfaces returns the optional interior horizontal surfaces, in the
// order they were added.
func (d PrismStructureDefinition) InternalSurfaces() []InternalSurface { return d.internalSurfaces }

// AuxiliaryPoints returns the standalone 3D points carried through to the
// output Mesh.
func (d PrismStructureDefinition) AuxiliaryPoints() []geom.Vec3 { return d.auxPoints }

// AuxiliarySegments returns the internal 3D segments carried through to the
// output Mesh.
func (d PrismStructureDefinition) AuxiliarySegments() []geom.Segment3D { return d.auxSegments }

// WithHole returns a new definition with h appended to the hole list.
func (d PrismStructureDefinition) WithHole(h polygon.Polygon2D) PrismStructureDefinition {
	d.holes = appendPersist(d.holes, h)
	return d
}

// WithAuxiliaryZLevel returns a new definition with z appended to the
// auxiliary level list.
func (d PrismStructureDefinition) WithAuxiliaryZLevel(z float64) PrismStructureDefinition {
	d.auxZLevels = appendPersist(d.auxZLevels, z)
	return d
}

// WithConstraintSegment returns a new definition with s appended to the
// constraint segment list.
func (d PrismStructureDefinition) WithConstraintSegment(s geom.Segment2D) PrismStructureDefinition {
	d.segments = appendPersist(d.segments, s)
	return d
}

// WithInternalSurface returns a new definition with s appended to the
// interior surface list. s.Z must fall strictly between the structure's base
// and top elevation (§3 "internal-surface z strictly interior").
func (d PrismStructureDefinition) WithInternalSurface(s InternalSurface) (PrismStructureDefinition, error) {
	if !(s.Z > d.baseZ && s.Z < d.topZ) {
		return PrismStructureDefinition{}, fgmerr.Newf(fgmerr.CodeValidationInput,
			"internal surface elevation (%g) must be strictly between base (%g) and top (%g)", s.Z, d.baseZ, d.topZ)
	}
	d.internalSurfaces = appendPersist(d.internalSurfaces, s)
	return d, nil
}

// WithAuxiliaryPoint returns a new definition with p appended to the
// auxiliary point list.
func (d PrismStructureDefinition) WithAuxiliaryPoint(p geom.Vec3) PrismStructureDefinition {
	d.auxPoints = appendPersist(d.auxPoints, p)
	return d
}

// WithAuxiliarySegment returns a new definition with s appended to the
// auxiliary segment list.
func (d PrismStructureDefinition) WithAuxiliarySegment(s geom.Segment3D) PrismStructureDefinition {
	d.auxSegments = appendPersist(d.auxSegments, s)
	return d
}

func appendPersist[T any](s []T, items ...T) []T {
	out := append(s, items...)
	return out[:len(out):len(out)]
}
