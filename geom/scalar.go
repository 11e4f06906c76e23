package geom

import (
	"math"

	"github.com/arl/fastgeomesh/fgmerr"
)

// EdgeLength is a positive, finite target edge length constrained to
// [1e-6, 1e6], validated once at construction time so every later consumer
// can treat the value as a compile-time-enforced invariant rather than
// re-checking bounds (§4.C, §9 "prefer compile-time invariants").
type EdgeLength struct{ v float64 }

const (
	minEdgeLength = 1e-6
	maxEdgeLength = 1e6

	minTolerance = 1e-12
	maxTolerance = 1e-3
)

// NewEdgeLength validates v and returns an EdgeLength, or a
// Validation.Input error naming the field.
func NewEdgeLength(v float64) (EdgeLength, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return EdgeLength{}, fgmerr.Newf(fgmerr.CodeValidationInput, "edge length must be finite, got %v", v)
	}
	if v < minEdgeLength || v > maxEdgeLength {
		return EdgeLength{}, fgmerr.Newf(fgmerr.CodeValidationInput,
			"edge length must be within [%g, %g], got %v", minEdgeLength, maxEdgeLength, v)
	}
	return EdgeLength{v: v}, nil
}

// Value returns the underlying double.
func (e EdgeLength) Value() float64 { return e.v }

// Tolerance is a positive, finite geometric tolerance constrained to
// [1e-12, 1e-3].
type Tolerance struct{ v float64 }

// NewTolerance validates v and returns a Tolerance, or a Validation.Input
// error naming the field.
func NewTolerance(v float64) (Tolerance, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Tolerance{}, fgmerr.Newf(fgmerr.CodeValidationInput, "tolerance must be finite, got %v", v)
	}
	if v < minTolerance || v > maxTolerance {
		return Tolerance{}, fgmerr.Newf(fgmerr.CodeValidationInput,
			"tolerance must be within [%g, %g], got %v", minTolerance, maxTolerance, v)
	}
	return Tolerance{v: v}, nil
}

// Value returns the underlying double.
func (t Tolerance) Value() float64 { return t.v }

// DefaultTolerance is the MesherOptions.Epsilon default (1e-9).
var DefaultTolerance = Tolerance{v: 1e-9}
