// Package meshopts implements MesherOptions (§3, §4.C): a bounded, validated
// configuration value plus a functional-options builder and the
// MeshingComplexity classifier/estimator.
//
// The builder follows the functional-options + resolved-config pattern used
// throughout the retrieval pack's katalvlaran-lvlath/builder package
// (BuilderOption closures mutating a draft, a single Build() entry point
// that validates once); option constructors here return errors instead of
// panicking, since §7 requires every fallible path across the API boundary
// to surface a typed Error rather than panic.
package meshopts

import (
	"math"
	"sync"

	"github.com/arl/fastgeomesh/fgmerr"
	"github.com/arl/fastgeomesh/geom"
)

// MesherOptions configures a meshing run (§3).
type MesherOptions struct {
	TargetEdgeLengthXY geom.EdgeLength
	TargetEdgeLengthZ  geom.EdgeLength
	GenerateBottomCap  bool
	GenerateTopCap     bool
	Epsilon            geom.Tolerance

	TargetEdgeLengthXYNearHoles    *geom.EdgeLength
	HoleRefineBand                 float64
	TargetEdgeLengthXYNearSegments *geom.EdgeLength
	SegmentRefineBand              float64

	MinCapQuadQuality          float64
	OutputRejectedCapTriangles bool

	memo *validationMemo
}

type validationMemo struct {
	once sync.Once
	err  error
}

// Option mutates a draft MesherOptions while building it.
type Option func(*MesherOptions)

// WithTargetEdgeLengthXY sets the base horizontal target edge length.
func WithTargetEdgeLengthXY(l geom.EdgeLength) Option {
	return func(o *MesherOptions) { o.TargetEdgeLengthXY = l }
}

// WithTargetEdgeLengthZ sets the vertical target edge length.
func WithTargetEdgeLengthZ(l geom.EdgeLength) Option {
	return func(o *MesherOptions) { o.TargetEdgeLengthZ = l }
}

// WithCaps toggles bottom/top cap generation.
func WithCaps(bottom, top bool) Option {
	return func(o *MesherOptions) { o.GenerateBottomCap = bottom; o.GenerateTopCap = top }
}

// WithEpsilon overrides the default geometric tolerance.
func WithEpsilon(eps geom.Tolerance) Option {
	return func(o *MesherOptions) { o.Epsilon = eps }
}

// WithHoleRefinement sets a finer edge length and refinement band applied
// within distance band of any hole boundary.
func WithHoleRefinement(l geom.EdgeLength, band float64) Option {
	return func(o *MesherOptions) {
		l := l
		o.TargetEdgeLengthXYNearHoles = &l
		o.HoleRefineBand = band
	}
}

// WithSegmentRefinement sets a finer edge length and refinement band applied
// within distance band of any constraint segment.
func WithSegmentRefinement(l geom.EdgeLength, band float64) Option {
	return func(o *MesherOptions) {
		l := l
		o.TargetEdgeLengthXYNearSegments = &l
		o.SegmentRefineBand = band
	}
}

// WithMinCapQuadQuality sets the minimum accepted cap quad quality score.
func WithMinCapQuadQuality(q float64) Option {
	return func(o *MesherOptions) { o.MinCapQuadQuality = q }
}

// WithOutputRejectedCapTriangles toggles emission of unpaired cap triangles.
func WithOutputRejectedCapTriangles(v bool) Option {
	return func(o *MesherOptions) { o.OutputRejectedCapTriangles = v }
}

// Build resolves defaults, applies opts in order, validates once and
// returns the result. Mirrors katalvlaran-lvlath/builder.BuildGraph's single
// entry-point shape.
func Build(opts ...Option) (MesherOptions, error) {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return MesherOptions{}, err
	}
	return o, nil
}

// Default returns the baseline MesherOptions before any Option is applied:
// GenerateBottomCap=true, GenerateTopCap=true, Epsilon=1e-9,
// MinCapQuadQuality=0.3.
func Default() MesherOptions {
	return MesherOptions{
		GenerateBottomCap: true,
		GenerateTopCap:    true,
		Epsilon:           geom.DefaultTolerance,
		MinCapQuadQuality: 0.3,
		memo:              &validationMemo{},
	}
}

// Validate aggregates every violation into a single
// Validation.MultipleErrors (or the lone error if there is exactly one),
// caching the result so repeated calls are pure and cheap (§4.C "success
// memoized"; §8 invariant 9 "validation idempotence").
func (o *MesherOptions) Validate() error {
	if o.memo == nil {
		o.memo = &validationMemo{}
	}
	o.memo.once.Do(func() {
		o.memo.err = o.validate()
	})
	return o.memo.err
}

func (o MesherOptions) validate() error {
	var errs []error

	if o.TargetEdgeLengthXY.Value() <= 0 {
		errs = append(errs, fgmerr.New(fgmerr.CodeValidationInput, "TargetEdgeLengthXY must be set"))
	}
	if o.TargetEdgeLengthZ.Value() <= 0 {
		errs = append(errs, fgmerr.New(fgmerr.CodeValidationInput, "TargetEdgeLengthZ must be set"))
	}
	if o.TargetEdgeLengthXYNearHoles != nil && o.TargetEdgeLengthXYNearHoles.Value() > o.TargetEdgeLengthXY.Value() {
		errs = append(errs, fgmerr.New(fgmerr.CodeValidationInput,
			"TargetEdgeLengthXYNearHoles must not exceed TargetEdgeLengthXY"))
	}
	if o.TargetEdgeLengthXYNearSegments != nil && o.TargetEdgeLengthXYNearSegments.Value() > o.TargetEdgeLengthXY.Value() {
		errs = append(errs, fgmerr.New(fgmerr.CodeValidationInput,
			"TargetEdgeLengthXYNearSegments must not exceed TargetEdgeLengthXY"))
	}
	if err := validateBand("HoleRefineBand", o.HoleRefineBand); err != nil {
		errs = append(errs, err)
	}
	if err := validateBand("SegmentRefineBand", o.SegmentRefineBand); err != nil {
		errs = append(errs, err)
	}
	if math.IsNaN(o.MinCapQuadQuality) || o.MinCapQuadQuality < 0 || o.MinCapQuadQuality > 1 {
		errs = append(errs, fgmerr.New(fgmerr.CodeValidationInput, "MinCapQuadQuality must be within [0,1]"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fgmerr.Join(errs)
}

func validateBand(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fgmerr.Newf(fgmerr.CodeValidationInput, "%s must be finite", field)
	}
	if v < 0 || v > 1e4 {
		return fgmerr.Newf(fgmerr.CodeValidationInput, "%s must be within [0, 1e4]", field)
	}
	return nil
}
