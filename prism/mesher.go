package prism

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arl/fastgeomesh/capmesh"
	"github.com/arl/fastgeomesh/fgmerr"
	"github.com/arl/fastgeomesh/internal/perf"
	"github.com/arl/fastgeomesh/meshdata"
	"github.com/arl/fastgeomesh/meshopts"
	"github.com/arl/fastgeomesh/sidemesh"
	"github.com/arl/fastgeomesh/zlevels"
)

// Mesher assembles side faces and caps for one or many
// PrismStructureDefinitions under one MesherOptions configuration.
//
// Logging follows the teacher's zap.Logger field-on-struct convention
// (recast.BuildContext logs via its own logger field); concurrency for
// MeshBatch is grounded on golang.org/x/sync/errgroup's bounded worker
// pool (seen across the retrieval pack's manifests), and batch error
// aggregation on go.uber.org/multierr, also pack-grounded.
type Mesher struct {
	opts   meshopts.MesherOptions
	logger *zap.Logger
}

// NewMesher returns a Mesher bound to opts. A nil logger is replaced with
// zap.NewNop().
func NewMesher(opts meshopts.MesherOptions, logger *zap.Logger) *Mesher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mesher{opts: opts, logger: logger}
}

// Fixed phase fractions for MeshWithProgress (§4.K).
const (
	fractionInitializing = 0.0
	fractionSideFaces    = 0.1
	fractionCaps         = 0.6
	fractionAuxiliary    = 0.9
	fractionCompleted    = 1.0
)

// ProgressEvent reports meshing progress as a monotonically increasing
// fraction of total work, keyed by the phase name producing it (§4.K
// "Initializing", "Side Faces", "Caps", "Auxiliary", "Completed").
type ProgressEvent struct {
	Stage    string
	Fraction float64
}

// MeshResult is the outcome of one asynchronous meshing run.
type MeshResult struct {
	Mesh meshdata.Mesh
	Err  error
}

// Mesh synchronously builds the full Mesh for def: side faces for the
// footprint and every hole, caps at base/top and every interior surface if
// enabled, then auxiliary points and segments.
func (m *Mesher) Mesh(ctx context.Context, def PrismStructureDefinition) (meshdata.Mesh, error) {
	return m.meshWithProgress(ctx, def, nil)
}

// MeshWithProgress is Mesh but invokes progress as each phase advances.
func (m *Mesher) MeshWithProgress(ctx context.Context, def PrismStructureDefinition, progress func(ProgressEvent)) (meshdata.Mesh, error) {
	return m.meshWithProgress(ctx, def, progress)
}

// collectAuxZLevels gathers every Z value a definition forces into the
// level set: its own auxiliary levels, auxiliary point/segment elevations,
// and internal surface elevations (§4.D, §4.K). Constraint segments are 2D
// and contribute no level.
func collectAuxZLevels(def PrismStructureDefinition) []float64 {
	zs := append([]float64(nil), def.auxZLevels...)
	for _, p := range def.auxPoints {
		zs = append(zs, p.Z)
	}
	for _, s := range def.auxSegments {
		zs = append(zs, s.A.Z, s.B.Z)
	}
	for _, is := range def.internalSurfaces {
		zs = append(zs, is.Z)
	}
	return zs
}

func (m *Mesher) meshWithProgress(ctx context.Context, def PrismStructureDefinition, progress func(ProgressEvent)) (meshdata.Mesh, error) {
	if err := ctx.Err(); err != nil {
		return meshdata.Mesh{}, fgmerr.New(fgmerr.CodeMeshingCancelled, "meshing cancelled before starting")
	}
	report := func(stage string, fraction float64) {
		if progress != nil {
			progress(ProgressEvent{Stage: stage, Fraction: fraction})
		}
	}
	report("Initializing", fractionInitializing)

	zLvls := zlevels.Build(def.baseZ, def.topZ, m.opts, collectAuxZLevels(def))

	mesh := meshdata.Empty()

	// Side Faces: footprint loop plus every hole loop, scaled into
	// [fractionInitializing, fractionSideFaces] via a precomputed quad
	// count so the fraction stays meaningful without a second full pass.
	totalSideQuads := sidemesh.CountQuads(def.footprint.Vertices(), zLvls, m.opts)
	for _, h := range def.holes {
		totalSideQuads += sidemesh.CountQuads(h.Vertices(), zLvls, m.opts)
	}
	if totalSideQuads == 0 {
		totalSideQuads = 1
	}
	sideQuadsDone := 0
	onSideProgress := func(count int) {
		frac := fractionInitializing + (fractionSideFaces-fractionInitializing)*float64(sideQuadsDone+count)/float64(totalSideQuads)
		report("Side Faces", frac)
	}

	footprintQuads, err := sidemesh.GenerateLoop(ctx, def.footprint.Vertices(), zLvls, m.opts, true, onSideProgress)
	if err != nil {
		return meshdata.Mesh{}, fgmerr.New(fgmerr.CodeMeshingCancelled, "meshing cancelled mid-run")
	}
	mesh = mesh.AddQuads(footprintQuads)
	sideQuadsDone += len(footprintQuads)

	for _, h := range def.holes {
		holeQuads, err := sidemesh.GenerateLoop(ctx, h.Vertices(), zLvls, m.opts, false, onSideProgress)
		if err != nil {
			return meshdata.Mesh{}, fgmerr.New(fgmerr.CodeMeshingCancelled, "meshing cancelled mid-run")
		}
		mesh = mesh.AddQuads(holeQuads)
		sideQuadsDone += len(holeQuads)
	}
	report("Side Faces", fractionSideFaces)

	// Caps: base, top, and every interior horizontal surface.
	if m.opts.GenerateBottomCap {
		res := capmesh.Generate(def.footprint, def.holes, def.baseZ, false, m.opts)
		mesh = mesh.AddQuads(res.Quads).AddTriangles(res.Triangles)
	}
	if m.opts.GenerateTopCap {
		res := capmesh.Generate(def.footprint, def.holes, def.topZ, true, m.opts)
		mesh = mesh.AddQuads(res.Quads).AddTriangles(res.Triangles)
	}
	for _, is := range def.internalSurfaces {
		if err := ctx.Err(); err != nil {
			return meshdata.Mesh{}, fgmerr.New(fgmerr.CodeMeshingCancelled, "meshing cancelled mid-run")
		}
		// Internal surfaces are single-sided (top-facing): §3 describes them
		// as interior floors/platforms, not double-sided membranes, and
		// spec.md is otherwise silent on orientation (DESIGN.md open
		// question resolution).
		res := capmesh.Generate(is.Outer, is.Holes, is.Z, true, m.opts)
		mesh = mesh.AddQuads(res.Quads).AddTriangles(res.Triangles)
	}
	report("Caps", fractionCaps)

	// Auxiliary: standalone points and internal segments carried through
	// verbatim (§4.K "append auxiliary points and internal segments").
	mesh = mesh.AddPoints(def.auxPoints)
	mesh = mesh.AddInternalSegments(def.auxSegments)
	report("Auxiliary", fractionAuxiliary)

	perf.RecordOperation()
	perf.RecordQuads(mesh.QuadCount())
	perf.RecordTriangles(mesh.TriangleCount())
	m.logger.Debug("mesh built",
		zap.Int("quads", mesh.QuadCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("zLevels", len(zLvls)))

	report("Completed", fractionCompleted)
	return mesh, nil
}

// MeshAsync runs Mesh in a goroutine and delivers the result on the
// returned channel, which is closed after the single send.
func (m *Mesher) MeshAsync(ctx context.Context, def PrismStructureDefinition) <-chan MeshResult {
	out := make(chan MeshResult, 1)
	go func() {
		defer close(out)
		mesh, err := m.Mesh(ctx, def)
		out <- MeshResult{Mesh: mesh, Err: err}
	}()
	return out
}

// effectiveParallelism computes §4.K's
// min(maxParallelism or numCpus, max(1, floor(Σcomplexityordinal/4))) bound.
// maxParallelism == -1 means auto (runtime.NumCPU()); any other
// non-positive value is defensively clamped to 1.
func effectiveParallelism(maxParallelism int, defs []PrismStructureDefinition) int {
	requested := maxParallelism
	switch {
	case requested == -1:
		requested = runtime.NumCPU()
	case requested <= 0:
		requested = 1
	}

	var complexitySum int
	for _, def := range defs {
		totalVerts := def.footprint.Count()
		for _, h := range def.holes {
			totalVerts += h.Count()
		}
		complexitySum += int(meshopts.ClassifyComplexity(totalVerts))
	}
	complexityBound := complexitySum / 4
	if complexityBound < 1 {
		complexityBound = 1
	}

	if requested < complexityBound {
		return requested
	}
	return complexityBound
}

// MeshBatch meshes every definition concurrently, bounded to
// effectiveParallelism(maxParallelism, defs) in-flight goroutines (§4.K), and
// returns results in input order. maxParallelism of -1 means auto
// (runtime.NumCPU()). A cancelled context aborts remaining work; every error
// encountered is aggregated via multierr rather than short-circuiting on the
// first one, and returned as a single Meshing.AggregateError whose
// Description joins the per-definition messages with "; ".
func (m *Mesher) MeshBatch(ctx context.Context, defs []PrismStructureDefinition, maxParallelism int) ([]meshdata.Mesh, error) {
	if len(defs) == 0 {
		return nil, fgmerr.New(fgmerr.CodeMeshingEmptyBatch, "MeshBatch called with no definitions")
	}

	results := make([]meshdata.Mesh, len(defs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(effectiveParallelism(maxParallelism, defs))

	var errs error
	var errsMu sync.Mutex
	for i, def := range defs {
		i, def := i, def
		g.Go(func() error {
			mesh, err := m.Mesh(gctx, def)
			if err != nil {
				errsMu.Lock()
				errs = multierr.Append(errs, fgmerr.Newf(fgmerr.CodeMeshingAggregateError, "definition %d: %v", i, err))
				errsMu.Unlock()
				return nil
			}
			results[i] = mesh
			return nil
		})
	}
	_ = g.Wait()

	if errs != nil {
		parts := multierr.Errors(errs)
		msgs := make([]string, len(parts))
		for k, e := range parts {
			msgs[k] = e.Error()
			if fe, ok := e.(*fgmerr.Error); ok {
				msgs[k] = fe.Description
			}
		}
		return nil, fgmerr.New(fgmerr.CodeMeshingAggregateError, strings.Join(msgs, "; "))
	}
	return results, nil
}

// EstimateComplexity estimates the meshing cost for def without performing
// any geometric work (§4.C).
func (m *Mesher) EstimateComplexity(def PrismStructureDefinition) meshopts.Estimate {
	totalVerts := def.footprint.Count()
	for _, h := range def.holes {
		totalVerts += h.Count()
	}
	return meshopts.EstimateComplexity(totalVerts, len(def.holes), len(def.internalSurfaces))
}

// LivePerformanceStats returns a snapshot of the process-wide meshing
// performance counters (§4.K).
func (m *Mesher) LivePerformanceStats() perf.Snapshot {
	return perf.Read()
}
