package meshopts

import "runtime"

// MeshingComplexity classifies a structure by total footprint+hole vertex
// count (§3).
type MeshingComplexity int

const (
	Trivial MeshingComplexity = iota
	Simple
	Moderate
	Complex
	Extreme
)

func (c MeshingComplexity) String() string {
	switch c {
	case Trivial:
		return "Trivial"
	case Simple:
		return "Simple"
	case Moderate:
		return "Moderate"
	case Complex:
		return "Complex"
	case Extreme:
		return "Extreme"
	default:
		return "Unknown"
	}
}

// ClassifyComplexity derives a MeshingComplexity from the total vertex count
// of the footprint plus its holes, using the exclusive boundaries of §3:
// Trivial (<10), Simple (<50), Moderate (<200), Complex (<1000),
// Extreme (>=1000).
func ClassifyComplexity(totalVerts int) MeshingComplexity {
	switch {
	case totalVerts < 10:
		return Trivial
	case totalVerts < 50:
		return Simple
	case totalVerts < 200:
		return Moderate
	case totalVerts < 1000:
		return Complex
	default:
		return Extreme
	}
}

// estimatedComputeTimeMicros maps complexity to a nominal per-structure
// compute time in microseconds. §9 treats this table as an internal tunable,
// not a contractual guarantee.
var estimatedComputeTimeMicros = map[MeshingComplexity]int64{
	Trivial:  80,
	Simple:   240,
	Moderate: 800,
	Complex:  4000,
	Extreme:  16000,
}

// Estimate is the detailed per-structure cost/size projection (§3,
// MeshingComplexityEstimate).
type Estimate struct {
	EstQuadCount           int
	EstTriCount            int
	EstPeakMemoryBytes     int64
	EstComputeTimeMicros   int64
	RecommendedParallelism int
	Complexity             MeshingComplexity
	Hints                  []string
}

// EstimateComplexity computes the detailed estimate for a structure with
// totalVerts footprint+hole vertices and internalSurfaces internal
// horizontal surfaces (§4.C):
//
//	estQuads = floor(totalVerts*1.5 + internalSurfaces*10)
//	estTris  = max(1, floor(totalVerts*0.3))
//	estMem   = (estQuads+estTris) * 160 bytes
func EstimateComplexity(totalVerts, holeCount, internalSurfaces int) Estimate {
	complexity := ClassifyComplexity(totalVerts)

	estQuads := int(float64(totalVerts)*1.5) + internalSurfaces*10
	estTris := int(float64(totalVerts) * 0.3)
	if estTris < 1 {
		estTris = 1
	}
	estMem := int64(estQuads+estTris) * 160

	parallelism := 1
	if complexity >= Complex {
		parallelism = runtime.NumCPU()
		if parallelism > 4 {
			parallelism = 4
		}
		if parallelism < 1 {
			parallelism = 1
		}
	}

	var hints []string
	if totalVerts == 0 {
		hints = append(hints, "structure has no vertices")
	}
	if holeCount > 0 {
		hints = append(hints, "holes increase cap tessellation cost")
	}
	if internalSurfaces > 0 {
		hints = append(hints, "internal surfaces add extra cap passes")
	}
	if complexity >= Complex {
		hints = append(hints, "consider meshAsync/meshBatch for this complexity")
	}

	return Estimate{
		EstQuadCount:           estQuads,
		EstTriCount:            estTris,
		EstPeakMemoryBytes:     estMem,
		EstComputeTimeMicros:   estimatedComputeTimeMicros[complexity],
		RecommendedParallelism: parallelism,
		Complexity:             complexity,
		Hints:                  hints,
	}
}
