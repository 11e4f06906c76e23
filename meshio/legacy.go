// Package meshio implements the two plain-text mesh formats specified as
// the core's only I/O surface (§6): the legacy bit-compatible format and a
// tagged alternative format. Exporters for render-engine formats (OBJ,
// glTF, SVG) are external collaborators and live outside this package.
//
// Grounded on the teacher's detour/mesh.go Save/Load pair (fixed
// vertex/tri-count header, one fmt.Fprintf-formatted record per line) and
// meshloaderobj.go's line-oriented text scanning (bufio.Scanner, token
// dispatch on the first field of each line).
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arl/fastgeomesh/fgmerr"
	"github.com/arl/fastgeomesh/geom"
)

// LegacyMesh is the vertex/edge/quad triple read and written by the legacy
// text format. Indices are 0-based in memory; the on-disk format is
// 1-based.
type LegacyMesh struct {
	Vertices []geom.Vec3
	Edges    [][2]int
	Quads    [][4]int
}

// WriteLegacy writes m in the legacy bit-compatible format: a vertex count
// and block, an edge count and block, a quad count and block, each record
// prefixed by its 1-based sequence number. Floats are written with six
// fractional digits.
func WriteLegacy(w io.Writer, m LegacyMesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d\n", len(m.Vertices))
	for i, v := range m.Vertices {
		fmt.Fprintf(bw, "%d %.6f %.6f %.6f\n", i+1, v.X, v.Y, v.Z)
	}

	fmt.Fprintf(bw, "%d\n", len(m.Edges))
	for i, e := range m.Edges {
		fmt.Fprintf(bw, "%d %d %d\n", i+1, e[0]+1, e[1]+1)
	}

	fmt.Fprintf(bw, "%d\n", len(m.Quads))
	for i, q := range m.Quads {
		fmt.Fprintf(bw, "%d %d %d %d %d\n", i+1, q[0]+1, q[1]+1, q[2]+1, q[3]+1)
	}

	return bw.Flush()
}

// ReadLegacy parses the legacy format written by WriteLegacy. Any malformed
// count line, record line, or out-of-range index yields
// Meshing.ArgumentError.
func ReadLegacy(r io.Reader) (LegacyMesh, error) {
	sc := bufio.NewScanner(r)
	lr := &lineReader{sc: sc}

	var m LegacyMesh

	vertCount, err := lr.readCount("vertex count")
	if err != nil {
		return LegacyMesh{}, err
	}
	m.Vertices = make([]geom.Vec3, vertCount)
	for i := 0; i < vertCount; i++ {
		fields, err := lr.next()
		if err != nil {
			return LegacyMesh{}, err
		}
		v, err := parseVertexRecord(fields)
		if err != nil {
			return LegacyMesh{}, err
		}
		m.Vertices[i] = v
	}

	edgeCount, err := lr.readCount("edge count")
	if err != nil {
		return LegacyMesh{}, err
	}
	m.Edges = make([][2]int, edgeCount)
	for i := 0; i < edgeCount; i++ {
		fields, err := lr.next()
		if err != nil {
			return LegacyMesh{}, err
		}
		e, err := parseIndexRecord(fields, 2)
		if err != nil {
			return LegacyMesh{}, err
		}
		if err := checkIndexRange(e, vertCount); err != nil {
			return LegacyMesh{}, err
		}
		m.Edges[i] = [2]int{e[0], e[1]}
	}

	quadCount, err := lr.readCount("quad count")
	if err != nil {
		return LegacyMesh{}, err
	}
	m.Quads = make([][4]int, quadCount)
	for i := 0; i < quadCount; i++ {
		fields, err := lr.next()
		if err != nil {
			return LegacyMesh{}, err
		}
		q, err := parseIndexRecord(fields, 4)
		if err != nil {
			return LegacyMesh{}, err
		}
		if err := checkIndexRange(q, vertCount); err != nil {
			return LegacyMesh{}, err
		}
		m.Quads[i] = [4]int{q[0], q[1], q[2], q[3]}
	}

	return m, nil
}

// lineReader yields non-blank lines split into whitespace-separated fields.
type lineReader struct {
	sc *bufio.Scanner
}

func (lr *lineReader) next() ([]string, error) {
	for lr.sc.Scan() {
		line := strings.TrimSpace(lr.sc.Text())
		if line == "" {
			continue
		}
		return strings.Fields(line), nil
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fgmerr.Newf(fgmerr.CodeMeshingArgumentError, "reading mesh text: %v", err)
	}
	return nil, fgmerr.New(fgmerr.CodeMeshingArgumentError, "unexpected end of input")
}

func (lr *lineReader) readCount(what string) (int, error) {
	fields, err := lr.next()
	if err != nil {
		return 0, err
	}
	if len(fields) != 1 {
		return 0, fgmerr.Newf(fgmerr.CodeMeshingArgumentError, "%s line must have exactly one field", what)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, fgmerr.Newf(fgmerr.CodeMeshingArgumentError, "invalid %s %q", what, fields[0])
	}
	return n, nil
}

// parseVertexRecord parses "<seq> x y z", ignoring seq.
func parseVertexRecord(fields []string) (geom.Vec3, error) {
	if len(fields) != 4 {
		return geom.Vec3{}, fgmerr.Newf(fgmerr.CodeMeshingArgumentError,
			"vertex record must have 4 fields, got %d", len(fields))
	}
	x, err1 := strconv.ParseFloat(fields[1], 64)
	y, err2 := strconv.ParseFloat(fields[2], 64)
	z, err3 := strconv.ParseFloat(fields[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return geom.Vec3{}, fgmerr.Newf(fgmerr.CodeMeshingArgumentError, "invalid vertex coordinates in %v", fields)
	}
	return geom.Vec3{X: x, Y: y, Z: z}, nil
}

// parseIndexRecord parses "<seq> i1 i2 ... in" (1-based on disk) into n
// 0-based indices, ignoring seq.
func parseIndexRecord(fields []string, n int) ([]int, error) {
	if len(fields) != n+1 {
		return nil, fgmerr.Newf(fgmerr.CodeMeshingArgumentError,
			"index record must have %d fields, got %d", n+1, len(fields))
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil || v < 1 {
			return nil, fgmerr.Newf(fgmerr.CodeMeshingArgumentError, "invalid 1-based index %q", fields[i+1])
		}
		out[i] = v - 1
	}
	return out, nil
}

// checkIndexRange rejects any 0-based index not below vertCount.
func checkIndexRange(idx []int, vertCount int) error {
	for _, v := range idx {
		if v >= vertCount {
			return fgmerr.Newf(fgmerr.CodeMeshingArgumentError,
				"1-based index %d out of range for %d vertices", v+1, vertCount)
		}
	}
	return nil
}
