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

// TaggedMesh is the vertex/quad/triangle/edge quadruple read and written by
// the alternative tagged text format. Indices are 0-based in memory;
// 1-based on disk.
type TaggedMesh struct {
	Vertices  []geom.Vec3
	Quads     [][4]int
	Triangles [][3]int
	Edges     [][2]int
}

// WriteTagged writes m with one record per line: "v x y z", "q v0 v1 v2 v3",
// "t v0 v1 v2", "e v0 v1", vertices first then quads, triangles, edges.
func WriteTagged(w io.Writer, m TaggedMesh) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}
	for _, q := range m.Quads {
		fmt.Fprintf(bw, "q %d %d %d %d\n", q[0]+1, q[1]+1, q[2]+1, q[3]+1)
	}
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "t %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}
	for _, e := range m.Edges {
		fmt.Fprintf(bw, "e %d %d\n", e[0]+1, e[1]+1)
	}
	return bw.Flush()
}

// ReadTagged parses the tagged format: blank lines and lines starting with
// '#' are ignored, every other line begins with one of v/q/t/e.
func ReadTagged(r io.Reader) (TaggedMesh, error) {
	sc := bufio.NewScanner(r)
	var m TaggedMesh

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		tag, rest := fields[0], fields[1:]

		switch tag {
		case "v":
			v, err := parseFloatTriple(rest)
			if err != nil {
				return TaggedMesh{}, err
			}
			m.Vertices = append(m.Vertices, v)
		case "q":
			idx, err := parseIndexFields(rest, 4)
			if err != nil {
				return TaggedMesh{}, err
			}
			m.Quads = append(m.Quads, [4]int{idx[0], idx[1], idx[2], idx[3]})
		case "t":
			idx, err := parseIndexFields(rest, 3)
			if err != nil {
				return TaggedMesh{}, err
			}
			m.Triangles = append(m.Triangles, [3]int{idx[0], idx[1], idx[2]})
		case "e":
			idx, err := parseIndexFields(rest, 2)
			if err != nil {
				return TaggedMesh{}, err
			}
			m.Edges = append(m.Edges, [2]int{idx[0], idx[1]})
		default:
			return TaggedMesh{}, fgmerr.Newf(fgmerr.CodeMeshingArgumentError, "unknown tag %q", tag)
		}
	}
	if err := sc.Err(); err != nil {
		return TaggedMesh{}, fgmerr.Newf(fgmerr.CodeMeshingArgumentError, "reading tagged mesh text: %v", err)
	}
	return m, nil
}

func parseFloatTriple(fields []string) (geom.Vec3, error) {
	if len(fields) != 3 {
		return geom.Vec3{}, fgmerr.Newf(fgmerr.CodeMeshingArgumentError, "v record must have 3 fields, got %d", len(fields))
	}
	x, err1 := strconv.ParseFloat(fields[0], 64)
	y, err2 := strconv.ParseFloat(fields[1], 64)
	z, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return geom.Vec3{}, fgmerr.Newf(fgmerr.CodeMeshingArgumentError, "invalid v coordinates in %v", fields)
	}
	return geom.Vec3{X: x, Y: y, Z: z}, nil
}

func parseIndexFields(fields []string, n int) ([]int, error) {
	if len(fields) != n {
		return nil, fgmerr.Newf(fgmerr.CodeMeshingArgumentError, "record must have %d index fields, got %d", n, len(fields))
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 1 {
			return nil, fgmerr.Newf(fgmerr.CodeMeshingArgumentError, "invalid 1-based index %q", f)
		}
		out[i] = v - 1
	}
	return out, nil
}
