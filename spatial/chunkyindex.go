package spatial

import (
	"sort"

	"github.com/arl/fastgeomesh/geom"
	"github.com/arl/fastgeomesh/polygon"
)

// chunkNode is one node of the 2D AABB tree; a negative count marks an
// internal node, and its magnitude is the number of nodes in the subtree
// rooted there, i.e. the escape offset to the first node after that subtree
// (same "negative means escape" encoding as the teacher's
// recast/chunkytrimesh.go ChunkyTriMeshNode.I, adapted from triangle chunks
// to segment chunks).
type chunkNode struct {
	bmin, bmax [2]float64
	i, count   int32
}

// ChunkyPolyIndex is a median-split bounding-volume tree over a set of 2D
// segments (hole boundaries and constraint segments), answering "is any
// segment within distance d of p" queries in roughly O(log n) rather than
// the O(n) brute-force scan (§4.G).
//
// Grounded on the teacher's recast/chunkytrimesh.go createChunkyTriMesh +
// subdivide: same longest-axis median split and leaf-chunk packing, adapted
// from triangle AABBs in XZ to segment AABBs in XY.
type ChunkyPolyIndex struct {
	nodes    []chunkNode
	segments []geom.Segment2D
	leafSize int32
}

// NewChunkyPolyIndex builds an index over segments, packing up to leafSize
// segments per leaf; a leafSize below 1 selects the default of 8.
func NewChunkyPolyIndex(segments []geom.Segment2D, leafSize int) *ChunkyPolyIndex {
	if leafSize < 1 {
		leafSize = 8
	}
	idx := &ChunkyPolyIndex{segments: segments, leafSize: int32(leafSize)}
	if len(segments) == 0 {
		return idx
	}

	items := make([]segItem, len(segments))
	for i, s := range segments {
		items[i] = boundsOf(s, i)
	}

	nchunks := (len(segments) + leafSize - 1) / leafSize
	idx.nodes = make([]chunkNode, 0, nchunks*4)
	var cur int32
	idx.subdivide(items, 0, int32(len(items)), &cur)

	// Leaves address items by their sorted position; store the segments in
	// that same order.
	ordered := make([]geom.Segment2D, len(items))
	for k, it := range items {
		ordered[k] = segments[it.i]
	}
	idx.segments = ordered
	return idx
}

type segItem struct {
	bmin, bmax [2]float64
	i          int32
}

func boundsOf(s geom.Segment2D, i int) segItem {
	minX, maxX := s.A.X, s.A.X
	minY, maxY := s.A.Y, s.A.Y
	if s.B.X < minX {
		minX = s.B.X
	}
	if s.B.X > maxX {
		maxX = s.B.X
	}
	if s.B.Y < minY {
		minY = s.B.Y
	}
	if s.B.Y > maxY {
		maxY = s.B.Y
	}
	return segItem{bmin: [2]float64{minX, minY}, bmax: [2]float64{maxX, maxY}, i: int32(i)}
}

func (idx *ChunkyPolyIndex) subdivide(items []segItem, imin, imax int32, cur *int32) {
	inum := imax - imin
	icur := *cur

	node := chunkNode{}
	idx.nodes = append(idx.nodes, node)
	*cur++

	bmin, bmax := extents(items[imin:imax])

	if inum <= idx.leafSize {
		idx.nodes[icur].bmin = bmin
		idx.nodes[icur].bmax = bmax
		idx.nodes[icur].i = imin
		idx.nodes[icur].count = inum
		return
	}

	idx.nodes[icur].bmin = bmin
	idx.nodes[icur].bmax = bmax

	dx := bmax[0] - bmin[0]
	dy := bmax[1] - bmin[1]
	axis := 0
	if dy > dx {
		axis = 1
	}
	sort.SliceStable(items[imin:imax], func(i, j int) bool {
		return items[imin+int32(i)].bmin[axis] < items[imin+int32(j)].bmin[axis]
	})

	mid := imin + inum/2
	idx.subdivide(items, imin, mid, cur)
	idx.subdivide(items, mid, imax, cur)

	idx.nodes[icur].count = -(*cur - icur)
}

func extents(items []segItem) (bmin, bmax [2]float64) {
	bmin, bmax = items[0].bmin, items[0].bmax
	for _, it := range items[1:] {
		if it.bmin[0] < bmin[0] {
			bmin[0] = it.bmin[0]
		}
		if it.bmin[1] < bmin[1] {
			bmin[1] = it.bmin[1]
		}
		if it.bmax[0] > bmax[0] {
			bmax[0] = it.bmax[0]
		}
		if it.bmax[1] > bmax[1] {
			bmax[1] = it.bmax[1]
		}
	}
	return
}

// WithinDistance reports whether any indexed segment lies within d of p.
func (idx *ChunkyPolyIndex) WithinDistance(p geom.Vec2, d float64) bool {
	if len(idx.nodes) == 0 {
		return false
	}
	return idx.query(0, p, d)
}

func (idx *ChunkyPolyIndex) query(i int32, p geom.Vec2, d float64) bool {
	n := idx.nodes[i]
	if !boxNearPoint(n.bmin, n.bmax, p, d) {
		return false
	}
	if n.count >= 0 {
		for k := n.i; k < n.i+n.count; k++ {
			s := idx.segments[k]
			if polygon.DistancePointSegment(p, s.A, s.B) <= d {
				return true
			}
		}
		return false
	}
	left := i + 1
	if idx.query(left, p, d) {
		return true
	}
	leftSize := int32(1)
	if c := idx.nodes[left].count; c < 0 {
		leftSize = -c
	}
	return idx.query(left+leftSize, p, d)
}

func boxNearPoint(bmin, bmax [2]float64, p geom.Vec2, d float64) bool {
	if p.X < bmin[0]-d || p.X > bmax[0]+d {
		return false
	}
	if p.Y < bmin[1]-d || p.Y > bmax[1]+d {
		return false
	}
	return true
}
