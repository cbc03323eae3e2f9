package koch

import (
	"iter"

	"kochflake/internal/geom"
)

// own returns the segments a node draws when recursion stops at it.
func (n *Node) own() []geom.Segment {
	if len(n.pts) == 3 {
		return []geom.Segment{
			{A: n.pts[0], B: n.pts[1]},
			{A: n.pts[1], B: n.pts[2]},
			{A: n.pts[2], B: n.pts[0]},
		}
	}
	segs := make([]geom.Segment, 0, len(n.pts)-1)
	for i := 0; i+1 < len(n.pts); i++ {
		segs = append(segs, geom.Segment{A: n.pts[i], B: n.pts[i+1]})
	}
	return segs
}

// LeafSegments returns the drawable segments of a leaf node, or nil for an inner node.
func (n *Node) LeafSegments() []geom.Segment {
	if len(n.children) > 0 {
		return nil
	}
	return n.own()
}

// Leaves yields every leaf below n in boundary order.
func (n *Node) Leaves() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walkLeaves(yield)
	}
}

func (n *Node) walkLeaves(yield func(*Node) bool) bool {
	if len(n.children) == 0 {
		return yield(n)
	}
	for _, c := range n.children {
		if !c.walkLeaves(yield) {
			return false
		}
	}
	return true
}

// Segments yields the boundary at the given depth in drawing order. The number of
// segments yielded equals Query(depth).Segments.
func (n *Node) Segments(depth int) iter.Seq[geom.Segment] {
	return func(yield func(geom.Segment) bool) {
		n.walkSegments(depth, yield)
	}
}

func (n *Node) walkSegments(depth int, yield func(geom.Segment) bool) bool {
	if depth <= 0 || len(n.children) == 0 {
		for _, s := range n.own() {
			if !yield(s) {
				return false
			}
		}
		return true
	}
	for _, c := range n.children {
		if !c.walkSegments(depth-1, yield) {
			return false
		}
	}
	return true
}

// SegmentSlice collects Segments(depth).
func (n *Node) SegmentSlice(depth int) []geom.Segment {
	segs := make([]geom.Segment, 0, n.Query(depth).Segments)
	for s := range n.Segments(depth) {
		segs = append(segs, s)
	}
	return segs
}

// Outline returns the closed boundary ring at the given depth; the first point is
// repeated at the end.
func (n *Node) Outline(depth int) []geom.Point {
	ring := make([]geom.Point, 0, n.Query(depth).Segments+1)
	for s := range n.Segments(depth) {
		if len(ring) == 0 {
			ring = append(ring, s.A)
		}
		ring = append(ring, s.B)
	}
	return ring
}
