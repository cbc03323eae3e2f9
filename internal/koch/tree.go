// Package koch builds Koch snowflake subdivision trees and answers per-depth queries
// over them.
//
// A tree is immutable once Build returns, so any number of goroutines may query or walk
// it concurrently.
package koch

import (
	"errors"
	"fmt"
	"math"

	"kochflake/internal/geom"
)

// ErrInvalidParameter is returned by Build for a non-positive side length or a negative
// depth.
var ErrInvalidParameter = errors.New("invalid construction parameter")

// Node is one level of subdivision. The root holds the base triangle and its three sides;
// every other node holds one side split into four.
type Node struct {
	data     Data
	pts      []geom.Point // root: 3 vertices; side: p1, one third, apex, two thirds, p2
	children []*Node
}

// Build constructs the tree for a snowflake with the given base side length, subdivided
// maxDepth times.
func Build(side float64, maxDepth int) (*Node, error) {
	if !(side > 0) || math.IsInf(side, 1) {
		return nil, fmt.Errorf("%w: side length must be positive and finite, got %v", ErrInvalidParameter, side)
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidParameter, maxDepth)
	}
	v := geom.EquilateralTriangle(side)
	root := &Node{
		data: Data{
			Leaf:      maxDepth == 0,
			Segments:  3,
			Perimeter: 3 * side,
			Area:      geom.EquilateralArea(side),
		},
		pts: v[:],
	}
	if maxDepth > 0 {
		root.children = []*Node{
			buildSide(v[0], v[1], 1, maxDepth),
			buildSide(v[1], v[2], 1, maxDepth),
			buildSide(v[2], v[0], 1, maxDepth),
		}
	}
	return root, nil
}

func buildSide(p1, p2 geom.Point, depth, maxDepth int) *Node {
	oneThird := geom.OneThird(p1, p2)
	twoThirds := geom.TwoThirds(p1, p2)
	apex := geom.Apex(p1, p2)
	sub := geom.SegmentLength(p1, oneThird)

	n := &Node{
		data: Data{
			Segments:  4,
			Perimeter: 4 * sub,
			Area:      geom.EquilateralArea(sub),
		},
		pts: []geom.Point{p1, oneThird, apex, twoThirds, p2},
	}
	if depth < maxDepth {
		n.children = make([]*Node, 0, 4)
		for i := 0; i < 4; i++ {
			n.children = append(n.children, buildSide(n.pts[i], n.pts[i+1], depth+1, maxDepth))
		}
	} else {
		n.data.Leaf = true
	}
	return n
}

// Data returns the node's own stored record: the four sub-segments and bump of a side,
// or the base triangle for the root.
func (n *Node) Data() Data { return n.data }

// IsLeaf reports whether construction stopped at this node.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Children returns a copy of the node's child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Depth returns how many subdivision levels lie below n.
func (n *Node) Depth() int {
	d := 0
	for c := n; len(c.children) > 0; c = c.children[0] {
		d++
	}
	return d
}

// LimitArea is the area the snowflake approaches as depth grows without bound.
func LimitArea(side float64) float64 {
	return 2 * math.Sqrt(3) / 5 * side * side
}
