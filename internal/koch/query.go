package koch

// Query returns the aggregate state of the shape as if recursion had stopped after depth
// subdivisions below n. A depth of zero or less, or a node without children, yields the
// node's own record; depths past the tree's height clamp to it.
//
// Leaf in the result is true when no node reached by the query has further subdivisions,
// which for the root means depth >= the tree's max depth.
func (n *Node) Query(depth int) Data {
	if depth <= 0 || len(n.children) == 0 {
		return n.data
	}
	sum := Data{Leaf: true}
	for _, c := range n.children {
		d := c.Query(depth - 1)
		sum = sum.Add(d)
		sum.Leaf = sum.Leaf && d.Leaf
	}
	sum.Area += n.data.Area
	return sum
}

// Table returns one row per depth from 0 through maxN inclusive.
func Table(root *Node, maxN int) []Row {
	if maxN < 0 {
		return nil
	}
	rows := make([]Row, 0, maxN+1)
	for i := 0; i <= maxN; i++ {
		rows = append(rows, Row{Depth: i, Data: root.Query(i)})
	}
	return rows
}
