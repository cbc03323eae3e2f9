package geom

// Point is a 2-D position or displacement.
type Point struct {
	X float64
	Y float64
}

// Segment is one drawable line from A to B.
type Segment struct {
	A Point
	B Point
}

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows the box to include p. An empty box adopts p.
func (b *BBox) Extend(p Point, empty bool) {
	if empty {
		*b = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
		return
	}
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

func (b BBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Valid reports whether the box has a positive extent on both axes.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

// Square returns the smallest square box sharing b's center, grown by frac of its side
// on every edge. Rendering into a square keeps equilateral shapes undistorted.
func (b BBox) Square(frac float64) BBox {
	side := max(b.Width(), b.Height())
	half := side/2 + side*frac
	c := b.Center()
	return BBox{MinX: c.X - half, MinY: c.Y - half, MaxX: c.X + half, MaxY: c.Y + half}
}

// BBoxOfRing returns the bounding box of a polygon ring.
func BBoxOfRing(ring []Point) BBox {
	var bb BBox
	for i, p := range ring {
		bb.Extend(p, i == 0)
	}
	return bb
}
