package geom

import "math"

var sqrt3 = math.Sqrt(3)

func (p Point) Add(v Point) Point     { return Point{X: p.X + v.X, Y: p.Y + v.Y} }
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }
func (p Point) Eq(q Point) bool       { return p.X == q.X && p.Y == q.Y }

// Sub returns the vector from p1 to p2.
func Sub(p2, p1 Point) Point { return Point{X: p2.X - p1.X, Y: p2.Y - p1.Y} }

func Midpoint(p1, p2 Point) Point { return p1.Add(Sub(p2, p1).Scale(0.5)) }

func SegmentLength(p1, p2 Point) float64 {
	return math.Sqrt(sq(p1.X-p2.X) + sq(p1.Y-p2.Y))
}

func sq(v float64) float64 { return v * v }

// OneThird returns the point a third of the way from p1 to p2.
func OneThird(p1, p2 Point) Point {
	return Point{X: p1.X + (p2.X-p1.X)/3, Y: p1.Y + (p2.Y-p1.Y)/3}
}

// TwoThirds returns the point two thirds of the way from p1 to p2.
func TwoThirds(p1, p2 Point) Point { return OneThird(p2, p1) }

// Apex returns the tip of the equilateral bump erected on the middle third of p1→p2.
// The bump sits on the left of the direction of travel: above the segment when p1 is
// left of p2.
func Apex(p1, p2 Point) Point {
	mid := Midpoint(p1, p2)
	d := Sub(p2, p1)
	return Point{
		X: mid.X - d.Y*sqrt3/6,
		Y: mid.Y + d.X*sqrt3/6,
	}
}

// EquilateralArea is the area of an equilateral triangle with the given side.
func EquilateralArea(side float64) float64 {
	return sqrt3 / 4 * side * side
}

// EquilateralTriangle returns the vertices of an equilateral triangle centred on the
// origin: bottom-left, top, bottom-right. Walking them in order is clockwise, so Apex
// bumps on consecutive sides point outward.
func EquilateralTriangle(side float64) [3]Point {
	h := sqrt3 / 2 * side
	return [3]Point{
		{X: -side / 2, Y: -h / 3},
		{X: 0, Y: h * 2 / 3},
		{X: side / 2, Y: -h / 3},
	}
}

// RingArea returns the unsigned shoelace area of a closed or open ring.
func RingArea(ring []Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var a float64
	for i := 0; i < n; i++ {
		p, q := ring[i], ring[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(a) / 2
}
