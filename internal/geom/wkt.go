package geom

import "strconv"

func appendCoord(b []byte, p Point) []byte {
	b = strconv.AppendFloat(b, p.X, 'f', -1, 64)
	b = append(b, ' ')
	return strconv.AppendFloat(b, p.Y, 'f', -1, 64)
}

// FormatWKT renders a ring as POLYGON((x y, ...)). The ring is closed if its last point
// differs from its first.
func FormatWKT(ring []Point) string {
	if len(ring) == 0 {
		return "POLYGON EMPTY"
	}
	b := make([]byte, 0, 16+len(ring)*24)
	b = append(b, "POLYGON(("...)
	for i, p := range ring {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = appendCoord(b, p)
	}
	if !ring[0].Eq(ring[len(ring)-1]) {
		b = append(b, ", "...)
		b = appendCoord(b, ring[0])
	}
	return string(append(b, "))"...))
}

// MultiLineStringWKT renders segments as MULTILINESTRING((ax ay, bx by), ...).
func MultiLineStringWKT(segs []Segment) string {
	if len(segs) == 0 {
		return "MULTILINESTRING EMPTY"
	}
	b := make([]byte, 0, 20+len(segs)*52)
	b = append(b, "MULTILINESTRING("...)
	for i, s := range segs {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, '(')
		b = appendCoord(b, s.A)
		b = append(b, ", "...)
		b = appendCoord(b, s.B)
		b = append(b, ')')
	}
	return string(append(b, ')'))
}
