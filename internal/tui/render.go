package tui

import (
	"math"
	"strings"

	"kochflake/internal/geom"
)

// viewport maps plane coordinates into the micro-grid of a w x h cell canvas. The square
// bbox is fitted to the shorter micro-grid side so the flake keeps its proportions.
type viewport struct {
	bbox       geom.BBox
	zoom       float64
	span       float64 // micro-pixels across the bbox at zoom 1
	padX, padY float64
	offX, offY int // pan in micro-pixels
}

func (m Model) viewport(w, h int) viewport {
	wMic, hMic := w*2, h*4
	span := float64(min(wMic, hMic) - 1)
	return viewport{
		bbox: m.bbox,
		zoom: m.zoom,
		span: span,
		padX: (float64(wMic-1) - span) / 2,
		padY: (float64(hMic-1) - span) / 2,
		offX: m.offsetX * 2,
		offY: m.offsetY * 4,
	}
}

// scale is micro-pixels per plane unit.
func (v viewport) scale() float64 {
	if !v.bbox.Valid() {
		return 0
	}
	return v.span * v.zoom / v.bbox.Width()
}

// toMicro maps a plane point into micro-grid coordinates considering zoom and pan.
func (v viewport) toMicro(p geom.Point) (int, int, bool) {
	if !v.bbox.Valid() {
		return 0, 0, false
	}
	nx := (p.X - v.bbox.MinX) / v.bbox.Width()
	ny := (p.Y - v.bbox.MinY) / v.bbox.Height()
	zx := 0.5 + (nx-0.5)*v.zoom
	zy := 0.5 + (ny-0.5)*v.zoom
	sx := int(math.Round(v.padX+zx*v.span)) + v.offX
	sy := int(math.Round(v.padY+(1.0-zy)*v.span)) + v.offY
	return sx, sy, true
}

// toPlane converts micro-grid coordinates back to the plane.
func (v viewport) toPlane(mx, my int) (geom.Point, bool) {
	if !v.bbox.Valid() || v.span <= 0 {
		return geom.Point{}, false
	}
	zx := (float64(mx-v.offX) - v.padX) / v.span
	zy := 1.0 - (float64(my-v.offY)-v.padY)/v.span
	nx := 0.5 + (zx-0.5)/v.zoom
	ny := 0.5 + (zy-0.5)/v.zoom
	return geom.Point{
		X: v.bbox.MinX + nx*v.bbox.Width(),
		Y: v.bbox.MinY + ny*v.bbox.Height(),
	}, true
}

// renderDepth is the deepest level whose segments still span at least one micro-pixel.
// Deeper levels would only redraw the same dots.
func (m Model) renderDepth(v viewport) int {
	scale := v.scale()
	d := 0
	for d < m.depth && m.side/math.Pow(3, float64(d+1))*scale >= 1 {
		d++
	}
	return d
}

func (m Model) renderFlake(w, h int) string {
	br := newBrailleBuf(w, h)
	v := m.viewport(w, h)
	rd := m.renderDepth(v)

	if m.showFill {
		ring := m.tree.Outline(rd)
		mic := make([][2]int, 0, len(ring))
		for _, p := range ring {
			if mx, my, ok := v.toMicro(p); ok {
				mic = append(mic, [2]int{mx, my})
			}
		}
		br.fillRing(mic)
	}
	for s := range m.tree.Segments(rd) {
		x0, y0, ok0 := v.toMicro(s.A)
		x1, y1, ok1 := v.toMicro(s.B)
		if !ok0 || !ok1 {
			continue
		}
		br.drawLineMicro(x0, y0, x1, y1)
	}

	lines := br.toLines()
	hx, hy := m.hoverMicX/2, m.hoverMicY/4
	for y := range lines {
		if m.hovering && y == hy && hx >= 0 && hx < w {
			r := []rune(lines[y])
			lines[y] = flakeStyle.Render(string(r[:hx])) + hoverStyle.Render("◯") + flakeStyle.Render(string(r[hx+1:]))
			continue
		}
		lines[y] = flakeStyle.Render(lines[y])
	}
	return strings.Join(lines, "\n")
}

// nearestVertex finds the drawn vertex closest to the micro-grid position (mx, my).
func (m Model) nearestVertex(mx, my, w, h int) (int, int, bool) {
	v := m.viewport(w, h)
	best := math.MaxInt
	bx, by := mx, my
	for s := range m.tree.Segments(m.renderDepth(v)) {
		px, py, ok := v.toMicro(s.A)
		if !ok {
			continue
		}
		dx, dy := px-mx, py-my
		if d := dx*dx + dy*dy; d < best {
			best = d
			bx, by = px, py
		}
	}
	return bx, by, best != math.MaxInt
}
