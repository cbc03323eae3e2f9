package tui

import (
	"fmt"
	"strconv"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"kochflake/internal/koch"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.layout()
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	case builtMsg:
		m.building = false
		if msg.err != nil {
			m.status = "build error: " + msg.err.Error()
			m.log.Warn("rebuild failed", "error", msg.err)
			return m, nil
		}
		m.setTree(msg.tree, msg.side)
		m.zoom = 1.0
		m.offsetX, m.offsetY = 0, 0
		m.inspectPopup = ""
		m.log.Info("rebuilt snowflake", "side", msg.side, "max_depth", m.maxDepth)
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.promptMode {
			return m.updatePrompt(msg)
		}
		if m.showStats {
			switch msg.String() {
			case "up", "down", "k", "j":
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				m.setDepth(m.tbl.Cursor())
				return m, cmd
			}
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "]":
			m.setDepth(m.depth + 1)
		case "[":
			m.setDepth(m.depth - 1)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "r":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "f":
			m.showFill = !m.showFill
			m.status = fmt.Sprintf("fill: %v", m.showFill)
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
		case "p":
			m.promptMode = true
			m.ti.SetValue("")
			m.status = "rebuild: enter side and depth"
			return m, m.ti.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showStats = !m.showStats
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				break
			}
			q := m.tree.Query(m.depth)
			meta := []string{
				fmt.Sprintf("side: %g", m.side),
				fmt.Sprintf("depth: %d of %d", m.depth, m.maxDepth),
				fmt.Sprintf("segments: %d", q.Segments),
				fmt.Sprintf("perimeter: %.6f", q.Perimeter),
				fmt.Sprintf("area: %.6f", q.Area),
				fmt.Sprintf("limit area: %.6f", koch.LimitArea(m.side)),
				fmt.Sprintf("bbox: [%.4f, %.4f, %.4f, %.4f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY),
			}
			m.inspectPopup = strings.Join(meta, "\n")
			m.status = "inspect popup"
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(depthItem); ok {
					m.setDepth(it.row.Depth)
				}
				return m, nil
			}
		case "up":
			// the sidebar list owns up/down while it is open
			if !m.showSidebar {
				m.offsetY -= 1
			}
		case "down":
			if !m.showSidebar {
				m.offsetY += 1
			}
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.zoom < 64 {
				m.zoom *= 1.1
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if m.zoom > 0.05 {
				m.zoom /= 1.1
			}
			return m, nil
		}
		lo := m.layout()
		cx, cy := msg.X, msg.Y
		if cx >= lo.mapX && cx < lo.mapX+lo.mapW && cy >= lo.mapY && cy < lo.mapY+lo.mapH {
			mx, my := (cx-lo.mapX)*2, (cy-lo.mapY)*4
			m.hovering = true
			if p, ok := m.viewport(lo.mapW, lo.mapH).toPlane(mx, my); ok {
				m.hoverHasPos = true
				m.hoverX, m.hoverY = p.X, p.Y
			} else {
				m.hoverHasPos = false
			}
			if bx, by, ok := m.nearestVertex(mx, my, lo.mapW, lo.mapH); ok {
				m.hoverMicX, m.hoverMicY = bx, by
			} else {
				m.hovering = false
			}
		} else {
			m.hovering = false
			m.hoverHasPos = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.promptMode = false
		m.ti.Blur()
		m.setDepth(m.depth)
		return m, nil
	case "enter":
		side, depth, err := parseParams(m.ti.Value(), m.depthLimit)
		if err != nil {
			m.status = "rebuild error: " + err.Error()
			return m, nil
		}
		m.promptMode = false
		m.ti.Blur()
		m.building = true
		m.status = fmt.Sprintf("building side=%g depth=%d ...", side, depth)
		return m, buildCmd(side, depth)
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// parseParams reads "side [depth]" from the prompt. A missing depth keeps the limit-capped
// default of 4.
func parseParams(s string, limit int) (float64, int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return 0, 0, fmt.Errorf("expected: side [depth]")
	}
	side, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("side %q is not a number", fields[0])
	}
	depth := min(4, limit)
	if len(fields) == 2 {
		if depth, err = strconv.Atoi(fields[1]); err != nil {
			return 0, 0, fmt.Errorf("depth %q is not an integer", fields[1])
		}
	}
	if depth > limit {
		return 0, 0, fmt.Errorf("depth %d exceeds limit %d", depth, limit)
	}
	return side, depth, nil
}
