package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"kochflake/internal/koch"
)

// depthItem is one row of the depth picker.
type depthItem struct {
	row koch.Row
}

func (d depthItem) Title() string { return fmt.Sprintf("n = %d", d.row.Depth) }
func (d depthItem) Description() string {
	return fmt.Sprintf("%d segs  P %.4f", d.row.Segments, d.row.Perimeter)
}
func (d depthItem) FilterValue() string { return fmt.Sprintf("%d", d.row.Depth) }

func (m *Model) refreshDepths() {
	rows := koch.Table(m.tree, m.maxDepth)
	items := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, depthItem{row: r})
	}
	m.l.SetItems(items)
}

func statusLine(depth, maxDepth int, q koch.Data) string {
	return fmt.Sprintf("n=%d/%d  segments=%d  perimeter=%.6f  area=%.6f", depth, maxDepth, q.Segments, q.Perimeter, q.Area)
}
