package tui

import (
	table "github.com/charmbracelet/bubbles/table"

	"kochflake/internal/koch"
	"kochflake/internal/report"
)

// refreshStats rebuilds the stats table from the current tree.
func (m *Model) refreshStats() {
	widths := []int{4, 14, 14, 14}
	cols := make([]table.Column, 0, len(report.Headers))
	for i, h := range report.Headers {
		cols = append(cols, table.Column{Title: h, Width: widths[i]})
	}
	rows := make([]table.Row, 0, m.maxDepth+1)
	for _, r := range koch.Table(m.tree, m.maxDepth) {
		rows = append(rows, table.Row(report.Cells(r)))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
