// Package report formats per-depth snowflake tables for terminals and files.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"kochflake/internal/koch"
)

var Headers = []string{"n", "Segment Count", "Perimeter", "Area"}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#243141"))
)

// Cells returns the printable columns of r.
func Cells(r koch.Row) []string {
	return []string{
		strconv.Itoa(r.Depth),
		strconv.Itoa(r.Segments),
		strconv.FormatFloat(r.Perimeter, 'f', 6, 64),
		strconv.FormatFloat(r.Area, 'f', 6, 64),
	}
}

// Text renders rows as a bordered table.
func Text(rows []koch.Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(Headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range rows {
		t.Row(Cells(r)...)
	}
	return t.String()
}

// CSV writes rows with a header line.
func CSV(w io.Writer, rows []koch.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"n", "segment_count", "perimeter", "area"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Depth),
			strconv.Itoa(r.Segments),
			strconv.FormatFloat(r.Perimeter, 'g', -1, 64),
			strconv.FormatFloat(r.Area, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
