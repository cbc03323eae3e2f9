package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"kochflake/internal/koch"
)

func rows(t *testing.T) []koch.Row {
	t.Helper()
	root, err := koch.Build(1, 2)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return koch.Table(root, 2)
}

func TestText(t *testing.T) {
	out := Text(rows(t))
	for _, want := range []string{"Segment Count", "Perimeter", "3.000000", "4.000000", "48"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q:\n%s", want, out)
		}
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, rows(t)); err != nil {
		t.Fatalf("csv: %v", err)
	}
	recs, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(recs))
	}
	if recs[0][1] != "segment_count" || recs[2][1] != "12" || recs[3][1] != "48" {
		t.Fatalf("unexpected records %v", recs)
	}
}

func TestCells(t *testing.T) {
	c := Cells(koch.Row{Depth: 1, Data: koch.Data{Segments: 12, Perimeter: 4, Area: 0.5}})
	if strings.Join(c, "|") != "1|12|4.000000|0.500000" {
		t.Fatalf("unexpected cells %v", c)
	}
}
