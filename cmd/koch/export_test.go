package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kochflake/internal/config"
	"kochflake/internal/koch"
)

func TestExport(t *testing.T) {
	tree, err := koch.Build(1, 2)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	cases := map[string]string{
		"table":     "Segment Count",
		"csv":       "n,segment_count,perimeter,area",
		"wkt":       "POLYGON((",
		"wkt-lines": "MULTILINESTRING((",
		"geojson":   `"segment_count":12`,
		"png":       "\x89PNG",
	}
	for format, want := range cases {
		var buf bytes.Buffer
		if err := export(&buf, format, tree, 1, 32); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if !strings.Contains(buf.String(), want) {
			t.Errorf("%s: expected output to contain %q", format, want)
		}
	}
	if err := export(&bytes.Buffer{}, "svg", tree, 1, 32); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestExportLinesMatchQuery(t *testing.T) {
	tree, err := koch.Build(1, 3)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var buf bytes.Buffer
	if err := export(&buf, "wkt-lines", tree, 2, 32); err != nil {
		t.Fatalf("export: %v", err)
	}
	if got, want := strings.Count(buf.String(), "("), tree.Query(2).Segments+1; got != want {
		t.Fatalf("expected %d parens, got %d", want, got)
	}
}

func TestApplyArgs(t *testing.T) {
	base := config.Config{SideLength: 1, MaxDepth: 5, DepthLimit: 9, ImageSize: 64}

	cfg, err := applyArgs(base, []string{"2.5", "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SideLength != 2.5 || cfg.MaxDepth != 3 {
		t.Fatalf("expected side 2.5 depth 3, got %v %d", cfg.SideLength, cfg.MaxDepth)
	}

	for _, args := range [][]string{{"x"}, {"1", "y"}, {"1", "2", "3"}} {
		if _, err := applyArgs(base, args); !errors.Is(err, errArgs) {
			t.Errorf("%v: expected errArgs, got %v", args, err)
		}
	}

	if _, err := applyArgs(base, []string{"1", "10"}); err == nil {
		t.Fatalf("expected depth above the limit to fail validation")
	}
	lax := base
	lax.DepthLimit = 20
	if _, err := applyArgs(lax, nil); err == nil {
		t.Fatalf("expected oversized depth limit to fail validation")
	}
	if _, err := applyArgs(base, []string{"1e200"}); err == nil {
		t.Fatalf("expected overflowing side to fail validation")
	}
}

func TestWriteOutputFile(t *testing.T) {
	tree, err := koch.Build(1, 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	path := filepath.Join(t.TempDir(), "flake.png")
	if err := writeOutput(path, "png", tree, 1, 16); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Fatalf("expected png file")
	}

	if err := writeOutput(filepath.Join(t.TempDir(), "missing", "x.wkt"), "wkt", tree, 1, 16); err == nil {
		t.Fatalf("expected error creating file in a missing directory")
	}
	if err := writeOutput(filepath.Join(t.TempDir(), "x.svg"), "svg", tree, 1, 16); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
