package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"kochflake/internal/config"
	"kochflake/internal/koch"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Config{SideLength: 1, MaxDepth: 3, DepthLimit: 5, ImageSize: 64}
	tree, err := koch.Build(cfg.SideLength, cfg.MaxDepth)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(tree, log, cfg)
}

func get(t *testing.T, s *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/health")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ok") {
		t.Fatalf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}
}

func TestStats(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/api/snowflake/stats?depth=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp statsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Depth != 1 || resp.Segments != 12 || math.Abs(resp.Perimeter-4) > 1e-9 {
		t.Fatalf("unexpected stats %+v", resp)
	}

	rec = get(t, s, "/api/snowflake/stats")
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Depth != 3 || resp.Segments != 3*64 || !resp.Leaf {
		t.Fatalf("expected default depth to be max depth, got %+v", resp)
	}
}

func TestStatsOverridesBuildFreshTree(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/snowflake/stats?side=2&max_depth=0&depth=4")
	var resp statsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Segments != 3 || resp.Perimeter != 6 {
		t.Fatalf("expected bare triangle of side 2, got %+v", resp)
	}
}

func TestBadParameters(t *testing.T) {
	s := newTestServer(t)
	for _, url := range []string{
		"/api/snowflake/stats?depth=x",
		"/api/snowflake/stats?side=-1",
		"/api/snowflake/stats?max_depth=-2",
		"/api/snowflake/stats?max_depth=6",
		"/api/snowflake/stats?side=1e200",
		"/api/snowflake/table?side=1e200",
		"/api/snowflake/segments.wkt?side=1e300&max_depth=1",
		"/api/snowflake.png?size=100000",
	} {
		rec := get(t, s, url)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", url, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "error") {
			t.Errorf("%s: expected json error body, got %s", url, rec.Body.String())
		}
	}
}

func TestWriteJSONEncodeFailure(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.writeJSON(rec, map[string]float64{"area": math.Inf(1)})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "internal error") {
		t.Fatalf("expected json error body, got %q", rec.Body.String())
	}
}

func TestTable(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/snowflake/table")
	var resp struct {
		Rows []koch.Row `json:"rows"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Rows) != 4 || resp.Rows[2].Segments != 48 {
		t.Fatalf("unexpected rows %+v", resp.Rows)
	}
}

func TestExports(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/snowflake/wkt?depth=0")
	if !strings.HasPrefix(rec.Body.String(), "POLYGON((") {
		t.Fatalf("unexpected wkt %q", rec.Body.String())
	}

	rec = get(t, s, "/api/snowflake/segments.wkt?depth=1")
	if body := rec.Body.String(); !strings.HasPrefix(body, "MULTILINESTRING((") || strings.Count(body, "(") != 13 {
		t.Fatalf("expected 12 line strings, got %q", body)
	}

	rec = get(t, s, "/api/snowflake/segments?depth=1")
	if ct := rec.Header().Get("Content-Type"); ct != "application/geo+json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"segment_count":12`) {
		t.Fatalf("expected segment count in properties: %s", rec.Body.String())
	}

	rec = get(t, s, "/api/snowflake.png?depth=2&size=32")
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Body.String(), "\x89PNG") {
		t.Fatalf("expected png, got %d", rec.Code)
	}
}

func TestConcurrentRequestsShareTree(t *testing.T) {
	s := newTestServer(t)
	var wg sync.WaitGroup
	fail := make(chan int, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(d int) {
			defer wg.Done()
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/snowflake/stats?depth="+string(rune('0'+d)), nil))
			if rec.Code != http.StatusOK {
				fail <- rec.Code
			}
		}(i % 4)
	}
	wg.Wait()
	close(fail)
	for code := range fail {
		t.Fatalf("unexpected status %d", code)
	}
}
