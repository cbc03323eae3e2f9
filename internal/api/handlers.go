package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"kochflake/internal/geom"
	"kochflake/internal/koch"
	"kochflake/internal/raster"
)

var errBadParam = errors.New("bad parameter")

// treeParams holds the tree a request works on and the depth it asks about.
type treeParams struct {
	tree     *koch.Node
	side     float64
	maxDepth int
	depth    int
}

// resolve picks the shared tree, or builds a fresh one when the request overrides side or
// max_depth. depth defaults to the tree's max depth.
func (s *Server) resolve(r *http.Request) (treeParams, error) {
	q := r.URL.Query()
	p := treeParams{tree: s.tree, side: s.cfg.SideLength, maxDepth: s.cfg.MaxDepth}

	custom := false
	if v := q.Get("side"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return p, fmt.Errorf("%w: side %q", errBadParam, v)
		}
		p.side = f
		custom = true
	}
	if v := q.Get("max_depth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("%w: max_depth %q", errBadParam, v)
		}
		if n > s.cfg.DepthLimit {
			return p, fmt.Errorf("%w: max_depth %d exceeds limit %d", errBadParam, n, s.cfg.DepthLimit)
		}
		p.maxDepth = n
		custom = true
	}
	if custom {
		if math.IsInf(koch.LimitArea(p.side), 0) {
			return p, fmt.Errorf("%w: side %g overflows the area", errBadParam, p.side)
		}
		t, err := koch.Build(p.side, p.maxDepth)
		if err != nil {
			return p, err
		}
		p.tree = t
	}

	p.depth = p.maxDepth
	if v := q.Get("depth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("%w: depth %q", errBadParam, v)
		}
		p.depth = n
	}
	return p, nil
}

func (s *Server) resolveOrFail(w http.ResponseWriter, r *http.Request) (treeParams, bool) {
	p, err := s.resolve(r)
	if err != nil {
		if errors.Is(err, errBadParam) || errors.Is(err, koch.ErrInvalidParameter) {
			jsonError(w, err.Error(), http.StatusBadRequest)
		} else {
			s.log.Error("resolve tree", "error", err)
			jsonError(w, "internal error", http.StatusInternalServerError)
		}
		return p, false
	}
	return p, true
}

type statsResponse struct {
	Side     float64 `json:"side"`
	MaxDepth int     `json:"max_depth"`
	Depth    int     `json:"depth"`
	koch.Data
	LimitArea float64 `json:"limit_area"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	p, ok := s.resolveOrFail(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, statsResponse{
		Side:      p.side,
		MaxDepth:  p.maxDepth,
		Depth:     p.depth,
		Data:      p.tree.Query(p.depth),
		LimitArea: koch.LimitArea(p.side),
	})
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	p, ok := s.resolveOrFail(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, map[string]any{
		"side":      p.side,
		"max_depth": p.maxDepth,
		"rows":      koch.Table(p.tree, p.maxDepth),
	})
}

func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	p, ok := s.resolveOrFail(w, r)
	if !ok {
		return
	}
	d := p.tree.Query(p.depth)
	w.Header().Set("Content-Type", "application/geo+json")
	err := geom.WriteGeoJSON(w, p.tree.Outline(p.depth), map[string]any{
		"depth":         p.depth,
		"segment_count": d.Segments,
		"perimeter":     d.Perimeter,
		"area":          d.Area,
	})
	if err != nil {
		s.log.Error("write geojson", "error", err)
	}
}

func (s *Server) handleWKT(w http.ResponseWriter, r *http.Request) {
	p, ok := s.resolveOrFail(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(geom.FormatWKT(p.tree.Outline(p.depth))))
}

func (s *Server) handleSegmentsWKT(w http.ResponseWriter, r *http.Request) {
	p, ok := s.resolveOrFail(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(geom.MultiLineStringWKT(p.tree.SegmentSlice(p.depth))))
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	p, ok := s.resolveOrFail(w, r)
	if !ok {
		return
	}
	size := s.cfg.ImageSize
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > s.cfg.ImageSize {
			jsonError(w, fmt.Sprintf("size must be between 1 and %d", s.cfg.ImageSize), http.StatusBadRequest)
			return
		}
		size = n
	}
	w.Header().Set("Content-Type", "image/png")
	if err := raster.EncodePNG(w, p.tree.Outline(p.depth), size); err != nil {
		s.log.Error("encode png", "error", err)
	}
}
