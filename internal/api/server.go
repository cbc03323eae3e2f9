package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"kochflake/internal/config"
	"kochflake/internal/koch"
)

// Server is the HTTP API over a snowflake tree.
type Server struct {
	router chi.Router
	tree   *koch.Node
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates the server around a tree built from cfg.SideLength and cfg.MaxDepth.
// The tree is shared read-only by every request.
func NewServer(tree *koch.Node, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		tree: tree,
		log:  log,
		cfg:  cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api/snowflake", func(r chi.Router) {
		r.Get("/stats", s.handleStats)
		r.Get("/table", s.handleTable)
		r.Get("/segments", s.handleSegments)
		r.Get("/segments.wkt", s.handleSegmentsWKT)
		r.Get("/wkt", s.handleWKT)
	})
	r.Get("/api/snowflake.png", s.handlePNG)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// writeJSON marshals v before writing headers. Encoding failures are logged and answered
// with a 500.
func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encode response", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(append(b, '\n'))
}
