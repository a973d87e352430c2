package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

const (
	maxRequestBytes = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// searchRequest is the body of POST /search. Layout rows may carry S and G
// markers; Start and Goal override them.
type searchRequest struct {
	Layout        []string  `json:"layout"`
	Start         []int     `json:"start,omitempty"`
	Goal          []int     `json:"goal,omitempty"`
	Obstacles     [][]int   `json:"obstacles,omitempty"`
	Clear         [][]int   `json:"clear,omitempty"`
	Motion        string    `json:"motion,omitempty"`
	Offsets       [][]int   `json:"offsets,omitempty"`
	Probabilities []float64 `json:"probabilities,omitempty"`
	Seed          int64     `json:"seed,omitempty"`
	Algorithm     string    `json:"algorithm,omitempty"`
	MaxVisits     int       `json:"max_visits,omitempty"`
	Render        bool      `json:"render,omitempty"`
}

// scenario maps the request onto the shared Scenario resolution.
func (req *searchRequest) scenario() *Scenario {
	sc := &Scenario{
		Layout:        strings.Join(req.Layout, "\n"),
		Start:         req.Start,
		Goal:          req.Goal,
		Obstacles:     req.Obstacles,
		Clear:         req.Clear,
		Motion:        req.Motion,
		Offsets:       req.Offsets,
		Probabilities: req.Probabilities,
		Seed:          req.Seed,
		MaxVisits:     req.MaxVisits,
	}
	if req.Algorithm != "" {
		sc.Algorithms = []string{req.Algorithm}
	}
	return sc
}

// searchResponse is the body returned by POST /search.
type searchResponse struct {
	ID        string   `json:"id"`
	Algorithm string   `json:"algorithm"`
	Found     bool     `json:"found"`
	Path      [][2]int `json:"path"`
	Cost      int      `json:"cost"`
	Visited   int      `json:"visited"`
	Added     int      `json:"added"`
	Rendered  []string `json:"rendered,omitempty"`
}

type errorResponse struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}

// newRouter builds the HTTP API.
//
//	GET  /healthz  liveness check
//	POST /search   run one search (A* by default)
func newRouter(logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/search", func(w http.ResponseWriter, req *http.Request) {
		handleSearch(w, req, logger)
	})

	return r
}

// requestLogger logs one line per request at debug level.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path,
				"status", ww.Status(), "elapsed", time.Since(start).Round(time.Microsecond))
		})
	}
}

func handleSearch(w http.ResponseWriter, r *http.Request, logger *log.Logger) {
	id := uuid.NewString()
	w.Header().Set("X-Run-ID", id)

	var req searchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{ID: id, Error: "decode request: " + err.Error()})
		return
	}
	if len(req.Layout) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{ID: id, Error: "layout is required"})
		return
	}

	s, err := req.scenario().build([]search.Algorithm{search.AlgorithmAStar})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{ID: id, Error: err.Error()})
		return
	}

	ctx := withLogger(r.Context(), logger.With("run", id))
	t, err := runSearch(ctx, s, s.algos[0])
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{ID: id, Error: err.Error()})
		return
	}

	resp := searchResponse{
		ID:        id,
		Algorithm: t.res.Algorithm.String(),
		Found:     t.res.Found,
		Path:      make([][2]int, len(t.res.Path)),
		Cost:      t.res.Cost,
		Visited:   t.res.Visited,
		Added:     t.res.Added,
	}
	for i, c := range t.res.Path {
		resp.Path[i] = [2]int{c.Row, c.Col}
	}
	if req.Render {
		for _, row := range s.grid.Render(t.res.Path) {
			resp.Rendered = append(resp.Rendered, string(row))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// statusFor maps a search error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, search.ErrStartUnset), errors.Is(err, search.ErrGoalUnset),
		errors.Is(err, search.ErrStartInvalid), errors.Is(err, search.ErrGoalInvalid),
		errors.Is(err, search.ErrOptionViolation), errors.Is(err, gridgraph.ErrInvalidPlacement):
		return http.StatusBadRequest
	case errors.Is(err, search.ErrVisitLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// serve runs the API on ln until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, ln net.Listener, logger *log.Logger) error {
	srv := &http.Server{
		Handler:           newRouter(logger),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search engine over HTTP",
		Long: `Serve a JSON API:

  GET  /healthz   liveness check
  POST /search    {"layout": [...], "algorithm": "bfs", "motion": "8", ...}

Each search gets a run ID, returned in the body and the X-Run-ID header.`,
		Example: `  gridsearch serve --addr :8080`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			return serve(cmd.Context(), ln, loggerFromContext(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
