// Package debug serves the local introspection endpoint: metrics, health and the
// published pet view. Handlers only read atomically published state
package debug

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/weatherpets/app"
	"github.com/lixenwraith/weatherpets/geo"
	"github.com/lixenwraith/weatherpets/logging"
	"github.com/lixenwraith/weatherpets/status"
)

const shutdownTimeout = 5 * time.Second

// Source is the read side of the app exposed to HTTP handlers
type Source interface {
	Snapshot() *app.View
	GeoState() geo.State
}

// Config configures a Server
type Config struct {
	Addr    string
	Source  Source
	Metrics *status.Registry
	RunID   string
	Logger  logging.Logger
}

// Server is the debug HTTP server
type Server struct {
	addr    string
	runID   string
	source  Source
	started time.Time
	log     logging.Logger
	handler http.Handler
}

// NewServer builds the router; the listener is opened by Run
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = logging.Noop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = status.NewRegistry()
	}

	s := &Server{
		addr:    cfg.Addr,
		runID:   cfg.RunID,
		source:  cfg.Source,
		started: time.Now(),
		log:     cfg.Logger.With(logging.String("component", "debug.server")),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		newRegistryCollector(cfg.Metrics),
		collectors.NewGoCollector(),
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{DisableCompression: true}))
	r.Route("/pets", func(r chi.Router) {
		r.Get("/", s.handlePets)
		r.Get("/{id}", s.handlePet)
	})

	s.handler = gzhttp.GzipHandler(r)
	return s
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is canceled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "debug server listening", logging.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			s.log.Error(ctx, "debug server failed", logging.Err(err))
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.log.Warn(shutdownCtx, "debug server shutdown", logging.Err(err))
		return err
	}
	return nil
}

type healthResponse struct {
	Status string `json:"status"`
	RunID  string `json:"run_id,omitempty"`
	Uptime string `json:"uptime"`
	Geo    string `json:"geo"`
	Frame  bool   `json:"frame"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status: "ok",
		RunID:  s.runID,
		Uptime: time.Since(s.started).Truncate(time.Second).String(),
		Geo:    s.source.GeoState().String(),
		Frame:  s.source.Snapshot() != nil,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePets(w http.ResponseWriter, r *http.Request) {
	v := s.source.Snapshot()
	if v == nil {
		writeError(w, http.StatusServiceUnavailable, "no frame published yet")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handlePet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	v := s.source.Snapshot()
	if v == nil {
		writeError(w, http.StatusServiceUnavailable, "no frame published yet")
		return
	}
	for _, p := range v.Pets {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "pet not found: "+id)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, `{"error":"failed to marshal response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
