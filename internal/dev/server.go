package dev

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Triex/0x1/internal/config"
)

// LiveReloadPath is the WebSocket endpoint browsers connect to.
const LiveReloadPath = "/_0x1/livereload"

// MetricsPath serves Prometheus metrics for the dev server.
const MetricsPath = "/_0x1/metrics"

// ServerConfig configures the dev server.
type ServerConfig struct {
	// Project is the loaded project configuration.
	Project *config.Config

	// Root is the project directory.
	Root string

	// App serves application routes. When nil only static files and
	// tooling endpoints are mounted.
	App http.Handler

	// Rebuild is invoked after source changes settle. A returned error
	// is pushed to the browser overlay instead of reloading.
	Rebuild func() error

	// Registry is the Prometheus registry for dev-server metrics.
	// Default: a fresh registry.
	Registry *prometheus.Registry
}

// Server is the hot-reload development server.
type Server struct {
	config  ServerConfig
	reload  *ReloadServer
	watcher *Watcher
	mux     *chi.Mux

	registry *prometheus.Registry
	rebuilds prometheus.Counter
	failures prometheus.Counter
}

// NewServer assembles the dev server: chi mux, live-reload endpoint,
// metrics endpoint, static files, and the application handler.
func NewServer(cfg ServerConfig) *Server {
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	factory := promauto.With(cfg.Registry)

	s := &Server{
		config: cfg,
		reload: NewReloadServer(),
		watcher: NewWatcher(WatcherConfig{
			Paths: []string{cfg.Root},
		}),
		registry: cfg.Registry,
		rebuilds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "zerox1",
			Subsystem: "dev",
			Name:      "rebuilds_total",
			Help:      "Rebuilds triggered by file changes.",
		}),
		failures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "zerox1",
			Subsystem: "dev",
			Name:      "rebuild_failures_total",
			Help:      "Rebuilds that failed and raised the error overlay.",
		}),
	}

	mux := chi.NewRouter()
	mux.Use(chimw.Logger)
	mux.Use(chimw.Recoverer)
	mux.Get(LiveReloadPath, s.reload.ServeHTTP)
	mux.Method(http.MethodGet, MetricsPath, promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))

	if cfg.Project != nil && cfg.Project.StaticDir != "" {
		staticDir := cfg.Root + "/" + cfg.Project.StaticDir
		if _, err := os.Stat(staticDir); err == nil {
			fs := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
			mux.Handle("/static/*", fs)
		}
	}

	if cfg.App != nil {
		mux.Handle("/*", cfg.App)
	}

	s.mux = mux
	return s
}

// Handler returns the dev server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Reload exposes the reload broadcaster.
func (s *Server) Reload() *ReloadServer {
	return s.reload
}

// Run starts the watcher and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.watcher.OnChange(s.onChange)

	go func() {
		if err := s.watcher.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("0x1 dev: watcher stopped: %v", err)
		}
	}()

	addr := "localhost:3000"
	if s.config.Project != nil {
		addr = s.config.Project.Addr()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("0x1 dev: serving on http://%s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("dev server: %w", err)
	}
	return nil
}

// onChange reacts to one settled file change: CSS swaps in place, Go
// changes rebuild and reload, anything else reloads.
func (s *Server) onChange(change Change) {
	switch change.Type {
	case ChangeCSS:
		log.Printf("0x1 dev: css changed: %s", change.Path)
		s.reload.NotifyCSS(change.Path)

	case ChangeGo:
		log.Printf("0x1 dev: source changed: %s", change.Path)
		s.rebuilds.Inc()
		if s.config.Rebuild != nil {
			if err := s.config.Rebuild(); err != nil {
				s.failures.Inc()
				log.Printf("0x1 dev: rebuild failed: %v", err)
				s.reload.NotifyError(err.Error())
				return
			}
		}
		s.reload.ClearError()
		s.reload.NotifyReload()

	default:
		log.Printf("0x1 dev: asset changed: %s", change.Path)
		s.reload.NotifyReload()
	}
}
