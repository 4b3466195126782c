// Package ssr serves server-rendered 0x1 pages over HTTP.
//
// It is the glue between a component returning a node tree and the
// response body: chi-mountable handlers, a render-duration histogram and
// error counter, and an OpenTelemetry span per render.
package ssr

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Triex/0x1/pkg/render"
	"github.com/Triex/0x1/pkg/vdom"
)

// PageFunc produces the node tree for one request.
type PageFunc func(r *http.Request) *vdom.VNode

// Config configures the SSR server glue.
type Config struct {
	// Dev selects the development error policy for contained panics.
	Dev bool

	// Namespace is the metrics namespace (default "zerox1").
	Namespace string

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer

	// TracerName names the tracer (default "0x1").
	TracerName string

	// Page, when non-nil, wraps each rendered body in a full HTML
	// document.
	Page func(r *http.Request, body *vdom.VNode) render.PageData
}

// Option configures Config.
type Option func(*Config)

// WithDev sets the development error policy.
func WithDev(dev bool) Option {
	return func(c *Config) { c.Dev = dev }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(reg prometheus.Registerer) Option {
	return func(c *Config) { c.Registry = reg }
}

// WithNamespace sets the metrics namespace.
func WithNamespace(ns string) Option {
	return func(c *Config) { c.Namespace = ns }
}

// WithPage sets the document wrapper applied around every body.
func WithPage(page func(r *http.Request, body *vdom.VNode) render.PageData) Option {
	return func(c *Config) { c.Page = page }
}

// Server renders component pages into HTTP responses.
type Server struct {
	config   Config
	renderer *render.Renderer
	tracer   trace.Tracer

	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
}

// New creates the SSR glue with the given options.
func New(opts ...Option) *Server {
	config := Config{
		Namespace:  "zerox1",
		Registry:   prometheus.DefaultRegisterer,
		TracerName: "0x1",
	}
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)
	return &Server{
		config:   config,
		renderer: render.NewRenderer(render.Config{Dev: config.Dev}),
		tracer:   otel.Tracer(config.TracerName),
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: "ssr",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering a page to HTML.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: "ssr",
			Name:      "render_errors_total",
			Help:      "Renders that failed and returned an error response.",
		}, []string{"route"}),
	}
}

// Handler returns an http.Handler that renders page for each request.
func (s *Server) Handler(page PageFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := routePattern(r)
		start := time.Now()

		ctx, span := s.tracer.Start(r.Context(), "ssr.render",
			trace.WithAttributes(attribute.String("http.route", route)))
		defer span.End()

		body := page(r.WithContext(ctx))

		var html string
		var err error
		if s.config.Page != nil {
			html, err = s.renderer.RenderPageToString(s.config.Page(r, body))
		} else {
			html, err = s.renderer.RenderToString(body)
		}

		s.renderDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())

		if err != nil {
			s.renderErrors.WithLabelValues(route).Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, "render failed")
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}

		span.SetStatus(codes.Ok, "")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	})
}

// Routes mounts page handlers on a chi router, one per pattern.
func (s *Server) Routes(r chi.Router, pages map[string]PageFunc) {
	for pattern, page := range pages {
		r.Method(http.MethodGet, pattern, s.Handler(page))
	}
}

// routePattern prefers the chi route pattern over the raw path so metric
// labels stay low-cardinality.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
