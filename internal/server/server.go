// Package server hosts the built browser assets.
//
// It serves files from a build directory with long-lived caching for static
// assets and no caching for HTML, falls back to index.html for every path it
// cannot resolve so client-side routes work on reload, and answers panics
// with a 500 carrying index.html. Requests get an X-Request-ID, an access log
// line and Prometheus metrics exposed at /metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	errs "github.com/matzehuels/blogscope/pkg/errors"
)

const (
	indexFile       = "index.html"
	shutdownTimeout = 10 * time.Second
	readTimeout     = 15 * time.Second
)

// Options configures a [Server].
type Options struct {
	// Dir is the build directory. Ignored when FS is set.
	Dir string

	// FS overrides Dir with an arbitrary filesystem.
	FS fs.FS

	// Port is the TCP port Run listens on.
	Port int

	// APIOrigin is added to the Content-Security-Policy connect-src.
	APIOrigin string

	Logger *log.Logger
}

// Server is the static host.
type Server struct {
	opts     Options
	assets   fs.FS
	logger   *log.Logger
	registry *prometheus.Registry
	handler  http.Handler
}

// New validates the asset root and builds the handler chain. The asset root
// must contain index.html.
func New(opts Options) (*Server, error) {
	assets := opts.FS
	if assets == nil {
		if opts.Dir == "" {
			return nil, errs.New(errs.ErrCodeInvalidConfig, "no asset directory configured")
		}
		info, err := os.Stat(opts.Dir)
		if err != nil || !info.IsDir() {
			return nil, errs.New(errs.ErrCodeInvalidConfig, "asset directory %s does not exist", opts.Dir)
		}
		assets = os.DirFS(opts.Dir)
	}
	if _, err := fs.Stat(assets, indexFile); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "asset root has no %s", indexFile)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		opts:     opts,
		assets:   assets,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}
	s.handler = s.routes()
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) routes() http.Handler {
	m := newMetrics(s.registry)

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(m.middleware)
	r.Use(s.accessLog)
	r.Use(s.recoverer)
	r.Use(securityHeaders(s.opts.APIOrigin))
	r.Use(middleware.Compress(5))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", noCache)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.NotFound(s.serveAsset)
	r.MethodNotAllowed(s.serveAsset)
	r.Get("/*", s.serveAsset)
	return r
}

// Run listens on the configured port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.opts.Port))
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "addr", ln.Addr().String(), "dir", s.opts.Dir)
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
