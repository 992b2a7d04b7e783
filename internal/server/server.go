// Package server serves the GenAI site over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/openvinotoolkit/genai-site/internal/homepage"
	"github.com/openvinotoolkit/genai-site/internal/render"
)

const immutableCache = "public, max-age=31536000, immutable"

// Config holds the server settings.
type Config struct {
	Addr string

	// RateLimit and RateBurst size the token bucket shared by every
	// request for site content.
	RateLimit float64
	RateBurst int

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	// TracerProvider creates request spans. It defaults to the global
	// provider.
	TracerProvider trace.TracerProvider
}

// Server serves the homepage, its compiled stylesheets and the static
// assets.
type Server struct {
	cfg     Config
	site    *homepage.Site
	home    homepage.HomePage
	logger  *slog.Logger
	limiter *rate.Limiter
	tracer  trace.Tracer
	handler http.Handler
}

// New returns a Server for site. It fails if the homepage can't be
// assembled.
func New(site *homepage.Site, logger *slog.Logger, cfg Config) (*Server, error) {
	home, err := homepage.NewHomePage(site)
	if err != nil {
		return nil, fmt.Errorf("error building homepage: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = 5 * time.Second
	}
	provider := cfg.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	s := &Server{
		cfg:     cfg,
		site:    site,
		home:    home,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		tracer:  provider.Tracer("github.com/openvinotoolkit/genai-site/internal/server"),
	}
	s.handler = s.routes()
	return s, nil
}

// Handler returns the server's HTTP handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	content := http.NewServeMux()
	content.HandleFunc("GET /{$}", s.handleHome)
	content.HandleFunc("GET /assets/css/{file}", s.handleModuleCSS)
	content.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(s.site.StaticFS())))

	root := http.NewServeMux()
	root.HandleFunc("GET /healthz", handleHealth)
	limited := s.rateLimit(content)
	if base := s.site.BaseURL; base != "/" {
		root.Handle(base, http.StripPrefix(strings.TrimSuffix(base, "/"), limited))
	} else {
		root.Handle("/", limited)
	}
	return s.requestID(s.traceRequests(s.accessLog(root)))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := render.Render(r.Context(), &buf, s.site, s.home)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
	if _, err := buf.WriteTo(w); err != nil {
		render.Logger(r.Context()).ErrorContext(r.Context(), "error writing response", "error", err)
	}
}

func (s *Server) handleModuleCSS(w http.ResponseWriter, r *http.Request) {
	mod, ok := s.site.Styles.ByFileName(r.PathValue("file"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", immutableCache)
	http.ServeContent(w, r, mod.FileName(), time.Time{}, strings.NewReader(mod.CSS()))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// ListenAndServe listens on the configured address and serves until ctx
// is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %q: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is done, then shuts down, giving
// in-flight requests up to ShutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(listener)
	}()
	s.logger.InfoContext(ctx, "serving", "addr", listener.Addr().String(), "base_url", s.site.BaseURL)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		s.logger.InfoContext(ctx, "shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
