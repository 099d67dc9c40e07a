package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/vector76/mdview/internal/config"
)

// ContentFetcher retrieves the text of the document at url.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// MarkdownRenderer converts Markdown text into an HTML fragment.
type MarkdownRenderer interface {
	Render(ctx context.Context, text string) (string, error)
}

// Config holds the server configuration.
type Config struct {
	Port       int
	DefaultURL string
	Logger     zerolog.Logger
}

// Server is the HTTP server that renders remote Markdown documents.
type Server struct {
	Router   *chi.Mux
	fetcher  ContentFetcher
	renderer MarkdownRenderer
	config   Config
}

// New creates a new Server with the given config and collaborators.
func New(cfg Config, f ContentFetcher, r MarkdownRenderer) (*Server, error) {
	if f == nil {
		return nil, fmt.Errorf("content fetcher must not be nil")
	}
	if r == nil {
		return nil, fmt.Errorf("markdown renderer must not be nil")
	}
	if cfg.DefaultURL == "" {
		cfg.DefaultURL = config.DefaultDocumentURL
	}

	srv := &Server{
		Router:   chi.NewRouter(),
		fetcher:  f,
		renderer: r,
		config:   cfg,
	}

	srv.Router.Use(hlog.NewHandler(cfg.Logger))
	srv.Router.Use(hlog.RequestIDHandler("req_id", ""))
	srv.Router.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	srv.Router.Use(middleware.Recoverer)

	// Every path names a document to render.
	srv.Router.Get("/*", srv.handleRender)

	return srv, nil
}

// ListenAddr returns the address the server should listen on.
func (s *Server) ListenAddr() string {
	return fmt.Sprintf(":%d", s.config.Port)
}

// Document fetches target, renders it and returns the complete HTML page.
func (s *Server) Document(ctx context.Context, target string) ([]byte, error) {
	text, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, err
	}
	html, err := s.renderer.Render(ctx, text)
	if err != nil {
		return nil, err
	}
	return buildPage(html)
}
