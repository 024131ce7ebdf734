package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/smartfarming/pulsemart/internal/assets"
	"github.com/smartfarming/pulsemart/internal/catalog"
	"github.com/smartfarming/pulsemart/internal/storefront"
)

// Config holds server configuration.
type Config struct {
	Port           int
	AllowAll       bool // allow all CORS origins (dev mode)
	RequestTimeout time.Duration
}

// Server serves the storefront listing page and its assets.
type Server struct {
	cfg        Config
	renderer   *storefront.Renderer
	catalog    catalog.Catalog
	log        zerolog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server rendering cat with renderer.
func New(cfg Config, renderer *storefront.Renderer, cat catalog.Catalog, log zerolog.Logger) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}
	s := &Server{
		cfg:      cfg,
		renderer: renderer,
		catalog:  cat,
		log:      log,
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleIndex)
	r.Method(http.MethodGet, "/style.css", assets.StylesheetHandler())
	r.Method(http.MethodGet, "/placeholder.svg", assets.Handler())

	return r
}

// handleIndex renders the listing page. The page is rebuilt on every request
// so the footer year follows the clock.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, s.catalog); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(buf.Bytes())
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Catalog returns the catalog being served.
func (s *Server) Catalog() catalog.Catalog { return s.catalog }

// Start begins listening on the configured port. It returns nil once
// Shutdown has been called, including when Shutdown ran first.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Int("cards", s.catalog.Len()).Msg("pulsemart listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server. It is safe to call from another
// goroutine at any point relative to Start.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
