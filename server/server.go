// Package server exposes documents, quotes, settings and notices over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/qotd/pkg/domain"
	"github.com/umputun/qotd/pkg/notify"
)

//go:generate moq -out mocks/documents.go -pkg mocks -skip-ensure -fmt goimports . DocumentStore
//go:generate moq -out mocks/resolver.go -pkg mocks -skip-ensure -fmt goimports . Resolver
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings
//go:generate moq -out mocks/notices.go -pkg mocks -skip-ensure -fmt goimports . Notices
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History

// Server represents HTTP server instance
type Server struct {
	Params
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Params holds server dependencies and settings
type Params struct {
	Listen    string
	Timeout   time.Duration
	BaseURL   string
	RSSLimit  int
	Documents DocumentStore
	Resolver  Resolver
	Settings  Settings
	Notices   Notices
	History   History
}

// DocumentStore provides document persistence
type DocumentStore interface {
	GetDocument(ctx context.Context, id string) (*domain.Document, error)
	ListDocuments(ctx context.Context) ([]domain.Document, error)
	SaveDocument(ctx context.Context, doc *domain.Document) error
	DeleteDocument(ctx context.Context, id string) error
}

// Resolver runs placeholder passes and on-demand insertions
type Resolver interface {
	ResolveDocument(ctx context.Context, id string) (bool, error)
	InsertQuote(ctx context.Context, id string, kind domain.QuoteKind, selection string) (string, error)
	Quote(ctx context.Context, kind domain.QuoteKind, selection string) (domain.Quote, string)
	Edit(ctx context.Context, id string, fn func(ctx context.Context) error) error
}

// Settings provides user-editable settings
type Settings interface {
	Format() domain.FormatConfig
	Placeholders() domain.Placeholders
	FilterValues() []string
	DescribeFilters(sep string) string
	UpdateFormat(ctx context.Context, cfg domain.FormatConfig) error
	UpdateQuoteTemplate(ctx context.Context, tmpl string) error
	UpdateTagTemplate(ctx context.Context, tmpl string) error
	SetPlaceholders(ctx context.Context, p domain.Placeholders) error
	ToggleFilter(ctx context.Context, category string) ([]string, error)
	ClearFilters(ctx context.Context) error
}

// Notices provides recent user notices
type Notices interface {
	Recent(limit int) []notify.Notice
}

// History provides inserted quotes
type History interface {
	RecentInsertions(ctx context.Context, limit int) ([]domain.Insertion, error)
}

// New initializes a new server instance
func New(p Params, version string, debug bool) *Server {
	if p.RSSLimit <= 0 {
		p.RSSLimit = 50
	}
	if p.Timeout <= 0 {
		p.Timeout = 30 * time.Second
	}
	s := &Server{
		Params:  p,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              s.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.Timeout,
		WriteTimeout:      s.Timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("qotd", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /documents", s.listDocumentsHandler)
		r.HandleFunc("POST /documents", s.createDocumentHandler)
		r.HandleFunc("GET /documents/{id}", s.getDocumentHandler)
		r.HandleFunc("PUT /documents/{id}", s.updateDocumentHandler)
		r.HandleFunc("DELETE /documents/{id}", s.deleteDocumentHandler)
		r.HandleFunc("POST /documents/{id}/resolve", s.resolveDocumentHandler)
		r.HandleFunc("POST /documents/{id}/quote", s.insertQuoteHandler)

		r.HandleFunc("GET /quote", s.quoteHandler)

		r.HandleFunc("GET /settings/format", s.getFormatHandler)
		r.HandleFunc("PUT /settings/format", s.updateFormatHandler)
		r.HandleFunc("PUT /settings/format/quote", s.updateQuoteTemplateHandler)
		r.HandleFunc("PUT /settings/format/tag", s.updateTagTemplateHandler)
		r.HandleFunc("GET /settings/placeholders", s.getPlaceholdersHandler)
		r.HandleFunc("PUT /settings/placeholders", s.updatePlaceholdersHandler)

		r.HandleFunc("GET /filters", s.getFiltersHandler)
		r.HandleFunc("POST /filters/toggle", s.toggleFilterHandler)
		r.HandleFunc("DELETE /filters", s.clearFiltersHandler)
		r.HandleFunc("GET /filters/known", s.knownFiltersHandler)

		r.HandleFunc("GET /notices", s.noticesHandler)
	})

	s.router.HandleFunc("GET /rss/quotes", s.rssHandler)
	s.router.Handle("GET /metrics", promhttp.Handler())
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
