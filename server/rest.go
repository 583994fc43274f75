package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/qotd/pkg/domain"
	"github.com/umputun/qotd/pkg/filter"
	"github.com/umputun/qotd/pkg/repository"
	"github.com/umputun/qotd/pkg/resolver"
	"github.com/umputun/qotd/pkg/settings"
)

// documentRequest is the body of document create and update
type documentRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// documentResponse is a document as returned by the API
type documentResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// quoteRequest is the body of an on-demand insertion
type quoteRequest struct {
	Kind      domain.QuoteKind `json:"kind"`
	Selection string           `json:"selection"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":       "ok",
		"version":      s.version,
		"time":         time.Now().UTC(),
		"placeholders": s.Settings.Placeholders(),
		"filter":       s.Settings.DescribeFilters(", "),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

func (s *Server) listDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	docs, err := s.Documents.ListDocuments(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to list documents: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	res := make([]documentResponse, 0, len(docs))
	for i := range docs {
		res = append(res, toDocumentResponse(&docs[i]))
	}
	RenderJSON(w, r, http.StatusOK, res)
}

func (s *Server) createDocumentHandler(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	doc := &domain.Document{ID: uuid.New().String(), Title: req.Title, Text: req.Text}
	if err := s.Documents.SaveDocument(r.Context(), doc); err != nil {
		lgr.Printf("[ERROR] failed to create document: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	lgr.Printf("[INFO] document %s created", doc.ID)
	RenderJSON(w, r, http.StatusCreated, toDocumentResponse(doc))
}

func (s *Server) getDocumentHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Documents.GetDocument(r.Context(), r.PathValue("id"))
	if err != nil {
		s.renderStoreError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, toDocumentResponse(doc))
}

// updateDocumentHandler replaces title and text, refused with 409 while a pass runs on the document
func (s *Server) updateDocumentHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	var doc *domain.Document
	err := s.Resolver.Edit(r.Context(), id, func(ctx context.Context) error {
		var err error
		if doc, err = s.Documents.GetDocument(ctx, id); err != nil {
			return err
		}
		doc.Title, doc.Text = req.Title, req.Text
		if err := s.Documents.SaveDocument(ctx, doc); err != nil {
			return fmt.Errorf("update document %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		s.renderStoreError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, toDocumentResponse(doc))
}

func (s *Server) deleteDocumentHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := s.Resolver.Edit(r.Context(), id, func(ctx context.Context) error {
		return s.Documents.DeleteDocument(ctx, id)
	})
	if err != nil {
		s.renderStoreError(w, r, err)
		return
	}
	lgr.Printf("[INFO] document %s deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

// resolveDocumentHandler runs a pass over the document right away
func (s *Server) resolveDocumentHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	changed, err := s.Resolver.ResolveDocument(r.Context(), id)
	if err != nil {
		s.renderStoreError(w, r, err)
		return
	}

	doc, err := s.Documents.GetDocument(r.Context(), id)
	if err != nil {
		s.renderStoreError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"changed": changed, "text": doc.Text})
}

// insertQuoteHandler appends a quote of the requested kind to the document
func (s *Server) insertQuoteHandler(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	kind, err := quoteKind(req.Kind)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	text, err := s.Resolver.InsertQuote(r.Context(), r.PathValue("id"), kind, req.Selection)
	if err != nil {
		s.renderStoreError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"text": text})
}

// quoteHandler fetches and renders a quote without touching documents
func (s *Server) quoteHandler(w http.ResponseWriter, r *http.Request) {
	kind, err := quoteKind(domain.QuoteKind(r.URL.Query().Get("kind")))
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	q, text := s.Resolver.Quote(r.Context(), kind, r.URL.Query().Get("selection"))
	RenderJSON(w, r, http.StatusOK, map[string]any{"quote": q, "text": text, "fallback": q.IsFallback()})
}

func (s *Server) getFormatHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, s.Settings.Format())
}

// updateFormatHandler applies fields present in the body over the current format
func (s *Server) updateFormatHandler(w http.ResponseWriter, r *http.Request) {
	cfg := s.Settings.Format()
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if err := s.Settings.UpdateFormat(r.Context(), cfg); err != nil {
		s.renderSettingsError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, s.Settings.Format())
}

func (s *Server) updateQuoteTemplateHandler(w http.ResponseWriter, r *http.Request) {
	s.updateTemplate(w, r, s.Settings.UpdateQuoteTemplate)
}

func (s *Server) updateTagTemplateHandler(w http.ResponseWriter, r *http.Request) {
	s.updateTemplate(w, r, s.Settings.UpdateTagTemplate)
}

// updateTemplate applies a single template from {"template": ...} body with the given setter
func (s *Server) updateTemplate(w http.ResponseWriter, r *http.Request, set func(ctx context.Context, tmpl string) error) {
	var req struct {
		Template string `json:"template"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if err := set(r.Context(), req.Template); err != nil {
		s.renderSettingsError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, s.Settings.Format())
}

func (s *Server) getPlaceholdersHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, s.Settings.Placeholders())
}

func (s *Server) updatePlaceholdersHandler(w http.ResponseWriter, r *http.Request) {
	p := s.Settings.Placeholders()
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if err := s.Settings.SetPlaceholders(r.Context(), p); err != nil {
		s.renderSettingsError(w, r, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, s.Settings.Placeholders())
}

func (s *Server) getFiltersHandler(w http.ResponseWriter, r *http.Request) {
	s.renderFilters(w, r, s.Settings.FilterValues())
}

func (s *Server) toggleFilterHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		RenderError(w, r, errors.New("category is required"), http.StatusBadRequest)
		return
	}

	values, err := s.Settings.ToggleFilter(r.Context(), req.Category)
	if err != nil {
		s.renderSettingsError(w, r, err)
		return
	}
	s.renderFilters(w, r, values)
}

func (s *Server) clearFiltersHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.Settings.ClearFilters(r.Context()); err != nil {
		s.renderSettingsError(w, r, err)
		return
	}
	s.renderFilters(w, r, []string{})
}

func (s *Server) knownFiltersHandler(w http.ResponseWriter, r *http.Request) {
	RenderJSON(w, r, http.StatusOK, append([]string{filter.None}, filter.Known()...))
}

func (s *Server) noticesHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			RenderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = n
	}
	RenderJSON(w, r, http.StatusOK, s.Notices.Recent(limit))
}

func (s *Server) renderFilters(w http.ResponseWriter, r *http.Request, values []string) {
	if values == nil {
		values = []string{}
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{
		"filters":     values,
		"description": s.Settings.DescribeFilters(", "),
	})
}

// renderStoreError maps document and resolver errors to status codes
func (s *Server) renderStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		RenderError(w, r, err, http.StatusNotFound)
	case errors.Is(err, resolver.ErrInFlight):
		RenderError(w, r, err, http.StatusConflict)
	default:
		lgr.Printf("[ERROR] request %s %s failed: %v", r.Method, r.URL.Path, err)
		RenderError(w, r, err, http.StatusInternalServerError)
	}
}

// renderSettingsError reports rejected edits as bad requests, the previous value stays active
func (s *Server) renderSettingsError(w http.ResponseWriter, r *http.Request, err error) {
	if settings.IsInvalid(err) {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	lgr.Printf("[ERROR] failed to update settings: %v", err)
	RenderError(w, r, err, http.StatusInternalServerError)
}

// quoteKind defaults empty kind to random and rejects unknown ones
func quoteKind(k domain.QuoteKind) (domain.QuoteKind, error) {
	if k == "" {
		return domain.QuoteKindRandom, nil
	}
	if !k.Valid() {
		return "", fmt.Errorf("unknown quote kind %q", k)
	}
	return k, nil
}

func toDocumentResponse(d *domain.Document) documentResponse {
	return documentResponse{ID: d.ID, Title: d.Title, Text: d.Text, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}
