// Package resolver replaces placeholder tokens in document text with freshly fetched quotes.
//
// A pass scans the text for the random placeholder first, then for the filtered one, and
// replaces occurrences left to right, one fetch per occurrence, paced by a Pacer. Passes are
// guarded per document: a trigger arriving while a pass for the same document is in flight
// is dropped, never queued.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/qotd/pkg/domain"
	"github.com/umputun/qotd/pkg/format"
	"github.com/umputun/qotd/pkg/metrics"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings
//go:generate moq -out mocks/documents.go -pkg mocks -skip-ensure -fmt goimports . DocumentStore
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . HistoryRecorder

// ErrInFlight is returned by explicit document edits while a pass for the document runs
var ErrInFlight = errors.New("resolution in progress")

// Source fetches quotes, it never fails and returns a fallback quote instead
type Source interface {
	Fetch(ctx context.Context, categories []string) domain.Quote
	FetchBySelection(ctx context.Context, selection string) domain.Quote
}

// Settings provides the current format, placeholders and filter
type Settings interface {
	Format() domain.FormatConfig
	Placeholders() domain.Placeholders
	Filters() []string
}

// DocumentStore reads and writes documents
type DocumentStore interface {
	GetDocument(ctx context.Context, id string) (*domain.Document, error)
	WriteDocumentText(ctx context.Context, id, text string) error
}

// HistoryRecorder keeps inserted quotes
type HistoryRecorder interface {
	AddInsertion(ctx context.Context, ins *domain.Insertion) error
}

// Params for New
type Params struct {
	Source    Source
	Settings  Settings
	Documents DocumentStore
	History   HistoryRecorder // optional
	Pacer     Pacer           // optional, no pacing if nil
	Flight    *Flight         // optional, allows sharing the guard
}

// Resolver resolves placeholders in documents
type Resolver struct {
	source    Source
	settings  Settings
	documents DocumentStore
	history   HistoryRecorder
	pacer     Pacer
	flight    *Flight
}

// New makes a resolver
func New(p Params) *Resolver {
	if p.Pacer == nil {
		p.Pacer = NoPacer{}
	}
	if p.Flight == nil {
		p.Flight = NewFlight()
	}
	return &Resolver{
		source:    p.Source,
		settings:  p.Settings,
		documents: p.Documents,
		history:   p.History,
		pacer:     p.Pacer,
		flight:    p.Flight,
	}
}

// ResolveAll replaces all placeholders in text. The key identifies the document for the
// in-flight guard; if a pass for key is already running the text is returned unchanged
// without any fetch.
func (r *Resolver) ResolveAll(ctx context.Context, key, text string) (string, bool) {
	if !r.flight.TryAcquire(key) {
		metrics.PassDone(metrics.PassSkipped)
		lgr.Printf("[DEBUG] resolution for %s already in progress, skipped", key)
		return text, false
	}
	defer r.flight.Release(key)

	res, inserted := r.resolve(ctx, text)
	r.passDone(len(inserted) > 0)
	return res, len(inserted) > 0
}

// ResolveDocument runs a pass over the stored document and writes it back once if any
// placeholder was replaced. Returns false with no error when a pass is already in flight.
func (r *Resolver) ResolveDocument(ctx context.Context, id string) (bool, error) {
	if !r.flight.TryAcquire(id) {
		metrics.PassDone(metrics.PassSkipped)
		lgr.Printf("[DEBUG] resolution for document %s already in progress, skipped", id)
		return false, nil
	}
	defer r.flight.Release(id)

	doc, err := r.documents.GetDocument(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get document %s: %w", id, err)
	}

	text, inserted := r.resolve(ctx, doc.Text)
	if len(inserted) == 0 {
		r.passDone(false)
		return false, nil
	}

	if err := r.documents.WriteDocumentText(ctx, id, text); err != nil {
		return false, fmt.Errorf("write document %s: %w", id, err)
	}
	r.passDone(true)
	lgr.Printf("[INFO] resolved %d placeholders in document %s", len(inserted), id)

	for i := range inserted {
		inserted[i].DocumentID = id
		r.record(ctx, &inserted[i])
	}
	return true, nil
}

// Quote fetches and renders a single quote of the given kind
func (r *Resolver) Quote(ctx context.Context, kind domain.QuoteKind, selection string) (domain.Quote, string) {
	var q domain.Quote
	switch kind {
	case domain.QuoteKindSelection:
		q = r.source.FetchBySelection(ctx, selection)
	case domain.QuoteKindFiltered:
		q = r.source.Fetch(ctx, r.settings.Filters())
	default:
		q = r.source.Fetch(ctx, nil)
	}
	return q, format.Render(q, r.settings.Format())
}

// InsertQuote appends a rendered quote of the given kind to the document, on a new line.
// Fails with ErrInFlight if a pass for the document is running.
func (r *Resolver) InsertQuote(ctx context.Context, id string, kind domain.QuoteKind, selection string) (string, error) {
	if !r.flight.TryAcquire(id) {
		return "", ErrInFlight
	}
	defer r.flight.Release(id)

	doc, err := r.documents.GetDocument(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get document %s: %w", id, err)
	}

	q, rendered := r.Quote(ctx, kind, selection)
	text := rendered
	if doc.Text != "" {
		text = strings.TrimRight(doc.Text, "\n") + "\n" + rendered
	}
	if err := r.documents.WriteDocumentText(ctx, id, text); err != nil {
		return "", fmt.Errorf("write document %s: %w", id, err)
	}

	r.record(ctx, &domain.Insertion{DocumentID: id, Kind: kind, Content: q.Content, Author: q.Author,
		Tags: q.Tags, Fallback: q.IsFallback()})
	return text, nil
}

// resolve replaces random placeholders, then filtered ones. Format and placeholders are
// read once per pass, the filter is read for every filtered fetch.
func (r *Resolver) resolve(ctx context.Context, text string) (string, []domain.Insertion) {
	tokens := r.settings.Placeholders()
	cfg := r.settings.Format()

	text, random := r.replace(ctx, text, tokens.Random, domain.QuoteKindRandom, cfg)
	text, filtered := r.replace(ctx, text, tokens.Filtered, domain.QuoteKindFiltered, cfg)
	return text, append(random, filtered...)
}

// replace substitutes every occurrence of token, scanning from the end of the previous
// insertion so rendered quotes are never rescanned
func (r *Resolver) replace(ctx context.Context, text, token string, kind domain.QuoteKind,
	cfg domain.FormatConfig) (string, []domain.Insertion) {
	if token == "" {
		return text, nil
	}

	var inserted []domain.Insertion
	pos := 0
	for {
		idx := strings.Index(text[pos:], token)
		if idx < 0 {
			return text, inserted
		}
		if err := r.pacer.Wait(ctx); err != nil {
			lgr.Printf("[WARN] %s placeholder resolution interrupted: %v", kind, err)
			return text, inserted
		}

		var categories []string
		if kind == domain.QuoteKindFiltered {
			categories = r.settings.Filters()
		}
		q := r.source.Fetch(ctx, categories)
		rendered := format.Render(q, cfg)

		start := pos + idx
		text = text[:start] + rendered + text[start+len(token):]
		pos = start + len(rendered)

		metrics.Substituted(string(kind))
		inserted = append(inserted, domain.Insertion{Kind: kind, Content: q.Content, Author: q.Author,
			Tags: q.Tags, Fallback: q.IsFallback()})
	}
}

func (r *Resolver) passDone(changed bool) {
	if changed {
		metrics.PassDone(metrics.PassChanged)
		return
	}
	metrics.PassDone(metrics.PassUnchanged)
}

// record stores an insertion, failures are logged only
func (r *Resolver) record(ctx context.Context, ins *domain.Insertion) {
	if r.history == nil {
		return
	}
	if err := r.history.AddInsertion(ctx, ins); err != nil {
		lgr.Printf("[WARN] failed to record insertion for %s: %v", ins.DocumentID, err)
	}
}

// Edit runs fn while holding the document guard, so no pass or insertion can read the
// document before fn and write it back after. Fails with ErrInFlight if the document is busy.
func (r *Resolver) Edit(ctx context.Context, id string, fn func(ctx context.Context) error) error {
	if !r.flight.TryAcquire(id) {
		return ErrInFlight
	}
	defer r.flight.Release(id)
	return fn(ctx)
}
