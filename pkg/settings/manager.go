// Package settings holds the user-editable configuration: quote format, placeholder tokens and
// the category filter. Edits are validated, applied in memory and persisted as JSON values.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/qotd/pkg/domain"
	"github.com/umputun/qotd/pkg/filter"
	"github.com/umputun/qotd/pkg/format"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Store persists setting values by key
type Store interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Notifier delivers user notices
type Notifier interface {
	Notify(msg string)
}

// Params for New
type Params struct {
	Store        Store    // optional, settings are not persisted without it
	Notifier     Notifier // optional
	Format       domain.FormatConfig
	Placeholders domain.Placeholders
	Filters      []string
}

// Manager is the concurrency-safe holder of current settings
type Manager struct {
	store    Store
	notifier Notifier
	filters  *filter.Set

	mu           sync.RWMutex
	format       domain.FormatConfig
	placeholders domain.Placeholders
}

// New makes a manager with initial values, usually from the config file.
// Zero format or placeholders are replaced with defaults.
func New(p Params) *Manager {
	if p.Format == (domain.FormatConfig{}) {
		p.Format = domain.DefaultFormat()
	}
	if p.Placeholders == (domain.Placeholders{}) {
		p.Placeholders = domain.DefaultPlaceholders()
	}
	return &Manager{
		store:        p.Store,
		notifier:     p.Notifier,
		filters:      filter.NewSet(p.Filters...),
		format:       p.Format,
		placeholders: p.Placeholders,
	}
}

// Load overlays persisted values on top of the initial ones. Persisted values failing
// validation are skipped with a warning.
func (m *Manager) Load(ctx context.Context) error {
	if m.store == nil {
		return nil
	}

	var cfg domain.FormatConfig
	ok, err := m.load(ctx, domain.SettingFormat, &cfg)
	if err != nil {
		return err
	}
	if ok {
		if err := format.Validate(cfg); err != nil {
			lgr.Printf("[WARN] stored format ignored, %v", err)
		} else {
			m.mu.Lock()
			m.format = cfg
			m.mu.Unlock()
		}
	}

	var tokens domain.Placeholders
	ok, err = m.load(ctx, domain.SettingPlaceholders, &tokens)
	if err != nil {
		return err
	}
	if ok {
		if err := tokens.Validate(); err != nil {
			lgr.Printf("[WARN] stored placeholders ignored, %v", err)
		} else {
			m.mu.Lock()
			m.placeholders = tokens
			m.mu.Unlock()
		}
	}

	var filters []string
	ok, err = m.load(ctx, domain.SettingFilters, &filters)
	if err != nil {
		return err
	}
	if ok {
		m.filters.Reset(filters)
	}

	lgr.Printf("[DEBUG] settings loaded, filter: %s", m.filters.Describe(", "))
	return nil
}

// Format returns the current format config
func (m *Manager) Format() domain.FormatConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.format
}

// Placeholders returns the current placeholder tokens
func (m *Manager) Placeholders() domain.Placeholders {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.placeholders
}

// Filters returns the active concrete categories, empty if no filter is set
func (m *Manager) Filters() []string {
	return m.filters.Current()
}

// FilterValues returns the raw filter state, including None
func (m *Manager) FilterValues() []string {
	return m.filters.Values()
}

// DescribeFilters joins the active categories with sep
func (m *Manager) DescribeFilters(sep string) string {
	return m.filters.Describe(sep)
}

// UpdateQuoteTemplate replaces the quote template. An invalid template is rejected,
// reported to the user and the previous one stays active.
func (m *Manager) UpdateQuoteTemplate(ctx context.Context, tmpl string) error {
	if err := format.ValidateQuoteTemplate(tmpl); err != nil {
		return m.reject("quote template", err)
	}
	cfg := m.Format()
	cfg.QuoteTemplate = tmpl
	return m.setFormat(ctx, cfg)
}

// UpdateTagTemplate replaces the tag template, same rules as UpdateQuoteTemplate
func (m *Manager) UpdateTagTemplate(ctx context.Context, tmpl string) error {
	if err := format.ValidateTagTemplate(tmpl); err != nil {
		return m.reject("tag template", err)
	}
	cfg := m.Format()
	cfg.TagTemplate = tmpl
	return m.setFormat(ctx, cfg)
}

// UpdateFormat replaces the whole format config after validating both templates
func (m *Manager) UpdateFormat(ctx context.Context, cfg domain.FormatConfig) error {
	if err := format.Validate(cfg); err != nil {
		return m.reject("format", err)
	}
	if cfg.TagSeparator == "" {
		cfg.TagSeparator = format.DefaultTagSeparator
	}
	return m.setFormat(ctx, cfg)
}

// SetPlaceholders renames the placeholder tokens
func (m *Manager) SetPlaceholders(ctx context.Context, p domain.Placeholders) error {
	if err := p.Validate(); err != nil {
		return m.reject("placeholders", err)
	}
	m.mu.Lock()
	m.placeholders = p
	m.mu.Unlock()
	lgr.Printf("[INFO] placeholders changed to %s and %s", p.Random, p.Filtered)
	return m.save(ctx, domain.SettingPlaceholders, p)
}

// ToggleFilter flips a category in the filter and returns the new raw state
func (m *Manager) ToggleFilter(ctx context.Context, category string) ([]string, error) {
	m.filters.Toggle(category)
	values := m.filters.Values()
	lgr.Printf("[INFO] filter toggled %q, now %s", category, m.filters.Describe(", "))
	return values, m.save(ctx, domain.SettingFilters, values)
}

// ClearFilters removes all categories from the filter
func (m *Manager) ClearFilters(ctx context.Context) error {
	m.filters.Clear()
	lgr.Printf("[INFO] filter cleared")
	return m.save(ctx, domain.SettingFilters, []string{})
}

func (m *Manager) setFormat(ctx context.Context, cfg domain.FormatConfig) error {
	m.mu.Lock()
	m.format = cfg
	m.mu.Unlock()
	return m.save(ctx, domain.SettingFormat, cfg)
}

// reject notifies the user about an invalid edit and returns the validation error
func (m *Manager) reject(what string, err error) error {
	lgr.Printf("[WARN] %s rejected, %v", what, err)
	if m.notifier != nil {
		m.notifier.Notify(fmt.Sprintf("%s not changed, %v", what, err))
	}
	return fmt.Errorf("%s: %w", what, err)
}

func (m *Manager) save(ctx context.Context, key string, v any) error {
	if m.store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := m.store.SetSetting(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// load reads a JSON setting into v, returns false if the key is not stored
func (m *Manager) load(ctx context.Context, key string, v any) (bool, error) {
	raw, err := m.store.GetSetting(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		lgr.Printf("[WARN] can't decode stored %s, %v", key, err)
		return false, nil
	}
	return true, nil
}

// IsInvalid reports whether err is a rejected template or placeholder edit
func IsInvalid(err error) bool {
	return errors.Is(err, format.ErrInvalidTemplate) || errors.Is(err, domain.ErrInvalidPlaceholders)
}
