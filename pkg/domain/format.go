package domain

import (
	"errors"
	"fmt"
	"strings"
)

// FormatConfig controls how a quote is rendered into document text
type FormatConfig struct {
	QuoteTemplate string `json:"quote_template"`
	TagTemplate   string `json:"tag_template"`
	ShowTags      bool   `json:"show_tags"`
	TagPrefix     string `json:"tag_prefix"`
	TagSeparator  string `json:"tag_separator"`
}

// Placeholders are the literal tokens marking where quotes should be inserted
type Placeholders struct {
	Random   string `json:"random"`
	Filtered string `json:"filtered"`
}

// DefaultFormat returns the format used on first start
func DefaultFormat() FormatConfig {
	return FormatConfig{
		QuoteTemplate: ">[!quote] Quote of the Day\n> {content}\n> &mdash; <cite>{author}</cite>✍️",
		TagTemplate:   "> ---\n> {tags}\n",
		ShowTags:      false,
		TagPrefix:     "#",
		TagSeparator:  ", ",
	}
}

// DefaultPlaceholders returns the placeholder tokens used on first start
func DefaultPlaceholders() Placeholders {
	return Placeholders{Random: "{{qotd}}", Filtered: "{{fqotd}}"}
}

// ErrInvalidPlaceholders is returned for unusable placeholder tokens
var ErrInvalidPlaceholders = errors.New("invalid placeholders")

// Validate checks tokens are non-empty, distinct and neither contains the other
func (p Placeholders) Validate() error {
	switch {
	case strings.TrimSpace(p.Random) == "" || strings.TrimSpace(p.Filtered) == "":
		return fmt.Errorf("%w: empty token", ErrInvalidPlaceholders)
	case p.Random == p.Filtered:
		return fmt.Errorf("%w: random and filtered tokens are the same", ErrInvalidPlaceholders)
	case strings.Contains(p.Random, p.Filtered) || strings.Contains(p.Filtered, p.Random):
		return fmt.Errorf("%w: %q and %q overlap", ErrInvalidPlaceholders, p.Random, p.Filtered)
	}
	return nil
}
