// Package format renders quotes into document text using user-configurable templates.
// Templates carry positional tokens {content}, {author} and {tags}; each token is replaced
// at its first occurrence only.
package format

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/umputun/qotd/pkg/domain"
)

// substitution tokens recognized in templates
const (
	ContentToken = "{content}"
	AuthorToken  = "{author}"
	TagsToken    = "{tags}"
)

// DefaultTagSeparator joins tags when the config doesn't set a separator
const DefaultTagSeparator = ", "

// ErrInvalidTemplate is returned for templates missing a required token
var ErrInvalidTemplate = errors.New("invalid template")

// Render formats quote with cfg. The template is expected to be valid, see Validate.
func Render(q domain.Quote, cfg domain.FormatConfig) string {
	text := fill(cfg.QuoteTemplate, map[string]string{ContentToken: q.Content, AuthorToken: q.Author})

	if !cfg.ShowTags || len(q.Tags) == 0 {
		return text
	}
	return text + "\n" + fill(cfg.TagTemplate, map[string]string{TagsToken: Tags(q.Tags, cfg)})
}

// Tags renders the tag list with the configured prefix and separator
func Tags(tags []string, cfg domain.FormatConfig) string {
	sep := cfg.TagSeparator
	if sep == "" {
		sep = DefaultTagSeparator
	}
	res := make([]string, 0, len(tags))
	for _, t := range tags {
		res = append(res, cfg.TagPrefix+t)
	}
	return strings.Join(res, sep)
}

// ValidateQuoteTemplate checks that the quote template has both content and author tokens
func ValidateQuoteTemplate(tmpl string) error {
	for _, token := range []string{ContentToken, AuthorToken} {
		if !strings.Contains(tmpl, token) {
			return fmt.Errorf("%w: missing %s field", ErrInvalidTemplate, token)
		}
	}
	return nil
}

// ValidateTagTemplate checks that the tag template has the tags token
func ValidateTagTemplate(tmpl string) error {
	if !strings.Contains(tmpl, TagsToken) {
		return fmt.Errorf("%w: missing %s field", ErrInvalidTemplate, TagsToken)
	}
	return nil
}

// Validate checks both templates of the format config
func Validate(cfg domain.FormatConfig) error {
	if err := ValidateQuoteTemplate(cfg.QuoteTemplate); err != nil {
		return fmt.Errorf("quote template: %w", err)
	}
	if err := ValidateTagTemplate(cfg.TagTemplate); err != nil {
		return fmt.Errorf("tag template: %w", err)
	}
	return nil
}

// fill replaces the first occurrence of each token in tmpl. Token positions are taken from
// the template only, so values containing tokens are inserted verbatim.
func fill(tmpl string, values map[string]string) string {
	type slot struct {
		pos   int
		token string
	}
	slots := make([]slot, 0, len(values))
	for token := range values {
		if pos := strings.Index(tmpl, token); pos >= 0 {
			slots = append(slots, slot{pos: pos, token: token})
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].pos < slots[j].pos })

	var sb strings.Builder
	last := 0
	for _, sl := range slots {
		if sl.pos < last { // overlaps a token already substituted
			continue
		}
		sb.WriteString(tmpl[last:sl.pos])
		sb.WriteString(values[sl.token])
		last = sl.pos + len(sl.token)
	}
	sb.WriteString(tmpl[last:])
	return sb.String()
}
