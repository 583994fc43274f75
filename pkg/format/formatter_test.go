package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/qotd/pkg/domain"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		quote domain.Quote
		cfg   domain.FormatConfig
		want  string
	}{
		{
			name:  "simple template",
			quote: domain.Quote{Content: "C", Author: "A"},
			cfg:   domain.FormatConfig{QuoteTemplate: "> {content}\n> — {author}", TagTemplate: "{tags}"},
			want:  "> C\n> — A",
		},
		{
			name:  "tags shown with hash prefix",
			quote: domain.Quote{Content: "C", Author: "A", Tags: []string{"life", "wisdom"}},
			cfg: domain.FormatConfig{QuoteTemplate: "{content} - {author}", TagTemplate: "> {tags}",
				ShowTags: true, TagPrefix: "#"},
			want: "C - A\n> #life, #wisdom",
		},
		{
			name:  "tags shown with custom separator and no prefix",
			quote: domain.Quote{Content: "C", Author: "A", Tags: []string{"life", "wisdom"}},
			cfg: domain.FormatConfig{QuoteTemplate: "{content} - {author}", TagTemplate: "tags: {tags}",
				ShowTags: true, TagSeparator: " "},
			want: "C - A\ntags: life wisdom",
		},
		{
			name:  "tags hidden",
			quote: domain.Quote{Content: "C", Author: "A", Tags: []string{"life"}},
			cfg:   domain.FormatConfig{QuoteTemplate: "{content} - {author}", TagTemplate: "> {tags}", TagPrefix: "#"},
			want:  "C - A",
		},
		{
			name:  "tags enabled but empty",
			quote: domain.Quote{Content: "C", Author: "A"},
			cfg:   domain.FormatConfig{QuoteTemplate: "{content} - {author}", TagTemplate: "> {tags}", ShowTags: true},
			want:  "C - A",
		},
		{
			name:  "only first occurrence replaced",
			quote: domain.Quote{Content: "C", Author: "A", Tags: []string{"x"}},
			cfg: domain.FormatConfig{QuoteTemplate: "{content} {content} {author} {author}",
				TagTemplate: "{tags}|{tags}", ShowTags: true},
			want: "C {content} A {author}\nx|{tags}",
		},
		{
			name:  "tokens inside quote text kept verbatim",
			quote: domain.Quote{Content: "Use {author} tokens", Author: "Bob {content}", Tags: []string{"{tags}"}},
			cfg: domain.FormatConfig{QuoteTemplate: "{content} - {author}", TagTemplate: "> {tags}",
				ShowTags: true},
			want: "Use {author} tokens - Bob {content}\n> {tags}",
		},
		{
			name:  "author before content",
			quote: domain.Quote{Content: "say {author}", Author: "A"},
			cfg:   domain.FormatConfig{QuoteTemplate: "{author}: {content}"},
			want:  "A: say {author}",
		},
		{
			name:  "template without author token",
			quote: domain.Quote{Content: "C", Author: "A"},
			cfg:   domain.FormatConfig{QuoteTemplate: "just {content}"},
			want:  "just C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.quote, tt.cfg))
		})
	}
}

func TestRender_ContainsQuoteVerbatim(t *testing.T) {
	quotes := []domain.Quote{
		{Content: "The only true wisdom is in knowing you know nothing.", Author: "Socrates", Tags: []string{"wisdom"}},
		{Content: "multi\nline", Author: "Anon"},
		domain.FallbackQuote(),
	}
	configs := []domain.FormatConfig{
		domain.DefaultFormat(),
		{QuoteTemplate: "{author}: {content}", TagTemplate: "[{tags}]", ShowTags: true},
	}

	for _, q := range quotes {
		for _, cfg := range configs {
			res := Render(q, cfg)
			assert.Contains(t, res, q.Content)
			assert.Contains(t, res, q.Author)
			assert.NotContains(t, res, ContentToken)
			assert.NotContains(t, res, AuthorToken)
			assert.NotContains(t, res, TagsToken)
		}
	}
}

func TestRender_NoTagBlockWhenHidden(t *testing.T) {
	cfg := domain.FormatConfig{QuoteTemplate: "{content}|{author}", TagTemplate: "TAGS {tags}", ShowTags: false}
	for _, tags := range [][]string{nil, {}, {"a"}, {"a", "b", "c"}} {
		res := Render(domain.Quote{Content: "c", Author: "a", Tags: tags}, cfg)
		assert.Equal(t, "c|a", res)
		assert.NotContains(t, res, "TAGS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.FormatConfig
		wantErr string
	}{
		{name: "default is valid", cfg: domain.DefaultFormat()},
		{name: "missing content", cfg: domain.FormatConfig{QuoteTemplate: "{author}", TagTemplate: "{tags}"},
			wantErr: "quote template: invalid template: missing {content} field"},
		{name: "missing author", cfg: domain.FormatConfig{QuoteTemplate: "{content}", TagTemplate: "{tags}"},
			wantErr: "quote template: invalid template: missing {author} field"},
		{name: "missing tags", cfg: domain.FormatConfig{QuoteTemplate: "{content}{author}", TagTemplate: "tags"},
			wantErr: "tag template: invalid template: missing {tags} field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTemplate)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
