package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/qotd/pkg/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qotd.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
  base_url: https://quotes.example.com
quotes:
  api_url: https://quotes.example.com/random
  retry_attempts: 3
format:
  quote_template: "{content} ({author})"
  tag_template: "tags: {tags}"
  show_tags: true
  show_tag_hash: false
  tag_separator: " | "
placeholders:
  random: "%%q%%"
  filtered: "%%fq%%"
schedule:
  interval: 10s
  pacing: 1s
  max_workers: 2
filters: [Life, Love]
history:
  rss_limit: 20
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "https://quotes.example.com", cfg.Server.BaseURL)
		assert.Equal(t, "https://quotes.example.com/random", cfg.Quotes.APIURL)
		assert.Equal(t, 3, cfg.Quotes.RetryAttempts)
		assert.Equal(t, 10*time.Second, cfg.Schedule.Interval)
		assert.Equal(t, time.Second, cfg.Schedule.Pacing)
		assert.Equal(t, 2, cfg.Schedule.MaxWorkers)
		assert.Equal(t, []string{"Life", "Love"}, cfg.Filters)
		assert.Equal(t, 20, cfg.History.RSSLimit)

		assert.Equal(t, domain.FormatConfig{QuoteTemplate: "{content} ({author})", TagTemplate: "tags: {tags}",
			ShowTags: true, TagPrefix: "", TagSeparator: " | "}, cfg.QuoteFormat())
		assert.Equal(t, domain.Placeholders{Random: "%%q%%", Filtered: "%%fq%%"}, cfg.QuotePlaceholders())
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
		assert.Equal(t, "file:qotd.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, "https://api.quotable.io", cfg.Quotes.APIURL)
		assert.Equal(t, 10*time.Second, cfg.Quotes.Timeout)
		assert.Equal(t, 2, cfg.Quotes.RetryAttempts)
		assert.Equal(t, 3, cfg.Quotes.MinSelectionChars)
		assert.Equal(t, 25, cfg.Quotes.MaxSelectionChars)
		assert.Equal(t, 5*time.Second, cfg.Schedule.Interval)
		assert.Equal(t, 500*time.Millisecond, cfg.Schedule.Pacing)
		assert.Equal(t, 4, cfg.Schedule.MaxWorkers)
		assert.Equal(t, 100, cfg.Notices.Capacity)
		assert.Equal(t, 50, cfg.History.RSSLimit)
		assert.Equal(t, domain.DefaultFormat(), cfg.QuoteFormat())
		assert.Equal(t, domain.DefaultPlaceholders(), cfg.QuotePlaceholders())
	})

	t.Run("listen with host gives base url", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: 127.0.0.1:7070\n"))
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:7070", cfg.Server.BaseURL)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("QOTD_TEST_API", "https://env.example.com/random")
		cfg, err := Load(writeConfig(t, "quotes:\n  api_url: ${QOTD_TEST_API}\n"))
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com/random", cfg.Quotes.APIURL)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/qotd.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [oops"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "interval too short", content: "schedule:\n  interval: 1s\n",
			wantErr: "schedule.interval must be at least 5s"},
		{name: "interval too long", content: "schedule:\n  interval: 2m\n",
			wantErr: "schedule.interval must be at most 60s"},
		{name: "bad api url", content: "quotes:\n  api_url: not-a-url\n",
			wantErr: "quotes.api_url must be a valid URL"},
		{name: "too many retries", content: "quotes:\n  retry_attempts: 50\n",
			wantErr: "quotes.retry_attempts must be at most 10"},
		{name: "selection bounds", content: "quotes:\n  min_selection_chars: 30\n",
			wantErr: "quotes.max_selection_chars must not be less than MinSelectionChars"},
		{name: "quote template without author", content: "format:\n  quote_template: \"{content}\"\n",
			wantErr: "format: quote template: invalid template: missing {author} field"},
		{name: "tag template without tags", content: "format:\n  tag_template: \"---\"\n",
			wantErr: "format: tag template: invalid template: missing {tags} field"},
		{name: "overlapping placeholders", content: "placeholders:\n  random: qotd\n  filtered: fqotd\n",
			wantErr: `placeholders: invalid placeholders: "qotd" and "fqotd" overlap`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
