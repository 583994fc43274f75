// Package feed renders the history of inserted quotes as an RSS feed.
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/qotd/pkg/domain"
)

// Generator creates RSS feeds from insertion history
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed from inserted quotes, newest first as passed in
func (g *Generator) GenerateRSS(insertions []domain.Insertion) (string, error) {
	items := make([]*RSSItem, 0, len(insertions))
	for _, ins := range insertions {
		items = append(items, g.convertToRSSItem(ins))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         "Quotes of the Day",
			Link:          g.baseURL + "/",
			Description:   "Quotes recently placed into documents",
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss/quotes", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem makes an RSS item with the quote as title and author, tags as categories
func (g *Generator) convertToRSSItem(ins domain.Insertion) *RSSItem {
	desc := ins.Content
	if ins.DocumentID != "" {
		desc += fmt.Sprintf("\n\nInserted into document %s (%s)", ins.DocumentID, ins.Kind)
	}

	item := &RSSItem{
		Title:       fmt.Sprintf("%s — %s", truncate(ins.Content, 80), ins.Author),
		GUID:        RSSGUID{Value: fmt.Sprintf("qotd-%d", ins.ID)},
		Description: desc,
		Author:      ins.Author,
		PubDate:     ins.CreatedAt.Format(time.RFC1123Z),
		Categories:  ins.Tags,
	}
	if ins.DocumentID != "" {
		item.Link = g.baseURL + "/api/v1/documents/" + ins.DocumentID
	}
	return item
}

// truncate cuts s to at most n runes, adding ellipsis if cut
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}
