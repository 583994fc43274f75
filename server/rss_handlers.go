package server

import (
	"net/http"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/qotd/pkg/feed"
)

// rssHandler serves RSS feed of recently inserted quotes
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	insertions, err := s.History.RecentInsertions(r.Context(), s.RSSLimit)
	if err != nil {
		lgr.Printf("[ERROR] failed to get insertions for RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	rss, err := feed.NewGenerator(s.BaseURL).GenerateRSS(insertions)
	if err != nil {
		lgr.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		lgr.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
