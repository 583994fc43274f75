package domain

// Quote is a single quote fetched from the remote source.
// Each fetch yields an independent value, quotes are never cached or deduplicated.
type Quote struct {
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// FallbackQuote returns the sentinel quote used in place of a failed fetch
func FallbackQuote() Quote {
	return Quote{
		Content: "Oops, I did it again 🙊",
		Author:  "Britney Error 😢",
		Tags:    []string{"error"},
	}
}

// TagFallbackQuote returns the sentinel quote used when a selection-tagged fetch fails
func TagFallbackQuote() Quote {
	return Quote{
		Content: "Oops, cannot find that tag 🙊",
		Author:  "Tag Error 😢",
		Tags:    []string{"error"},
	}
}

// IsFallback reports whether the quote is one of the sentinel fallback quotes
func (q Quote) IsFallback() bool {
	fb, tfb := FallbackQuote(), TagFallbackQuote()
	return (q.Content == fb.Content && q.Author == fb.Author) || (q.Content == tfb.Content && q.Author == tfb.Author)
}

// QuoteKind describes how a quote was requested
type QuoteKind string

// quote kinds
const (
	QuoteKindRandom    QuoteKind = "random"
	QuoteKindFiltered  QuoteKind = "filtered"
	QuoteKindSelection QuoteKind = "selection"
)

// Valid checks if the quote kind is known
func (k QuoteKind) Valid() bool {
	switch k {
	case QuoteKindRandom, QuoteKindFiltered, QuoteKindSelection:
		return true
	}
	return false
}
