package domain

import "time"

// Document is a block of text holding placeholders to be resolved
type Document struct {
	ID        string
	Title     string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Insertion is a history record of a rendered quote placed into a document
type Insertion struct {
	ID         int64
	DocumentID string
	Kind       QuoteKind
	Content    string
	Author     string
	Tags       []string
	Fallback   bool
	CreatedAt  time.Time
}
