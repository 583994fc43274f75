package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/qotd/pkg/domain"
)

// DocumentRepository handles document-related database operations
type DocumentRepository struct {
	db *sqlx.DB
}

// documentSQL represents a document for SQL operations
type documentSQL struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// GetDocument retrieves a document by ID, ErrNotFound if missing
func (r *DocumentRepository) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	var d documentSQL
	err := r.db.GetContext(ctx, &d, "SELECT id, title, text, created_at, updated_at FROM documents WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get document %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d.toDomain(), nil
}

// ListDocuments returns all documents, oldest first
func (r *DocumentRepository) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	var docs []documentSQL
	err := r.db.SelectContext(ctx, &docs,
		"SELECT id, title, text, created_at, updated_at FROM documents ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	res := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		res = append(res, *d.toDomain())
	}
	return res, nil
}

// ListDocumentIDs returns ids of all documents
func (r *DocumentRepository) ListDocumentIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, "SELECT id FROM documents ORDER BY created_at, id"); err != nil {
		return nil, fmt.Errorf("list document ids: %w", err)
	}
	return ids, nil
}

// SaveDocument inserts a document or updates title and text of an existing one.
// Timestamps are set on the passed document.
func (r *DocumentRepository) SaveDocument(ctx context.Context, doc *domain.Document) error {
	now := time.Now().UTC()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	row := documentSQL{ID: doc.ID, Title: doc.Title, Text: doc.Text, CreatedAt: doc.CreatedAt, UpdatedAt: doc.UpdatedAt}
	query := `
		INSERT INTO documents (id, title, text, created_at, updated_at)
		VALUES (:id, :title, :text, :created_at, :updated_at)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			text = excluded.text,
			updated_at = excluded.updated_at
	`
	err := withRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// WriteDocumentText replaces the text of an existing document
func (r *DocumentRepository) WriteDocumentText(ctx context.Context, id, text string) error {
	var affected int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "UPDATE documents SET text = ?, updated_at = ? WHERE id = ?",
			text, time.Now().UTC(), id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("write document text: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("write document %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteDocument removes a document
func (r *DocumentRepository) DeleteDocument(ctx context.Context, id string) error {
	var affected int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete document %s: %w", id, ErrNotFound)
	}
	return nil
}

func (d *documentSQL) toDomain() *domain.Document {
	return &domain.Document{ID: d.ID, Title: d.Title, Text: d.Text, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}
