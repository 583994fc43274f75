package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/qotd/pkg/domain"
)

// InsertionRepository keeps the history of quotes inserted into documents
type InsertionRepository struct {
	db *sqlx.DB
}

// insertionSQL represents an insertion for SQL operations
type insertionSQL struct {
	ID         int64     `db:"id"`
	DocumentID string    `db:"document_id"`
	Kind       string    `db:"kind"`
	Content    string    `db:"content"`
	Author     string    `db:"author"`
	Tags       tagsSQL   `db:"tags"`
	Fallback   bool      `db:"fallback"`
	CreatedAt  time.Time `db:"created_at"`
}

// tagsSQL is a JSON array of tags for SQL operations
type tagsSQL []string

// Value implements driver.Valuer for database storage
func (t tagsSQL) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (t *tagsSQL) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*t = tagsSQL{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unexpected tags type %T", value)
	}
	return json.Unmarshal(data, t)
}

// NewInsertionRepository creates a new insertion repository
func NewInsertionRepository(db *sqlx.DB) *InsertionRepository {
	return &InsertionRepository{db: db}
}

// AddInsertion stores an insertion record and sets its ID and CreatedAt
func (r *InsertionRepository) AddInsertion(ctx context.Context, ins *domain.Insertion) error {
	if ins.CreatedAt.IsZero() {
		ins.CreatedAt = time.Now().UTC()
	}
	row := insertionSQL{
		DocumentID: ins.DocumentID,
		Kind:       string(ins.Kind),
		Content:    ins.Content,
		Author:     ins.Author,
		Tags:       tagsSQL(ins.Tags),
		Fallback:   ins.Fallback,
		CreatedAt:  ins.CreatedAt,
	}
	query := `
		INSERT INTO insertions (document_id, kind, content, author, tags, fallback, created_at)
		VALUES (:document_id, :kind, :content, :author, :tags, :fallback, :created_at)
	`
	err := withRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return err
		}
		ins.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return fmt.Errorf("add insertion: %w", err)
	}
	return nil
}

// RecentInsertions returns up to limit insertions, newest first
func (r *InsertionRepository) RecentInsertions(ctx context.Context, limit int) ([]domain.Insertion, error) {
	var rows []insertionSQL
	query := `
		SELECT id, document_id, kind, content, author, tags, fallback, created_at
		FROM insertions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("get recent insertions: %w", err)
	}

	res := make([]domain.Insertion, 0, len(rows))
	for _, row := range rows {
		res = append(res, domain.Insertion{
			ID:         row.ID,
			DocumentID: row.DocumentID,
			Kind:       domain.QuoteKind(row.Kind),
			Content:    row.Content,
			Author:     row.Author,
			Tags:       []string(row.Tags),
			Fallback:   row.Fallback,
			CreatedAt:  row.CreatedAt,
		})
	}
	return res, nil
}

// CountInsertions returns the number of recorded insertions
func (r *InsertionRepository) CountInsertions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM insertions"); err != nil {
		return 0, fmt.Errorf("count insertions: %w", err)
	}
	return count, nil
}
