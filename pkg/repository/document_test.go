package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/qotd/pkg/domain"
)

func TestDocumentRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	doc := &domain.Document{ID: "d1", Title: "daily", Text: "Today: {{qotd}}"}
	require.NoError(t, repos.Document.SaveDocument(ctx, doc))
	assert.False(t, doc.CreatedAt.IsZero())
	assert.False(t, doc.UpdatedAt.IsZero())
	require.NoError(t, repos.Document.SaveDocument(ctx, &domain.Document{ID: "d2", Text: "other"}))

	t.Run("get", func(t *testing.T) {
		got, err := repos.Document.GetDocument(ctx, "d1")
		require.NoError(t, err)
		assert.Equal(t, "daily", got.Title)
		assert.Equal(t, "Today: {{qotd}}", got.Text)
		assert.WithinDuration(t, doc.CreatedAt, got.CreatedAt, time.Second)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repos.Document.GetDocument(ctx, "nope")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list", func(t *testing.T) {
		docs, err := repos.Document.ListDocuments(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		ids, err := repos.Document.ListDocumentIDs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"d1", "d2"}, ids)
	})

	t.Run("write text", func(t *testing.T) {
		require.NoError(t, repos.Document.WriteDocumentText(ctx, "d1", "Today: > C\n> — A"))
		got, err := repos.Document.GetDocument(ctx, "d1")
		require.NoError(t, err)
		assert.Equal(t, "Today: > C\n> — A", got.Text)
		assert.Equal(t, "daily", got.Title)
		assert.False(t, got.UpdatedAt.Before(doc.UpdatedAt))

		require.ErrorIs(t, repos.Document.WriteDocumentText(ctx, "nope", "x"), ErrNotFound)
	})

	t.Run("update keeps created", func(t *testing.T) {
		upd := &domain.Document{ID: "d2", Title: "renamed", Text: "{{fqotd}}"}
		require.NoError(t, repos.Document.SaveDocument(ctx, upd))
		got, err := repos.Document.GetDocument(ctx, "d2")
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Title)
		assert.Equal(t, "{{fqotd}}", got.Text)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repos.Document.DeleteDocument(ctx, "d2"))
		_, err := repos.Document.GetDocument(ctx, "d2")
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, repos.Document.DeleteDocument(ctx, "d2"), ErrNotFound)
	})
}
