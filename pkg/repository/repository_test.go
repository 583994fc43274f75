package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates in-memory repositories, a single connection keeps the memory database shared
func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(context.Background(), Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func TestRepositories_Init(t *testing.T) {
	repos := setupTestDB(t)
	require.NoError(t, repos.Ping(context.Background()))

	for _, table := range []string{"documents", "insertions", "settings"} {
		var count int
		err := repos.DB.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table)
		require.NoError(t, err)
		assert.Equal(t, 1, count, table)
	}

	// schema is idempotent
	require.NoError(t, initSchema(context.Background(), repos.DB))
}

func TestSettingRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	val, err := repos.Setting.GetSetting(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, repos.Setting.SetSetting(ctx, "format", `{"a":1}`))
	require.NoError(t, repos.Setting.SetSetting(ctx, "format", `{"a":2}`))
	val, err = repos.Setting.GetSetting(ctx, "format")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, val)
}

func TestIsLockError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: false},
		{err: errors.New("database is locked"), want: true},
		{err: errors.New("SQLITE_BUSY: busy"), want: true},
		{err: fmt.Errorf("exec: %w", errors.New("database table is locked")), want: true},
		{err: errors.New("no such table"), want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isLockError(tt.err), "%v", tt.err)
	}
}

func TestWithRetry(t *testing.T) {
	t.Run("retries lock errors", func(t *testing.T) {
		attempts := 0
		err := withRetry(context.Background(), func() error {
			attempts++
			if attempts < 3 {
				return errors.New("database is locked")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		attempts := 0
		err := withRetry(context.Background(), func() error {
			attempts++
			return errors.New("constraint failed")
		})
		require.EqualError(t, err, "constraint failed")
		assert.Equal(t, 1, attempts)
	})
}
