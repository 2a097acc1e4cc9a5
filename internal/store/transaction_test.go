package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault-api/internal/mocks"
	"github.com/taskvault/taskvault-api/internal/store"
)

func TestRunInTransaction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := mocks.NewMockDB()

	t.Run("commits when the function succeeds", func(t *testing.T) {
		t.Parallel()

		called := false
		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			called = true
			require.NotNil(t, tx)
			return nil
		})

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("returns the function error unchanged", func(t *testing.T) {
		t.Parallel()

		want := errors.New("insert failed")
		err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			return want
		})

		assert.ErrorIs(t, err, want)
	})

	t.Run("re-panics after rolling back", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, "boom", func() {
			_ = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
				panic("boom")
			})
		})
	})
}
