package repository

import (
	"context"
	"testing"

	"showcase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := &models.Profile{Name: "Alice", Email: "alice@example.com", Password: "x"}
	bob := &models.Profile{Name: "Bob", Email: "bob@example.com", Password: "x"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)

	t.Run("Create and Exists", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, alice.ID, bob.ID))

		exists, err := repo.Exists(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		// Direction matters.
		reverse, err := repo.Exists(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.False(t, reverse)
	})

	t.Run("duplicate Create is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, alice.ID, bob.ID))

		var count int64
		require.NoError(t, db.Model(&models.Follow{}).
			Where("follower_id = ? AND following_id = ?", alice.ID, bob.ID).
			Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Delete removes the edge", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, alice.ID, bob.ID))

		exists, err := repo.Exists(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Delete of a missing edge is not an error", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, alice.ID, bob.ID))
	})
}
