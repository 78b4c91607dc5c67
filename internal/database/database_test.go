package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	for _, table := range []string{
		"profiles", "follows", "posts", "tags", "post_tags",
		"post_likes", "comments", "projects", "project_technologies",
	} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}

	// Migrate is idempotent.
	assert.NoError(t, Migrate(db))
}
