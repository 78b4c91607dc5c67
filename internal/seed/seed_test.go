package seed

import (
	"testing"

	"showcase/internal/database"
	"showcase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeed(t *testing.T) {
	db := setupTestDB(t)

	err := Seed(db, Options{
		NumUsers:    5,
		NumPosts:    10,
		NumProjects: 4,
		ShouldClean: false,
	})
	require.NoError(t, err)

	var userCount, postCount, projectCount int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Project{}).Count(&projectCount).Error)

	assert.Equal(t, int64(5), userCount)
	assert.Equal(t, int64(10), postCount)
	assert.Equal(t, int64(4), projectCount)

	// No seeded user follows themselves.
	var selfFollows int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = following_id").Count(&selfFollows).Error)
	assert.Zero(t, selfFollows)

	// Labels are shared: no post links to a tag name twice.
	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.LessOrEqual(t, tagCount, int64(len(tagPool)))

	// Every project has at least two technology labels.
	var linkCount int64
	require.NoError(t, db.Model(&models.ProjectTechnology{}).Count(&linkCount).Error)
	assert.GreaterOrEqual(t, linkCount, int64(2*projectCount))
}

func TestSeed_CleanRemovesPreviousData(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.Profile{Name: "Old", Email: "old@example.com", Password: "x"}).Error)

	err := Seed(db, Options{NumUsers: 2, NumPosts: 2, NumProjects: 1, ShouldClean: true})
	require.NoError(t, err)

	var stale int64
	require.NoError(t, db.Model(&models.Profile{}).Where("email = ?", "old@example.com").Count(&stale).Error)
	assert.Zero(t, stale)
}
