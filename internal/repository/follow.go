package repository

import (
	"context"

	"showcase/internal/cache"
	"showcase/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for the social graph.
type FollowRepository interface {
	// Create inserts a follow edge. A duplicate insert for the same ordered
	// pair is a no-op: the unique index on (follower_id, following_id) makes
	// the operation idempotent.
	Create(ctx context.Context, followerID, followingID uint) error
	// Delete removes the edge if present; a missing edge is not an error.
	Delete(ctx context.Context, followerID, followingID uint) error
	Exists(ctx context.Context, followerID, followingID uint) (bool, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, followerID, followingID uint) error {
	follow := &models.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		if isUniqueConstraintError(err) {
			// Concurrent duplicate follow; the edge already exists.
			return nil
		}
		return models.NewInternalError(err)
	}
	r.invalidatePair(ctx, followerID, followingID)
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint) error {
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	r.invalidatePair(ctx, followerID, followingID)
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// invalidatePair drops the cached profile snapshots on both sides of the edge
// so the next fetch resynchronizes the follower/following sets.
func (r *followRepository) invalidatePair(ctx context.Context, followerID, followingID uint) {
	cache.InvalidateProfile(ctx, followerID)
	cache.InvalidateProfile(ctx, followingID)
}
