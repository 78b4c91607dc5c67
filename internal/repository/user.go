// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"showcase/internal/cache"
	"showcase/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for profiles.
type UserRepository interface {
	// GetByID returns the profile with its follower and following id sets
	// attached. The sets are only ever loaded as part of a profile fetch so
	// the returned value is a consistent snapshot.
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	List(ctx context.Context, limit, offset int) ([]models.Profile, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	key := cache.ProfileKey(id)

	err := cache.Aside(ctx, key, &profile, cache.ProfileTTL, func() error {
		if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Profile", id)
			}
			return models.NewInternalError(err)
		}
		return r.attachFollowSets(ctx, &profile)
	})

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// attachFollowSets loads the follower and following id sets for the profile.
func (r *userRepository) attachFollowSets(ctx context.Context, profile *models.Profile) error {
	followers := make([]uint, 0)
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", profile.ID).
		Pluck("follower_id", &followers).Error; err != nil {
		return models.NewInternalError(err)
	}

	following := make([]uint, 0)
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", profile.ID).
		Pluck("following_id", &following).Error; err != nil {
		return models.NewInternalError(err)
	}

	profile.Followers = followers
	profile.Following = following
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	if err := r.attachFollowSets(ctx, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("A profile with this email already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; sqlite reports "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

func (r *userRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"name":          profile.Name,
			"bio":           profile.Bio,
			"profile_image": profile.ProfileImage,
		}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.ID)
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).
		Limit(limit).
		Offset(offset).
		Order("created_at DESC").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}
