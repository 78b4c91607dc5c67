package repository

import (
	"context"
	"errors"

	"showcase/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts, their likes and
// their tag links.
type PostRepository interface {
	// List performs one wide read joining author, like membership, comments
	// (with their authors) and tags, newest created first. The returned posts
	// are normalized.
	List(ctx context.Context) ([]models.Post, error)
	// Create persists the post row and, for each tag label, ensures the label
	// exists in the shared vocabulary and links it to the post. The whole
	// write runs in one transaction.
	Create(ctx context.Context, post *models.Post, tags []string) error
	// Like inserts a (post, user) membership row. A duplicate like is a no-op
	// backed by the unique index.
	Like(ctx context.Context, postID, userID uint) error
	// Unlike deletes the membership row if present.
	Unlike(ctx context.Context, postID, userID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("LikeRows").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.Author").
		Preload("TagRows").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	for i := range posts {
		posts[i].Normalize()
	}
	return posts, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post, tags []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for _, name := range tags {
			if name == "" {
				continue
			}
			// Upsert-by-name keeps the vocabulary deduplicated: the label is
			// created on first use and reused afterwards.
			var tag models.Tag
			if err := tx.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
				return err
			}
			if err := tx.Model(post).Association("TagRows").Append(&tag); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Like(ctx context.Context, postID, userID uint) error {
	// The post must exist; a like on an unknown post is a not-found.
	var post models.Post
	if err := r.db.WithContext(ctx).Select("id").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return models.NewInternalError(err)
	}

	like := &models.PostLike{PostID: postID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isUniqueConstraintError(err) {
			// Duplicate like from a double submit; membership is unchanged.
			return nil
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, postID, userID uint) error {
	if err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLike{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
