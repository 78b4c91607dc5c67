package service

import (
	"context"
	"errors"
	"testing"

	"showcase/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalizedPost(id, authorID uint, title string) models.Post {
	p := models.Post{
		ID:       id,
		Title:    title,
		Content:  "content",
		AuthorID: authorID,
		Author:   models.Profile{ID: authorID, Name: "Author"},
	}
	p.Normalize()
	return p
}

func TestRefreshPosts_ReplacesSnapshot(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.listFn = func(_ context.Context) ([]models.Post, error) {
		return []models.Post{
			normalizedPost(2, 1, "newer"),
			normalizedPost(1, 1, "older"),
		}, nil
	}

	svc := NewContentService(postRepo, noopProjectRepo(), noopCommentRepo())
	require.NoError(t, svc.RefreshPosts(context.Background()))

	posts := svc.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, uint(2), posts[0].ID)
	assert.False(t, svc.PostsLoading())
}

func TestRefreshPosts_FailureKeepsPreviousSnapshot(t *testing.T) {
	calls := 0
	postRepo := noopPostRepo()
	postRepo.listFn = func(_ context.Context) ([]models.Post, error) {
		calls++
		if calls == 1 {
			return []models.Post{normalizedPost(1, 1, "kept")}, nil
		}
		return nil, models.NewInternalError(errors.New("db down"))
	}

	svc := NewContentService(postRepo, noopProjectRepo(), noopCommentRepo())
	require.NoError(t, svc.RefreshPosts(context.Background()))
	require.Error(t, svc.RefreshPosts(context.Background()))

	// Stale beats blank: the failed refresh must not clear the snapshot.
	posts := svc.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "kept", posts[0].Title)
	assert.False(t, svc.PostsLoading())
}

func TestGetPost_AbsenceIsAValue(t *testing.T) {
	svc := NewContentService(noopPostRepo(), noopProjectRepo(), noopCommentRepo())

	_, ok := svc.GetPost(42)
	assert.False(t, ok)
}

func TestCreatePost(t *testing.T) {
	viewer := &models.Profile{ID: 1, Name: "Ada"}

	t.Run("requires a viewer", func(t *testing.T) {
		svc := NewContentService(noopPostRepo(), noopProjectRepo(), noopCommentRepo())
		_, err := svc.CreatePost(context.Background(), nil, CreatePostInput{Title: "t", Content: "c"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHENTICATED", appErr.Code)
	})

	t.Run("requires title and content", func(t *testing.T) {
		svc := NewContentService(noopPostRepo(), noopProjectRepo(), noopCommentRepo())
		_, err := svc.CreatePost(context.Background(), viewer, CreatePostInput{Title: "  ", Content: "c"})
		require.Error(t, err)
		_, err = svc.CreatePost(context.Background(), viewer, CreatePostInput{Title: "t", Content: ""})
		require.Error(t, err)
	})

	t.Run("writes then refetches", func(t *testing.T) {
		var gotTags []string
		postRepo := noopPostRepo()
		postRepo.createFn = func(_ context.Context, post *models.Post, tags []string) error {
			post.ID = 10
			gotTags = tags
			return nil
		}
		postRepo.listFn = func(_ context.Context) ([]models.Post, error) {
			return []models.Post{normalizedPost(10, 1, "hello")}, nil
		}

		svc := NewContentService(postRepo, noopProjectRepo(), noopCommentRepo())
		created, err := svc.CreatePost(context.Background(), viewer, CreatePostInput{
			Title:   "hello",
			Content: "world",
			Tags:    []string{"golang", "testing"},
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(10), created.ID)
		assert.Equal(t, []string{"golang", "testing"}, gotTags)

		// The new post came back through the same normalization path as the
		// rest of the snapshot.
		posts := svc.Posts()
		require.Len(t, posts, 1)
		assert.Equal(t, created.ID, posts[0].ID)
	})

	t.Run("refresh failure degrades to the written row", func(t *testing.T) {
		postRepo := noopPostRepo()
		postRepo.createFn = func(_ context.Context, post *models.Post, _ []string) error {
			post.ID = 11
			return nil
		}
		postRepo.listFn = func(_ context.Context) ([]models.Post, error) {
			return nil, models.NewInternalError(errors.New("db down"))
		}

		svc := NewContentService(postRepo, noopProjectRepo(), noopCommentRepo())
		created, err := svc.CreatePost(context.Background(), viewer, CreatePostInput{Title: "t", Content: "c"})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(11), created.ID)
		assert.Equal(t, "Ada", created.AuthorName)
	})
}

func TestLikePost(t *testing.T) {
	t.Run("requires a viewer", func(t *testing.T) {
		svc := NewContentService(noopPostRepo(), noopProjectRepo(), noopCommentRepo())
		err := svc.LikePost(context.Background(), nil, 1)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNAUTHENTICATED", appErr.Code)
	})

	t.Run("writes then refetches", func(t *testing.T) {
		liked := false
		refetched := false
		postRepo := noopPostRepo()
		postRepo.likeFn = func(_ context.Context, postID, userID uint) error {
			liked = true
			assert.Equal(t, uint(5), postID)
			assert.Equal(t, uint(1), userID)
			return nil
		}
		postRepo.listFn = func(_ context.Context) ([]models.Post, error) {
			refetched = true
			return nil, nil
		}

		svc := NewContentService(postRepo, noopProjectRepo(), noopCommentRepo())
		err := svc.LikePost(context.Background(), &models.Profile{ID: 1}, 5)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.True(t, refetched)
	})

	t.Run("unknown post surfaces not found", func(t *testing.T) {
		postRepo := noopPostRepo()
		postRepo.likeFn = func(_ context.Context, postID, _ uint) error {
			return models.NewNotFoundError("Post", postID)
		}

		svc := NewContentService(postRepo, noopProjectRepo(), noopCommentRepo())
		err := svc.LikePost(context.Background(), &models.Profile{ID: 1}, 99)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestCommentOnPost(t *testing.T) {
	t.Run("requires content", func(t *testing.T) {
		svc := NewContentService(noopPostRepo(), noopProjectRepo(), noopCommentRepo())
		err := svc.CommentOnPost(context.Background(), &models.Profile{ID: 1}, 5, "   ")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("writes then refetches", func(t *testing.T) {
		var created *models.Comment
		commentRepo := noopCommentRepo()
		commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
			created = c
			return nil
		}

		svc := NewContentService(noopPostRepo(), noopProjectRepo(), commentRepo)
		err := svc.CommentOnPost(context.Background(), &models.Profile{ID: 1}, 5, "nice post")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(5), created.PostID)
		assert.Equal(t, uint(1), created.AuthorID)
	})
}

func TestCreateProject(t *testing.T) {
	viewer := &models.Profile{ID: 2, Name: "Sam"}

	t.Run("requires title and description", func(t *testing.T) {
		svc := NewContentService(noopPostRepo(), noopProjectRepo(), noopCommentRepo())
		_, err := svc.CreateProject(context.Background(), viewer, CreateProjectInput{Title: "t"})
		require.Error(t, err)
	})

	t.Run("writes then refetches", func(t *testing.T) {
		var gotTechs []string
		projectRepo := noopProjectRepo()
		projectRepo.createFn = func(_ context.Context, project *models.Project, technologies []string) error {
			project.ID = 3
			gotTechs = technologies
			return nil
		}
		projectRepo.listFn = func(_ context.Context) ([]models.Project, error) {
			p := models.Project{ID: 3, Title: "t", Description: "d", AuthorID: 2,
				Author: models.Profile{ID: 2, Name: "Sam"}}
			p.Normalize()
			return []models.Project{p}, nil
		}

		svc := NewContentService(noopPostRepo(), projectRepo, noopCommentRepo())
		created, err := svc.CreateProject(context.Background(), viewer, CreateProjectInput{
			Title:        "t",
			Description:  "d",
			Technologies: []string{"Go", "React"},
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(3), created.ID)
		assert.Equal(t, []string{"Go", "React"}, gotTechs)
	})
}
