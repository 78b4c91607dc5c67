package models

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestPostNormalize(t *testing.T) {
	post := Post{
		Author:   Profile{ID: 1, Name: "Ada", ProfileImage: "img.png"},
		LikeRows: []PostLike{{PostID: 1, UserID: 2}, {PostID: 1, UserID: 3}},
		TagRows:  []Tag{{ID: 1, Name: "golang"}},
		Comments: []Comment{{Content: "hi", Author: Profile{ID: 2, Name: "Bob"}}},
	}
	post.Normalize()

	assert.Equal(t, "Ada", post.AuthorName)
	assert.Equal(t, "img.png", post.AuthorImage)
	assert.Equal(t, []uint{2, 3}, post.LikedBy)
	assert.Equal(t, 2, post.Likes)
	assert.Equal(t, []string{"golang"}, post.Tags)
	assert.Equal(t, "Bob", post.Comments[0].AuthorName)

	assert.True(t, post.LikedByUser(2))
	assert.False(t, post.LikedByUser(9))
}

func TestPostNormalize_MissingAuthorUsesPlaceholder(t *testing.T) {
	post := Post{AuthorID: 99}
	post.Normalize()

	assert.Equal(t, PlaceholderAuthor, post.AuthorName)
	assert.Empty(t, post.LikedBy)
	assert.Zero(t, post.Likes)
}

func TestProjectNormalize(t *testing.T) {
	project := Project{
		Author: Profile{ID: 1, Name: "Ada"},
		TechnologyRows: []ProjectTechnology{
			{ProjectID: 1, Technology: "Go"},
			{ProjectID: 1, Technology: "React"},
		},
	}
	project.Normalize()

	assert.Equal(t, "Ada", project.AuthorName)
	assert.Equal(t, []string{"Go", "React"}, project.Technologies)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFoundError("Post", 1), fiber.StatusNotFound},
		{"validation", NewValidationError("bad"), fiber.StatusBadRequest},
		{"unauthenticated", NewUnauthenticatedError("login"), fiber.StatusUnauthorized},
		{"invalid credentials", NewInvalidCredentialsError(), fiber.StatusUnauthorized},
		{"partial provisioning", NewPartialProvisioningError(errors.New("x")), fiber.StatusConflict},
		{"internal", NewInternalError(errors.New("x")), fiber.StatusInternalServerError},
		{"plain error", errors.New("x"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewInternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "root cause")
}
