package server

import (
	"showcase/internal/models"
	"showcase/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	CoverImage string   `json:"cover_image"`
	Tags       []string `json:"tags"`
}

type createCommentRequest struct {
	Content string `json:"content"`
}

// GetPosts refreshes the post snapshot and returns it newest first. A
// refresh failure degrades to the previous snapshot rather than an error.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	_ = s.content.RefreshPosts(c.Context())
	return c.JSON(fiber.Map{
		"posts":   s.content.Posts(),
		"loading": s.content.PostsLoading(),
	})
}

// GetPost returns a single post from the snapshot by ID.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	post, ok := s.content.GetPost(id)
	if !ok {
		notFound := models.NewNotFoundError("Post", id)
		return models.RespondWithError(c, fiber.StatusNotFound, notFound)
	}

	hasLiked := false
	if viewer, err := s.resolveViewer(c); err == nil && viewer != nil {
		hasLiked = service.HasLiked(viewer, id, s.content.Posts())
	}

	return c.JSON(fiber.Map{
		"post":      post,
		"has_liked": hasLiked,
	})
}

// CreatePost creates a post with its tag links and returns the normalized
// result from the refreshed snapshot.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	viewer, err := s.resolveViewer(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	post, err := s.content.CreatePost(c.Context(), viewer, service.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		Tags:       req.Tags,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// LikePost records a like for the authenticated user. Liking an already
// liked post is a no-op.
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	viewer, err := s.resolveViewer(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	if err := s.content.LikePost(c.Context(), viewer, id); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"message": "post liked"})
}

// UnlikePost removes the authenticated user's like. Removing an absent like
// is a no-op.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	viewer, err := s.resolveViewer(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	if err := s.content.UnlikePost(c.Context(), viewer, id); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"message": "post unliked"})
}

// CreateComment appends a comment to a post.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	viewer, err := s.resolveViewer(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	if err := s.content.CommentOnPost(c.Context(), viewer, id, req.Content); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	post, ok := s.content.GetPost(id)
	if !ok {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "comment created"})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetFeed returns posts from the viewer and the people the viewer follows,
// newest first.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	viewer, err := s.resolveViewer(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	if viewer == nil {
		unauthed := models.NewUnauthenticatedError("You must be logged in to view your feed")
		return models.RespondWithError(c, fiber.StatusUnauthorized, unauthed)
	}

	_ = s.content.RefreshPosts(c.Context())
	return c.JSON(fiber.Map{
		"posts": service.FeedFor(viewer, s.content.Posts()),
	})
}
