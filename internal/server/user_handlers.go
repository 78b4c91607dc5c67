package server

import (
	"showcase/internal/models"
	"showcase/internal/service"
	"showcase/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type updateProfileRequest struct {
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

// GetMyProfile returns the authenticated user's profile with follower and
// following ID sets attached.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	viewer, err := s.resolveViewer(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(viewer)
}

// UpdateMyProfile applies a profile update and returns the fresh profile.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	if err := validation.ValidateDisplayName(req.Name); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	viewer, err := s.resolveViewer(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	updated, err := s.sessions.UpdateProfile(c.Context(), viewer, req.Name, req.Bio, req.ProfileImage)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(updated)
}

// GetAllUsers returns a page of profiles for people discovery.
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 100 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	users, err := s.userRepo.List(c.Context(), limit, offset)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUserProfile returns another user's profile plus whether the viewer
// follows them.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	user, err := s.userRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	viewer, err := s.resolveViewer(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"user":         user,
		"is_following": s.graph.IsFollowing(viewer, id),
	})
}

// GetUserPosts returns the user's posts, newest first.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	_ = s.content.RefreshPosts(c.Context())
	return c.JSON(fiber.Map{
		"posts": service.PostsByAuthor(id, s.content.Posts()),
	})
}

// GetUserProjects returns the user's projects, newest first.
func (s *Server) GetUserProjects(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	_ = s.content.RefreshProjects(c.Context())
	return c.JSON(fiber.Map{
		"projects": service.ProjectsByAuthor(id, s.content.Projects()),
	})
}

// FollowUser creates a follow edge from the viewer to the target user.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	viewer, err := s.resolveViewer(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	updated, status, err := s.graph.Follow(c.Context(), viewer, id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"status": status,
		"user":   updated,
	})
}

// UnfollowUser removes the follow edge from the viewer to the target user.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	viewer, err := s.resolveViewer(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	updated, status, err := s.graph.Unfollow(c.Context(), viewer, id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"status": status,
		"user":   updated,
	})
}
