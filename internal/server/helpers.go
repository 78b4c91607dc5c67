package server

import (
	"strconv"

	"showcase/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID extracts and validates a numeric ID from a URL parameter.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("invalid " + param)
	}
	return uint(id), nil
}

// currentUserID returns the authenticated user's ID from request locals.
// It is zero on routes guarded by AuthOptional when no token was sent.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// resolveViewer loads the full profile of the authenticated user, or nil
// for anonymous requests.
func (s *Server) resolveViewer(c *fiber.Ctx) (*models.Profile, error) {
	id := currentUserID(c)
	if id == 0 {
		return nil, nil
	}
	return s.sessions.ResolveViewer(c.Context(), id)
}
