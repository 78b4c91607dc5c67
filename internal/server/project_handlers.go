package server

import (
	"showcase/internal/models"
	"showcase/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Link         string   `json:"link"`
	Technologies []string `json:"technologies"`
}

// GetProjects refreshes the project snapshot and returns it newest first.
func (s *Server) GetProjects(c *fiber.Ctx) error {
	_ = s.content.RefreshProjects(c.Context())
	return c.JSON(fiber.Map{
		"projects": s.content.Projects(),
		"loading":  s.content.ProjectsLoading(),
	})
}

// GetProject returns a single project from the snapshot by ID.
func (s *Server) GetProject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	project, ok := s.content.GetProject(id)
	if !ok {
		notFound := models.NewNotFoundError("Project", id)
		return models.RespondWithError(c, fiber.StatusNotFound, notFound)
	}
	return c.JSON(project)
}

// CreateProject creates a project with its technology labels.
func (s *Server) CreateProject(c *fiber.Ctx) error {
	var req createProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("invalid request body"))
	}

	viewer, err := s.resolveViewer(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	project, err := s.content.CreateProject(c.Context(), viewer, service.CreateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		Link:         req.Link,
		Technologies: req.Technologies,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}
