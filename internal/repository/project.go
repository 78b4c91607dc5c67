package repository

import (
	"context"

	"showcase/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository defines persistence operations for projects and their
// technology links.
type ProjectRepository interface {
	// List performs one wide read joining author and technology labels,
	// newest created first. The returned projects are normalized.
	List(ctx context.Context) ([]models.Project, error)
	// Create persists the project row and its technology links in one
	// transaction.
	Create(ctx context.Context, project *models.Project, technologies []string) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository returns a new ProjectRepository implementation.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("TechnologyRows").
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	for i := range projects {
		projects[i].Normalize()
	}
	return projects, nil
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project, technologies []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		for _, tech := range technologies {
			if tech == "" {
				continue
			}
			link := &models.ProjectTechnology{
				ProjectID:  project.ID,
				Technology: tech,
			}
			if err := tx.Create(link).Error; err != nil {
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
