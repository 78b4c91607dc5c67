package models

import (
	"time"

	"gorm.io/gorm"
)

// Project is a portfolio entry. Projects have no like or comment sub-entities.
type Project struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	Image       string         `json:"image"`
	Link        string         `json:"link"`
	AuthorID    uint           `gorm:"not null" json:"author_id"`
	Author      Profile        `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	TechnologyRows []ProjectTechnology `gorm:"foreignKey:ProjectID" json:"-"`

	// Normalized fields, computed from the joined rows.
	AuthorName   string   `gorm:"-" json:"author_name"`
	Technologies []string `gorm:"-" json:"technologies"`
}

// Normalize derives the computed read-side fields from the joined rows.
func (p *Project) Normalize() {
	if p.Author.ID != 0 && p.Author.Name != "" {
		p.AuthorName = p.Author.Name
	} else {
		p.AuthorName = PlaceholderAuthor
	}

	p.Technologies = make([]string, 0, len(p.TechnologyRows))
	for _, t := range p.TechnologyRows {
		p.Technologies = append(p.Technologies, t.Technology)
	}
}

// ProjectTechnology links a project to a technology label.
type ProjectTechnology struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ProjectID  uint   `gorm:"not null;index" json:"project_id"`
	Technology string `gorm:"not null" json:"technology"`
}

// TableName specifies the table name for GORM.
func (ProjectTechnology) TableName() string {
	return "project_technologies"
}
