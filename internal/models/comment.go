// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is an append-only comment on a post.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"not null" json:"content"`
	PostID    uint           `gorm:"not null" json:"post_id"`
	AuthorID  uint           `gorm:"not null" json:"author_id"`
	Author    Profile        `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Denormalized author display fields, computed at read time.
	AuthorName  string `gorm:"-" json:"author_name"`
	AuthorImage string `gorm:"-" json:"author_image"`
}

// Normalize derives the author display fields from the joined author row.
func (c *Comment) Normalize() {
	if c.Author.ID != 0 && c.Author.Name != "" {
		c.AuthorName = c.Author.Name
		c.AuthorImage = c.Author.ProfileImage
	} else {
		c.AuthorName = PlaceholderAuthor
	}
}
