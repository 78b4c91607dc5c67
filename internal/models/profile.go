// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile represents a member of the platform. There is exactly one profile
// per authenticated principal; the row doubles as the credential record.
type Profile struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"unique;not null" json:"email"`
	Password     string         `gorm:"not null" json:"-"`
	Bio          string         `json:"bio"`
	ProfileImage string         `json:"profile_image"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Followers and Following are not persisted on this table; they are
	// loaded from the follows table as part of a profile fetch so a Profile
	// is always a consistent snapshot.
	Followers []uint `gorm:"-" json:"followers"`
	Following []uint `gorm:"-" json:"following"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}

// IsFollowing reports whether this profile follows the given user.
func (p *Profile) IsFollowing(userID uint) bool {
	for _, id := range p.Following {
		if id == userID {
			return true
		}
	}
	return false
}
