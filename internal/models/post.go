package models

import (
	"time"

	"gorm.io/gorm"
)

// PlaceholderAuthor is shown when a post or comment author can no longer be
// resolved. Reads degrade to the placeholder rather than failing.
const PlaceholderAuthor = "Unknown"

// Post is a published article. Author display fields, the liker set and the
// like count are denormalized at read time from the joined rows; the like
// count is always the cardinality of LikedBy and is never stored.
type Post struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Title      string         `gorm:"not null" json:"title"`
	Content    string         `gorm:"not null" json:"content"`
	Excerpt    string         `json:"excerpt"`
	CoverImage string         `json:"cover_image"`
	AuthorID   uint           `gorm:"not null" json:"author_id"`
	Author     Profile        `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	TagRows  []Tag      `gorm:"many2many:post_tags" json:"-"`
	LikeRows []PostLike `gorm:"foreignKey:PostID" json:"-"`
	Comments []Comment  `gorm:"foreignKey:PostID" json:"comments"`

	// Normalized fields, computed from the joined rows.
	AuthorName  string   `gorm:"-" json:"author_name"`
	AuthorImage string   `gorm:"-" json:"author_image"`
	Likes       int      `gorm:"-" json:"likes"`
	LikedBy     []uint   `gorm:"-" json:"liked_by"`
	Tags        []string `gorm:"-" json:"tags"`
}

// Normalize derives the computed read-side fields from the joined rows.
func (p *Post) Normalize() {
	if p.Author.ID != 0 && p.Author.Name != "" {
		p.AuthorName = p.Author.Name
		p.AuthorImage = p.Author.ProfileImage
	} else {
		p.AuthorName = PlaceholderAuthor
	}

	p.LikedBy = make([]uint, 0, len(p.LikeRows))
	for _, l := range p.LikeRows {
		p.LikedBy = append(p.LikedBy, l.UserID)
	}
	p.Likes = len(p.LikedBy)

	p.Tags = make([]string, 0, len(p.TagRows))
	for _, t := range p.TagRows {
		p.Tags = append(p.Tags, t.Name)
	}

	for i := range p.Comments {
		p.Comments[i].Normalize()
	}
}

// LikedByUser reports whether the given user is in the liker set.
func (p *Post) LikedByUser(userID uint) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
