package models

// Tag is a deduplicated label shared across posts. A label is created on
// first use and reused by any later post referencing the same name
// (case-sensitive exact match).
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

// TableName specifies the table name for GORM.
func (Tag) TableName() string {
	return "tags"
}
