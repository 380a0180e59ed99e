package models

import "time"

// Category groups posts under a unique name and slug.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:idx_categories_name" json:"name"`
	Slug        string    `gorm:"size:100;not null;uniqueIndex:idx_categories_slug" json:"slug"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for Category.
func (Category) TableName() string {
	return "categories"
}

// GetID returns the primary key.
func (c Category) GetID() uint {
	return c.ID
}
