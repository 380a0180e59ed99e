package models

import "time"

// Post represents a blog article.
// PublishedAt is stamped only when a post is created already published.
type Post struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null;index:idx_posts_title" json:"title"`
	Slug        string     `gorm:"size:255;not null;uniqueIndex:idx_posts_slug" json:"slug"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Excerpt     *string    `gorm:"type:text" json:"excerpt"`
	IsPublished bool       `gorm:"not null;default:false" json:"is_published"`
	ViewCount   int        `gorm:"not null;default:0" json:"view_count"`
	AuthorID    uint       `gorm:"not null;index:idx_posts_author_id" json:"author_id"`
	Author      *User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	CategoryID  *uint      `gorm:"index:idx_posts_category_id" json:"category_id"`
	Category    *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the database table name for Post.
func (Post) TableName() string {
	return "posts"
}

// GetID returns the primary key.
func (p Post) GetID() uint {
	return p.ID
}
