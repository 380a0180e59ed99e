package models

import "time"

// Comment is a remark on a post. Replies point at their parent through ParentID;
// the Post and Parent associations exist only to declare foreign keys and are never loaded.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsApproved bool      `gorm:"not null;default:false" json:"is_approved"`
	AuthorID   uint      `gorm:"not null;index:idx_comments_author_id" json:"author_id"`
	Author     *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	PostID     uint      `gorm:"not null;index:idx_comments_post_id" json:"post_id"`
	Post       *Post     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	ParentID   *uint     `gorm:"index:idx_comments_parent_id" json:"parent_id"`
	Parent     *Comment  `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string {
	return "comments"
}

// GetID returns the primary key.
func (c Comment) GetID() uint {
	return c.ID
}
