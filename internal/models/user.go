// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a blog author or commenter.
// Email and username are unique; their case sensitivity follows the store collation.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	Username       string    `gorm:"size:50;not null;uniqueIndex:idx_users_username" json:"username"`
	FullName       *string   `gorm:"size:100" json:"full_name"`
	HashedPassword string    `gorm:"column:hashed_password;size:255;not null" json:"-"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser    bool      `gorm:"not null;default:false" json:"is_superuser"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string {
	return "users"
}

// GetID returns the primary key.
func (u User) GetID() uint {
	return u.ID
}
