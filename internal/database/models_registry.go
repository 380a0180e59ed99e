package database

import "blogcms/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models,
// ordered so referenced tables are created first.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
	}
}
