package database

import "github.com/teepha/More-Recipes/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Recipe{},
		&models.Review{},
		&models.Vote{},
		&models.Favorite{},
	}
}
