// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/teepha/More-Recipes/internal/database"
	"github.com/teepha/More-Recipes/internal/models"
)

var seq atomic.Int64

// NewTestDB returns an isolated in-memory SQLite database with the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

// CreateUser inserts a user with a unique username derived from prefix.
// The stored password is not a valid bcrypt hash.
func CreateUser(t *testing.T, db *gorm.DB, prefix string) *models.User {
	t.Helper()
	n := seq.Add(1)
	username := fmt.Sprintf("%s_%d", strings.ToLower(prefix), n)
	user := &models.User{
		FullName:     "Test " + prefix,
		Username:     username,
		Email:        username + "@example.com",
		Password:     "not-a-hash",
		ProfileImage: "https://img.example.com/" + username + ".png",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateRecipe inserts a recipe owned by userID.
func CreateRecipe(t *testing.T, db *gorm.DB, userID uint, title string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Title:       title,
		Ingredients: "Rice, tomatoes, pepper, onions and stock",
		Procedures:  "Boil the rice, fry the stew, mix and simmer",
		UserID:      userID,
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}
