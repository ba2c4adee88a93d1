package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/teepha/More-Recipes/internal/config"
	"github.com/teepha/More-Recipes/internal/middleware"
)

// ApplySchema brings the schema up to date. Postgres runs the embedded SQL
// migrations; outside production AutoMigrate then fills in anything the SQL
// does not cover. SQLite always uses AutoMigrate.
func ApplySchema(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if db.Dialector.Name() == "postgres" {
		if err := RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("run sql migrations: %w", err)
		}
		if cfg.IsProduction() {
			return nil
		}
	}

	if err := db.WithContext(ctx).AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	middleware.Logger.Info("Database migration completed")
	return nil
}
