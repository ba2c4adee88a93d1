package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/teepha/More-Recipes/internal/models"
)

// pgUniqueViolation is the SQLSTATE postgres reports for unique index conflicts.
const pgUniqueViolation = "23505"

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}

// violatedColumn names the users column behind a unique violation, or ""
// when the constraint is not recognised. Postgres reports the index name
// (idx_users_username_lower); SQLite reports the column (users.username).
func violatedColumn(err error) string {
	detail := err.Error()
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		detail = pgErr.ConstraintName
	}
	detail = strings.ToLower(detail)
	switch {
	case strings.Contains(detail, "username"):
		return "username"
	case strings.Contains(detail, "email"):
		return "email"
	}
	return ""
}

// wrap converts a datastore failure into an AppError. Errors that already
// carry a code pass through.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return models.NewInternalError(err)
}
