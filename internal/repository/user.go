// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/teepha/More-Recipes/internal/models"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetProfile(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetProfile loads the public projection of a user. The password hash is
// never selected.
func (r *userRepository) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Select(models.ProfileColumns).
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// GetByUsername matches case-insensitively and returns nil, nil when absent.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// FindByUsernameOrEmail returns every user whose username or email matches,
// ignoring case. Empty arguments never match.
func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error) {
	if username == "" && email == "" {
		return nil, nil
	}
	var users []models.User
	q := r.db.WithContext(ctx).Select("id", "username", "email")
	switch {
	case username != "" && email != "":
		q = q.Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", username, email)
	case username != "":
		q = q.Where("LOWER(username) = LOWER(?)", username)
	default:
		q = q.Where("LOWER(email) = LOWER(?)", email)
	}
	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return accountConflictError(err)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).
		Model(user).
		Select("full_name", "username", "email", "profile_image", "location", "about_me", "updated_at").
		Updates(user).Error
	if err != nil {
		if isUniqueConstraintError(err) {
			return accountConflictError(err)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// accountConflictError reports a unique violation on users against the
// field that caused it.
func accountConflictError(err error) error {
	switch violatedColumn(err) {
	case "username":
		return models.NewConflictError("Username or email already exist", map[string]string{"username": "Username already exist"})
	case "email":
		return models.NewConflictError("Username or email already exist", map[string]string{"email": "Email already exist"})
	}
	return models.NewConflictError("Username or email already exist", map[string]string{"form": "Username or email already exist"})
}
