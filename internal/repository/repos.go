package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repos bundles every repository bound to the same connection or transaction.
type Repos struct {
	Users     UserRepository
	Recipes   RecipeRepository
	Reviews   ReviewRepository
	Votes     VoteRepository
	Favorites FavoriteRepository
}

// NewRepos binds every repository to db.
func NewRepos(db *gorm.DB) Repos {
	return Repos{
		Users:     NewUserRepository(db),
		Recipes:   NewRecipeRepository(db),
		Reviews:   NewReviewRepository(db),
		Votes:     NewVoteRepository(db),
		Favorites: NewFavoriteRepository(db),
	}
}

// TxFunc runs fn with repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type TxFunc func(ctx context.Context, fn func(Repos) error) error

// Transactor returns a TxFunc backed by db.
func Transactor(db *gorm.DB) TxFunc {
	return func(ctx context.Context, fn func(Repos) error) error {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(NewRepos(tx))
		})
		return wrap(err)
	}
}
