package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/repository"
	"github.com/teepha/More-Recipes/internal/testutil"
)

func newTestRepos(t *testing.T) (*gorm.DB, repository.Repos, repository.TxFunc) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return db, repository.NewRepos(db), repository.Transactor(db)
}

// passthroughTx runs fn against repos without a transaction, for stub-backed tests.
func passthroughTx(repos repository.Repos) repository.TxFunc {
	return func(_ context.Context, fn func(repository.Repos) error) error {
		return fn(repos)
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, models.HasCode(err, code), "expected %s, got %v", code, err)
	}
}

func ptr(s string) *string { return &s }
