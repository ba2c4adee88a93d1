package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/repository"
	"github.com/teepha/More-Recipes/internal/testutil"
)

func TestVoteService_Transitions(t *testing.T) {
	t.Parallel()
	db, _, tx := newTestRepos(t)
	svc := NewVoteService(tx)
	owner := testutil.CreateUser(t, db, "chef")
	ada := testutil.CreateUser(t, db, "ada")
	bob := testutil.CreateUser(t, db, "bob")
	recipe := testutil.CreateRecipe(t, db, owner.ID, "Amala")
	ctx := context.Background()

	steps := []struct {
		name      string
		userID    uint
		direction models.VoteDirection
		outcome   models.VoteOutcome
		up, down  int
	}{
		{"ada upvotes", ada.ID, models.VoteUp, models.VoteCast, 1, 0},
		{"bob downvotes", bob.ID, models.VoteDown, models.VoteCast, 1, 1},
		{"ada switches to downvote", ada.ID, models.VoteDown, models.VoteChanged, 0, 2},
		{"bob withdraws", bob.ID, models.VoteDown, models.VoteRemoved, 0, 1},
		{"bob upvotes again", bob.ID, models.VoteUp, models.VoteCast, 1, 1},
	}

	for _, step := range steps {
		got, outcome, err := svc.Vote(ctx, step.userID, recipe.ID, step.direction)
		require.NoError(t, err, step.name)
		assert.Equal(t, step.outcome, outcome, step.name)
		assert.Equal(t, step.up, got.Upvotes, step.name)
		assert.Equal(t, step.down, got.Downvotes, step.name)

		var stored models.Recipe
		require.NoError(t, db.First(&stored, recipe.ID).Error)
		var upRows, downRows int64
		db.Model(&models.Vote{}).Where("recipe_id = ? AND direction = ?", recipe.ID, models.VoteUp).Count(&upRows)
		db.Model(&models.Vote{}).Where("recipe_id = ? AND direction = ?", recipe.ID, models.VoteDown).Count(&downRows)
		assert.EqualValues(t, upRows, stored.Upvotes, step.name)
		assert.EqualValues(t, downRows, stored.Downvotes, step.name)
	}
}

func TestVoteService_UnknownRecipe(t *testing.T) {
	t.Parallel()
	db, _, tx := newTestRepos(t)
	ada := testutil.CreateUser(t, db, "ada")

	_, _, err := NewVoteService(tx).Vote(context.Background(), ada.ID, 9999, models.VoteUp)
	assertCode(t, err, models.CodeInvalidRecipeID)
}

func TestFavoriteService_Toggle(t *testing.T) {
	t.Parallel()
	db, repos, tx := newTestRepos(t)
	svc := NewFavoriteService(repos, tx)
	owner := testutil.CreateUser(t, db, "chef")
	ada := testutil.CreateUser(t, db, "ada")
	a := testutil.CreateRecipe(t, db, owner.ID, "Amala")
	b := testutil.CreateRecipe(t, db, owner.ID, "Banga")
	ctx := context.Background()

	on, err := svc.Toggle(ctx, ada.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, on)
	on, err = svc.Toggle(ctx, ada.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, on)

	favs, err := svc.List(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, b.ID, favs[0].ID)

	on, err = svc.Toggle(ctx, ada.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, on)
	favs, err = svc.List(ctx, ada.ID)
	require.NoError(t, err)
	assert.Len(t, favs, 1)

	_, err = svc.Toggle(ctx, ada.ID, 9999)
	assertCode(t, err, models.CodeInvalidRecipeID)
}

func TestReviewService_AddCopiesAuthorProfile(t *testing.T) {
	t.Parallel()
	db, _, tx := newTestRepos(t)
	svc := NewReviewService(tx)
	owner := testutil.CreateUser(t, db, "chef")
	ada := testutil.CreateUser(t, db, "ada")
	recipe := testutil.CreateRecipe(t, db, owner.ID, "Amala")
	ctx := context.Background()

	reviews, err := svc.Add(ctx, AddReviewInput{UserID: ada.ID, RecipeID: recipe.ID, ReviewSubject: " Delicious ", Vote: "UpVote"})
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Delicious", reviews[0].ReviewSubject)
	assert.Equal(t, ada.Username, reviews[0].Username)
	assert.Equal(t, ada.ProfileImage, reviews[0].ProfileImage)
	assert.Equal(t, "upvote", reviews[0].Vote)

	reviews, err = svc.Add(ctx, AddReviewInput{UserID: owner.ID, RecipeID: recipe.ID, ReviewSubject: "Thanks"})
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	_, err = svc.Add(ctx, AddReviewInput{UserID: ada.ID, RecipeID: 9999, ReviewSubject: "?"})
	assertCode(t, err, models.CodeInvalidRecipeID)
}

func TestVoteService_LocksRecipeBeforeCounting(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "recipes" .*FOR UPDATE`).
		WithArgs(3, 1).
		WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	svc := NewVoteService(repository.Transactor(db))
	_, _, err = svc.Vote(context.Background(), 1, 3, models.VoteUp)
	assertCode(t, err, models.CodeInternal)
	assert.NoError(t, mock.ExpectationsWereMet())
}
