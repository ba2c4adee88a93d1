package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teepha/More-Recipes/internal/models"
	"github.com/teepha/More-Recipes/internal/testutil"
)

func TestVoteRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repos := NewRepos(db)
	ctx := context.Background()
	ada := testutil.CreateUser(t, db, "ada")
	bob := testutil.CreateUser(t, db, "bob")
	recipe := testutil.CreateRecipe(t, db, ada.ID, "Amala")

	none, err := repos.Votes.Get(ctx, ada.ID, recipe.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, repos.Votes.Create(ctx, &models.Vote{UserID: ada.ID, RecipeID: recipe.ID, Direction: models.VoteUp}))
	require.NoError(t, repos.Votes.Create(ctx, &models.Vote{UserID: bob.ID, RecipeID: recipe.ID, Direction: models.VoteUp}))

	err = repos.Votes.Create(ctx, &models.Vote{UserID: bob.ID, RecipeID: recipe.ID, Direction: models.VoteDown})
	assert.True(t, models.HasCode(err, models.CodeConflict))

	up, down, err := repos.Votes.Count(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, up)
	assert.Equal(t, 0, down)

	bobs, err := repos.Votes.Get(ctx, bob.ID, recipe.ID)
	require.NoError(t, err)
	require.NoError(t, repos.Votes.UpdateDirection(ctx, bobs.ID, models.VoteDown))
	up, down, err = repos.Votes.Count(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, up)
	assert.Equal(t, 1, down)

	require.NoError(t, repos.Votes.Delete(ctx, bobs.ID))
	require.NoError(t, repos.Votes.DeleteByRecipe(ctx, recipe.ID))
	up, down, err = repos.Votes.Count(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Zero(t, up+down)
}

func TestReviewRepository_SyncAuthorProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	repos := NewRepos(db)
	ctx := context.Background()
	ada := testutil.CreateUser(t, db, "ada")
	bob := testutil.CreateUser(t, db, "bob")
	recipe := testutil.CreateRecipe(t, db, ada.ID, "Amala")

	require.NoError(t, repos.Reviews.Create(ctx, &models.Review{RecipeID: recipe.ID, UserID: ada.ID, ReviewSubject: "a", Username: ada.Username}))
	require.NoError(t, repos.Reviews.Create(ctx, &models.Review{RecipeID: recipe.ID, UserID: bob.ID, ReviewSubject: "b", Username: bob.Username}))

	n, err := repos.Reviews.CountByUser(ctx, ada.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, repos.Reviews.SyncAuthorProfile(ctx, ada.ID, "ada_new", "https://img.example.com/new.png"))
	reviews, err := repos.Reviews.ListByRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "ada_new", reviews[0].Username)
	assert.Equal(t, "https://img.example.com/new.png", reviews[0].ProfileImage)
	assert.Equal(t, bob.Username, reviews[1].Username)

	require.NoError(t, repos.Reviews.DeleteByRecipe(ctx, recipe.ID))
	reviews, err = repos.Reviews.ListByRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
