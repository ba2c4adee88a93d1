package models

import "time"

// VoteDirection is the direction of a vote on a recipe.
type VoteDirection string

const (
	// VoteUp marks an upvote.
	VoteUp VoteDirection = "up"
	// VoteDown marks a downvote.
	VoteDown VoteDirection = "down"
)

// Vote links a user to a recipe they voted on.
// The combination of UserID and RecipeID must be unique.
type Vote struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"not null;uniqueIndex:idx_vote_user_recipe" json:"userId"`
	RecipeID  uint          `gorm:"not null;uniqueIndex:idx_vote_user_recipe;index" json:"recipeId"`
	Direction VoteDirection `gorm:"type:varchar(4);not null" json:"direction"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// VoteOutcome reports what a vote request did.
type VoteOutcome string

const (
	VoteCast    VoteOutcome = "cast"
	VoteChanged VoteOutcome = "changed"
	VoteRemoved VoteOutcome = "removed"
)
