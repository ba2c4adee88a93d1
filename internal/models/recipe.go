package models

import (
	"strings"
	"time"
)

// Recipe is a user-authored entry with vote tallies.
// Upvotes and Downvotes always equal the number of matching Vote rows.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Ingredients string    `gorm:"type:text;not null" json:"ingredients"`
	Procedures  string    `gorm:"type:text;not null" json:"procedures"`
	Upvotes     int       `gorm:"not null;default:0" json:"upvotes"`
	Downvotes   int       `gorm:"not null;default:0" json:"downvotes"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Reviews   []Review   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Votes     []Vote     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// SortField is a recipe column clients may sort by.
type SortField string

const (
	SortByUpvotes   SortField = "upvotes"
	SortByDownvotes SortField = "downvotes"
)

// RecipeSort describes a validated ordering request.
type RecipeSort struct {
	Field      SortField
	Descending bool
}

// OrderClause renders the ORDER BY expression. Ties fall back to insertion order.
func (s RecipeSort) OrderClause() string {
	dir := "ASC"
	if s.Descending {
		dir = "DESC"
	}
	return string(s.Field) + " " + dir + ", id ASC"
}

// ParseRecipeSort builds a RecipeSort from already validated query values.
func ParseRecipeSort(sort, order string) RecipeSort {
	return RecipeSort{
		Field:      SortField(strings.ToLower(strings.TrimSpace(sort))),
		Descending: strings.EqualFold(strings.TrimSpace(order), "desc"),
	}
}
