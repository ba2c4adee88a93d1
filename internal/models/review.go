package models

import "time"

// Review is a user's commentary on a recipe.
// Username and ProfileImage are a snapshot of the author's profile; they are
// rewritten whenever the author updates their profile.
type Review struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RecipeID      uint      `gorm:"not null;index" json:"recipeId"`
	UserID        uint      `gorm:"not null;index" json:"userId"`
	ReviewSubject string    `gorm:"type:text;not null" json:"reviewSubject"`
	Username      string    `gorm:"not null" json:"username"`
	ProfileImage  string    `json:"profileImage"`
	Vote          string    `gorm:"type:varchar(10)" json:"vote,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
