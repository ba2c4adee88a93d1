// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a More-Recipes account.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"not null" json:"fullName"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	ProfileImage string    `json:"profileImage"`
	Location     string    `json:"location"`
	AboutMe      string    `gorm:"type:text" json:"aboutMe"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Recipes []Recipe `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// ProfileColumns is the restricted projection returned to clients.
var ProfileColumns = []string{
	"id", "full_name", "username", "email", "profile_image", "location", "about_me",
}
