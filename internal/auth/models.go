package auth

import (
	"time"

	"github.com/blogforge/blog-backend/internal/utils"
)

// Account is a registered user. Emails are stored lowercase and unique; the
// password digest never serializes.
type Account struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"not null" json:"name"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string     `gorm:"not null" json:"-"`
	Role           utils.Role `gorm:"type:text;not null;default:'user'" json:"role"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (Account) TableName() string { return "blog.accounts" }
