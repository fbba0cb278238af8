package posts

import (
	"time"

	"github.com/blogforge/blog-backend/internal/auth"
)

// MaxTitleLength is the hard cap on post titles, counted in characters.
const MaxTitleLength = 100

// Post is an owned blog article. AuthorID must reference an existing account
// at creation time.
type Post struct {
	ID        string       `gorm:"primaryKey" json:"id"`
	Title     string       `gorm:"not null" json:"title"`
	Content   string       `gorm:"not null" json:"content"`
	AuthorID  string       `gorm:"not null;index" json:"authorId"`
	Author    auth.Account `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (Post) TableName() string { return "blog.posts" }
