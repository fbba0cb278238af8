package posts

import (
	"gorm.io/gorm"

	"github.com/blogforge/blog-backend/internal/db"
)

// Init migrates the posts table. Runs after auth.Init so the accounts table
// the author foreign key points at already exists.
func Init(conn *gorm.DB) error {
	if err := db.EnsureSchema(conn, "blog"); err != nil {
		return err
	}
	return conn.AutoMigrate(&Post{})
}
