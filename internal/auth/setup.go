package auth

import (
	"gorm.io/gorm"

	"github.com/blogforge/blog-backend/internal/db"
)

// Init creates the blog schema and migrates the accounts table.
func Init(conn *gorm.DB) error {
	if err := db.EnsureSchema(conn, "blog"); err != nil {
		return err
	}
	return conn.AutoMigrate(&Account{})
}
