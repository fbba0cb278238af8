// Package seeds provisions the bootstrap admin account.
package seeds

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blogforge/blog-backend/internal/auth"
	"github.com/blogforge/blog-backend/internal/utils"
)

const (
	adminName     = "Test Admin"
	adminEmail    = "testadmin@blogapp.com"
	adminPassword = "admin123456"
)

// SeedAdmin creates the bootstrap admin account when it does not exist.
// Idempotent: a second run is a no-op.
func SeedAdmin(conn *gorm.DB, hasher *auth.Hasher) error {
	var existing auth.Account
	err := conn.First(&existing, "email = ?", adminEmail).Error
	if err == nil {
		log.Printf("[seeds] admin account already exists (%s)", adminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	digest, err := hasher.Hash(adminPassword)
	if err != nil {
		return err
	}

	account := auth.Account{
		ID:             uuid.NewString(),
		Name:           adminName,
		Email:          adminEmail,
		HashedPassword: digest,
		Role:           utils.RoleAdmin,
	}
	if err := conn.Create(&account).Error; err != nil {
		return err
	}

	log.Printf("[seeds] created admin account %s", adminEmail)
	return nil
}
