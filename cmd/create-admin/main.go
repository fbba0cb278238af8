// Command create-admin provisions the bootstrap admin account. Safe to run
// repeatedly.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/blogforge/blog-backend/internal/auth"
	"github.com/blogforge/blog-backend/internal/config"
	"github.com/blogforge/blog-backend/internal/db"
	"github.com/blogforge/blog-backend/internal/seeds"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close(conn)

	if err := auth.Init(conn); err != nil {
		log.Fatal("Failed to migrate accounts: ", err)
	}

	if err := seeds.SeedAdmin(conn, auth.NewHasher(cfg.BcryptCost)); err != nil {
		log.Fatal("Failed to seed admin account: ", err)
	}
}
