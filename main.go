package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/blogforge/blog-backend/internal/auth"
	"github.com/blogforge/blog-backend/internal/config"
	"github.com/blogforge/blog-backend/internal/db"
	"github.com/blogforge/blog-backend/internal/middleware"
	"github.com/blogforge/blog-backend/internal/posts"
	"github.com/blogforge/blog-backend/internal/users"
	"github.com/blogforge/blog-backend/internal/web"
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
	log.Println("Connected to database")

	if err := auth.Init(conn); err != nil {
		log.Fatal("Failed to migrate accounts: ", err)
	}
	if err := posts.Init(conn); err != nil {
		log.Fatal("Failed to migrate posts: ", err)
	}

	codec := auth.NewTokenCodec([]byte(cfg.JWTSecret), cfg.TokenTTL)
	hasher := auth.NewHasher(cfg.BcryptCost)

	authHandler := &auth.Handler{DB: conn, Tokens: codec, Passwords: hasher, SecureCookies: cfg.IsProduction()}
	postsHandler := &posts.Handler{DB: conn, Tokens: codec}
	usersHandler := &users.Handler{DB: conn, Tokens: codec, Passwords: hasher}

	webHandler, err := web.NewHandler(conn, codec)
	if err != nil {
		log.Fatal("Failed to build page renderer: ", err)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.Mount("/api/auth", authHandler.Routes())
	r.Mount("/api/posts", postsHandler.Routes())
	r.Mount("/api/user", usersHandler.Routes())

	// Cheap pre-filter for the admin API; the handlers behind it verify the
	// token and role again themselves.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(codec))
		r.Use(middleware.AdminMiddleware())
		r.Mount("/users", usersHandler.AdminRoutes())
		r.Mount("/posts", postsHandler.AdminRoutes())
	})

	r.Mount("/", webHandler.Routes())

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server listening on port :%s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Print("Shutdown error: ", err)
	}
	if err := db.Close(conn); err != nil {
		log.Print("Closing database: ", err)
	}
}
