package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/phillip/youth-portal/auth"
	"github.com/phillip/youth-portal/config"
	"github.com/phillip/youth-portal/database"
	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	username := flag.String("username", os.Getenv("ADMIN_USERNAME"), "admin username (ADMIN_USERNAME)")
	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email (ADMIN_EMAIL)")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password (ADMIN_PASSWORD)")
	name := flag.String("name", "Administrator", "display name")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("username, email and password are required")
	}
	if err := auth.ValidatePassword(*password); err != nil {
		log.Fatalf("Invalid password: %v", err)
	}

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	users := repository.NewUserRepository(store)
	created, err := seedAdmin(ctx, users, *username, *email, *password, *name)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	if !created {
		log.Printf("User %q already exists, nothing to do", *username)
		return
	}
	log.Printf("Admin %q created", *username)
}

// seedAdmin creates an approved admin unless the username is taken.
func seedAdmin(ctx context.Context, users repository.UserRepository, username, email, password, name string) (bool, error) {
	if _, err := users.FindByUsername(ctx, username); err == nil {
		return false, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	now := time.Now()
	admin := &models.User{
		ID:               primitive.NewObjectID(),
		Username:         username,
		Email:            strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:     hash,
		Name:             name,
		Role:             models.RoleAdmin,
		IsApproved:       true,
		RegisteredEvents: []primitive.ObjectID{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := models.Validate(admin); err != nil {
		return false, err
	}
	if err := users.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
