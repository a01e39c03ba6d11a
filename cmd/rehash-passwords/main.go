// Command rehash-passwords replaces plaintext passwords left by older
// deployments with bcrypt hashes. Already hashed rows are skipped.
package main

import (
	"context"
	"log"

	"go-delivery-api/internal/config"
	"go-delivery-api/internal/repository"
	"go-delivery-api/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close(db)

	ctx := context.Background()
	userRepo := repository.NewUserRepo(db)

	users, err := userRepo.FindAll(ctx)
	if err != nil {
		log.Fatalf("failed to load users: %v", err)
	}

	rehashed := 0
	for _, user := range users {
		if user.HasHashedPassword() {
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password for user %d: %v", user.ID, err)
		}
		if err := userRepo.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
			log.Fatalf("failed to update user %d: %v", user.ID, err)
		}
		rehashed++
	}

	log.Printf("rehashed %d of %d users", rehashed, len(users))
}
