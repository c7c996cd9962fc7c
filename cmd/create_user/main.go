// Command create_user creates an account directly in the database, for
// operator bootstrap when registering through the API is not an option.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"docvault/models"
	"docvault/pkg/password"

	"golang.org/x/term"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: go run ./cmd/create_user <email> <full name>")
		os.Exit(2)
	}
	email := strings.ToLower(strings.TrimSpace(os.Args[1]))
	fullName := strings.TrimSpace(strings.Join(os.Args[2:], " "))

	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("user %s already exists (id=%s)\n", email, existing.ID)
		os.Exit(0)
	}

	fmt.Print("password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.Fatalf("read password: %v", err)
	}

	hasher, err := password.NewHasher(password.DefaultCost)
	if err != nil {
		log.Fatalf("hasher: %v", err)
	}
	hashed, err := hasher.Hash(string(raw))
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}

	user := models.User{Email: email, HashedPassword: hashed, FullName: fullName}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	fmt.Printf("created user %s id=%s\n", email, user.ID)
}
