package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/adityawp/casaly/config"
	"github.com/adityawp/casaly/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@casaly.dev"
	password := "password123"
	username := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var ownerID string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, username, email, hash, "").Scan(&ownerID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", ownerID, email, password)

	listings := []struct {
		title    string
		typ      string
		desc     string
		price    int64
		sqmeters int
		beds     int
		featured bool
	}{
		{"Seaside bungalow", "beach", "Two steps from the sand.", 245000, 85, 2, true},
		{"Alpine cabin", "mountain", "Quiet cabin with a fireplace.", 189000, 70, 3, false},
		{"Stone farmhouse", "village", "Renovated farmhouse on the square.", 310000, 140, 4, true},
	}
	for _, l := range listings {
		var id string
		err := db.QueryRow(`
			INSERT INTO properties (title, type, description, image_url, price, sqmeters, beds, featured, current_owner)
			VALUES ($1, $2, $3, '', $4, $5, $6, $7, $8)
			RETURNING id
		`, l.title, l.typ, l.desc, l.price, l.sqmeters, l.beds, l.featured, ownerID).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed property %q: %v", l.title, err)
		}
		fmt.Printf("seeded property: id=%s title=%q type=%s\n", id, l.title, l.typ)
	}
}
