package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/morechaitanya606/ucia/config"
	"github.com/morechaitanya606/ucia/pkg/helpers"
)

// Out-of-band admin bootstrap. Registration over HTTP requires an existing
// admin, so the first admin account is created here.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	name := flag.String("name", "Site Admin", "display name")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, role)
		VALUES (LOWER($1), $2, $3, 'admin')
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, role = 'admin'
		RETURNING id
	`, *email, hash, *name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s\n", id, *email)
}
