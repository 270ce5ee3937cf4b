package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vahanex/vahanex-server/config"
	"github.com/vahanex/vahanex-server/pkg/passhash"
	"github.com/vahanex/vahanex-server/pkg/postgres"
)

var (
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	client, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Fatal(err)
	}

	seedDefaultUsers(client.Pool)
}

func seedDefaultUsers(db *pgxpool.Pool) {
	// short timeout for seeding operations
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type defaultUser struct {
		Name      string
		Email     string
		Role      string
		PlainPass string
	}

	users := []defaultUser{
		{
			Name:      "Admin",
			Email:     "admin@vahanex.com",
			Role:      "ADMIN",
			PlainPass: "password",
		},
		{
			Name:      "Manager",
			Email:     "manager@vahanex.com",
			Role:      "MANAGER",
			PlainPass: "password",
		},
		{
			Name:      "Front Desk",
			Email:     "frontdesk@vahanex.com",
			Role:      "FRONT_DESK",
			PlainPass: "password",
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Fatalf("seedDefaultUsers: begin tx: %v", err)
	}
	// ensure rollback if commit doesn't happen
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	const q = `
INSERT INTO users (name, email, role, password_hash)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO NOTHING;
`

	for _, u := range users {
		hashed, err := passhash.HashPassword(u.PlainPass)
		if err != nil {
			log.Fatalf("seedDefaultUsers: hash password for %s: %v", u.Email, err)
		}

		if _, err := tx.Exec(ctx, q, u.Name, u.Email, u.Role, hashed); err != nil {
			log.Fatalf("seedDefaultUsers: insert user %s: %v", u.Email, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("seedDefaultUsers: commit: %v", err)
	}

	log.Printf("seedDefaultUsers: inserted/ensured %d default users", len(users))
}
