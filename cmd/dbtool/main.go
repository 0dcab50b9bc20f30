package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"freight-carbon-service/internal/adapters/repositories"
	"freight-carbon-service/internal/config"
	"freight-carbon-service/internal/platform/db"
)

// dbtool provisions the Postgres schema and seeds the supplier directory.
// The server does this itself for SQLite; managed Postgres instances are
// prepared out of band with this tool.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()

	log.Println("Initializing database schema...")
	if err := repositories.InitSQLSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/suppliers.json")
	log.Println("Seeding database...")
	if err := repositories.SeedSQLSuppliersFromJSON(ctx, conn, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
