package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"freight-carbon-service/internal/adapters/geo"
	"freight-carbon-service/internal/adapters/repositories"
	"freight-carbon-service/internal/api"
	"freight-carbon-service/internal/config"
	"freight-carbon-service/internal/platform/db"
	"freight-carbon-service/internal/ports"
	"freight-carbon-service/internal/refdata"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres) behind ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver := config.Get("DB_DRIVER", "sqlite")
	seedPath := config.Get("SEED_PATH", "data/seeds/suppliers.json")
	port := config.Get("PORT", "8080")

	emissions, suppliers, closeDB, err := openStores(driver, seedPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	locations := refdata.DefaultLocations()

	router := api.NewRouter(api.Deps{
		Emissions:  emissions,
		Suppliers:  suppliers,
		Resolver:   geo.NewStaticResolver(locations),
		Locations:  locations,
		Factors:    refdata.DefaultEmissionFactors(),
		Candidates: refdata.DefaultCandidateTable(),
		Pricing:    refdata.DefaultCarbonPricing(),
	})

	log.Printf("Server listening addr=:%s driver=%s", port, driver)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openStores opens the configured database, initializes its schema, seeds
// the supplier directory and returns the repository pair.
func openStores(driver, seedPath string) (ports.EmissionRepository, ports.SupplierRepository, func(), error) {
	switch driver {
	case "sqlite":
		dbPath := config.Get("DB_PATH", "data/app.db")
		conn, err := db.OpenSqlite(dbPath)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := initAndSeedSqlite(conn, seedPath); err != nil {
			conn.Close()
			return nil, nil, nil, err
		}
		return repositories.NewSqliteEmissionRepository(conn),
			repositories.NewSqliteSupplierRepository(conn),
			func() { conn.Close() }, nil

	case "postgres":
		databaseURL := config.Get("DATABASE_URL", "")
		if databaseURL == "" {
			return nil, nil, nil, fmt.Errorf("open stores: DATABASE_URL is required for DB_DRIVER=postgres")
		}
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		ctx := context.Background()
		if err := initAndSeedSQL(ctx, conn, seedPath); err != nil {
			conn.Close()
			return nil, nil, nil, err
		}
		return repositories.NewSQLEmissionRepository(conn),
			repositories.NewSQLSupplierRepository(conn),
			func() { conn.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("open stores: unknown DB_DRIVER %q (want sqlite or postgres)", driver)
	}
}

// Initialize schema and seed demo data on startup for local runs.
func initAndSeedSqlite(conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedSuppliersFromJSON(conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

func initAndSeedSQL(ctx context.Context, conn *sql.DB, seedPath string) error {
	if err := repositories.InitSQLSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedSQLSuppliersFromJSON(ctx, conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
