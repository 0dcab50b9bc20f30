package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createEmissionsQuery := `
	CREATE TABLE IF NOT EXISTS emissions (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		destination TEXT NOT NULL,
		transport_mode TEXT NOT NULL,
		distance_km REAL NOT NULL,
		co2_kg REAL NOT NULL,
		weight_tons REAL NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	`

	createSuppliersQuery := `
	CREATE TABLE IF NOT EXISTS suppliers (
		id TEXT PRIMARY KEY,
		supplier_name TEXT NOT NULL UNIQUE,
		country TEXT NOT NULL,
		city TEXT NOT NULL,
		material TEXT NOT NULL,
		green_score INTEGER NOT NULL,
		annual_capacity_tons INTEGER NOT NULL
	);
	`

	createEmissionsIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_emissions_created_at
	ON emissions(created_at);
	`

	createSuppliersIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_suppliers_country_city
	ON suppliers(country, city);
	`

	statements := []string{
		createEmissionsQuery,
		createSuppliersQuery,
		createEmissionsIndexQuery,
		createSuppliersIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type SupplierSeed struct {
	SupplierName       string `json:"supplier_name"`
	Country            string `json:"country"`
	City               string `json:"city"`
	Material           string `json:"material"`
	GreenScore         int    `json:"green_score"`
	AnnualCapacityTons int    `json:"annual_capacity_tons"`
}

// Populate the supplier directory from a JSON file. Rows are keyed by
// supplier name so re-seeding on every startup is idempotent.
func SeedSuppliersFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadSupplierSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed suppliers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR IGNORE INTO suppliers (
		id,
		supplier_name,
		country,
		city,
		material,
		green_score,
		annual_capacity_tons
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed suppliers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		id := uuid.NewString()
		if _, err := stmt.Exec(id, s.SupplierName, s.Country, s.City, s.Material, s.GreenScore, s.AnnualCapacityTons); err != nil {
			return fmt.Errorf("seed suppliers: insert %q: %w", s.SupplierName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed suppliers: commit tx: %w", err)
	}

	return nil
}

func loadSupplierSeeds(jsonPath string) ([]SupplierSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed suppliers: read %q: %w", jsonPath, err)
	}

	var data []SupplierSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed suppliers: parse json: %w", err)
	}

	rows := make([]SupplierSeed, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.SupplierName)
		if name == "" {
			return nil, fmt.Errorf("seed suppliers: item at index %d: supplier_name cannot be empty", i+1)
		}
		if item.GreenScore < 0 || item.GreenScore > 100 {
			return nil, fmt.Errorf("seed suppliers: %q: green_score %d out of range [0, 100]", name, item.GreenScore)
		}
		if item.AnnualCapacityTons < 0 {
			return nil, fmt.Errorf("seed suppliers: %q: annual_capacity_tons must be >= 0", name)
		}
		item.SupplierName = name
		rows = append(rows, item)
	}

	return rows, nil
}
