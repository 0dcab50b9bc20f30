package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Initialize the Postgres schema. Kept separate from the SQLite variant
// because the dialects disagree on upserts and placeholders.
func InitSQLSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init sql schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init sql schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS emissions (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			destination TEXT NOT NULL,
			transport_mode TEXT NOT NULL,
			distance_km DOUBLE PRECISION NOT NULL,
			co2_kg DOUBLE PRECISION NOT NULL,
			weight_tons DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id TEXT PRIMARY KEY,
			supplier_name TEXT NOT NULL UNIQUE,
			country TEXT NOT NULL,
			city TEXT NOT NULL,
			material TEXT NOT NULL,
			green_score INTEGER NOT NULL,
			annual_capacity_tons INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_emissions_created_at
			ON emissions(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_suppliers_country_city
			ON suppliers(country, city);`,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init sql schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init sql schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres supplier directory from a JSON file.
func SeedSQLSuppliersFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	rows, err := loadSupplierSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed suppliers: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO suppliers (
		id,
		supplier_name,
		country,
		city,
		material,
		green_score,
		annual_capacity_tons
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (supplier_name) DO NOTHING;
	`)
	if err != nil {
		return fmt.Errorf("seed suppliers: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		id := uuid.NewString()
		if _, err := stmt.ExecContext(ctx, id, s.SupplierName, s.Country, s.City, s.Material, s.GreenScore, s.AnnualCapacityTons); err != nil {
			return fmt.Errorf("seed suppliers: insert %q: %w", s.SupplierName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed suppliers: commit tx: %w", err)
	}

	return nil
}
