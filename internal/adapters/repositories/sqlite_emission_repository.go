package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"freight-carbon-service/internal/domain"
)

// SQLite-backed implementation of the EmissionRepository port.
type SqliteEmissionRepository struct{ DB *sql.DB }

func NewSqliteEmissionRepository(db *sql.DB) *SqliteEmissionRepository {
	return &SqliteEmissionRepository{DB: db}
}

// Save stores one emission record.
func (s *SqliteEmissionRepository) Save(ctx context.Context, rec *domain.Emission) error {
	if s.DB == nil {
		return errors.New("sqlite emission repository: DB is nil")
	}
	if rec == nil {
		return errors.New("save emission: record is nil")
	}

	query := `
	INSERT INTO emissions (
		id,
		source,
		destination,
		transport_mode,
		distance_km,
		co2_kg,
		weight_tons,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(ctx, query,
		rec.ID,
		rec.Source,
		rec.Destination,
		string(rec.TransportMode),
		rec.DistanceKm,
		rec.Co2Kg,
		rec.WeightTons,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save emission id=%s: %w", rec.ID, err)
	}

	return nil
}

// List returns all stored emission records, oldest first.
func (s *SqliteEmissionRepository) List(ctx context.Context) ([]*domain.Emission, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite emission repository: DB is nil")
	}

	query := `
	SELECT
		id,
		source,
		destination,
		transport_mode,
		distance_km,
		co2_kg,
		weight_tons,
		created_at
	FROM emissions
	ORDER BY created_at, id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list emissions: query emissions table: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.Emission, 0, 64)
	for rows.Next() {
		var rec domain.Emission
		var mode, createdAt string
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Destination, &mode, &rec.DistanceKm, &rec.Co2Kg, &rec.WeightTons, &createdAt); err != nil {
			return nil, fmt.Errorf("list emissions: scan row: %w", err)
		}
		rec.TransportMode = domain.TransportMode(mode)
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("list emissions: parse created_at %q: %w", createdAt, err)
		}
		rec.CreatedAt = ts
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list emissions: row iteration: %w", err)
	}

	return records, nil
}
