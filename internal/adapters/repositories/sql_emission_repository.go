package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"freight-carbon-service/internal/domain"
	"freight-carbon-service/internal/platform/obs"
)

// SQLEmissionRepository is the Postgres-backed implementation of the
// EmissionRepository port.
type SQLEmissionRepository struct{ DB *sql.DB }

func NewSQLEmissionRepository(db *sql.DB) *SQLEmissionRepository {
	return &SQLEmissionRepository{DB: db}
}

// Save stores one emission record in its own transaction.
func (s *SQLEmissionRepository) Save(ctx context.Context, rec *domain.Emission) (err error) {
	defer obs.Time(ctx, "emissions.repo.Save")(&err)

	if s.DB == nil {
		return errors.New("sql emission repository: DB is nil")
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
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = s.DB.ExecContext(ctx, query,
		rec.ID,
		rec.Source,
		rec.Destination,
		string(rec.TransportMode),
		rec.DistanceKm,
		rec.Co2Kg,
		rec.WeightTons,
		rec.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("save emission id=%s: %w", rec.ID, err)
	}

	return nil
}

// List returns all stored emission records, oldest first.
func (s *SQLEmissionRepository) List(ctx context.Context) (_ []*domain.Emission, err error) {
	defer obs.Time(ctx, "emissions.repo.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql emission repository: DB is nil")
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
		var mode string
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Destination, &mode, &rec.DistanceKm, &rec.Co2Kg, &rec.WeightTons, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("list emissions: scan row: %w", err)
		}
		rec.TransportMode = domain.TransportMode(mode)
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list emissions: row iteration: %w", err)
	}

	return records, nil
}
