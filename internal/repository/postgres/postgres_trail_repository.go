// Package postgres provides Postgres-backed implementations of the Parky repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roguepikachu/parky/internal/domain"
	"github.com/roguepikachu/parky/internal/repository"
	"github.com/roguepikachu/parky/pkg/logger"
)

// TrailRepository implements repository.TrailRepository using Postgres.
type TrailRepository struct {
	pool *pgxpool.Pool
}

// NewTrailRepository creates a new Postgres-backed trail repository.
func NewTrailRepository(pool *pgxpool.Pool) *TrailRepository {
	return &TrailRepository{pool: pool}
}

// EnsureSchema creates required tables if they don't exist.
// Name uniqueness is deliberately not a storage constraint; the orchestration
// layer enforces it at write time.
func (r *TrailRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS trails (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    distance_km DOUBLE PRECISION NOT NULL,
    elevation_gain_m DOUBLE PRECISION NOT NULL,
    difficulty TEXT NOT NULL,
    national_park_id INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trails_national_park_id ON trails (national_park_id);
`
	_, err := r.pool.Exec(ctx, schema)
	if err != nil {
		return err
	}
	logger.Info(ctx, "postgres trails schema ensured")
	return nil
}

const trailColumns = "id, name, distance_km, elevation_gain_m, difficulty, national_park_id"

func scanTrail(row pgx.Row) (domain.Trail, error) {
	var t domain.Trail
	err := row.Scan(&t.ID, &t.Name, &t.DistanceKm, &t.ElevationGainM, &t.Difficulty, &t.NationalParkID)
	return t, err
}

// List returns every trail in storage's natural order.
func (r *TrailRepository) List(ctx context.Context) ([]domain.Trail, error) {
	q := "SELECT " + trailColumns + " FROM trails"
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list trails: %w", err)
	}
	defer rows.Close()
	return collectTrails(rows)
}

// ListByPark returns the trails whose park reference equals parkID. An empty
// slice is returned when none match.
func (r *TrailRepository) ListByPark(ctx context.Context, parkID int) ([]domain.Trail, error) {
	q := "SELECT " + trailColumns + " FROM trails WHERE national_park_id = $1"
	rows, err := r.pool.Query(ctx, q, parkID)
	if err != nil {
		return nil, fmt.Errorf("list trails by park: %w", err)
	}
	defer rows.Close()
	return collectTrails(rows)
}

func collectTrails(rows pgx.Rows) ([]domain.Trail, error) {
	res := make([]domain.Trail, 0)
	for rows.Next() {
		t, err := scanTrail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trail: %w", err)
		}
		res = append(res, t)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

// FindByID retrieves a trail by its ID.
func (r *TrailRepository) FindByID(ctx context.Context, id int) (domain.Trail, error) {
	q := "SELECT " + trailColumns + " FROM trails WHERE id = $1"
	t, err := scanTrail(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trail{}, repository.ErrNotFound
		}
		return domain.Trail{}, fmt.Errorf("query trail: %w", err)
	}
	return t, nil
}

// ExistsByName reports whether any trail carries the given name, case-insensitively.
func (r *TrailRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM trails WHERE lower(trim(name)) = lower(trim($1)))`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("trail exists by name: %w", err)
	}
	return exists, nil
}

// ExistsByID reports whether a trail with the given id exists.
func (r *TrailRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM trails WHERE id = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("trail exists by id: %w", err)
	}
	return exists, nil
}

// Create stages and commits a new trail, assigning its identifier.
func (r *TrailRepository) Create(ctx context.Context, t *domain.Trail) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	const q = `
INSERT INTO trails (name, distance_km, elevation_gain_m, difficulty, national_park_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	if err := tx.QueryRow(ctx, q, t.Name, t.DistanceKm, t.ElevationGainM, t.Difficulty, t.NationalParkID).Scan(&t.ID); err != nil {
		return fmt.Errorf("insert trail: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit trail insert: %w", err)
	}
	return nil
}

// Update replaces the full record. A missing row is a plain error; existence
// pre-checks belong to the caller.
func (r *TrailRepository) Update(ctx context.Context, t domain.Trail) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	const q = `
UPDATE trails
SET name = $2, distance_km = $3, elevation_gain_m = $4, difficulty = $5, national_park_id = $6
WHERE id = $1
`
	ct, err := tx.Exec(ctx, q, t.ID, t.Name, t.DistanceKm, t.ElevationGainM, t.Difficulty, t.NationalParkID)
	if err != nil {
		return fmt.Errorf("update trail: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("update trail %d: no rows affected", t.ID)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit trail update: %w", err)
	}
	return nil
}

// Delete removes a previously fetched trail.
func (r *TrailRepository) Delete(ctx context.Context, t domain.Trail) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	ct, err := tx.Exec(ctx, `DELETE FROM trails WHERE id = $1`, t.ID)
	if err != nil {
		return fmt.Errorf("delete trail: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("delete trail %d: no rows affected", t.ID)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit trail delete: %w", err)
	}
	return nil
}

var _ repository.TrailRepository = (*TrailRepository)(nil)
