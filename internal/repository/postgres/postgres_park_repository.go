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

// ParkRepository implements repository.ParkRepository using Postgres.
type ParkRepository struct {
	pool *pgxpool.Pool
}

// NewParkRepository creates a new Postgres-backed national park repository.
func NewParkRepository(pool *pgxpool.Pool) *ParkRepository {
	return &ParkRepository{pool: pool}
}

// EnsureSchema creates required tables if they don't exist.
func (r *ParkRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS national_parks (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    state TEXT NOT NULL,
    established TIMESTAMPTZ NOT NULL,
    created TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
	_, err := r.pool.Exec(ctx, schema)
	if err != nil {
		return err
	}
	logger.Info(ctx, "postgres national_parks schema ensured")
	return nil
}

const parkColumns = "id, name, state, established, created"

func scanPark(row pgx.Row) (domain.NationalPark, error) {
	var p domain.NationalPark
	err := row.Scan(&p.ID, &p.Name, &p.State, &p.Established, &p.Created)
	return p, err
}

// List returns every national park.
func (r *ParkRepository) List(ctx context.Context) ([]domain.NationalPark, error) {
	q := "SELECT " + parkColumns + " FROM national_parks"
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list parks: %w", err)
	}
	defer rows.Close()
	res := make([]domain.NationalPark, 0)
	for rows.Next() {
		p, err := scanPark(rows)
		if err != nil {
			return nil, fmt.Errorf("scan park: %w", err)
		}
		res = append(res, p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

// FindByID retrieves a national park by its ID.
func (r *ParkRepository) FindByID(ctx context.Context, id int) (domain.NationalPark, error) {
	q := "SELECT " + parkColumns + " FROM national_parks WHERE id = $1"
	p, err := scanPark(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NationalPark{}, repository.ErrNotFound
		}
		return domain.NationalPark{}, fmt.Errorf("query park: %w", err)
	}
	return p, nil
}

// ExistsByName reports whether any park carries the given name, case-insensitively.
func (r *ParkRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM national_parks WHERE lower(trim(name)) = lower(trim($1)))`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("park exists by name: %w", err)
	}
	return exists, nil
}

// ExistsByID reports whether a park with the given id exists.
func (r *ParkRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM national_parks WHERE id = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("park exists by id: %w", err)
	}
	return exists, nil
}

// Create stages and commits a new park, assigning its identifier and creation timestamp.
func (r *ParkRepository) Create(ctx context.Context, p *domain.NationalPark) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	const q = `
INSERT INTO national_parks (name, state, established)
VALUES ($1, $2, $3)
RETURNING id, created
`
	if err := tx.QueryRow(ctx, q, p.Name, p.State, p.Established).Scan(&p.ID, &p.Created); err != nil {
		return fmt.Errorf("insert park: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit park insert: %w", err)
	}
	return nil
}

// Update replaces the full record; the creation timestamp is immutable.
func (r *ParkRepository) Update(ctx context.Context, p domain.NationalPark) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	const q = `
UPDATE national_parks
SET name = $2, state = $3, established = $4
WHERE id = $1
`
	ct, err := tx.Exec(ctx, q, p.ID, p.Name, p.State, p.Established)
	if err != nil {
		return fmt.Errorf("update park: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("update park %d: no rows affected", p.ID)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit park update: %w", err)
	}
	return nil
}

// Delete removes a previously fetched park.
func (r *ParkRepository) Delete(ctx context.Context, p domain.NationalPark) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	ct, err := tx.Exec(ctx, `DELETE FROM national_parks WHERE id = $1`, p.ID)
	if err != nil {
		return fmt.Errorf("delete park: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("delete park %d: no rows affected", p.ID)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit park delete: %w", err)
	}
	return nil
}

var _ repository.ParkRepository = (*ParkRepository)(nil)
