// Package repository defines data-access contracts for the Parky API.
package repository

import (
	"context"
	"errors"

	"github.com/roguepikachu/parky/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// TrailRepository defines methods for trail data access. Implementations are
// request-scoped: no state is held across calls, and each mutation is durable
// once the call returns without error.
type TrailRepository interface {
	List(ctx context.Context) ([]domain.Trail, error)
	ListByPark(ctx context.Context, parkID int) ([]domain.Trail, error)
	FindByID(ctx context.Context, id int) (domain.Trail, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	// Create assigns the storage identifier to t on success.
	Create(ctx context.Context, t *domain.Trail) error
	// Update replaces the full record. Existence is the caller's concern.
	Update(ctx context.Context, t domain.Trail) error
	// Delete removes a previously fetched trail.
	Delete(ctx context.Context, t domain.Trail) error
}
