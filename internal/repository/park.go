package repository

import (
	"context"

	"github.com/roguepikachu/parky/internal/domain"
)

// ParkRepository defines methods for national park data access.
type ParkRepository interface {
	List(ctx context.Context) ([]domain.NationalPark, error)
	FindByID(ctx context.Context, id int) (domain.NationalPark, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	// Create assigns the storage identifier and creation timestamp to p on success.
	Create(ctx context.Context, p *domain.NationalPark) error
	Update(ctx context.Context, p domain.NationalPark) error
	Delete(ctx context.Context, p domain.NationalPark) error
}
