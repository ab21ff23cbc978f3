package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/roguepikachu/parky/internal/domain"
	"github.com/roguepikachu/parky/internal/repository"
)

// ParkService orchestrates validation and persistence for national parks.
type ParkService struct {
	parks repository.ParkRepository
}

// NewParkService creates a new ParkService over the given repository.
func NewParkService(parks repository.ParkRepository) *ParkService {
	return &ParkService{parks: parks}
}

// ListParks returns every national park.
func (s *ParkService) ListParks(ctx context.Context) ([]domain.NationalPark, error) {
	return s.parks.List(ctx)
}

// GetParkByID fetches a national park by ID.
func (s *ParkService) GetParkByID(ctx context.Context, id int) (domain.NationalPark, error) {
	p, err := s.parks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NationalPark{}, ErrParkNotFound
		}
		return domain.NationalPark{}, fmt.Errorf("find park by id: %w", err)
	}
	return p, nil
}

// CreatePark persists a new park after checking name uniqueness.
func (s *ParkService) CreatePark(ctx context.Context, p domain.NationalPark) (domain.NationalPark, error) {
	exists, err := s.parks.ExistsByName(ctx, p.Name)
	if err != nil {
		return domain.NationalPark{}, fmt.Errorf("park exists by name: %w", err)
	}
	if exists {
		return domain.NationalPark{}, ErrParkExists
	}
	if err := s.parks.Create(ctx, &p); err != nil {
		return domain.NationalPark{}, fmt.Errorf("create park: %w", err)
	}
	return p, nil
}

// UpdatePark replaces the full record without an existence pre-check.
func (s *ParkService) UpdatePark(ctx context.Context, p domain.NationalPark) error {
	if err := s.parks.Update(ctx, p); err != nil {
		return fmt.Errorf("update park: %w", err)
	}
	return nil
}

// DeletePark deletes a park after confirming it exists.
func (s *ParkService) DeletePark(ctx context.Context, id int) error {
	ok, err := s.parks.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("park exists by id: %w", err)
	}
	if !ok {
		return ErrParkNotFound
	}
	p, err := s.parks.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find park by id: %w", err)
	}
	if err := s.parks.Delete(ctx, p); err != nil {
		return fmt.Errorf("delete park: %w", err)
	}
	return nil
}
