// Package service contains business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/roguepikachu/parky/internal/domain"
	"github.com/roguepikachu/parky/internal/repository"
)

// Error variables
var (
	ErrTrailNotFound = errors.New("trail not found")
	ErrTrailExists   = errors.New("trail exists")
	ErrParkNotFound  = errors.New("national park not found")
	ErrParkExists    = errors.New("national park exists")
)

// TrailService orchestrates validation and persistence for trails.
type TrailService struct {
	trails repository.TrailRepository
	parks  repository.ParkRepository
}

// NewTrailService creates a new TrailService over the given repositories.
func NewTrailService(trails repository.TrailRepository, parks repository.ParkRepository) *TrailService {
	return &TrailService{trails: trails, parks: parks}
}

// ListTrails returns every trail.
func (s *TrailService) ListTrails(ctx context.Context) ([]domain.Trail, error) {
	return s.trails.List(ctx)
}

// GetTrailByID fetches a trail by ID.
func (s *TrailService) GetTrailByID(ctx context.Context, id int) (domain.Trail, error) {
	t, err := s.trails.FindByID(ctx, id)
	if err != nil {
		// Only translate not found at the service boundary
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Trail{}, ErrTrailNotFound
		}
		return domain.Trail{}, fmt.Errorf("find trail by id: %w", err)
	}
	return t, nil
}

// ListTrailsInPark returns the trails belonging to one park. An unknown park
// id is an ErrParkNotFound; a known park with no trails yields an empty slice.
func (s *TrailService) ListTrailsInPark(ctx context.Context, parkID int) ([]domain.Trail, error) {
	ok, err := s.parks.ExistsByID(ctx, parkID)
	if err != nil {
		return nil, fmt.Errorf("park exists: %w", err)
	}
	if !ok {
		return nil, ErrParkNotFound
	}
	return s.trails.ListByPark(ctx, parkID)
}

// CreateTrail persists a new trail after checking the global name uniqueness
// rule. The stored trail, identifier assigned, is returned.
func (s *TrailService) CreateTrail(ctx context.Context, t domain.Trail) (domain.Trail, error) {
	exists, err := s.trails.ExistsByName(ctx, t.Name)
	if err != nil {
		return domain.Trail{}, fmt.Errorf("trail exists by name: %w", err)
	}
	if exists {
		return domain.Trail{}, ErrTrailExists
	}
	if err := s.trails.Create(ctx, &t); err != nil {
		return domain.Trail{}, fmt.Errorf("create trail: %w", err)
	}
	return t, nil
}

// UpdateTrail replaces the full record. Existence is not verified first; a
// missing row surfaces from the repository as a persistence failure.
func (s *TrailService) UpdateTrail(ctx context.Context, t domain.Trail) error {
	if err := s.trails.Update(ctx, t); err != nil {
		return fmt.Errorf("update trail: %w", err)
	}
	return nil
}

// DeleteTrail deletes a trail after confirming it exists.
func (s *TrailService) DeleteTrail(ctx context.Context, id int) error {
	ok, err := s.trails.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("trail exists by id: %w", err)
	}
	if !ok {
		return ErrTrailNotFound
	}
	t, err := s.trails.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find trail by id: %w", err)
	}
	if err := s.trails.Delete(ctx, t); err != nil {
		return fmt.Errorf("delete trail: %w", err)
	}
	return nil
}
