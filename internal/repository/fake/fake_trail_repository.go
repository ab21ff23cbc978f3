// Package fake provides in-memory fakes for repository interfaces for testing.
package fake

import (
	"context"
	"sort"
	"strings"

	"github.com/roguepikachu/parky/internal/domain"
	"github.com/roguepikachu/parky/internal/repository"
)

// TrailRepository is an in-memory fake implementing repository.TrailRepository.
// It's intentionally simple and not concurrency-safe (tests typically run single-threaded).
type TrailRepository struct {
	byID   map[int]domain.Trail
	nextID int
}

// TrailOption configures the fake repository.
type TrailOption func(*TrailRepository)

// WithTrails seeds the repository with the provided trails (by ID).
func WithTrails(trails ...domain.Trail) TrailOption {
	return func(r *TrailRepository) {
		for _, t := range trails {
			r.byID[t.ID] = t
			if t.ID >= r.nextID {
				r.nextID = t.ID + 1
			}
		}
	}
}

// NewTrailRepository creates a new in-memory fake trail repo.
func NewTrailRepository(opts ...TrailOption) *TrailRepository {
	r := &TrailRepository{byID: make(map[int]domain.Trail), nextID: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TrailRepository) List(_ context.Context) ([]domain.Trail, error) {
	items := make([]domain.Trail, 0, len(r.byID))
	for _, t := range r.byID {
		items = append(items, t)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *TrailRepository) ListByPark(_ context.Context, parkID int) ([]domain.Trail, error) {
	items := make([]domain.Trail, 0)
	for _, t := range r.byID {
		if t.NationalParkID == parkID {
			items = append(items, t)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *TrailRepository) FindByID(_ context.Context, id int) (domain.Trail, error) {
	if t, ok := r.byID[id]; ok {
		return t, nil
	}
	return domain.Trail{}, repository.ErrNotFound
}

func (r *TrailRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, t := range r.byID {
		if strings.EqualFold(strings.TrimSpace(t.Name), strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *TrailRepository) ExistsByID(_ context.Context, id int) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *TrailRepository) Create(_ context.Context, t *domain.Trail) error {
	t.ID = r.nextID
	r.nextID++
	r.byID[t.ID] = *t
	return nil
}

func (r *TrailRepository) Update(_ context.Context, t domain.Trail) error {
	if _, ok := r.byID[t.ID]; !ok {
		return repository.ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *TrailRepository) Delete(_ context.Context, t domain.Trail) error {
	if _, ok := r.byID[t.ID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, t.ID)
	return nil
}

var _ repository.TrailRepository = (*TrailRepository)(nil)
