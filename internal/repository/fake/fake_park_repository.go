package fake

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/roguepikachu/parky/internal/domain"
	"github.com/roguepikachu/parky/internal/repository"
)

// ParkRepository is an in-memory fake implementing repository.ParkRepository.
type ParkRepository struct {
	byID   map[int]domain.NationalPark
	nextID int
	now    func() time.Time
}

// ParkOption configures the fake park repository.
type ParkOption func(*ParkRepository)

// WithParks seeds the repository with the provided parks (by ID).
func WithParks(parks ...domain.NationalPark) ParkOption {
	return func(r *ParkRepository) {
		for _, p := range parks {
			r.byID[p.ID] = p
			if p.ID >= r.nextID {
				r.nextID = p.ID + 1
			}
		}
	}
}

// WithParkNow overrides the time source used for creation timestamps.
func WithParkNow(f func() time.Time) ParkOption {
	return func(r *ParkRepository) { r.now = f }
}

// NewParkRepository creates a new in-memory fake park repo.
func NewParkRepository(opts ...ParkOption) *ParkRepository {
	r := &ParkRepository{byID: make(map[int]domain.NationalPark), nextID: 1, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ParkRepository) List(_ context.Context) ([]domain.NationalPark, error) {
	items := make([]domain.NationalPark, 0, len(r.byID))
	for _, p := range r.byID {
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *ParkRepository) FindByID(_ context.Context, id int) (domain.NationalPark, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return domain.NationalPark{}, repository.ErrNotFound
}

func (r *ParkRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, p := range r.byID {
		if strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *ParkRepository) ExistsByID(_ context.Context, id int) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *ParkRepository) Create(_ context.Context, p *domain.NationalPark) error {
	p.ID = r.nextID
	r.nextID++
	p.Created = r.now().UTC()
	r.byID[p.ID] = *p
	return nil
}

func (r *ParkRepository) Update(_ context.Context, p domain.NationalPark) error {
	existing, ok := r.byID[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	p.Created = existing.Created
	r.byID[p.ID] = p
	return nil
}

func (r *ParkRepository) Delete(_ context.Context, p domain.NationalPark) error {
	if _, ok := r.byID[p.ID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, p.ID)
	return nil
}

var _ repository.ParkRepository = (*ParkRepository)(nil)
