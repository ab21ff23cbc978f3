// Package cached provides a caching wrapper over a primary trail repository using Redis.
package cached

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/roguepikachu/parky/internal/domain"
	"github.com/roguepikachu/parky/internal/repository"
)

// key helpers
func keyTrail(id int) string    { return "trail:" + strconv.Itoa(id) }
func keyTrailList() string      { return "trails:all" }
func keyParkList(id int) string { return "trails:park:" + strconv.Itoa(id) }

// TrailRepository is a cache-aside repository combining Redis with a primary store.
// Existence predicates always consult the primary: they gate mutations and must
// not observe stale cache state.
type TrailRepository struct {
	primary repository.TrailRepository
	redis   *redis.Client
	ttl     time.Duration
}

// NewTrailRepository creates a new cached trail repository.
func NewTrailRepository(primary repository.TrailRepository, redis *redis.Client, ttl time.Duration) *TrailRepository {
	return &TrailRepository{primary: primary, redis: redis, ttl: ttl}
}

// List reads through the cache for the full collection.
func (r *TrailRepository) List(ctx context.Context) ([]domain.Trail, error) {
	if items, ok := r.getList(ctx, keyTrailList()); ok {
		return items, nil
	}
	items, err := r.primary.List(ctx)
	if err != nil {
		return nil, err
	}
	r.setList(ctx, keyTrailList(), items)
	return items, nil
}

// ListByPark reads through the cache for one park's trails.
func (r *TrailRepository) ListByPark(ctx context.Context, parkID int) ([]domain.Trail, error) {
	if items, ok := r.getList(ctx, keyParkList(parkID)); ok {
		return items, nil
	}
	items, err := r.primary.ListByPark(ctx, parkID)
	if err != nil {
		return nil, err
	}
	r.setList(ctx, keyParkList(parkID), items)
	return items, nil
}

// FindByID attempts Redis then falls back to primary.
func (r *TrailRepository) FindByID(ctx context.Context, id int) (domain.Trail, error) {
	val, err := r.redis.Get(ctx, keyTrail(id)).Result()
	if err == nil && val != "" {
		var t domain.Trail
		if jsonErr := json.Unmarshal([]byte(val), &t); jsonErr == nil {
			return t, nil
		}
	}
	t, err := r.primary.FindByID(ctx, id)
	if err != nil {
		return domain.Trail{}, err
	}
	r.setTrail(ctx, t)
	return t, nil
}

// ExistsByName passes through to the primary store.
func (r *TrailRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.primary.ExistsByName(ctx, name)
}

// ExistsByID passes through to the primary store.
func (r *TrailRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	return r.primary.ExistsByID(ctx, id)
}

// Create writes through to primary, populates the entry cache, and busts lists.
func (r *TrailRepository) Create(ctx context.Context, t *domain.Trail) error {
	if err := r.primary.Create(ctx, t); err != nil {
		return err
	}
	r.setTrail(ctx, *t)
	r.invalidateLists(ctx)
	return nil
}

// Update writes through to primary and refreshes caches.
func (r *TrailRepository) Update(ctx context.Context, t domain.Trail) error {
	if err := r.primary.Update(ctx, t); err != nil {
		return err
	}
	r.setTrail(ctx, t)
	r.invalidateLists(ctx)
	return nil
}

// Delete writes through to primary and evicts caches.
func (r *TrailRepository) Delete(ctx context.Context, t domain.Trail) error {
	if err := r.primary.Delete(ctx, t); err != nil {
		return err
	}
	_ = r.redis.Del(ctx, keyTrail(t.ID)).Err()
	r.invalidateLists(ctx)
	return nil
}

func (r *TrailRepository) setTrail(ctx context.Context, t domain.Trail) {
	data, _ := json.Marshal(t)
	_ = r.redis.Set(ctx, keyTrail(t.ID), data, r.ttl).Err()
}

func (r *TrailRepository) getList(ctx context.Context, key string) ([]domain.Trail, bool) {
	val, err := r.redis.Get(ctx, key).Result()
	if err != nil || val == "" {
		return nil, false
	}
	var items []domain.Trail
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, false
	}
	return items, true
}

func (r *TrailRepository) setList(ctx context.Context, key string, items []domain.Trail) {
	data, _ := json.Marshal(items)
	_ = r.redis.Set(ctx, key, data, r.ttl).Err()
}

func (r *TrailRepository) invalidateLists(ctx context.Context) {
	// scan-and-delete list keys, best effort
	var cursor uint64
	for {
		keys, next, err := r.redis.Scan(ctx, cursor, "trails:*", 100).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			_ = r.redis.Del(ctx, keys...).Err()
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

var _ repository.TrailRepository = (*TrailRepository)(nil)
