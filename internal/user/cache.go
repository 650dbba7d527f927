package user

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedRepository serves GetByID from memory. Writes through it evict the entry;
// writes that bypass it are visible after ttl at the latest.
type CachedRepository struct {
	Repository
	cache *cache.Cache
}

func NewCachedRepository(repo Repository, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		Repository: repo,
		cache:      cache.New(ttl, 2*ttl),
	}
}

func (r *CachedRepository) GetByID(ctx context.Context, id string) (*User, error) {
	if cached, found := r.cache.Get(id); found {
		u := *cached.(*User)
		return &u, nil
	}

	u, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stored := *u
	r.cache.Set(id, &stored, cache.DefaultExpiration)
	return u, nil
}

func (r *CachedRepository) Update(ctx context.Context, u *User) error {
	r.cache.Delete(u.ID)
	return r.Repository.Update(ctx, u)
}

func (r *CachedRepository) Delete(ctx context.Context, id string) error {
	r.cache.Delete(id)
	return r.Repository.Delete(ctx, id)
}
