package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/hospital-admin/internal/model"
)

// MemoryStore keeps sessions in process. Suitable for a single instance.
// Expired entries are swept by go-cache's janitor, which stops once the
// store is garbage collected.
type MemoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore keeps sessions for ttl unless Save asks for less.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{cache: cache.New(ttl, ttl)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*model.Session, error) {
	v, found := m.cache.Get(id)
	if !found {
		return nil, ErrNotFound
	}
	return v.(*model.Session).Clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, s *model.Session, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	m.cache.Set(s.ID, s.Clone(), ttl)
	return nil
}

// Len reports how many unexpired sessions are held.
func (m *MemoryStore) Len() int {
	m.cache.DeleteExpired()
	return m.cache.ItemCount()
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.cache.Delete(id)
	return nil
}
