package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

type entry struct {
	Count     int
	ResetTime time.Time
}

// MemoryStore keeps counters in process. Counters are not shared between
// replicas.
type MemoryStore struct {
	cache *cache.Cache
	mutex sync.Mutex
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: cache.New(5*time.Minute, 10*time.Minute),
		now:   time.Now,
	}
}

func (s *MemoryStore) Hit(_ context.Context, key string, limit int, window time.Duration) (Result, error) {
	now := s.now()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if item, found := s.cache.Get(key); found {
		current := item.(entry)

		if now.Before(current.ResetTime) {
			if current.Count >= limit {
				return Result{Allowed: false, Remaining: 0, ResetTime: current.ResetTime}, nil
			}

			current.Count++
			s.cache.Set(key, current, current.ResetTime.Sub(now))

			return Result{Allowed: true, Remaining: limit - current.Count, ResetTime: current.ResetTime}, nil
		}
	}

	resetTime := now.Add(window)
	s.cache.Set(key, entry{Count: 1, ResetTime: resetTime}, window)

	return Result{Allowed: true, Remaining: limit - 1, ResetTime: resetTime}, nil
}
