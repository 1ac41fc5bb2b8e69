package services

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CounterStore is the fixed-window counter behind the public-endpoint rate
// limiter. The in-memory store covers a single process; the Redis store
// shares the window across processes.
type CounterStore interface {
	// Allow records one hit for key and reports whether it is within limit
	// for the current window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) bool
}

type memoryEntry struct {
	count   int
	resetAt time.Time
}

// MemoryCounterStore is a process-local fixed-window counter with lazy
// expiry. Sweep removes stale windows and should run periodically.
type MemoryCounterStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{entries: make(map[string]*memoryEntry)}
}

func (s *MemoryCounterStore) Allow(_ context.Context, key string, limit int, window time.Duration) bool {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || now.After(e.resetAt) {
		s.entries[key] = &memoryEntry{count: 1, resetAt: now.Add(window)}
		return true
	}
	if e.count >= limit {
		return false
	}
	e.count++
	return true
}

// Sweep drops expired windows.
func (s *MemoryCounterStore) Sweep() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, e := range s.entries {
		if now.After(e.resetAt) {
			delete(s.entries, key)
		}
	}
}

// RedisCounterStore backs the limiter with a shared Redis INCR+EXPIRE
// counter for multi-process deployments.
type RedisCounterStore struct {
	Client *redis.Client
}

func NewRedisCounterStore(url string) (*RedisCounterStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisCounterStore{Client: redis.NewClient(opts)}, nil
}

func (s *RedisCounterStore) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	count, err := s.Client.Incr(ctx, "ratelimit:"+key).Result()
	if err != nil {
		// Fail open: a limiter outage should not take down renders.
		return true
	}
	if count == 1 {
		s.Client.Expire(ctx, "ratelimit:"+key, window)
	}
	return count <= int64(limit)
}
