package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCounterStore_EnforcesLimit(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.True(t, store.Allow(ctx, "1.2.3.4", 10, time.Minute), "request %d should pass", i+1)
	}
	require.False(t, store.Allow(ctx, "1.2.3.4", 10, time.Minute))
}

func TestMemoryCounterStore_KeysAreIndependent(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	require.True(t, store.Allow(ctx, "a", 1, time.Minute))
	require.False(t, store.Allow(ctx, "a", 1, time.Minute))
	require.True(t, store.Allow(ctx, "b", 1, time.Minute))
}

func TestMemoryCounterStore_WindowResets(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	require.True(t, store.Allow(ctx, "x", 1, 20*time.Millisecond))
	require.False(t, store.Allow(ctx, "x", 1, 20*time.Millisecond))

	time.Sleep(30 * time.Millisecond)
	require.True(t, store.Allow(ctx, "x", 1, 20*time.Millisecond))
}

func TestMemoryCounterStore_SweepDropsExpired(t *testing.T) {
	store := NewMemoryCounterStore()
	ctx := context.Background()

	store.Allow(ctx, "old", 5, 10*time.Millisecond)
	store.Allow(ctx, "fresh", 5, time.Minute)

	time.Sleep(20 * time.Millisecond)
	store.Sweep()

	store.mu.Lock()
	defer store.mu.Unlock()
	require.NotContains(t, store.entries, "old")
	require.Contains(t, store.entries, "fresh")
}
