package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/hupe1980/sumserver/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ core.Registry = (*InMemoryRegistry)(nil)

func TestInMemoryRegistry_InsertGetRemove(t *testing.T) {
	r := NewInMemoryRegistry()

	s := core.NewSession("127.0.0.1:50001", nil)
	r.Insert(s.ID, s)

	got, ok := r.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	removed, ok := r.Remove(s.ID)
	require.True(t, ok)
	assert.Same(t, s, removed)

	_, ok = r.Get(s.ID)
	assert.False(t, ok)

	_, ok = r.Remove(s.ID)
	assert.False(t, ok, "second Remove should report absence")
}

func TestInMemoryRegistry_SnapshotReflectsSums(t *testing.T) {
	r := NewInMemoryRegistry()

	a := core.NewSession("client-a", nil)
	a.Add(3)
	b := core.NewSession("client-b", nil)
	b.Add(10)
	r.Insert(a.ID, a)
	r.Insert(b.ID, b)

	entries := r.Snapshot()
	require.Len(t, entries, 2)

	sums := map[string]int64{}
	for _, e := range entries {
		sums[e.ID] = e.Sum
	}
	assert.Equal(t, int64(3), sums["client-a"])
	assert.Equal(t, int64(10), sums["client-b"])
}

func TestInMemoryRegistry_ConcurrentAccess(t *testing.T) {
	r := NewInMemoryRegistry()

	const workers = 16
	const iterations = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			id := fmt.Sprintf("client-%d", w)
			for i := 0; i < iterations; i++ {
				s := core.NewSession(id, nil)
				r.Insert(id, s)
				s.Add(int64(i))
				_ = r.Snapshot()
				r.Remove(id)
			}
		}(w)
	}
	wg.Wait()

	assert.Empty(t, r.Snapshot(), "all entries should be removed after the workers finish")
}
