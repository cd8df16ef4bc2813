package seed

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityRegistry_AddAndSnapshot(t *testing.T) {
	r := NewIdentityRegistry()
	r.Add(1)
	r.Add(2)
	r.Add(3)

	require.Equal(t, 3, r.Len())
	assert.Equal(t, []int64{1, 2, 3}, r.Snapshot())
}

func TestIdentityRegistry_SnapshotIsIndependent(t *testing.T) {
	r := NewIdentityRegistry()
	r.Add(1)

	snap := r.Snapshot()
	r.Add(2)

	assert.Equal(t, []int64{1}, snap, "snapshot must not observe later writes")

	// Mutating the snapshot must not leak back into the registry.
	snap[0] = 99
	assert.Equal(t, []int64{1, 2}, r.Snapshot())
}

func TestIdentityRegistry_ConcurrentAddSnapshot(t *testing.T) {
	const (
		writers       = 8
		idsPerWriter  = 250
		snapshotReads = 100
	)

	r := NewIdentityRegistry()

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(base int64) {
			defer wg.Done()
			for i := int64(0); i < idsPerWriter; i++ {
				r.Add(base*idsPerWriter + i)
			}
		}(int64(w))
	}

	// Readers race with the writers; every snapshot must be well-formed.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < snapshotReads; i++ {
			snap := r.Snapshot()
			assert.LessOrEqual(t, len(snap), writers*idsPerWriter)
		}
	}()

	wg.Wait()

	snap := r.Snapshot()
	require.Len(t, snap, writers*idsPerWriter, "no entry may be lost")

	seen := make(map[int64]bool, len(snap))
	for _, id := range snap {
		assert.False(t, seen[id], "id %d appears twice", id)
		seen[id] = true
	}
}
