package seed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anveshm/budgetwise/internal/models"
)

// recordingUserStore captures inserted users and assigns sequential ids.
type recordingUserStore struct {
	users []*models.User
}

func (s *recordingUserStore) InsertUsers(ctx context.Context, users []*models.User, onCreated func(id int64)) error {
	for _, u := range users {
		s.users = append(s.users, u)
		u.ID = int64(len(s.users))
		if onCreated != nil {
			onCreated(u.ID)
		}
	}
	return nil
}

func TestProvisioner_DerivesFieldsAndRecordsIds(t *testing.T) {
	store := &recordingUserStore{}
	registry := NewIdentityRegistry()
	p := NewProvisioner(store, fastHasher{}, registry)

	require.NoError(t, p.Provision(context.Background(), 3))

	require.Len(t, store.users, 3)
	assert.Equal(t, "Demo", store.users[0].FirstName)
	assert.Equal(t, "User1", store.users[0].LastName)
	assert.Equal(t, "demo1@budgetwise.app", store.users[0].Email)
	assert.Equal(t, "demo3@budgetwise.app", store.users[2].Email)
	assert.Equal(t, "hashed$"+demoPassword, store.users[0].PasswordHash)

	assert.Equal(t, []int64{1, 2, 3}, registry.Snapshot())
}

// overlapTrackingStore flags any two InsertUsers calls that run at the same
// time.
type overlapTrackingStore struct {
	mu      sync.Mutex
	active  int
	overlap bool
}

func (s *overlapTrackingStore) InsertUsers(ctx context.Context, users []*models.User, onCreated func(id int64)) error {
	s.mu.Lock()
	s.active++
	if s.active > 1 {
		s.overlap = true
	}
	s.mu.Unlock()

	time.Sleep(20 * time.Millisecond)

	s.mu.Lock()
	s.active--
	s.mu.Unlock()
	return nil
}

func TestProvisioner_RunsSerializeAcrossInstances(t *testing.T) {
	store := &overlapTrackingStore{}

	// Distinct Provisioner values, as two independent pipeline runs would
	// construct: the lock must still admit only one run at a time.
	p1 := NewProvisioner(store, fastHasher{}, NewIdentityRegistry())
	p2 := NewProvisioner(store, fastHasher{}, NewIdentityRegistry())

	var wg sync.WaitGroup
	for _, p := range []*Provisioner{p1, p2} {
		wg.Add(1)
		go func(p *Provisioner) {
			defer wg.Done()
			assert.NoError(t, p.Provision(context.Background(), 2))
		}(p)
	}
	wg.Wait()

	assert.False(t, store.overlap, "provisioning runs must never interleave")
}
