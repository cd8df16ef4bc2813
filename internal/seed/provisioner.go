package seed

import (
	"context"
	"fmt"
	"sync"

	"github.com/anveshm/budgetwise/internal/models"
)

// demoPassword is the plaintext every demo account is provisioned with.
// Only the bcrypt hash reaches the database.
const demoPassword = "password123"

// PasswordHasher turns a plaintext password into an opaque credential
// string. Satisfied by auth.BcryptHasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// UserStore is the slice of storage the provisioner needs.
type UserStore interface {
	InsertUsers(ctx context.Context, users []*models.User, onCreated func(id int64)) error
}

// provisionMu guarantees at most one provisioning run is ever in flight,
// regardless of how many Provisioner instances or call sites exist; it is a
// standing invariant, not an optimization.
var provisionMu sync.Mutex

// Provisioner creates the demo user population under the package-wide
// provisioning lock.
type Provisioner struct {
	store    UserStore
	hasher   PasswordHasher
	registry *IdentityRegistry
}

// NewProvisioner creates a provisioner that records every generated id
// into registry.
func NewProvisioner(store UserStore, hasher PasswordHasher, registry *IdentityRegistry) *Provisioner {
	return &Provisioner{
		store:    store,
		hasher:   hasher,
		registry: registry,
	}
}

// Provision creates count demo users in one database transaction. Fields
// are derived deterministically from the 1-based index; each generated id
// is recorded into the registry immediately after its insert. If any
// insert fails the transaction rolls back and no partial user set becomes
// visible to later phases.
func (p *Provisioner) Provision(ctx context.Context, count int) error {
	provisionMu.Lock()
	defer provisionMu.Unlock()

	users := make([]*models.User, 0, count)
	for i := 1; i <= count; i++ {
		hash, err := p.hasher.Hash(demoPassword)
		if err != nil {
			return fmt.Errorf("failed to hash password for user %d: %w", i, err)
		}
		users = append(users, demoUser(i, hash))
	}

	if err := p.store.InsertUsers(ctx, users, p.registry.Add); err != nil {
		return fmt.Errorf("failed to insert demo users: %w", err)
	}

	return nil
}

// demoUser derives the deterministic demo fields for the 1-based index.
func demoUser(i int, passwordHash string) *models.User {
	return &models.User{
		FirstName:    "Demo",
		LastName:     fmt.Sprintf("User%d", i),
		Email:        fmt.Sprintf("demo%d@budgetwise.app", i),
		PasswordHash: passwordHash,
	}
}
