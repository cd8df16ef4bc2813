// Package seed implements the concurrent demo-data seeding pipeline: a
// destructive reset, serial user provisioning under a single critical
// section, a consistent snapshot of the generated ids, and a parallel
// fan-out that generates transactions and budgets per user.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/anveshm/budgetwise/internal/models"
	"github.com/anveshm/budgetwise/internal/storage"
)

// State identifies the pipeline phase.
type State int

const (
	StateIdle State = iota
	StateResetting
	StateProvisioning
	StateSnapshotReady
	StateFanningOut
	StateCompleted
	StateFailed
)

// String returns the lowercase phase name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResetting:
		return "resetting"
	case StateProvisioning:
		return "provisioning"
	case StateSnapshotReady:
		return "snapshot-ready"
	case StateFanningOut:
		return "fanning-out"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Pipeline orchestrates the four seeding phases in order:
// reset → provision → snapshot → fan-out. A failure in any phase is
// terminal; the pipeline is not restartable from a partial state — a fresh
// run starts again at the reset.
type Pipeline struct {
	store      storage.Store
	hasher     PasswordHasher
	users      int
	categories []string

	mu    sync.Mutex
	state State
}

// NewPipeline creates a pipeline that seeds `users` demo accounts across
// the fixed category set.
func NewPipeline(store storage.Store, hasher PasswordHasher, users int) *Pipeline {
	return &Pipeline{
		store:      store,
		hasher:     hasher,
		users:      users,
		categories: models.Categories,
		state:      StateIdle,
	}
}

// State reports the current phase. Safe for concurrent use.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pipeline) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// fail marks the terminal failed state and returns err unchanged.
func (p *Pipeline) fail(err error) error {
	p.setState(StateFailed)
	seedRunsTotal.WithLabelValues("failed").Inc()
	return err
}

// Run executes the pipeline once. The caller should treat any error as
// fatal to startup: a partially seeded database is never left behind a
// success, and a failure leaves the pipeline in StateFailed.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	registry := NewIdentityRegistry()

	slog.Info("Seeding demo data", "users", p.users, "categories", len(p.categories))

	p.setState(StateResetting)
	if err := p.store.ResetDemoData(ctx); err != nil {
		return p.fail(fmt.Errorf("reset failed: %w", err))
	}

	p.setState(StateProvisioning)
	provisioner := NewProvisioner(p.store, p.hasher, registry)
	if err := provisioner.Provision(ctx, p.users); err != nil {
		return p.fail(fmt.Errorf("provisioning failed: %w", err))
	}

	ids := registry.Snapshot()
	if len(ids) != p.users {
		return p.fail(fmt.Errorf("provisioning recorded %d ids, want %d", len(ids), p.users))
	}
	seedUsersProvisioned.Add(float64(len(ids)))
	p.setState(StateSnapshotReady)
	slog.Info("Demo users provisioned", "count", len(ids))

	p.setState(StateFanningOut)
	coordinator := NewFanOutCoordinator(
		NewTransactionGenerator(p.store),
		NewBudgetGenerator(p.store, p.categories),
		p.categories,
	)
	if err := coordinator.Run(ctx, ids); err != nil {
		return p.fail(fmt.Errorf("fan-out failed: %w", err))
	}

	p.setState(StateCompleted)
	seedRunsTotal.WithLabelValues("completed").Inc()
	seedDuration.Observe(time.Since(start).Seconds())
	slog.Info("Seeding completed",
		"users", p.users,
		"tasks", p.users*(len(p.categories)+1),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}
