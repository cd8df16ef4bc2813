package seed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.uber.org/multierr"
)

// task is one unit of fan-out work. Tasks share no mutable state with each
// other; their database write sets are disjoint by construction.
type task struct {
	kind string // "transactions" or "budgets", used for logs and metrics
	name string
	run  func(ctx context.Context) error
}

// FanOutCoordinator launches one worker per (user, category) pair for
// transactions plus one per user for budgets, then blocks until every
// worker has reported back. The join is a full barrier: a failing worker
// never stops its siblings, and failures are aggregated rather than
// short-circuited.
type FanOutCoordinator struct {
	transactions *TransactionGenerator
	budgets      *BudgetGenerator
	categories   []string
}

// NewFanOutCoordinator creates a coordinator over the given generators and
// category set.
func NewFanOutCoordinator(transactions *TransactionGenerator, budgets *BudgetGenerator, categories []string) *FanOutCoordinator {
	return &FanOutCoordinator{
		transactions: transactions,
		budgets:      budgets,
		categories:   categories,
	}
}

// buildTasks computes the full worker set: |userIDs| × (|categories| + 1)
// tasks.
func (c *FanOutCoordinator) buildTasks(userIDs []int64) []task {
	tasks := make([]task, 0, len(userIDs)*(len(c.categories)+1))
	for _, userID := range userIDs {
		for _, category := range c.categories {
			tasks = append(tasks, task{
				kind: "transactions",
				name: fmt.Sprintf("transactions user=%d category=%s", userID, category),
				run: func(ctx context.Context) error {
					return c.transactions.Generate(ctx, userID, category)
				},
			})
		}
		tasks = append(tasks, task{
			kind: "budgets",
			name: fmt.Sprintf("budgets user=%d", userID),
			run: func(ctx context.Context) error {
				return c.budgets.Generate(ctx, userID)
			},
		})
	}
	return tasks
}

// Run executes every task concurrently and waits for all of them. The
// returned error combines every worker failure, plus the context error if
// the wait was interrupted. An interruption never skips the barrier and
// never masks worker failures.
func (c *FanOutCoordinator) Run(ctx context.Context, userIDs []int64) error {
	tasks := c.buildTasks(userIDs)

	var wg sync.WaitGroup
	errCh := make(chan error, len(tasks))

	for _, t := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := t.run(ctx); err != nil {
				seedTasksTotal.WithLabelValues(t.kind, "error").Inc()
				slog.Error("Seed worker failed", "task", t.name, "error", err)
				errCh <- fmt.Errorf("%s: %w", t.name, err)
				return
			}
			seedTasksTotal.WithLabelValues(t.kind, "ok").Inc()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	var interrupted error
	select {
	case <-done:
	case <-ctx.Done():
		// Record the interruption but still honor the barrier: workers run
		// to completion and their failures are reported alongside it.
		interrupted = ctx.Err()
		slog.Warn("Seed join interrupted, waiting for in-flight workers", "error", interrupted)
		<-done
	}

	close(errCh)
	var errs error
	for err := range errCh {
		errs = multierr.Append(errs, err)
	}

	return multierr.Append(errs, interrupted)
}
