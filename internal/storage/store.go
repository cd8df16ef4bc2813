// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/anveshm/budgetwise/internal/models"
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the seeding pipeline or the HTTP handlers.
type Store interface {
	// ResetDemoData removes every row from transactions, budgets and users
	// and restarts the user id sequence, all in a single transaction.
	ResetDemoData(ctx context.Context) error

	// InsertUsers inserts all users in a single transaction. onCreated is
	// invoked with each database-assigned id immediately after the
	// corresponding insert, before the transaction commits. If any insert
	// fails, the transaction is rolled back and no user is persisted.
	// onCreated may be nil.
	InsertUsers(ctx context.Context, users []*models.User, onCreated func(id int64)) error

	// InsertTransactions persists the batch atomically: all rows or none.
	InsertTransactions(ctx context.Context, txs []*models.Transaction) error

	// InsertBudgets persists the batch atomically: all rows or none.
	InsertBudgets(ctx context.Context, budgets []*models.Budget) error

	// GetUserByEmail retrieves a user by email address.
	// Returns nil and no error when the user does not exist.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// ListUsers returns all users ordered by id.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// ListTransactions returns all transactions belonging to the user.
	ListTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error)

	// ListBudgets returns all budgets belonging to the user.
	ListBudgets(ctx context.Context, userID int64) ([]*models.Budget, error)

	// Close releases any resources held by the store.
	Close() error
}
