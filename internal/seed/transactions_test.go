package seed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anveshm/budgetwise/internal/models"
)

// captureStore records batches in memory. failFor makes specific user ids
// fail, to exercise error paths.
type captureStore struct {
	mu      sync.Mutex
	txs     [][]*models.Transaction
	budgets [][]*models.Budget
	failFor map[int64]bool
	delay   time.Duration
}

var errInjected = errors.New("injected store failure")

func (c *captureStore) InsertTransactions(ctx context.Context, txs []*models.Transaction) error {
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(txs) > 0 && c.failFor[txs[0].UserID] {
		return errInjected
	}
	c.txs = append(c.txs, txs)
	return nil
}

func (c *captureStore) InsertBudgets(ctx context.Context, budgets []*models.Budget) error {
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(budgets) > 0 && c.failFor[budgets[0].UserID] {
		return errInjected
	}
	c.budgets = append(c.budgets, budgets)
	return nil
}

func TestTransactionGenerator_BatchShape(t *testing.T) {
	store := &captureStore{}
	gen := NewTransactionGenerator(store)

	require.NoError(t, gen.Generate(context.Background(), 7, "Food"))
	require.Len(t, store.txs, 1, "one call, one batch")

	batch := store.txs[0]
	require.Len(t, batch, transactionsPerPair)

	now := time.Now()
	for i, tx := range batch {
		pos := i + 1
		assert.Equal(t, int64(7), tx.UserID)
		assert.Equal(t, "Food", tx.Category)
		assert.Equal(t, models.DefaultSubCategory, tx.SubCategory)

		if pos%3 == 0 {
			assert.Equal(t, models.TypeIncome, tx.Type, "position %d", pos)
			assert.True(t, tx.Amount.GreaterThanOrEqual(decimal.NewFromInt(100)), "income amount %s", tx.Amount)
			assert.True(t, tx.Amount.LessThanOrEqual(decimal.NewFromInt(500)), "income amount %s", tx.Amount)
		} else {
			assert.Equal(t, models.TypeExpense, tx.Type, "position %d", pos)
			assert.True(t, tx.Amount.GreaterThanOrEqual(decimal.NewFromInt(10)), "expense amount %s", tx.Amount)
			assert.True(t, tx.Amount.LessThanOrEqual(decimal.NewFromInt(100)), "expense amount %s", tx.Amount)
		}

		assert.False(t, tx.Date.After(now), "date in the future")
		assert.False(t, tx.Date.Before(now.AddDate(0, 0, -61)), "date older than 60 days")
		assert.NotEmpty(t, tx.Title)
		assert.NotEmpty(t, tx.Location)
	}
}

func TestTransactionGenerator_StoreFailurePropagates(t *testing.T) {
	store := &captureStore{failFor: map[int64]bool{7: true}}
	gen := NewTransactionGenerator(store)

	err := gen.Generate(context.Background(), 7, "Food")
	require.ErrorIs(t, err, errInjected)
	assert.Empty(t, store.txs, "failed batch must not be recorded")
}
