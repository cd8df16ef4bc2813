package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anveshm/budgetwise/internal/models"
)

// transactionsPerPair is how many transactions each (user, category) worker
// generates.
const transactionsPerPair = 5

// locations is the pool of demo merchant locations.
var locations = []string{
	"Seattle, WA",
	"Portland, OR",
	"San Francisco, CA",
	"Austin, TX",
	"New York, NY",
	"Chicago, IL",
}

// TransactionStore is the slice of storage a transaction worker needs.
type TransactionStore interface {
	InsertTransactions(ctx context.Context, txs []*models.Transaction) error
}

// TransactionGenerator produces a fixed batch of synthetic transactions for
// one (user, category) pair. Each invocation owns its records exclusively
// and touches no shared state; the batch persists in full or the call fails.
type TransactionGenerator struct {
	store TransactionStore
}

// NewTransactionGenerator creates a generator backed by the given store.
func NewTransactionGenerator(store TransactionStore) *TransactionGenerator {
	return &TransactionGenerator{store: store}
}

// Generate builds and persists the batch for the pair. Every 3rd item
// (1-based) is income with an amount in [100,500]; the rest are expenses in
// [10,100]. Dates fall within the past 60 days.
func (g *TransactionGenerator) Generate(ctx context.Context, userID int64, category string) error {
	now := time.Now()

	batch := make([]*models.Transaction, 0, transactionsPerPair)
	for i := 1; i <= transactionsPerPair; i++ {
		t := &models.Transaction{
			UserID:      userID,
			Category:    category,
			SubCategory: models.DefaultSubCategory,
			Date:        now.AddDate(0, 0, -rand.IntN(61)),
			Location:    locations[rand.IntN(len(locations))],
		}

		if i%3 == 0 {
			t.Type = models.TypeIncome
			t.Amount = randomAmount(100, 500)
		} else {
			t.Type = models.TypeExpense
			t.Amount = randomAmount(10, 100)
		}

		t.Title = fmt.Sprintf("%s %s %d", category, t.Type, i)
		t.Description = fmt.Sprintf("Demo %s entry for %s", t.Type, category)
		batch = append(batch, t)
	}

	if err := g.store.InsertTransactions(ctx, batch); err != nil {
		return fmt.Errorf("failed to insert transaction batch: %w", err)
	}

	return nil
}

// randomAmount draws uniformly from [min, max] and rounds to cents.
func randomAmount(min, max float64) decimal.Decimal {
	v := min + rand.Float64()*(max-min)
	return decimal.NewFromFloat(v).Round(2)
}
