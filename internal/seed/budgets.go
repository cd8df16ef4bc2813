package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anveshm/budgetwise/internal/models"
)

// periodLimits are the fixed demo spending caps per recurrence window.
var periodLimits = map[models.PeriodType]decimal.Decimal{
	models.PeriodDaily:   decimal.RequireFromString("50.00"),
	models.PeriodWeekly:  decimal.RequireFromString("200.00"),
	models.PeriodMonthly: decimal.RequireFromString("800.00"),
	models.PeriodYearly:  decimal.RequireFromString("9600.00"),
}

// BudgetStore is the slice of storage a budget worker needs.
type BudgetStore interface {
	InsertBudgets(ctx context.Context, budgets []*models.Budget) error
}

// BudgetGenerator produces one budget per (category, period type) for a
// single user: |categories| × 4 rows, submitted as one atomic batch.
type BudgetGenerator struct {
	store      BudgetStore
	categories []string
}

// NewBudgetGenerator creates a generator over the given category set.
func NewBudgetGenerator(store BudgetStore, categories []string) *BudgetGenerator {
	return &BudgetGenerator{store: store, categories: categories}
}

// Generate builds and persists all budgets for the user. Period bounds are
// computed from the current date.
func (g *BudgetGenerator) Generate(ctx context.Context, userID int64) error {
	now := time.Now()

	batch := make([]*models.Budget, 0, len(g.categories)*len(models.PeriodTypes))
	for _, category := range g.categories {
		for _, period := range models.PeriodTypes {
			start, end := PeriodBounds(period, now)
			batch = append(batch, &models.Budget{
				UserID:      userID,
				Category:    category,
				SubCategory: models.DefaultSubCategory,
				Limit:       periodLimits[period],
				Period:      period,
				StartDate:   start,
				EndDate:     end,
				Description: fmt.Sprintf("Demo %s budget for %s", period, category),
			})
		}
	}

	if err := g.store.InsertBudgets(ctx, batch); err != nil {
		return fmt.Errorf("failed to insert budget batch: %w", err)
	}

	return nil
}

// PeriodBounds returns the inclusive calendar bounds of the period
// containing ref: the day itself, the Monday..Sunday week, the first..last
// day of the month, or the first..last day of the year.
func PeriodBounds(period models.PeriodType, ref time.Time) (start, end time.Time) {
	y, m, d := ref.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())

	switch period {
	case models.PeriodWeekly:
		// Go weeks start on Sunday; shift so Monday is day 0.
		offset := (int(today.Weekday()) + 6) % 7
		monday := today.AddDate(0, 0, -offset)
		return monday, monday.AddDate(0, 0, 6)
	case models.PeriodMonthly:
		first := time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
		return first, first.AddDate(0, 1, -1)
	case models.PeriodYearly:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, ref.Location()),
			time.Date(y, time.December, 31, 0, 0, 0, 0, ref.Location())
	default: // PeriodDaily
		return today, today
	}
}
