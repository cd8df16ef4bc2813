package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anveshm/budgetwise/internal/models"
)

// dateLayout is how budget period bounds are stored. Dates only, no time
// component, so string comparison matches chronological order.
const dateLayout = "2006-01-02"

// InsertBudgets persists the batch atomically. IDs are generated for rows
// that don't carry one. Any row failure rolls back the whole batch.
func (s *SQLiteStore) InsertBudgets(ctx context.Context, budgets []*models.Budget) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO budgets (id, user_id, category, sub_category, budget_limit, period_type, start_date, end_date, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, b := range budgets {
		if b.ID == "" {
			b.ID = uuid.New().String()
		}

		_, err := tx.ExecContext(ctx, query,
			b.ID,
			b.UserID,
			b.Category,
			b.SubCategory,
			b.Limit.String(),
			string(b.Period),
			b.StartDate.Format(dateLayout),
			b.EndDate.Format(dateLayout),
			b.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert budget: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit budgets: %w", err)
	}

	return nil
}

// ListBudgets returns all budgets belonging to the user, grouped by category.
func (s *SQLiteStore) ListBudgets(ctx context.Context, userID int64) ([]*models.Budget, error) {
	query := `
		SELECT id, user_id, category, sub_category, budget_limit, period_type, start_date, end_date, description
		FROM budgets
		WHERE user_id = ?
		ORDER BY category, period_type
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*models.Budget
	for rows.Next() {
		b := &models.Budget{}
		var (
			limit  string
			period string
			start  string
			end    string
		)
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.Category,
			&b.SubCategory,
			&limit,
			&period,
			&start,
			&end,
			&b.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}

		b.Period = models.PeriodType(period)
		if b.Limit, err = decimal.NewFromString(limit); err != nil {
			return nil, fmt.Errorf("failed to parse budget limit %q: %w", limit, err)
		}
		if b.StartDate, err = time.Parse(dateLayout, start); err != nil {
			return nil, fmt.Errorf("failed to parse start date %q: %w", start, err)
		}
		if b.EndDate, err = time.Parse(dateLayout, end); err != nil {
			return nil, fmt.Errorf("failed to parse end date %q: %w", end, err)
		}

		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}

	return budgets, nil
}
