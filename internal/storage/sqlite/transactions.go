package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anveshm/budgetwise/internal/models"
)

// InsertTransactions persists the batch atomically. IDs are generated for
// rows that don't carry one. Any row failure rolls back the whole batch.
func (s *SQLiteStore) InsertTransactions(ctx context.Context, txs []*models.Transaction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO transactions (id, user_id, title, category, sub_category, transaction_type, amount, date, description, location)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, t := range txs {
		if t.ID == "" {
			t.ID = uuid.New().String()
		}

		_, err := tx.ExecContext(ctx, query,
			t.ID,
			t.UserID,
			t.Title,
			t.Category,
			t.SubCategory,
			string(t.Type),
			t.Amount.String(),
			t.Date.Unix(),
			t.Description,
			t.Location,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transactions: %w", err)
	}

	return nil
}

// ListTransactions returns all transactions belonging to the user, newest first.
func (s *SQLiteStore) ListTransactions(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	query := `
		SELECT id, user_id, title, category, sub_category, transaction_type, amount, date, description, location
		FROM transactions
		WHERE user_id = ?
		ORDER BY date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*models.Transaction
	for rows.Next() {
		t := &models.Transaction{}
		var (
			txType string
			amount string
			date   int64
		)
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Title,
			&t.Category,
			&t.SubCategory,
			&txType,
			&amount,
			&date,
			&t.Description,
			&t.Location,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		t.Type = models.TransactionType(txType)
		t.Date = time.Unix(date, 0)
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse amount %q: %w", amount, err)
		}

		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txs, nil
}
