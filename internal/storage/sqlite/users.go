package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anveshm/budgetwise/internal/models"
)

// InsertUsers inserts all users in a single transaction. The database
// assigns each user_id; onCreated (if non-nil) observes every id right
// after the corresponding insert, before the commit. A failure on any row
// rolls back the whole batch.
func (s *SQLiteStore) InsertUsers(ctx context.Context, users []*models.User, onCreated func(id int64)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (first_name, last_name, email, password)
		VALUES (?, ?, ?, ?)
		RETURNING user_id
	`

	for _, user := range users {
		err := tx.QueryRowContext(ctx, query,
			user.FirstName,
			user.LastName,
			user.Email,
			user.PasswordHash,
		).Scan(&user.ID)
		if err != nil {
			return fmt.Errorf("failed to insert user %q: %w", user.Email, err)
		}

		if onCreated != nil {
			onCreated(user.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit users: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT user_id, first_name, last_name, email, password
		FROM users
		WHERE email = ?
	`

	user := &models.User{}
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// ListUsers returns all users ordered by id.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT user_id, first_name, last_name, email, password
		FROM users
		ORDER BY user_id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.PasswordHash,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
