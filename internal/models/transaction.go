package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single income or expense entry in a user's ledger.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	// Title is the human-readable name for the entry.
	Title string `json:"title"`

	// Category is one of the fixed Categories; SubCategory defaults to
	// DefaultSubCategory.
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`

	// Type is expense or income.
	Type TransactionType `json:"type"`

	// Amount is the transaction value. Always positive; Type carries the
	// direction.
	Amount decimal.Decimal `json:"amount"`

	// Date is when the transaction occurred.
	Date time.Time `json:"date"`

	Description string `json:"description"`
	Location    string `json:"location"`
}
