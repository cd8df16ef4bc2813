package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget represents a per-category spending limit over one recurrence period.
// A user holds one budget per (category, period type) pair.
type Budget struct {
	// ID is the unique identifier for the budget (UUID format).
	ID string `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`

	// Limit is the spending cap for the period.
	Limit decimal.Decimal `json:"limit"`

	// Period is the recurrence window; StartDate and EndDate are the
	// inclusive calendar bounds of the current occurrence.
	Period    PeriodType `json:"period_type"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`

	Description string `json:"description"`
}
