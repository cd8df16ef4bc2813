package models

// Categories is the fixed set of spending categories. Every transaction and
// budget belongs to exactly one of these; the set is read-only and shared
// across the application.
var Categories = []string{
	"Food",
	"Transportation",
	"Entertainment",
	"Shopping",
	"Utilities",
	"Healthcare",
	"Education",
	"Other",
}

// DefaultSubCategory is used when no finer-grained classification applies.
const DefaultSubCategory = "General"

// TransactionType classifies a ledger entry as money in or money out.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// PeriodType is a budget's recurrence window.
type PeriodType string

const (
	PeriodDaily   PeriodType = "daily"
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
	PeriodYearly  PeriodType = "yearly"
)

// PeriodTypes lists all recurrence windows in ascending span order.
var PeriodTypes = []PeriodType{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly}
