// Package models defines the core domain models for Budgetwise.
//
// # Models
//
//   - User: an account holder; the integer id is assigned by the database
//   - Transaction: a single income or expense entry in a user's ledger
//   - Budget: a per-category spending limit over a recurrence period
//
// # Design Principles
//
// 1. **Database-assigned identity**: users carry integer ids generated on
// insert; transactions and budgets use UUID strings generated in Go.
// 2. **Exact money**: amounts and limits are decimal.Decimal, never floats,
// and are persisted as canonical strings.
// 3. **Avoid circular references**: rows reference users by id, not pointer.
package models
