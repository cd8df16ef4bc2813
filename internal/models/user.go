package models

// User represents a registered account holder.
type User struct {
	// ID is the database-assigned identifier. Zero until the row is
	// inserted; immutable afterwards.
	ID int64

	// FirstName and LastName are the user's display names.
	FirstName string
	LastName  string

	// Email is the user's email address (unique). Used for login.
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	// Never holds plaintext.
	PasswordHash string
}
