// Package entity defines the persisted user record.
package entity

// User represents a registered user. Column names match the original
// storefront schema so the table stays drop-in compatible; there are no
// gorm timestamp columns for the same reason.
type User struct {
	// ID is the generated unique identifier.
	ID int64 `gorm:"primaryKey" json:"id"`

	Firstname string `gorm:"size:255;not null" json:"firstname"`
	Lastname  string `gorm:"size:255;not null" json:"lastname"`

	// Username must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null" json:"username"`

	// PasswordDigest is the salted bcrypt hash, never the plaintext. The
	// original API returns it in full row responses and this implementation
	// keeps that behaviour; it is excluded from token claims only.
	PasswordDigest string `gorm:"size:255;not null" json:"password_digest"`
}
