package models

import "time"

// User is a registered account. Accounts created through Google sign-in
// carry the provider subject in GoogleSub and have an empty PasswordHash,
// so they can never authenticate with a local password.
type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	GoogleSub    string    `db:"google_sub" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
