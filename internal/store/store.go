// Package store provides abstractions for persistent data storage.
package store

import (
	"context"
	"errors"

	"github.com/jems1213/nexus/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint. The users.email unique index is the source of truth for
	// duplicate detection; callers must handle this error even after a
	// successful existence check.
	ErrDuplicate = errors.New("record already exists")
)

// UserStore defines the persistence operations of the identity service.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// ContactStore defines the persistence operations of the contact service.
type ContactStore interface {
	CreateContact(ctx context.Context, contact *models.Contact) error

	// ListContacts returns all submissions, newest first.
	ListContacts(ctx context.Context) ([]models.Contact, error)
}
