// Package contact validates and records contact-form submissions.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jems1213/nexus/internal/models"
	"github.com/jems1213/nexus/internal/store"
)

var (
	ErrValidation      = errors.New("all fields are required")
	ErrInvalidEmail    = errors.New("please enter a valid email address")
	ErrMessageTooShort = errors.New("message should be at least 10 characters long")
)

// minMessageLen is counted in characters, not bytes.
const minMessageLen = 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Receipt is returned for an accepted submission.
type Receipt struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service validates submissions and hands them to the store. Persistence is
// the entire effect: no mail is sent, nothing is notified.
type Service struct {
	contacts store.ContactStore
	logger   *slog.Logger
}

func NewService(contacts store.ContactStore, logger *slog.Logger) *Service {
	return &Service{
		contacts: contacts,
		logger:   logger,
	}
}

// Submit validates in order (presence, email shape, message length),
// stopping at the first failure, then persists the submission.
func (s *Service) Submit(ctx context.Context, name, email, message string) (*Receipt, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || message == "" {
		return nil, ErrValidation
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if utf8.RuneCountInString(message) < minMessageLen {
		return nil, ErrMessageTooShort
	}

	c := &models.Contact{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.contacts.CreateContact(ctx, c); err != nil {
		return nil, fmt.Errorf("contact: create submission: %w", err)
	}

	s.logger.Info("contact submission stored", "id", c.ID, "email", c.Email)
	return &Receipt{ID: c.ID, CreatedAt: c.CreatedAt}, nil
}

// List returns every submission, newest first.
func (s *Service) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contacts.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("contact: list submissions: %w", err)
	}
	return contacts, nil
}
