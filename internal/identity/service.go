// Package identity creates and authenticates user accounts. It is the single
// authority over the user collection.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jems1213/nexus/internal/models"
	"github.com/jems1213/nexus/internal/store"
)

var (
	ErrValidation         = errors.New("all fields are required")
	ErrEmailExists        = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid Google token")
)

// UserView is the sanitized account representation returned to callers.
// It never carries the credential hash.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service implements account registration and both login paths.
type Service struct {
	users    store.UserStore
	verifier TokenVerifier
	logger   *slog.Logger
}

func NewService(users store.UserStore, verifier TokenVerifier, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		verifier: verifier,
		logger:   logger,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, name, email, password string) (*UserView, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" {
		return nil, ErrValidation
	}

	// Early exit on a known duplicate; the unique index on users.email
	// still backstops concurrent registrations.
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("identity: lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("identity: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("identity: create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return toView(user), nil
}

// Authenticate verifies an email/password pair. Unknown emails, wrong
// passwords and Google-provisioned accounts without a local password all
// fail with the same ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*UserView, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("identity: lookup email: %w", err)
	}

	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return toView(user), nil
}

// AuthenticateGoogle verifies a Google-issued ID token and logs in the
// matching account, provisioning one from the verified claims if the email
// is new. Only claims extracted from the verified token are trusted.
func (s *Service) AuthenticateGoogle(ctx context.Context, rawToken string) (*UserView, error) {
	claims, err := s.verifier.Verify(ctx, rawToken)
	if err != nil {
		s.logger.Warn("google token rejected", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := s.users.GetUserByEmail(ctx, claims.Email)
	if err == nil {
		s.logger.Info("google login", "user_id", user.ID)
		return toView(user), nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("identity: lookup email: %w", err)
	}

	now := time.Now().UTC()
	user = &models.User{
		ID:        uuid.NewString(),
		Name:      claims.Name,
		Email:     claims.Email,
		GoogleSub: claims.Subject,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// Lost a provisioning race; the account exists now.
			if user, err = s.users.GetUserByEmail(ctx, claims.Email); err == nil {
				return toView(user), nil
			}
		}
		return nil, fmt.Errorf("identity: provision google user: %w", err)
	}

	s.logger.Info("google user provisioned", "user_id", user.ID, "email", user.Email)
	return toView(user), nil
}

func toView(u *models.User) *UserView {
	return &UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
