package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/jems1213/nexus/internal/utils"
)

var errNotAuthorized = errors.New("not authorized")

// Authorizer decides whether a request may reach an admin-only endpoint.
// It is injected at the HTTP boundary so deployments can swap in their own
// access-control scheme.
type Authorizer interface {
	Authorize(r *http.Request) error
}

// APIKeyAuthorizer admits requests presenting the configured key as a
// bearer token. An empty key admits nobody.
type APIKeyAuthorizer struct {
	key string
}

func NewAPIKeyAuthorizer(key string) *APIKeyAuthorizer {
	return &APIKeyAuthorizer{key: key}
}

func (a *APIKeyAuthorizer) Authorize(r *http.Request) error {
	if a.key == "" {
		return errNotAuthorized
	}

	auth := r.Header.Get("Authorization")
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return errNotAuthorized
	}

	token := strings.TrimSpace(parts[1])
	if subtle.ConstantTimeCompare([]byte(token), []byte(a.key)) != 1 {
		return errNotAuthorized
	}
	return nil
}

// RequireAdmin gates a route behind the given Authorizer.
func RequireAdmin(a Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := a.Authorize(r); err != nil {
				utils.Fail(w, http.StatusUnauthorized, "Not authorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
