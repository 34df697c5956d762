package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/jems1213/nexus/internal/models"
)

type fakeContactStore struct {
	contacts  []models.Contact
	createErr error
}

func (f *fakeContactStore) CreateContact(_ context.Context, c *models.Contact) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.contacts = append(f.contacts, *c)
	return nil
}

// ListContacts mirrors the Postgres ORDER BY created_at DESC.
func (f *fakeContactStore) ListContacts(context.Context) ([]models.Contact, error) {
	out := make([]models.Contact, len(f.contacts))
	copy(out, f.contacts)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func newTestService(contacts *fakeContactStore) *Service {
	return NewService(contacts, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSubmit(t *testing.T) {
	contacts := &fakeContactStore{}
	svc := newTestService(contacts)

	receipt, err := svc.Submit(context.Background(), "Bo", "bo@x.com", "this is long enough")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if receipt.ID == "" {
		t.Error("expected a generated id")
	}
	if receipt.CreatedAt.IsZero() {
		t.Error("expected a server-assigned timestamp")
	}
	if len(contacts.contacts) != 1 {
		t.Fatalf("expected 1 stored submission, got %d", len(contacts.contacts))
	}
	if contacts.contacts[0].Message != "this is long enough" {
		t.Errorf("unexpected stored message: %q", contacts.contacts[0].Message)
	}
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name                 string
		from, email, message string
		want                 error
	}{
		{"missing name", "", "bo@x.com", "a long enough message", ErrValidation},
		{"missing email", "Bo", "", "a long enough message", ErrValidation},
		{"missing message", "Bo", "bo@x.com", "", ErrValidation},
		// Presence is checked before shape: empty email short-circuits
		// ahead of the pattern and length checks.
		{"empty email with short message", "Bo", "", "short", ErrValidation},
		{"email without tld dot", "Bo", "foo@bar", "a long enough message", ErrInvalidEmail},
		{"email with spaces", "Bo", "foo bar@baz.com", "a long enough message", ErrInvalidEmail},
		{"email with two ats", "Bo", "foo@bar@baz.com", "a long enough message", ErrInvalidEmail},
		// Email shape is checked before message length.
		{"bad email and short message", "Bo", "foo@bar", "short", ErrInvalidEmail},
		{"message of length 9", "Bo", "bo@x.com", "123456789", ErrMessageTooShort},
		{"short message", "Bo", "bo@x.com", "short", ErrMessageTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts := &fakeContactStore{}
			svc := newTestService(contacts)

			_, err := svc.Submit(context.Background(), tt.from, tt.email, tt.message)
			if !errors.Is(err, tt.want) {
				t.Errorf("Submit(%q, %q, %q) = %v, want %v", tt.from, tt.email, tt.message, err, tt.want)
			}
			if len(contacts.contacts) != 0 {
				t.Error("rejected submission must not be persisted")
			}
		})
	}
}

func TestSubmit_AcceptsBoundaryCases(t *testing.T) {
	svc := newTestService(&fakeContactStore{})

	// Exactly 10 characters passes.
	if _, err := svc.Submit(context.Background(), "Bo", "foo@bar.com", "1234567890"); err != nil {
		t.Errorf("10-char message rejected: %v", err)
	}
	// Length is counted in characters, not bytes.
	if _, err := svc.Submit(context.Background(), "Bo", "foo@bar.com", "héllo wörld"); err != nil {
		t.Errorf("multibyte message rejected: %v", err)
	}
}

func TestList_NewestFirst(t *testing.T) {
	ctx := context.Background()
	contacts := &fakeContactStore{}
	svc := newTestService(contacts)

	messages := []string{"first message here", "second message here", "third message here"}
	for i, msg := range messages {
		if _, err := svc.Submit(ctx, "Bo", "bo@x.com", msg); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		// Distinct timestamps so the ordering is deterministic.
		contacts.contacts[i].CreatedAt = contacts.contacts[i].CreatedAt.Add(time.Duration(i) * time.Second)
	}

	got, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(got))
	}
	for i, want := range []string{"third message here", "second message here", "first message here"} {
		if got[i].Message != want {
			t.Errorf("position %d: got %q, want %q", i, got[i].Message, want)
		}
	}
}

func TestSubmit_StoreUnavailable(t *testing.T) {
	contacts := &fakeContactStore{createErr: errors.New("connection refused")}
	svc := newTestService(contacts)

	_, err := svc.Submit(context.Background(), "Bo", "bo@x.com", "a long enough message")
	if err == nil || errors.Is(err, ErrValidation) {
		t.Errorf("expected an unavailability error, got %v", err)
	}
}
