package app

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gadgetstore/storefront/internal/core/domain"
	"github.com/gadgetstore/storefront/internal/core/store"
)

func newLoginController(auth *stubAuthAPI) (*LoginController, *store.SessionStore) {
	session := store.NewSessionStore(auth, nopStorage{}, zerolog.Nop())
	session.Restore(context.Background())
	return NewLoginController(session), session
}

func TestLoginController_SubmitSuccess(t *testing.T) {
	auth := &stubAuthAPI{session: domain.Session{
		AccessToken: "t1",
		User:        domain.User{ID: 1, Email: "a@b.com", Role: domain.RoleUser},
	}}
	l, session := newLoginController(auth)

	l.Submit(context.Background(), "a@b.com", "x")

	if l.SubmitErr() != nil {
		t.Fatalf("unexpected submit error: %v", l.SubmitErr())
	}
	if l.FieldErrors() != nil {
		t.Fatalf("unexpected field errors: %v", l.FieldErrors())
	}
	if !session.IsAuthenticated() {
		t.Fatal("expected authenticated session")
	}
	if l.Busy() {
		t.Fatal("busy must end")
	}
}

func TestLoginController_ValidationBlocksNetwork(t *testing.T) {
	auth := &stubAuthAPI{}
	l, _ := newLoginController(auth)

	l.Submit(context.Background(), "not-an-email", "")

	errs := l.FieldErrors()
	if errs["email"] == "" || errs["password"] == "" {
		t.Fatalf("expected messages for email and password, got %v", errs)
	}
	if auth.calls != 0 {
		t.Fatal("no network call may happen on validation failure")
	}
}

func TestLoginController_SubmitAPIFailure(t *testing.T) {
	auth := &stubAuthAPI{err: domain.ErrInvalidCredentials}
	l, session := newLoginController(auth)

	l.Submit(context.Background(), "a@b.com", "wrong")

	if !errors.Is(l.SubmitErr(), domain.ErrInvalidCredentials) {
		t.Fatalf("SubmitErr = %v, want ErrInvalidCredentials", l.SubmitErr())
	}
	if session.IsAuthenticated() {
		t.Fatal("session must stay unauthenticated")
	}
}

func TestLoginController_RetryClearsSubmitError(t *testing.T) {
	auth := &stubAuthAPI{err: domain.ErrInvalidCredentials}
	l, _ := newLoginController(auth)

	l.Submit(context.Background(), "a@b.com", "wrong")
	if l.SubmitErr() == nil {
		t.Fatal("expected submit error")
	}

	auth.err = nil
	auth.session = domain.Session{AccessToken: "t1", User: domain.User{ID: 1, Role: domain.RoleUser}}
	l.Submit(context.Background(), "a@b.com", "right")

	if l.SubmitErr() != nil {
		t.Fatalf("submit error should clear on success, got %v", l.SubmitErr())
	}
}
