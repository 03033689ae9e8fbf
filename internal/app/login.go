package app

import (
	"context"
	"sync"

	"github.com/gadgetstore/storefront/internal/core/store"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginController backs the login screen. It validates the form locally
// before calling the API and blocks re-submission while a login is in flight.
type LoginController struct {
	mu      sync.Mutex
	session *store.SessionStore

	busy        bool
	fieldErrors map[string]string
	submitErr   error
}

func NewLoginController(session *store.SessionStore) *LoginController {
	return &LoginController{session: session}
}

// Submit validates and sends the credentials. Validation failures populate
// FieldErrors without touching the network; API failures land in SubmitErr
// for the screen to display. The session itself only changes on success.
func (l *LoginController) Submit(ctx context.Context, email, password string) {
	l.mu.Lock()
	if l.busy {
		l.mu.Unlock()
		return
	}
	l.fieldErrors = validateForm(loginForm{Email: email, Password: password})
	l.submitErr = nil
	if l.fieldErrors != nil {
		l.mu.Unlock()
		return
	}
	l.busy = true
	l.mu.Unlock()

	err := l.session.Login(ctx, email, password)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.busy = false
	l.submitErr = err
}

// Busy reports whether a login is in flight; the submit control stays
// disabled while true.
func (l *LoginController) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busy
}

// FieldErrors returns per-field validation messages from the last submit.
func (l *LoginController) FieldErrors() map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fieldErrors
}

// SubmitErr returns the API failure from the last submit, nil on success.
func (l *LoginController) SubmitErr() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.submitErr
}
