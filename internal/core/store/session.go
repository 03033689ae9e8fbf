package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gadgetstore/storefront/internal/core/domain"
	"github.com/gadgetstore/storefront/internal/core/ports"
)

// SessionStore holds the current identity and bearer token. It starts in a
// loading state; Restore must run once at startup and always terminates it,
// whether or not a persisted session was found. The store is the token source
// for outgoing requests: callers thread its Token() into the API client
// instead of mutating any shared default header.
type SessionStore struct {
	mu      sync.Mutex
	auth    ports.AuthAPI
	storage ports.SessionStorage
	log     zerolog.Logger

	session domain.Session
	loading bool
	subs    subscribers
}

func NewSessionStore(auth ports.AuthAPI, storage ports.SessionStorage, log zerolog.Logger) *SessionStore {
	return &SessionStore{
		auth:    auth,
		storage: storage,
		log:     log,
		loading: true,
	}
}

// Subscribe registers fn to run after every session change. The returned
// function cancels the subscription.
func (s *SessionStore) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subs.add(fn)
}

// Restore populates the session from persisted storage. Absence or a corrupt
// record leaves the session empty; neither is surfaced to the caller beyond a
// log line. The loading state ends in every case.
func (s *SessionStore) Restore(ctx context.Context) {
	sess, ok, err := s.storage.Load(ctx)

	s.mu.Lock()
	switch {
	case err != nil:
		s.log.Warn().Err(err).Msg("failed to restore session, starting unauthenticated")
	case ok:
		s.session = sess
		s.log.Info().Str("email", sess.User.Email).Msg("session restored")
	}
	s.loading = false
	s.mu.Unlock()

	// Subscribers read back through the store's accessors, so they run
	// outside the lock.
	s.subs.notify()
}

// Login exchanges credentials for a new session, persists it, and makes it
// the active authorization context. On failure the error propagates and the
// prior state is untouched.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	sess, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.session = sess
	if err := s.storage.Save(ctx, sess); err != nil {
		// The session is live for this process either way.
		s.log.Warn().Err(err).Msg("failed to persist session")
	}
	s.log.Info().Str("email", sess.User.Email).Str("role", string(sess.User.Role)).Msg("logged in")
	s.mu.Unlock()

	s.subs.notify()
	return nil
}

// Logout clears the session and the persisted record. Safe to call when
// already logged out.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = domain.Session{}
	if err := s.storage.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted session")
	}
	s.mu.Unlock()

	s.subs.notify()
}

// Loading reports whether Restore has yet to complete.
func (s *SessionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsAuthenticated reports whether a token is held. Equivalent to
// Token() != "".
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.IsAuthenticated()
}

// User returns the current user. Zero value when unauthenticated.
func (s *SessionStore) User() domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.User
}

// Role returns the current role, RoleGuest when unauthenticated.
func (s *SessionStore) Role() domain.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Role()
}

// Token returns the bearer token for outgoing requests, empty when
// unauthenticated. Satisfies client.TokenSource.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.AccessToken
}
