package navigator

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gadgetstore/storefront/internal/core/domain"
	"github.com/gadgetstore/storefront/internal/core/store"
)

type stubAuthAPI struct {
	session domain.Session
}

func (s *stubAuthAPI) Login(_ context.Context, _, _ string) (domain.Session, error) {
	return s.session, nil
}

type memStorage struct {
	session domain.Session
	found   bool
}

func (m *memStorage) Load(_ context.Context) (domain.Session, bool, error) {
	return m.session, m.found, nil
}

func (m *memStorage) Save(_ context.Context, sess domain.Session) error {
	m.session, m.found = sess, true
	return nil
}

func (m *memStorage) Clear(_ context.Context) error {
	m.session, m.found = domain.Session{}, false
	return nil
}

func sessionFor(role domain.Role) domain.Session {
	return domain.Session{
		AccessToken: "t1",
		User:        domain.User{ID: 1, Email: "a@b.com", Role: role},
	}
}

func newNavigator(auth *stubAuthAPI, storage *memStorage) (*Navigator, *store.SessionStore) {
	s := store.NewSessionStore(auth, storage, zerolog.Nop())
	return New(s, zerolog.Nop()), s
}

func TestNavigator_LoadingBeforeRestore(t *testing.T) {
	n, _ := newNavigator(&stubAuthAPI{}, &memStorage{})
	if got := n.State(); got != StateLoading {
		t.Fatalf("State = %q, want loading", got)
	}
}

func TestNavigator_UnauthenticatedAfterEmptyRestore(t *testing.T) {
	n, s := newNavigator(&stubAuthAPI{}, &memStorage{})
	s.Restore(context.Background())
	if got := n.State(); got != StateUnauthenticated {
		t.Fatalf("State = %q, want unauthenticated", got)
	}
}

func TestNavigator_AuthenticatedAfterRestore(t *testing.T) {
	n, s := newNavigator(&stubAuthAPI{}, &memStorage{session: sessionFor(domain.RoleUser), found: true})
	s.Restore(context.Background())
	if got := n.State(); got != StateAuthenticated {
		t.Fatalf("State = %q, want authenticated", got)
	}
	if got := n.Role(); got != domain.RoleUser {
		t.Fatalf("Role = %q, want user", got)
	}
}

func TestNavigator_LoginAndLogoutTransitions(t *testing.T) {
	n, s := newNavigator(&stubAuthAPI{session: sessionFor(domain.RoleUser)}, &memStorage{})
	s.Restore(context.Background())

	if err := s.Login(context.Background(), "a@b.com", "x"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if got := n.State(); got != StateAuthenticated {
		t.Fatalf("State after login = %q, want authenticated", got)
	}

	s.Logout(context.Background())
	if got := n.State(); got != StateUnauthenticated {
		t.Fatalf("State after logout = %q, want unauthenticated", got)
	}
	if got := n.Role(); got != domain.RoleGuest {
		t.Fatalf("Role after logout = %q, want guest", got)
	}
}

func TestNavigator_Tabs(t *testing.T) {
	tests := []struct {
		role      domain.Role
		wantAdmin bool
	}{
		{domain.RoleUser, false},
		{domain.RoleAdmin, true},
		{domain.RoleSuperAdmin, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.role), func(t *testing.T) {
			n, s := newNavigator(&stubAuthAPI{}, &memStorage{session: sessionFor(tc.role), found: true})
			s.Restore(context.Background())

			tabs := n.Tabs()
			hasAdmin := false
			for _, tab := range tabs {
				if tab == TabAdmin {
					hasAdmin = true
				}
			}
			if hasAdmin != tc.wantAdmin {
				t.Fatalf("admin tab present = %v, want %v (tabs: %v)", hasAdmin, tc.wantAdmin, tabs)
			}

			if tabs[0] != TabHome || tabs[len(tabs)-1] != TabProfile {
				t.Fatalf("unexpected tab order: %v", tabs)
			}
		})
	}
}

func TestNavigator_TabsReevaluatedPerCall(t *testing.T) {
	auth := &stubAuthAPI{session: sessionFor(domain.RoleAdmin)}
	n, s := newNavigator(auth, &memStorage{})
	s.Restore(context.Background())

	if len(n.Tabs()) != 3 {
		t.Fatalf("expected 3 tabs while unauthenticated, got %v", n.Tabs())
	}

	_ = s.Login(context.Background(), "a@b.com", "x")
	if len(n.Tabs()) != 4 {
		t.Fatalf("expected 4 tabs for admin, got %v", n.Tabs())
	}
}

func TestState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateLoading, StateUnauthenticated, true},
		{StateLoading, StateAuthenticated, true},
		{StateUnauthenticated, StateAuthenticated, true},
		{StateAuthenticated, StateUnauthenticated, true},
		{StateUnauthenticated, StateLoading, false},
		{StateAuthenticated, StateLoading, false},
	}
	for _, tc := range tests {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
