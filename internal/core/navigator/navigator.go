// Package navigator derives the screen graph from session state. It owns no
// state of its own beyond the last observed machine state: every read
// re-evaluates the session store, so a role change is reflected on the next
// render rather than served from a cache.
package navigator

import (
	"github.com/rs/zerolog"

	"github.com/gadgetstore/storefront/internal/core/domain"
	"github.com/gadgetstore/storefront/internal/core/store"
)

// State is the navigator's position in the auth lifecycle.
type State string

const (
	StateLoading         State = "loading"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[State][]State{
	StateLoading:         {StateUnauthenticated, StateAuthenticated},
	StateUnauthenticated: {StateAuthenticated},
	StateAuthenticated:   {StateUnauthenticated},
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle
// step.
func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Tab identifies one entry in the authenticated tab set.
type Tab string

const (
	TabHome    Tab = "home"
	TabCart    Tab = "cart"
	TabAdmin   Tab = "admin"
	TabProfile Tab = "profile"
)

// Navigator maps session store state to the screen graph.
type Navigator struct {
	session *store.SessionStore
	log     zerolog.Logger

	last State
}

func New(session *store.SessionStore, log zerolog.Logger) *Navigator {
	n := &Navigator{session: session, log: log, last: StateLoading}

	// Track state changes for transition logging. The screen graph itself is
	// always computed from the session store directly.
	session.Subscribe(n.observe)
	return n
}

func (n *Navigator) observe() {
	next := n.State()
	if next == n.last {
		return
	}
	if !n.last.CanTransitionTo(next) {
		n.log.Warn().Str("from", string(n.last)).Str("to", string(next)).Msg("unexpected navigation transition")
	}
	n.log.Debug().Str("from", string(n.last)).Str("to", string(next)).Msg("navigation state changed")
	n.last = next
}

// State reports the current machine state. Neither screen tree may render
// while StateLoading; the caller shows a neutral loading indicator instead.
func (n *Navigator) State() State {
	switch {
	case n.session.Loading():
		return StateLoading
	case n.session.IsAuthenticated():
		return StateAuthenticated
	default:
		return StateUnauthenticated
	}
}

// Role returns the role driving the authenticated screen graph, RoleGuest
// outside StateAuthenticated.
func (n *Navigator) Role() domain.Role {
	return n.session.Role()
}

// Tabs returns the tab set for the authenticated screen tree in display
// order. The admin tab is present only for roles that can manage products;
// the check runs on every call.
func (n *Navigator) Tabs() []Tab {
	tabs := []Tab{TabHome, TabCart}
	if n.session.Role().CanManageProducts() {
		tabs = append(tabs, TabAdmin)
	}
	return append(tabs, TabProfile)
}
