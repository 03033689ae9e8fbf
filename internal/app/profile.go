package app

import (
	"context"

	"github.com/gadgetstore/storefront/internal/core/domain"
	"github.com/gadgetstore/storefront/internal/core/store"
)

// ProfileController backs the profile screen: identity display and logout.
type ProfileController struct {
	session *store.SessionStore
}

func NewProfileController(session *store.SessionStore) *ProfileController {
	return &ProfileController{session: session}
}

// User returns the identity on display.
func (p *ProfileController) User() domain.User {
	return p.session.User()
}

// ShowRoleBadge reports whether the elevated-role badge renders. Plain users
// get no badge.
func (p *ProfileController) ShowRoleBadge() bool {
	role := p.session.Role()
	return role != domain.RoleUser && role != domain.RoleGuest
}

// Logout ends the session after the screen's confirmation dialog.
func (p *ProfileController) Logout(ctx context.Context) {
	p.session.Logout(ctx)
}
