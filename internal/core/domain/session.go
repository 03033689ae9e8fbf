package domain

// Session is the authenticated identity and bearer token for the current
// user, or the zero value when unauthenticated. Token presence is the single
// source of truth for authentication state.
type Session struct {
	User        User
	AccessToken string
}

// IsAuthenticated reports whether the session carries a token.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// Role returns the session's role, or RoleGuest when unauthenticated.
func (s Session) Role() Role {
	if !s.IsAuthenticated() {
		return RoleGuest
	}
	return s.User.Role
}
