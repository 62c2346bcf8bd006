package domain

// Session is the client-side authentication state. Empty Username and Token
// stand for "no value".
//
// A Role other than RoleGuest implies LoggedIn and a non-empty Token.
type Session struct {
	LoggedIn bool
	Role     Role
	Username string
	Token    string
}

// GuestSession returns the unauthenticated defaults.
func GuestSession() Session {
	return Session{Role: RoleGuest}
}

// Valid reports whether the session satisfies its invariant.
func (s Session) Valid() bool {
	if s.Role != RoleGuest {
		return s.LoggedIn && s.Token != ""
	}
	return true
}
