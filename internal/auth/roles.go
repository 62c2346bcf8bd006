package auth

import "github.com/spec-kit/bikehub-frontend/internal/domain"

// View paths the session layer navigates to.
const (
	LoginPath    = "/login"
	AdminPath    = "/admin"
	CustomerPath = "/user"
)

// Navigator performs a side-effecting navigation to a view.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

// Navigate calls f(path).
func (f NavigatorFunc) Navigate(path string) { f(path) }

// RoleSource exposes the role of the current session.
type RoleSource interface {
	Role() domain.Role
}

// Gate restricts views by role.
type Gate struct {
	session RoleSource
	nav     Navigator
}

// NewGate builds a gate over the given session.
func NewGate(session RoleSource, nav Navigator) *Gate {
	return &Gate{session: session, nav: nav}
}

// Allow reports whether the current role is exactly required. On denial it
// navigates to the login view.
func (g *Gate) Allow(required domain.Role) bool {
	if g.session != nil && g.session.Role() == required {
		return true
	}
	if g.nav != nil {
		g.nav.Navigate(LoginPath)
	}
	return false
}

// HomePath returns the landing view for role.
func HomePath(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return AdminPath
	case domain.RoleCustomer:
		return CustomerPath
	default:
		return LoginPath
	}
}

// Recorder is a Navigator that remembers the last requested path instead of
// navigating. Transports that redirect after the fact read it back.
type Recorder struct {
	target string
}

// Navigate records path.
func (r *Recorder) Navigate(path string) { r.target = path }

// Target returns the last recorded path, empty when none.
func (r *Recorder) Target() string { return r.target }
