package domain

// Role governs which views are reachable.
type Role string

const (
	RoleGuest    Role = "GUEST"
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// RoleFromClaim maps a token role claim onto a Role. Anything other than
// CUSTOMER or ADMIN maps to RoleGuest.
func RoleFromClaim(claim string) Role {
	switch Role(claim) {
	case RoleCustomer:
		return RoleCustomer
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleGuest
	}
}

// LoginRequest is the credential pair sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthLogin is the login endpoint response.
type AuthLogin struct {
	AccessToken string `json:"accessToken"`
}

// SignUpRequest registers a new customer account.
type SignUpRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
