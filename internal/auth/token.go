package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
)

var (
	// ErrMalformedToken is returned when a token does not decode into the expected claims.
	ErrMalformedToken = errors.New("malformed token")
	// ErrTokenExpired is returned by a codec built with rejectExpired.
	ErrTokenExpired = errors.New("token expired")
)

// Claims describes the JWT payload the front-end relies on.
type Claims struct {
	RoleClaim string `json:"role"`
	jwt.RegisteredClaims
}

// Role maps the role claim onto a domain role.
func (c *Claims) Role() domain.Role {
	return domain.RoleFromClaim(c.RoleClaim)
}

// Username returns the sub claim.
func (c *Claims) Username() string {
	return c.Subject
}

// Codec decodes bearer tokens. It never verifies signatures: the API is the
// only party that trusts a token, the front-end just reads it. Without
// rejectExpired only the role and sub claims have to be well formed.
type Codec struct {
	parser        *jwt.Parser
	rejectExpired bool
	now           func() time.Time
}

// NewCodec builds a codec. With rejectExpired, a token whose exp claim lies in
// the past fails to decode.
func NewCodec(rejectExpired bool) *Codec {
	return &Codec{
		parser:        jwt.NewParser(),
		rejectExpired: rejectExpired,
		now:           time.Now,
	}
}

// Decode extracts the claims from token.
func (c *Codec) Decode(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrMalformedToken)
	}

	if !c.rejectExpired {
		return c.decodePayload(token)
	}

	claims := &Claims{}
	if _, _, err := c.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if exp != nil && !c.now().Before(exp.Time) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

// decodePayload reads only role and sub. Header and registered claims are
// not looked at.
func (c *Codec) decodePayload(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: token contains %d segments", ErrMalformedToken, len(parts))
	}
	raw, err := c.parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	var payload struct {
		Role string `json:"role"`
		Sub  string `json:"sub"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	claims := &Claims{RoleClaim: payload.Role}
	claims.Subject = payload.Sub
	return claims, nil
}
