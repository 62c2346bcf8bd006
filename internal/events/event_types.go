package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/bikehub-frontend/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	// EventSessionChanged fires on every publication of session state.
	EventSessionChanged EventType = "session_changed"

	EventSessionRestored EventType = "session_restored"
	EventLoggedIn        EventType = "logged_in"
	EventLoginFailed     EventType = "login_failed"
	EventLoggedOut       EventType = "logged_out"
	EventTokenRejected   EventType = "token_rejected"
	EventSignedUp        EventType = "signed_up"
	EventSignupFailed    EventType = "signup_failed"
)

// Event represents a session transition.
type Event struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Session   domain.Session `json:"-"`
	Username  string         `json:"username,omitempty"`
	Role      domain.Role    `json:"role"`
	Reason    string         `json:"reason,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewEvent stamps an event for the given session state.
func NewEvent(t EventType, s domain.Session) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		Session:   s,
		Username:  s.Username,
		Role:      s.Role,
		Timestamp: time.Now().UTC(),
	}
}
