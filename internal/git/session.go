package git

import (
	"github.com/kurobon/gitflowsim/internal/state"
)

// Session and SessionManager live in state; the aliases let drivers hold
// them without importing both packages.
type (
	Session        = state.Session
	SessionManager = state.SessionManager
)

// NewSession starts an interactive session with a fresh ID and clock-seeded sources.
func NewSession() *Session {
	return state.NewSession(state.NewSessionID(), nil)
}
