package services

import (
	"context"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/ports"
)

// Storage keys, string-encoded. The names mirror what the browser build
// kept in localStorage so a backend inspecting the store sees familiar keys.
const (
	keySessionToken  = "token"
	keyUserRole      = "user_role"
	keyDoctorOnLeave = "doctor_on_leave"
	keyTheme         = "theme"
	keyNotifications = "notifications"
)

// managedKeys is every key the client owns. Session teardown wipes them
// all in one atomic delete.
var managedKeys = []string{
	keySessionToken,
	keyUserRole,
	keyDoctorOnLeave,
	keyTheme,
	keyNotifications,
}

// SessionStore holds the opaque session token and the role tag. It has no
// expiry logic; the token is created on login and destroyed on logout.
type SessionStore struct {
	kv ports.KeyValueStore
}

func NewSessionStore(kv ports.KeyValueStore) *SessionStore {
	return &SessionStore{kv: kv}
}

func (s *SessionStore) SetSession(ctx context.Context, token string, role domain.Role) {
	s.kv.Set(ctx, keySessionToken, token)
	s.kv.Set(ctx, keyUserRole, string(role))
}

// Token returns the session token and whether one is present.
func (s *SessionStore) Token(ctx context.Context) (string, bool) {
	token, ok := s.kv.Get(ctx, keySessionToken)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// Role returns the stored role, defaulting to Doctor when unset. The
// default is a usability fallback only — authorization still requires a
// token, so callers must not treat it as a grant.
func (s *SessionStore) Role(ctx context.Context) domain.Role {
	role, ok := s.kv.Get(ctx, keyUserRole)
	if !ok || role == "" {
		return domain.RoleDoctor
	}
	return domain.Role(role)
}

// ClearSession removes the token and role together. The underlying delete
// is atomic, so no reader can see a token without a role or vice versa.
func (s *SessionStore) ClearSession(ctx context.Context) {
	s.kv.Delete(ctx, keySessionToken, keyUserRole)
}
