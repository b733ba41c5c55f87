// Package session carries the authenticated operator through a context.
package session

import (
	"context"
	"time"

	"github.com/diewo77/seedmart/internal/models"
	"github.com/google/uuid"
)

type ctxKey string

const sessionCtxKey = ctxKey("session")

// Session is the authenticated state of one console operator. A nil
// *Session is the anonymous state.
type Session struct {
	ID        uuid.UUID
	UserID    uint
	Username  string
	Role      models.RoleID
	RoleName  string
	StartedAt time.Time
}

// New starts a session for an authenticated user.
func New(userID uint, username string, role models.RoleID, roleName string) *Session {
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Username:  username,
		Role:      role,
		RoleName:  roleName,
		StartedAt: time.Now(),
	}
}

// WithSession stores the session in ctx.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionCtxKey).(*Session)
	return s, ok && s != nil
}

// UserIDFromContext extracts the authenticated user id.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	s, ok := FromContext(ctx)
	if !ok {
		return 0, false
	}
	return s.UserID, true
}
