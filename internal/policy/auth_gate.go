// Package policy binds the gate to SeedMart roles, the database and the
// session carried in the context.
package policy

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/diewo77/seedmart/internal/gate"
	"github.com/diewo77/seedmart/internal/session"
	"gorm.io/gorm"
)

// AuthGate is the single authorization point used by the services.
type AuthGate struct {
	gate  *gate.Gate
	roles *gate.RoleCache
}

// NewAuthGate reads roles from user_role, keeps them for cacheTTL and sets
// the ownership rules: products belong to their manager, transactions to
// their cashier unless an administrator asks.
func NewAuthGate(db *gorm.DB, cacheTTL time.Duration) *AuthGate {
	roles := gate.NewRoleCache(DBRoles{DB: db}, cacheTTL)
	ag := &AuthGate{gate: gate.New(roles), roles: roles}
	ag.gate.SetRule(ResourceProduct, OwnerOnly)
	ag.gate.SetRule(ResourceTransaction, AdminOr(ag.IsAdmin, OwnerOnly))
	return ag
}

// Authorize checks the session user against its role and, when record is
// non-nil, the rule of the resource type. Denials match gate.ErrUnauthorized.
func (ag *AuthGate) Authorize(ctx context.Context, action gate.Action, resourceType string, record any) error {
	userID, _ := session.UserIDFromContext(ctx)
	err := ag.gate.Check(ctx, userID, action, resourceType, record)
	var d *gate.Denial
	if errors.As(err, &d) && d.Reason != gate.ReasonAnonymous {
		log.Printf("[gate] %v", d)
	}
	return err
}

// CanProfile ignores record rules; menus use it to decide what to offer.
func (ag *AuthGate) CanProfile(ctx context.Context, action gate.Action, resourceType string) bool {
	userID, _ := session.UserIDFromContext(ctx)
	return ag.gate.Allowed(ctx, userID, action, resourceType)
}

func (ag *AuthGate) IsAdmin(ctx context.Context, userID uint) bool {
	role, err := ag.roles.RoleOf(ctx, userID)
	return err == nil && role != nil && role.IsSuperuser()
}

// InvalidateUser drops the cached role of a user after it was edited or
// the user was deleted.
func (ag *AuthGate) InvalidateUser(userID uint) {
	ag.roles.Invalidate(userID)
}
