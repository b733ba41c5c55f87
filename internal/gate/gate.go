package gate

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnauthorized is matched by every denial.
var ErrUnauthorized = errors.New("unauthorized")

// Rule judges a loaded record of one resource type. It only runs after the
// role granted the action.
type Rule func(ctx context.Context, userID uint, action Action, record any) bool

// Denial says why a check failed. It matches ErrUnauthorized with errors.Is.
type Denial struct {
	UserID   uint
	Resource string
	Action   Action
	Reason   string
}

const (
	ReasonAnonymous = "anonymous"
	ReasonNoRole    = "no role"
	ReasonNoGrant   = "not granted"
	ReasonRule      = "rejected by rule"
)

func (d *Denial) Error() string {
	return fmt.Sprintf("unauthorized: user %d %s:%s (%s)", d.UserID, d.Resource, d.Action, d.Reason)
}

func (d *Denial) Is(target error) bool { return target == ErrUnauthorized }

// Gate checks roles first and then the rule of the resource type, if any.
// Rules are set up before the gate is shared.
type Gate struct {
	roles RoleSource
	rules map[string]Rule
}

func New(roles RoleSource) *Gate {
	return &Gate{roles: roles, rules: make(map[string]Rule)}
}

// SetRule replaces the rule of a resource type.
func (g *Gate) SetRule(resource string, r Rule) {
	g.rules[resource] = r
}

// Check returns nil when userID may perform action on resource. A nil record
// skips the rule; listing and creating are decided by the role alone.
// Lookup failures are returned as they are.
func (g *Gate) Check(ctx context.Context, userID uint, action Action, resource string, record any) error {
	deny := func(reason string) error {
		return &Denial{UserID: userID, Resource: resource, Action: action, Reason: reason}
	}
	if userID == 0 {
		return deny(ReasonAnonymous)
	}
	role, err := g.roles.RoleOf(ctx, userID)
	if err != nil {
		return fmt.Errorf("resolve role of user %d: %w", userID, err)
	}
	if role == nil {
		return deny(ReasonNoRole)
	}
	if !role.Allows(resource, action) {
		return deny(ReasonNoGrant)
	}
	if record == nil {
		return nil
	}
	if rule, ok := g.rules[resource]; ok && !rule(ctx, userID, action, record) {
		return deny(ReasonRule)
	}
	return nil
}

// Allowed is Check without a record, reduced to a bool.
func (g *Gate) Allowed(ctx context.Context, userID uint, action Action, resource string) bool {
	return g.Check(ctx, userID, action, resource, nil) == nil
}
