package gate

import (
	"context"
	"sort"
)

// Role is a named, immutable set of grants.
type Role struct {
	ID     uint
	Name   string
	grants []Grant
}

// NewRole builds a role from grant strings. It panics on a malformed grant,
// so roles are meant to be declared once at package level.
func NewRole(id uint, name string, grants ...string) *Role {
	r := &Role{ID: id, Name: name, grants: make([]Grant, 0, len(grants))}
	for _, s := range grants {
		g, err := ParseGrant(s)
		if err != nil {
			panic(err)
		}
		r.grants = append(r.grants, g)
	}
	return r
}

func (r *Role) Allows(resource string, action Action) bool {
	for _, g := range r.grants {
		if g.Allows(resource, action) {
			return true
		}
	}
	return false
}

func (r *Role) IsSuperuser() bool {
	for _, g := range r.grants {
		if g == Superuser {
			return true
		}
	}
	return false
}

// Grants lists the grants in lexical order.
func (r *Role) Grants() []string {
	out := make([]string, len(r.grants))
	for i, g := range r.grants {
		out[i] = g.String()
	}
	sort.Strings(out)
	return out
}

// RoleSource finds the role assigned to a user. A nil role with a nil error
// means the user has no assignment.
type RoleSource interface {
	RoleOf(ctx context.Context, userID uint) (*Role, error)
}

// RoleMap is an in-memory RoleSource.
type RoleMap map[uint]*Role

func (m RoleMap) RoleOf(_ context.Context, userID uint) (*Role, error) {
	return m[userID], nil
}
