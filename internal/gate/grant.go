package gate

import (
	"fmt"
	"strings"
)

// Any matches every resource type or every action inside a grant.
const Any = "*"

// Grant allows one action, or Any action, on one resource type, or Any.
type Grant struct {
	Resource string
	Action   Action
}

// Superuser is the grant held by administrators.
var Superuser = Grant{Resource: Any, Action: Any}

// ParseGrant reads "product:update", "product:*" or "*:*".
func ParseGrant(s string) (Grant, error) {
	res, act, ok := strings.Cut(s, ":")
	if !ok || res == "" || act == "" || strings.Contains(act, ":") {
		return Grant{}, fmt.Errorf("gate: malformed grant %q", s)
	}
	return Grant{Resource: res, Action: Action(act)}, nil
}

func (g Grant) String() string {
	return g.Resource + ":" + string(g.Action)
}

// Allows reports whether the grant covers action on resource.
func (g Grant) Allows(resource string, action Action) bool {
	return (g.Resource == Any || g.Resource == resource) &&
		(g.Action == Any || g.Action == action)
}
