package policy

import (
	"context"

	"github.com/diewo77/seedmart/internal/gate"
)

// Ownable is implemented by records that belong to one user: products to
// their manager, transactions to their cashier.
type Ownable interface {
	GetUserID() uint
}

// OwnerOnly accepts records owned by the acting user. Records that do not
// report an owner are rejected.
func OwnerOnly(_ context.Context, userID uint, _ gate.Action, record any) bool {
	o, ok := record.(Ownable)
	return ok && o.GetUserID() == userID
}

// AdminOr lets administrators through and applies rule to everyone else.
func AdminOr(isAdmin func(ctx context.Context, userID uint) bool, rule gate.Rule) gate.Rule {
	return func(ctx context.Context, userID uint, action gate.Action, record any) bool {
		return isAdmin(ctx, userID) || rule(ctx, userID, action, record)
	}
}
