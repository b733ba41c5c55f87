package policy

import (
	"context"
	"errors"

	"github.com/diewo77/seedmart/internal/gate"
	"github.com/diewo77/seedmart/internal/models"
	"gorm.io/gorm"
)

// Resource types checked by the gate.
const (
	ResourceProduct       = "product"
	ResourceCatalog       = "catalog"
	ResourceCategory      = "category"
	ResourceInventory     = "inventory"
	ResourceTransaction   = "transaction"
	ResourceLedger        = "ledger"
	ResourcePaymentMethod = "payment_method"
	ResourceUser          = "user"
	ResourceReport        = "report"
)

var storeRoles = map[models.RoleID]*gate.Role{
	models.RoleAdmin: gate.NewRole(uint(models.RoleAdmin), "Admin",
		"*:*",
	),
	models.RoleManager: gate.NewRole(uint(models.RoleManager), "Pengelola Toko",
		"product:*",
		"category:list",
	),
	models.RoleCashier: gate.NewRole(uint(models.RoleCashier), "Kasir",
		"catalog:list",
		"transaction:create",
		"transaction:list",
		"transaction:view",
		"payment_method:list",
	),
}

// RoleFor returns the grants of a stored role id, or nil for an unknown id.
func RoleFor(id models.RoleID) *gate.Role {
	return storeRoles[id]
}

// DBRoles reads role assignments from user_role.
type DBRoles struct {
	DB *gorm.DB
}

func (r DBRoles) RoleOf(ctx context.Context, userID uint) (*gate.Role, error) {
	var ur models.UserRole
	err := r.DB.WithContext(ctx).Where("id_user = ?", userID).First(&ur).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return RoleFor(ur.RoleID), nil
}
