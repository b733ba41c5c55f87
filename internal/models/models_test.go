package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProduct_GetUserID(t *testing.T) {
	product := &Product{UserID: 42}
	if got := product.GetUserID(); got != 42 {
		t.Errorf("GetUserID() = %d, want 42", got)
	}
}

func TestTransaction_GetUserID(t *testing.T) {
	txn := &Transaction{UserID: 7}
	if got := txn.GetUserID(); got != 7 {
		t.Errorf("GetUserID() = %d, want 7", got)
	}
}

func TestProduct_Pricing(t *testing.T) {
	tests := []struct {
		name      string
		price     string
		discount  string
		qty       int
		wantUnit  string
		wantTotal string
	}{
		{"10% off 50000 x3", "50000", "0.10", 3, "45000", "135000"},
		{"no discount", "12500", "0", 2, "12500", "25000"},
		{"full discount", "9000", "1", 4, "0", "0"},
		{"fractional result", "3333", "0.15", 1, "2833.05", "2833.05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{
				Price:    decimal.RequireFromString(tt.price),
				Discount: decimal.RequireFromString(tt.discount),
			}
			if got := p.DiscountedPrice(); !got.Equal(decimal.RequireFromString(tt.wantUnit)) {
				t.Errorf("DiscountedPrice() = %s, want %s", got, tt.wantUnit)
			}
			if got := p.LineTotal(tt.qty); !got.Equal(decimal.RequireFromString(tt.wantTotal)) {
				t.Errorf("LineTotal(%d) = %s, want %s", tt.qty, got, tt.wantTotal)
			}
		})
	}
}

func TestProduct_DiscountPercent(t *testing.T) {
	p := &Product{Discount: decimal.RequireFromString("0.125")}
	if got := p.DiscountPercent(); !got.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("DiscountPercent() = %s, want 12.5", got)
	}
}

func TestRoleID_Valid(t *testing.T) {
	for _, r := range []RoleID{RoleAdmin, RoleManager, RoleCashier} {
		if !r.Valid() {
			t.Errorf("%d should be valid", r)
		}
	}
	if RoleID(0).Valid() || RoleID(4).Valid() {
		t.Error("0 and 4 are not roles")
	}
}

func TestUser_RoleName(t *testing.T) {
	u := &User{}
	if u.RoleName() != "" {
		t.Error("unassigned user should have empty role name")
	}
	u.Role = &UserRole{RoleID: RoleCashier, Role: &Role{ID: RoleCashier, Name: "Kasir"}}
	if u.RoleName() != "Kasir" {
		t.Errorf("RoleName() = %q", u.RoleName())
	}
}
