package gate_test

import (
	"testing"

	"github.com/diewo77/seedmart/internal/gate"
)

func TestParseGrant(t *testing.T) {
	g, err := gate.ParseGrant("catalog:list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Resource != "catalog" || g.Action != gate.ActionList {
		t.Errorf("got %+v", g)
	}
	if g.String() != "catalog:list" {
		t.Errorf("String() = %q", g.String())
	}

	for _, bad := range []string{"", "garbage", ":list", "product:", "a:b:c"} {
		if _, err := gate.ParseGrant(bad); err == nil {
			t.Errorf("ParseGrant(%q) should fail", bad)
		}
	}
}

func TestGrant_Allows(t *testing.T) {
	tests := []struct {
		grant    string
		resource string
		action   gate.Action
		want     bool
	}{
		{"product:update", "product", gate.ActionUpdate, true},
		{"product:update", "product", gate.ActionDelete, false},
		{"product:update", "catalog", gate.ActionUpdate, false},
		{"product:*", "product", gate.ActionCreate, true},
		{"product:*", "transaction", gate.ActionCreate, false},
		{"*:*", "report", gate.ActionView, true},
		{"*:list", "ledger", gate.ActionList, true},
		{"*:list", "ledger", gate.ActionView, false},
	}
	for _, tt := range tests {
		g, err := gate.ParseGrant(tt.grant)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.grant, err)
		}
		if got := g.Allows(tt.resource, tt.action); got != tt.want {
			t.Errorf("%s allows %s:%s = %v, want %v", tt.grant, tt.resource, tt.action, got, tt.want)
		}
	}
}
