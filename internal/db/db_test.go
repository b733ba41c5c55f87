package db

import (
	"testing"

	"github.com/diewo77/seedmart/internal/config"
	"github.com/diewo77/seedmart/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver:         config.DriverSQLite,
		SQLitePath:     "file:" + t.Name() + "?mode=memory&cache=shared",
		ConnectRetries: 1,
	}
	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := Migrate(conn, cfg, false); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return conn
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open(config.DatabaseConfig{Driver: "mysql"}); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}

func TestMigrate_SQLiteFallsBackToAutoMigrate(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: "file:" + t.Name() + "?mode=memory&cache=shared",
	}
	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := Migrate(conn, cfg, true); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for _, table := range requiredTables {
		if !conn.Migrator().HasTable(table) {
			t.Errorf("table %s missing", table)
		}
	}
}

func TestSeedIdempotent(t *testing.T) {
	conn := openTestDB(t)
	seedCfg := config.SeedConfig{AdminUsername: "admin", AdminPassword: "rahasia", AdminEmail: "admin@seedmart.local"}

	for i := 0; i < 2; i++ {
		if err := Seed(conn, seedCfg, bcrypt.MinCost); err != nil {
			t.Fatalf("Seed run %d: %v", i+1, err)
		}
	}

	counts := map[any]int64{
		&models.Role{}:          3,
		&models.Address{}:       1,
		&models.Category{}:      int64(len(baseCategories)),
		&models.PaymentMethod{}: int64(len(basePaymentMethods)),
		&models.User{}:          1,
		&models.UserRole{}:      1,
	}
	for model, want := range counts {
		var got int64
		conn.Model(model).Count(&got)
		if got != want {
			t.Errorf("%T count = %d, want %d", model, got, want)
		}
	}

	var cashier models.Role
	if err := conn.First(&cashier, "id_role = ?", models.RoleCashier).Error; err != nil || cashier.Name != "Kasir" {
		t.Errorf("role 3 = %+v, %v", cashier, err)
	}
}

func TestSeed_BootstrapAdminIsHashed(t *testing.T) {
	conn := openTestDB(t)
	if err := Seed(conn, config.SeedConfig{AdminUsername: "boss", AdminPassword: "s3cret"}, bcrypt.MinCost); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var admin models.User
	if err := conn.Preload("Role").First(&admin, "username = ?", "boss").Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if admin.Password == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("s3cret")); err != nil {
		t.Errorf("hash does not match: %v", err)
	}
	if admin.Role == nil || admin.Role.RoleID != models.RoleAdmin {
		t.Errorf("admin role = %+v", admin.Role)
	}
}

func TestSeed_OutOfRangeBcryptCost(t *testing.T) {
	conn := openTestDB(t)
	if err := Seed(conn, config.SeedConfig{AdminUsername: "boss", AdminPassword: "s3cret"}, 99); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	var admin models.User
	if err := conn.First(&admin, "username = ?", "boss").Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if cost, err := bcrypt.Cost([]byte(admin.Password)); err != nil || cost != bcrypt.DefaultCost {
		t.Errorf("hash cost = %d, %v; want %d", cost, err, bcrypt.DefaultCost)
	}
}

func TestProductCheckConstraints(t *testing.T) {
	conn := openTestDB(t)
	if err := Seed(conn, config.SeedConfig{AdminUsername: "admin", AdminPassword: "rahasia"}, bcrypt.MinCost); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	var cat models.Category
	var admin models.User
	if err := conn.First(&cat).Error; err != nil {
		t.Fatalf("load category: %v", err)
	}
	if err := conn.First(&admin).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}

	tests := []struct {
		name            string
		price, discount string
		wantErr         bool
	}{
		{"valid", "1000", "0.5", false},
		{"negative price", "-1", "0", true},
		{"negative discount", "1000", "-0.1", true},
		{"discount above one", "1000", "1.5", true},
	}
	for _, tt := range tests {
		p := models.Product{
			Name:       tt.name,
			Price:      decimal.RequireFromString(tt.price),
			Discount:   decimal.RequireFromString(tt.discount),
			CategoryID: cat.ID,
			UserID:     admin.ID,
		}
		err := conn.Create(&p).Error
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestSeed_RequiresAdminCredentialsOnEmptyDB(t *testing.T) {
	conn := openTestDB(t)
	if err := Seed(conn, config.SeedConfig{}, bcrypt.MinCost); err == nil {
		t.Fatal("expected an error without bootstrap credentials")
	}
	var roles int64
	conn.Model(&models.Role{}).Count(&roles)
	if roles != 0 {
		t.Errorf("seed should roll back, found %d roles", roles)
	}
}

func TestMaskDSN(t *testing.T) {
	tests := []struct{ in, want string }{
		{"host=db user=pos password=secret dbname=SeedMart", "host=db user=pos password=*** dbname=SeedMart"},
		{"postgres://pos:secret@db:5432/SeedMart?sslmode=disable", "postgres://pos:***@db:5432/SeedMart?sslmode=disable"},
		{"seedmart.db", "seedmart.db"},
	}
	for _, tt := range tests {
		if got := MaskDSN(tt.in); got != tt.want {
			t.Errorf("MaskDSN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
