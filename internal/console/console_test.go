package console

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diewo77/seedmart/internal/config"
	"github.com/diewo77/seedmart/internal/db"
	"github.com/diewo77/seedmart/internal/gate"
	"github.com/diewo77/seedmart/internal/i18n"
	"github.com/diewo77/seedmart/internal/models"
	"github.com/diewo77/seedmart/internal/policy"
	"github.com/diewo77/seedmart/internal/services"
	"github.com/diewo77/seedmart/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	db      *gorm.DB
	svc     Services
	manager uint
	cashID  uint
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	dbCfg := config.DatabaseConfig{
		Driver:         config.DriverSQLite,
		SQLitePath:     "file:" + t.Name() + "?mode=memory&cache=shared",
		ConnectRetries: 1,
	}
	conn, err := db.Open(dbCfg)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn, dbCfg, false))
	require.NoError(t, db.Seed(conn, config.SeedConfig{AdminUsername: "admin", AdminPassword: "admin123"}, bcrypt.MinCost))

	ag := policy.NewAuthGate(conn, time.Minute)
	env := &testEnv{
		db: conn,
		svc: Services{
			Gate:     ag,
			Auth:     services.NewAuthenticator(conn),
			Users:    services.NewUserService(conn, ag, bcrypt.MinCost),
			Catalog:  services.NewCatalogService(conn, ag),
			Recorder: services.NewRecorder(conn, ag, "SeedMart", time.UTC),
			Reports:  services.NewReportService(conn, ag),
		},
	}
	env.manager = env.addUser(t, "pengelola", models.RoleManager)
	env.addUser(t, "kasir", models.RoleCashier)

	var cash models.PaymentMethod
	require.NoError(t, conn.First(&cash, "nama_metode = ?", "Tunai").Error)
	env.cashID = cash.ID
	return env
}

func (e *testEnv) addUser(t *testing.T, username string, role models.RoleID) uint {
	t.Helper()
	hash, err := services.HashPassword("rahasia", bcrypt.MinCost)
	require.NoError(t, err)
	u := models.User{Username: username, Password: hash, AddressID: models.DefaultAddressID}
	require.NoError(t, e.db.Create(&u).Error)
	require.NoError(t, e.db.Create(&models.UserRole{UserID: u.ID, RoleID: role}).Error)
	return u.ID
}

func (e *testEnv) addProduct(t *testing.T, name string, stock int, price, discount string) models.Product {
	t.Helper()
	var cat models.Category
	require.NoError(t, e.db.Order("id_kategori").First(&cat).Error)
	p := models.Product{
		Name:       name,
		Stock:      stock,
		Price:      decimal.RequireFromString(price),
		Discount:   decimal.RequireFromString(discount),
		CategoryID: cat.ID,
		UserID:     e.manager,
	}
	require.NoError(t, e.db.Create(&p).Error)
	return p
}

// run feeds the lines to a fresh console and returns everything it printed.
func (e *testEnv) run(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	c := New(e.svc, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, "en", time.UTC)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func itoa(n uint) string { return strconv.FormatUint(uint64(n), 10) }

func TestRun_CashierSale(t *testing.T) {
	e := setup(t)
	p := e.addProduct(t, "Gula", 10, "50000", "0.10")

	out := e.run(t,
		"kasir", "rahasia",
		"2",
		"0",
		itoa(p.ID), "11",
		itoa(p.ID), "3",
		"0",
		"99",
		itoa(e.cashID),
		"y",
		"0", "n",
	)

	require.Contains(t, out, "Welcome, kasir (Kasir)")
	require.Contains(t, out, "The cart is empty.")
	require.Contains(t, out, "Insufficient stock.")
	require.Contains(t, out, "Remaining stock of Gula: 7")
	require.Contains(t, out, "Payment method: Invalid choice.")
	require.Contains(t, out, "Rp 135,000")
	require.Contains(t, out, "Thank you for shopping with us!")
	require.Contains(t, out, "Goodbye.")

	var got models.Product
	require.NoError(t, e.db.First(&got, "id_produk = ?", p.ID).Error)
	require.Equal(t, 7, got.Stock)
}

func TestRun_CashierCancelsSale(t *testing.T) {
	e := setup(t)
	p := e.addProduct(t, "Teh", 5, "3000", "0")

	out := e.run(t,
		"kasir", "rahasia",
		"2", itoa(p.ID), "2", "0", itoa(e.cashID), "n",
		"3",
		"0", "n",
	)

	require.Contains(t, out, "Sale cancelled.")
	require.Contains(t, out, "No data.")
	var n int64
	require.NoError(t, e.db.Model(&models.Transaction{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestRun_LoginFailure(t *testing.T) {
	e := setup(t)

	out := e.run(t, "kasir", "salah", "n")

	require.Contains(t, out, "Invalid username or password.")
	require.Contains(t, out, "Goodbye.")
	require.NotContains(t, out, "Welcome")
}

func TestRun_EndOfInput(t *testing.T) {
	e := setup(t)
	var out bytes.Buffer
	c := New(e.svc, strings.NewReader("kasir"), &out, "en", time.UTC)
	require.NoError(t, c.Run(context.Background()))
}

func TestRun_ManagerAddsProduct(t *testing.T) {
	e := setup(t)
	var cat models.Category
	require.NoError(t, e.db.Order("id_kategori").First(&cat).Error)

	out := e.run(t,
		"pengelola", "rahasia",
		"2",
		"Kopi",
		"20",
		"-1", "15000",
		"12,5",
		itoa(cat.ID),
		"1",
		"0", "n",
	)

	require.Contains(t, out, "Out of the allowed range.")
	require.Contains(t, out, "Product Kopi added")

	var p models.Product
	require.NoError(t, e.db.First(&p, "nama_produk = ?", "Kopi").Error)
	require.Equal(t, e.manager, p.UserID)
	require.Equal(t, 20, p.Stock)
	require.True(t, p.Price.Equal(decimal.NewFromInt(15000)))
	require.True(t, p.Discount.Equal(decimal.RequireFromString("0.125")))
}

func TestRun_ManagerNonFiniteDiscountIsReprompted(t *testing.T) {
	e := setup(t)
	var cat models.Category
	require.NoError(t, e.db.Order("id_kategori").First(&cat).Error)

	out := e.run(t,
		"pengelola", "rahasia",
		"2",
		"Kopi",
		"20",
		"15000",
		"NaN", "Inf", "10",
		itoa(cat.ID),
		"0", "n",
	)

	require.Equal(t, 2, strings.Count(out, "Out of the allowed range."))
	require.Contains(t, out, "Product Kopi added")

	var p models.Product
	require.NoError(t, e.db.First(&p, "nama_produk = ?", "Kopi").Error)
	require.True(t, p.Discount.Equal(decimal.RequireFromString("0.1")))
}

func TestRun_AdminAddUserRepromptsEmail(t *testing.T) {
	e := setup(t)

	out := e.run(t,
		"admin", "admin123",
		"1",
		"2",
		"budi", "rahasia",
		"not-an-email", "budi@seedmart.id",
		"3",
		"0",
		"0", "n",
	)

	require.Contains(t, out, "Email: Invalid email address.")
	require.Contains(t, out, "User budi created")

	var u models.User
	require.NoError(t, e.db.First(&u, "username = ?", "budi").Error)
	require.Equal(t, "budi@seedmart.id", u.Email)
}

func TestMenu_OffersOnlyGrantedItems(t *testing.T) {
	e := setup(t)
	var kasir models.User
	require.NoError(t, e.db.First(&kasir, "username = ?", "kasir").Error)
	ctx := session.WithSession(context.Background(),
		session.New(kasir.ID, kasir.Username, models.RoleCashier, "Kasir"))

	var out bytes.Buffer
	c := New(e.svc, strings.NewReader("2\n0\n"), &out, "en", time.UTC)
	ran := false
	err := c.menu(ctx, "cashier_menu", "logout", []menuItem{
		{"menu_catalog", policy.ResourceCatalog, gate.ActionList, func(context.Context) error { return nil }},
		{"users_add", policy.ResourceUser, gate.ActionCreate, func(context.Context) error { ran = true; return nil }},
	})
	require.NoError(t, err)

	require.Contains(t, out.String(), "1. Catalog")
	require.NotContains(t, out.String(), "Add user")
	require.Contains(t, out.String(), "Out of the allowed range.")
	require.False(t, ran)
}

func TestRun_CatalogHidesSoldOut(t *testing.T) {
	e := setup(t)
	e.addProduct(t, "Sabun", 0, "4000", "0")

	out := e.run(t, "kasir", "rahasia", "1", "0", "n")

	// products without stock are not listed in the catalog
	require.NotContains(t, out, "Sabun")
}

func TestRun_AdminReports(t *testing.T) {
	e := setup(t)

	out := e.run(t,
		"admin", "admin123",
		"4",
		"1", "yesterday", "2026-03-02",
		"0",
		"0", "n",
	)

	require.Contains(t, out, "Invalid period.")
	require.Contains(t, out, "Sales Summary")
	require.Contains(t, out, "2026-03-02")
}

func TestKnownErrorsAreTranslated(t *testing.T) {
	for _, err := range knownErrors {
		require.True(t, i18n.Has("id", err.Error()), err.Error())
		require.True(t, i18n.Has("en", err.Error()), err.Error())
	}
}
