package services

import (
	"context"
	"testing"
	"time"

	"github.com/diewo77/seedmart/internal/config"
	"github.com/diewo77/seedmart/internal/db"
	"github.com/diewo77/seedmart/internal/models"
	"github.com/diewo77/seedmart/internal/policy"
	"github.com/diewo77/seedmart/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	gate       *policy.AuthGate
	admin      *session.Session
	manager    *session.Session
	manager2   *session.Session
	cashier    *session.Session
	cashier2   *session.Session
	categoryID uint
	cashID     uint
}

func setupFixture(t *testing.T) *fixture {
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

	f := &fixture{db: conn, gate: policy.NewAuthGate(conn, time.Minute)}
	var admin models.User
	require.NoError(t, conn.First(&admin, "username = ?", "admin").Error)
	f.admin = session.New(admin.ID, admin.Username, models.RoleAdmin, "Admin")
	f.manager = f.addUser(t, "pengelola", "rahasia", models.RoleManager)
	f.manager2 = f.addUser(t, "pengelola2", "rahasia", models.RoleManager)
	f.cashier = f.addUser(t, "kasir", "rahasia", models.RoleCashier)
	f.cashier2 = f.addUser(t, "kasir2", "rahasia", models.RoleCashier)

	var cat models.Category
	require.NoError(t, conn.Order("id_kategori").First(&cat).Error)
	f.categoryID = cat.ID
	var cash models.PaymentMethod
	require.NoError(t, conn.First(&cash, "nama_metode = ?", "Tunai").Error)
	f.cashID = cash.ID
	return f
}

func (f *fixture) addUser(t *testing.T, username, password string, role models.RoleID) *session.Session {
	t.Helper()
	hash, err := HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	u := models.User{Username: username, Password: hash, AddressID: models.DefaultAddressID}
	require.NoError(t, f.db.Create(&u).Error)
	require.NoError(t, f.db.Create(&models.UserRole{UserID: u.ID, RoleID: role}).Error)
	return session.New(u.ID, u.Username, role, "")
}

// addProduct inserts a product directly, bypassing the catalog service.
func (f *fixture) addProduct(t *testing.T, owner *session.Session, name string, stock int, price, discount string) models.Product {
	t.Helper()
	p := models.Product{
		Name:       name,
		Stock:      stock,
		Price:      decimal.RequireFromString(price),
		Discount:   decimal.RequireFromString(discount),
		CategoryID: f.categoryID,
		UserID:     owner.UserID,
	}
	require.NoError(t, f.db.Create(&p).Error)
	return p
}

func (f *fixture) stock(t *testing.T, productID uint) int {
	t.Helper()
	var p models.Product
	require.NoError(t, f.db.First(&p, "id_produk = ?", productID).Error)
	return p.Stock
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func as(s *session.Session) context.Context {
	return session.WithSession(context.Background(), s)
}
