package db

import (
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/diewo77/seedmart/internal/config"
	"github.com/diewo77/seedmart/internal/models"
	migrate "github.com/golang-migrate/migrate/v4"
	// Registers the postgres database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// requiredTables must exist once the schema has been applied.
var requiredTables = []string{
	"alamat", "roles", "users", "user_role", "kategori", "produk",
	"metode_pembayaran", "detail_transaksi", "transaksi",
}

// AllModels lists every persisted model in dependency order.
func AllModels() []any {
	return []any{
		&models.Address{},
		&models.Role{},
		&models.User{},
		&models.UserRole{},
		&models.Category{},
		&models.Product{},
		&models.PaymentMethod{},
		&models.TransactionDetail{},
		&models.Transaction{},
	}
}

// Migrate applies the schema. With useSQL set and a postgres database the
// embedded SQL migrations run through golang-migrate; otherwise gorm
// AutoMigrate is used.
func Migrate(conn *gorm.DB, dbCfg config.DatabaseConfig, useSQL bool) error {
	if useSQL && dbCfg.Driver == config.DriverPostgres {
		if err := runSQLMigrations(dbCfg.URL()); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		if useSQL {
			log.Printf("[DB] SQL migrations target postgres; using AutoMigrate for %s", dbCfg.Driver)
		}
		for _, m := range AllModels() {
			if err := conn.AutoMigrate(m); err != nil {
				return fmt.Errorf("automigrate %T: %w", m, err)
			}
		}
	}

	for _, table := range requiredTables {
		if !conn.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

func runSQLMigrations(databaseURL string) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	version, dirty, _ := m.Version()
	log.Printf("[DB] schema at version %d (dirty=%v)", version, dirty)
	return nil
}
