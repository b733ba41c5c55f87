package db

import (
	"errors"
	"fmt"
	"log"

	"github.com/diewo77/seedmart/internal/config"
	"github.com/diewo77/seedmart/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var baseRoles = []models.Role{
	{ID: models.RoleAdmin, Name: "Admin"},
	{ID: models.RoleManager, Name: "Pengelola Toko"},
	{ID: models.RoleCashier, Name: "Kasir"},
}

var baseCategories = []string{"Makanan", "Minuman", "Kebutuhan Rumah Tangga", "Perawatan Diri", "Alat Tulis"}

var basePaymentMethods = []string{"Tunai", "QRIS", "Kartu Debit", "Transfer Bank"}

// Seed inserts the reference rows and, on an empty users table, the bootstrap
// administrator. It is idempotent.
func Seed(conn *gorm.DB, seedCfg config.SeedConfig, bcryptCost int) error {
	return conn.Transaction(func(tx *gorm.DB) error {
		for _, r := range baseRoles {
			role := r
			if err := tx.Where("id_role = ?", role.ID).FirstOrCreate(&role).Error; err != nil {
				return fmt.Errorf("seed role %s: %w", r.Name, err)
			}
		}

		addr := models.Address{ID: models.DefaultAddressID, Address: "-"}
		if err := tx.Where("id_alamat = ?", addr.ID).FirstOrCreate(&addr).Error; err != nil {
			return fmt.Errorf("seed default address: %w", err)
		}

		for _, name := range baseCategories {
			c := models.Category{Name: name}
			if err := tx.Where("nama_kategori = ?", name).FirstOrCreate(&c).Error; err != nil {
				return fmt.Errorf("seed category %s: %w", name, err)
			}
		}

		for _, name := range basePaymentMethods {
			pm := models.PaymentMethod{Name: name}
			if err := tx.Where("nama_metode = ?", name).FirstOrCreate(&pm).Error; err != nil {
				return fmt.Errorf("seed payment method %s: %w", name, err)
			}
		}

		return seedAdmin(tx, seedCfg, bcryptCost)
	})
}

func seedAdmin(tx *gorm.DB, seedCfg config.SeedConfig, bcryptCost int) error {
	var count int64
	if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if seedCfg.AdminUsername == "" || seedCfg.AdminPassword == "" {
		return errors.New("no users exist and SEED_ADMIN_USERNAME/SEED_ADMIN_PASSWORD are empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedCfg.AdminPassword), config.ClampBcryptCost(bcryptCost))
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := models.User{
		Username:  seedCfg.AdminUsername,
		Password:  string(hash),
		Email:     seedCfg.AdminEmail,
		AddressID: models.DefaultAddressID,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	if err := tx.Create(&models.UserRole{UserID: admin.ID, RoleID: models.RoleAdmin}).Error; err != nil {
		return fmt.Errorf("assign admin role: %w", err)
	}
	log.Printf("[DB] bootstrap administrator %q created", admin.Username)
	return nil
}
