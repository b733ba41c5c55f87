package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diewo77/seedmart/internal/gate"
	"github.com/diewo77/seedmart/internal/models"
	"github.com/diewo77/seedmart/internal/policy"
	"github.com/diewo77/seedmart/internal/session"
	"github.com/diewo77/seedmart/internal/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductInput is a new product as entered by a manager. Price is in whole
// currency units and DiscountPercent in [0,100].
type ProductInput struct {
	Name            string
	Stock           int
	Price           int64
	DiscountPercent float64
	CategoryID      uint
}

// ProductPatch changes a product; nil fields keep their current value.
type ProductPatch struct {
	Name            *string
	Stock           *int
	Price           *int64
	DiscountPercent *float64
	CategoryID      *uint
}

// CatalogService serves the product views of each role and the manager's
// product maintenance.
type CatalogService struct {
	db   *gorm.DB
	gate *policy.AuthGate
}

func NewCatalogService(db *gorm.DB, ag *policy.AuthGate) *CatalogService {
	return &CatalogService{db: db, gate: ag}
}

// ListAll returns every product with category and owner (administrator).
func (s *CatalogService) ListAll(ctx context.Context) ([]models.Product, error) {
	if err := s.gate.Authorize(ctx, gate.ActionList, policy.ResourceInventory, nil); err != nil {
		return nil, err
	}
	var products []models.Product
	err := s.db.WithContext(ctx).Preload("Category").Preload("Owner").Order("id_produk").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListOwned returns the products of the session user.
func (s *CatalogService) ListOwned(ctx context.Context) ([]models.Product, error) {
	if err := s.gate.Authorize(ctx, gate.ActionList, policy.ResourceProduct, nil); err != nil {
		return nil, err
	}
	userID, _ := session.UserIDFromContext(ctx)
	var products []models.Product
	err := s.db.WithContext(ctx).Preload("Category").Where("id_user = ?", userID).Order("id_produk").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list own products: %w", err)
	}
	return products, nil
}

// ListAvailable returns products with stock left, as sold by cashiers.
func (s *CatalogService) ListAvailable(ctx context.Context) ([]models.Product, error) {
	if err := s.gate.Authorize(ctx, gate.ActionList, policy.ResourceCatalog, nil); err != nil {
		return nil, err
	}
	var products []models.Product
	err := s.db.WithContext(ctx).Preload("Category").Where("stok > 0").Order("id_produk").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list available products: %w", err)
	}
	return products, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	if err := s.gate.Authorize(ctx, gate.ActionList, policy.ResourceCategory, nil); err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id_kategori").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Get returns a product owned by the session user. Products of other users
// are reported as ErrProductNotFound.
func (s *CatalogService) Get(ctx context.Context, id uint) (*models.Product, error) {
	return s.loadOwned(ctx, s.db.WithContext(ctx), id, gate.ActionView)
}

func (s *CatalogService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := s.gate.Authorize(ctx, gate.ActionCreate, policy.ResourceProduct, nil); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.NonNegativeInt("stock", in.Stock, v)
	if in.Price < 0 {
		v["price"] = "must_not_be_negative"
	}
	validation.RangeFloat("discount", in.DiscountPercent, 0, 100, v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	userID, _ := session.UserIDFromContext(ctx)
	product := models.Product{
		Name:       in.Name,
		Stock:      in.Stock,
		Price:      decimal.NewFromInt(in.Price),
		CategoryID: in.CategoryID,
		UserID:     userID,
		Discount:   discountFraction(in.DiscountPercent),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCategory(tx, in.CategoryID); err != nil {
			return err
		}
		return tx.Create(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update applies the non-nil fields of patch to an owned product.
func (s *CatalogService) Update(ctx context.Context, id uint, patch ProductPatch) (*models.Product, error) {
	v := validation.Violations{}
	updates := map[string]any{}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		validation.Required("name", name, v)
		updates["nama_produk"] = name
	}
	if patch.Stock != nil {
		validation.NonNegativeInt("stock", *patch.Stock, v)
		updates["stok"] = *patch.Stock
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			v["price"] = "must_not_be_negative"
		}
		updates["harga"] = decimal.NewFromInt(*patch.Price)
	}
	if patch.DiscountPercent != nil {
		validation.RangeFloat("discount", *patch.DiscountPercent, 0, 100, v)
		if _, bad := v["discount"]; !bad {
			updates["diskon"] = discountFraction(*patch.DiscountPercent)
		}
	}
	if patch.CategoryID != nil {
		updates["id_kategori"] = *patch.CategoryID
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	var product *models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.loadOwned(ctx, tx, id, gate.ActionUpdate)
		if err != nil {
			return err
		}
		if patch.CategoryID != nil {
			if err := ensureCategory(tx, *patch.CategoryID); err != nil {
				return err
			}
		}
		if len(updates) > 0 {
			res := tx.Model(&models.Product{}).Where("id_produk = ? AND id_user = ?", id, p.UserID).Updates(updates)
			if res.Error != nil {
				return fmt.Errorf("update product: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return ErrProductNotFound
			}
		}
		product = &models.Product{}
		return tx.Preload("Category").First(product, "id_produk = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes an owned product that has no sales history.
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := s.loadOwned(ctx, tx, id, gate.ActionDelete)
		if err != nil {
			return err
		}

		var sold int64
		if err := tx.Model(&models.TransactionDetail{}).Where("id_produk = ?", id).Count(&sold).Error; err != nil {
			return err
		}
		if sold > 0 {
			return ErrProductInUse
		}

		res := tx.Where("id_produk = ? AND id_user = ?", id, p.UserID).Delete(&models.Product{})
		if res.Error != nil {
			return fmt.Errorf("delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}

// loadOwned checks the role permission, then ownership of the loaded row.
// A missing row and a row owned by someone else look the same to the caller.
func (s *CatalogService) loadOwned(ctx context.Context, tx *gorm.DB, id uint, action gate.Action) (*models.Product, error) {
	if err := s.gate.Authorize(ctx, action, policy.ResourceProduct, nil); err != nil {
		return nil, err
	}
	var p models.Product
	if err := tx.Preload("Category").First(&p, "id_produk = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if err := s.gate.Authorize(ctx, action, policy.ResourceProduct, &p); err != nil {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func ensureCategory(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Category{}).Where("id_kategori = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// discountFraction converts a percentage to the stored fraction, keeping the
// four decimals the column holds.
func discountFraction(percent float64) decimal.Decimal {
	return decimal.NewFromFloat(percent).Shift(-2).Round(4)
}
