package models

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// Category groups products.
type Category struct {
	ID   uint   `gorm:"column:id_kategori;primaryKey" json:"id"`
	Name string `gorm:"column:nama_kategori;size:100;not null" json:"name"`
}

func (Category) TableName() string { return "kategori" }

// Product is a sellable item owned by the manager who created it.
// Discount is a fraction in [0,1].
type Product struct {
	ID         uint            `gorm:"column:id_produk;primaryKey" json:"id"`
	Name       string          `gorm:"column:nama_produk;size:255;not null" json:"name"`
	Stock      int             `gorm:"column:stok;not null;default:0;check:chk_produk_stok,stok >= 0" json:"stock"`
	Price      decimal.Decimal `gorm:"column:harga;type:numeric(14,2);not null;check:chk_produk_harga,harga >= 0" json:"price"`
	CategoryID uint            `gorm:"column:id_kategori;index;not null" json:"category_id"`
	Category   *Category       `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	UserID     uint            `gorm:"column:id_user;index;not null" json:"user_id"`
	Owner      *User           `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Discount   decimal.Decimal `gorm:"column:diskon;type:numeric(5,4);not null;default:0;check:chk_produk_diskon,diskon >= 0 AND diskon <= 1" json:"discount"`
}

func (Product) TableName() string { return "produk" }

// GetUserID returns the owning manager for ownership checks.
func (p *Product) GetUserID() uint {
	return p.UserID
}

// DiscountedPrice is the unit price after discount.
func (p *Product) DiscountedPrice() decimal.Decimal {
	return p.Price.Mul(one.Sub(p.Discount))
}

// LineTotal is qty units at the discounted price.
func (p *Product) LineTotal(qty int) decimal.Decimal {
	return p.DiscountedPrice().Mul(decimal.NewFromInt(int64(qty)))
}

// DiscountPercent returns the discount as shown to operators (0-100).
func (p *Product) DiscountPercent() decimal.Decimal {
	return p.Discount.Shift(2)
}

// CategoryName returns the loaded category name, or "" when not preloaded.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// OwnerName returns the loaded owner username, or "" when not preloaded.
func (p *Product) OwnerName() string {
	if p.Owner == nil {
		return ""
	}
	return p.Owner.Username
}

// PaymentMethod is a row of the payment method reference table.
type PaymentMethod struct {
	ID   uint   `gorm:"column:id_metode;primaryKey" json:"id"`
	Name string `gorm:"column:nama_metode;size:100;not null" json:"name"`
}

func (PaymentMethod) TableName() string { return "metode_pembayaran" }
