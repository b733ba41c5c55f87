package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is stored as free text; only these two values are
// produced or counted by the application.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "Selesai"
	StatusFailed    TransactionStatus = "Gagal"
)

// TransactionDetail records what was sold and when. Each detail belongs to
// exactly one Transaction.
type TransactionDetail struct {
	ID        uint      `gorm:"column:id_detail_transaksi;primaryKey" json:"id"`
	Date      time.Time `gorm:"column:tanggal;not null;index" json:"date"`
	ProductID uint      `gorm:"column:id_produk;index;not null" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Quantity  int       `gorm:"column:jumlah_produk;not null;check:chk_detail_jumlah,jumlah_produk > 0" json:"quantity"`
}

func (TransactionDetail) TableName() string { return "detail_transaksi" }

// Transaction is one sold cart line: who sold it, how it was paid, its status
// and its total.
type Transaction struct {
	ID              uint               `gorm:"column:id_transaksi;primaryKey" json:"id"`
	UserID          uint               `gorm:"column:id_user;index;not null" json:"user_id"`
	Cashier         *User              `gorm:"foreignKey:UserID;references:ID" json:"-"`
	DetailID        uint               `gorm:"column:id_detail_transaksi;uniqueIndex;not null" json:"detail_id"`
	Detail          *TransactionDetail `gorm:"foreignKey:DetailID;references:ID" json:"detail,omitempty"`
	PaymentMethodID uint               `gorm:"column:id_metode;index;not null" json:"payment_method_id"`
	PaymentMethod   *PaymentMethod     `gorm:"foreignKey:PaymentMethodID;references:ID" json:"payment_method,omitempty"`
	Status          TransactionStatus  `gorm:"column:status;size:20;not null" json:"status"`
	Total           decimal.Decimal    `gorm:"column:total_harga;type:numeric(18,6);not null" json:"total"`
}

func (Transaction) TableName() string { return "transaksi" }

// GetUserID returns the cashier who recorded the transaction.
func (t *Transaction) GetUserID() uint {
	return t.UserID
}
