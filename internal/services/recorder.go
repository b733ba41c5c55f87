package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/diewo77/seedmart/internal/gate"
	"github.com/diewo77/seedmart/internal/models"
	"github.com/diewo77/seedmart/internal/policy"
	"github.com/diewo77/seedmart/internal/session"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecentLimit is the size of the administrator's transaction journal.
const RecentLimit = 50

// Receipt is the outcome of a committed cart, or a reprint of one line.
type Receipt struct {
	StoreName     string
	Cashier       string
	SessionID     string
	IssuedAt      time.Time
	PaymentMethod string
	Lines         []ReceiptLine
	Total         decimal.Decimal
}

type ReceiptLine struct {
	TransactionID uint
	ProductName   string
	Quantity      int
	UnitPrice     decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
}

// TransactionRow is one sale as listed in journals. Name columns are nil when
// the referenced row no longer exists.
type TransactionRow struct {
	ID            uint
	Date          time.Time
	Status        string
	CashierID     uint
	Cashier       *string
	Product       *string
	Quantity      int
	Total         decimal.Decimal
	PaymentMethod *string
}

// Recorder commits carts and lists recorded sales.
type Recorder struct {
	db        *gorm.DB
	gate      *policy.AuthGate
	StoreName string
	Location  *time.Location
	Now       func() time.Time
}

func NewRecorder(db *gorm.DB, ag *policy.AuthGate, storeName string, loc *time.Location) *Recorder {
	if loc == nil {
		loc = time.UTC
	}
	return &Recorder{db: db, gate: ag, StoreName: storeName, Location: loc, Now: time.Now}
}

func (r *Recorder) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	if err := r.gate.Authorize(ctx, gate.ActionList, policy.ResourcePaymentMethod, nil); err != nil {
		return nil, err
	}
	var methods []models.PaymentMethod
	if err := r.db.WithContext(ctx).Order("id_metode").Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	return methods, nil
}

// Record commits every cart line in one database transaction: a detail row,
// a transaction row with status Selesai, then a stock decrement guarded by
// the current stock. Any failure rolls back the whole cart.
func (r *Recorder) Record(ctx context.Context, cart *Cart, paymentMethodID uint) (*Receipt, error) {
	if err := r.gate.Authorize(ctx, gate.ActionCreate, policy.ResourceTransaction, nil); err != nil {
		return nil, err
	}
	sess, _ := session.FromContext(ctx)
	if cart == nil || cart.Empty() {
		return nil, ErrEmptyCart
	}

	var method models.PaymentMethod
	if err := r.db.WithContext(ctx).First(&method, "id_metode = ?", paymentMethodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentMethodNotFound
		}
		return nil, fmt.Errorf("load payment method: %w", err)
	}

	now := r.Now().UTC()
	receipt := &Receipt{
		StoreName:     r.StoreName,
		Cashier:       sess.Username,
		SessionID:     sess.ID.String(),
		IssuedAt:      now.In(r.Location),
		PaymentMethod: method.Name,
		Total:         cart.Total(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, line := range cart.Lines() {
			detail := models.TransactionDetail{
				Date:      now,
				ProductID: line.Product.ID,
				Quantity:  line.Quantity,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return fmt.Errorf("insert detail: %w", err)
			}

			txn := models.Transaction{
				UserID:          sess.UserID,
				DetailID:        detail.ID,
				PaymentMethodID: method.ID,
				Status:          models.StatusCompleted,
				Total:           line.Total,
			}
			if err := tx.Create(&txn).Error; err != nil {
				return fmt.Errorf("insert transaction: %w", err)
			}

			res := tx.Model(&models.Product{}).
				Where("id_produk = ? AND stok >= ?", line.Product.ID, line.Quantity).
				Update("stok", gorm.Expr("stok - ?", line.Quantity))
			if res.Error != nil {
				return fmt.Errorf("decrement stock: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, line.Product.Name)
			}

			receipt.Lines = append(receipt.Lines, ReceiptLine{
				TransactionID: txn.ID,
				ProductName:   line.Product.Name,
				Quantity:      line.Quantity,
				UnitPrice:     line.UnitPrice,
				Discount:      line.Product.Discount,
				Total:         line.Total,
			})
		}
		return nil
	})
	if err != nil {
		log.Printf("[POS] session=%s cashier=%s commit rolled back: %v", receipt.SessionID, receipt.Cashier, err)
		return nil, err
	}

	log.Printf("[POS] session=%s cashier=%s recorded %d line(s) total=%s", receipt.SessionID, receipt.Cashier, len(receipt.Lines), receipt.Total.String())
	return receipt, nil
}

// ListToday returns the session user's sales of the current day in the
// configured time zone, with their summed total.
func (r *Recorder) ListToday(ctx context.Context) ([]TransactionRow, decimal.Decimal, error) {
	if err := r.gate.Authorize(ctx, gate.ActionList, policy.ResourceTransaction, nil); err != nil {
		return nil, decimal.Zero, err
	}
	userID, _ := session.UserIDFromContext(ctx)
	day := DayPeriod(r.Now(), r.Location)

	var rows []TransactionRow
	err := r.rows(ctx).
		Where("t.id_user = ? AND d.tanggal >= ? AND d.tanggal < ?", userID, day.Start.UTC(), day.End.UTC()).
		Order("d.tanggal, t.id_transaksi").
		Scan(&rows).Error
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("list today's transactions: %w", err)
	}

	total := decimal.Zero
	for i := range rows {
		rows[i].Date = rows[i].Date.In(r.Location)
		total = total.Add(rows[i].Total)
	}
	return rows, total, nil
}

// ListRecent returns the latest sales of every cashier, newest first.
func (r *Recorder) ListRecent(ctx context.Context, limit int) ([]TransactionRow, error) {
	if err := r.gate.Authorize(ctx, gate.ActionList, policy.ResourceLedger, nil); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = RecentLimit
	}
	var rows []TransactionRow
	err := r.rows(ctx).Order("d.tanggal DESC, t.id_transaksi DESC").Limit(limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}
	for i := range rows {
		rows[i].Date = rows[i].Date.In(r.Location)
	}
	return rows, nil
}

// Reprint rebuilds the receipt of one recorded sale. Cashiers may reprint
// their own sales, administrators any sale.
func (r *Recorder) Reprint(ctx context.Context, transactionID uint) (*Receipt, error) {
	if err := r.gate.Authorize(ctx, gate.ActionView, policy.ResourceTransaction, nil); err != nil {
		return nil, err
	}

	var txn models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Detail.Product").Preload("PaymentMethod").Preload("Cashier").
		First(&txn, "id_transaksi = ?", transactionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("load transaction: %w", err)
	}
	if err := r.gate.Authorize(ctx, gate.ActionView, policy.ResourceTransaction, &txn); err != nil {
		return nil, ErrTransactionNotFound
	}

	receipt := &Receipt{StoreName: r.StoreName, Total: txn.Total}
	if sess, ok := session.FromContext(ctx); ok {
		receipt.SessionID = sess.ID.String()
	}
	if txn.Cashier != nil {
		receipt.Cashier = txn.Cashier.Username
	}
	if txn.PaymentMethod != nil {
		receipt.PaymentMethod = txn.PaymentMethod.Name
	}
	line := ReceiptLine{TransactionID: txn.ID, Total: txn.Total}
	if d := txn.Detail; d != nil {
		receipt.IssuedAt = d.Date.In(r.Location)
		line.Quantity = d.Quantity
		if d.Product != nil {
			line.ProductName = d.Product.Name
			line.Discount = d.Product.Discount
		}
		if d.Quantity > 0 {
			line.UnitPrice = txn.Total.Div(decimal.NewFromInt(int64(d.Quantity)))
		}
	}
	receipt.Lines = []ReceiptLine{line}
	return receipt, nil
}

func (r *Recorder) rows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transaksi AS t").
		Select(`t.id_transaksi AS id, d.tanggal AS date, t.status AS status, t.id_user AS cashier_id,
			u.username AS cashier, p.nama_produk AS product, d.jumlah_produk AS quantity,
			t.total_harga AS total, m.nama_metode AS payment_method`).
		Joins("JOIN detail_transaksi d ON d.id_detail_transaksi = t.id_detail_transaksi").
		Joins("LEFT JOIN users u ON u.id_user = t.id_user").
		Joins("LEFT JOIN produk p ON p.id_produk = d.id_produk").
		Joins("LEFT JOIN metode_pembayaran m ON m.id_metode = t.id_metode")
}
