package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diewo77/seedmart/internal/gate"
	"github.com/diewo77/seedmart/internal/models"
	"github.com/diewo77/seedmart/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var wib = time.FixedZone("WIB", 7*60*60)

func newRecorder(f *fixture, now time.Time) *Recorder {
	r := NewRecorder(f.db, f.gate, "SeedMart", wib)
	r.Now = func() time.Time { return now }
	return r
}

func cartFor(t *testing.T, f *fixture, ctx context.Context, lines map[uint]int) *Cart {
	t.Helper()
	available, err := NewCatalogService(f.db, f.gate).ListAvailable(ctx)
	require.NoError(t, err)
	c := NewCart(available)
	for id, qty := range lines {
		_, err := c.Add(id, qty)
		require.NoError(t, err)
	}
	return c
}

func TestRecord_WorkedExample(t *testing.T) {
	f := setupFixture(t)
	p := f.addProduct(t, f.manager, "Gula", 10, "50000", "0.10")
	ctx := as(f.cashier)
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, wib)

	receipt, err := newRecorder(f, now).Record(ctx, cartFor(t, f, ctx, map[uint]int{p.ID: 3}), f.cashID)
	require.NoError(t, err)
	require.Equal(t, 7, f.stock(t, p.ID))

	require.Equal(t, "kasir", receipt.Cashier)
	require.Equal(t, "Tunai", receipt.PaymentMethod)
	require.True(t, receipt.Total.Equal(decimal.NewFromInt(135000)))
	require.Len(t, receipt.Lines, 1)
	require.True(t, receipt.Lines[0].UnitPrice.Equal(decimal.NewFromInt(45000)))
	require.True(t, receipt.IssuedAt.Equal(now))

	var txn models.Transaction
	require.NoError(t, f.db.Preload("Detail").First(&txn, "id_transaksi = ?", receipt.Lines[0].TransactionID).Error)
	require.Equal(t, models.StatusCompleted, txn.Status)
	require.Equal(t, f.cashier.UserID, txn.UserID)
	require.True(t, txn.Total.Equal(decimal.NewFromInt(135000)))
	require.Equal(t, 3, txn.Detail.Quantity)
	require.True(t, txn.Detail.Date.Equal(now))
}

func TestRecord_MultiLineCreatesOneTransactionPerLine(t *testing.T) {
	f := setupFixture(t)
	a := f.addProduct(t, f.manager, "Kopi", 5, "12000", "0")
	b := f.addProduct(t, f.manager2, "Susu", 4, "9000", "0.5")
	ctx := as(f.cashier)

	c := cartFor(t, f, ctx, nil)
	_, err := c.Add(a.ID, 2)
	require.NoError(t, err)
	_, err = c.Add(b.ID, 1)
	require.NoError(t, err)
	_, err = c.Add(a.ID, 1)
	require.NoError(t, err)

	receipt, err := newRecorder(f, time.Now()).Record(ctx, c, f.cashID)
	require.NoError(t, err)
	require.Len(t, receipt.Lines, 3)
	require.True(t, receipt.Total.Equal(decimal.NewFromInt(40500)))
	require.Equal(t, int64(3), f.count(t, &models.Transaction{}))
	require.Equal(t, int64(3), f.count(t, &models.TransactionDetail{}))
	require.Equal(t, 2, f.stock(t, a.ID))
	require.Equal(t, 3, f.stock(t, b.ID))
}

func TestRecord_Rejections(t *testing.T) {
	f := setupFixture(t)
	p := f.addProduct(t, f.manager, "Garam", 5, "3000", "0")
	r := newRecorder(f, time.Now())

	_, err := r.Record(as(f.cashier), NewCart(nil), f.cashID)
	require.ErrorIs(t, err, ErrEmptyCart)
	_, err = r.Record(as(f.cashier), nil, f.cashID)
	require.ErrorIs(t, err, ErrEmptyCart)

	c := cartFor(t, f, as(f.cashier), map[uint]int{p.ID: 1})
	_, err = r.Record(as(f.cashier), c, 999)
	require.ErrorIs(t, err, ErrPaymentMethodNotFound)

	_, err = r.Record(as(f.manager), c, f.cashID)
	require.ErrorIs(t, err, gate.ErrUnauthorized)
	_, err = r.Record(context.Background(), c, f.cashID)
	require.ErrorIs(t, err, gate.ErrUnauthorized)

	require.Equal(t, int64(0), f.count(t, &models.Transaction{}))
	require.Equal(t, 5, f.stock(t, p.ID))
}

func TestRecord_StaleStockRollsBackEveryLine(t *testing.T) {
	f := setupFixture(t)
	a := f.addProduct(t, f.manager, "Beras", 10, "60000", "0")
	b := f.addProduct(t, f.manager, "Telur", 6, "2000", "0")
	ctx := as(f.cashier)

	c := cartFor(t, f, ctx, nil)
	_, err := c.Add(a.ID, 2)
	require.NoError(t, err)
	_, err = c.Add(b.ID, 5)
	require.NoError(t, err)

	// Another till sold most of the eggs after the cart was built.
	require.NoError(t, f.db.Model(&models.Product{}).Where("id_produk = ?", b.ID).Update("stok", 3).Error)

	receipt, err := newRecorder(f, time.Now()).Record(ctx, c, f.cashID)
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.Nil(t, receipt)

	require.Equal(t, 10, f.stock(t, a.ID))
	require.Equal(t, 3, f.stock(t, b.ID))
	require.Equal(t, int64(0), f.count(t, &models.Transaction{}))
	require.Equal(t, int64(0), f.count(t, &models.TransactionDetail{}))
}

func TestRecord_InsertFailureRollsBack(t *testing.T) {
	f := setupFixture(t)
	a := f.addProduct(t, f.manager, "Sikat", 4, "7000", "0")
	b := f.addProduct(t, f.manager, "Odol", 4, "9000", "0")
	ctx := as(f.cashier)
	c := cartFor(t, f, ctx, nil)
	_, err := c.Add(a.ID, 1)
	require.NoError(t, err)
	_, err = c.Add(b.ID, 1)
	require.NoError(t, err)

	injected := errors.New("disk full")
	inserts := 0
	require.NoError(t, f.db.Callback().Create().Before("gorm:create").Register("test:fail_second_sale", func(tx *gorm.DB) {
		if tx.Statement.Table == "transaksi" {
			inserts++
			if inserts == 2 {
				_ = tx.AddError(injected)
			}
		}
	}))

	_, err = newRecorder(f, time.Now()).Record(ctx, c, f.cashID)
	require.ErrorIs(t, err, injected)
	require.Equal(t, 4, f.stock(t, a.ID))
	require.Equal(t, 4, f.stock(t, b.ID))
	require.Equal(t, int64(0), f.count(t, &models.Transaction{}))
	require.Equal(t, int64(0), f.count(t, &models.TransactionDetail{}))
}

func TestRecorder_ListToday(t *testing.T) {
	f := setupFixture(t)
	p := f.addProduct(t, f.manager, "Air", 50, "4000", "0")
	yesterday := time.Date(2026, 3, 1, 22, 0, 0, 0, wib)
	today := time.Date(2026, 3, 2, 0, 30, 0, 0, wib)

	sales := []struct {
		cashier *session.Session
		at      time.Time
		qty     int
	}{
		{f.cashier, yesterday, 1},
		{f.cashier, today, 2},
		{f.cashier, today.Add(time.Hour), 3},
		{f.cashier2, today, 4},
	}
	for _, sale := range sales {
		ctx := as(sale.cashier)
		_, err := newRecorder(f, sale.at).Record(ctx, cartFor(t, f, ctx, map[uint]int{p.ID: sale.qty}), f.cashID)
		require.NoError(t, err)
	}

	rows, total, err := newRecorder(f, today.Add(2*time.Hour)).ListToday(as(f.cashier))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 2, rows[0].Quantity)
	require.Equal(t, 3, rows[1].Quantity)
	require.True(t, total.Equal(decimal.NewFromInt(20000)), total.String())
	require.Equal(t, "kasir", *rows[0].Cashier)
	require.Equal(t, "Air", *rows[0].Product)
	require.Equal(t, "Tunai", *rows[0].PaymentMethod)
	require.Equal(t, wib, rows[0].Date.Location())
}

func TestRecorder_ListRecent(t *testing.T) {
	f := setupFixture(t)
	p := f.addProduct(t, f.manager, "Permen", 100, "500", "0")
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, wib)
	for i := 0; i < RecentLimit+5; i++ {
		ctx := as(f.cashier)
		_, err := newRecorder(f, base.Add(time.Duration(i)*time.Minute)).Record(ctx, cartFor(t, f, ctx, map[uint]int{p.ID: 1}), f.cashID)
		require.NoError(t, err)
	}

	r := newRecorder(f, base)
	rows, err := r.ListRecent(as(f.admin), RecentLimit)
	require.NoError(t, err)
	require.Len(t, rows, RecentLimit)
	require.True(t, rows[0].Date.After(rows[1].Date))
	require.True(t, rows[0].Date.Equal(base.Add(time.Duration(RecentLimit+4)*time.Minute)))

	_, err = r.ListRecent(as(f.cashier), RecentLimit)
	require.ErrorIs(t, err, gate.ErrUnauthorized)
}

func TestRecorder_Reprint(t *testing.T) {
	f := setupFixture(t)
	p := f.addProduct(t, f.manager, "Kecap", 9, "15000", "0.2")
	ctx := as(f.cashier)
	r := newRecorder(f, time.Date(2026, 3, 2, 10, 0, 0, 0, wib))
	original, err := r.Record(ctx, cartFor(t, f, ctx, map[uint]int{p.ID: 2}), f.cashID)
	require.NoError(t, err)
	id := original.Lines[0].TransactionID

	again, err := r.Reprint(ctx, id)
	require.NoError(t, err)
	require.Equal(t, original.Cashier, again.Cashier)
	require.Equal(t, original.PaymentMethod, again.PaymentMethod)
	require.True(t, again.Total.Equal(original.Total))
	require.True(t, again.Lines[0].UnitPrice.Equal(decimal.NewFromInt(12000)))
	require.True(t, again.IssuedAt.Equal(original.IssuedAt))

	_, err = r.Reprint(as(f.admin), id)
	require.NoError(t, err)
	_, err = r.Reprint(as(f.cashier2), id)
	require.ErrorIs(t, err, ErrTransactionNotFound)
	_, err = r.Reprint(ctx, 4242)
	require.ErrorIs(t, err, ErrTransactionNotFound)
	_, err = r.Reprint(as(f.manager), id)
	require.ErrorIs(t, err, gate.ErrUnauthorized)
}

func TestRecorder_PaymentMethods(t *testing.T) {
	f := setupFixture(t)
	methods, err := newRecorder(f, time.Now()).PaymentMethods(as(f.cashier))
	require.NoError(t, err)
	require.Len(t, methods, 4)
	require.Equal(t, "Tunai", methods[0].Name)
}
