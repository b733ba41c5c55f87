package services

import (
	"context"
	"fmt"

	"github.com/diewo77/seedmart/internal/gate"
	"github.com/diewo77/seedmart/internal/models"
	"github.com/diewo77/seedmart/internal/policy"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TopSellersLimit is the number of products shown per report period.
const TopSellersLimit = 5

// Summary aggregates the sales of one period.
type Summary struct {
	Period    Period
	Count     int64
	Revenue   decimal.Decimal
	Completed int64
	Failed    int64
}

// ProductSales is the quantity sold of one product.
type ProductSales struct {
	ProductID uint
	Name      string
	Sold      int64
}

// ReportService runs the administrator's read-only sales reports.
type ReportService struct {
	db   *gorm.DB
	gate *policy.AuthGate
}

func NewReportService(db *gorm.DB, ag *policy.AuthGate) *ReportService {
	return &ReportService{db: db, gate: ag}
}

// Summary counts the sales whose detail date falls in p, their revenue and
// how many completed or failed.
func (s *ReportService) Summary(ctx context.Context, p Period) (*Summary, error) {
	if err := s.gate.Authorize(ctx, gate.ActionView, policy.ResourceReport, nil); err != nil {
		return nil, err
	}

	var row struct {
		Count     int64
		Revenue   decimal.Decimal
		Completed int64
		Failed    int64
	}
	err := s.db.WithContext(ctx).
		Table("transaksi AS t").
		Select(`COUNT(*) AS count, COALESCE(SUM(t.total_harga), 0) AS revenue,
			COUNT(CASE WHEN t.status = ? THEN 1 END) AS completed,
			COUNT(CASE WHEN t.status = ? THEN 1 END) AS failed`,
			string(models.StatusCompleted), string(models.StatusFailed)).
		Joins("JOIN detail_transaksi d ON d.id_detail_transaksi = t.id_detail_transaksi").
		Where("d.tanggal >= ? AND d.tanggal < ?", p.Start.UTC(), p.End.UTC()).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("summary %s: %w", p.Label, err)
	}
	return &Summary{
		Period:    p,
		Count:     row.Count,
		Revenue:   row.Revenue,
		Completed: row.Completed,
		Failed:    row.Failed,
	}, nil
}

// BestSellers ranks every product by quantity sold over all time; unsold
// products appear with zero. Ties are ordered by product id.
func (s *ReportService) BestSellers(ctx context.Context) ([]ProductSales, error) {
	if err := s.gate.Authorize(ctx, gate.ActionView, policy.ResourceReport, nil); err != nil {
		return nil, err
	}
	var out []ProductSales
	err := s.db.WithContext(ctx).
		Table("produk AS p").
		Select("p.id_produk AS product_id, p.nama_produk AS name, COALESCE(SUM(d.jumlah_produk), 0) AS sold").
		Joins("LEFT JOIN detail_transaksi d ON d.id_produk = p.id_produk").
		Group("p.id_produk, p.nama_produk").
		Order("sold DESC, p.id_produk ASC").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("best sellers: %w", err)
	}
	return out, nil
}

// TopSellers returns the limit best-selling products within p.
func (s *ReportService) TopSellers(ctx context.Context, p Period, limit int) ([]ProductSales, error) {
	if err := s.gate.Authorize(ctx, gate.ActionView, policy.ResourceReport, nil); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = TopSellersLimit
	}
	var out []ProductSales
	err := s.db.WithContext(ctx).
		Table("detail_transaksi AS d").
		Select("p.id_produk AS product_id, p.nama_produk AS name, SUM(d.jumlah_produk) AS sold").
		Joins("JOIN produk p ON p.id_produk = d.id_produk").
		Where("d.tanggal >= ? AND d.tanggal < ?", p.Start.UTC(), p.End.UTC()).
		Group("p.id_produk, p.nama_produk").
		Order("sold DESC, p.id_produk ASC").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("top sellers %s: %w", p.Label, err)
	}
	return out, nil
}
