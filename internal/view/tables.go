package view

import (
	"strconv"

	"github.com/diewo77/seedmart/internal/models"
	"github.com/diewo77/seedmart/internal/services"
)

func id(n uint) string { return strconv.FormatUint(uint64(n), 10) }

// Inventory lists every product with its category and owner.
func (r *Renderer) Inventory(products []models.Product) {
	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{
			id(p.ID), p.Name, r.Text(p.CategoryName()), r.Number(int64(p.Stock)),
			r.Money(p.Price), r.Percent(p.DiscountPercent()), r.Text(p.OwnerName()),
		}
	}
	r.Table([]string{"col_id", "col_product", "col_category", "col_stock", "col_price", "col_discount", "col_owner"}, rows)
}

// Products lists products with their category, as seen by managers.
func (r *Renderer) Products(products []models.Product) {
	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{
			id(p.ID), p.Name, r.Text(p.CategoryName()), r.Number(int64(p.Stock)),
			r.Money(p.Price), r.Percent(p.DiscountPercent()),
		}
	}
	r.Table([]string{"col_id", "col_product", "col_category", "col_stock", "col_price", "col_discount"}, rows)
}

// Catalog lists sellable products with the price after discount.
func (r *Renderer) Catalog(products []models.Product) {
	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{
			id(p.ID), p.Name, r.Number(int64(p.Stock)), r.Money(p.Price),
			r.Percent(p.DiscountPercent()), r.Money(p.DiscountedPrice()),
		}
	}
	r.Table([]string{"col_id", "col_product", "col_stock", "col_price", "col_discount", "col_net_price"}, rows)
}

func (r *Renderer) Categories(categories []models.Category) {
	rows := make([][]string, len(categories))
	for i, c := range categories {
		rows[i] = []string{id(c.ID), c.Name}
	}
	r.Table([]string{"col_id", "col_category"}, rows)
}

func (r *Renderer) PaymentMethods(methods []models.PaymentMethod) {
	rows := make([][]string, len(methods))
	for i, m := range methods {
		rows[i] = []string{id(m.ID), m.Name}
	}
	r.Table([]string{"col_id", "col_payment_method"}, rows)
}

func (r *Renderer) Users(users []models.User) {
	rows := make([][]string, len(users))
	for i, u := range users {
		rows[i] = []string{id(u.ID), u.Username, r.Text(u.Email), r.Text(u.RoleName())}
	}
	r.Table([]string{"col_id", "col_username", "col_email", "col_role"}, rows)
}

// Transactions lists journal rows; missing names are shown as N/A.
func (r *Renderer) Transactions(rows []services.TransactionRow) {
	out := make([][]string, len(rows))
	for i, t := range rows {
		out[i] = []string{
			id(t.ID), r.Date(t.Date), r.Text(t.Status), r.Optional(t.Cashier),
			r.Optional(t.Product), r.Number(int64(t.Quantity)), r.Money(t.Total), r.Optional(t.PaymentMethod),
		}
	}
	r.Table([]string{"col_id", "col_date", "col_status", "col_cashier", "col_product", "col_quantity", "col_total", "col_payment_method"}, out)
}

// Cart lists the lines collected so far.
func (r *Renderer) Cart(lines []services.CartLine) {
	rows := make([][]string, len(lines))
	for i, l := range lines {
		rows[i] = []string{
			strconv.Itoa(i + 1), l.Product.Name, r.Number(int64(l.Quantity)),
			r.Money(l.UnitPrice), r.Money(l.Total),
		}
	}
	r.Table([]string{"col_no", "col_product", "col_quantity", "col_net_price", "col_subtotal"}, rows)
}

func (r *Renderer) Sales(sales []services.ProductSales) {
	rows := make([][]string, len(sales))
	for i, s := range sales {
		rows[i] = []string{strconv.Itoa(i + 1), id(s.ProductID), s.Name, r.Number(s.Sold)}
	}
	r.Table([]string{"col_rank", "col_id", "col_product", "col_sold"}, rows)
}

func (r *Renderer) Summary(s *services.Summary) {
	r.Printf("%s: %s\n", r.T("report_period"), s.Period.Label)
	r.Printf("%s: %s\n", r.T("report_count"), r.Number(s.Count))
	r.Printf("%s: %s\n", r.T("report_revenue"), r.Money(s.Revenue))
	r.Printf("%s: %s\n", r.T("report_completed"), r.Number(s.Completed))
	r.Printf("%s: %s\n", r.T("report_failed"), r.Number(s.Failed))
}
