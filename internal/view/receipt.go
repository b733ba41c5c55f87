package view

import (
	"fmt"
	"strings"

	"github.com/diewo77/seedmart/internal/services"
)

// Receipt prints a receipt. It only formats and can be called any number
// of times for the same receipt.
func (r *Renderer) Receipt(rc *services.Receipt) {
	r.Header(r.Text(rc.StoreName))
	r.Printf("%-10s: %s\n", r.T("receipt_cashier"), r.Text(rc.Cashier))
	r.Printf("%-10s: %s\n", r.T("receipt_date"), r.Date(rc.IssuedAt))
	r.Printf("%-10s: %s\n", r.T("receipt_payment"), r.Text(rc.PaymentMethod))
	r.Rule()
	for _, l := range rc.Lines {
		r.Printf("#%d %s\n", l.TransactionID, r.Text(l.ProductName))
		detail := fmt.Sprintf("   %s x %s", r.Number(int64(l.Quantity)), r.Money(l.UnitPrice))
		if !l.Discount.IsZero() {
			detail += fmt.Sprintf(" (%s %s)", r.T("receipt_discount"), r.Percent(l.Discount.Shift(2)))
		}
		r.Println(alignRight(detail, r.Money(l.Total)))
	}
	r.Rule()
	r.Println(alignRight(strings.ToUpper(r.T("receipt_total")), r.Money(rc.Total)))
	r.Println(strings.Repeat("=", ruleWidth))
	r.Println(r.T("receipt_thanks"))
}

func alignRight(left, right string) string {
	gap := ruleWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
