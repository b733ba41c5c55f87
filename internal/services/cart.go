package services

import (
	"github.com/diewo77/seedmart/internal/models"
	"github.com/diewo77/seedmart/internal/validation"
	"github.com/shopspring/decimal"
)

// CartLine is one entry of a cart, priced from the catalog snapshot.
type CartLine struct {
	Product   models.Product
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Cart collects lines against a snapshot of the available catalog. Its
// stock checks are advisory; Recorder.Record re-checks stock when committing.
type Cart struct {
	snapshot map[uint]models.Product
	lines    []CartLine
}

// NewCart snapshots the given products. Products without stock are ignored.
func NewCart(available []models.Product) *Cart {
	c := &Cart{snapshot: make(map[uint]models.Product, len(available))}
	for _, p := range available {
		if p.Stock > 0 {
			c.snapshot[p.ID] = p
		}
	}
	return c
}

// Add appends a line. Quantities already in the cart for the same product
// count against its snapshot stock.
func (c *Cart) Add(productID uint, qty int) (CartLine, error) {
	p, ok := c.snapshot[productID]
	if !ok {
		return CartLine{}, ErrProductUnavailable
	}
	v := validation.Violations{}
	validation.PositiveInt("quantity", qty, v)
	if !v.Empty() {
		return CartLine{}, ErrInvalidQuantity
	}
	if c.Reserved(productID)+qty > p.Stock {
		return CartLine{}, ErrInsufficientStock
	}

	line := CartLine{
		Product:   p,
		Quantity:  qty,
		UnitPrice: p.DiscountedPrice(),
		Total:     p.LineTotal(qty),
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// Reserved is the quantity of a product already in the cart.
func (c *Cart) Reserved(productID uint) int {
	n := 0
	for _, l := range c.lines {
		if l.Product.ID == productID {
			n += l.Quantity
		}
	}
	return n
}

// Remaining is the snapshot stock not yet taken by the cart.
func (c *Cart) Remaining(productID uint) int {
	p, ok := c.snapshot[productID]
	if !ok {
		return 0
	}
	return p.Stock - c.Reserved(productID)
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total)
	}
	return total
}

func (c *Cart) Empty() bool { return len(c.lines) == 0 }
