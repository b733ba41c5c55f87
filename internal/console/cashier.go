package console

import (
	"context"

	"github.com/diewo77/seedmart/internal/gate"
	"github.com/diewo77/seedmart/internal/policy"
	"github.com/diewo77/seedmart/internal/services"
	"github.com/diewo77/seedmart/internal/validation"
)

func (c *Console) cashierMenu(ctx context.Context) error {
	return c.menu(ctx, "cashier_menu", "logout", []menuItem{
		{"menu_catalog", policy.ResourceCatalog, gate.ActionList, c.showCatalog},
		{"menu_new_sale", policy.ResourceTransaction, gate.ActionCreate, c.newSale},
		{"menu_today", policy.ResourceTransaction, gate.ActionList, c.showToday},
		{"menu_reprint", policy.ResourceTransaction, gate.ActionView, c.reprint},
	})
}

func (c *Console) showCatalog(ctx context.Context) error {
	products, err := c.svc.Catalog.ListAvailable(ctx)
	if err != nil {
		return err
	}
	c.out.Header(c.out.T("menu_catalog"))
	c.out.Catalog(products)
	return nil
}

// newSale builds a cart from the available products, asks for the payment
// method and a confirmation, then records it. A failed commit discards the
// cart.
func (c *Console) newSale(ctx context.Context) error {
	available, err := c.svc.Catalog.ListAvailable(ctx)
	if err != nil {
		return err
	}
	c.out.Header(c.out.T("menu_new_sale"))
	if len(available) == 0 {
		c.out.Println(c.out.T("no_products_available"))
		return nil
	}
	c.out.Catalog(available)

	cart := services.NewCart(available)
	for {
		id, err := c.promptInt("prompt_sale_product", 0, maxInput)
		if err != nil {
			return err
		}
		if id == 0 {
			if cart.Empty() {
				c.out.Println(c.out.T("empty_cart"))
				continue
			}
			break
		}
		qty, err := c.promptInt("prompt_quantity", 0, maxInput)
		if err != nil {
			return err
		}
		line, err := cart.Add(uint(id), qty)
		if err != nil {
			c.reportError(err)
			continue
		}
		c.out.Printf(c.out.T("added_to_cart")+"\n", line.Product.Name, line.Quantity, c.out.Money(line.Total))
		c.out.Printf(c.out.T("remaining_stock")+"\n", line.Product.Name, cart.Remaining(line.Product.ID))
	}

	c.out.Header(c.out.T("cart_title"))
	c.out.Cart(cart.Lines())
	c.out.Printf("%s: %s\n", c.out.T("col_total"), c.out.Money(cart.Total()))

	methods, err := c.svc.Recorder.PaymentMethods(ctx)
	if err != nil {
		return err
	}
	c.out.PaymentMethods(methods)
	ids := make([]uint, len(methods))
	for i, m := range methods {
		ids[i] = m.ID
	}
	var methodID uint
	for {
		n, err := c.promptInt("prompt_payment_method", 1, maxInput)
		if err != nil {
			return err
		}
		v := validation.Violations{}
		validation.OneOf("payment_method", uint(n), ids, v)
		if v.Empty() {
			methodID = uint(n)
			break
		}
		c.reportError(v)
	}

	ok, err := c.confirm("confirm_process_sale")
	if err != nil {
		return err
	}
	if !ok {
		c.out.Println(c.out.T("sale_cancelled"))
		return nil
	}

	receipt, err := c.svc.Recorder.Record(ctx, cart, methodID)
	if err != nil {
		c.out.Println(c.out.T("sale_failed"))
		return err
	}
	c.out.Receipt(receipt)
	return nil
}

func (c *Console) showToday(ctx context.Context) error {
	rows, total, err := c.svc.Recorder.ListToday(ctx)
	if err != nil {
		return err
	}
	c.out.Header(c.out.T("menu_today"))
	c.out.Transactions(rows)
	c.out.Printf("%s: %s\n", c.out.T("today_total"), c.out.Money(total))
	return nil
}
