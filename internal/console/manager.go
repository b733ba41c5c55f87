package console

import (
	"context"

	"github.com/diewo77/seedmart/internal/gate"
	"github.com/diewo77/seedmart/internal/policy"
	"github.com/diewo77/seedmart/internal/services"
)

func (c *Console) managerMenu(ctx context.Context) error {
	return c.menu(ctx, "manager_menu", "logout", []menuItem{
		{"menu_my_products", policy.ResourceProduct, gate.ActionList, c.showOwnProducts},
		{"menu_add_product", policy.ResourceProduct, gate.ActionCreate, c.addProduct},
		{"menu_edit_product", policy.ResourceProduct, gate.ActionUpdate, c.editProduct},
		{"menu_delete_product", policy.ResourceProduct, gate.ActionDelete, c.deleteProduct},
	})
}

func (c *Console) showOwnProducts(ctx context.Context) error {
	products, err := c.svc.Catalog.ListOwned(ctx)
	if err != nil {
		return err
	}
	c.out.Header(c.out.T("menu_my_products"))
	c.out.Products(products)
	return nil
}

func (c *Console) showCategories(ctx context.Context) error {
	categories, err := c.svc.Catalog.Categories(ctx)
	if err != nil {
		return err
	}
	c.out.Categories(categories)
	return nil
}

func (c *Console) addProduct(ctx context.Context) error {
	c.out.Header(c.out.T("menu_add_product"))
	name, err := c.promptText("prompt_product_name", "name")
	if err != nil {
		return err
	}
	stock, err := c.promptInt("prompt_stock", 0, maxInput)
	if err != nil {
		return err
	}
	price, err := c.promptInt("prompt_price", 0, maxInput)
	if err != nil {
		return err
	}
	discount, err := c.promptOptionalFloat("prompt_discount", 0, 100)
	if err != nil {
		return err
	}
	if err := c.showCategories(ctx); err != nil {
		return err
	}
	category, err := c.promptInt("prompt_category_id", 1, maxInput)
	if err != nil {
		return err
	}

	in := services.ProductInput{
		Name:       name,
		Stock:      stock,
		Price:      int64(price),
		CategoryID: uint(category),
	}
	if discount != nil {
		in.DiscountPercent = *discount
	}
	p, err := c.svc.Catalog.Create(ctx, in)
	if err != nil {
		return err
	}
	c.out.Printf(c.out.T("product_created")+"\n", p.Name, p.ID)
	return nil
}

// editProduct keeps every field left empty.
func (c *Console) editProduct(ctx context.Context) error {
	if err := c.showOwnProducts(ctx); err != nil {
		return err
	}
	id, err := c.promptInt("prompt_product_id", 1, maxInput)
	if err != nil {
		return err
	}
	if _, err := c.svc.Catalog.Get(ctx, uint(id)); err != nil {
		return err
	}
	c.out.Println(c.out.T("hint_keep_empty"))

	var patch services.ProductPatch
	if patch.Name, err = c.promptOptionalText("prompt_product_name"); err != nil {
		return err
	}
	if patch.Stock, err = c.promptOptionalInt("prompt_stock", 0, maxInput); err != nil {
		return err
	}
	price, err := c.promptOptionalInt("prompt_price", 0, maxInput)
	if err != nil {
		return err
	}
	if price != nil {
		p := int64(*price)
		patch.Price = &p
	}
	if patch.DiscountPercent, err = c.promptOptionalFloat("prompt_discount", 0, 100); err != nil {
		return err
	}
	if err := c.showCategories(ctx); err != nil {
		return err
	}
	category, err := c.promptOptionalInt("prompt_category_id", 1, maxInput)
	if err != nil {
		return err
	}
	if category != nil {
		cat := uint(*category)
		patch.CategoryID = &cat
	}

	p, err := c.svc.Catalog.Update(ctx, uint(id), patch)
	if err != nil {
		return err
	}
	c.out.Printf(c.out.T("product_updated")+"\n", p.Name)
	return nil
}

func (c *Console) deleteProduct(ctx context.Context) error {
	if err := c.showOwnProducts(ctx); err != nil {
		return err
	}
	id, err := c.promptInt("prompt_product_id", 1, maxInput)
	if err != nil {
		return err
	}
	p, err := c.svc.Catalog.Get(ctx, uint(id))
	if err != nil {
		return err
	}
	c.out.Printf(c.out.T("confirm_delete_product_name")+"\n", p.Name)
	ok, err := c.confirm("confirm_delete_product")
	if err != nil {
		return err
	}
	if !ok {
		c.out.Println(c.out.T("cancelled"))
		return nil
	}
	if err := c.svc.Catalog.Delete(ctx, p.ID); err != nil {
		return err
	}
	c.out.Println(c.out.T("product_deleted"))
	return nil
}
