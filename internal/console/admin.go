package console

import (
	"context"
	"fmt"

	"github.com/diewo77/seedmart/internal/gate"
	"github.com/diewo77/seedmart/internal/models"
	"github.com/diewo77/seedmart/internal/policy"
	"github.com/diewo77/seedmart/internal/services"
)

func (c *Console) adminMenu(ctx context.Context) error {
	return c.menu(ctx, "admin_menu", "logout", []menuItem{
		{"menu_users", policy.ResourceUser, gate.ActionList, c.usersMenu},
		{"menu_inventory", policy.ResourceInventory, gate.ActionList, c.showInventory},
		{"menu_journal", policy.ResourceLedger, gate.ActionList, c.showJournal},
		{"menu_reports", policy.ResourceReport, gate.ActionView, c.reportsMenu},
		{"menu_reprint", policy.ResourceTransaction, gate.ActionView, c.reprint},
	})
}

func (c *Console) usersMenu(ctx context.Context) error {
	return c.menu(ctx, "menu_users", "back", []menuItem{
		{"users_list", policy.ResourceUser, gate.ActionList, c.listUsers},
		{"users_add", policy.ResourceUser, gate.ActionCreate, c.addUser},
		{"users_edit", policy.ResourceUser, gate.ActionUpdate, c.editUser},
		{"users_delete", policy.ResourceUser, gate.ActionDelete, c.deleteUser},
	})
}

func (c *Console) listUsers(ctx context.Context) error {
	users, err := c.svc.Users.List(ctx)
	if err != nil {
		return err
	}
	c.out.Header(c.out.T("users_list"))
	c.out.Users(users)
	return nil
}

func (c *Console) printRoles() {
	c.out.Printf("%d = %s, %d = %s, %d = %s\n",
		models.RoleAdmin, c.out.T("role_admin"),
		models.RoleManager, c.out.T("role_manager"),
		models.RoleCashier, c.out.T("role_cashier"))
}

func (c *Console) addUser(ctx context.Context) error {
	c.out.Header(c.out.T("users_add"))
	username, err := c.promptText("prompt_username", "username")
	if err != nil {
		return err
	}
	var password string
	for password == "" {
		if password, err = c.readSecret("prompt_password"); err != nil {
			return err
		}
		if password == "" {
			c.out.Println(c.out.T("required"))
		}
	}
	email, err := c.promptEmail("prompt_email")
	if err != nil {
		return err
	}
	c.printRoles()
	role, err := c.promptInt("prompt_role", int(models.RoleAdmin), int(models.RoleCashier))
	if err != nil {
		return err
	}

	in := services.UserInput{Username: username, Password: password, Role: models.RoleID(role)}
	if email != nil {
		in.Email = *email
	}
	u, err := c.svc.Users.Create(ctx, in)
	if err != nil {
		return err
	}
	c.out.Printf(c.out.T("user_created")+"\n", u.Username, u.ID)
	return nil
}

func (c *Console) editUser(ctx context.Context) error {
	if err := c.listUsers(ctx); err != nil {
		return err
	}
	id, err := c.promptInt("prompt_user_id", 1, maxInput)
	if err != nil {
		return err
	}
	c.out.Println(c.out.T("hint_keep_empty"))

	var patch services.UserPatch
	if patch.Username, err = c.promptOptionalText("prompt_username"); err != nil {
		return err
	}
	if patch.Email, err = c.promptEmail("prompt_email"); err != nil {
		return err
	}
	password, err := c.readSecret("prompt_new_password")
	if err != nil {
		return err
	}
	if password != "" {
		patch.Password = &password
	}
	c.printRoles()
	role, err := c.promptOptionalInt("prompt_role", int(models.RoleAdmin), int(models.RoleCashier))
	if err != nil {
		return err
	}
	if role != nil {
		r := models.RoleID(*role)
		patch.Role = &r
	}

	u, err := c.svc.Users.Update(ctx, uint(id), patch)
	if err != nil {
		return err
	}
	c.out.Printf(c.out.T("user_updated")+"\n", u.Username)
	return nil
}

func (c *Console) deleteUser(ctx context.Context) error {
	if err := c.listUsers(ctx); err != nil {
		return err
	}
	id, err := c.promptInt("prompt_user_id", 1, maxInput)
	if err != nil {
		return err
	}
	ok, err := c.confirm("confirm_delete_user")
	if err != nil {
		return err
	}
	if !ok {
		c.out.Println(c.out.T("cancelled"))
		return nil
	}
	if err := c.svc.Users.Delete(ctx, uint(id)); err != nil {
		return err
	}
	c.out.Println(c.out.T("user_deleted"))
	return nil
}

func (c *Console) showInventory(ctx context.Context) error {
	products, err := c.svc.Catalog.ListAll(ctx)
	if err != nil {
		return err
	}
	c.out.Header(c.out.T("menu_inventory"))
	c.out.Inventory(products)
	return nil
}

func (c *Console) showJournal(ctx context.Context) error {
	rows, err := c.svc.Recorder.ListRecent(ctx, services.RecentLimit)
	if err != nil {
		return err
	}
	c.out.Header(fmt.Sprintf(c.out.T("journal_title"), services.RecentLimit))
	c.out.Transactions(rows)
	return nil
}

func (c *Console) reprint(ctx context.Context) error {
	id, err := c.promptInt("prompt_transaction_id", 1, maxInput)
	if err != nil {
		return err
	}
	receipt, err := c.svc.Recorder.Reprint(ctx, uint(id))
	if err != nil {
		return err
	}
	c.out.Receipt(receipt)
	return nil
}

func (c *Console) reportsMenu(ctx context.Context) error {
	return c.menu(ctx, "menu_reports", "back", []menuItem{
		{"report_daily", policy.ResourceReport, gate.ActionView, c.periodReport(services.PeriodDay, "prompt_day")},
		{"report_weekly", policy.ResourceReport, gate.ActionView, c.periodReport(services.PeriodWeek, "prompt_week")},
		{"report_monthly", policy.ResourceReport, gate.ActionView, c.periodReport(services.PeriodMonth, "prompt_month")},
		{"report_best_sellers", policy.ResourceReport, gate.ActionView, c.bestSellers},
	})
}

// periodReport asks for a period until it parses, then prints the summary
// and the top sellers of that period.
func (c *Console) periodReport(kind services.PeriodKind, promptCode string) func(context.Context) error {
	return func(ctx context.Context) error {
		var period services.Period
		for {
			s, err := c.readLine(promptCode)
			if err != nil {
				return err
			}
			if period, err = services.ParsePeriod(kind, s, c.loc); err == nil {
				break
			}
			c.out.Println(c.out.T("invalid_period"))
		}

		summary, err := c.svc.Reports.Summary(ctx, period)
		if err != nil {
			return err
		}
		top, err := c.svc.Reports.TopSellers(ctx, period, services.TopSellersLimit)
		if err != nil {
			return err
		}
		c.out.Header(c.out.T("report_title"))
		c.out.Summary(summary)
		c.out.Println()
		c.out.Println(fmt.Sprintf(c.out.T("top_sellers_title"), services.TopSellersLimit))
		c.out.Sales(top)
		return nil
	}
}

func (c *Console) bestSellers(ctx context.Context) error {
	sales, err := c.svc.Reports.BestSellers(ctx)
	if err != nil {
		return err
	}
	c.out.Header(c.out.T("report_best_sellers"))
	c.out.Sales(sales)
	return nil
}
