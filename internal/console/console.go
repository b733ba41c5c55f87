// Package console runs the interactive role menus on a line-oriented
// terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/diewo77/seedmart/internal/gate"
	"github.com/diewo77/seedmart/internal/models"
	"github.com/diewo77/seedmart/internal/policy"
	"github.com/diewo77/seedmart/internal/services"
	"github.com/diewo77/seedmart/internal/session"
	"github.com/diewo77/seedmart/internal/validation"
	"github.com/diewo77/seedmart/internal/view"
)

// Services are the operations the menus call. Gate decides which menu
// entries the session user is offered.
type Services struct {
	Gate     *policy.AuthGate
	Auth     *services.Authenticator
	Users    *services.UserService
	Catalog  *services.CatalogService
	Recorder *services.Recorder
	Reports  *services.ReportService
}

// Console reads commands from in and renders to out. ReadPassword, when
// set, reads passwords without echo; otherwise they are read as lines.
type Console struct {
	svc          Services
	in           *bufio.Reader
	out          *view.Renderer
	loc          *time.Location
	now          func() time.Time
	ReadPassword func() (string, error)
}

func New(svc Services, in io.Reader, out io.Writer, lang string, loc *time.Location) *Console {
	if loc == nil {
		loc = time.UTC
	}
	return &Console{
		svc: svc,
		in:  bufio.NewReader(in),
		out: view.New(out, lang),
		loc: loc,
		now: time.Now,
	}
}

// knownErrors are reported with their translated message.
var knownErrors = []error{
	services.ErrProductUnavailable,
	services.ErrInvalidQuantity,
	services.ErrInsufficientStock,
	services.ErrEmptyCart,
	services.ErrPaymentMethodNotFound,
	services.ErrProductNotFound,
	services.ErrProductInUse,
	services.ErrCategoryNotFound,
	services.ErrTransactionNotFound,
	services.ErrInvalidCredentials,
	services.ErrUserNotFound,
	services.ErrUserInUse,
	services.ErrUsernameTaken,
	services.ErrSelfDelete,
	services.ErrInvalidPeriod,
}

// Run loops over login and role menus until the operator declines to log in
// again or the input ends.
func (c *Console) Run(ctx context.Context) error {
	c.out.Header(c.out.T("app_title"))
	for {
		sess, err := c.login(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if sess == nil {
			c.out.Println(c.out.T("goodbye"))
			return nil
		}

		log.Printf("[console] session=%s user=%s role=%d logged in", sess.ID, sess.Username, sess.Role)
		err = c.runRole(session.WithSession(ctx, sess), sess)
		log.Printf("[console] session=%s logged out", sess.ID)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		c.out.Println(c.out.T("logged_out"))
		again, err := c.confirm("login_again")
		if err != nil || !again {
			c.out.Println(c.out.T("goodbye"))
			return nil
		}
	}
}

func (c *Console) login(ctx context.Context) (*session.Session, error) {
	for {
		c.out.Header(c.out.T("login_title"))
		username, err := c.readLine("prompt_username")
		if err != nil {
			return nil, err
		}
		password, err := c.readSecret("prompt_password")
		if err != nil {
			return nil, err
		}

		sess, err := c.svc.Auth.Login(ctx, strings.TrimSpace(username), password)
		if err == nil {
			c.out.Printf(c.out.T("welcome")+"\n", sess.Username, sess.RoleName)
			return sess, nil
		}
		c.reportError(err)

		retry, err := c.confirm("retry_login")
		if err != nil {
			return nil, err
		}
		if !retry {
			return nil, nil
		}
	}
}

func (c *Console) runRole(ctx context.Context, sess *session.Session) error {
	switch sess.Role {
	case models.RoleAdmin:
		return c.adminMenu(ctx)
	case models.RoleManager:
		return c.managerMenu(ctx)
	case models.RoleCashier:
		return c.cashierMenu(ctx)
	default:
		c.out.Println(c.out.T("unauthorized"))
		return nil
	}
}

// menuItem is offered only when the role grants action on resource.
type menuItem struct {
	code     string
	resource string
	action   gate.Action
	run      func(ctx context.Context) error
}

// menu shows the permitted items until 0 is chosen. Errors of an item are
// reported and the menu is shown again; only the end of input leaves it
// early.
func (c *Console) menu(ctx context.Context, titleCode, exitCode string, all []menuItem) error {
	items := make([]menuItem, 0, len(all))
	for _, it := range all {
		if c.svc.Gate.CanProfile(ctx, it.action, it.resource) {
			items = append(items, it)
		}
	}
	for {
		c.out.Header(c.out.T(titleCode))
		for i, it := range items {
			c.out.Printf("%d. %s\n", i+1, c.out.T(it.code))
		}
		c.out.Printf("0. %s\n", c.out.T(exitCode))

		choice, err := c.promptInt("prompt_choice", 0, len(items))
		if err != nil {
			return err
		}
		if choice == 0 {
			return nil
		}
		if err := items[choice-1].run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			c.reportError(err)
		}
	}
}

// reportError prints err for the operator. Unknown errors are logged with
// their detail and shown as a generic failure.
func (c *Console) reportError(err error) {
	var v validation.Violations
	if errors.As(err, &v) {
		fields := make([]string, 0, len(v))
		for f := range v {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			c.out.Printf("%s: %s\n", c.out.T("field_"+f), c.out.T(v[f]))
		}
		return
	}
	if errors.Is(err, gate.ErrUnauthorized) {
		c.out.Println(c.out.T("unauthorized"))
		return
	}
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			c.out.Println(c.out.T(known.Error()))
			return
		}
	}
	log.Printf("[console] operation failed: %v", err)
	c.out.Println(c.out.T("operation_failed"))
}
