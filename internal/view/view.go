// Package view formats domain values and tables for the console.
package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/diewo77/seedmart/internal/i18n"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	ruleWidth  = 48
	dateLayout = "2006-01-02 15:04"
)

// Renderer writes localized output. Absent values are shown as NA.
type Renderer struct {
	w       io.Writer
	lang    string
	printer *message.Printer
	NA      string
}

func New(w io.Writer, lang string) *Renderer {
	return &Renderer{
		w:       w,
		lang:    lang,
		printer: message.NewPrinter(i18n.Tag(lang)),
		NA:      "N/A",
	}
}

// T translates a message code in the renderer's language.
func (r *Renderer) T(code string) string { return i18n.T(r.lang, code) }

func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.w, args...)
}

// Money rounds half-up to whole currency units and groups thousands.
func (r *Renderer) Money(d decimal.Decimal) string {
	return "Rp " + r.printer.Sprint(number.Decimal(d.Round(0).IntPart()))
}

func (r *Renderer) Number(n int64) string {
	return r.printer.Sprint(number.Decimal(n))
}

// Percent formats a percentage value (0-100) with at most two decimals.
func (r *Renderer) Percent(pct decimal.Decimal) string {
	return r.printer.Sprint(number.Decimal(pct.InexactFloat64(), number.MaxFractionDigits(2))) + "%"
}

func (r *Renderer) Date(t time.Time) string {
	if t.IsZero() {
		return r.NA
	}
	return t.Format(dateLayout)
}

// Optional returns NA for a nil or blank value.
func (r *Renderer) Optional(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return r.NA
	}
	return *s
}

// Text is Optional for plain strings.
func (r *Renderer) Text(s string) string {
	return r.Optional(&s)
}

func (r *Renderer) Header(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(r.w, "\n%s\n%s\n%s\n", rule, center(title, ruleWidth), rule)
}

func (r *Renderer) Rule() {
	fmt.Fprintln(r.w, strings.Repeat("-", ruleWidth))
}

// Table prints rows under translated headers, or the empty message when
// there are no rows.
func (r *Renderer) Table(headerCodes []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(r.w, r.T("no_data"))
		return
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	headers := make([]string, len(headerCodes))
	for i, code := range headerCodes {
		headers[i] = r.T(code)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
