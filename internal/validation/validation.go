package validation

import (
	"math"
	"net/mail"
	"sort"
	"strings"
)

// Violations maps a field name to a message code understood by i18n.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Error lists the violations ordered by field, so Violations can be returned
// as an error from services.
func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + v[f]
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Err returns v as an error, or nil when there is nothing to report.
func (v Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return v
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func NonNegativeInt(field string, val int, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

// RangeFloat rejects NaN and infinities along with values outside
// [minVal, maxVal].
func RangeFloat(field string, val, minVal, maxVal float64, v Violations) {
	if math.IsNaN(val) || math.IsInf(val, 0) || val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}

func OneOf[T comparable](field string, val T, allowed []T, v Violations) {
	for _, a := range allowed {
		if a == val {
			return
		}
	}
	v[field] = "invalid_choice"
}

// Email accepts a bare address; an empty value is left to Required.
func Email(field, value string, v Violations) {
	if value == "" {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		v[field] = "invalid_email"
	}
}
