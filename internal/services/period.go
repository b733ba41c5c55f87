package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PeriodKind selects how a report period is entered.
type PeriodKind string

const (
	PeriodDay   PeriodKind = "day"
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
)

// Period is a half-open time range [Start, End).
type Period struct {
	Kind  PeriodKind
	Label string
	Start time.Time
	End   time.Time
}

// ParsePeriod reads a day "2006-01-02", an ISO week "2006-W01" (or
// "2006-01") or a month "2006-01" in loc.
func ParsePeriod(kind PeriodKind, input string, loc *time.Location) (Period, error) {
	if loc == nil {
		loc = time.UTC
	}
	input = strings.TrimSpace(input)
	switch kind {
	case PeriodDay:
		d, err := time.ParseInLocation("2006-01-02", input, loc)
		if err != nil {
			return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, input)
		}
		return DayPeriod(d, loc), nil
	case PeriodWeek:
		return parseWeek(input, loc)
	case PeriodMonth:
		m, err := time.ParseInLocation("2006-01", input, loc)
		if err != nil {
			return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, input)
		}
		return Period{Kind: PeriodMonth, Label: input, Start: m, End: m.AddDate(0, 1, 0)}, nil
	default:
		return Period{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidPeriod, kind)
	}
}

// DayPeriod is the calendar day of t in loc.
func DayPeriod(t time.Time, loc *time.Location) Period {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return Period{Kind: PeriodDay, Label: start.Format("2006-01-02"), Start: start, End: start.AddDate(0, 0, 1)}
}

func parseWeek(input string, loc *time.Location) (Period, error) {
	invalid := fmt.Errorf("%w: %q", ErrInvalidPeriod, input)
	yearPart, weekPart, ok := strings.Cut(input, "-")
	if !ok || len(yearPart) != 4 {
		return Period{}, invalid
	}
	weekPart = strings.TrimPrefix(strings.ToUpper(weekPart), "W")
	if len(weekPart) != 2 {
		return Period{}, invalid
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return Period{}, invalid
	}
	week, err := strconv.Atoi(weekPart)
	if err != nil || week < 1 || week > 53 {
		return Period{}, invalid
	}

	// Week 1 is the week containing January 4th; weeks start on Monday.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	offset := (int(jan4.Weekday()) + 6) % 7
	start := jan4.AddDate(0, 0, -offset+(week-1)*7)
	if y, w := start.ISOWeek(); y != year || w != week {
		return Period{}, invalid
	}
	return Period{
		Kind:  PeriodWeek,
		Label: fmt.Sprintf("%04d-W%02d", year, week),
		Start: start,
		End:   start.AddDate(0, 0, 7),
	}, nil
}
