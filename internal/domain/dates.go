package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateRange возвращается, когда одна из дат диапазона не указана
var ErrInvalidDateRange = errors.New("domain: incomplete date range")

const day = 24 * time.Hour

// DateRange is an inclusive range of calendar dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a normalized range, swapping the dates so that Start <= End
func NewDateRange(a, b time.Time) DateRange {
	a, b = NormalizeDate(a), NormalizeDate(b)
	if b.Before(a) {
		a, b = b, a
	}
	return DateRange{Start: a, End: b}
}

// Validate checks that both dates are set
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrInvalidDateRange
	}
	if NormalizeDate(r.End).Before(NormalizeDate(r.Start)) {
		return fmt.Errorf("%w: end date %s is before start date %s",
			ErrInvalidDateRange, FormatDate(r.End), FormatDate(r.Start))
	}
	return nil
}

// Contains reports whether the date lies within the range, both ends inclusive
func (r DateRange) Contains(date time.Time) bool {
	d := NormalizeDate(date)
	return !d.Before(NormalizeDate(r.Start)) && !d.After(NormalizeDate(r.End))
}

// Overlaps reports whether two ranges share at least one calendar date
func (r DateRange) Overlaps(other DateRange) bool {
	return !NormalizeDate(r.Start).After(NormalizeDate(other.End)) &&
		!NormalizeDate(other.Start).After(NormalizeDate(r.End))
}

// Days returns the inclusive number of days in the range
func (r DateRange) Days() int {
	return CalculateStayLength(&r.Start, &r.End)
}

// NormalizeDate drops the time of day and the location, keeping the calendar date.
// The calendar date is read in the location of t.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CalculateStayLength returns the inclusive number of calendar days between start and end.
// A missing date yields 0. The order of the dates does not matter.
func CalculateStayLength(start, end *time.Time) int {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		return 0
	}

	// Обе даты приводим к полуночи UTC, иначе переход на летнее время даёт ±1 день
	diff := NormalizeDate(*end).Sub(NormalizeDate(*start))
	if diff < 0 {
		diff = -diff
	}
	return int(diff/day) + 1
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDate(t), nil
}

// FormatDate formats a calendar date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return NormalizeDate(t).Format(DateFormat)
}

// FormatDisplayDate formats a calendar date the way the Danish UI shows it (e.g. 5.7.2025)
func FormatDisplayDate(t time.Time) string {
	return NormalizeDate(t).Format(DisplayDateFormat)
}
