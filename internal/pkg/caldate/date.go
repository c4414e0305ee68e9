package caldate

import (
	"fmt"
	"strings"
	"time"
)

// Date is a timezone-naive calendar date. It is the only representation of a
// schedule date allowed past the store boundary: timestamp-bearing strings
// coming from the salon API are truncated here and never compared as strings.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const layoutISODate = "2006-01-02"

func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate accepts a plain calendar date (2026-02-16) or any timestamp whose
// first ten characters form one (2026-02-16T00:00:00.000Z). The time and
// offset portions are discarded, not converted.
func ParseDate(value string) (Date, error) {
	s := strings.TrimSpace(value)
	if len(s) > len(layoutISODate) {
		s = s[:len(layoutISODate)]
	}
	t, err := time.Parse(layoutISODate, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid calendar date '%s': %w", value, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// FromTime truncates a time.Time to its calendar date in the time's location.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return d.toTime().Format(layoutISODate)
}

func (d Date) Weekday() time.Weekday {
	return d.toTime().Weekday()
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.toTime().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d.toTime().Before(other.toTime())
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

func (d Date) Equal(other Date) bool {
	return d == other
}

// StartOfWeek returns the Monday on or before d.
func (d Date) StartOfWeek() Date {
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return d.AddDays(-offset)
}

// DatesBetween lists every calendar date from from to to inclusive, ascending.
// An inverted range yields an empty slice.
func DatesBetween(from, to Date) []Date {
	if to.Before(from) {
		return nil
	}
	var dates []Date
	for d := from; !d.After(to); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

// MarshalText lets Date render as "YYYY-MM-DD" in JSON payloads.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
