// Package calendar derives day-of-week and holiday metadata for dates.
// It owns nothing: classifications are recomputed from the holiday
// override list on demand.
package calendar

import (
	"fmt"
	"time"

	"github.com/centroops/guardia/pkg/core/model"
)

// ParseDate parses a wire-format date at midnight UTC.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// FormatDate renders a time in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

// AddDays shifts a wire-format date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// Calendar classifies dates against a holiday override list.
type Calendar struct {
	overrides map[string]model.CalendarDay
}

// New indexes the override list for lookup. Later overrides for the same
// date win.
func New(overrides []model.CalendarDay) Calendar {
	idx := make(map[string]model.CalendarDay, len(overrides))
	for _, d := range overrides {
		idx[d.Date] = d
	}
	return Calendar{overrides: idx}
}

// Classify returns the metadata for a date. Dates without an override are
// plain working days. An unparsable date is an error for the caller to
// degrade on, never a panic.
func (c Calendar) Classify(date string) (model.CalendarDay, error) {
	t, err := ParseDate(date)
	if err != nil {
		return model.CalendarDay{}, err
	}

	if override, ok := c.overrides[date]; ok {
		override.Weekday = t.Weekday()
		if override.Kind == "" {
			override.Kind = model.DayKindHoliday
		}
		return override, nil
	}

	return model.CalendarDay{
		Date:    date,
		Weekday: t.Weekday(),
		Kind:    model.DayKindWorking,
	}, nil
}

// IsHoliday reports whether the date is overridden as a holiday.
// Unparsable dates are not holidays.
func (c Calendar) IsHoliday(date string) bool {
	day, err := c.Classify(date)
	if err != nil {
		return false
	}
	return day.Kind == model.DayKindHoliday
}
