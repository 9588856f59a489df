package calendar

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/centroops/guardia/pkg/core/model"
)

// Recurrence defines a recurring holiday as an RFC 5545 recurrence rule,
// e.g. "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25".
type Recurrence struct {
	RRule     string
	Label     string
	IsSpecial bool
}

// ExpandRecurrences materialises recurring holidays into calendar-day
// overrides for the window [from, to]. The result feeds Calendar
// alongside any one-off overrides.
func ExpandRecurrences(recurrences []Recurrence, from, to time.Time) ([]model.CalendarDay, error) {
	days := make([]model.CalendarDay, 0)

	for i, rec := range recurrences {
		rule, err := rrule.StrToRRule(rec.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in holiday recurrence %d: %w", i, err)
		}
		rule.DTStart(from)

		for _, occ := range rule.Between(from, to, true) {
			days = append(days, model.CalendarDay{
				Date:      FormatDate(occ),
				Weekday:   occ.Weekday(),
				Kind:      model.DayKindHoliday,
				IsSpecial: rec.IsSpecial,
				Label:     rec.Label,
			})
		}
	}

	return days, nil
}
