// Package incident expands incidents into concrete calendar dates and
// enforces the business rules around registering them.
package incident

import (
	"time"

	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/model"
)

// returnScanBound caps the search for a return day so a pathological
// schedule (every weekday off) cannot loop forever.
const returnScanBound = 60

// Resolution is the concrete calendar footprint of an incident.
type Resolution struct {
	Dates      []string `json:"dates"`
	Start      string   `json:"start,omitempty"`
	End        string   `json:"end,omitempty"`
	ReturnDate string   `json:"returnDate,omitempty"`
}

// ResolveDates expands an incident into the dates it occupies, by
// type-specific rule. An unparsable start date yields an empty
// resolution, logged, never an abort.
func ResolveDates(inc model.Incident, cal calendar.Calendar, p model.Person, logger *zap.Logger) Resolution {
	start, err := calendar.ParseDate(inc.StartDate)
	if err != nil {
		logger.Warn("Cannot resolve incident dates",
			zap.String("incident_id", inc.ID),
			zap.String("type", string(inc.Type)),
			zap.String("start_date", inc.StartDate),
			zap.Error(err))
		return Resolution{Dates: []string{}}
	}

	switch inc.Type {
	case model.IncidentLicencia:
		return resolveLicencia(start, inc.Duration, p)
	case model.IncidentVacaciones:
		return resolveVacaciones(start, inc.Duration, cal, p)
	default:
		return Resolution{
			Dates:      []string{inc.StartDate},
			Start:      inc.StartDate,
			End:        inc.StartDate,
			ReturnDate: calendar.FormatDate(start.AddDate(0, 0, 1)),
		}
	}
}

// resolveLicencia expands a contiguous run of calendar days regardless of
// weekday or holiday. The return day is the next day that is not a
// base-off day; holidays are permitted to count as the return day.
func resolveLicencia(start time.Time, duration int, p model.Person) Resolution {
	if duration < 1 {
		duration = 1
	}

	dates := make([]string, 0, duration)
	for i := 0; i < duration; i++ {
		dates = append(dates, calendar.FormatDate(start.AddDate(0, 0, i)))
	}
	end := start.AddDate(0, 0, duration-1)

	ret := end.AddDate(0, 0, 1)
	for i := 0; i < returnScanBound && p.BaseSchedule.IsOff(ret.Weekday()); i++ {
		ret = ret.AddDate(0, 0, 1)
	}

	return Resolution{
		Dates:      dates,
		Start:      calendar.FormatDate(start),
		End:        calendar.FormatDate(end),
		ReturnDate: calendar.FormatDate(ret),
	}
}

// resolveVacaciones scans forward day by day, counting a day only if it
// is neither a holiday nor a base-off day for the person, until duration
// such days are accumulated. The scan is bounded at duration*3+30 days
// as a safety cutoff. The return day is the next working, non-holiday
// day after the last counted date.
func resolveVacaciones(start time.Time, duration int, cal calendar.Calendar, p model.Person) Resolution {
	if duration < 1 {
		duration = 1
	}
	maxScan := duration*3 + 30

	dates := make([]string, 0, duration)
	cursor := start
	var last time.Time
	for i := 0; i < maxScan && len(dates) < duration; i++ {
		date := calendar.FormatDate(cursor)
		if !cal.IsHoliday(date) && !p.BaseSchedule.IsOff(cursor.Weekday()) {
			dates = append(dates, date)
			last = cursor
		}
		cursor = cursor.AddDate(0, 0, 1)
	}

	if len(dates) == 0 {
		return Resolution{Dates: []string{}}
	}

	ret := last.AddDate(0, 0, 1)
	for i := 0; i < returnScanBound; i++ {
		retDate := calendar.FormatDate(ret)
		if !cal.IsHoliday(retDate) && !p.BaseSchedule.IsOff(ret.Weekday()) {
			break
		}
		ret = ret.AddDate(0, 0, 1)
	}

	return Resolution{
		Dates:      dates,
		Start:      dates[0],
		End:        dates[len(dates)-1],
		ReturnDate: calendar.FormatDate(ret),
	}
}

// Blocks reports whether a blocking incident (VACACIONES/LICENCIA)
// occupies the given date.
func Blocks(inc model.Incident, date string, cal calendar.Calendar, p model.Person, logger *zap.Logger) bool {
	if !inc.Type.IsBlocking() {
		return false
	}
	res := ResolveDates(inc, cal, p, logger)
	for _, d := range res.Dates {
		if d == date {
			return true
		}
	}
	return false
}
