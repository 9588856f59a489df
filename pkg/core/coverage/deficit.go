package coverage

import (
	"fmt"
	"time"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/model"
)

// RequiredSourceDefault marks the fallback when no rule matches.
const RequiredSourceDefault = "DEFAULT"

// RequiredResolution explains which rule produced a required headcount.
type RequiredResolution struct {
	Required int    `json:"required"`
	Source   string `json:"source"`
	RuleID   string `json:"ruleId,omitempty"`
	Reason   string `json:"reason"`
}

// ResolveRequired applies the rule precedence for a date and shift:
// DATE > WEEKDAY+SHIFT > WEEKDAY > SHIFT > GLOBAL > default 0. The first
// match within a tier wins, so duplicate rules in a tier are survived
// rather than rejected.
func ResolveRequired(date string, shift model.Shift, rules []model.CoverageRule) RequiredResolution {
	weekday, weekdayKnown := weekdayOf(date)

	// DATE scope
	for _, r := range rules {
		if r.Scope == model.ScopeDate && r.Date == date && (r.Shift == "" || r.Shift == shift) {
			return resolution(r, fmt.Sprintf("regla para la fecha %s", date))
		}
	}

	if weekdayKnown {
		// WEEKDAY + shift
		for _, r := range rules {
			if r.Scope == model.ScopeWeekday && r.Weekday == weekday && r.Shift == shift {
				return resolution(r, fmt.Sprintf("regla para %s turno %s", weekday, shift))
			}
		}
		// WEEKDAY only
		for _, r := range rules {
			if r.Scope == model.ScopeWeekday && r.Weekday == weekday && r.Shift == "" {
				return resolution(r, fmt.Sprintf("regla para %s", weekday))
			}
		}
	}

	// SHIFT scope
	for _, r := range rules {
		if r.Scope == model.ScopeShift && r.Shift == shift {
			return resolution(r, fmt.Sprintf("regla del turno %s", shift))
		}
	}

	// GLOBAL scope
	for _, r := range rules {
		if r.Scope == model.ScopeGlobal {
			return resolution(r, "regla global")
		}
	}

	return RequiredResolution{
		Required: 0,
		Source:   RequiredSourceDefault,
		Reason:   "sin regla configurada",
	}
}

func resolution(r model.CoverageRule, reason string) RequiredResolution {
	return RequiredResolution{
		Required: r.Required,
		Source:   string(r.Scope),
		RuleID:   r.ID,
		Reason:   reason,
	}
}

func weekdayOf(date string) (time.Weekday, bool) {
	t, err := calendar.ParseDate(date)
	if err != nil {
		return 0, false
	}
	return t.Weekday(), true
}

// ShiftDeficit is the shortfall for one shift.
type ShiftDeficit struct {
	Required int `json:"required"`
	Actual   int `json:"actual"`
	Deficit  int `json:"deficit"`
}

// DeficitReport is the per-date staffing verdict.
type DeficitReport struct {
	Date    string       `json:"date"`
	Day     ShiftDeficit `json:"DAY"`
	Night   ShiftDeficit `json:"NIGHT"`
	HasRisk bool         `json:"hasRisk"`
}

// Deficit compares coverage against the resolved minimums for a date.
func Deficit(date string, cov model.ShiftCount, rules []model.CoverageRule) DeficitReport {
	report := DeficitReport{
		Date:  date,
		Day:   shiftDeficit(date, model.ShiftDay, cov.Day, rules),
		Night: shiftDeficit(date, model.ShiftNight, cov.Night, rules),
	}
	report.HasRisk = report.Day.Deficit > 0 || report.Night.Deficit > 0
	return report
}

func shiftDeficit(date string, shift model.Shift, actual int, rules []model.CoverageRule) ShiftDeficit {
	required := ResolveRequired(date, shift, rules).Required
	return ShiftDeficit{
		Required: required,
		Actual:   actual,
		Deficit:  max(0, required-actual),
	}
}
