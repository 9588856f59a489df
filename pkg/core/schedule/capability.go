// Package schedule resolves what shifts a person is capable of working
// and what they are nominally assigned on a date.
package schedule

import (
	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/model"
)

// Capabilities returns the shifts a person is capable of working on a
// date, from base schedule plus mix profile. A base-schedule off day
// always wins, even over a matching mix profile. An invalid date is
// logged and degrades to the empty set so one bad record cannot crash a
// whole day's computation.
func Capabilities(p model.Person, date string, logger *zap.Logger) model.ShiftSet {
	t, err := calendar.ParseDate(date)
	if err != nil {
		logger.Warn("Cannot resolve capabilities for invalid date",
			zap.String("person_id", p.ID),
			zap.String("date", date),
			zap.Error(err))
		return 0
	}

	if p.BaseSchedule.IsOff(t.Weekday()) {
		return 0
	}

	if p.MixProfile != model.MixNone && p.MixProfile.Matches(t.Weekday()) {
		return model.NewShiftSet(model.ShiftDay, model.ShiftNight)
	}

	return model.NewShiftSet(p.BaseShift)
}

// Availability is the context availability flag fed into assignment
// resolution.
type Availability string

const (
	Available   Availability = "AVAILABLE"
	Unavailable Availability = "UNAVAILABLE"
)

// AssignmentContext carries the per-person-day inputs that outrank
// capability: an availability verdict (from blocking incidents) and an
// optional explicit force-override.
type AssignmentContext struct {
	Date          string
	Availability  Availability
	ForceOverride *model.ShiftAssignment
}

// EffectiveAssignment combines availability, explicit override, and
// capability into a single verdict. The priority order is absolute:
// unavailable wins over everything, then a force-override is returned
// verbatim, then the assignment is derived from capabilities.
func EffectiveAssignment(p model.Person, ctx AssignmentContext, logger *zap.Logger) model.ShiftAssignment {
	if ctx.Availability == Unavailable {
		return model.NoAssignment()
	}

	if ctx.ForceOverride != nil {
		return *ctx.ForceOverride
	}

	return model.AssignmentFromSet(Capabilities(p, ctx.Date, logger))
}
