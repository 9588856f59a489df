// Package exchange replays peer-to-peer shift exchanges over the base
// plan and validates proposed operations against the result.
//
// The design is two-phase: BuildContexts is descriptive (it reports what
// the stored exchanges produce, without judging them) and the validators
// are prescriptive. Callers MUST run ValidateOperation and
// ValidateNoConflict before persisting an exchange; the builder alone
// does not reject a second COVER onto an already-effective shift.
package exchange

import (
	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/incident"
	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/schedule"
)

// BuildContexts derives, for every person, the real (post-exchange)
// shift set and blocked status on a date. Nominal base shifts come from
// the plan entry when one exists, otherwise from the person's
// capabilities. Blocked people (a VACACIONES/LICENCIA covering the day)
// keep an empty effective set and are skipped by the replay.
func BuildContexts(
	date string,
	people []model.Person,
	plan model.Plan,
	incidents []model.Incident,
	exchanges []model.Exchange,
	cal calendar.Calendar,
	logger *zap.Logger,
) map[string]model.EffectiveSwapContext {
	base := make(map[string]model.ShiftSet, len(people))
	blocked := make(map[string]bool, len(people))

	for _, p := range people {
		base[p.ID] = nominalShifts(p, date, plan, logger)
		blocked[p.ID] = isBlocked(p, date, incidents, cal, logger)
	}

	current := make(map[string]model.ShiftSet, len(people))
	for id, set := range base {
		if blocked[id] {
			current[id] = 0
		} else {
			current[id] = set
		}
	}

	// Replay in stored order: intentionally order-sensitive and
	// last-write-wins per shift slot.
	for _, e := range model.ExchangesForDate(exchanges, date) {
		replay(e, current, blocked)
	}

	contexts := make(map[string]model.EffectiveSwapContext, len(people))
	for _, p := range people {
		contexts[p.ID] = model.EffectiveSwapContext{
			PersonID:        p.ID,
			EffectiveShifts: current[p.ID],
			BaseShifts:      base[p.ID],
			IsBlocked:       blocked[p.ID],
		}
	}
	return contexts
}

// replay applies one exchange to the working shift sets. COVER removes
// the shift from the covered person if present and adds it to the
// covering person unconditionally; DOUBLE adds; SWAP removes and adds
// per side, each a no-op when the precondition shift isn't held.
func replay(e model.Exchange, current map[string]model.ShiftSet, blocked map[string]bool) {
	switch e.Kind {
	case model.ExchangeCover:
		if !blocked[e.FromPersonID] && current[e.FromPersonID].Has(e.Shift) {
			current[e.FromPersonID] = current[e.FromPersonID].Without(e.Shift)
		}
		if !blocked[e.ToPersonID] {
			current[e.ToPersonID] = current[e.ToPersonID].With(e.Shift)
		}
	case model.ExchangeDouble:
		if !blocked[e.PersonID] {
			current[e.PersonID] = current[e.PersonID].With(e.Shift)
		}
	case model.ExchangeSwap:
		if !blocked[e.FromPersonID] && current[e.FromPersonID].Has(e.FromShift) {
			current[e.FromPersonID] = current[e.FromPersonID].Without(e.FromShift).With(e.ToShift)
		}
		if !blocked[e.ToPersonID] && current[e.ToPersonID].Has(e.ToShift) {
			current[e.ToPersonID] = current[e.ToPersonID].Without(e.ToShift).With(e.FromShift)
		}
	}
}

// nominalShifts reads the plan cell for the person-day, falling back to
// capability-derived shifts when the plan has no entry for the cell.
func nominalShifts(p model.Person, date string, plan model.Plan, logger *zap.Logger) model.ShiftSet {
	if entry, ok := plan.Entry(p.ID, date); ok {
		return entry.Assignment.ShiftSet()
	}
	return schedule.Capabilities(p, date, logger)
}

func isBlocked(p model.Person, date string, incidents []model.Incident, cal calendar.Calendar, logger *zap.Logger) bool {
	for _, inc := range incidents {
		if inc.PersonID != p.ID {
			continue
		}
		if incident.Blocks(inc, date, cal, p, logger) {
			return true
		}
	}
	return false
}
