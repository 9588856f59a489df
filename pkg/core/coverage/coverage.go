// Package coverage aggregates effective assignments into per-shift
// headcounts and compares them against configured minimums.
package coverage

import (
	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/schedule"
)

// DailyCoverage computes per-shift headcounts for a date. BOTH increments
// both counters, SINGLE one, NONE neither. Contexts are keyed by person
// id; a person without a context is treated as available with no
// override.
func DailyCoverage(date string, people []model.Person, contexts map[string]schedule.AssignmentContext, logger *zap.Logger) model.ShiftCount {
	var count model.ShiftCount

	for _, p := range people {
		if !p.Active {
			continue
		}

		ctx, ok := contexts[p.ID]
		if !ok {
			ctx = schedule.AssignmentContext{Date: date, Availability: schedule.Available}
		}

		set := schedule.EffectiveAssignment(p, ctx, logger).ShiftSet()
		if set.Has(model.ShiftDay) {
			count.Day++
		}
		if set.Has(model.ShiftNight) {
			count.Night++
		}
	}

	return count
}

// ApplyExchanges layers same-day exchanges onto aggregate counters.
// COVER and SWAP are headcount-neutral by construction (one person's
// loss is another's gain) and are not applied; DOUBLE adds one to its
// shift.
func ApplyExchanges(cov model.ShiftCount, exchanges []model.Exchange) model.ShiftCount {
	for _, e := range exchanges {
		if e.Kind != model.ExchangeDouble {
			continue
		}
		if e.Shift == model.ShiftDay {
			cov.Day++
		} else {
			cov.Night++
		}
	}
	return cov
}
