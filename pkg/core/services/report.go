package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/coverage"
	"github.com/centroops/guardia/pkg/core/exchange"
	"github.com/centroops/guardia/pkg/core/incident"
	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/responsibility"
	"github.com/centroops/guardia/pkg/core/schedule"
	"github.com/centroops/guardia/pkg/db"
)

// Report is the daily staffing picture: nominal coverage, coverage with
// exchanges applied, and the deficit verdict.
type Report struct {
	Date          string                                `json:"date"`
	Coverage      model.ShiftCount                      `json:"coverage"`
	WithExchanges model.ShiftCount                      `json:"withExchanges"`
	Deficit       coverage.DeficitReport                `json:"deficit"`
	Contexts      map[string]model.EffectiveSwapContext `json:"contexts"`
}

// CoverageReport computes the full read projection for a date.
func CoverageReport(ctx context.Context, store db.StateStore, logger *zap.Logger, date string) (*Report, error) {
	if _, err := calendar.ParseDate(date); err != nil {
		return nil, err
	}

	current, err := store.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	cal := calendar.New(current.CalendarOverrides)

	// A duplicate claim among the stored exchanges means one was
	// persisted without validation; aborting beats reporting numbers
	// built on a corrupt day.
	exchange.AssertNoDuplicateClaims(date, current.People, current.Plan,
		current.Incidents, current.Exchanges, cal, logger)

	contexts := assignmentContexts(date, current, cal, logger)
	cov := coverage.DailyCoverage(date, current.People, contexts, logger)
	applied := coverage.ApplyExchanges(cov, model.ExchangesForDate(current.Exchanges, date))
	deficit := coverage.Deficit(date, applied, current.CoverageRules)

	swapContexts := exchange.BuildContexts(date, current.People, current.Plan,
		current.Incidents, current.Exchanges, cal, logger)

	logger.Info("Coverage computed",
		zap.String("date", date),
		zap.Int("day", applied.Day),
		zap.Int("night", applied.Night),
		zap.Bool("has_risk", deficit.HasRisk))

	return &Report{
		Date:          date,
		Coverage:      cov,
		WithExchanges: applied,
		Deficit:       deficit,
		Contexts:      swapContexts,
	}, nil
}

// assignmentContexts derives the per-person assignment inputs for a
// date: blocked people are unavailable, and an existing plan cell acts
// as the explicit force-override.
func assignmentContexts(date string, st model.State, cal calendar.Calendar, logger *zap.Logger) map[string]schedule.AssignmentContext {
	contexts := make(map[string]schedule.AssignmentContext, len(st.People))

	for _, p := range st.People {
		actx := schedule.AssignmentContext{Date: date, Availability: schedule.Available}

		for _, inc := range st.Incidents {
			if inc.PersonID == p.ID && incident.Blocks(inc, date, cal, p, logger) {
				actx.Availability = schedule.Unavailable
				break
			}
		}

		if entry, ok := st.Plan.Entry(p.ID, date); ok {
			override := entry.Assignment
			actx.ForceOverride = &override
		}

		contexts[p.ID] = actx
	}

	return contexts
}

// ResolveResponsibility answers who bears disciplinary responsibility
// for an absence on a slot.
func ResolveResponsibility(
	ctx context.Context,
	store db.StateStore,
	logger *zap.Logger,
	personID, date string,
	shift model.Shift,
) (model.ResponsibilityResolution, error) {
	current, err := store.LoadState(ctx)
	if err != nil {
		return model.ResponsibilityResolution{}, fmt.Errorf("failed to load state: %w", err)
	}

	resolution := responsibility.Resolve(personID, date, shift, current.Plan,
		current.CoverageRecords, current.People)

	logger.Info("Responsibility resolved",
		zap.String("person_id", personID),
		zap.String("date", date),
		zap.String("shift", string(shift)),
		zap.String("kind", string(resolution.Kind)))

	return resolution, nil
}
