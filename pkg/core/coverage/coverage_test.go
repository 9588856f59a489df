package coverage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/schedule"
)

func fullWeek() model.BaseSchedule {
	var b model.BaseSchedule
	for i := range b {
		b[i] = model.DayWorking
	}
	return b
}

func person(id string, shift model.Shift, mix model.MixProfile) model.Person {
	return model.Person{ID: id, Name: id, BaseShift: shift, BaseSchedule: fullWeek(), MixProfile: mix, Active: true}
}

func TestDailyCoverage_CountsByAssignment(t *testing.T) {
	// 2025-06-03 is a Tuesday, so the WEEKDAY mix counts on both shifts.
	people := []model.Person{
		person("d1", model.ShiftDay, model.MixNone),
		person("d2", model.ShiftDay, model.MixNone),
		person("n1", model.ShiftNight, model.MixNone),
		person("m1", model.ShiftDay, model.MixWeekday),
	}

	got := DailyCoverage("2025-06-03", people, nil, zap.NewNop())
	assert.Equal(t, model.ShiftCount{Day: 3, Night: 2}, got)
}

func TestDailyCoverage_SkipsInactive(t *testing.T) {
	inactive := person("d1", model.ShiftDay, model.MixNone)
	inactive.Active = false

	got := DailyCoverage("2025-06-03", []model.Person{inactive}, nil, zap.NewNop())
	assert.Equal(t, model.ShiftCount{}, got)
}

func TestDailyCoverage_UnavailableContextRemovesPerson(t *testing.T) {
	people := []model.Person{
		person("d1", model.ShiftDay, model.MixNone),
		person("d2", model.ShiftDay, model.MixNone),
	}
	contexts := map[string]schedule.AssignmentContext{
		"d1": {Date: "2025-06-03", Availability: schedule.Unavailable},
	}

	got := DailyCoverage("2025-06-03", people, contexts, zap.NewNop())
	assert.Equal(t, model.ShiftCount{Day: 1, Night: 0}, got)
}

func TestDailyCoverage_OverrideMovesPersonAcrossShifts(t *testing.T) {
	override := model.SingleAssignment(model.ShiftNight)
	people := []model.Person{person("d1", model.ShiftDay, model.MixNone)}
	contexts := map[string]schedule.AssignmentContext{
		"d1": {Date: "2025-06-03", Availability: schedule.Available, ForceOverride: &override},
	}

	got := DailyCoverage("2025-06-03", people, contexts, zap.NewNop())
	assert.Equal(t, model.ShiftCount{Day: 0, Night: 1}, got)
}

func TestApplyExchanges_CoverAndSwapAreNeutral(t *testing.T) {
	cov := model.ShiftCount{Day: 5, Night: 2}

	got := ApplyExchanges(cov, []model.Exchange{
		{Kind: model.ExchangeCover, Date: "2025-06-03", Shift: model.ShiftDay, FromPersonID: "a", ToPersonID: "b"},
		{Kind: model.ExchangeSwap, Date: "2025-06-03", FromPersonID: "a", FromShift: model.ShiftDay, ToPersonID: "c", ToShift: model.ShiftNight},
	})

	assert.Equal(t, model.ShiftCount{Day: 5, Night: 2}, got)
}

func TestApplyExchanges_DoubleAddsOne(t *testing.T) {
	cov := model.ShiftCount{Day: 5, Night: 2}

	got := ApplyExchanges(cov, []model.Exchange{
		{Kind: model.ExchangeDouble, Date: "2025-06-03", Shift: model.ShiftNight, PersonID: "a"},
	})

	assert.Equal(t, model.ShiftCount{Day: 5, Night: 3}, got)
}

func TestResolveRequired_Precedence(t *testing.T) {
	rules := []model.CoverageRule{
		{ID: "g", Scope: model.ScopeGlobal, Required: 1},
		{ID: "s", Scope: model.ScopeShift, Shift: model.ShiftNight, Required: 2},
		{ID: "w", Scope: model.ScopeWeekday, Weekday: time.Thursday, Required: 3},
		{ID: "ws", Scope: model.ScopeWeekday, Weekday: time.Thursday, Shift: model.ShiftNight, Required: 4},
		{ID: "d", Scope: model.ScopeDate, Date: "2025-12-25", Required: 5, Label: "Navidad"},
	}

	tests := []struct {
		name         string
		date         string
		shift        model.Shift
		wantRequired int
		wantRuleID   string
	}{
		// 2025-12-25 is a Thursday: the DATE rule outranks every
		// weekday and shift rule that also matches.
		{"date rule wins", "2025-12-25", model.ShiftNight, 5, "d"},
		{"weekday+shift over weekday", "2025-12-18", model.ShiftNight, 4, "ws"},
		{"weekday over shift", "2025-12-18", model.ShiftDay, 3, "w"},
		{"shift over global", "2025-12-19", model.ShiftNight, 2, "s"},
		{"global fallback", "2025-12-19", model.ShiftDay, 1, "g"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := ResolveRequired(tc.date, tc.shift, rules)
			assert.Equal(t, tc.wantRequired, res.Required)
			assert.Equal(t, tc.wantRuleID, res.RuleID)
		})
	}
}

func TestResolveRequired_NoRuleDefaultsToZero(t *testing.T) {
	res := ResolveRequired("2025-06-03", model.ShiftDay, nil)
	assert.Equal(t, 0, res.Required)
	assert.Equal(t, RequiredSourceDefault, res.Source)
}

func TestResolveRequired_FirstMatchInTierWins(t *testing.T) {
	rules := []model.CoverageRule{
		{ID: "g1", Scope: model.ScopeGlobal, Required: 2},
		{ID: "g2", Scope: model.ScopeGlobal, Required: 9},
	}

	res := ResolveRequired("2025-06-03", model.ShiftDay, rules)
	assert.Equal(t, "g1", res.RuleID)
	assert.Equal(t, 2, res.Required)
}

func TestDeficit(t *testing.T) {
	rules := []model.CoverageRule{
		{ID: "sd", Scope: model.ScopeShift, Shift: model.ShiftDay, Required: 4},
		{ID: "sn", Scope: model.ScopeShift, Shift: model.ShiftNight, Required: 2},
	}

	report := Deficit("2025-06-03", model.ShiftCount{Day: 3, Night: 2}, rules)

	assert.Equal(t, ShiftDeficit{Required: 4, Actual: 3, Deficit: 1}, report.Day)
	assert.Equal(t, ShiftDeficit{Required: 2, Actual: 2, Deficit: 0}, report.Night)
	assert.True(t, report.HasRisk)
}

func TestDeficit_SurplusIsNotRisk(t *testing.T) {
	rules := []model.CoverageRule{{ID: "g", Scope: model.ScopeGlobal, Required: 1}}

	report := Deficit("2025-06-03", model.ShiftCount{Day: 5, Night: 2}, rules)
	assert.False(t, report.HasRisk)
	assert.Equal(t, 0, report.Day.Deficit)
}
