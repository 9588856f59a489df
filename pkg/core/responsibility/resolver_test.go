package responsibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/centroops/guardia/pkg/core/model"
)

const testDate = "2025-06-03"

func planWith(entries ...model.PlanEntry) model.Plan {
	p := model.Plan{}
	for _, e := range entries {
		p = p.WithEntry(e)
	}
	return p
}

func people(ids ...string) []model.Person {
	out := make([]model.Person, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Person{ID: id, Name: id, Active: true})
	}
	return out
}

func TestResolve_NoPlanEntry(t *testing.T) {
	got := Resolve("luz", testDate, model.ShiftDay, model.Plan{}, nil, people("luz"))

	assert.Equal(t, model.ResolutionUnassigned, got.Kind)
	assert.Equal(t, model.ReasonNoResponsible, got.Reason)
}

func TestResolve_CoveredSlotTargetsCoveringPerson(t *testing.T) {
	// Emely covers Luz's day shift. Clicking Luz's slot must land the
	// incident on Emely, with Luz recorded as the slot owner.
	plan := planWith(model.PlanEntry{
		PersonID:     "luz",
		Date:         testDate,
		Assignment:   model.SingleAssignment(model.ShiftDay),
		CoveredBadge: true,
	})
	records := []model.CoverageRecord{
		{ID: "c1", Date: testDate, Shift: model.ShiftDay, CoveredPersonID: "luz", CoveringPersonID: "emely", Active: true},
	}

	got := Resolve("luz", testDate, model.ShiftDay, plan, records, people("luz", "emely"))

	assert.Equal(t, model.ResolutionResolved, got.Kind)
	assert.Equal(t, "emely", got.TargetPersonID)
	assert.Equal(t, "luz", got.SlotOwnerID)
	assert.Equal(t, model.SourceCoverage, got.Source)
}

func TestResolve_CoveringPersonGone(t *testing.T) {
	plan := planWith(model.PlanEntry{
		PersonID:     "luz",
		Date:         testDate,
		Assignment:   model.SingleAssignment(model.ShiftDay),
		CoveredBadge: true,
	})
	records := []model.CoverageRecord{
		{ID: "c1", Date: testDate, Shift: model.ShiftDay, CoveredPersonID: "luz", CoveringPersonID: "emely", Active: true},
	}

	got := Resolve("luz", testDate, model.ShiftDay, plan, records, people("luz"))

	assert.Equal(t, model.ResolutionUnassigned, got.Kind)
	assert.Equal(t, model.ReasonCoverageFailed, got.Reason)
}

func TestResolve_InactiveRecordIsIgnored(t *testing.T) {
	plan := planWith(model.PlanEntry{
		PersonID:   "luz",
		Date:       testDate,
		Assignment: model.SingleAssignment(model.ShiftDay),
	})
	records := []model.CoverageRecord{
		{ID: "c1", Date: testDate, Shift: model.ShiftDay, CoveredPersonID: "luz", CoveringPersonID: "emely", Active: false},
	}

	got := Resolve("luz", testDate, model.ShiftDay, plan, records, people("luz", "emely"))

	assert.Equal(t, model.ResolutionResolved, got.Kind)
	assert.Equal(t, "luz", got.TargetPersonID)
	assert.Equal(t, model.SourceBase, got.Source)
}

func TestResolve_RecordMustMatchShift(t *testing.T) {
	plan := planWith(model.PlanEntry{
		PersonID:   "luz",
		Date:       testDate,
		Assignment: model.BothAssignment(),
	})
	records := []model.CoverageRecord{
		{ID: "c1", Date: testDate, Shift: model.ShiftNight, CoveredPersonID: "luz", CoveringPersonID: "emely", Active: true},
	}

	// The night record doesn't apply to the day slot.
	got := Resolve("luz", testDate, model.ShiftDay, plan, records, people("luz", "emely"))

	assert.Equal(t, model.ResolutionResolved, got.Kind)
	assert.Equal(t, "luz", got.TargetPersonID)
	assert.Equal(t, model.SourceBase, got.Source)
}

func TestResolve_BadgeWithoutRecord(t *testing.T) {
	plan := planWith(model.PlanEntry{
		PersonID:     "luz",
		Date:         testDate,
		Assignment:   model.SingleAssignment(model.ShiftDay),
		CoveredBadge: true,
	})

	got := Resolve("luz", testDate, model.ShiftDay, plan, nil, people("luz"))

	assert.Equal(t, model.ResolutionUnassigned, got.Kind)
	assert.Equal(t, model.ReasonCoverageFailed, got.Reason)
}

func TestResolve_PlainSlotTargetsOwner(t *testing.T) {
	plan := planWith(model.PlanEntry{
		PersonID:   "luz",
		Date:       testDate,
		Assignment: model.SingleAssignment(model.ShiftDay),
	})

	got := Resolve("luz", testDate, model.ShiftDay, plan, nil, people("luz"))

	assert.Equal(t, model.ResolutionResolved, got.Kind)
	assert.Equal(t, "luz", got.TargetPersonID)
	assert.Equal(t, "luz", got.SlotOwnerID)
	assert.Equal(t, model.SourceBase, got.Source)
}
