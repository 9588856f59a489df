// Package responsibility determines who is disciplinarily accountable
// for an unfilled shift slot.
package responsibility

import (
	"github.com/centroops/guardia/pkg/core/model"
)

// Resolve determines responsibility for an absence on a slot. The
// branches are exhaustive and the resolver never fabricates a
// responsible party outside them:
//
//  1. no plan entry for the person-day → UNASSIGNED(NO_RESPONSIBLE)
//  2. active coverage record for (date, shift, covered=clicked) whose
//     covering person still exists → RESOLVED(covering, owner=clicked,
//     COVERAGE); covering person gone → UNASSIGNED(COVERAGE_FAILED)
//  3. plan entry carries a covered badge with no backing record →
//     UNASSIGNED(COVERAGE_FAILED), a badge/record inconsistency
//  4. otherwise → RESOLVED(clicked, owner=clicked, BASE)
func Resolve(
	clickedPersonID, date string,
	shift model.Shift,
	plan model.Plan,
	records []model.CoverageRecord,
	people []model.Person,
) model.ResponsibilityResolution {
	entry, ok := plan.Entry(clickedPersonID, date)
	if !ok {
		return model.Unassigned(model.ReasonNoResponsible)
	}

	if record, found := activeRecord(records, date, shift, clickedPersonID); found {
		if !personExists(people, record.CoveringPersonID) {
			return model.Unassigned(model.ReasonCoverageFailed)
		}
		return model.Resolved(record.CoveringPersonID, clickedPersonID, model.SourceCoverage)
	}

	if entry.CoveredBadge {
		// The presentation claims the slot is covered but the
		// authoritative record list disagrees.
		return model.Unassigned(model.ReasonCoverageFailed)
	}

	return model.Resolved(clickedPersonID, clickedPersonID, model.SourceBase)
}

func activeRecord(records []model.CoverageRecord, date string, shift model.Shift, coveredID string) (model.CoverageRecord, bool) {
	for _, r := range records {
		if r.Active && r.Date == date && r.Shift == shift && r.CoveredPersonID == coveredID {
			return r, true
		}
	}
	return model.CoverageRecord{}, false
}

func personExists(people []model.Person, id string) bool {
	for _, p := range people {
		if p.ID == id {
			return true
		}
	}
	return false
}
