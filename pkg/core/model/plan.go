package model

import "fmt"

// PlanEntry is one person-day cell of the nominal plan. CoveredBadge is a
// presentation hint that the slot is covered; the authoritative source is
// the coverage record list.
type PlanEntry struct {
	PersonID     string          `json:"personId"`
	Date         string          `json:"date"`
	Assignment   ShiftAssignment `json:"assignment"`
	CoveredBadge bool            `json:"coveredBadge,omitempty"`
}

// Plan maps person-day cells to entries. Keys are built with PlanKey.
type Plan map[string]PlanEntry

// PlanKey builds the map key for a person-day cell.
func PlanKey(personID, date string) string {
	return fmt.Sprintf("%s|%s", personID, date)
}

// Entry looks up the cell for a person on a date.
func (p Plan) Entry(personID, date string) (PlanEntry, bool) {
	e, ok := p[PlanKey(personID, date)]
	return e, ok
}

// WithEntry returns a copy of the plan with the entry set. The receiver
// is never modified.
func (p Plan) WithEntry(e PlanEntry) Plan {
	next := make(Plan, len(p)+1)
	for k, v := range p {
		next[k] = v
	}
	next[PlanKey(e.PersonID, e.Date)] = e
	return next
}
