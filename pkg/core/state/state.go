// Package state holds the aggregate planning state and its transitions.
// Every transition is a pure function (State, ...) → State that never
// aliases mutable parts of its input, so callers can hold a snapshot and
// install the new value atomically.
package state

import (
	"github.com/centroops/guardia/pkg/core/model"
)

// SchemaVersion is bumped on any breaking change to the persisted state
// shape. A stored record with an older version is discarded on load and
// replaced with Default().
const SchemaVersion = 3

// Default returns a freshly constructed empty state at the current
// schema version.
func Default() model.State {
	return model.State{
		SchemaVersion:     SchemaVersion,
		People:            []model.Person{},
		Incidents:         []model.Incident{},
		CalendarOverrides: []model.CalendarDay{},
		CoverageRules:     []model.CoverageRule{},
		Exchanges:         []model.Exchange{},
		CoverageRecords:   []model.CoverageRecord{},
		Plan:              model.Plan{},
		AuditLog:          []model.AuditEvent{},
	}
}

// Normalize defaults missing sub-collections to empty rather than
// treating them as corruption. Used after deserialization.
func Normalize(s model.State) model.State {
	if s.People == nil {
		s.People = []model.Person{}
	}
	if s.Incidents == nil {
		s.Incidents = []model.Incident{}
	}
	if s.CalendarOverrides == nil {
		s.CalendarOverrides = []model.CalendarDay{}
	}
	if s.CoverageRules == nil {
		s.CoverageRules = []model.CoverageRule{}
	}
	if s.Exchanges == nil {
		s.Exchanges = []model.Exchange{}
	}
	if s.CoverageRecords == nil {
		s.CoverageRecords = []model.CoverageRecord{}
	}
	if s.Plan == nil {
		s.Plan = model.Plan{}
	}
	if s.AuditLog == nil {
		s.AuditLog = []model.AuditEvent{}
	}
	return s
}

// clone deep-copies the slices and map of a state so that a transition
// on the copy cannot be observed through the original.
func clone(s model.State) model.State {
	next := s
	next.People = append([]model.Person(nil), s.People...)
	next.Incidents = append([]model.Incident(nil), s.Incidents...)
	next.CalendarOverrides = append([]model.CalendarDay(nil), s.CalendarOverrides...)
	next.CoverageRules = append([]model.CoverageRule(nil), s.CoverageRules...)
	next.Exchanges = append([]model.Exchange(nil), s.Exchanges...)
	next.CoverageRecords = append([]model.CoverageRecord(nil), s.CoverageRecords...)
	next.Plan = make(model.Plan, len(s.Plan))
	for k, v := range s.Plan {
		next.Plan[k] = v
	}
	next.AuditLog = append([]model.AuditEvent(nil), s.AuditLog...)
	return next
}

// AddPerson appends a person and audits the change.
func AddPerson(s model.State, p model.Person, actor string) model.State {
	next := clone(s)
	next.People = append(next.People, p)
	return RecordEvent(next, AuditInput{
		Actor:  actor,
		Action: "person.add",
		Target: p.ID,
		Change: p.Name,
	})
}

// AddIncident appends an incident and audits the change.
func AddIncident(s model.State, inc model.Incident, actor string) model.State {
	next := clone(s)
	next.Incidents = append(next.Incidents, inc)
	return RecordEvent(next, AuditInput{
		Actor:   actor,
		Action:  "incident.add",
		Target:  inc.ID,
		Change:  string(inc.Type),
		Context: inc.PersonID + " " + inc.StartDate,
	})
}

// RemoveIncident deletes an incident by id. Incidents are immutable
// after creation; deletion is the only permitted mutation.
func RemoveIncident(s model.State, incidentID, actor string) model.State {
	next := clone(s)
	kept := next.Incidents[:0]
	for _, inc := range next.Incidents {
		if inc.ID != incidentID {
			kept = append(kept, inc)
		}
	}
	next.Incidents = kept
	return RecordEvent(next, AuditInput{
		Actor:  actor,
		Action: "incident.remove",
		Target: incidentID,
	})
}

// AddExchange appends an exchange and audits the change. Validation must
// have happened before this point; the transition does not re-check.
func AddExchange(s model.State, e model.Exchange, actor string) model.State {
	next := clone(s)
	next.Exchanges = append(next.Exchanges, e)
	return RecordEvent(next, AuditInput{
		Actor:   actor,
		Action:  "exchange.add",
		Target:  e.ID,
		Change:  string(e.Kind),
		Context: e.Date,
	})
}

// UpsertCoverageRule replaces a rule by id, or appends when absent.
func UpsertCoverageRule(s model.State, rule model.CoverageRule, actor string) model.State {
	next := clone(s)
	replaced := false
	for i := range next.CoverageRules {
		if next.CoverageRules[i].ID == rule.ID {
			next.CoverageRules[i] = rule
			replaced = true
			break
		}
	}
	if !replaced {
		next.CoverageRules = append(next.CoverageRules, rule)
	}

	action := "rule.add"
	if replaced {
		action = "rule.update"
	}
	return RecordEvent(next, AuditInput{
		Actor:  actor,
		Action: action,
		Target: rule.ID,
		Change: string(rule.Scope),
	})
}

// SetPlanEntry sets one person-day cell of the nominal plan.
func SetPlanEntry(s model.State, entry model.PlanEntry, actor string) model.State {
	next := clone(s)
	next.Plan = next.Plan.WithEntry(entry)
	return RecordEvent(next, AuditInput{
		Actor:   actor,
		Action:  "plan.set",
		Target:  model.PlanKey(entry.PersonID, entry.Date),
		Change:  entry.Assignment.String(),
		Context: entry.Date,
	})
}

// AddCoverageRecord appends an authoritative coverage record.
func AddCoverageRecord(s model.State, record model.CoverageRecord, actor string) model.State {
	next := clone(s)
	next.CoverageRecords = append(next.CoverageRecords, record)
	return RecordEvent(next, AuditInput{
		Actor:   actor,
		Action:  "coverage.record",
		Target:  record.ID,
		Change:  record.CoveringPersonID + " cubre a " + record.CoveredPersonID,
		Context: record.Date + " " + string(record.Shift),
	})
}
