package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all calendar dates in the system.
const DateLayout = "2006-01-02"

type Shift string

const (
	ShiftDay   Shift = "DAY"
	ShiftNight Shift = "NIGHT"
)

func (s Shift) IsValid() bool {
	return s == ShiftDay || s == ShiftNight
}

// Other returns the opposite shift.
func (s Shift) Other() Shift {
	if s == ShiftDay {
		return ShiftNight
	}
	return ShiftDay
}

// DayState is the state of a weekday in a person's base schedule.
type DayState string

const (
	DayWorking DayState = "WORKING"
	DayOff     DayState = "OFF"
)

// MixProfile lets a person work either shift on a class of days.
type MixProfile string

const (
	MixNone    MixProfile = ""
	MixWeekday MixProfile = "WEEKDAY" // Mon-Thu
	MixWeekend MixProfile = "WEEKEND" // Fri-Sun
)

// Matches reports whether the weekday falls in the profile's day class.
func (m MixProfile) Matches(wd time.Weekday) bool {
	switch m {
	case MixWeekday:
		return wd >= time.Monday && wd <= time.Thursday
	case MixWeekend:
		return wd == time.Friday || wd == time.Saturday || wd == time.Sunday
	default:
		return false
	}
}

// BaseSchedule maps weekday (0 = Sunday .. 6 = Saturday) to WORKING/OFF.
type BaseSchedule [7]DayState

// IsOff reports whether the weekday is an off day. An unset entry counts
// as working so that a partially filled schedule doesn't hide people.
func (b BaseSchedule) IsOff(wd time.Weekday) bool {
	return b[int(wd)] == DayOff
}

// Person represents a staffed individual with a recurring weekly schedule.
// Immutable once referenced by historical records except administrative edits.
type Person struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	BaseShift    Shift        `json:"baseShift"`
	BaseSchedule BaseSchedule `json:"baseSchedule"`
	MixProfile   MixProfile   `json:"mixProfile,omitempty"`
	Active       bool         `json:"active"`
	OrderIndex   int          `json:"orderIndex"`
}

// DayKind classifies a calendar day.
type DayKind string

const (
	DayKindWorking DayKind = "WORKING"
	DayKindHoliday DayKind = "HOLIDAY"
)

// CalendarDay is derived metadata for a date. Recomputed from the holiday
// override list, never owned by any entity.
type CalendarDay struct {
	Date      string       `json:"date"`
	Weekday   time.Weekday `json:"weekday"`
	Kind      DayKind      `json:"kind"`
	IsSpecial bool         `json:"isSpecial,omitempty"`
	Label     string       `json:"label,omitempty"`
}

type IncidentType string

const (
	IncidentTardanza   IncidentType = "TARDANZA"
	IncidentAusencia   IncidentType = "AUSENCIA"
	IncidentError      IncidentType = "ERROR"
	IncidentOtro       IncidentType = "OTRO"
	IncidentLicencia   IncidentType = "LICENCIA"
	IncidentVacaciones IncidentType = "VACACIONES"
	IncidentOverride   IncidentType = "OVERRIDE"
	IncidentSwap       IncidentType = "SWAP"
)

func (t IncidentType) IsValid() bool {
	switch t {
	case IncidentTardanza, IncidentAusencia, IncidentError, IncidentOtro,
		IncidentLicencia, IncidentVacaciones, IncidentOverride, IncidentSwap:
		return true
	}
	return false
}

// IsPunitive reports whether the type counts against a person's
// disciplinary standing. Punitive incidents cannot target future dates.
func (t IncidentType) IsPunitive() bool {
	switch t {
	case IncidentTardanza, IncidentAusencia, IncidentError, IncidentOtro, IncidentLicencia:
		return true
	}
	return false
}

// IsBlocking reports whether the type removes the person from duty for
// its resolved dates.
func (t IncidentType) IsBlocking() bool {
	return t == IncidentVacaciones || t == IncidentLicencia
}

// IncidentSource identifies which layer an incident originated from.
type IncidentSource string

const (
	SourceBase     IncidentSource = "BASE"
	SourceCoverage IncidentSource = "COVERAGE"
	SourceSwap     IncidentSource = "SWAP"
	SourceOverride IncidentSource = "OVERRIDE"
)

// DisciplinaryKeyBase marks an absence on the person's own slot. An
// absence on a slot they failed to cover uses "COVERAGE:<ownerId>".
const DisciplinaryKeyBase = "BASE"

// CoverageDisciplinaryKey builds the key for a failed-cover absence.
func CoverageDisciplinaryKey(ownerID string) string {
	return fmt.Sprintf("COVERAGE:%s", ownerID)
}

// Incident is a recorded event affecting a person's availability or
// disciplinary standing. Never mutated after creation except deletion.
type Incident struct {
	ID              string         `json:"id"`
	PersonID        string         `json:"personId"`
	Type            IncidentType   `json:"type"`
	StartDate       string         `json:"startDate"`
	Duration        int            `json:"duration"`
	Source          IncidentSource `json:"source,omitempty"`
	SlotOwnerID     string         `json:"slotOwnerId,omitempty"`
	DisciplinaryKey string         `json:"disciplinaryKey,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// RuleScope is the precedence tier of a coverage rule.
type RuleScope string

const (
	ScopeGlobal  RuleScope = "GLOBAL"
	ScopeShift   RuleScope = "SHIFT"
	ScopeDate    RuleScope = "DATE"
	ScopeWeekday RuleScope = "WEEKDAY"
)

// CoverageRule configures a minimum headcount. Shift is empty for GLOBAL
// and for WEEKDAY rules that apply to both shifts; Date is set only for
// DATE scope; Weekday is meaningful only for WEEKDAY scope.
type CoverageRule struct {
	ID       string       `json:"id"`
	Scope    RuleScope    `json:"scope"`
	Shift    Shift        `json:"shift,omitempty"`
	Date     string       `json:"date,omitempty"`
	Weekday  time.Weekday `json:"weekday,omitempty"`
	Required int          `json:"required"`
	Label    string       `json:"label,omitempty"`
}

// ShiftCount is a per-shift headcount.
type ShiftCount struct {
	Day   int `json:"DAY"`
	Night int `json:"NIGHT"`
}

// Of returns the counter for the given shift.
func (c ShiftCount) Of(s Shift) int {
	if s == ShiftDay {
		return c.Day
	}
	return c.Night
}

// EffectiveSwapContext is what a person is really doing on a day after
// blocking incidents and exchanges are applied. Derived, never persisted.
type EffectiveSwapContext struct {
	PersonID        string   `json:"personId"`
	EffectiveShifts ShiftSet `json:"effectiveShifts"`
	BaseShifts      ShiftSet `json:"baseShifts"`
	IsBlocked       bool     `json:"isBlocked"`
}

// CoverageRecord is the authoritative record that one person is covering
// another's slot on a date. A plan entry's covered badge without a
// matching active record is a data inconsistency.
type CoverageRecord struct {
	ID               string    `json:"id"`
	Date             string    `json:"date"`
	Shift            Shift     `json:"shift"`
	CoveredPersonID  string    `json:"coveredPersonId"`
	CoveringPersonID string    `json:"coveringPersonId"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"createdAt"`
}

// AuditEvent is an append-only log entry. The log is newest-first and is
// written only through state.RecordEvent.
type AuditEvent struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Target    string    `json:"target,omitempty"`
	Change    string    `json:"change,omitempty"`
	Context   string    `json:"context,omitempty"`
}

// State is the aggregate planning state. It has value semantics: every
// transition produces a new State and never aliases mutable parts of its
// input.
type State struct {
	SchemaVersion     int              `json:"schemaVersion"`
	People            []Person         `json:"people"`
	Incidents         []Incident       `json:"incidents"`
	CalendarOverrides []CalendarDay    `json:"calendarOverrides"`
	CoverageRules     []CoverageRule   `json:"coverageRules"`
	Exchanges         []Exchange       `json:"exchanges"`
	CoverageRecords   []CoverageRecord `json:"coverageRecords"`
	Plan              Plan             `json:"plan"`
	AuditLog          []AuditEvent     `json:"auditLog"`
}

// PersonByID finds a person in the state. Returns nil when absent.
func (s State) PersonByID(id string) *Person {
	for i := range s.People {
		if s.People[i].ID == id {
			return &s.People[i]
		}
	}
	return nil
}
