package incident

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/model"
)

func TestCanRegisterOnDate(t *testing.T) {
	tests := []struct {
		name     string
		typ      model.IncidentType
		date     string
		today    string
		wantOK   bool
		wantCode string
	}{
		{"punitive today", model.IncidentTardanza, "2025-06-03", "2025-06-03", true, ""},
		{"punitive past", model.IncidentAusencia, "2025-06-01", "2025-06-03", true, ""},
		{"punitive future", model.IncidentTardanza, "2025-06-04", "2025-06-03", false, CodeCannotRegisterInFuture},
		{"licencia future", model.IncidentLicencia, "2025-07-01", "2025-06-03", false, CodeCannotRegisterInFuture},
		{"vacation future", model.IncidentVacaciones, "2025-07-01", "2025-06-03", true, ""},
		{"bad target date", model.IncidentTardanza, "junk", "2025-06-03", false, CodeInvalidDate},
		{"bad today", model.IncidentTardanza, "2025-06-03", "junk", false, CodeInvalidDate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := CanRegisterOnDate(tc.typ, tc.date, tc.today)
			assert.Equal(t, tc.wantOK, res.OK)
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}
}

func testState(people []model.Person, incidents []model.Incident) model.State {
	return model.State{People: people, Incidents: incidents}
}

func activePerson(id, name string) model.Person {
	var b model.BaseSchedule
	for i := range b {
		b[i] = model.DayWorking
	}
	b[int(time.Saturday)] = model.DayOff
	b[int(time.Sunday)] = model.DayOff
	return model.Person{ID: id, Name: name, BaseShift: model.ShiftDay, BaseSchedule: b, Active: true}
}

func TestValidateIncident_OK(t *testing.T) {
	st := testState([]model.Person{activePerson("ana", "Ana")}, nil)

	res := ValidateIncident(RegistrationInput{
		PersonID:  "ana",
		Type:      model.IncidentTardanza,
		StartDate: "2025-06-03",
	}, st, calendar.New(nil), "2025-06-03", 0, zap.NewNop())

	assert.True(t, res.OK)
	assert.Empty(t, res.Warning)
}

func TestValidateIncident_StructuralFailures(t *testing.T) {
	st := testState([]model.Person{activePerson("ana", "Ana")}, nil)
	cal := calendar.New(nil)

	tests := []struct {
		name     string
		input    RegistrationInput
		wantCode string
	}{
		{
			"missing person id",
			RegistrationInput{Type: model.IncidentTardanza, StartDate: "2025-06-03"},
			CodeInvalidInput,
		},
		{
			"malformed date",
			RegistrationInput{PersonID: "ana", Type: model.IncidentTardanza, StartDate: "03/06/2025"},
			CodeInvalidInput,
		},
		{
			"unknown type",
			RegistrationInput{PersonID: "ana", Type: "FIESTA", StartDate: "2025-06-03"},
			CodeInvalidType,
		},
		{
			"unknown person",
			RegistrationInput{PersonID: "nadie", Type: model.IncidentTardanza, StartDate: "2025-06-03"},
			CodePersonNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateIncident(tc.input, st, cal, "2025-06-03", 0, zap.NewNop())
			assert.False(t, res.OK)
			assert.Equal(t, tc.wantCode, res.Code)
		})
	}
}

func TestValidateIncident_InactivePerson(t *testing.T) {
	p := activePerson("ana", "Ana")
	p.Active = false
	st := testState([]model.Person{p}, nil)

	res := ValidateIncident(RegistrationInput{
		PersonID:  "ana",
		Type:      model.IncidentTardanza,
		StartDate: "2025-06-03",
	}, st, calendar.New(nil), "2025-06-03", 0, zap.NewNop())

	assert.False(t, res.OK)
	assert.Equal(t, CodePersonInactive, res.Code)
}

func TestValidateIncident_Duplicate(t *testing.T) {
	st := testState(
		[]model.Person{activePerson("ana", "Ana")},
		[]model.Incident{{ID: "i1", PersonID: "ana", Type: model.IncidentTardanza, StartDate: "2025-06-03", Duration: 1}},
	)

	res := ValidateIncident(RegistrationInput{
		PersonID:  "ana",
		Type:      model.IncidentTardanza,
		StartDate: "2025-06-03",
	}, st, calendar.New(nil), "2025-06-03", 0, zap.NewNop())

	assert.False(t, res.OK)
	assert.Equal(t, CodeDuplicateIncident, res.Code)
}

func TestValidateIncident_BlockingOverlap(t *testing.T) {
	st := testState(
		[]model.Person{activePerson("ana", "Ana")},
		[]model.Incident{{ID: "i1", PersonID: "ana", Type: model.IncidentVacaciones, StartDate: "2025-06-02", Duration: 5}},
	)

	// A new vacation starting inside the existing one's resolved window.
	res := ValidateIncident(RegistrationInput{
		PersonID:  "ana",
		Type:      model.IncidentVacaciones,
		StartDate: "2025-06-04",
		Duration:  2,
	}, st, calendar.New(nil), "2025-06-03", 0, zap.NewNop())

	assert.False(t, res.OK)
	assert.Equal(t, CodeOverlapsExisting, res.Code)
}

func TestValidateIncident_OverlapOnlyChecksSamePerson(t *testing.T) {
	st := testState(
		[]model.Person{activePerson("ana", "Ana"), activePerson("luis", "Luis")},
		[]model.Incident{{ID: "i1", PersonID: "luis", Type: model.IncidentVacaciones, StartDate: "2025-06-02", Duration: 5}},
	)

	res := ValidateIncident(RegistrationInput{
		PersonID:  "ana",
		Type:      model.IncidentVacaciones,
		StartDate: "2025-06-04",
		Duration:  2,
	}, st, calendar.New(nil), "2025-06-03", 0, zap.NewNop())

	assert.True(t, res.OK)
}

func TestValidateIncident_VacationLimitWarning(t *testing.T) {
	st := testState(
		[]model.Person{activePerson("ana", "Ana")},
		[]model.Incident{{ID: "i1", PersonID: "ana", Type: model.IncidentVacaciones, StartDate: "2025-02-03", Duration: 12}},
	)

	res := ValidateIncident(RegistrationInput{
		PersonID:  "ana",
		Type:      model.IncidentVacaciones,
		StartDate: "2025-09-01",
		Duration:  5,
	}, st, calendar.New(nil), "2025-06-03", 15, zap.NewNop())

	assert.True(t, res.OK)
	assert.Contains(t, res.Warning, "17")
	assert.Contains(t, res.Warning, "2025")
}

func TestValidateIncident_VacationLimitIgnoresOtherYears(t *testing.T) {
	st := testState(
		[]model.Person{activePerson("ana", "Ana")},
		[]model.Incident{{ID: "i1", PersonID: "ana", Type: model.IncidentVacaciones, StartDate: "2024-02-05", Duration: 12}},
	)

	res := ValidateIncident(RegistrationInput{
		PersonID:  "ana",
		Type:      model.IncidentVacaciones,
		StartDate: "2025-09-01",
		Duration:  5,
	}, st, calendar.New(nil), "2025-06-03", 15, zap.NewNop())

	assert.True(t, res.OK)
	assert.Empty(t, res.Warning)
}
