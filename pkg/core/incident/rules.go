package incident

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/model"
)

// DefaultVacationLimitDays is the yearly vacation allowance used when the
// configuration does not override it. Exceeding it is a warning, not a
// rejection; the caller decides whether to proceed.
const DefaultVacationLimitDays = 15

// Rule result codes. Codes are stable identifiers; messages are the
// user-facing text and are surfaced verbatim.
const (
	CodeInvalidInput           = "INVALID_INPUT"
	CodeInvalidDate            = "INVALID_DATE"
	CodeInvalidType            = "INVALID_TYPE"
	CodePersonNotFound         = "PERSON_NOT_FOUND"
	CodePersonInactive         = "PERSON_INACTIVE"
	CodeCannotRegisterInFuture = "CANNOT_REGISTER_IN_FUTURE"
	CodeDuplicateIncident      = "DUPLICATE_INCIDENT"
	CodeOverlapsExisting       = "OVERLAPS_EXISTING"
)

// RuleResult is a business-rule outcome. It is a value, never an error:
// a rejected registration is expected and recoverable. Warning is set on
// accepted registrations the user may still want to reconsider.
type RuleResult struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Warning string `json:"warning,omitempty"`
}

func okResult() RuleResult {
	return RuleResult{OK: true}
}

func failResult(code, message string) RuleResult {
	return RuleResult{OK: false, Code: code, Message: message}
}

// CanRegisterOnDate checks the date rule for an incident type. Punitive
// types cannot target a date after today; VACACIONES can.
func CanRegisterOnDate(t model.IncidentType, date, today string) RuleResult {
	target, err := calendar.ParseDate(date)
	if err != nil {
		return failResult(CodeInvalidDate, fmt.Sprintf("La fecha %q no es válida", date))
	}
	now, err := calendar.ParseDate(today)
	if err != nil {
		return failResult(CodeInvalidDate, fmt.Sprintf("La fecha %q no es válida", today))
	}

	if t.IsPunitive() && target.After(now) {
		return failResult(CodeCannotRegisterInFuture,
			fmt.Sprintf("No se puede registrar %s en una fecha futura", t))
	}

	return okResult()
}

// RegistrationInput is the payload consumed from the UI layer when
// registering an incident.
type RegistrationInput struct {
	PersonID    string               `json:"personId" validate:"required"`
	Type        model.IncidentType   `json:"type" validate:"required"`
	StartDate   string               `json:"startDate" validate:"required,datetime=2006-01-02"`
	Duration    int                  `json:"duration" validate:"min=0"`
	Source      model.IncidentSource `json:"source,omitempty"`
	SlotOwnerID string               `json:"slotOwnerId,omitempty"`
	Notes       string               `json:"notes,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateIncident runs structural validation plus the registration
// business rules against the current state. Vacation-limit excess is a
// non-fatal warning on an otherwise OK result.
func ValidateIncident(input RegistrationInput, st model.State, cal calendar.Calendar, today string, vacationLimit int, logger *zap.Logger) RuleResult {
	if err := validate.Struct(input); err != nil {
		return failResult(CodeInvalidInput, fmt.Sprintf("Datos de registro incompletos: %v", err))
	}

	if !input.Type.IsValid() {
		return failResult(CodeInvalidType, fmt.Sprintf("Tipo de incidente desconocido: %q", input.Type))
	}

	person := st.PersonByID(input.PersonID)
	if person == nil {
		return failResult(CodePersonNotFound, "La persona seleccionada no existe")
	}
	if !person.Active {
		return failResult(CodePersonInactive, fmt.Sprintf("%s no está activo", person.Name))
	}

	if res := CanRegisterOnDate(input.Type, input.StartDate, today); !res.OK {
		return res
	}

	for _, existing := range st.Incidents {
		if existing.PersonID == input.PersonID && existing.Type == input.Type && existing.StartDate == input.StartDate {
			return failResult(CodeDuplicateIncident,
				fmt.Sprintf("Ya existe un incidente %s para %s el %s", input.Type, person.Name, input.StartDate))
		}
	}

	proposed := model.Incident{
		PersonID:  input.PersonID,
		Type:      input.Type,
		StartDate: input.StartDate,
		Duration:  max(input.Duration, 1),
	}

	if proposed.Type.IsBlocking() {
		if res := checkBlockingOverlap(proposed, st, cal, *person, logger); !res.OK {
			return res
		}
	}

	result := okResult()
	if proposed.Type == model.IncidentVacaciones {
		if vacationLimit <= 0 {
			vacationLimit = DefaultVacationLimitDays
		}
		if warning := vacationLimitWarning(proposed, st, vacationLimit); warning != "" {
			result.Warning = warning
		}
	}

	return result
}

// checkBlockingOverlap rejects a blocking incident whose resolved dates
// collide with another blocking incident of the same person.
func checkBlockingOverlap(proposed model.Incident, st model.State, cal calendar.Calendar, p model.Person, logger *zap.Logger) RuleResult {
	proposedDates := ResolveDates(proposed, cal, p, logger)
	occupied := make(map[string]bool, len(proposedDates.Dates))
	for _, d := range proposedDates.Dates {
		occupied[d] = true
	}

	for _, existing := range st.Incidents {
		if existing.PersonID != p.ID || !existing.Type.IsBlocking() {
			continue
		}
		for _, d := range ResolveDates(existing, cal, p, logger).Dates {
			if occupied[d] {
				return failResult(CodeOverlapsExisting,
					fmt.Sprintf("El periodo se superpone con %s registrada el %s", existing.Type, existing.StartDate))
			}
		}
	}

	return okResult()
}

// vacationLimitWarning reports when the proposed vacation would push the
// person past the yearly allowance.
func vacationLimitWarning(proposed model.Incident, st model.State, limit int) string {
	year := proposed.StartDate[:4]
	total := proposed.Duration
	for _, existing := range st.Incidents {
		if existing.PersonID == proposed.PersonID &&
			existing.Type == model.IncidentVacaciones &&
			len(existing.StartDate) >= 4 && existing.StartDate[:4] == year {
			total += existing.Duration
		}
	}

	if total > limit {
		return fmt.Sprintf("Con este registro acumula %d días de vacaciones en %s (límite %d)", total, year, limit)
	}
	return ""
}
