package exchange

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/model"
)

// ValidateOperation checks whether a proposed exchange is legal against
// the effective context. A non-empty return is a human-readable business
// message for the end user; it is never an error because an illegal
// request is an expected outcome. For DOUBLE the subject is toID.
func ValidateOperation(
	kind model.ExchangeKind,
	fromID, toID string,
	shift model.Shift,
	contexts map[string]model.EffectiveSwapContext,
	people []model.Person,
) string {
	names := nameIndex(people)

	switch kind {
	case model.ExchangeCover:
		return validateCover(fromID, toID, shift, contexts, names)
	case model.ExchangeSwap:
		return validateSwap(fromID, toID, contexts, names)
	case model.ExchangeDouble:
		return validateDouble(toID, shift, contexts, names)
	default:
		panic(fmt.Sprintf("malformed exchange kind %q", kind))
	}
}

func validateCover(fromID, toID string, shift model.Shift, contexts map[string]model.EffectiveSwapContext, names map[string]string) string {
	if fromID == "" || toID == "" {
		return "Selecciona a ambas personas para el reemplazo"
	}
	if fromID == toID {
		return "Una persona no puede cubrirse a sí misma"
	}

	from, ok := contexts[fromID]
	if !ok {
		return fmt.Sprintf("Persona desconocida: %s", fromID)
	}
	to, ok := contexts[toID]
	if !ok {
		return fmt.Sprintf("Persona desconocida: %s", toID)
	}

	if from.IsBlocked {
		return fmt.Sprintf("%s no está disponible por licencia o vacaciones", name(names, fromID))
	}
	if to.IsBlocked {
		return fmt.Sprintf("%s no está disponible por licencia o vacaciones", name(names, toID))
	}

	if !from.EffectiveShifts.Has(shift) {
		return fmt.Sprintf("%s no tiene el turno %s ese día, no hay nada que cubrir", name(names, fromID), shift)
	}
	if to.EffectiveShifts.Has(shift) {
		return fmt.Sprintf("%s no está disponible para cubrir el turno %s", name(names, toID), shift)
	}

	return ""
}

func validateSwap(fromID, toID string, contexts map[string]model.EffectiveSwapContext, names map[string]string) string {
	if fromID == "" || toID == "" {
		return "Selecciona a ambas personas para el intercambio"
	}
	if fromID == toID {
		return "Una persona no puede intercambiar turnos consigo misma"
	}

	from, ok := contexts[fromID]
	if !ok {
		return fmt.Sprintf("Persona desconocida: %s", fromID)
	}
	to, ok := contexts[toID]
	if !ok {
		return fmt.Sprintf("Persona desconocida: %s", toID)
	}

	if from.IsBlocked {
		return fmt.Sprintf("%s no está disponible por licencia o vacaciones", name(names, fromID))
	}
	if to.IsBlocked {
		return fmt.Sprintf("%s no está disponible por licencia o vacaciones", name(names, toID))
	}

	if from.EffectiveShifts.IsEmpty() {
		return fmt.Sprintf("%s no tiene turnos ese día", name(names, fromID))
	}
	if to.EffectiveShifts.IsEmpty() {
		return fmt.Sprintf("%s no tiene turnos ese día", name(names, toID))
	}

	fromSingle, fromOne := from.EffectiveShifts.Single()
	toSingle, toOne := to.EffectiveShifts.Single()
	if fromOne && toOne && fromSingle == toSingle {
		return fmt.Sprintf("El intercambio no tiene efecto: ambos tienen el turno %s", fromSingle)
	}

	return ""
}

func validateDouble(personID string, shift model.Shift, contexts map[string]model.EffectiveSwapContext, names map[string]string) string {
	if personID == "" {
		return "Selecciona a la persona que doblará turno"
	}

	ctx, ok := contexts[personID]
	if !ok {
		return fmt.Sprintf("Persona desconocida: %s", personID)
	}

	if ctx.IsBlocked {
		return fmt.Sprintf("%s no está disponible por licencia o vacaciones", name(names, personID))
	}
	if ctx.EffectiveShifts.Has(shift) {
		return fmt.Sprintf("%s ya tiene el turno %s ese día", name(names, personID), shift)
	}

	return ""
}

// ValidateNoConflict recomputes the effective pre-state (base plan plus
// existing exchanges, excluding the proposal) for every person the
// proposal touches and returns a hard error when that state contradicts
// what the proposal assumes. This is a correctness gate, not a business
// check: it must run immediately before committing an exchange, and its
// errors indicate a defect or a race in the code producing the proposal.
func ValidateNoConflict(
	proposed model.Exchange,
	existing []model.Exchange,
	people []model.Person,
	plan model.Plan,
	incidents []model.Incident,
	cal calendar.Calendar,
	logger *zap.Logger,
) error {
	pre := BuildContexts(proposed.Date, people, plan, incidents, existing, cal, logger)

	switch proposed.Kind {
	case model.ExchangeCover:
		from, to := pre[proposed.FromPersonID], pre[proposed.ToPersonID]
		if !from.EffectiveShifts.Has(proposed.Shift) {
			return fmt.Errorf("cover conflict on %s: %s no longer holds shift %s",
				proposed.Date, proposed.FromPersonID, proposed.Shift)
		}
		if to.EffectiveShifts.Has(proposed.Shift) {
			return fmt.Errorf("cover conflict on %s: %s already holds shift %s",
				proposed.Date, proposed.ToPersonID, proposed.Shift)
		}
	case model.ExchangeDouble:
		if pre[proposed.PersonID].EffectiveShifts.Has(proposed.Shift) {
			return fmt.Errorf("double conflict on %s: %s already holds shift %s",
				proposed.Date, proposed.PersonID, proposed.Shift)
		}
	case model.ExchangeSwap:
		if !pre[proposed.FromPersonID].EffectiveShifts.Has(proposed.FromShift) {
			return fmt.Errorf("swap conflict on %s: %s does not hold shift %s",
				proposed.Date, proposed.FromPersonID, proposed.FromShift)
		}
		if !pre[proposed.ToPersonID].EffectiveShifts.Has(proposed.ToShift) {
			return fmt.Errorf("swap conflict on %s: %s does not hold shift %s",
				proposed.Date, proposed.ToPersonID, proposed.ToShift)
		}
	default:
		panic(fmt.Sprintf("malformed exchange kind %q", proposed.Kind))
	}

	return nil
}

// AssertNoDuplicateClaims walks the stored exchanges for a date and
// panics when two of them claim the same person/shift cell (a COVER or
// DOUBLE landing on a shift the person already effectively holds). A
// duplicate claim means an exchange was persisted without validation,
// which is an upstream bug, not a user-facing condition; coercing it to
// a plausible value would corrupt coverage and disciplinary accounting.
func AssertNoDuplicateClaims(
	date string,
	people []model.Person,
	plan model.Plan,
	incidents []model.Incident,
	exchanges []model.Exchange,
	cal calendar.Calendar,
	logger *zap.Logger,
) {
	base := make(map[string]model.ShiftSet, len(people))
	blocked := make(map[string]bool, len(people))
	for _, p := range people {
		base[p.ID] = nominalShifts(p, date, plan, logger)
		blocked[p.ID] = isBlocked(p, date, incidents, cal, logger)
	}

	current := make(map[string]model.ShiftSet, len(people))
	for id, set := range base {
		if blocked[id] {
			current[id] = 0
		} else {
			current[id] = set
		}
	}

	for _, e := range model.ExchangesForDate(exchanges, date) {
		switch e.Kind {
		case model.ExchangeCover:
			if !blocked[e.ToPersonID] && current[e.ToPersonID].Has(e.Shift) {
				panic(fmt.Sprintf("duplicate claim on %s: exchange %s covers shift %s for %s who already holds it",
					date, e.ID, e.Shift, e.ToPersonID))
			}
		case model.ExchangeDouble:
			if !blocked[e.PersonID] && current[e.PersonID].Has(e.Shift) {
				panic(fmt.Sprintf("duplicate claim on %s: exchange %s doubles shift %s for %s who already holds it",
					date, e.ID, e.Shift, e.PersonID))
			}
		}
		replay(e, current, blocked)
	}
}

func nameIndex(people []model.Person) map[string]string {
	idx := make(map[string]string, len(people))
	for _, p := range people {
		idx[p.ID] = p.Name
	}
	return idx
}

func name(names map[string]string, id string) string {
	if n, ok := names[id]; ok && n != "" {
		return n
	}
	return id
}
