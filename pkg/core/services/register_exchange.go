package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/exchange"
	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/state"
	"github.com/centroops/guardia/pkg/db"
)

// ExchangeInput is the payload for registering an exchange. Field usage
// mirrors model.Exchange: COVER uses FromPersonID/ToPersonID/Shift,
// DOUBLE uses PersonID/Shift, SWAP uses both person ids plus
// FromShift/ToShift.
type ExchangeInput struct {
	Date         string             `json:"date"`
	Kind         model.ExchangeKind `json:"kind"`
	PersonID     string             `json:"personId,omitempty"`
	FromPersonID string             `json:"fromPersonId,omitempty"`
	ToPersonID   string             `json:"toPersonId,omitempty"`
	Shift        model.Shift        `json:"shift,omitempty"`
	FromShift    model.Shift        `json:"fromShift,omitempty"`
	ToShift      model.Shift        `json:"toShift,omitempty"`
}

// ExchangeOutcome is the result of an exchange registration attempt.
// Message carries the business rejection, verbatim for the end user.
type ExchangeOutcome struct {
	OK      bool   `json:"ok"`
	NewID   string `json:"newId,omitempty"`
	Message string `json:"message,omitempty"`
}

// RegisterExchange runs the two-phase gate: ValidateOperation first (a
// business check whose failure is an outcome value), then
// ValidateNoConflict immediately before the append (a correctness gate
// whose failure is a hard error). On any failure the exchange is not
// stored. A COVER additionally writes the authoritative coverage record
// and flags the covered person's plan cell.
func RegisterExchange(
	ctx context.Context,
	store db.StateStore,
	logger *zap.Logger,
	input ExchangeInput,
	actor string,
) (*ExchangeOutcome, error) {
	logger.Info("Registering exchange",
		zap.String("date", input.Date),
		zap.String("kind", string(input.Kind)))

	if !input.Kind.IsValid() {
		return &ExchangeOutcome{OK: false, Message: fmt.Sprintf("Tipo de operación desconocido: %q", input.Kind)}, nil
	}
	if _, err := calendar.ParseDate(input.Date); err != nil {
		return &ExchangeOutcome{OK: false, Message: fmt.Sprintf("La fecha %q no es válida", input.Date)}, nil
	}
	if msg := invalidShiftMessage(input); msg != "" {
		return &ExchangeOutcome{OK: false, Message: msg}, nil
	}

	current, err := store.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	cal := calendar.New(current.CalendarOverrides)

	// Stored exchanges must be internally consistent before the proposal
	// is judged against them.
	exchange.AssertNoDuplicateClaims(input.Date, current.People, current.Plan,
		current.Incidents, current.Exchanges, cal, logger)

	contexts := exchange.BuildContexts(input.Date, current.People, current.Plan,
		current.Incidents, current.Exchanges, cal, logger)

	fromID, toID, shift := operationArgs(input)
	if msg := exchange.ValidateOperation(input.Kind, fromID, toID, shift, contexts, current.People); msg != "" {
		logger.Info("Exchange rejected", zap.String("message", msg))
		return &ExchangeOutcome{OK: false, Message: msg}, nil
	}

	proposed := model.Exchange{
		ID:           uuid.New().String(),
		Date:         input.Date,
		Kind:         input.Kind,
		PersonID:     input.PersonID,
		FromPersonID: input.FromPersonID,
		ToPersonID:   input.ToPersonID,
		Shift:        input.Shift,
		FromShift:    input.FromShift,
		ToShift:      input.ToShift,
		CreatedAt:    time.Now().UTC(),
	}

	if err := exchange.ValidateNoConflict(proposed, current.Exchanges, current.People,
		current.Plan, current.Incidents, cal, logger); err != nil {
		return nil, fmt.Errorf("exchange conflicts with stored state: %w", err)
	}

	next := state.AddExchange(current, proposed, actor)

	if proposed.Kind == model.ExchangeCover {
		record := model.CoverageRecord{
			ID:               uuid.New().String(),
			Date:             proposed.Date,
			Shift:            proposed.Shift,
			CoveredPersonID:  proposed.FromPersonID,
			CoveringPersonID: proposed.ToPersonID,
			Active:           true,
			CreatedAt:        proposed.CreatedAt,
		}
		next = state.AddCoverageRecord(next, record, actor)

		if entry, ok := next.Plan.Entry(proposed.FromPersonID, proposed.Date); ok {
			entry.CoveredBadge = true
			next = state.SetPlanEntry(next, entry, actor)
		}
	}

	if err := store.SaveState(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	logger.Info("Exchange registered", zap.String("exchange_id", proposed.ID))
	return &ExchangeOutcome{OK: true, NewID: proposed.ID}, nil
}

// invalidShiftMessage reports the first malformed shift field for the
// kind. Shifts are checked before any state is read: an unknown value
// must never reach the replay or the counters, where it would be
// coerced into a plausible-looking shift.
func invalidShiftMessage(input ExchangeInput) string {
	switch input.Kind {
	case model.ExchangeCover, model.ExchangeDouble:
		if !input.Shift.IsValid() {
			return fmt.Sprintf("Turno desconocido: %q", input.Shift)
		}
	case model.ExchangeSwap:
		if !input.FromShift.IsValid() {
			return fmt.Sprintf("Turno desconocido: %q", input.FromShift)
		}
		if !input.ToShift.IsValid() {
			return fmt.Sprintf("Turno desconocido: %q", input.ToShift)
		}
	}
	return ""
}

// operationArgs maps the input onto the validator's positional
// arguments. DOUBLE's subject travels as toID.
func operationArgs(input ExchangeInput) (fromID, toID string, shift model.Shift) {
	switch input.Kind {
	case model.ExchangeDouble:
		return "", input.PersonID, input.Shift
	case model.ExchangeCover:
		return input.FromPersonID, input.ToPersonID, input.Shift
	case model.ExchangeSwap:
		return input.FromPersonID, input.ToPersonID, input.FromShift
	default:
		panic(fmt.Sprintf("malformed exchange kind %q", input.Kind))
	}
}
