// Package services orchestrates the core resolvers over the persistence
// boundary. Business-rule rejections are outcome values surfaced to the
// user verbatim; only store failures and invariant violations travel as
// errors.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/incident"
	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/state"
	"github.com/centroops/guardia/pkg/db"
)

// IncidentOutcome is the result of an incident registration attempt.
type IncidentOutcome struct {
	OK      bool   `json:"ok"`
	NewID   string `json:"newId,omitempty"`
	Code    string `json:"code,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// RegisterIncident validates and persists an incident. The collaborator
// is responsible for confirmation prompts on a non-fatal warning; a
// warning does not block the registration here.
func RegisterIncident(
	ctx context.Context,
	store db.StateStore,
	logger *zap.Logger,
	input incident.RegistrationInput,
	actor string,
	today string,
	vacationLimit int,
) (*IncidentOutcome, error) {
	logger.Info("Registering incident",
		zap.String("person_id", input.PersonID),
		zap.String("type", string(input.Type)),
		zap.String("start_date", input.StartDate))

	current, err := store.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	cal := calendar.New(current.CalendarOverrides)
	result := incident.ValidateIncident(input, current, cal, today, vacationLimit, logger)
	if !result.OK {
		logger.Info("Incident registration rejected",
			zap.String("code", result.Code),
			zap.String("message", result.Message))
		return &IncidentOutcome{OK: false, Code: result.Code, Reason: result.Message}, nil
	}

	disciplinaryKey := model.DisciplinaryKeyBase
	if input.SlotOwnerID != "" && input.SlotOwnerID != input.PersonID {
		disciplinaryKey = model.CoverageDisciplinaryKey(input.SlotOwnerID)
	}

	inc := model.Incident{
		ID:              uuid.New().String(),
		PersonID:        input.PersonID,
		Type:            input.Type,
		StartDate:       input.StartDate,
		Duration:        max(input.Duration, 1),
		Source:          input.Source,
		SlotOwnerID:     input.SlotOwnerID,
		DisciplinaryKey: disciplinaryKey,
		Notes:           input.Notes,
		CreatedAt:       time.Now().UTC(),
	}

	next := state.AddIncident(current, inc, actor)
	if err := store.SaveState(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	logger.Info("Incident registered", zap.String("incident_id", inc.ID))
	return &IncidentOutcome{OK: true, NewID: inc.ID, Warning: result.Warning}, nil
}

// RemoveIncident deletes an incident by id.
func RemoveIncident(ctx context.Context, store db.StateStore, logger *zap.Logger, incidentID, actor string) error {
	current, err := store.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	found := false
	for _, inc := range current.Incidents {
		if inc.ID == incidentID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("incident %s not found", incidentID)
	}

	next := state.RemoveIncident(current, incidentID, actor)
	if err := store.SaveState(ctx, next); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	logger.Info("Incident removed", zap.String("incident_id", incidentID))
	return nil
}
