package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/centroops/guardia/pkg/core/model"
)

// AuditInput is the caller-supplied part of an audit event; id and
// timestamp are stamped at write time.
type AuditInput struct {
	Actor   string
	Action  string
	Target  string
	Change  string
	Context string
}

// RecordEvent is the sole entry point for appending to the audit log.
// It builds a new state value with the event prepended (the log is
// newest-first); any other code path that mutates the log is a contract
// violation.
func RecordEvent(s model.State, in AuditInput) model.State {
	event := model.AuditEvent{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Actor:     in.Actor,
		Action:    in.Action,
		Target:    in.Target,
		Change:    in.Change,
		Context:   in.Context,
	}

	next := s
	log := make([]model.AuditEvent, 0, len(s.AuditLog)+1)
	log = append(log, event)
	log = append(log, s.AuditLog...)
	next.AuditLog = log
	return next
}
