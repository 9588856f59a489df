// Package db defines the persistence contract consumed by the core
// services. The aggregate planning state is stored as a single versioned
// record under a fixed key; the store's internals are out of scope for
// the core.
package db

import (
	"context"

	"github.com/centroops/guardia/pkg/core/model"
)

// StateStore loads and saves the aggregate planning state. LoadState
// must return a freshly constructed default state when nothing is stored
// or the stored schema version is older than the current one. SaveState
// must replace the record atomically; implementations serialize writes.
type StateStore interface {
	LoadState(ctx context.Context) (model.State, error)
	SaveState(ctx context.Context, s model.State) error
}
