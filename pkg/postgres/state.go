package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/centroops/guardia/pkg/core/model"
	"github.com/centroops/guardia/pkg/core/state"
)

// stateKey is the fixed key the aggregate state record lives under.
const stateKey = "guardia"

// LoadState retrieves the planning state record. Nothing stored, or a
// record at an older schema version, yields a freshly constructed
// default state. Missing sub-collections in the stored payload are
// defaulted to empty rather than treated as corruption.
func (db *DB) LoadState(ctx context.Context) (model.State, error) {
	var schemaVersion int
	var data []byte
	err := db.pool.QueryRow(ctx, `
		SELECT schema_version, data
		FROM planning_state
		WHERE key = $1
	`, stateKey).Scan(&schemaVersion, &data)
	if errors.Is(err, pgx.ErrNoRows) {
		return state.Default(), nil
	}
	if err != nil {
		return model.State{}, fmt.Errorf("failed to load planning state: %w", err)
	}

	if schemaVersion < state.SchemaVersion {
		return state.Default(), nil
	}

	var s model.State
	if err := json.Unmarshal(data, &s); err != nil {
		return model.State{}, fmt.Errorf("failed to decode planning state: %w", err)
	}

	return state.Normalize(s), nil
}

// SaveState replaces the planning state record atomically with a single
// upsert; postgres serializes the writes.
func (db *DB) SaveState(ctx context.Context, s model.State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode planning state: %w", err)
	}

	_, err = db.pool.Exec(ctx, `
		INSERT INTO planning_state (key, schema_version, data, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE
		SET schema_version = EXCLUDED.schema_version,
		    data = EXCLUDED.data,
		    updated_at = EXCLUDED.updated_at
	`, stateKey, s.SchemaVersion, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save planning state: %w", err)
	}

	return nil
}
