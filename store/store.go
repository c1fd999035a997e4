// Package store persists the single most recent analysis run. Exactly one
// run exists at a time: saving replaces the previous record wholesale and
// clearing returns the store to the absent state.
package store

import (
	"encoding/json"
	"time"
)

// Run is the result of loading the store. Exists distinguishes "no run yet"
// from a run whose payload happens to contain no metrics.
type Run struct {
	Exists  bool
	Ticker  string
	Payload json.RawMessage
	SavedAt time.Time
}

// RunStore is the single-slot persistence contract.
//
// Save overwrites any previous run and returns the timestamp it recorded.
// Load reports Exists=false when nothing was ever saved, after a Clear, or
// when the underlying medium is unreadable (a corrupt store is operationally
// the same as no prior run). Clear is idempotent.
type RunStore interface {
	Save(ticker string, payload json.RawMessage) (time.Time, error)
	Load() (Run, error)
	Clear() error
}
