package models

import (
	"encoding/json"
	"time"
)

// RunEnvelope is the persisted record for the most recent analysis run.
// The payload is kept verbatim as received from the backend.
type RunEnvelope struct {
	SavedAt time.Time       `json:"savedAt"`
	Ticker  string          `json:"ticker"`
	Data    json.RawMessage `json:"data"`
}

// LastRun is the single-row table backing the sqlite run store.
type LastRun struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	SavedAt time.Time `json:"saved_at"`
	Ticker  string    `json:"ticker"`
	Data    []byte    `json:"data"`
}

func (LastRun) TableName() string {
	return "last_runs"
}
