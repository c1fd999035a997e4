package store

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Timoffire/bachelor-thesis/models"
)

// lastRunID pins the store to a single row.
const lastRunID = 1

// GormStore keeps the last run in a single-row sqlite table. Saves upsert
// the row inside a transaction so readers observe either the old or the
// new record.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.LastRun{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Save(ticker string, payload json.RawMessage) (time.Time, error) {
	row := models.LastRun{
		ID:      lastRunID,
		SavedAt: time.Now().UTC(),
		Ticker:  ticker,
		Data:    payload,
	}
	if err := s.db.Save(&row).Error; err != nil {
		return time.Time{}, err
	}
	return row.SavedAt, nil
}

func (s *GormStore) Load() (Run, error) {
	var row models.LastRun
	if err := s.db.First(&row, lastRunID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Run{}, nil
		}
		// Unreadable storage counts as no prior run.
		return Run{}, nil
	}
	return Run{
		Exists:  true,
		Ticker:  row.Ticker,
		Payload: row.Data,
		SavedAt: row.SavedAt,
	}, nil
}

func (s *GormStore) Clear() error {
	return s.db.Delete(&models.LastRun{}, lastRunID).Error
}
