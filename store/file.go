package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Timoffire/bachelor-thesis/models"
)

const lastRunFile = "last-run.json"

// FileStore keeps the last run as a JSON envelope on disk, mirroring the
// .data/last-run.json layout. Saves go through a temp file and rename so a
// concurrent load never sees a partially written record.
type FileStore struct {
	dir  string
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, path: filepath.Join(dir, lastRunFile)}
}

// Path returns the location of the stored envelope.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) ensureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

func (s *FileStore) Save(ticker string, payload json.RawMessage) (time.Time, error) {
	if err := s.ensureDir(); err != nil {
		return time.Time{}, err
	}

	env := models.RunEnvelope{
		SavedAt: time.Now().UTC(),
		Ticker:  ticker,
		Data:    payload,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return time.Time{}, err
	}

	tmp, err := os.CreateTemp(s.dir, lastRunFile+".*.tmp")
	if err != nil {
		return time.Time{}, err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return time.Time{}, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return time.Time{}, err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return time.Time{}, err
	}
	return env.SavedAt, nil
}

func (s *FileStore) Load() (Run, error) {
	if err := s.ensureDir(); err != nil {
		return Run{}, nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Run{}, nil
	}
	var env models.RunEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Run{}, nil
	}
	return Run{
		Exists:  true,
		Ticker:  env.Ticker,
		Payload: env.Data,
		SavedAt: env.SavedAt,
	}, nil
}

func (s *FileStore) Clear() error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
