package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) map[string]RunStore {
	t.Helper()
	gs, err := NewGormStore(filepath.Join(t.TempDir(), "last-run.db"))
	require.NoError(t, err)
	return map[string]RunStore{
		"file":   NewFileStore(t.TempDir()),
		"sqlite": gs,
	}
}

func TestLoadBeforeAnySave(t *testing.T) {
	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			run, err := st.Load()
			require.NoError(t, err)
			require.False(t, run.Exists)
			require.Nil(t, run.Payload)
		})
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Save("AAPL", json.RawMessage(`{"results":{"eps":{"value":1}}}`))
			require.NoError(t, err)
			_, err = st.Save("MSFT", json.RawMessage(`{"results":{"roe":{"value":0.3}}}`))
			require.NoError(t, err)

			run, err := st.Load()
			require.NoError(t, err)
			require.True(t, run.Exists)
			require.Equal(t, "MSFT", run.Ticker)
			require.JSONEq(t, `{"results":{"roe":{"value":0.3}}}`, string(run.Payload))
		})
	}
}

func TestSaveReturnsTimestampUsed(t *testing.T) {
	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			savedAt, err := st.Save("AAPL", json.RawMessage(`{}`))
			require.NoError(t, err)
			require.False(t, savedAt.IsZero())

			run, err := st.Load()
			require.NoError(t, err)
			require.True(t, run.SavedAt.Equal(savedAt))
		})
	}
}

func TestEmptyPayloadIsStillARun(t *testing.T) {
	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Save("AAPL", json.RawMessage(`{}`))
			require.NoError(t, err)

			run, err := st.Load()
			require.NoError(t, err)
			require.True(t, run.Exists)
			require.JSONEq(t, `{}`, string(run.Payload))
		})
	}
}

func TestClearIsIdempotent(t *testing.T) {
	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			// Clearing an empty store is not an error.
			require.NoError(t, st.Clear())

			_, err := st.Save("AAPL", json.RawMessage(`{"a":1}`))
			require.NoError(t, err)
			require.NoError(t, st.Clear())
			require.NoError(t, st.Clear())

			run, err := st.Load()
			require.NoError(t, err)
			require.False(t, run.Exists)
		})
	}
}

func TestCorruptFileLoadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	st := NewFileStore(dir)
	_, err := st.Save("AAPL", json.RawMessage(`{"a":1}`))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(st.Path(), []byte("{not json"), 0o644))

	run, err := st.Load()
	require.NoError(t, err)
	require.False(t, run.Exists)
}
