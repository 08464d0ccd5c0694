package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullServerConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"undo_window": "2500ms", "version": "0.3.0"},
		"storage": {"db": {"dsn": "notes.db"}},
		"server": {"http_address": "localhost:8088", "request_timeout": "20s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 2500*time.Millisecond, cfg.App.UndoWindow)
	assert.Equal(t, "0.3.0", cfg.App.Version)
	assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8088", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// durations may also be given as nanosecond numbers
	path := writeTempJSON(t, `{"app": {"undo_window": 2500000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, cfg.App.UndoWindow)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"app": `)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseClientJSON_FullClientConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"theme": "light", "log_path": "client.log"},
		"adapter": {"http_address": "http://localhost:8080", "request_timeout": "10s"}
	}`)

	cfg, err := parseClientJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.App.Theme)
	assert.Equal(t, "client.log", cfg.App.LogPath)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, d, back)
}
