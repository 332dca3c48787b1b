package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mdouchement/todolist/internal/config"
	"github.com/mdouchement/todolist/internal/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, payload string) string {
	path := filepath.Join(t.TempDir(), "todolist.yml")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost:5000", cfg.Address)
	assert.Equal(t, "todolist.db", cfg.Database())
	assert.Equal(t, "msgpack", cfg.DatabaseCodec)
	assert.Equal(t, time.Second, cfg.DatabaseTimeout)
	assert.Equal(t, "#73b8bf", cfg.DefaultColor)
	assert.Equal(t, 100, cfg.Reorder.BatchSize)
	assert.Equal(t, position.PolicyRepair, cfg.ReorderPolicy())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 20, cfg.Log.MaxSize)
}

func TestLoad(t *testing.T) {
	path := write(t, `
address: unix:/tmp/todolist.sock
database_path: /var/lib/todolist
database_codec: cbor
database_timeout: 5s
default_color: "#ffffff"
reorder:
  batch_size: 20
  policy: reject
server:
  write_timeout: 1m
log:
  level: debug
  path: /var/log/todolist.log
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "unix:/tmp/todolist.sock", cfg.Address)
	assert.Equal(t, "/var/lib/todolist/todolist.db", cfg.Database())
	assert.Equal(t, "cbor", cfg.DatabaseOptions().Codec)
	assert.Equal(t, 5*time.Second, cfg.DatabaseOptions().Timeout)
	assert.Equal(t, "#ffffff", cfg.DefaultColor)
	assert.Equal(t, 20, cfg.Reorder.BatchSize)
	assert.Equal(t, position.PolicyReject, cfg.ReorderPolicy())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/todolist.log", cfg.Log.Path)
	assert.Equal(t, 30, cfg.Log.MaxBackups)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	_, err = config.Load(write(t, "database_codec: xml\n"))
	assert.EqualError(t, err, `unknown database codec "xml" (available: [binc cbor json msgpack])`)

	_, err = config.Load(write(t, "reorder:\n  policy: shuffle\n"))
	assert.EqualError(t, err, `unknown reorder policy "shuffle"`)

	_, err = config.Load(write(t, "reorder:\n  batch_size: 0\n"))
	assert.EqualError(t, err, "reorder.batch_size must be positive (got 0)")
}
