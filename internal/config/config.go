// Package config loads the todolist server configuration.
package config

import (
	"path/filepath"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/mdouchement/todolist/internal/database"
	"github.com/mdouchement/todolist/internal/logger"
	"github.com/mdouchement/todolist/internal/model"
	"github.com/mdouchement/todolist/internal/position"
	"github.com/mdouchement/todolist/pkg/stormcodec"
	"github.com/pkg/errors"
)

// DatabaseName is the name of the database file inside the database path.
const DatabaseName = "todolist.db"

type (
	// A Config holds all the server parameters.
	Config struct {
		Address         string         `koanf:"address"`
		DatabasePath    string         `koanf:"database_path"`
		DatabaseCodec   string         `koanf:"database_codec"`
		DatabaseTimeout time.Duration  `koanf:"database_timeout"`
		DefaultColor    string         `koanf:"default_color"`
		Reorder         Reorder        `koanf:"reorder"`
		Server          Server         `koanf:"server"`
		Log             logger.Options `koanf:"log"`
	}

	// Reorder holds the bulk reorder parameters.
	Reorder struct {
		BatchSize int    `koanf:"batch_size"`
		Policy    string `koanf:"policy"`
	}

	// Server holds the HTTP server parameters.
	Server struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
	}
)

func defaults() map[string]any {
	return map[string]any{
		"address":              "localhost:5000",
		"database_path":        "",
		"database_codec":       stormcodec.Default,
		"database_timeout":     time.Second,
		"default_color":        model.DefaultColor,
		"reorder.batch_size":   position.DefaultBatchSize,
		"reorder.policy":       string(position.PolicyRepair),
		"server.read_timeout":  10 * time.Second,
		"server.write_timeout": 10 * time.Second,
		"log.level":            "info",
		"log.path":             "",
		"log.max_size":         20,
		"log.max_backups":      30,
		"log.max_age":          30,
	}
}

// Load reads the configuration file at the given path on top of the default values.
// An empty path only returns the defaults.
func Load(path string) (*Config, error) {
	konf := koanf.New(".")
	if err := konf.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "could not load default configuration")
	}

	if path != "" {
		if err := konf.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrap(err, "could not load configuration")
		}
	}

	var cfg Config
	if err := konf.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "could not parse configuration")
	}

	return &cfg, cfg.Validate()
}

// Validate checks the consistency of the configuration.
func (c *Config) Validate() error {
	if _, err := stormcodec.ByName(c.DatabaseCodec); err != nil {
		return err
	}

	if _, err := position.ParsePolicy(c.Reorder.Policy); err != nil {
		return err
	}

	if c.Reorder.BatchSize <= 0 {
		return errors.Errorf("reorder.batch_size must be positive (got %d)", c.Reorder.BatchSize)
	}

	if c.DefaultColor == "" {
		return errors.New("default_color can't be empty")
	}
	return nil
}

// Database returns the path of the database file.
func (c *Config) Database() string {
	if len(c.DatabasePath) == 0 {
		return DatabaseName
	}
	return filepath.Join(c.DatabasePath, DatabaseName)
}

// DatabaseOptions returns the options used to open the database.
func (c *Config) DatabaseOptions() database.Options {
	return database.Options{
		Codec:   c.DatabaseCodec,
		Timeout: c.DatabaseTimeout,
	}
}

// ReorderPolicy returns the parsed reorder policy.
func (c *Config) ReorderPolicy() position.Policy {
	p, _ := position.ParsePolicy(c.Reorder.Policy) // checked by Validate
	return p
}
