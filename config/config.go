// Package config holds driver settings: defaults, then an optional .env
// file, then the process environment. Command-line flags are applied on top
// by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Environment keys.
const (
	EnvCityFile = "CITYSEARCH_CITY_FILE"
	EnvEdgeFile = "CITYSEARCH_EDGE_FILE"
	EnvDatabase = "CITYSEARCH_DB"
	EnvListen   = "CITYSEARCH_LISTEN"
	EnvLogLevel = "CITYSEARCH_LOG_LEVEL"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds application settings.
type Config struct {
	CityFile string // city records, used when Database is empty
	EdgeFile string // edge records, used when Database is empty
	Database string // SQLite path; takes precedence over the record files
	Listen   string // HTTP listen address for serve mode

	QueryFile  string // two-line query file (report mode)
	ReportFile string // text report destination (report mode)

	LogLevel slog.Level
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		CityFile: "city.dat",
		EdgeFile: "edge.dat",
		Listen:   ":8080",
		LogLevel: slog.LevelInfo,
	}
}

// Load returns Default overridden by the given .env files (".env" when none
// are named; missing files are skipped) and then by the environment.
// Earlier files win over later ones; the environment wins over all files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	fromFiles := make(map[string]string)
	for _, name := range envFiles {
		vals, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", name, err)
		}
		for k, v := range vals {
			if _, ok := fromFiles[k]; !ok {
				fromFiles[k] = v
			}
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fromFiles[key]

		return v, ok && v != ""
	}

	c := Default()
	if v, ok := lookup(EnvCityFile); ok {
		c.CityFile = v
	}
	if v, ok := lookup(EnvEdgeFile); ok {
		c.EdgeFile = v
	}
	if v, ok := lookup(EnvDatabase); ok {
		c.Database = v
	}
	if v, ok := lookup(EnvListen); ok {
		c.Listen = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if err := c.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
	}

	return c, nil
}

// Validate checks that a records source is configured.
func (c *Config) Validate() error {
	if c.Database == "" && (c.CityFile == "" || c.EdgeFile == "") {
		return fmt.Errorf("%w: need a database or both city and edge files", ErrInvalid)
	}

	return nil
}
