package types

import (
	"errors"
	"strings"
)

// DefaultDatabase is the database filename used when Config.Database is empty.
const DefaultDatabase = "daylist.db"

// Config holds storage parameters for opening a Store.
type Config struct {
	DataDir  string `json:"data_dir" yaml:"data_dir"`   // Directory holding the database file.
	Database string `json:"database" yaml:"database"`   // Database filename inside DataDir.
	LogLevel string `json:"log_level" yaml:"log_level"` // debug, info, warn, or error.
}

// Config validation errors.
var (
	ErrDatabaseInvalid = errors.New("database must be a bare filename")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownLogLevels lists the log levels that Validate accepts.
var knownLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if strings.ContainsAny(c.Database, `/\`) {
		return ErrDatabaseInvalid
	}
	if !knownLogLevels[strings.ToLower(c.LogLevel)] {
		return ErrLogLevelUnknown
	}
	return nil
}

// DatabaseName returns the configured database filename, or DefaultDatabase
// when unset.
func (c Config) DatabaseName() string {
	if c.Database == "" {
		return DefaultDatabase
	}
	return c.Database
}
