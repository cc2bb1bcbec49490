package config

import "path/filepath"

// Config holds all application configuration. It is constructed once at
// startup and passed explicitly to every component that needs it; there are
// no ambient path globals.
type Config struct {
	// DataDir is where the card store, global state, scan index and lock
	// marker live. One local file per data set.
	DataDir string `mapstructure:"data_dir" validate:"required"`

	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=text json"`

	// Algorithm selects the spaced-repetition model for revise sessions.
	Algorithm string `mapstructure:"algorithm" validate:"required,oneof=sm2 sm5 simple8"`

	// LeechThreshold is the failure count at which a card is flagged as a
	// leech. Zero disables leech marking.
	LeechThreshold uint64 `mapstructure:"leech_threshold"`
	// LeechPolicy controls whether leeches are skipped or included with a
	// warning during selection.
	LeechPolicy string `mapstructure:"leech_policy" validate:"required,oneof=skip warn"`

	// MaxCards caps how many cards one revise session presents.
	MaxCards int `mapstructure:"max_cards" validate:"gt=0"`
	// MaxDurationMinutes bounds the wall-clock length of a revise session.
	MaxDurationMinutes int `mapstructure:"max_duration_minutes" validate:"gt=0"`
	// CramHours is the elapsed-hours due threshold used by cram mode.
	CramHours int `mapstructure:"cram_hours" validate:"gt=0"`

	// Extensions filters which files a folder scan considers.
	Extensions []string `mapstructure:"extensions" validate:"required,min=1"`
}

// CardStorePath returns the location of the card database file.
func (c *Config) CardStorePath() string {
	return filepath.Join(c.DataDir, "cards.json")
}

// GlobalStatePath returns the location of the global-state file.
func (c *Config) GlobalStatePath() string {
	return filepath.Join(c.DataDir, "state.json")
}

// ScanIndexPath returns the location of the scan-index file.
func (c *Config) ScanIndexPath() string {
	return filepath.Join(c.DataDir, "scan-index.json")
}

// LockPath returns the location of the instance-lock marker file.
func (c *Config) LockPath() string {
	return filepath.Join(c.DataDir, "carddown.lock")
}
