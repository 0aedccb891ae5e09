// Package config resolves quizcore's runtime configuration. Values come
// from CLI flags bound into viper, then QUIZ_* environment variables, then
// defaults.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the resolved runtime configuration.
type Config struct {
	// Addr is the TCP listen address for serve mode.
	Addr string

	// DBPath is the SQLite database file holding the items.
	DBPath string

	// Seed controls whether an empty store gets the starter items.
	Seed bool

	// Plain disables styled output on session streams.
	Plain bool

	// LogLevel and LogFile configure the logger.
	LogLevel string
	LogFile  string
}

// SetDefaults registers the default values on viper. Call once before Load,
// after flags are bound.
func SetDefaults() {
	viper.SetDefault("addr", ":3030")
	viper.SetDefault("db", "quizzes.sqlite")
	viper.SetDefault("seed", true)
	viper.SetDefault("plain", false)
	viper.SetDefault("log-level", "")
	viper.SetDefault("log-file", "")
}

// Load resolves the configuration from viper's current state. Environment
// variables use the QUIZ prefix with dashes mapped to underscores, e.g.
// QUIZ_LOG_LEVEL.
func Load() Config {
	viper.SetEnvPrefix("QUIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return Config{
		Addr:     viper.GetString("addr"),
		DBPath:   viper.GetString("db"),
		Seed:     viper.GetBool("seed"),
		Plain:    viper.GetBool("plain"),
		LogLevel: viper.GetString("log-level"),
		LogFile:  viper.GetString("log-file"),
	}
}
