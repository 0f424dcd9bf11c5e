// Package config loads process-level knobs for the simulator's CLI
// entrypoints. Game inputs (teams, rosters, seeds) are never read from
// here — they are parameters to engine.Simulate, not process config.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Telemetry
	LogLevel string

	// SafetyCap is read from SIM_SAFETY_CAP (default 300). The engine does
	// not consult it: its per-game event cap is the constant safetyCapEvents.
	SafetyCap int

	// TablesOverridePath optionally points at a YAML file of overrides for
	// the baseline probability/yardage tables. tables.LoadOverrides applies
	// such a file; no entrypoint in this repository calls it.
	TablesOverridePath string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevel:           envStr("LOG_LEVEL", "info"),
		SafetyCap:          envInt("SIM_SAFETY_CAP", 300),
		TablesOverridePath: envStr("SIM_TABLES_PATH", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
