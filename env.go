package main

import (
	"os"
	"strconv"
	"strings"
)

// applyEnvOverrides lets TETLRIS_* variables win over the saved config.
func applyEnvOverrides(config Config) Config {
	if raw, ok := os.LookupEnv("TETLRIS_DROP_INTERVAL_MS"); ok {
		if ms, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			config.DropIntervalMS = clampDropInterval(ms)
		} else {
			DebugLogf("ignoring TETLRIS_DROP_INTERVAL_MS=%q: %v", raw, err)
		}
	}
	if raw, ok := os.LookupEnv("TETLRIS_INPUT_WHILE_PAUSED"); ok {
		if enabled, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
			config.InputWhilePaused = enabled
		} else {
			DebugLogf("ignoring TETLRIS_INPUT_WHILE_PAUSED=%q: %v", raw, err)
		}
	}
	return config
}
