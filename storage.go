package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/hiromasa5450/tetlris/internal/tetris"
)

const (
	minDropIntervalMS = 50
	maxDropIntervalMS = 2000
)

type Config struct {
	Theme            string `json:"theme"`
	Shadow           bool   `json:"shadow"`
	Scale            int    `json:"scale"`
	DropIntervalMS   int    `json:"drop_interval_ms"`
	InputWhilePaused bool   `json:"input_while_paused"`
}

func defaultConfig() Config {
	return Config{
		Theme:          themes[0].Name,
		Shadow:         true,
		Scale:          1,
		DropIntervalMS: int(tetris.DefaultDropInterval / time.Millisecond),
	}
}

func (c Config) dropInterval() time.Duration {
	return time.Duration(clampDropInterval(c.DropIntervalMS)) * time.Millisecond
}

func loadConfig() (Config, error) {
	config := defaultConfig()
	path, err := configPath()
	if err != nil {
		return config, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, nil
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return defaultConfig(), err
	}
	return normalizeConfig(config), nil
}

func saveConfig(config Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func normalizeConfig(config Config) Config {
	if themeIndexByName(config.Theme) < 0 {
		config.Theme = themes[0].Name
	}
	config.Scale = clampScale(config.Scale)
	config.DropIntervalMS = clampDropInterval(config.DropIntervalMS)
	return config
}

func clampDropInterval(ms int) int {
	if ms == 0 {
		return int(tetris.DefaultDropInterval / time.Millisecond)
	}
	if ms < minDropIntervalMS {
		return minDropIntervalMS
	}
	if ms > maxDropIntervalMS {
		return maxDropIntervalMS
	}
	return ms
}

func configPath() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, "tetlris")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
