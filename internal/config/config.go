package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings clueboard reads from its TOML file.
type Config struct {
	APIBase          string
	CategoryCount    int
	CluesPerCategory int
	PoolSize         int
	RequestTimeout   time.Duration
	LoadTimeout      time.Duration
	LogFile          string
	Listen           string
}

const (
	DefaultPath = "~/.config/clueboard/config.toml"

	defaultAPIBase          = "https://rithm-jeopardy.herokuapp.com/api/"
	defaultCategoryCount    = 6
	defaultCluesPerCategory = 5
	defaultPoolSize         = 100
	defaultRequestTimeout   = 10 * time.Second
	defaultLoadTimeout      = 30 * time.Second
	defaultLogFile          = "~/.local/state/clueboard/clueboard.log"
	defaultListen           = "127.0.0.1:8080"
)

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	return Config{
		APIBase:          defaultAPIBase,
		CategoryCount:    defaultCategoryCount,
		CluesPerCategory: defaultCluesPerCategory,
		PoolSize:         defaultPoolSize,
		RequestTimeout:   defaultRequestTimeout,
		LoadTimeout:      defaultLoadTimeout,
		LogFile:          mustExpand(defaultLogFile),
		Listen:           defaultListen,
	}
}

type rawConfig struct {
	APIBase          string `toml:"api_base"`
	CategoryCount    int    `toml:"category_count"`
	CluesPerCategory int    `toml:"clues_per_category"`
	PoolSize         int    `toml:"pool_size"`
	RequestTimeout   string `toml:"request_timeout"`
	LoadTimeout      string `toml:"load_timeout"`
	LogFile          string `toml:"log_file"`
	Listen           string `toml:"listen"`
}

// Load locates and parses the config file, falling back to defaults when missing.
// Zero or blank values keep their defaults; Validate catches the rest.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = v
	}
	if raw.CategoryCount != 0 {
		cfg.CategoryCount = raw.CategoryCount
	}
	if raw.CluesPerCategory != 0 {
		cfg.CluesPerCategory = raw.CluesPerCategory
	}
	if raw.PoolSize != 0 {
		cfg.PoolSize = raw.PoolSize
	}
	if cfg.RequestTimeout, err = parseDuration("request_timeout", raw.RequestTimeout, cfg.RequestTimeout); err != nil {
		return Config{}, err
	}
	if cfg.LoadTimeout, err = parseDuration("load_timeout", raw.LoadTimeout, cfg.LoadTimeout); err != nil {
		return Config{}, err
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Listen); v != "" {
		cfg.Listen = v
	}

	return cfg, nil
}

// Validate reports settings that cannot produce a board.
func (c Config) Validate() error {
	switch {
	case c.CategoryCount <= 0:
		return fmt.Errorf("category_count must be positive, got %d", c.CategoryCount)
	case c.CluesPerCategory <= 0:
		return fmt.Errorf("clues_per_category must be positive, got %d", c.CluesPerCategory)
	case c.PoolSize < c.CategoryCount:
		return fmt.Errorf("pool_size (%d) must be at least category_count (%d)", c.PoolSize, c.CategoryCount)
	case c.RequestTimeout <= 0:
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	case c.LoadTimeout <= 0:
		return fmt.Errorf("load_timeout must be positive, got %s", c.LoadTimeout)
	}
	return nil
}

// ExpandPath expands a leading tilde and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", key, err)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(DefaultPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
