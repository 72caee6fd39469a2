package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/jester/internal/jokeapi"
)

// Config captures everything jester reads at startup.
type Config struct {
	APIURL          string        `toml:"api_url" validate:"required,http_url"`
	DefaultCategory string        `toml:"default_category" validate:"required,category"`
	BlacklistFlags  []string      `toml:"blacklist_flags" validate:"dive,oneof=nsfw religious political racist sexist explicit"`
	RequestTimeout  time.Duration `toml:"request_timeout" validate:"gte=0"`
	LogFile         string        `toml:"log_file"`
	LogLevel        string        `toml:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

const (
	defaultConfigPath = "~/.config/jester/config.toml"
	defaultLogFile    = "~/.local/state/jester/jester.log"
	defaultLogLevel   = "info"
)

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	flags := make([]string, len(jokeapi.DefaultBlacklist))
	copy(flags, jokeapi.DefaultBlacklist)
	return Config{
		APIURL:          jokeapi.DefaultBaseURL,
		DefaultCategory: jokeapi.CategoryAny.String(),
		BlacklistFlags:  flags,
		LogFile:         mustExpand(defaultLogFile),
		LogLevel:        defaultLogLevel,
	}
}

// fileConfig mirrors config.toml.
type fileConfig struct {
	APIURL          string   `toml:"api_url"`
	DefaultCategory string   `toml:"default_category"`
	BlacklistFlags  []string `toml:"blacklist_flags"`
	RequestTimeout  string   `toml:"request_timeout"`
	LogFile         string   `toml:"log_file"`
	LogLevel        string   `toml:"log_level"`
}

// envConfig holds JESTER_* overrides. Empty values leave the file setting alone.
type envConfig struct {
	APIURL          string   `env:"JESTER_API_URL"`
	DefaultCategory string   `env:"JESTER_DEFAULT_CATEGORY"`
	BlacklistFlags  []string `env:"JESTER_BLACKLIST_FLAGS" envSeparator:","`
	RequestTimeout  string   `env:"JESTER_REQUEST_TIMEOUT"`
	LogFile         string   `env:"JESTER_LOG_FILE"`
	LogLevel        string   `env:"JESTER_LOG_LEVEL"`
}

// Load reads the config file, applies environment overrides and validates
// the result. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	raw, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.apply(raw); err != nil {
		return Config{}, err
	}

	var overrides envConfig
	if err := env.Parse(&overrides); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.apply(fileConfig(overrides)); err != nil {
		return Config{}, fmt.Errorf("env override: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Category returns the parsed default category.
func (c Config) Category() jokeapi.Category {
	category, err := jokeapi.ParseCategory(c.DefaultCategory)
	if err != nil {
		return jokeapi.CategoryAny
	}
	return category
}

func readFile(path string) (fileConfig, error) {
	var raw fileConfig

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return raw, nil
		}
		return raw, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return raw, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return raw, fmt.Errorf("parse config: %w", err)
	}
	return raw, nil
}

// apply overlays every non-empty value in raw onto c.
func (c *Config) apply(raw fileConfig) error {
	if v := strings.TrimSpace(raw.APIURL); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(raw.DefaultCategory); v != "" {
		if category, err := jokeapi.ParseCategory(v); err == nil {
			v = category.String()
		}
		c.DefaultCategory = v
	}
	if raw.BlacklistFlags != nil {
		flags := make([]string, 0, len(raw.BlacklistFlags))
		for _, f := range raw.BlacklistFlags {
			if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
				flags = append(flags, f)
			}
		}
		c.BlacklistFlags = flags
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse request_timeout %q: %w", v, err)
		}
		c.RequestTimeout = d
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		c.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
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
