package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v3"
)

// defaultDebounceMS is the quiet period before a typed query is searched.
const defaultDebounceMS = 500

// Config represents the main application configuration.
type Config struct {
	// Metadata provider
	TMDb TMDbConfig `yaml:"tmdb"`

	// Frontends
	Telegram *TelegramConfig `yaml:"telegram,omitempty"`

	// Application settings
	App AppConfig `yaml:"app"`
}

// TMDbConfig holds TMDb API configuration.
type TMDbConfig struct {
	APIKey string `yaml:"api_key"`
	// RelayURL, if set, is a CORS-forwarding proxy prefix the full target
	// URL is appended to. Empty means requests hit the API origin directly.
	RelayURL string `yaml:"relay_url,omitempty"`
}

// TelegramConfig holds Telegram bot configuration.
type TelegramConfig struct {
	BotToken       string  `yaml:"bot_token"`
	AllowedUserIDs []int64 `yaml:"allowed_user_ids,omitempty"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel   string `yaml:"log_level"`             // "debug", "info", "warn", "error"
	DebounceMS int    `yaml:"debounce_ms,omitempty"` // search debounce delay in milliseconds
}

// Load loads configuration from a YAML file with environment variable
// overrides. A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	// Best-effort: absence of a .env file is not an error.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides overrides config values with environment variables.
func (c *Config) applyEnvOverrides() {
	// TMDb
	if v := os.Getenv("CINESCOUT_TMDB_API_KEY"); v != "" {
		c.TMDb.APIKey = v
	}
	if v := os.Getenv("CINESCOUT_TMDB_RELAY_URL"); v != "" {
		c.TMDb.RelayURL = v
	}

	// Telegram
	if c.Telegram != nil {
		if v := os.Getenv("CINESCOUT_TELEGRAM_BOT_TOKEN"); v != "" {
			c.Telegram.BotToken = v
		}
	}

	// App
	if v := os.Getenv("CINESCOUT_LOG_LEVEL"); v != "" {
		c.App.LogLevel = v
	}
	if v := os.Getenv("CINESCOUT_DEBOUNCE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.App.DebounceMS = ms
		}
	}
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.TMDb.APIKey == "" {
		return fmt.Errorf("tmdb.api_key is required")
	}

	if c.TMDb.RelayURL != "" &&
		!strings.HasPrefix(c.TMDb.RelayURL, "http://") &&
		!strings.HasPrefix(c.TMDb.RelayURL, "https://") {
		return fmt.Errorf("tmdb.relay_url must use http or https")
	}

	if c.Telegram != nil && c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required when telegram is configured")
	}

	switch strings.ToLower(c.App.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("app.log_level must be one of debug, info, warn, error")
	}

	// Set defaults
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.DebounceMS <= 0 {
		c.App.DebounceMS = defaultDebounceMS
	}

	return nil
}
