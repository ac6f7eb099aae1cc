package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// TelegramConfig holds Telegram-specific settings
type TelegramConfig struct {
	Token string `yaml:"token" env:"BOT_TOKEN"` // Bot token from @BotFather
}

// DictionaryConfig holds WordsAPI settings
type DictionaryConfig struct {
	BaseURL     string `yaml:"base_url"     env:"DICTIONARY_BASE_URL"     env-default:"https://wordsapiv1.p.rapidapi.com"`
	Host        string `yaml:"host"         env:"DICTIONARY_HOST"         env-default:"wordsapiv1.p.rapidapi.com"`
	APIKey      string `yaml:"api_key"      env:"RAPIDAPI_KEY"`
	SearchLimit int    `yaml:"search_limit" env:"DICTIONARY_SEARCH_LIMIT" env-default:"10"`
}

// CatConfig holds cat image service settings
type CatConfig struct {
	BaseURL string `yaml:"base_url" env:"CAT_BASE_URL" env-default:"https://cataas.com"`
}

// Config holds the bot configuration
type Config struct {
	Telegram    TelegramConfig   `yaml:"telegram"`
	Dictionary  DictionaryConfig `yaml:"dictionary"`
	Cat         CatConfig        `yaml:"cat"`
	HTTPTimeout time.Duration    `yaml:"http_timeout" env:"HTTP_TIMEOUT" env-default:"15s"` // network-level timeout for upstream calls
	Allowlist   []int64          `yaml:"allowlist"`                                         // Telegram user IDs allowed to use the bot; empty allows everyone
	LogFile     string           `yaml:"log_file"   env:"LOG_FILE"`                         // path to log file
	LogFormat   string           `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`    // text or json
	Debug       bool             `yaml:"debug"      env:"DEBUG"`                            // enable debug logging
}

// Load reads the configuration and validates everything the bot needs.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads the config file at path, then applies environment overrides
// and defaults. An empty path reads from the environment only. Nothing is
// validated.
func Read(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings the bot cannot run without
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return errors.New("telegram.token is required")
	}
	return c.ValidateServices()
}

// ValidateServices checks everything except the Telegram settings.
func (c *Config) ValidateServices() error {
	if c.Dictionary.APIKey == "" {
		return errors.New("dictionary.api_key is required")
	}
	if c.Dictionary.SearchLimit <= 0 {
		return fmt.Errorf("dictionary.search_limit must be > 0 (got %d)", c.Dictionary.SearchLimit)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must be >= 0 (got %s)", c.HTTPTimeout)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json (got %q)", c.LogFormat)
	}
	return nil
}

// IsAllowed checks if the given Telegram user ID may use the bot
func (c *Config) IsAllowed(userID int64) bool {
	if len(c.Allowlist) == 0 {
		return true
	}
	return slices.Contains(c.Allowlist, userID)
}
