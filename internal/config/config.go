package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thenoetrevino/hirepaso/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// ColorScheme is re-exported so callers only need the config package
type ColorScheme = colors.ColorScheme

// DefaultBaseURL is the remote recruiting API used when nothing else is configured
const DefaultBaseURL = "https://api.talentengine.tech"

// Config represents the application configuration
type Config struct {
	API         APIConfig         `yaml:"api"`
	KeyMappings KeyMappings       `yaml:"key_mappings"`
	ColorScheme ColorScheme       `yaml:"theme"`
	StageColors map[string]string `yaml:"stage_colors"`
	LogLevel    string            `yaml:"log_level"`
	MetricsAddr string            `yaml:"metrics_addr"`
}

// APIConfig configures the client for the remote job/application service
type APIConfig struct {
	BaseURL        string               `yaml:"base_url"`
	Timeout        time.Duration        `yaml:"timeout"`
	RateLimit      float64              `yaml:"rate_limit"` // requests per second
	Burst          int                  `yaml:"burst"`
	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker"`
	OrganisationID string               `yaml:"organisation_id"` // scopes vacancy listings
}

// CircuitBreakerConfig controls when outbound calls stop hitting a failing service
type CircuitBreakerConfig struct {
	Enabled          bool          `yaml:"enabled"`
	MaxRequests      uint32        `yaml:"max_requests"`
	Interval         time.Duration `yaml:"interval"`
	Timeout          time.Duration `yaml:"timeout"`
	MinRequests      uint32        `yaml:"min_requests"`
	FailureThreshold float64       `yaml:"failure_threshold"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from HIREPASO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("HIREPASO_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadEnvOverrides applies HIREPASO_* environment variables on top of the file config
func loadEnvOverrides(config *Config) {
	if url := strings.TrimSpace(os.Getenv("HIREPASO_API_URL")); url != "" {
		config.API.BaseURL = url
	}
	if level := strings.TrimSpace(os.Getenv("HIREPASO_LOG_LEVEL")); level != "" {
		config.LogLevel = level
	}
	if addr := strings.TrimSpace(os.Getenv("HIREPASO_METRICS_ADDR")); addr != "" {
		config.MetricsAddr = addr
	}
	if org := strings.TrimSpace(os.Getenv("HIREPASO_ORGANISATION_ID")); org != "" {
		config.API.OrganisationID = org
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		loadEnvOverrides(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		loadEnvOverrides(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)
	loadEnvOverrides(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// StagePalette returns the stage accent colors with any configured overrides applied
func (c *Config) StagePalette() colors.StagePalette {
	return colors.DefaultStagePalette().Merge(c.StageColors)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "hirepaso", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "hirepaso", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	c.API.applyDefaults()
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// applyDefaults fills in missing API settings.
// The circuit breaker stays disabled unless the file enables it.
func (a *APIConfig) applyDefaults() {
	if a.BaseURL == "" {
		a.BaseURL = DefaultBaseURL
	}
	a.BaseURL = strings.TrimRight(a.BaseURL, "/")
	if a.Timeout <= 0 {
		a.Timeout = 15 * time.Second
	}
	if a.RateLimit <= 0 {
		a.RateLimit = 10
	}
	if a.Burst <= 0 {
		a.Burst = 5
	}

	cb := &a.CircuitBreaker
	if cb.MaxRequests == 0 {
		cb.MaxRequests = 3
	}
	if cb.Interval <= 0 {
		cb.Interval = 60 * time.Second
	}
	if cb.Timeout <= 0 {
		cb.Timeout = 30 * time.Second
	}
	if cb.MinRequests == 0 {
		cb.MinRequests = 5
	}
	if cb.FailureThreshold <= 0 {
		cb.FailureThreshold = 0.6
	}
}
