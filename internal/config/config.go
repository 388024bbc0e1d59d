package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Sync    SyncConfig    `mapstructure:"sync"`
	Cache   CacheConfig   `mapstructure:"cache"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds admin backend configuration
type ServerConfig struct {
	URL      string `mapstructure:"url"`      // Backend base URL
	Token    string `mapstructure:"token"`    // Access token from login
	Username string `mapstructure:"username"` // Display only
}

// SyncConfig holds favorites sync configuration
type SyncConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

// CacheConfig holds local snapshot configuration
type CacheConfig struct {
	Dir string `mapstructure:"dir"` // Empty disables persistence
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{},
		Sync: SyncConfig{
			RefreshInterval: 30 * time.Second,
		},
		Cache: CacheConfig{
			Dir: defaultCachePath(),
		},
		UI: UIConfig{
			Theme: "default",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "virtue", "virtue.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "virtue", "virtue.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "virtue")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "virtue")
	}
}

// defaultCachePath returns the default snapshot directory for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "virtue", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "virtue", "cache")
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := Default()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("VIRTUE")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the current configuration to file
func Save(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("server.url", cfg.Server.URL)
	viper.Set("server.token", cfg.Server.Token)
	viper.Set("server.username", cfg.Server.Username)

	viper.Set("sync.refresh_interval", cfg.Sync.RefreshInterval)
	viper.Set("cache.dir", cfg.Cache.Dir)

	viper.Set("ui.theme", cfg.UI.Theme)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SaveToken updates just the token in the configuration
func SaveToken(token string) error {
	viper.Set("server.token", token)

	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the backend URL and token are set
func (c *Config) IsConfigured() bool {
	return c.Server.URL != "" && c.Server.Token != ""
}
