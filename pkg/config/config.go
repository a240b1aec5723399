/*
Package config manages TOML config for petserve.

Every value has a builtin default and the file itself is optional, so the
binary stays zero-configuration out of the box.
*/
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/amvalores/petserve/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Data   DataConfig   `toml:"data"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// DataConfig controls dataset acquisition and caching.
type DataConfig struct {
	BaseURL             string   `toml:"base_url"`
	Paths               []string `toml:"paths"`
	CachePath           string   `toml:"cache_path"`
	CacheTTLMinutes     int      `toml:"cache_ttl_minutes"`
	FetchTimeoutSeconds int      `toml:"fetch_timeout_seconds"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLimit     int `toml:"max_limit"`
	MaxQueryLen  int `toml:"max_query_len"`
	SuggestLimit int `toml:"suggest_limit"`
}

// CliConfig holds interactive CLI options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
	DebounceMs   int `toml:"debounce_ms"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			BaseURL:             "https://adoptmevalores.pages.dev",
			Paths:               []string{"/data/pets.json", "./data/pets.json", "../data/pets.json"},
			CacheTTLMinutes:     60,
			FetchTimeoutSeconds: 10,
		},
		Server: ServerConfig{
			MaxLimit:     64,
			MaxQueryLen:  60,
			SuggestLimit: 5,
		},
		CLI: CliConfig{
			DefaultLimit: 10,
			DebounceMs:   300,
		},
	}
}

// Candidates resolves the configured paths against the base URL, in order.
// Paths that are already absolute URLs pass through untouched; anything that
// cannot be resolved is skipped with a warning.
func (c *Config) Candidates() []string {
	base, err := url.Parse(c.Data.BaseURL)
	if err != nil {
		log.Warnf("Invalid base_url %q: %v", c.Data.BaseURL, err)
		base = nil
	}

	out := make([]string, 0, len(c.Data.Paths))
	for _, path := range c.Data.Paths {
		ref, err := url.Parse(path)
		if err != nil {
			log.Warnf("Skipping invalid data path %q: %v", path, err)
			continue
		}
		if ref.IsAbs() {
			out = append(out, ref.String())
			continue
		}
		if base == nil {
			continue
		}
		out = append(out, base.ResolveReference(ref).String())
	}
	return out
}

// CacheWindow returns the cache validity window as a duration.
func (c *Config) CacheWindow() time.Duration {
	return time.Duration(c.Data.CacheTTLMinutes) * time.Minute
}

// FetchTimeout returns the per-candidate request timeout.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Data.FetchTimeoutSeconds) * time.Second
}

// Debounce returns the input coalescing delay.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.CLI.DebounceMs) * time.Millisecond
}

// GetConfigDir returns the config directory with fallback priority:
// ~/.config/petserve, then the executable's directory.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primary := filepath.Join(homeDir, ".config", "petserve")
	if err := utils.EnsureDir(primary); err == nil {
		return primary, nil
	}
	return utils.GetExecutableDir()
}

// DefaultCachePath returns where the bolt cache file lives when the config
// does not name one.
func DefaultCachePath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pets-cache.db"), nil
}

// InitConfig loads config from file or creates a default one if missing.
// Any failure degrades to builtin defaults.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := utils.SaveTOMLFile(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file, salvaging what it can from broken
// files before giving up and returning defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// LoadConfigWithPriority loads config with priority: the custom path from
// the -config flag, then the default path, then builtin defaults.
func LoadConfigWithPriority(customPath string) (*Config, string, error) {
	if customPath != "" {
		if _, statErr := os.Stat(customPath); statErr == nil {
			config, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return config, customPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customPath, statErr)
		}
	}

	configDir, err := GetConfigDir()
	if err != nil {
		log.Warnf("Failed to determine config dir: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	defaultPath := filepath.Join(configDir, "config.toml")

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	return config, defaultPath, nil
}

// tryPartialParse salvages recognizable sections from a broken TOML file.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	loose, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(loose, "data"); ok {
		extractDataConfig(section, &config.Data)
	}
	if section, ok := utils.ExtractSection(loose, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(loose, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractDataConfig(data map[string]any, dc *DataConfig) {
	if val, ok := utils.ExtractString(data, "base_url"); ok {
		dc.BaseURL = val
	}
	if val, ok := utils.ExtractStringSlice(data, "paths"); ok {
		dc.Paths = val
	}
	if val, ok := utils.ExtractString(data, "cache_path"); ok {
		dc.CachePath = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_ttl_minutes"); ok {
		dc.CacheTTLMinutes = val
	}
	if val, ok := utils.ExtractInt64(data, "fetch_timeout_seconds"); ok {
		dc.FetchTimeoutSeconds = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_query_len"); ok {
		server.MaxQueryLen = val
	}
	if val, ok := utils.ExtractInt64(data, "suggest_limit"); ok {
		server.SuggestLimit = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "debounce_ms"); ok {
		cli.DebounceMs = val
	}
}
