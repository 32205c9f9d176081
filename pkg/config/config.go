/*
Package config manages TOML config for SentServe.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/bastiangx/sentserve/internal/utils"
	"github.com/bastiangx/sentserve/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Session SessionConfig `toml:"session"`
	Seed    SeedConfig    `toml:"seed"`
	Server  ServerConfig  `toml:"server"`
	CLI     CliConfig     `toml:"cli"`
}

// SessionConfig has the autocomplete options.
type SessionConfig struct {
	Limit      int    `toml:"limit"`
	Terminator string `toml:"terminator"`
}

// SeedConfig points at the historical data.
type SeedConfig struct {
	Path string `toml:"path"`
}

// ServerConfig has IPC related options.
type ServerConfig struct {
	MaxBuffer int `toml:"max_buffer"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	ShowFrequency bool `toml:"show_frequency"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			Limit:      suggest.DefaultLimit,
			Terminator: string(suggest.DefaultTerminator),
		},
		Seed: SeedConfig{
			Path: "",
		},
		Server: ServerConfig{
			MaxBuffer: 200,
		},
		CLI: CliConfig{
			ShowFrequency: true,
		},
	}
}

// TerminatorRune returns the configured terminator as a rune.
func (c *Config) TerminatorRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Session.Terminator)
	return r
}

// Validate checks values a session would reject.
func (c *Config) Validate() error {
	if c.Session.Limit < 1 {
		return fmt.Errorf("session.limit must be at least 1, got %d", c.Session.Limit)
	}
	if utf8.RuneCountInString(c.Session.Terminator) != 1 {
		return fmt.Errorf("session.terminator must be a single character, got %q", c.Session.Terminator)
	}
	if suggest.IsSentenceChar(c.TerminatorRune()) {
		return fmt.Errorf("session.terminator %q collides with sentence characters", c.Session.Terminator)
	}
	if c.Server.MaxBuffer < 1 {
		return fmt.Errorf("server.max_buffer must be at least 1, got %d", c.Server.MaxBuffer)
	}
	return nil
}

// SessionOptions converts the session section into suggest options.
func (c *Config) SessionOptions() []suggest.Option {
	return []suggest.Option{
		suggest.WithLimit(c.Session.Limit),
		suggest.WithTerminator(c.TerminatorRune()),
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "sentserve")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "sentserve")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/sentserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. A file that fails to decode as a whole is
// recovered section by section; values that still fail validation fall back to defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.DecodeConfigFile(configPath, config); err != nil {
		config = tryPartialParse(configPath)
	}
	if err := config.Validate(); err != nil {
		log.Warnf("Invalid config in %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// tryPartialParse recovers every well-typed key of a config that failed to decode as a whole.
func tryPartialParse(configPath string) *Config {
	config := DefaultConfig()

	sections, err := utils.ReadSections(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config
	}

	session := sections["session"]
	if val, ok := session.Int("limit"); ok {
		config.Session.Limit = val
	}
	if val, ok := session.String("terminator"); ok {
		config.Session.Terminator = val
	}
	if val, ok := sections["seed"].String("path"); ok {
		config.Seed.Path = val
	}
	if val, ok := sections["server"].Int("max_buffer"); ok {
		config.Server.MaxBuffer = val
	}
	if val, ok := sections["cli"].Bool("show_frequency"); ok {
		config.CLI.ShowFrequency = val
	}
	return config
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}
