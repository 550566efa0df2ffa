/*
Package config manages TOML config for wordfinder.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/wordfinder/internal/utils"
	"github.com/bastiangx/wordfinder/pkg/finder"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Finder FinderConfig `toml:"finder"`
	Server ServerConfig `toml:"server"`
	Bench  BenchConfig  `toml:"bench"`
}

// FinderConfig selects the index strategy and case policy.
type FinderConfig struct {
	Strategy      string `toml:"strategy"`
	CaseSensitive bool   `toml:"case_sensitive"`
	Grid          string `toml:"grid"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxQueries int `toml:"max_queries"`
}

// BenchConfig shapes the generated benchmark data.
type BenchConfig struct {
	Rows       int     `toml:"rows"`
	Cols       int     `toml:"cols"`
	StreamSize int     `toml:"stream_size"`
	MinWordLen int     `toml:"min_word_len"`
	MaxWordLen int     `toml:"max_word_len"`
	HitRatio   float64 `toml:"hit_ratio"`
	Seed       int64   `toml:"seed"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Finder: FinderConfig{
			Strategy:      string(finder.StrategyTrie),
			CaseSensitive: true,
		},
		Server: ServerConfig{
			MaxQueries: 100000,
		},
		Bench: BenchConfig{
			Rows:       finder.MaxRows,
			Cols:       finder.MaxCols,
			StreamSize: 1000,
			MinWordLen: 3,
			MaxWordLen: 9,
			HitRatio:   0,
			Seed:       0,
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, err := finder.ParseStrategy(c.Finder.Strategy); err != nil {
		return err
	}
	if c.Server.MaxQueries < 1 {
		return fmt.Errorf("server.max_queries must be positive, got %d", c.Server.MaxQueries)
	}
	b := c.Bench
	if b.Rows < 1 || b.Rows > finder.MaxRows || b.Cols < 1 || b.Cols > finder.MaxCols {
		return fmt.Errorf("bench grid %dx%d outside 1x1..%dx%d", b.Rows, b.Cols, finder.MaxRows, finder.MaxCols)
	}
	if b.MinWordLen < 1 || b.MaxWordLen < b.MinWordLen {
		return fmt.Errorf("bench word length range [%d, %d] is invalid", b.MinWordLen, b.MaxWordLen)
	}
	if b.StreamSize < 0 {
		return fmt.Errorf("bench.stream_size must not be negative, got %d", b.StreamSize)
	}
	if b.HitRatio < 0 || b.HitRatio > 1 {
		return fmt.Errorf("bench.hit_ratio must be within [0, 1], got %g", b.HitRatio)
	}
	return nil
}

// FinderOptions translates the finder section into constructor options.
func (c *Config) FinderOptions() []finder.Option {
	return []finder.Option{finder.WithCaseSensitive(c.Finder.CaseSensitive)}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordfinder
// 2. ~/Library/Application Support/wordfinder (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordfinder")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "wordfinder")
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
// 2. Default path: [UserConfigDir]/wordfinder/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
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

// LoadConfig loads from a TOML file. Keys that fail to decode keep their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whichever keys still have the right type.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "finder"); ok {
		extractFinderConfig(section, &config.Finder)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "bench"); ok {
		extractBenchConfig(section, &config.Bench)
	}
	return config, nil
}

func extractFinderConfig(data map[string]any, f *FinderConfig) {
	if val, ok := utils.ExtractString(data, "strategy"); ok {
		f.Strategy = val
	}
	if val, ok := utils.ExtractBool(data, "case_sensitive"); ok {
		f.CaseSensitive = val
	}
	if val, ok := utils.ExtractString(data, "grid"); ok {
		f.Grid = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_queries"); ok {
		server.MaxQueries = val
	}
}

func extractBenchConfig(data map[string]any, bench *BenchConfig) {
	if val, ok := utils.ExtractInt64(data, "rows"); ok {
		bench.Rows = val
	}
	if val, ok := utils.ExtractInt64(data, "cols"); ok {
		bench.Cols = val
	}
	if val, ok := utils.ExtractInt64(data, "stream_size"); ok {
		bench.StreamSize = val
	}
	if val, ok := utils.ExtractInt64(data, "min_word_len"); ok {
		bench.MinWordLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_word_len"); ok {
		bench.MaxWordLen = val
	}
	if val, ok := utils.ExtractFloat(data, "hit_ratio"); ok {
		bench.HitRatio = val
	}
	if val, ok := utils.ExtractInt64(data, "seed"); ok {
		bench.Seed = int64(val)
	}
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

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
