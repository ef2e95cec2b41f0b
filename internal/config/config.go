package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"jsonlens/internal/errors"
)

// Config represents the complete configuration for jsonlens. It only
// holds presentation defaults; every core operation stays a pure
// function of its inputs regardless of what is configured here.
type Config struct {
	Format  FormatConfig  `yaml:"format"`
	Search  SearchConfig  `yaml:"search"`
	Compare CompareConfig `yaml:"compare"`
}

// FormatConfig controls JSON formatting defaults
type FormatConfig struct {
	// Indent is the number of spaces per nesting level: 0 (minified),
	// 2, 4 or 8.
	Indent   int  `yaml:"indent"`
	SortKeys bool `yaml:"sort_keys"`
}

// SearchConfig controls in-document search defaults
type SearchConfig struct {
	CaseSensitive bool `yaml:"case_sensitive"`
}

// CompareConfig controls text comparison defaults
type CompareConfig struct {
	CollapseWhitespace bool `yaml:"collapse_whitespace"`
	IgnoreCase         bool `yaml:"ignore_case"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Format: FormatConfig{
			Indent:   2,
			SortKeys: false,
		},
		Search: SearchConfig{
			CaseSensitive: false,
		},
		Compare: CompareConfig{
			CollapseWhitespace: false,
			IgnoreCase:         false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	// Start with defaults so a partial file only overrides what it sets
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values against the supported ranges
func (c *Config) Validate() error {
	switch c.Format.Indent {
	case 0, 2, 4, 8:
		return nil
	default:
		return errors.NewConfigError(
			fmt.Sprintf("unsupported indent width %d", c.Format.Indent),
			errors.ErrInvalidIndent,
		)
	}
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonlens.yml", ".jsonlens.yaml", "jsonlens.yml", "jsonlens.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Load resolves the effective configuration: an explicit path wins,
// otherwise the first discovered config file, otherwise defaults.
func Load(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return LoadConfig(explicitPath)
	}
	if found := FindConfigFile(); found != "" {
		return LoadConfig(found)
	}
	return NewConfig(), nil
}
