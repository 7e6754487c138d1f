package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails.
var ErrConfigValidation = errors.New("configuration validation failed")

// Config is the project configuration, loaded from .treegram.yaml.
type Config struct {
	Start  string `yaml:"start"`  // default start production
	Format string `yaml:"format"` // default output format
}

var knownFormats = []string{"tree", "json", "yaml", "xml"}

// LoadConfig loads the configuration file, falling back to defaults when it
// does not exist. A .env file in the current directory is loaded first, and
// the TREEGRAM_START / TREEGRAM_FORMAT environment variables override the
// file's values.
func LoadConfig(configPath string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	config := &Config{Format: "tree"}

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Strict mode so typos in field names surface instead of being
		// silently ignored.
		if err := yaml.UnmarshalWithOptions(data, config, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		if config.Format == "" {
			config.Format = "tree"
		}
	}

	if v := os.Getenv("TREEGRAM_START"); v != "" {
		config.Start = v
	}

	if v := os.Getenv("TREEGRAM_FORMAT"); v != "" {
		config.Format = v
	}

	if !slices.Contains(knownFormats, config.Format) {
		return nil, fmt.Errorf("%w: unknown format %q", ErrConfigValidation, config.Format)
	}

	return config, nil
}

// loadEnvFiles loads a .env file from the current directory if one exists.
func loadEnvFiles() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}

	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	return nil
}
