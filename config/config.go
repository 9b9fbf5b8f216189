package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything a deployment run needs: naming, target subscription
// and location, the function runtime, and the application inputs.
type Config struct {
	Version      string  `yaml:"version"`
	Prefix       string  `yaml:"prefix"`
	Subscription string  `yaml:"subscription"`
	Location     string  `yaml:"location"`
	Runtime      Runtime `yaml:"runtime,omitempty"`
	App          App     `yaml:"app"`
}

// Runtime selects the function worker stack.
type Runtime struct {
	Worker           string `yaml:"worker"`
	Version          string `yaml:"version"`
	ExtensionVersion string `yaml:"extension_version"`
}

// App carries the caller-supplied application settings. APIKey and
// DBConnectionString are secrets; prefer supplying them via environment
// (SHIFTBASE_API_KEY, DB_CONNECTION_STRING) over the config file.
type App struct {
	APIURL             string `yaml:"api_url"`
	APIKey             string `yaml:"api_key,omitempty"`
	DBConnectionString string `yaml:"db_connection_string,omitempty"`
	DBTargetTable      string `yaml:"db_target_table"`
}

// LoadConfig loads configuration from file and applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyEnv lets secrets come from the environment instead of the file.
func (c *Config) applyEnv() {
	if v := os.Getenv("SHIFTBASE_API_KEY"); v != "" {
		c.App.APIKey = v
	}
	if v := os.Getenv("DB_CONNECTION_STRING"); v != "" {
		c.App.DBConnectionString = v
	}
}

// Validate ensures config has required fields and fills runtime defaults.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}
	if c.Prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if c.Subscription == "" {
		return fmt.Errorf("subscription is required")
	}
	if c.Location == "" {
		return fmt.Errorf("location is required")
	}
	if c.App.APIURL == "" {
		return fmt.Errorf("app.api_url is required")
	}
	if c.App.DBTargetTable == "" {
		return fmt.Errorf("app.db_target_table is required")
	}

	if c.Runtime.Worker == "" {
		c.Runtime.Worker = "python"
	}
	if c.Runtime.Version == "" {
		c.Runtime.Version = "3.11"
	}
	if c.Runtime.ExtensionVersion == "" {
		c.Runtime.ExtensionVersion = "~4"
	}
	return nil
}
