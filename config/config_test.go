package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	content := `
version: v1
prefix: shiftbase-sync
subscription: 00000000-0000-0000-0000-000000000000
location: westeurope

app:
  api_url: https://api.shiftbase.com/api
  api_key: test-key
  db_connection_string: "Server=db;Database=sync"
  db_target_table: shift_report
`
	path := filepath.Join(t.TempDir(), "sbdeploy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Prefix != "shiftbase-sync" {
		t.Errorf("Prefix = %v, want shiftbase-sync", cfg.Prefix)
	}
	if cfg.Location != "westeurope" {
		t.Errorf("Location = %v, want westeurope", cfg.Location)
	}
	if cfg.App.DBTargetTable != "shift_report" {
		t.Errorf("DBTargetTable = %v, want shift_report", cfg.App.DBTargetTable)
	}

	// Runtime defaults are filled in.
	if cfg.Runtime.Worker != "python" {
		t.Errorf("Runtime.Worker = %v, want python", cfg.Runtime.Worker)
	}
	if cfg.Runtime.ExtensionVersion != "~4" {
		t.Errorf("Runtime.ExtensionVersion = %v, want ~4", cfg.Runtime.ExtensionVersion)
	}
}

func TestLoadConfig_EnvOverridesSecrets(t *testing.T) {
	content := `
version: v1
prefix: shiftbase-sync
subscription: 00000000-0000-0000-0000-000000000000
location: westeurope

app:
  api_url: https://api.shiftbase.com/api
  api_key: file-key
  db_target_table: shift_report
`
	path := filepath.Join(t.TempDir(), "sbdeploy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SHIFTBASE_API_KEY", "env-key")
	t.Setenv("DB_CONNECTION_STRING", "Server=env;Database=sync")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.App.APIKey != "env-key" {
		t.Errorf("APIKey = %v, want env-key", cfg.App.APIKey)
	}
	if cfg.App.DBConnectionString != "Server=env;Database=sync" {
		t.Errorf("DBConnectionString = %v", cfg.App.DBConnectionString)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Version:      "v1",
		Prefix:       "shiftbase-sync",
		Subscription: "sub",
		Location:     "westeurope",
		App: App{
			APIURL:        "https://api.shiftbase.com/api",
			DBTargetTable: "shift_report",
		},
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}, wantErr: false},
		{name: "missing version", mutate: func(c *Config) { c.Version = "" }, wantErr: true},
		{name: "missing prefix", mutate: func(c *Config) { c.Prefix = "" }, wantErr: true},
		{name: "missing subscription", mutate: func(c *Config) { c.Subscription = "" }, wantErr: true},
		{name: "missing location", mutate: func(c *Config) { c.Location = "" }, wantErr: true},
		{name: "missing api url", mutate: func(c *Config) { c.App.APIURL = "" }, wantErr: true},
		{name: "missing target table", mutate: func(c *Config) { c.App.DBTargetTable = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
