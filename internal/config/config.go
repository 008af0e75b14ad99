// Package config loads application configuration from
// .brandstudio/config.json in the workspace, with environment variable
// overrides. A missing file yields defaults; the API key only ever comes
// from the environment and is never written to disk.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"brandstudio/internal/quota"

	"github.com/joho/godotenv"
)

// Environment variables recognized at load time.
const (
	EnvAPIKey       = "GEMINI_API_KEY"
	EnvCaptionModel = "BRANDSTUDIO_CAPTION_MODEL"
	EnvImageModel   = "BRANDSTUDIO_IMAGE_MODEL"
)

// LoggingConfig mirrors the logging block consumed by internal/logging.
type LoggingConfig struct {
	DebugMode  bool            `json:"debug_mode"`
	Categories map[string]bool `json:"categories,omitempty"`
	Level      string          `json:"level,omitempty"`
}

// PlanLimits lets a deployment override the built-in tier table.
type PlanLimits struct {
	Free  int `json:"free"`
	Basic int `json:"basic"`
	Pro   int `json:"pro"`
}

// Config is the full application configuration.
type Config struct {
	CaptionModel string        `json:"caption_model,omitempty"`
	ImageModel   string        `json:"image_model,omitempty"`
	PlanLimits   PlanLimits    `json:"plan_limits"`
	Logging      LoggingConfig `json:"logging"`

	// APIKey is environment-only; json:"-" keeps it out of the file.
	APIKey string `json:"-"`
}

// Path returns the config file location for a workspace.
func Path(workspace string) string {
	return filepath.Join(workspace, ".brandstudio", "config.json")
}

// Load reads the workspace config. A .env file in the workspace is loaded
// first (missing .env is fine), then config.json, then env overrides.
func Load(workspace string) (*Config, error) {
	// Best effort; a missing .env simply means the key is already in the
	// environment.
	_ = godotenv.Load(filepath.Join(workspace, ".env"))

	cfg := defaults()

	data, err := os.ReadFile(Path(workspace))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)
	fillDefaults(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		PlanLimits: PlanLimits{
			Free:  quota.DefaultFreeLimit,
			Basic: quota.DefaultBasicLimit,
			Pro:   quota.DefaultProLimit,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvCaptionModel); v != "" {
		cfg.CaptionModel = v
	}
	if v := os.Getenv(EnvImageModel); v != "" {
		cfg.ImageModel = v
	}
}

// fillDefaults repairs zero or negative limits from a hand-edited file.
func fillDefaults(cfg *Config) {
	if cfg.PlanLimits.Free <= 0 {
		cfg.PlanLimits.Free = quota.DefaultFreeLimit
	}
	if cfg.PlanLimits.Basic <= 0 {
		cfg.PlanLimits.Basic = quota.DefaultBasicLimit
	}
	if cfg.PlanLimits.Pro <= 0 {
		cfg.PlanLimits.Pro = quota.DefaultProLimit
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Limits converts the configured table to the quota package's type.
func (c *Config) Limits() quota.Limits {
	return quota.Limits{
		Free:  c.PlanLimits.Free,
		Basic: c.PlanLimits.Basic,
		Pro:   c.PlanLimits.Pro,
	}
}

// WriteDefault creates .brandstudio/config.json with defaults if it does
// not exist yet. Returns the path written, or "" if the file already
// existed.
func WriteDefault(workspace string) (string, error) {
	path := Path(workspace)
	if _, err := os.Stat(path); err == nil {
		return "", nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := json.MarshalIndent(defaults(), "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}
