// Package config loads and saves platform credentials. It is a collaborator
// of the publishing core, not part of it: clients receive credentials by
// value and never read ambient state.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/siy/cross-poster/types"
)

// Config is the on-disk credential bundle. Secrets are stored in plain text;
// the file is written 0600 for that reason.
type Config struct {
	Devto  types.DevtoCredentials  `yaml:"devto"`
	Medium types.MediumCredentials `yaml:"medium"`
}

// Path returns the config file location under the user config directory.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determine config directory: %w", err)
	}
	return filepath.Join(dir, "cross-poster", "config.yaml"), nil
}

// Init writes a template config if none exists and returns its path. The
// template carries placeholder values that the sanitizer later refuses to
// send to a platform.
func Init() (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	template := Config{
		Devto: types.DevtoCredentials{APIKey: "your_dev_to_api_key_here"},
		Medium: types.MediumCredentials{
			AccessToken: "your_medium_access_token_here",
			Username:    "your_medium_username_here",
		},
	}

	data, err := yaml.Marshal(template)
	if err != nil {
		return "", fmt.Errorf("serialize config template: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}

// Load reads the config file and applies environment overrides
// (DEVTO_API_KEY, MEDIUM_ACCESS_TOKEN, MEDIUM_USERNAME). A missing file is
// fine when the environment supplies the credentials.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// env-only configuration
	default:
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	if v := os.Getenv("DEVTO_API_KEY"); v != "" {
		cfg.Devto.APIKey = v
	}
	if v := os.Getenv("MEDIUM_ACCESS_TOKEN"); v != "" {
		cfg.Medium.AccessToken = v
	}
	if v := os.Getenv("MEDIUM_USERNAME"); v != "" {
		cfg.Medium.Username = v
	}

	return cfg, nil
}

// Masked returns a copy safe for display: secrets are replaced, the Medium
// username stays visible.
func (c Config) Masked() Config {
	masked := c
	masked.Devto.APIKey = mask(c.Devto.APIKey)
	masked.Medium.AccessToken = mask(c.Medium.AccessToken)
	return masked
}

func mask(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	return "********"
}
