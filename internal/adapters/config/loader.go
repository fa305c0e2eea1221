// Package config provides the configuration loader for pantry.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "pantry.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// NewLoader creates a FileConfigLoader.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{}
}

// Load reads the configuration file at path. A missing file yields the
// transport defaults with no endpoint configured.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file pantryfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg.BaseURL = strings.TrimRight(file.Service.BaseURL, "/")
	cfg.TokenEnv = file.Auth.TokenEnv
	cfg.Debug = file.Debug

	if file.Service.Retries < 0 {
		return nil, zerr.With(zerr.New("retries must not be negative"), "retries", file.Service.Retries)
	}
	if file.Service.Retries > 0 {
		cfg.Retries = file.Service.Retries
	}
	if cfg.Timeout, err = parseDuration(file.Service.Timeout, cfg.Timeout); err != nil {
		return nil, zerr.With(err, "field", "service.timeout")
	}
	if cfg.RetryDelay, err = parseDuration(file.Service.RetryDelay, cfg.RetryDelay); err != nil {
		return nil, zerr.With(err, "field", "service.retryDelay")
	}

	return cfg, nil
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, zerr.Wrap(err, "invalid duration")
	}
	if d <= 0 {
		return 0, zerr.New("duration must be positive")
	}
	return d, nil
}

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)
