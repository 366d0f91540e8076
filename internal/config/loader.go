package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load builds the configuration from env-default tags, an optional YAML
// file and the environment, in increasing priority.
//
// The file is CONFIG_PATH when set, which must then exist, or
// ./config.yaml when present. Load does not validate: CLI flags may still
// fill in required values, so callers run Validate once overrides are
// applied.
func Load() (*Config, error) {
	var cfg Config

	path, err := resolvePath()
	if err != nil {
		return nil, err
	}

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return &cfg, nil
}

// resolvePath returns the YAML file to read, or "" for environment only.
func resolvePath() (string, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: file %s: %w", path, err)
		}
		return path, nil
	}

	_, err := os.Stat(defaultPath)
	switch {
	case err == nil:
		return defaultPath, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("config: file %s: %w", defaultPath, err)
	}
}
