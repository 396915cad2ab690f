package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "http://localhost:8080/api"
	defaultTimeout = 15 * time.Second
)

type Config struct {
	BaseURL     string
	StateDir    string
	DBPath      string
	LogPath     string
	HTTPTimeout time.Duration
}

type fileConfig struct {
	APIBaseURL         string `yaml:"api_base_url"`
	StateDir           string `yaml:"state_dir"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
}

// Load reads the YAML config at path, applying defaults for absent keys.
// A missing file is not an error; everything then comes from defaults.
func Load(path string) (Config, error) {
	var fc fileConfig
	if path != "" {
		payload, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(payload, &fc); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// defaults only
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		BaseURL:     strings.TrimRight(fc.APIBaseURL, "/"),
		StateDir:    fc.StateDir,
		HTTPTimeout: defaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".turma")
	}
	if fc.HTTPTimeoutSeconds > 0 {
		cfg.HTTPTimeout = time.Duration(fc.HTTPTimeoutSeconds) * time.Second
	}
	cfg.DBPath = filepath.Join(cfg.StateDir, "state.db")
	cfg.LogPath = filepath.Join(cfg.StateDir, "turma.log")
	return cfg, nil
}

// DefaultPath is the config file looked up when --config is not given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".turma", "config.yaml")
}
