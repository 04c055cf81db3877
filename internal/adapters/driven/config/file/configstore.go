// Package file provides TOML-backed configuration for DocChat.
// Configuration lives in ~/.docchat/config.toml; missing files and
// missing keys fall back to defaults so a fresh install works with no
// setup against a local document service.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultServerURL      = "http://localhost:8000"
	DefaultTimeoutSeconds = 120
)

// Config is the persisted client configuration.
type Config struct {
	// ServerURL is the document service root.
	ServerURL string `toml:"server_url"`

	// TimeoutSeconds bounds each service request, upload included.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// defaults returns a config with every field populated.
func defaults() Config {
	return Config{
		ServerURL:      DefaultServerURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Store reads and writes the config file.
type Store struct {
	mu       sync.Mutex
	filePath string
}

// NewStore creates a store rooted at configDir. If configDir is
// empty, defaults to ~/.docchat.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".docchat")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &Store{filePath: filepath.Join(configDir, "config.toml")}, nil
}

// Load reads the config, applying defaults for anything missing.
// A missing file is not an error.
func (s *Store) Load() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := defaults()

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return defaults(), fmt.Errorf("parse config: %w", err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return cfg, nil
}

// Save writes the config atomically: marshal to a temp file in the
// same directory, then rename over the target.
func (s *Store) Save(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.filePath
}
