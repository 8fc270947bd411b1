package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/RyanBlaney/grandstaff/algorithms/tonal"
	"github.com/RyanBlaney/grandstaff/logging"
)

// AutoKey selects the display key by estimating it from the sounding notes
const AutoKey = "auto"

// Config holds the display settings shared by the command line tools
type Config struct {
	Key           string   `json:"key"`                // Display key name, or "auto"
	ShortNotation bool     `json:"short_notation"`     // Use short chord suffixes (Δ7, m, °, +)
	LogLevel      string   `json:"log_level"`          // debug, info, warn, error
	Captions      []string `json:"captions,omitempty"` // Overrides the all-notes captions
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Key:           "C",
		ShortNotation: false,
		LogLevel:      "info",
	}
}

// Load reads a JSON config file on top of the defaults and validates it
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the key name and log level
func (c *Config) Validate() error {
	if !c.IsAutoKey() {
		if _, err := tonal.KeyByName(c.Key); err != nil {
			return err
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	for i, caption := range c.Captions {
		if strings.TrimSpace(caption) == "" {
			return fmt.Errorf("caption %d is empty", i)
		}
	}
	return nil
}

// IsAutoKey reports whether the key should be estimated
func (c *Config) IsAutoKey() bool {
	return strings.EqualFold(strings.TrimSpace(c.Key), AutoKey)
}

// Level returns the parsed log level
func (c *Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.InfoLevel
	}
	return level
}
