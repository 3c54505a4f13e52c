// Package config handles the global deckcite configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/deckcite/deckcite/internal/format"
)

// Config is the configuration stored in ~/.config/deckcite/config.yml.
type Config struct {
	// Template and Delimiter configure citation rendering.
	Template  string `yaml:"template,omitempty"`
	Delimiter string `yaml:"delimiter,omitempty"`

	// StartIndex offsets citation numbering on every page.
	StartIndex int `yaml:"start_index,omitempty"`

	// SearchLimit caps bibliography search results.
	SearchLimit int `yaml:"search_limit,omitempty"`

	// Mailto is the contact address sent to Crossref (polite pool).
	Mailto string `yaml:"mailto,omitempty"`

	// Abbreviate toggles journal-abbreviation lookups.
	Abbreviate bool `yaml:"abbreviate,omitempty"`

	// CacheDir overrides the abbreviation cache location.
	CacheDir string `yaml:"cache_dir,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "deckcite"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// CacheDBFile is the abbreviation cache file name.
	CacheDBFile = "abbrev.db"
)

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/deckcite/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the config file. A missing file yields the defaults, not
// an error.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		cfg.applyDefaults()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config file, creating the config directory if
// needed.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the config to an explicit path.
func (c *Config) SaveTo(path string) error {
	if path == "" {
		return fmt.Errorf("cannot resolve config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Template == "" {
		c.Template = format.DefaultTemplate
	}
	if c.Delimiter == "" {
		c.Delimiter = format.DefaultDelimiter
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = 10
	}
}

// FormatSpec returns the format spec configured here.
func (c *Config) FormatSpec() format.Spec {
	return format.Spec{Template: c.Template, Delimiter: c.Delimiter}
}

// CachePath returns the abbreviation cache location, honoring the
// CacheDir override and defaulting next to the config file.
func (c *Config) CachePath() string {
	dir := c.CacheDir
	if dir == "" {
		p := Path()
		if p == "" {
			return ""
		}
		dir = filepath.Dir(p)
	}
	return filepath.Join(dir, CacheDBFile)
}
