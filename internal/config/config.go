package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values applied to absent fields before validation.
const (
	DefaultDatabase            = "seqid.db"
	DefaultListen              = ":8080"
	DefaultStorefrontOptionKey = "storefront_base_path"
)

// DefaultCategories is the category set used when no config file exists.
var DefaultCategories = []string{"product", "portfolio", "event"}

// Config is the seqid configuration.
type Config struct {
	// Database is the SQLite database path.
	Database string `yaml:"database" json:"database"`

	// Listen is the HTTP service address.
	Listen string `yaml:"listen" json:"listen"`

	// Categories is the fixed set of record categories eligible for
	// sequencing.
	Categories []string `yaml:"categories" json:"categories"`

	// Storefront, when present, names the one category whose base path
	// an external collaborator may override.
	Storefront *Storefront `yaml:"storefront" json:"storefront,omitempty"`
}

// Storefront binds the overridable category to its settings key.
type Storefront struct {
	Category  string `yaml:"category" json:"category"`
	OptionKey string `yaml:"option_key" json:"option_key"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{
		Categories: append([]string(nil), DefaultCategories...),
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads, decodes, and validates a YAML configuration file.
// A missing file is not an error: the defaults are returned, so a bare
// checkout works without any setup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyDefaults fills absent fields. Categories are deliberately not
// defaulted when a file supplies any content for them - an empty list in
// an explicit config is a validation error, not a silent fallback.
func (c *Config) applyDefaults() {
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Storefront != nil && c.Storefront.OptionKey == "" {
		c.Storefront.OptionKey = DefaultStorefrontOptionKey
	}
}

// StorefrontCategory returns the overridable category name, or "" when
// no storefront binding is configured.
func (c *Config) StorefrontCategory() string {
	if c.Storefront == nil {
		return ""
	}
	return c.Storefront.Category
}

// StorefrontOptionKey returns the settings key for the storefront
// override, or "" when no storefront binding is configured.
func (c *Config) StorefrontOptionKey() string {
	if c.Storefront == nil {
		return ""
	}
	return c.Storefront.OptionKey
}
