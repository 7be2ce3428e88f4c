// Package config handles loading configuration from .anchorrc files.
//
// A config is YAML (.anchorrc.yaml, .anchorrc.yml) or TOML (.anchorrc.toml).
// Both formats share one schema.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFileName is the default configuration file name.
const DefaultConfigFileName = ".anchorrc.yaml"

// FileNames are the names looked up in each directory, in order.
var FileNames = []string{DefaultConfigFileName, ".anchorrc.yml", ".anchorrc.toml"}

// OutputFormats are the report formats accepted by output.format.
var OutputFormats = []string{"text", "json", "yaml", "xml", "markdown", "msgpack"}

// Config represents the complete configuration structure.
type Config struct {
	// Types are the file types to scan (e.g. "md", "txt", "html").
	Types []string `yaml:"types" toml:"types"`

	Scan   ScanConfig   `yaml:"scan" toml:"scan"`
	Ignore IgnoreConfig `yaml:"ignore" toml:"ignore"`
	Render RenderConfig `yaml:"render" toml:"render"`
	Output OutputConfig `yaml:"output" toml:"output"`

	// path is the file the config was read from, empty when none.
	path string
}

// ScanConfig selects files.
type ScanConfig struct {
	// Include and Exclude are globs relative to the scanned root.
	Include []string `yaml:"include" toml:"include"`
	Exclude []string `yaml:"exclude" toml:"exclude"`

	// Strict fails on malformed files instead of skipping them.
	Strict bool `yaml:"strict" toml:"strict"`
}

// IgnoreConfig holds all ignore rules.
type IgnoreConfig struct {
	// Domains to ignore (automatically includes subdomains).
	// Example: "example.com" will also match "www.example.com", "api.example.com".
	Domains []string `yaml:"domains" toml:"domains"`

	// Patterns are glob patterns matched against the matched text.
	// Example: "*.local/*", "*/internal/*"
	Patterns []string `yaml:"patterns" toml:"patterns"`

	// Regex are regular expressions matched against the matched text.
	// Example: "^ftp:", "@noreply\\."
	Regex []string `yaml:"regex" toml:"regex"`

	// Kinds leaves every match of these kinds ("url", "email", "file") alone.
	Kinds []string `yaml:"kinds" toml:"kinds"`
}

// OutputConfig selects the report format of `anchor list`.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"`
	File   string `yaml:"file" toml:"file"`
}

// Path returns the file c was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// LoadFrom reads configuration from a specific path. The format follows the
// extension: .toml is TOML, anything else YAML.
// Returns an empty config if the file doesn't exist (not an error).
// Returns an error only if the file exists but cannot be read or parsed.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.path = path
	return cfg, nil
}

// FindAndLoad searches for a config file starting from the given directory
// and walking up to parent directories until it finds one or reaches root.
// This allows project-specific configs to be found from subdirectories.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		for _, name := range FileNames {
			configPath := filepath.Join(dir, name)
			if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
				return LoadFrom(configPath)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return &Config{}, nil
		}
		dir = parent
	}
}

// IsEmpty returns true if the config sets nothing.
func (c *Config) IsEmpty() bool {
	return len(c.Types) == 0 &&
		len(c.Scan.Include) == 0 &&
		len(c.Scan.Exclude) == 0 &&
		!c.Scan.Strict &&
		c.Ignore.IsEmpty() &&
		c.Render.IsEmpty() &&
		c.Output == OutputConfig{}
}

// IsEmpty returns true if no ignore rule is defined.
func (ic IgnoreConfig) IsEmpty() bool {
	return len(ic.Domains) == 0 &&
		len(ic.Patterns) == 0 &&
		len(ic.Regex) == 0 &&
		len(ic.Kinds) == 0
}

// HasTypes reports whether the config selects file types.
func (c *Config) HasTypes() bool {
	return len(c.Types) > 0
}

// Merge combines another config into this one. Lists are appended; scalars
// set in other win. This is how CLI flags are layered over the file config.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if len(other.Types) > 0 {
		c.Types = other.Types
	}
	c.Scan.Include = append(c.Scan.Include, other.Scan.Include...)
	c.Scan.Exclude = append(c.Scan.Exclude, other.Scan.Exclude...)
	c.Scan.Strict = c.Scan.Strict || other.Scan.Strict

	c.Ignore.Domains = append(c.Ignore.Domains, other.Ignore.Domains...)
	c.Ignore.Patterns = append(c.Ignore.Patterns, other.Ignore.Patterns...)
	c.Ignore.Regex = append(c.Ignore.Regex, other.Ignore.Regex...)
	c.Ignore.Kinds = append(c.Ignore.Kinds, other.Ignore.Kinds...)

	c.Render.merge(other.Render)

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.File != "" {
		c.Output.File = other.Output.File
	}
}
