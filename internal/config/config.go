// Package config loads the sbegen configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jzelinskie/stringz"
	"gopkg.in/yaml.v3"

	"sbe-schema-generator/internal/gen"
	"sbe-schema-generator/internal/schema"
)

// DefaultIndent is the XML indentation used when none is configured.
const DefaultIndent = 2

// Config holds where schema documents and artifacts live and how
// artifacts are written.
type Config struct {
	// Dir holds both the JSON documents and the XML artifacts.
	Dir string `yaml:"dir,omitempty"`
	// JSONSuffix is appended to schema names for the JSON document.
	JSONSuffix string `yaml:"json_suffix,omitempty"`
	// XMLSuffix is appended to schema names for the XML artifact.
	XMLSuffix string `yaml:"xml_suffix,omitempty"`
	// DefaultComposites emits the standard composites on generate.
	DefaultComposites *bool `yaml:"default_composites,omitempty"`
	// Indent is the XML indentation; negative writes a single line.
	Indent *int `yaml:"indent,omitempty"`
}

// Default returns the configuration used without a file.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads a configuration file. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

func applyDefaults(c *Config) {
	c.Dir = stringz.DefaultEmpty(c.Dir, ".")
	c.JSONSuffix = stringz.DefaultEmpty(c.JSONSuffix, schema.DefaultSuffix)
	c.XMLSuffix = stringz.DefaultEmpty(c.XMLSuffix, gen.DefaultSuffix)

	if c.DefaultComposites == nil {
		enabled := true
		c.DefaultComposites = &enabled
	}

	if c.Indent == nil {
		indent := DefaultIndent
		c.Indent = &indent
	}
}

// Store returns the store configuration.
func (c *Config) Store() schema.Config {
	return schema.Config{Dir: c.Dir, Suffix: c.JSONSuffix}
}

// Generator returns the generator configuration.
func (c *Config) Generator() gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()
	cfg.Dir = c.Dir
	cfg.Suffix = c.XMLSuffix
	cfg.Indent = *c.Indent
	cfg.DefaultComposites = *c.DefaultComposites

	return cfg
}
