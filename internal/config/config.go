package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/tagpages/internal/pagination"
	"github.com/rshade/tagpages/internal/site"
)

// Output formats accepted by the CLI.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// DefaultLayout is the template identifier handed to renderers.
const DefaultLayout = "tag_index"

// Config validation errors.
var (
	ErrInvalidOutputFormat = errors.New("output format must be 'table', 'json' or 'yaml'")
	ErrInvalidLogLevel     = errors.New("invalid log level")
)

// Config is the full tagpages configuration.
type Config struct {
	Tags    TagsConfig    `yaml:"tags"    json:"tags"`
	Output  OutputConfig  `yaml:"output"  json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// TagsConfig controls how tag index pages are laid out.
type TagsConfig struct {
	// Paginate splits each tag's items across several pages.
	Paginate bool `yaml:"paginate"  json:"paginate"`
	// PerPage is the maximum number of items on one page.
	PerPage int `yaml:"per_page"  json:"per_page"`
	// BasePath is the directory under which every tag gets its own folder.
	BasePath string `yaml:"base_path" json:"base_path"`
	// Layout is the template identifier passed to the renderer.
	Layout string `yaml:"layout"    json:"layout"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// DefaultFormat is "table", "json" or "yaml". Empty picks table on a terminal, json otherwise.
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file"   json:"file"`
	// Caller adds the source file and line to every log entry.
	Caller bool `yaml:"caller" json:"caller"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tags: TagsConfig{
			Paginate: false,
			PerPage:  pagination.DefaultPerPage,
			BasePath: site.DefaultBasePath,
			Layout:   DefaultLayout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load returns the default configuration with the YAML file at path merged
// on top. An empty path returns the defaults; a missing file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for semantic errors.
func (c *Config) Validate() error {
	if err := c.Tags.Validate(); err != nil {
		return err
	}
	switch c.Output.DefaultFormat {
	case "", FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
		}
	}
	return nil
}

// Validate rejects a missing or non-positive per_page while paginating.
func (t TagsConfig) Validate() error {
	if !t.Paginate {
		return nil
	}
	if err := pagination.ValidatePerPage(t.PerPage); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
