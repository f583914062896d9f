// Package config resolves twfmt configuration from .twfmt.yaml,
// environment overrides, and built-in defaults. Configuration is
// resolved once per invocation and never mutated afterwards.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pipech/readable-tailwind/internal/reflow"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = ".twfmt.yaml"

// Config holds all twfmt configuration.
type Config struct {
	// Layout engine settings
	Reflow ReflowConfig `yaml:"reflow"`

	// Rule toggles
	Rules RulesConfig `yaml:"rules"`

	// File discovery and literal location
	Files FilesConfig `yaml:"files"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ReflowConfig configures the layout engine.
type ReflowConfig struct {
	MaxWidth         int    `yaml:"max_width"`
	MaxTokensPerLine int    `yaml:"max_tokens_per_line"` // 0 = unbounded
	Indent           string `yaml:"indent"`              // space count, or "tab"
	GroupPolicy      string `yaml:"group_policy"`        // never, newLine, emptyLine
	AllowMultiline   bool   `yaml:"allow_multiline"`
}

// RulesConfig toggles the rules.
type RulesConfig struct {
	Multiline  bool `yaml:"multiline"`
	Whitespace bool `yaml:"whitespace"`
}

// FilesConfig configures file discovery and literal location.
type FilesConfig struct {
	Extensions []string `yaml:"extensions"`
	Exclude    []string `yaml:"exclude"`
	Attributes []string `yaml:"attributes"`
	Callees    []string `yaml:"callees"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Reflow: ReflowConfig{
			MaxWidth:       80,
			Indent:         "4",
			GroupPolicy:    string(reflow.GroupEmptyLine),
			AllowMultiline: true,
		},
		Rules: RulesConfig{
			Multiline:  true,
			Whitespace: true,
		},
		Files: FilesConfig{
			Extensions: []string{".html", ".htm", ".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"},
			Exclude:    []string{"node_modules", "dist", "build", ".git"},
			Attributes: []string{"class", "classname"},
			Callees:    []string{"clsx", "classnames", "cva", "tw", "cn"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, overlaying the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TWFMT_MAX_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Reflow.MaxWidth = n
		}
	}
	if v := os.Getenv("TWFMT_INDENT"); v != "" {
		c.Reflow.Indent = v
	}
	if v := os.Getenv("TWFMT_GROUP_POLICY"); v != "" {
		c.Reflow.GroupPolicy = v
	}
	if v := os.Getenv("TWFMT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Reflow.MaxWidth <= 0 {
		return fmt.Errorf("reflow.max_width must be positive, got %d", c.Reflow.MaxWidth)
	}
	if c.Reflow.MaxTokensPerLine < 0 {
		return fmt.Errorf("reflow.max_tokens_per_line must not be negative, got %d", c.Reflow.MaxTokensPerLine)
	}
	if !reflow.GroupPolicy(c.Reflow.GroupPolicy).Valid() {
		return fmt.Errorf("invalid reflow.group_policy: %s (valid: never, newLine, emptyLine)", c.Reflow.GroupPolicy)
	}
	if _, err := c.indentUnit(); err != nil {
		return err
	}
	return nil
}

// indentUnit resolves the configured indent to its literal unit.
func (c *Config) indentUnit() (string, error) {
	switch v := strings.TrimSpace(c.Reflow.Indent); v {
	case "", "4":
		return "    ", nil
	case "tab":
		return "\t", nil
	default:
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return "", fmt.Errorf("invalid reflow.indent: %q (use a space count or \"tab\")", c.Reflow.Indent)
		}
		return strings.Repeat(" ", n), nil
	}
}

// ReflowOptions maps the resolved configuration onto engine options.
// Call Validate first; invalid values fall back to engine defaults.
func (c *Config) ReflowOptions() reflow.Options {
	opts := reflow.DefaultOptions()
	opts.MaxWidth = c.Reflow.MaxWidth
	opts.MaxTokensPerLine = c.Reflow.MaxTokensPerLine
	opts.AllowMultiline = c.Reflow.AllowMultiline
	if unit, err := c.indentUnit(); err == nil {
		opts.IndentUnit = unit
	}
	if p := reflow.GroupPolicy(c.Reflow.GroupPolicy); p.Valid() {
		opts.GroupPolicy = p
	}
	return opts
}

// Excluded reports whether any path element is an excluded directory.
func (c *Config) Excluded(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		for _, ex := range c.Files.Exclude {
			if part == ex {
				return true
			}
		}
	}
	return false
}

// WantsExtension reports whether the file extension is configured for
// linting.
func (c *Config) WantsExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.Files.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
