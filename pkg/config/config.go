// Package config loads the optional intake configuration file.
//
// The file lives at $XDG_CONFIG_HOME/intake/config.yaml unless a path is given
// explicitly. Every field is optional:
//
//	styles: [function-list, chained, anonymous, closures]
//	with_generics: false
//	ui: plain
//	log_file: ""
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// UI modes.
const (
	UIPlain = "plain"
	UIFancy = "fancy"
	UIAuto  = "auto"
)

// UIModes lists the accepted values of the ui setting.
var UIModes = []string{UIPlain, UIFancy, UIAuto}

// Config models config.yaml.
type Config struct {
	// Styles names the composition styles to run, in order. Empty means the
	// default set.
	Styles []string `yaml:"styles,omitempty"`

	// WithGenerics appends the generic style to the configured styles.
	WithGenerics bool `yaml:"with_generics,omitempty"`

	// UI selects the console: plain, fancy or auto.
	UI string `yaml:"ui,omitempty"`

	// LogFile, if set, receives a JSON copy of the logs.
	LogFile string `yaml:"log_file,omitempty"`
}

// DefaultPath returns where the config file is looked up when no path is
// given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "intake", "config.yaml")
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{UI: UIPlain}
}

// Load reads the config file at path. An empty path means DefaultPath; a
// missing file at the default path yields the defaults, while a missing file
// at an explicit path is an error. knownStyles is used to validate the styles
// list.
func Load(path string, knownStyles []string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, filepath.Dir(path), knownStyles)
}

// Parse decodes YAML configuration. Relative paths in the file are resolved
// against base.
func Parse(data []byte, base string, knownStyles []string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	cfg.applyDefaults()
	cfg.normalize(base)
	if err := cfg.Validate(knownStyles); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.UI) == "" {
		c.UI = UIPlain
	}
}

func (c *Config) normalize(base string) {
	if len(c.Styles) > 0 {
		styles := lo.Map(c.Styles, func(s string, _ int) string {
			return strings.ToLower(strings.TrimSpace(s))
		})
		c.Styles = lo.Uniq(lo.Compact(styles))
	}
	c.UI = strings.ToLower(strings.TrimSpace(c.UI))
	c.LogFile = resolvePath(base, c.LogFile)
}

// Validate checks the configuration against the known style names.
func (c Config) Validate(knownStyles []string) error {
	for i, s := range c.Styles {
		if !lo.Contains(knownStyles, s) {
			return fmt.Errorf("config: styles[%d]: unknown style %q (known: %s)", i, s, strings.Join(knownStyles, ", "))
		}
	}
	if !lo.Contains(UIModes, c.UI) {
		return fmt.Errorf("config: ui must be one of %s, got %q", strings.Join(UIModes, ", "), c.UI)
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) || base == "" {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}
