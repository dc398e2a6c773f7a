// Package config loads the user's settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/artpar/auweb/internal/core"
	"github.com/artpar/auweb/internal/highlight"
	"gopkg.in/yaml.v3"
)

const (
	FilePermissions = 0644
	DirPermissions  = 0755

	// EnvPath overrides the config file location.
	EnvPath = "AUWEB_CONFIG"

	fileName  = "config.yaml"
	draftFile = "auweb.db"
	logFile   = "auweb.log"
)

// ErrInvalid is returned for configuration values that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete user configuration. It is passed explicitly to the
// parts that need it.
type Config struct {
	URL             string          `yaml:"url"`
	Method          string          `yaml:"method"`
	Headers         string          `yaml:"headers"`
	Body            string          `yaml:"body"`
	Timeout         time.Duration   `yaml:"timeout"`
	FollowRedirects bool            `yaml:"follow_redirects"`
	DataDir         string          `yaml:"data_dir,omitempty"`
	Highlight       HighlightConfig `yaml:"highlight"`
	Beautify        BeautifyConfig  `yaml:"beautify"`
	// Variables fill {{name}} placeholders in requests.
	Variables map[string]string `yaml:"variables,omitempty"`
}

// HighlightConfig selects the chroma style and formatter.
type HighlightConfig struct {
	Style     string `yaml:"style"`
	Formatter string `yaml:"formatter"`
}

// BeautifyConfig tunes body formatting.
type BeautifyConfig struct {
	StrictHTML bool `yaml:"strict_html"`
}

// Default returns the configuration written on first start.
func Default() *Config {
	return &Config{
		URL:             "https://api.github.com/users/kykc/repos",
		Method:          string(core.MethodGet),
		Timeout:         30 * time.Second,
		FollowRedirects: true,
		Highlight: HighlightConfig{
			Style:     "monokai",
			Formatter: "terminal256",
		},
	}
}

// Path returns the config file location: $AUWEB_CONFIG, else
// <user config dir>/auweb/config.yaml.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "auweb", fileName), nil
}

// Load reads the config at path. A missing file is created with defaults.
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := cfg.Save(path); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Dir(path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks values that would otherwise fail later at request time.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalid, c.Timeout)
	}
	if c.Method != "" {
		if _, err := core.ParseMethod(c.Method); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if c.Highlight.Style != "" && !slices.Contains(highlight.StyleNames(), c.Highlight.Style) {
		return fmt.Errorf("%w: unknown highlight style %q", ErrInvalid, c.Highlight.Style)
	}
	return nil
}

// DefaultMethod returns the configured method, or GET.
func (c *Config) DefaultMethod() core.Method {
	m, err := core.ParseMethod(c.Method)
	if err != nil {
		return core.MethodGet
	}
	return m
}

// DraftPath is the sqlite file holding the saved request draft.
func (c *Config) DraftPath() string {
	return filepath.Join(c.DataDir, draftFile)
}

// LogPath is the file the terminal UI logs to.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, logFile)
}
