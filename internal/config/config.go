// Package config loads textproc settings from a TOML file and the
// environment.
//
// Settings are layered: built-in defaults, then the config file
// ($TEXTPROC_CONFIG or ~/.config/textproc/config.toml), then environment
// overrides. Out-of-range numbers silently fall back to their defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kk-code-lab/textproc/internal/match"
	"github.com/kk-code-lab/textproc/internal/truncate"
	"github.com/kk-code-lab/textproc/internal/wrap"
)

const (
	EnvConfigPath = "TEXTPROC_CONFIG"
	EnvWidth      = "TEXTPROC_WIDTH"
	EnvEndMarker  = "TEXTPROC_END_MARKER"
)

// Config is the complete textproc configuration.
type Config struct {
	Wrap      WrapConfig      `toml:"wrap"`
	Truncate  TruncateConfig  `toml:"truncate"`
	Censor    CensorConfig    `toml:"censor"`
	Highlight HighlightConfig `toml:"highlight"`
}

type WrapConfig struct {
	// Width is the column limit; 0 means "terminal width, else 76".
	Width int `toml:"width"`
	// DisplayWidth measures terminal cells instead of code points.
	DisplayWidth bool `toml:"display_width"`
}

type TruncateConfig struct {
	EndMarker string `toml:"end_marker"`
	Ellipsis  string `toml:"ellipsis"`
}

type CensorConfig struct {
	Words       []string `toml:"words"`
	Replacement string   `toml:"replacement"`
}

type HighlightConfig struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Truncate: TruncateConfig{
			EndMarker: truncate.DefaultEndMarker,
			Ellipsis:  truncate.DefaultEllipsis,
		},
		Highlight: HighlightConfig{
			Open:  match.DefaultOpenTag,
			Close: match.DefaultCloseTag,
		},
	}
}

// Path returns the config file location: $TEXTPROC_CONFIG when set,
// otherwise config.toml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "textproc", "config.toml"), nil
}

// Load builds the configuration from defaults, the config file (if it
// exists) and the environment. A missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath is Load with an explicit file location.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	return cfg, nil
}

// Parse decodes a TOML document on top of the defaults.
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.SetDefaults()
	return cfg, nil
}

// ApplyEnvOverrides applies TEXTPROC_* environment variables. Values that do
// not parse are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Wrap.Width = n
		}
	}
	if v, ok := os.LookupEnv(EnvEndMarker); ok {
		c.Truncate.EndMarker = v
	}
}

// SetDefaults replaces invalid values with their defaults.
func (c *Config) SetDefaults() {
	if c.Wrap.Width < 0 {
		c.Wrap.Width = 0
	}
	if c.Highlight.Open == "" && c.Highlight.Close == "" {
		c.Highlight.Open = match.DefaultOpenTag
		c.Highlight.Close = match.DefaultCloseTag
	}
	words := c.Censor.Words[:0]
	for _, w := range c.Censor.Words {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	c.Censor.Words = words
}

// WrapWidth resolves the wrap column limit: the configured width, else
// terminalWidth when positive, else wrap.DefaultWidth.
func (c *Config) WrapWidth(terminalWidth int) int {
	switch {
	case c.Wrap.Width > 0:
		return c.Wrap.Width
	case terminalWidth > 0:
		return terminalWidth
	default:
		return wrap.DefaultWidth
	}
}
