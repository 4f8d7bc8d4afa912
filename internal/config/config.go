// Package config handles rngit configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents rngit configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	UI      UIConfig      `toml:"ui"`
	Keys    KeysConfig    `toml:"keys"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// Interval between redraw ticks, in milliseconds
	TickIntervalMS int `toml:"tick_interval_ms"`

	// Debug log file (empty = disabled)
	DebugLog string `toml:"debug_log"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Title shown on the first line
	Title string `toml:"title"`

	// Color of the branch name in the head line (ANSI number or #rrggbb)
	HeadColor string `toml:"head_color"`

	// Background color of the whole screen (empty = terminal default)
	Background string `toml:"background"`

	// Prefix paths with file type icons (needs a Nerd Font)
	ShowIcons bool `toml:"show_icons"`

	// Show the key help footer
	ShowHelp bool `toml:"show_help"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Refresh string `toml:"refresh"`
	Quit    string `toml:"quit"`
}

// DefaultTickInterval is used when the configured interval is unusable.
const DefaultTickInterval = 200 * time.Millisecond

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			TickIntervalMS: int(DefaultTickInterval / time.Millisecond),
		},
		UI: UIConfig{
			Title:      "rngit",
			HeadColor:  "12",
			Background: "7",
			ShowIcons:  false,
			ShowHelp:   false,
		},
		Keys: KeysConfig{
			Refresh: "r",
			Quit:    "q",
		},
	}
}

// TickInterval returns the redraw interval, falling back to the default for
// non-positive values.
func (c *Config) TickInterval() time.Duration {
	if c.General.TickIntervalMS <= 0 {
		return DefaultTickInterval
	}
	return time.Duration(c.General.TickIntervalMS) * time.Millisecond
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/rngit/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "rngit", "config.toml")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "rngit", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "rngit", "config.toml")
	}
	return filepath.Join(configDir, "rngit", "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path. A missing file
// yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// survive for everything left out (including booleans).
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFile is like LoadFromPath but the file must exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3}|[0-9]{1,3})$`)

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.General.TickIntervalMS <= 0 {
		warnings = append(warnings, fmt.Sprintf("Invalid value for general.tick_interval_ms: %d (must be positive, using %v)", c.General.TickIntervalMS, DefaultTickInterval))
	}

	if c.UI.HeadColor != "" && !validColor(c.UI.HeadColor) {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.head_color: %s (expected 0-255 or #rrggbb)", c.UI.HeadColor))
	}
	if c.UI.Background != "" && !validColor(c.UI.Background) {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.background: %s (expected 0-255 or #rrggbb)", c.UI.Background))
	}

	quit := ParseKeyList(c.Keys.Quit)
	refresh := ParseKeyList(c.Keys.Refresh)
	if c.Keys.Quit != "" && len(quit) == 0 {
		warnings = append(warnings, "keys.quit has no keys")
	}
	if c.Keys.Refresh != "" && len(refresh) == 0 {
		warnings = append(warnings, "keys.refresh has no keys")
	}
	for _, k := range refresh {
		for _, q := range quit {
			if k == q {
				warnings = append(warnings, fmt.Sprintf("Key %q is bound to both quit and refresh", k))
			}
		}
	}

	return warnings
}

func validColor(s string) bool {
	if !colorPattern.MatchString(s) {
		return false
	}
	if s[0] == '#' {
		return true
	}
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	return err == nil && n <= 255
}

// ParseKeyList splits a comma-separated key list, dropping empty entries.
func ParseKeyList(s string) []string {
	var keys []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
