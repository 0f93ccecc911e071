// Package config provides configuration loading for Parley using TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Prompt settings
type Prompt struct {
	Text  string `toml:"text"`
	Style string `toml:"style"`
}

// Scrollback settings
type Scrollback struct {
	Capacity        int    `toml:"capacity"`
	TimestampFormat string `toml:"timestamp_format"` // Go reference-time layout; empty disables timestamps
	ErrorPrefix     string `toml:"error_prefix"`
	ErrorStyle      string `toml:"error_style"`
}

// Command routing settings
type Commands struct {
	HistoryCapacity int               `toml:"history_capacity"`
	Abbreviations   bool              `toml:"abbreviations"` // resolve command names by unique prefix
	Aliases         map[string]string `toml:"aliases"`       // alias name -> existing command
}

// Debug log settings. The terminal owns stdout, so tracing goes to a
// file when enabled.
type Log struct {
	File string `toml:"file"`
}

// Config is the main configuration struct
type Config struct {
	Prompt     Prompt     `toml:"prompt"`
	Scrollback Scrollback `toml:"scrollback"`
	Commands   Commands   `toml:"commands"`
	Log        Log        `toml:"log"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Prompt: Prompt{
			Text:  " > ",
			Style: "",
		},
		Scrollback: Scrollback{
			Capacity:        1024,
			TimestampFormat: "02-Jan-2006 15:04:05 ",
			ErrorPrefix:     "error:",
			ErrorStyle:      "red",
		},
		Commands: Commands{
			HistoryCapacity: 1024,
			Abbreviations:   true,
		},
	}
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "parley", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".config", "parley", "config.toml"), nil
}

// Load reads the config file over the defaults. A missing file is not
// an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Scrollback.Capacity < 1 {
		return fmt.Errorf("scrollback.capacity must be positive")
	}
	if c.Commands.HistoryCapacity < 1 {
		return fmt.Errorf("commands.history_capacity must be positive")
	}
	return nil
}

// DefaultTOML renders the default configuration as a commented file,
// for --init-config.
func DefaultTOML() string {
	return `# Parley configuration.

[prompt]
text = " > "
# Style names: red, bright-cyan, bold+green, "#ff8800", "bg#223344", ...
style = ""

[scrollback]
capacity = 1024
# Go reference-time layout; set to "" to disable timestamps.
timestamp_format = "02-Jan-2006 15:04:05 "
error_prefix = "error:"
error_style = "red"

[commands]
history_capacity = 1024
# Resolve command names by unique prefix ("he" for "help").
abbreviations = true

# Extra aliases registered at startup.
[commands.aliases]
# q = "quit"

[log]
# Debug log file; empty disables logging.
file = ""
`
}
