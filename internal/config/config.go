package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// PathEnv names the environment variable holding the config file path.
const PathEnv = "DEMO_CONFIG"

// Config holds every constant the shell needs at startup. Zero values are
// not meaningful; start from Default and overlay a loaded file.
type Config struct {
	ConfigVersion string
	Prompt        string
	Terminators   []string
	Layout        Layout
	FarewellDelay time.Duration
	Color         bool
	List          List
	Log           Log
}

// Layout describes the fixed-width table used by the directory lister.
// Column widths are expressed in pad clusters of PadLength characters.
type Layout struct {
	PadLength        int
	Truncation       string
	NameColumns      int
	AttributeColumns int
	SizeColumns      int
}

// List configures the list command.
type List struct {
	Recursive        bool
	RespectGitignore bool
}

// Log configures the stderr logger.
type Log struct {
	Level    string
	Encoding string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Prompt:        "Demo >",
		Terminators:   []string{"bye", "exit"},
		Layout: Layout{
			PadLength:        4,
			Truncation:       "... ",
			NameColumns:      10,
			AttributeColumns: 8,
			SizeColumns:      3,
		},
		FarewellDelay: time.Second,
		List:          List{},
		Log:           Log{Level: "warn", Encoding: "console"},
	}
}

// Load reads the config at path and overlays it on Default. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	var (
		fc  fileConfig
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		fc, err = readCUE(path)
	case ".yaml", ".yml":
		fc, err = readYAML(path)
	default:
		return Config{}, fmt.Errorf("unsupported config format: expected .cue or .yaml")
	}
	if err != nil {
		return Config{}, err
	}
	if err := checkConfigVersion(fc.ConfigVersion); err != nil {
		return Config{}, err
	}
	fc.applyTo(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsTerminator reports whether line, compared case-insensitively, is one of
// the configured terminator keywords.
func (c Config) IsTerminator(line string) bool {
	l := strings.ToLower(line)
	for _, t := range c.Terminators {
		if strings.ToLower(t) == l {
			return true
		}
	}
	return false
}
