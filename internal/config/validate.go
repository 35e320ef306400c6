package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const CurrentConfigVersion = "1"

var SupportedConfigVersions = []string{CurrentConfigVersion}

var (
	logLevels    = []string{"debug", "info", "warn", "error"}
	logEncodings = []string{"console", "json"}
)

func checkConfigVersion(v string) error {
	if v == "" {
		return errors.New("missing required field: configVersion")
	}
	if !slices.Contains(SupportedConfigVersions, v) {
		return fmt.Errorf("unsupported configVersion: %q (supported: %s)", v, strings.Join(SupportedConfigVersions, ", "))
	}
	return nil
}

// Validate reports the first setting that would make the shell misbehave.
func Validate(c Config) error {
	l := c.Layout
	if l.PadLength < 1 {
		return fmt.Errorf("invalid layout.padLength: %d (must be >= 1)", l.PadLength)
	}
	cols := map[string]int{
		"nameColumns":      l.NameColumns,
		"attributeColumns": l.AttributeColumns,
		"sizeColumns":      l.SizeColumns,
	}
	for _, name := range []string{"nameColumns", "attributeColumns", "sizeColumns"} {
		if cols[name] < 1 {
			return fmt.Errorf("invalid layout.%s: %d (must be >= 1)", name, cols[name])
		}
	}
	narrowest := l.PadLength * min(l.NameColumns, l.AttributeColumns, l.SizeColumns)
	if utf8.RuneCountInString(l.Truncation) >= narrowest {
		return fmt.Errorf("invalid layout.truncation: %q must be shorter than %d characters", l.Truncation, narrowest)
	}
	if !slices.ContainsFunc(c.Terminators, func(t string) bool { return strings.TrimSpace(t) != "" }) {
		return errors.New("invalid terminators: at least one keyword is required")
	}
	if c.FarewellDelay < 0 {
		return fmt.Errorf("invalid farewellDelayMs: %d (must be >= 0)", c.FarewellDelay.Milliseconds())
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("invalid log.level: %q (expected one of %s)", c.Log.Level, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logEncodings, c.Log.Encoding) {
		return fmt.Errorf("invalid log.encoding: %q (expected one of %s)", c.Log.Encoding, strings.Join(logEncodings, ", "))
	}
	return nil
}
