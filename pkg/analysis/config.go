package analysis

import (
	"regexp"
	"strings"
)

// Config controls which checks Check runs.
type Config struct {
	// Checks
	ReportUndeclaredParts bool // Pins whose refdes is not in the part list (default: true)
	ReportUnusedParts     bool // Parts that appear in no net (default: true)
	ReportSinglePinNets   bool // Nets with exactly one pin (default: false)
	ReportShorts          bool // Nets that share a pin (default: true)

	// Part filtering
	IgnoreParts   []string // Refdes to leave out of every check, e.g. mounting holes
	IgnorePattern string   // If set, refdes matching this regex are left out

	// CaseInsensitive matches pin refdes against parts ignoring case.
	CaseInsensitive bool

	// Internal compiled regex
	ignoreRegex *regexp.Regexp
}

// DefaultConfig returns a Config with the usual checks enabled.
func DefaultConfig() *Config {
	return &Config{
		ReportUndeclaredParts: true,
		ReportUnusedParts:     true,
		ReportSinglePinNets:   false,
		ReportShorts:          true,
		IgnoreParts:           nil,
		IgnorePattern:         "",
	}
}

// Validate compiles IgnorePattern.
func (c *Config) Validate() error {
	c.ignoreRegex = nil
	if c.IgnorePattern != "" {
		regex, err := regexp.Compile(c.IgnorePattern)
		if err != nil {
			return err
		}
		c.ignoreRegex = regex
	}
	return nil
}

// ShouldCheckPart returns false for refdes excluded by IgnoreParts or
// IgnorePattern.
func (c *Config) ShouldCheckPart(refdes string) bool {
	for _, ignored := range c.IgnoreParts {
		if c.key(ignored) == c.key(refdes) {
			return false
		}
	}
	if c.ignoreRegex != nil && c.ignoreRegex.MatchString(refdes) {
		return false
	}
	return true
}

func (c *Config) key(refdes string) string {
	if c.CaseInsensitive {
		return strings.ToUpper(refdes)
	}
	return refdes
}
