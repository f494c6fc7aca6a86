package pads

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Mode selects how the parser reacts to an error.
type Mode int

const (
	// ModeStrict aborts on the first error and returns it.
	ModeStrict Mode = iota
	// ModePartial records every error in Netlist.Errors and keeps going.
	ModePartial
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModePartial:
		return "partial"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "strict" or "partial" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return ModeStrict, nil
	case "partial":
		return ModePartial, nil
	}
	return ModeStrict, fmt.Errorf("pads: unknown mode %q", s)
}

// LengthPolicy decides what happens to identifiers longer than their limit.
type LengthPolicy int

const (
	// TruncateLong cuts the identifier to the limit and records a warning.
	TruncateLong LengthPolicy = iota
	// RejectLong fails the line with the matching *_TOO_LONG error.
	RejectLong
)

func (p LengthPolicy) String() string {
	switch p {
	case TruncateLong:
		return "truncate"
	case RejectLong:
		return "reject"
	default:
		return fmt.Sprintf("LengthPolicy(%d)", int(p))
	}
}

// ParseLengthPolicy converts "truncate" or "reject" into a LengthPolicy.
func ParseLengthPolicy(s string) (LengthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truncate", "":
		return TruncateLong, nil
	case "reject":
		return RejectLong, nil
	}
	return TruncateLong, fmt.Errorf("pads: unknown length policy %q", s)
}

// DefaultMaxRefDesLength is the reference designator limit used by PADS.
const DefaultMaxRefDesLength = 8

// Config controls parser behaviour.
type Config struct {
	Mode Mode

	// CaseInsensitive folds reference designators and net names before
	// duplicate detection. Stored names keep their original spelling.
	CaseInsensitive bool

	// Identifier limits; 0 disables the check.
	LengthPolicy       LengthPolicy
	MaxRefDesLength    int
	MaxFootprintLength int
	MaxNetNameLength   int
	MaxPinNameLength   int

	// Logger receives truncation warnings and a debug summary per parse.
	// Nil discards everything.
	Logger *slog.Logger
}

// DefaultConfig returns a strict, case-sensitive, truncating Config.
func DefaultConfig() *Config {
	return &Config{
		Mode:               ModeStrict,
		CaseInsensitive:    false,
		LengthPolicy:       TruncateLong,
		MaxRefDesLength:    DefaultMaxRefDesLength,
		MaxFootprintLength: 32,
		MaxNetNameLength:   32,
		MaxPinNameLength:   16,
	}
}

// Validate checks the configuration and fills in a discard logger.
func (c *Config) Validate() error {
	if c.Mode != ModeStrict && c.Mode != ModePartial {
		return fmt.Errorf("pads: invalid mode %v", c.Mode)
	}
	if c.LengthPolicy != TruncateLong && c.LengthPolicy != RejectLong {
		return fmt.Errorf("pads: invalid length policy %v", c.LengthPolicy)
	}

	limits := []struct {
		name  string
		value int
	}{
		{"MaxRefDesLength", c.MaxRefDesLength},
		{"MaxFootprintLength", c.MaxFootprintLength},
		{"MaxNetNameLength", c.MaxNetNameLength},
		{"MaxPinNameLength", c.MaxPinNameLength},
	}
	for _, l := range limits {
		if l.value < 0 {
			return fmt.Errorf("pads: %s must not be negative, got %d", l.name, l.value)
		}
	}

	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return nil
}
