package pads

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModeStrict {
		t.Errorf("expected strict mode, got %v", cfg.Mode)
	}
	if cfg.CaseInsensitive {
		t.Error("expected case-sensitive comparisons by default")
	}
	if cfg.LengthPolicy != TruncateLong {
		t.Errorf("expected truncate policy, got %v", cfg.LengthPolicy)
	}
	if cfg.MaxRefDesLength != DefaultMaxRefDesLength {
		t.Errorf("expected refdes limit %d, got %d", DefaultMaxRefDesLength, cfg.MaxRefDesLength)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Logger == nil {
		t.Error("Validate should install a logger")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative refdes limit", func(c *Config) { c.MaxRefDesLength = -1 }},
		{"negative pin limit", func(c *Config) { c.MaxPinNameLength = -3 }},
		{"unknown mode", func(c *Config) { c.Mode = Mode(9) }},
		{"unknown policy", func(c *Config) { c.LengthPolicy = LengthPolicy(4) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
			if _, err := NewParser(cfg); err == nil {
				t.Error("NewParser should reject the config")
			}
		})
	}
}

func TestZeroLimitDisablesCheck(t *testing.T) {
	p := newTestParser(t, func(c *Config) {
		c.MaxRefDesLength = 0
		c.LengthPolicy = RejectLong
	})
	nl, err := p.ParseString("*PADS-PCB*\n*PART*\nAVERYVERYLONGREFDES DIP14\n*NET*\n*END*\n")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if nl.Parts[0].RefDes != "AVERYVERYLONGREFDES" {
		t.Errorf("expected refdes untouched, got %q", nl.Parts[0].RefDes)
	}
}

func TestParseModeAndPolicyStrings(t *testing.T) {
	for _, s := range []string{"strict", "partial", " Partial "} {
		m, err := ParseMode(s)
		if err != nil {
			t.Errorf("ParseMode(%q) failed: %v", s, err)
		}
		if !strings.EqualFold(m.String(), strings.TrimSpace(s)) {
			t.Errorf("ParseMode(%q) = %v", s, m)
		}
	}
	if _, err := ParseMode("lenient"); err == nil {
		t.Error("expected error for unknown mode")
	}

	for _, s := range []string{"truncate", "reject"} {
		p, err := ParseLengthPolicy(s)
		if err != nil {
			t.Errorf("ParseLengthPolicy(%q) failed: %v", s, err)
		}
		if p.String() != s {
			t.Errorf("ParseLengthPolicy(%q) = %v", s, p)
		}
	}
	if _, err := ParseLengthPolicy("ignore"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestTruncationIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := newTestParser(t, func(c *Config) { c.Logger = logger })
	if _, err := p.ParseString("*PADS-PCB*\n*PART*\nRESISTOR12 0603\n*NET*\n*END*\n"); err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "identifier truncated") || !strings.Contains(out, "value=RESISTOR12") {
		t.Errorf("expected truncation warning in log, got:\n%s", out)
	}
	if !strings.Contains(out, "netlist parsed") {
		t.Errorf("expected debug summary in log, got:\n%s", out)
	}
}
