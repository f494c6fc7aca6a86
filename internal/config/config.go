// Package config loads padsnet options from an HCL file.
//
// Example padsnet.hcl:
//
//	mode           = partial
//	case_sensitive = false
//	length_policy  = reject
//
//	limits {
//	  refdes = default_refdes_length
//	  net_name = 48
//	}
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
//	check {
//	  single_pin_nets = true
//	  ignore_pattern  = "^MH[0-9]+$"
//	}
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/OpenTraceLab/padsnet/pkg/analysis"
	"github.com/OpenTraceLab/padsnet/pkg/pads"
)

// File is the decoded options file. Unset attributes keep their defaults.
type File struct {
	Mode          *string `hcl:"mode,optional"`
	CaseSensitive *bool   `hcl:"case_sensitive,optional"`
	LengthPolicy  *string `hcl:"length_policy,optional"`

	Limits *Limits `hcl:"limits,block"`
	Log    *Log    `hcl:"log,block"`
	Check  *Check  `hcl:"check,block"`
}

// Limits overrides identifier length limits. 0 disables a limit.
type Limits struct {
	RefDes    *int `hcl:"refdes,optional"`
	Footprint *int `hcl:"footprint,optional"`
	NetName   *int `hcl:"net_name,optional"`
	PinName   *int `hcl:"pin_name,optional"`
}

// Log configures the command logger.
type Log struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Check configures the connectivity lint.
type Check struct {
	UndeclaredParts *bool    `hcl:"undeclared_parts,optional"`
	UnusedParts     *bool    `hcl:"unused_parts,optional"`
	SinglePinNets   *bool    `hcl:"single_pin_nets,optional"`
	Shorts          *bool    `hcl:"shorts,optional"`
	Ignore          []string `hcl:"ignore,optional"`
	IgnorePattern   string   `hcl:"ignore_pattern,optional"`
}

// evalContext exposes bare keywords so "mode = partial" needs no quotes.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"strict":                cty.StringVal(pads.ModeStrict.String()),
			"partial":               cty.StringVal(pads.ModePartial.String()),
			"truncate":              cty.StringVal(pads.TruncateLong.String()),
			"reject":                cty.StringVal(pads.RejectLong.String()),
			"default_refdes_length": cty.NumberIntVal(pads.DefaultMaxRefDesLength),
		},
	}
}

// Load reads and decodes the options file at path.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseHCL(src, path)
}

// ParseHCL decodes options from src. filename is used in diagnostics only.
func ParseHCL(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var f File
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	// Catch bad keywords here rather than at first parse.
	if _, err := f.PadsConfig(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}
	return &f, nil
}

// PadsConfig applies the file on top of pads.DefaultConfig.
func (f *File) PadsConfig() (*pads.Config, error) {
	cfg := pads.DefaultConfig()

	if f.Mode != nil {
		mode, err := pads.ParseMode(*f.Mode)
		if err != nil {
			return nil, err
		}
		cfg.Mode = mode
	}
	if f.CaseSensitive != nil {
		cfg.CaseInsensitive = !*f.CaseSensitive
	}
	if f.LengthPolicy != nil {
		policy, err := pads.ParseLengthPolicy(*f.LengthPolicy)
		if err != nil {
			return nil, err
		}
		cfg.LengthPolicy = policy
	}

	if l := f.Limits; l != nil {
		setInt(&cfg.MaxRefDesLength, l.RefDes)
		setInt(&cfg.MaxFootprintLength, l.Footprint)
		setInt(&cfg.MaxNetNameLength, l.NetName)
		setInt(&cfg.MaxPinNameLength, l.PinName)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Validate installs a discard logger; leave that to the caller.
	cfg.Logger = nil
	return cfg, nil
}

// AnalysisConfig applies the check block on top of analysis.DefaultConfig.
// Case folding follows case_sensitive.
func (f *File) AnalysisConfig() *analysis.Config {
	cfg := analysis.DefaultConfig()
	if f.CaseSensitive != nil {
		cfg.CaseInsensitive = !*f.CaseSensitive
	}

	c := f.Check
	if c == nil {
		return cfg
	}
	setBool(&cfg.ReportUndeclaredParts, c.UndeclaredParts)
	setBool(&cfg.ReportUnusedParts, c.UnusedParts)
	setBool(&cfg.ReportSinglePinNets, c.SinglePinNets)
	setBool(&cfg.ReportShorts, c.Shorts)
	cfg.IgnoreParts = c.Ignore
	cfg.IgnorePattern = c.IgnorePattern
	return cfg
}

// LogLevel returns the configured level, or "" when unset.
func (f *File) LogLevel() string {
	if f.Log == nil {
		return ""
	}
	return f.Log.Level
}

// LogFormat returns the configured format, or "" when unset.
func (f *File) LogFormat() string {
	if f.Log == nil {
		return ""
	}
	return f.Log.Format
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
