// Package export writes a parsed PADS netlist in formats other tools read.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/padsnet/pkg/pads"
)

// Format selects an output format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatKiCad Format = "kicad"
)

// ParseFormat converts a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatKiCad:
		return FormatKiCad, nil
	}
	return "", fmt.Errorf("export: unknown format %q (want json or kicad)", s)
}

var errNilNetlist = errors.New("export: nil netlist")

// Write renders nl in the given format.
func Write(nl *pads.Netlist, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return JSON(nl)
	case FormatKiCad:
		out, err := KiCad(nl)
		return []byte(out), err
	}
	return nil, fmt.Errorf("export: unknown format %q", format)
}

// JSON exports the netlist to JSON format.
func JSON(nl *pads.Netlist) ([]byte, error) {
	if nl == nil {
		return nil, errNilNetlist
	}

	output := struct {
		Version     string              `json:"version"`
		PartCount   int                 `json:"part_count"`
		NetCount    int                 `json:"net_count"`
		PinCount    int                 `json:"pin_count"`
		Parts       []pads.Part         `json:"parts"`
		Nets        []pads.Net          `json:"nets"`
		Errors      []*pads.ParserError `json:"errors,omitempty"`
		Warnings    []*pads.ParserError `json:"warnings,omitempty"`
		GeneratedBy string              `json:"generated_by"`
	}{
		Version:     "1.0",
		PartCount:   len(nl.Parts),
		NetCount:    len(nl.Nets),
		PinCount:    nl.PinCount(),
		Parts:       nl.Parts,
		Nets:        nl.Nets,
		Errors:      nl.Errors,
		Warnings:    nl.Warnings,
		GeneratedBy: "padsnet",
	}

	return json.MarshalIndent(output, "", "  ")
}

// KiCad exports the netlist to the KiCad netlist format (version D).
// Net codes start at 1 in declaration order. The result is parsed back
// before it is returned.
func KiCad(nl *pads.Netlist) (string, error) {
	if nl == nil {
		return "", errNilNetlist
	}

	var b strings.Builder
	b.WriteString("(export (version D)\n")
	b.WriteString("  (design\n")
	b.WriteString("    (source \"PADS-PCB netlist\")\n")
	b.WriteString("    (tool \"padsnet\")\n")
	b.WriteString("  )\n")

	b.WriteString("  (components\n")
	for _, part := range nl.Parts {
		value := part.Value
		if value == "" {
			value = part.RefDes
		}
		fmt.Fprintf(&b, "    (comp (ref %s) (value %s) (footprint %s))\n",
			quote(part.RefDes), quote(value), quote(part.Footprint))
	}
	b.WriteString("  )\n")

	b.WriteString("  (nets\n")
	for i, net := range nl.Nets {
		fmt.Fprintf(&b, "    (net (code %d) (name %s)\n", i+1, quote(net.Name))
		for _, pin := range net.Pins {
			fmt.Fprintf(&b, "      (node (ref %s) (pin %s))\n", quote(pin.RefDes), quote(pin.Pin))
		}
		b.WriteString("    )\n")
	}
	b.WriteString("  )\n")
	b.WriteString(")\n")

	out := b.String()
	if err := VerifySexp(out); err != nil {
		return "", err
	}
	return out, nil
}

// quote writes s as a KiCad string literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
