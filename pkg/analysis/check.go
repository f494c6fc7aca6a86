package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/padsnet/pkg/pads"
)

// IssueKind identifies a lint finding.
type IssueKind string

const (
	UndeclaredPart IssueKind = "undeclared_part"
	UnusedPart     IssueKind = "unused_part"
	SinglePinNet   IssueKind = "single_pin_net"
	Short          IssueKind = "short"
)

// Issue is one finding. Only the fields relevant to Kind are set.
type Issue struct {
	Kind   IssueKind  `json:"kind"`
	RefDes string     `json:"refdes,omitempty"`
	Net    string     `json:"net,omitempty"`
	Nets   []string   `json:"nets,omitempty"`
	Pins   []pads.Pin `json:"pins,omitempty"`
}

func (i Issue) String() string {
	switch i.Kind {
	case UndeclaredPart:
		return fmt.Sprintf("%s: %s used in net %s is not declared", i.Kind, i.RefDes, i.Net)
	case UnusedPart:
		return fmt.Sprintf("%s: %s is not connected to any net", i.Kind, i.RefDes)
	case SinglePinNet:
		return fmt.Sprintf("%s: net %s has a single pin", i.Kind, i.Net)
	case Short:
		pins := make([]string, len(i.Pins))
		for n, p := range i.Pins {
			pins[n] = p.String()
		}
		return fmt.Sprintf("%s: nets %s share pins %s",
			i.Kind, strings.Join(i.Nets, ", "), strings.Join(pins, " "))
	}
	return string(i.Kind)
}

// Report is the result of Check.
type Report struct {
	PartCount int     `json:"part_count"`
	NetCount  int     `json:"net_count"`
	PinCount  int     `json:"pin_count"`
	Issues    []Issue `json:"issues"`
}

// HasIssues reports whether any check found something.
func (r *Report) HasIssues() bool {
	return len(r.Issues) > 0
}

// Count returns the number of issues of the given kind.
func (r *Report) Count(kind IssueKind) int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Kind == kind {
			count++
		}
	}
	return count
}

// ExportJSON exports the report to JSON format.
func (r *Report) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Check lints a parsed netlist. A nil cfg means DefaultConfig().
//
// Issues are ordered by kind (undeclared, unused, single-pin, shorts) and
// within a kind by declaration order.
func Check(nl *pads.Netlist, cfg *Config) (*Report, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	report := &Report{
		PartCount: len(nl.Parts),
		NetCount:  len(nl.Nets),
		PinCount:  nl.PinCount(),
		Issues:    []Issue{},
	}

	declared := make(map[string]bool, len(nl.Parts))
	for _, part := range nl.Parts {
		declared[cfg.key(part.RefDes)] = true
	}
	used := make(map[string]bool)

	if cfg.ReportUndeclaredParts {
		reported := make(map[string]bool)
		for _, net := range nl.Nets {
			for _, pin := range net.Pins {
				k := cfg.key(pin.RefDes)
				if declared[k] || reported[k] || !cfg.ShouldCheckPart(pin.RefDes) {
					continue
				}
				reported[k] = true
				report.Issues = append(report.Issues, Issue{Kind: UndeclaredPart, RefDes: pin.RefDes, Net: net.Name})
			}
		}
	}

	for _, net := range nl.Nets {
		for _, pin := range net.Pins {
			used[cfg.key(pin.RefDes)] = true
		}
	}
	if cfg.ReportUnusedParts {
		for _, part := range nl.Parts {
			if !used[cfg.key(part.RefDes)] && cfg.ShouldCheckPart(part.RefDes) {
				report.Issues = append(report.Issues, Issue{Kind: UnusedPart, RefDes: part.RefDes})
			}
		}
	}

	if cfg.ReportSinglePinNets {
		for _, net := range nl.Nets {
			if len(net.Pins) == 1 && cfg.ShouldCheckPart(net.Pins[0].RefDes) {
				report.Issues = append(report.Issues, Issue{Kind: SinglePinNet, Net: net.Name, Pins: net.Pins})
			}
		}
	}

	if cfg.ReportShorts {
		report.Issues = append(report.Issues, findShorts(nl, cfg)...)
	}

	return report, nil
}

// findShorts joins every pair of nets that list the same pin and reports
// each joined group with the pins they share.
func findShorts(nl *pads.Netlist, cfg *Config) []Issue {
	names := make([]string, len(nl.Nets))
	for i, net := range nl.Nets {
		names[i] = net.Name
	}
	conn := NewConnectivity(names)

	type pinID struct{ refdes, pin string }
	owner := make(map[pinID]string)
	shared := make(map[pinID]bool)
	var sharedOrder []pads.Pin

	for _, net := range nl.Nets {
		for _, pin := range net.Pins {
			if !cfg.ShouldCheckPart(pin.RefDes) {
				continue
			}
			id := pinID{cfg.key(pin.RefDes), pin.Pin}
			first, ok := owner[id]
			if !ok {
				owner[id] = net.Name
				continue
			}
			conn.Connect(first, net.Name)
			if !shared[id] {
				shared[id] = true
				sharedOrder = append(sharedOrder, pin)
			}
		}
	}

	var issues []Issue
	for _, group := range conn.Groups() {
		root := conn.Find(group[0])
		var pins []pads.Pin
		for _, pin := range sharedOrder {
			if conn.Find(owner[pinID{cfg.key(pin.RefDes), pin.Pin}]) == root {
				pins = append(pins, pin)
			}
		}
		issues = append(issues, Issue{Kind: Short, Nets: group, Pins: pins})
	}
	return issues
}
