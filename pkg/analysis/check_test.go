package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/padsnet/pkg/pads"
)

const lintNetlist = `*PADS-PCB*
*PART*
U1 DIP14
R1 0805
C1 0805
MH1 HOLE
TP1 PAD
*NET*
*SIGNAL* VCC
U1.14 R1.1
*SIGNAL* GND
U1.7 C1.2 X9.1
*SIGNAL* SENSE
R1.1 C1.1
*SIGNAL* PROBE
TP1.1
*END*
`

func parseLint(t *testing.T) *pads.Netlist {
	t.Helper()
	nl, err := pads.Parse(lintNetlist, pads.ModeStrict)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	return nl
}

func TestCheckDefault(t *testing.T) {
	report, err := Check(parseLint(t), nil)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	want := []Issue{
		{Kind: UndeclaredPart, RefDes: "X9", Net: "GND"},
		{Kind: UnusedPart, RefDes: "MH1"},
		{Kind: Short, Nets: []string{"VCC", "SENSE"}, Pins: []pads.Pin{{RefDes: "R1", Pin: "1"}}},
	}
	if diff := cmp.Diff(want, report.Issues); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}

	if report.PartCount != 5 || report.NetCount != 4 || report.PinCount != 8 {
		t.Errorf("unexpected counts: %+v", report)
	}
	if !report.HasIssues() {
		t.Error("expected HasIssues")
	}
	if report.Count(Short) != 1 {
		t.Errorf("expected 1 short, got %d", report.Count(Short))
	}
}

func TestCheckFilters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReportSinglePinNets = true
	cfg.IgnorePattern = `^MH\d+$`
	cfg.IgnoreParts = []string{"X9"}

	report, err := Check(parseLint(t), cfg)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if report.Count(UnusedPart) != 0 {
		t.Errorf("MH1 should be ignored, got %v", report.Issues)
	}
	if report.Count(UndeclaredPart) != 0 {
		t.Errorf("X9 should be ignored, got %v", report.Issues)
	}
	if report.Count(SinglePinNet) != 1 {
		t.Errorf("expected PROBE as single-pin net, got %v", report.Issues)
	}
}

func TestCheckCaseInsensitive(t *testing.T) {
	nl := &pads.Netlist{
		Parts: []pads.Part{{RefDes: "U1", Footprint: "DIP8"}},
		Nets:  []pads.Net{{Name: "N1", Pins: []pads.Pin{{RefDes: "u1", Pin: "1"}}}},
	}

	report, err := Check(nl, nil)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if report.Count(UndeclaredPart) != 1 || report.Count(UnusedPart) != 1 {
		t.Errorf("exact matching should flag u1 and U1, got %v", report.Issues)
	}

	cfg := DefaultConfig()
	cfg.CaseInsensitive = true
	report, err = Check(nl, cfg)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if report.HasIssues() {
		t.Errorf("expected no issues, got %v", report.Issues)
	}
}

func TestCheckChainedShort(t *testing.T) {
	nl := &pads.Netlist{
		Parts: []pads.Part{{RefDes: "U1", Footprint: "QFN"}},
		Nets: []pads.Net{
			{Name: "A", Pins: []pads.Pin{{RefDes: "U1", Pin: "1"}}},
			{Name: "B", Pins: []pads.Pin{{RefDes: "U1", Pin: "1"}, {RefDes: "U1", Pin: "2"}}},
			{Name: "C", Pins: []pads.Pin{{RefDes: "U1", Pin: "2"}}},
			{Name: "D", Pins: []pads.Pin{{RefDes: "U1", Pin: "3"}}},
		},
	}

	report, err := Check(nl, nil)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	want := []Issue{{
		Kind: Short,
		Nets: []string{"A", "B", "C"},
		Pins: []pads.Pin{{RefDes: "U1", Pin: "1"}, {RefDes: "U1", Pin: "2"}},
	}}
	if diff := cmp.Diff(want, report.Issues); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(report.Issues[0].String(), "nets A, B, C share pins U1.1 U1.2") {
		t.Errorf("unexpected description: %s", report.Issues[0])
	}
}

func TestCheckInvalidPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IgnorePattern = "("
	if _, err := Check(parseLint(t), cfg); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestReportExportJSON(t *testing.T) {
	report, err := Check(parseLint(t), nil)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	data, err := report.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
	if decoded["net_count"] != float64(4) {
		t.Errorf("expected net_count 4, got %v", decoded["net_count"])
	}
	issues, ok := decoded["issues"].([]any)
	if !ok || len(issues) != 3 {
		t.Errorf("expected 3 issues, got %v", decoded["issues"])
	}
}
