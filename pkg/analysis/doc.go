// Package analysis lints a parsed PADS netlist for connectivity problems the
// parser itself does not reject.
//
// # Checks
//
//   - Undeclared parts: a net references "X9.1" but no part X9 exists.
//   - Unused parts: a part that appears in no net.
//   - Single-pin nets: a net with only one connection (off by default).
//   - Shorts: the same pin listed under two or more nets. Nets sharing a pin
//     are merged with a union-find, so a chain A-B, B-C is reported as one
//     short of A, B and C.
//
// # Usage
//
//	nl, err := pads.Parse(text, pads.ModeStrict)
//	cfg := analysis.DefaultConfig()
//	cfg.IgnorePattern = `^MH\d+$` // mounting holes
//	report, err := analysis.Check(nl, cfg)
//	for _, issue := range report.Issues {
//		fmt.Println(issue)
//	}
package analysis
