// Package pads parses PADS-PCB and PADS2000 ASCII netlists into typed parts
// and nets.
//
// # Format
//
// A netlist is line oriented. Blank lines and lines starting with "//" are
// ignored everywhere:
//
//	*PADS-PCB*
//	*PART*
//	U1 DIP14
//	R1 10k@0805
//	*NET*
//	*SIGNAL* VCC
//	U1.14 R1.1
//	*END*
//
// The header is "*PADS-PCB*" or "*PADS2000*". Part lines are
// "RefDes [Value@]Footprint". Each "*SIGNAL* Name" opens a net that collects
// "refdes.pin" references until the next signal or "*END*". Signals without
// pins are dropped.
//
// # Usage
//
//	nl, err := pads.Parse(text, pads.ModeStrict)
//	if err != nil {
//		var perr *pads.ParserError
//		if errors.As(err, &perr) {
//			fmt.Printf("%s at line %d\n", perr.Code, perr.Line)
//		}
//	}
//
// For anything other than the defaults, build a Parser:
//
//	cfg := pads.DefaultConfig()
//	cfg.Mode = pads.ModePartial
//	cfg.CaseInsensitive = true
//	cfg.LengthPolicy = pads.RejectLong
//	p, err := pads.NewParser(cfg)
//	nl, _ := p.ParseString(text)
//	for _, e := range nl.Errors {
//		fmt.Println(e)
//	}
//
// # Errors
//
// Every problem is a *ParserError with a stable code. Strict mode returns the
// first one; partial mode appends them to Netlist.Errors and skips the
// offending line. When the header or a section marker is missing, partial
// mode assumes it and feeds the same line to the next section.
//
// Over-long identifiers are truncated with a warning (Netlist.Warnings) or
// rejected, depending on Config.LengthPolicy.
package pads
