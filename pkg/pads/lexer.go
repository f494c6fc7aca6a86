package pads

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Section markers. All are matched as line prefixes, case-sensitively.
const (
	sectionSigil = "*"

	markerPADSPCB  = "*PADS-PCB*"
	markerPADS2000 = "*PADS2000*"
	markerPart     = "*PART*"
	markerNet      = "*NET*"
	markerSignal   = "*SIGNAL*"
	markerEnd      = "*END*"
)

var (
	headerMarkers = []string{markerPADSPCB, markerPADS2000}

	// Markers that open a document or section; seeing one inside a signal is
	// reported as an unexpected section instead of a bad pin.
	sectionMarkers = []string{markerPADSPCB, markerPADS2000, markerPart, markerNet}
)

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// PinLexer tokenizes a pin connection line such as "U1.14 R1.2".
// Whitespace is kept as a token because it separates pin references.
var PinLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Word", Pattern: `[^\s.]+`},
})

// pinLine is the grammar of one line inside a signal.
type pinLine struct {
	Refs []*pinRef `@@ ( Whitespace @@ )*`
}

// pinRef is a single "refdes.pin" reference.
type pinRef struct {
	RefDes string `@Word Dot`
	Pin    string `@Word`
}

type pinGrammar = participle.Parser[pinLine]

func buildPinGrammar() (*pinGrammar, error) {
	return participle.Build[pinLine](
		participle.Lexer(PinLexer),
	)
}
