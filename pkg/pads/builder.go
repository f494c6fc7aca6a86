package pads

import (
	"strings"
	"unicode/utf8"
)

type pinKey struct {
	refdes string
	pin    string
}

// truncation is a warning waiting for its line to succeed.
type truncation struct {
	warning *ParserError
	value   string
}

// builder accumulates the netlist during one parse call. Grammar rules read
// it for duplicate detection and write the records they decode into it.
type builder struct {
	cfg *Config

	parts     []Part
	partIndex map[string]struct{}

	nets     []Net
	netIndex map[string]struct{}

	open     *Net
	openPins map[pinKey]struct{}

	errors   []*ParserError
	warnings []*ParserError
	pending  []truncation
}

func newBuilder(cfg *Config) *builder {
	return &builder{
		cfg:       cfg,
		parts:     []Part{},
		partIndex: make(map[string]struct{}),
		nets:      []Net{},
		netIndex:  make(map[string]struct{}),
		errors:    []*ParserError{},
		warnings:  []*ParserError{},
	}
}

// fold applies the case policy to a refdes or net name used as a map key.
func (b *builder) fold(s string) string {
	if b.cfg.CaseInsensitive {
		return strings.ToUpper(s)
	}
	return s
}

func (b *builder) hasPart(refdes string) bool {
	_, ok := b.partIndex[b.fold(refdes)]
	return ok
}

func (b *builder) addPart(p Part) {
	b.partIndex[b.fold(p.RefDes)] = struct{}{}
	b.parts = append(b.parts, p)
}

// hasNet only sees closed nets.
func (b *builder) hasNet(name string) bool {
	_, ok := b.netIndex[b.fold(name)]
	return ok
}

func (b *builder) openNet(name string) {
	b.open = &Net{Name: name, Pins: []Pin{}}
	b.openPins = make(map[pinKey]struct{})
}

// closeNet appends the open net if it collected at least one pin. Empty nets
// are dropped.
func (b *builder) closeNet() {
	if b.open == nil {
		return
	}
	if len(b.open.Pins) > 0 {
		b.netIndex[b.fold(b.open.Name)] = struct{}{}
		b.nets = append(b.nets, *b.open)
	}
	b.open = nil
	b.openPins = nil
}

func (b *builder) pinKey(refdes, pin string) pinKey {
	return pinKey{refdes: b.fold(refdes), pin: pin}
}

func (b *builder) hasPin(k pinKey) bool {
	_, ok := b.openPins[k]
	return ok
}

func (b *builder) addPins(pins []Pin) {
	for _, p := range pins {
		b.openPins[b.pinKey(p.RefDes, p.Pin)] = struct{}{}
		b.open.Pins = append(b.open.Pins, p)
	}
}

// fitLength enforces limit on value. Under TruncateLong the shortened value
// is returned and a pending warning is queued; under RejectLong kind is
// returned as the error.
func (b *builder) fitLength(value string, limit int, kind *ParserError, line int) (string, error) {
	if limit <= 0 || utf8.RuneCountInString(value) <= limit {
		return value, nil
	}
	if b.cfg.LengthPolicy == RejectLong {
		return "", newError(kind, line)
	}
	b.pending = append(b.pending, truncation{warning: newError(kind, line), value: value})
	return truncateRunes(value, limit), nil
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// commit keeps the warnings of a line that was accepted.
func (b *builder) commit() {
	for _, t := range b.pending {
		b.cfg.Logger.Warn("identifier truncated",
			"code", t.warning.Code,
			"line", t.warning.Line,
			"value", t.value)
		b.warnings = append(b.warnings, t.warning)
	}
	b.pending = b.pending[:0]
}

// discard drops the warnings of a line that was rejected.
func (b *builder) discard() {
	b.pending = b.pending[:0]
}

func (b *builder) netlist() *Netlist {
	return &Netlist{
		Parts:    b.parts,
		Nets:     b.nets,
		Errors:   b.errors,
		Warnings: b.warnings,
	}
}
