package pads

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
)

type state int

const (
	stateStart state = iota
	stateHeader
	statePartSection
	stateNetSection
	stateInSignal
	stateDone
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateHeader:
		return "header"
	case statePartSection:
		return "part-section"
	case stateNetSection:
		return "net-section"
	case stateInSignal:
		return "in-signal"
	case stateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Parser parses PADS-PCB / PADS2000 ASCII netlists. It holds no per-call
// state and may be shared between goroutines.
type Parser struct {
	cfg  Config
	pins *pinGrammar
}

// NewParser creates a parser. A nil cfg means DefaultConfig().
func NewParser(cfg *Config) (*Parser, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	if err := c.Validate(); err != nil {
		return nil, err
	}

	pins, err := buildPinGrammar()
	if err != nil {
		return nil, fmt.Errorf("failed to build pin grammar: %w", err)
	}

	return &Parser{cfg: c, pins: pins}, nil
}

// Config returns a copy of the parser's configuration.
func (p *Parser) Config() Config {
	return p.cfg
}

// ParseString parses a whole document using the configured mode.
//
// In strict mode the first problem is returned as a *ParserError and the
// netlist is nil. In partial mode the error is always nil and problems are
// listed in Netlist.Errors.
func (p *Parser) ParseString(text string) (*Netlist, error) {
	return p.parse(text, p.cfg.Mode)
}

// Parse reads r to the end and parses it. Read failures are reported as
// ErrFileRead in both modes.
func (p *Parser) Parse(r io.Reader) (*Netlist, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapError(ErrFileRead, 1, err)
	}
	return p.ParseString(string(data))
}

// ParseFile parses the netlist at filename.
func (p *Parser) ParseFile(filename string) (*Netlist, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, wrapError(ErrFileNotFound, 1, err)
		}
		return nil, wrapError(ErrFileRead, 1, err)
	}
	return p.ParseString(string(data))
}

var defaultParser = sync.OnceValues(func() (*Parser, error) {
	return NewParser(DefaultConfig())
})

// Parse parses text with the default configuration in the given mode.
func Parse(text string, mode Mode) (*Netlist, error) {
	if mode != ModeStrict && mode != ModePartial {
		return nil, fmt.Errorf("pads: invalid mode %v", mode)
	}
	p, err := defaultParser()
	if err != nil {
		return nil, err
	}
	return p.parse(text, mode)
}

func (p *Parser) parse(text string, mode Mode) (*Netlist, error) {
	r := &run{
		pins:  p.pins,
		mode:  mode,
		b:     newBuilder(&p.cfg),
		state: stateStart,
	}

	for num, line := range significantLines(text) {
		if err := r.step(num, line); err != nil {
			return nil, err
		}
	}

	if r.state != stateDone {
		eof := newError(ErrUnexpectedEOF, physicalLineCount(text))
		r.b.closeNet()
		if err := r.resolve(eof); err != nil {
			return nil, err
		}
	}

	nl := r.b.netlist()
	p.cfg.Logger.Debug("netlist parsed",
		"mode", mode.String(),
		"parts", len(nl.Parts),
		"nets", len(nl.Nets),
		"errors", len(nl.Errors),
		"warnings", len(nl.Warnings))
	return nl, nil
}

// run is the state of a single parse call.
type run struct {
	pins  *pinGrammar
	mode  Mode
	b     *builder
	state state

	// Set when partial mode entered a state without seeing its marker. The
	// real marker is then accepted silently if it shows up late.
	assumedHeader bool
	assumedPart   bool
}

// resolve is the single place where the mode is applied to a rule outcome.
// A nil err commits the line's warnings. Otherwise strict mode returns the
// error and partial mode records it and returns nil.
func (r *run) resolve(err error) error {
	if err == nil {
		r.b.commit()
		return nil
	}
	r.b.discard()

	var perr *ParserError
	if !errors.As(err, &perr) {
		perr = wrapError(ErrUnexpectedToken, 0, err)
	}
	if r.mode == ModeStrict {
		return perr
	}
	r.b.errors = append(r.b.errors, perr)
	return nil
}

// step feeds one significant line to the state machine.
func (r *run) step(num int, line string) error {
	switch r.state {
	case stateStart:
		if hasAnyPrefix(line, headerMarkers) {
			r.state = stateHeader
			return nil
		}
		// Partial mode assumes the header was omitted and retries the line.
		if err := r.resolve(newError(ErrInvalidFileHeader, num)); err != nil {
			return err
		}
		r.state = stateHeader
		r.assumedHeader = true
		return r.step(num, line)

	case stateHeader:
		switch {
		case strings.HasPrefix(line, markerPart):
			r.state = statePartSection
			r.assumedHeader = false
			return nil
		case r.assumedHeader && hasAnyPrefix(line, headerMarkers):
			r.assumedHeader = false
			return nil
		}
		if err := r.resolve(newError(ErrMissingPartSection, num)); err != nil {
			return err
		}
		r.state = statePartSection
		r.assumedPart = true
		return r.step(num, line)

	case statePartSection:
		switch {
		case r.assumedHeader && hasAnyPrefix(line, headerMarkers):
			r.assumedHeader = false
			return nil
		case r.assumedPart && strings.HasPrefix(line, markerPart):
			r.assumedHeader = false
			r.assumedPart = false
			return nil
		case strings.HasPrefix(line, markerNet):
			r.assumedHeader = false
			r.assumedPart = false
			r.state = stateNetSection
			return nil
		case strings.HasPrefix(line, markerSignal), strings.HasPrefix(line, markerEnd):
			if err := r.resolve(newError(ErrMissingNetSection, num)); err != nil {
				return err
			}
			r.state = stateNetSection
			return r.step(num, line)
		case strings.HasPrefix(line, sectionSigil):
			return r.resolve(newError(ErrInvalidSectionHeader, num))
		}
		err := parsePartLine(r.b, line, num)
		if err == nil {
			r.assumedHeader = false
			r.assumedPart = false
		}
		return r.resolve(err)

	case stateNetSection, stateInSignal:
		switch {
		case strings.HasPrefix(line, markerSignal):
			r.b.closeNet()
			r.state = stateNetSection
			if err := parseNetHeader(r.b, line, num); err != nil {
				return r.resolve(err)
			}
			r.state = stateInSignal
			return r.resolve(nil)
		case strings.HasPrefix(line, markerEnd):
			r.b.closeNet()
			r.state = stateDone
			return nil
		case r.state == stateInSignal:
			return r.resolve(parsePinLine(r.pins, r.b, line, num))
		}
		return nil

	case stateDone:
		return nil
	}

	return r.resolve(newError(ErrUnexpectedToken, num))
}
