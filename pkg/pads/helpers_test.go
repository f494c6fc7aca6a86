package pads

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var netlistOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmpopts.IgnoreUnexported(ParserError{}),
}

// newTestParser builds a parser from DefaultConfig after applying mutate.
func newTestParser(t *testing.T, mutate func(*Config)) *Parser {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	p, err := NewParser(cfg)
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	return p
}

func partial(c *Config) { c.Mode = ModePartial }

// expectParserError checks that err is a *ParserError with code and line.
func expectParserError(t *testing.T, err error, code string, line int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %s at line %d, got nil", code, line)
	}
	var perr *ParserError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParserError, got %T: %v", err, err)
	}
	if perr.Code != code || perr.Line != line {
		t.Errorf("expected %s at line %d, got %s at line %d (%v)", code, line, perr.Code, perr.Line, perr)
	}
}

type codeLine struct {
	Code string
	Line int
}

func codesOf(errs []*ParserError) []codeLine {
	out := make([]codeLine, 0, len(errs))
	for _, e := range errs {
		out = append(out, codeLine{e.Code, e.Line})
	}
	return out
}
