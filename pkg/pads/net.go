package pads

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// parseNetHeader decodes "*SIGNAL* NetName" and opens the net. The caller
// closes the previous net first.
func parseNetHeader(b *builder, line string, num int) error {
	rest := strings.TrimPrefix(line, markerSignal)
	if r, _ := utf8.DecodeRuneInString(rest); rest != "" && !unicode.IsSpace(r) {
		return newError(ErrInvalidNetFormat, num)
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return newError(ErrEmptyNetName, num)
	}
	name := fields[0]
	if strings.Contains(name, sectionSigil) {
		return newError(ErrInvalidNetName, num)
	}

	name, err := b.fitLength(name, b.cfg.MaxNetNameLength, ErrNetNameTooLong, num)
	if err != nil {
		return err
	}
	if b.hasNet(name) {
		return newError(ErrDuplicateNetName, num)
	}

	b.openNet(name)
	return nil
}
