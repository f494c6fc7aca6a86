package pads

import (
	"regexp"
	"strings"
)

const valueSeparator = "@"

var (
	refDesPattern    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
	footprintPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// parsePartLine decodes "RefDes [Value@]Footprint". Fields after the
// footprint are ignored.
func parsePartLine(b *builder, line string, num int) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return newError(ErrInvalidPartFormat, num)
	}
	refdes, rest := fields[0], fields[1]

	if !refDesPattern.MatchString(refdes) {
		return newError(ErrInvalidPartRefDes, num)
	}
	refdes, err := b.fitLength(refdes, b.cfg.MaxRefDesLength, ErrPartRefDesTooLong, num)
	if err != nil {
		return err
	}

	// The footprint follows the last separator; the value may contain '@'.
	var value string
	footprint := rest
	if i := strings.LastIndex(rest, valueSeparator); i >= 0 {
		value, footprint = rest[:i], rest[i+1:]
	}

	if !footprintPattern.MatchString(footprint) {
		return newError(ErrInvalidPartFormat, num)
	}
	footprint, err = b.fitLength(footprint, b.cfg.MaxFootprintLength, ErrFootprintNameTooLong, num)
	if err != nil {
		return err
	}

	if b.hasPart(refdes) {
		return newError(ErrDuplicatePart, num)
	}

	b.addPart(Part{RefDes: refdes, Footprint: footprint, Value: value})
	return nil
}
