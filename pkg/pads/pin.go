package pads

// parsePinLine decodes one or more "refdes.pin" references into the open
// net. The line is applied as a whole: one bad reference rejects all of it.
func parsePinLine(g *pinGrammar, b *builder, line string, num int) error {
	if hasAnyPrefix(line, sectionMarkers) {
		return newError(ErrUnexpectedSection, num)
	}

	parsed, err := g.ParseString("", line)
	if err != nil {
		return newError(ErrInvalidPinFormat, num)
	}

	pins := make([]Pin, 0, len(parsed.Refs))
	seen := make(map[pinKey]struct{}, len(parsed.Refs))
	for _, ref := range parsed.Refs {
		refdes, err := b.fitLength(ref.RefDes, b.cfg.MaxRefDesLength, ErrPinRefDesTooLong, num)
		if err != nil {
			return err
		}
		pin, err := b.fitLength(ref.Pin, b.cfg.MaxPinNameLength, ErrPinNameTooLong, num)
		if err != nil {
			return err
		}

		k := b.pinKey(refdes, pin)
		if _, dup := seen[k]; dup || b.hasPin(k) {
			return newError(ErrDuplicatePin, num)
		}
		seen[k] = struct{}{}
		pins = append(pins, Pin{RefDes: refdes, Pin: pin})
	}

	b.addPins(pins)
	return nil
}
