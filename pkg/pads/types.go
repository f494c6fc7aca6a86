package pads

// Part is a component declared in the *PART* section.
// Example: "R1 10k@0603" -> {RefDes: "R1", Footprint: "0603", Value: "10k"}
type Part struct {
	RefDes    string `json:"refdes"`
	Footprint string `json:"footprint"`
	Value     string `json:"value,omitempty"` // empty when the line has no value@ prefix
}

// Pin references one terminal of a part, written "refdes.pin" in a signal.
// The refdes is not checked against the declared parts.
type Pin struct {
	RefDes string `json:"refdes"`
	Pin    string `json:"pin"`
}

// String returns the pin in its netlist notation.
func (p Pin) String() string {
	return p.RefDes + "." + p.Pin
}

// Net is a named group of connected pins, in declaration order.
type Net struct {
	Name string `json:"name"`
	Pins []Pin  `json:"pins"`
}

// Netlist is the result of one parse call.
type Netlist struct {
	Parts []Part `json:"parts"`
	Nets  []Net  `json:"nets"`

	// Errors is only populated in partial mode.
	Errors []*ParserError `json:"errors"`

	// Warnings lists identifiers that were truncated. They are never errors.
	Warnings []*ParserError `json:"warnings,omitempty"`
}

// Part returns the part with the given reference designator.
func (nl *Netlist) Part(refdes string) (Part, bool) {
	for _, p := range nl.Parts {
		if p.RefDes == refdes {
			return p, true
		}
	}
	return Part{}, false
}

// Net returns the net with the given name.
func (nl *Netlist) Net(name string) (Net, bool) {
	for _, n := range nl.Nets {
		if n.Name == name {
			return n, true
		}
	}
	return Net{}, false
}

// PinCount returns the total number of pin connections across all nets.
func (nl *Netlist) PinCount() int {
	count := 0
	for _, n := range nl.Nets {
		count += len(n.Pins)
	}
	return count
}

// HasErrors reports whether a partial parse recorded any error.
func (nl *Netlist) HasErrors() bool {
	return len(nl.Errors) > 0
}
