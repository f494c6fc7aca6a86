package pads

import "fmt"

// ParserError describes a problem found while parsing a netlist.
// Code is a stable identifier (E0xx file, E1xx section, E2xx part, E3xx net,
// E4xx pin, E5xx other) and Line is the 1-based source line.
type ParserError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line"`

	cause error
}

func (e *ParserError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d)", e.Message, e.Line)
	}
	return e.Message
}

// Is reports whether target carries the same error code, so the exported
// Err* values can be used with errors.Is.
func (e *ParserError) Is(target error) bool {
	t, ok := target.(*ParserError)
	return ok && t.Code == e.Code
}

// Unwrap returns the underlying I/O error for E001/E002, if any.
func (e *ParserError) Unwrap() error {
	return e.cause
}

// newError stamps a copy of kind with the line it was detected on.
func newError(kind *ParserError, line int) *ParserError {
	return &ParserError{Code: kind.Code, Message: kind.Message, Line: line}
}

func wrapError(kind *ParserError, line int, cause error) *ParserError {
	err := newError(kind, line)
	err.cause = cause
	return err
}

// General file errors
var (
	ErrFileNotFound      = &ParserError{Code: "E001", Message: "File not found."}
	ErrFileRead          = &ParserError{Code: "E002", Message: "Error reading file."}
	ErrInvalidFileHeader = &ParserError{Code: "E003", Message: "Invalid file header. Expected '*PADS-PCB*' or '*PADS2000*'."}
	ErrUnexpectedEOF     = &ParserError{Code: "E004", Message: "Unexpected end of file."}
)

// Section errors
var (
	ErrMissingPartSection   = &ParserError{Code: "E101", Message: "Missing '*PART*' section."}
	ErrMissingNetSection    = &ParserError{Code: "E102", Message: "Missing '*NET*' section."}
	ErrInvalidSectionHeader = &ParserError{Code: "E103", Message: "Invalid section header. Expected '*PART*' or '*NET*'."}
	ErrUnexpectedSection    = &ParserError{Code: "E104", Message: "Unexpected section found."}
)

// Part errors
var (
	ErrInvalidPartFormat    = &ParserError{Code: "E201", Message: "Invalid part format. Expected 'RefDes Footprint [Value]'."}
	ErrDuplicatePart        = &ParserError{Code: "E202", Message: "Duplicate part reference designator found."}
	ErrPartRefDesTooLong    = &ParserError{Code: "E203", Message: "Part reference designator exceeds maximum length."}
	ErrInvalidPartRefDes    = &ParserError{Code: "E204", Message: "Part reference designator contains invalid characters."}
	ErrFootprintNameTooLong = &ParserError{Code: "E205", Message: "Footprint name exceeds maximum length."}
)

// Net errors
var (
	ErrInvalidNetFormat = &ParserError{Code: "E301", Message: "Invalid net format. Expected '*SIGNAL* NetName'."}
	ErrEmptyNetName     = &ParserError{Code: "E302", Message: "Net name cannot be empty"}
	ErrDuplicateNetName = &ParserError{Code: "E303", Message: "Duplicate net name found."}
	ErrNetNameTooLong   = &ParserError{Code: "E304", Message: "Net name exceeds maximum length."}
	ErrInvalidNetName   = &ParserError{Code: "E305", Message: "Net name contains invalid characters."}
)

// Pin errors
var (
	ErrInvalidPinFormat = &ParserError{Code: "E401", Message: "Invalid pin format. Expected 'RefDes.Pin'."}
	ErrDuplicatePin     = &ParserError{Code: "E402", Message: "Duplicate pin connection found in net."}
	ErrPinRefDesTooLong = &ParserError{Code: "E403", Message: "Pin reference designator exceeds maximum length."}
	ErrPinNameTooLong   = &ParserError{Code: "E404", Message: "Pin name exceeds maximum length."}
)

// Other errors
var (
	ErrUnexpectedToken = &ParserError{Code: "E501", Message: "Unexpected token found."}
	ErrMissingToken    = &ParserError{Code: "E502", Message: "Expected token is missing."}
)
