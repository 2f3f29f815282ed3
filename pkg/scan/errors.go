package scan

import "fmt"

// Code identifies why a scan failed.
type Code uint8

const (
	OK Code = iota
	EndOfInput
	InvalidNumber
	Overflow
	// InvalidEscape is only reported by Unquote. The scanners accept any byte
	// after a backslash.
	InvalidEscape
	UnterminatedString
	Custom
	UnexpectedToken
	TooDeep
)

var codeNames = [...]string{
	OK:                 "ok",
	EndOfInput:         "end of input",
	InvalidNumber:      "invalid number",
	Overflow:           "overflow",
	InvalidEscape:      "invalid escape",
	UnterminatedString: "unterminated string",
	Custom:             "custom",
	UnexpectedToken:    "unexpected token",
	TooDeep:            "too deeply nested",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// Error is a snapshot of a Cursor's pending error slot.
type Error struct {
	Code    Code
	Message string
	Offset  int
	Line    int
	Column  int
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Code, e.Offset, e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("%s at line %d, column %d", e.Code, e.Line, e.Column)
	}
	return fmt.Sprintf("%s at line %d, column %d: %s", e.Code, e.Line, e.Column, e.Message)
}

// Is reports whether target is an *Error with the same Code, so callers can
// write errors.Is(err, scan.ErrOverflow).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrEndOfInput         = &Error{Code: EndOfInput}
	ErrInvalidNumber      = &Error{Code: InvalidNumber}
	ErrOverflow           = &Error{Code: Overflow}
	ErrInvalidEscape      = &Error{Code: InvalidEscape}
	ErrUnterminatedString = &Error{Code: UnterminatedString}
	ErrCustom             = &Error{Code: Custom}
	ErrUnexpectedToken    = &Error{Code: UnexpectedToken}
	ErrTooDeep            = &Error{Code: TooDeep}
)
