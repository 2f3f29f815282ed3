package json

import "github.com/BLAZED-sh/fastparse/pkg/scan"

// DefaultMaxDepth bounds object/array nesting for the zero Skipper.
const DefaultMaxDepth = 512

// Kind is the type of a JSON value as told by its first byte.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindTrue
	KindFalse
	KindNull
)

var kindNames = [...]string{"invalid", "object", "array", "string", "number", "true", "false", "null"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// KindOf classifies a value by its first non-whitespace byte.
func KindOf(b byte) Kind {
	switch {
	case b == '{':
		return KindObject
	case b == '[':
		return KindArray
	case b == '"':
		return KindString
	case b == 't':
		return KindTrue
	case b == 'f':
		return KindFalse
	case b == 'n':
		return KindNull
	case b == '-' || b-'0' < 10:
		return KindNumber
	}
	return KindInvalid
}

// Skipper validates and consumes JSON values without building them.
type Skipper struct {
	// MaxDepth is the deepest object/array nesting accepted. Zero or less
	// means DefaultMaxDepth.
	MaxDepth int
}

var defaultSkipper Skipper

// SkipValue consumes one value with the default nesting limit.
func SkipValue(c *scan.Cursor) bool {
	return defaultSkipper.SkipValue(c)
}

// SkipValue consumes one value, leaving the cursor on the first byte after
// it. Numbers are consumed by the float scanner, strings by the quoted string
// scanner. On failure the cursor's error is set; running out of input is
// always reported as EndOfInput or UnterminatedString with the cursor at the
// end, so callers can tell a truncated value from a broken one.
func (s Skipper) SkipValue(c *scan.Cursor) bool {
	max := s.MaxDepth
	if max <= 0 {
		max = DefaultMaxDepth
	}
	return skipValue(c, 0, max)
}

func skipValue(c *scan.Cursor, depth, max int) bool {
	c.SkipWhitespace()
	if c.AtEnd() {
		c.SetError(scan.EndOfInput, "Expected value")
		return false
	}

	b := c.Peek()
	switch KindOf(b) {
	case KindString:
		_, ok := c.ParseQuotedString()
		return ok
	case KindObject:
		return skipObject(c, depth+1, max)
	case KindArray:
		return skipArray(c, depth+1, max)
	case KindTrue:
		return skipLiteral(c, "true", "Expected true")
	case KindFalse:
		return skipLiteral(c, "false", "Expected false")
	case KindNull:
		return skipLiteral(c, "null", "Expected null")
	case KindNumber:
		_, ok := c.ParseFloat64()
		return ok
	}
	c.SetErrorByte(scan.UnexpectedToken, "Unexpected character ", b)
	return false
}

func skipObject(c *scan.Cursor, depth, max int) bool {
	if depth > max {
		c.SetError(scan.TooDeep, "Object nested too deeply")
		return false
	}
	c.MatchByte('{')
	c.SkipWhitespace()
	if c.MatchByte('}') {
		return true
	}

	for {
		c.SkipWhitespace()
		if _, ok := c.ParseQuotedString(); !ok {
			return false
		}
		c.SkipWhitespace()
		if !expect(c, ':') {
			return false
		}
		if !skipValue(c, depth, max) {
			return false
		}
		c.SkipWhitespace()
		if !c.MatchByte(',') {
			break
		}
	}
	return expect(c, '}')
}

func skipArray(c *scan.Cursor, depth, max int) bool {
	if depth > max {
		c.SetError(scan.TooDeep, "Array nested too deeply")
		return false
	}
	c.MatchByte('[')
	c.SkipWhitespace()
	if c.MatchByte(']') {
		return true
	}

	for {
		if !skipValue(c, depth, max) {
			return false
		}
		c.SkipWhitespace()
		if !c.MatchByte(',') {
			break
		}
	}
	return expect(c, ']')
}

func skipLiteral(c *scan.Cursor, lit, msg string) bool {
	if c.MatchString(lit) {
		return true
	}
	rest := c.Rest()
	if len(rest) < len(lit) && string(rest) == lit[:len(rest)] {
		c.Skip(len(rest))
		c.SetError(scan.EndOfInput, "Truncated literal")
		return false
	}
	c.SetError(scan.UnexpectedToken, msg)
	return false
}

func expect(c *scan.Cursor, b byte) bool {
	if c.MatchByte(b) {
		return true
	}
	if c.AtEnd() {
		c.SetErrorByte(scan.EndOfInput, "Expected ", b)
	} else {
		c.SetErrorByte(scan.UnexpectedToken, "Expected ", b)
	}
	return false
}
