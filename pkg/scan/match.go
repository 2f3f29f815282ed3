package scan

import "bytes"

// MatchByte consumes the current byte if it equals expected.
func (c *Cursor) MatchByte(expected byte) bool {
	if c.off < len(c.buf) && c.buf[c.off] == expected {
		c.Advance()
		return true
	}
	return false
}

// MatchLiteral consumes expected if the input continues with it. Literals are
// assumed to contain no newline: the column moves by the literal length and
// the line is left alone.
func (c *Cursor) MatchLiteral(expected View) bool {
	if bytes.HasPrefix(c.buf[c.off:], expected.data) {
		c.advanceColumn(len(expected.data))
		return true
	}
	return false
}

// MatchString is MatchLiteral for a string literal.
func (c *Cursor) MatchString(expected string) bool {
	return c.MatchLiteral(ViewOf(expected))
}
