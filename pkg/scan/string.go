package scan

import (
	"unicode/utf16"
	"unicode/utf8"
)

// ParseQuotedString reads a double-quoted string after skipping whitespace and
// returns the raw bytes between the quotes. A backslash always consumes the
// byte after it; escapes are neither validated nor decoded (see Unquote).
func (c *Cursor) ParseQuotedString() (View, bool) {
	c.SkipWhitespace()
	if !c.MatchByte('"') {
		c.SetError(UnterminatedString, "Expected opening quote")
		return View{}, false
	}

	start := c.off
	for c.off < len(c.buf) {
		i := indexQuoteOrBackslash(c.buf[c.off:])
		if i < 0 {
			c.advanceSpan(len(c.buf) - c.off)
			break
		}
		c.advanceSpan(i)
		if c.buf[c.off] == '"' {
			break
		}
		c.Advance()
		if c.AtEnd() {
			break
		}
		c.Advance()
	}

	end := c.off
	if !c.MatchByte('"') {
		c.SetError(UnterminatedString, "Expected closing quote")
		return View{}, false
	}
	return View{data: c.buf[start:end:end]}, true
}

// Unquote decodes the JSON escapes of a raw string view, appending the result
// to dst. It is the only scanner operation that validates escapes; an unknown
// escape or malformed \u sequence yields an *Error with code InvalidEscape and
// Offset set to the backslash position within v.
func Unquote(v View, dst []byte) ([]byte, error) {
	s := v.data
	for i := 0; i < len(s); {
		b := s[i]
		if b != '\\' {
			dst = append(dst, b)
			i++
			continue
		}
		if i+1 >= len(s) {
			return dst, escapeError(i, "Truncated escape")
		}
		switch s[i+1] {
		case '"', '\\', '/':
			dst = append(dst, s[i+1])
		case 'b':
			dst = append(dst, '\b')
		case 'f':
			dst = append(dst, '\f')
		case 'n':
			dst = append(dst, '\n')
		case 'r':
			dst = append(dst, '\r')
		case 't':
			dst = append(dst, '\t')
		case 'u':
			r, ok := hex4(s[i+2:])
			if !ok {
				return dst, escapeError(i, "Invalid \\u escape")
			}
			n := 6
			if utf16.IsSurrogate(r) {
				r2, ok := rune(0), false
				if len(s) >= i+12 && s[i+6] == '\\' && s[i+7] == 'u' {
					r2, ok = hex4(s[i+8:])
				}
				if dec := utf16.DecodeRune(r, r2); ok && dec != utf8.RuneError {
					r = dec
					n = 12
				} else {
					r = utf8.RuneError
				}
			}
			dst = utf8.AppendRune(dst, r)
			i += n
			continue
		default:
			return dst, escapeError(i, "Unknown escape")
		}
		i += 2
	}
	return dst, nil
}

func hex4(b []byte) (rune, bool) {
	if len(b) < 4 {
		return 0, false
	}
	var r rune
	for _, c := range b[:4] {
		switch {
		case c >= '0' && c <= '9':
			c -= '0'
		case c >= 'a' && c <= 'f':
			c = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			c = c - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(c)
	}
	return r, true
}

func escapeError(off int, msg string) error {
	return &Error{Code: InvalidEscape, Message: msg, Offset: off}
}
