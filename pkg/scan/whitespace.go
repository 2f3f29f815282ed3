package scan

import "math/bits"

var isWhitespace = [256]bool{
	' ':  true,
	'\t': true,
	'\n': true,
	'\r': true,
}

// IsWhitespace reports whether b is space, tab, LF or CR.
func IsWhitespace(b byte) bool { return isWhitespace[b] }

// SkipWhitespace consumes the maximal run of whitespace at the cursor,
// counting every skipped newline.
func (c *Cursor) SkipWhitespace() {
	if bulkEnabled {
		c.off, c.line, c.col = skipWhitespaceBulk(c.buf, c.off, c.line, c.col)
		return
	}
	c.off, c.line, c.col = skipWhitespaceScalar(c.buf, c.off, c.line, c.col)
}

func skipWhitespaceScalar(buf []byte, off, line, col int) (int, int, int) {
	for ; off < len(buf); off++ {
		b := buf[off]
		if !isWhitespace[b] {
			break
		}
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return off, line, col
}

// skipWhitespaceBulk classifies eight bytes per step. Line and column are
// recomputed from the newline mask of each word so the result is identical to
// the scalar loop. The tail shorter than a word goes through the scalar loop.
func skipWhitespaceBulk(buf []byte, off, line, col int) (int, int, int) {
	for len(buf)-off >= wordSize {
		w := loadWord(buf, off)
		nl := eqBytes(w, '\n')
		ws := nl | eqBytes(w, ' ') | eqBytes(w, '\t') | eqBytes(w, '\r')

		n := wordSize
		if ws != hi {
			n = firstByte(^ws & hi)
			nl &= 1<<(8*uint(n)) - 1
		}

		if nl != 0 {
			line += bits.OnesCount64(nl)
			col = n - lastByte(nl)
		} else {
			col += n
		}
		off += n

		if n < wordSize {
			return off, line, col
		}
	}
	return skipWhitespaceScalar(buf, off, line, col)
}
