package scan

import (
	"errors"
	"math"
	"strconv"
)

func isDigit(b byte) bool { return b-'0' < 10 }

// ParseInt64 reads an optionally signed decimal integer after skipping
// whitespace. Overflow is detected before each multiply-add, so no wrapped
// value is ever produced; on overflow the cursor stops at the offending digit.
func (c *Cursor) ParseInt64() (int64, bool) {
	c.SkipWhitespace()
	if c.AtEnd() {
		c.SetError(EndOfInput, "Expected number")
		return 0, false
	}

	neg := false
	switch c.buf[c.off] {
	case '-':
		neg = true
		c.advanceColumn(1)
	case '+':
		c.advanceColumn(1)
	}

	if !isDigit(c.Peek()) {
		c.SetError(InvalidNumber, "Expected digit")
		return 0, false
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	var v uint64
	for c.off < len(c.buf) {
		b := c.buf[c.off]
		if !isDigit(b) {
			break
		}
		d := uint64(b - '0')
		if v > (limit-d)/10 {
			c.SetError(Overflow, "Integer overflow")
			return 0, false
		}
		v = v*10 + d
		c.advanceColumn(1)
	}

	if neg {
		return -int64(v), true
	}
	return int64(v), true
}

// ParseFloat64 reads the longest decimal floating point prefix after skipping
// whitespace: optional sign, digits with an optional fraction and exponent, or
// inf, infinity and nan in any case. Magnitudes out of range become ±Inf or ±0.
func (c *Cursor) ParseFloat64() (float64, bool) {
	c.SkipWhitespace()
	v, n := parseFloatPrefix(c.buf[c.off:])
	if n == 0 {
		c.SetError(InvalidNumber, "Expected number")
		return 0, false
	}
	c.advanceColumn(n)
	return v, true
}

// parseFloatPrefix returns the value of the longest float prefix of b and its
// length, or 0, 0 when b does not start with a number.
func parseFloatPrefix(b []byte) (float64, int) {
	i := 0
	neg := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		i++
	}

	if n := prefixFold(b[i:], "infinity"); n >= 3 {
		if n != 8 {
			n = 3
		}
		if neg {
			return math.Inf(-1), i + n
		}
		return math.Inf(1), i + n
	}
	if prefixFold(b[i:], "nan") == 3 {
		return math.NaN(), i + 3
	}

	digits := 0
	for i < len(b) && isDigit(b[i]) {
		i++
		digits++
	}
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && isDigit(b[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0
	}

	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		if j < len(b) && isDigit(b[j]) {
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			i = j
		}
	}

	v, err := strconv.ParseFloat(View{data: b[:i]}.unsafeString(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, 0
	}
	return v, i
}

// prefixFold returns how many leading bytes of b match word, ignoring ASCII
// case. word must be lower case.
func prefixFold(b []byte, word string) int {
	n := 0
	for n < len(b) && n < len(word) && b[n]|0x20 == word[n] {
		n++
	}
	return n
}
