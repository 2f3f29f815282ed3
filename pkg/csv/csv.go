// Package csv scans comma separated records into Views that borrow from the
// input buffer. It never copies field bytes and never allocates.
package csv

import "github.com/BLAZED-sh/fastparse/pkg/scan"

// MaxFields is the fixed capacity of a Record.
const MaxFields = 64

// Record holds the fields of one line in encounter order.
type Record struct {
	fields    [MaxFields]scan.View
	n         int
	truncated bool
}

func (r *Record) Len() int { return r.n }

func (r *Record) Field(i int) scan.View { return r.fields[i] }

// Fields returns the collected fields. The slice aliases the record.
func (r *Record) Fields() []scan.View { return r.fields[:r.n] }

// Truncated reports whether the last ParseLine stopped because the field
// limit was reached while more fields followed.
func (r *Record) Truncated() bool { return r.truncated }

func (r *Record) Reset() {
	r.n = 0
	r.truncated = false
}

// ParseField reads one field after skipping leading whitespace, newlines
// included. Quoted fields are returned without their quotes
// and with escapes untouched; unquoted fields end at a comma, CR, LF or end of
// input and lose their trailing spaces and tabs. It returns false only at end
// of input or when a quoted field is malformed.
func ParseField(c *scan.Cursor) (scan.View, bool) {
	c.SkipWhitespace()
	if c.AtEnd() {
		return scan.View{}, false
	}
	if c.Peek() == '"' {
		return c.ParseQuotedString()
	}

	rest := c.Rest()
	n := 0
	for n < len(rest) {
		b := rest[n]
		if b == ',' || b == '\n' || b == '\r' {
			break
		}
		n++
	}
	c.Skip(n)

	end := n
	for end > 0 && (rest[end-1] == ' ' || rest[end-1] == '\t') {
		end--
	}
	return scan.ViewBytes(rest[:end:end]), true
}

// ParseLine collects up to maxFields fields of one line into r and consumes
// the line terminator (CRLF, CR or LF). maxFields outside 1..MaxFields means
// MaxFields. Reaching the limit with more fields pending stops collection
// without an error; r.Truncated reports it and the cursor is left after the
// last comma. The rest of a truncated line, terminator included, is not
// consumed and must be drained by the caller (Reader does this). It returns
// the number of fields, 0 for an empty line.
func ParseLine(c *scan.Cursor, r *Record, maxFields int) int {
	if maxFields <= 0 || maxFields > MaxFields {
		maxFields = MaxFields
	}
	r.Reset()

	for !c.AtEnd() && r.n < maxFields {
		f, ok := ParseField(c)
		if !ok {
			break
		}
		r.fields[r.n] = f
		r.n++

		if !c.MatchByte(',') {
			break
		}
		r.truncated = r.n == maxFields
	}
	if r.truncated {
		return r.n
	}

	if c.MatchByte('\r') {
		c.MatchByte('\n')
	} else {
		c.MatchByte('\n')
	}
	return r.n
}
