package csv

import (
	"errors"
	"fmt"

	"github.com/BLAZED-sh/fastparse/pkg/scan"
)

// ErrTooManyFields is returned by a Strict Reader when a record has more
// fields than MaxFields allows.
var ErrTooManyFields = errors.New("csv: record exceeds field limit")

// Reader walks every record of an in-memory buffer.
type Reader struct {
	// MaxFields caps the fields kept per record, see ParseLine.
	MaxFields int
	// Strict turns truncated records into ErrTooManyFields. Otherwise the
	// surplus fields are dropped.
	Strict bool

	c       *scan.Cursor
	rec     Record
	scratch Record
	line    int
	err     error
}

func NewReader(buf []byte) *Reader {
	return &Reader{c: scan.New(buf)}
}

// Next advances to the next record. It returns false at end of input or on
// error; Err distinguishes the two.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	// Blank lines and indentation never start a record.
	r.c.SkipWhitespace()
	if r.c.AtEnd() {
		return false
	}

	r.line = r.c.Line()
	ParseLine(r.c, &r.rec, r.MaxFields)
	if r.c.HasError() {
		r.err = r.c.Err()
		return false
	}

	if r.rec.Truncated() {
		if r.Strict {
			r.err = fmt.Errorf("line %d: %w", r.line, ErrTooManyFields)
			return false
		}
		r.discardRest()
		if r.c.HasError() {
			// Reported by the next call; this record is complete.
			r.err = r.c.Err()
		}
	}
	return true
}

// discardRest consumes the remaining fields of a truncated line.
func (r *Reader) discardRest() {
	for {
		if b := r.c.Peek(); b == '\r' || b == '\n' {
			// Only an empty field was left after the last comma.
			r.c.MatchByte('\r')
			r.c.MatchByte('\n')
			return
		}
		ParseLine(r.c, &r.scratch, MaxFields)
		if !r.scratch.Truncated() || r.c.HasError() {
			return
		}
	}
}

// Record returns the current record. It is overwritten by the next call to
// Next; its Views stay valid as long as the input buffer.
func (r *Reader) Record() *Record { return &r.rec }

// Line is the line on which the current record started.
func (r *Reader) Line() int { return r.line }

func (r *Reader) Err() error { return r.err }

// Cursor exposes the underlying cursor, e.g. for position reporting.
func (r *Reader) Cursor() *scan.Cursor { return r.c }
