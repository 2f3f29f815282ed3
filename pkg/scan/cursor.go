package scan

import "bytes"

// MaxMessage is the capacity of the pending error message. Longer messages are
// truncated.
const MaxMessage = 256

// Position is a location in the input. Line and Column start at 1.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Cursor scans an immutable input buffer. It borrows the buffer, never copies
// it, and keeps at most one pending error. A Cursor must not be shared between
// goroutines.
type Cursor struct {
	buf  []byte
	off  int
	line int
	col  int

	code   Code
	msg    [MaxMessage]byte
	msgLen int
}

// New creates a Cursor positioned at the start of buf.
func New(buf []byte) *Cursor {
	c := &Cursor{}
	c.Reset(buf)
	return c
}

// NewString creates a Cursor over s without copying it.
func NewString(s string) *Cursor {
	return New(ViewOf(s).data)
}

// NewTerminated creates a Cursor over buf up to, not including, its first NUL
// byte. Without a NUL the whole buffer is used.
func NewTerminated(buf []byte) *Cursor {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return New(buf)
}

// Reset points the cursor at buf and clears position and error state.
func (c *Cursor) Reset(buf []byte) {
	c.buf = buf
	c.off = 0
	c.line = 1
	c.col = 1
	c.code = OK
	c.msgLen = 0
}

func (c *Cursor) AtEnd() bool { return c.off >= len(c.buf) }

func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

func (c *Cursor) Offset() int { return c.off }

func (c *Cursor) Line() int { return c.line }

func (c *Cursor) Column() int { return c.col }

func (c *Cursor) Pos() Position {
	return Position{Offset: c.off, Line: c.line, Column: c.col}
}

// Input returns the whole buffer the cursor scans.
func (c *Cursor) Input() []byte { return c.buf }

// Rest returns the unread part of the input.
func (c *Cursor) Rest() []byte { return c.buf[c.off:] }

// Peek returns the current byte, or 0 at end of input.
func (c *Cursor) Peek() byte {
	if c.off >= len(c.buf) {
		return 0
	}
	return c.buf[c.off]
}

// Advance consumes and returns one byte, or returns 0 at end of input.
func (c *Cursor) Advance() byte {
	if c.off >= len(c.buf) {
		return 0
	}
	b := c.buf[c.off]
	c.off++
	if b == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return b
}

// Skip consumes up to n bytes, counting newlines.
func (c *Cursor) Skip(n int) {
	if n > len(c.buf)-c.off {
		n = len(c.buf) - c.off
	}
	if n > 0 {
		c.advanceSpan(n)
	}
}

// advanceSpan consumes n bytes that may contain newlines.
func (c *Cursor) advanceSpan(n int) {
	span := c.buf[c.off : c.off+n]
	c.off += n
	nl := bytes.Count(span, newline)
	if nl == 0 {
		c.col += n
		return
	}
	c.line += nl
	c.col = n - bytes.LastIndexByte(span, '\n')
}

// advanceColumn consumes n bytes known not to contain newlines.
func (c *Cursor) advanceColumn(n int) {
	c.off += n
	c.col += n
}

var newline = []byte{'\n'}

// SetError overwrites the pending error. The message is copied into a fixed
// slot and silently truncated to MaxMessage bytes.
func (c *Cursor) SetError(code Code, msg string) {
	c.code = code
	c.msgLen = copy(c.msg[:], msg)
}

// SetErrorByte records msg followed by b in single quotes, without allocating.
func (c *Cursor) SetErrorByte(code Code, msg string, b byte) {
	c.SetError(code, msg)
	c.appendMessage("'")
	if c.msgLen < MaxMessage {
		c.msg[c.msgLen] = b
		c.msgLen++
	}
	c.appendMessage("'")
}

func (c *Cursor) appendMessage(s string) {
	c.msgLen += copy(c.msg[c.msgLen:], s)
}

func (c *Cursor) HasError() bool { return c.code != OK }

func (c *Cursor) Code() Code { return c.code }

// Message returns the pending error message. The result aliases the cursor's
// slot and is overwritten by the next failing call.
func (c *Cursor) Message() []byte { return c.msg[:c.msgLen] }

// ClearError empties the pending slot.
func (c *Cursor) ClearError() {
	c.code = OK
	c.msgLen = 0
}

// Err returns the pending error as an *Error, or nil. The position is the
// cursor's current position.
func (c *Cursor) Err() error {
	if c.code == OK {
		return nil
	}
	return &Error{
		Code:    c.code,
		Message: string(c.msg[:c.msgLen]),
		Offset:  c.off,
		Line:    c.line,
		Column:  c.col,
	}
}
