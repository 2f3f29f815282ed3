package json

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/BLAZED-sh/fastparse/pkg/scan"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrFrameTooLarge is reported when a single value grows past the lexer's
// frame limit before it is complete.
var ErrFrameTooLarge = errors.New("json value exceeds maximum frame size")

// StreamLexer splits a stream of concatenated JSON values, like a JSONL file
// or a JSON-RPC connection, into one frame per top-level value. Every value is
// validated with a Skipper over the contiguous buffered bytes; a value cut off
// by the end of the buffer is retried once more data has been read.
type StreamLexer struct {
	reader  io.Reader
	context context.Context
	maxRead int

	buffer []byte
	cursor int   // Points to beginning of next json value
	length int   // Number of bytes used in buffer
	base   int64 // Stream offset of buffer[0]
	eof    bool

	skipper  Skipper
	maxFrame int
	scan     scan.Cursor
	logger   zerolog.Logger
	frames   int
}

// NewStreamLexer creates a StreamLexer reading at most maxRead bytes per call
// into an initial buffer of bufferSize bytes.
func NewStreamLexer(
	context context.Context,
	reader io.Reader,
	bufferSize int,
	maxRead int,
) *StreamLexer {
	if maxRead <= 0 {
		maxRead = 4096
	}
	if bufferSize < maxRead {
		bufferSize = maxRead
	}

	return &StreamLexer{
		reader:   reader,
		context:  context,
		buffer:   make([]byte, bufferSize),
		maxRead:  maxRead,
		maxFrame: 64 << 20,
		logger:   log.Logger.With().Str("component", "json-stream").Logger(),
	}
}

// SetMaxDepth sets the nesting limit of the underlying Skipper.
func (l *StreamLexer) SetMaxDepth(depth int) { l.skipper.MaxDepth = depth }

// SetMaxFrame bounds how large a single value may grow. Zero or less disables
// the limit.
func (l *StreamLexer) SetMaxFrame(size int) { l.maxFrame = size }

func (l *StreamLexer) SetLogger(logger zerolog.Logger) { l.logger = logger }

// Frames is the number of values emitted so far.
func (l *StreamLexer) Frames() int { return l.frames }

// Read appends up to maxRead bytes from the reader to the buffer, growing it
// when needed. io.EOF is returned once the reader is drained; bytes read
// together with io.EOF are kept.
func (l *StreamLexer) Read() (int, error) {
	if len(l.buffer)-l.length < l.maxRead {
		newCap := 2 * len(l.buffer)
		if newCap < l.length+l.maxRead {
			newCap = l.length + l.maxRead
		}
		newBuffer := make([]byte, newCap)
		copy(newBuffer, l.buffer[:l.length])
		l.buffer = newBuffer
		l.logger.Debug().Int("capacity", newCap).Msg("Grew stream buffer")
	}

	n, err := l.reader.Read(l.buffer[l.length : l.length+l.maxRead])
	l.length += n
	if err == io.EOF {
		l.eof = true
	}
	return n, err
}

// DecodeAll reads until EOF, calling cb with every complete value. The slice
// passed to cb aliases the lexer's buffer and is only valid during the call.
// The first read or syntax error is passed to errCb and ends decoding.
func (l *StreamLexer) DecodeAll(cb func([]byte), errCb func(error)) {
	for {
		select {
		case <-l.context.Done():
			return
		default:
			n, err := l.Read()

			if err == io.EOF {
				l.processBuffer(cb, errCb)
				return
			}

			// Exit on real errors
			if err != nil && err != io.ErrUnexpectedEOF {
				errCb(err)
				return
			}

			if n == 0 {
				continue
			}

			if stop := l.processBuffer(cb, errCb); stop {
				return
			}
		}
	}
}

// NextValue locates the next value in the buffered bytes. It returns the
// buffer offsets [start, end) of the value, or end == -1 when more data is
// needed.
func (l *StreamLexer) NextValue() (start, end int, err error) {
	c := &l.scan
	c.Reset(l.buffer[l.cursor:l.length])
	c.SkipWhitespace()
	start = l.cursor + c.Offset()
	if c.AtEnd() {
		return start, -1, nil
	}

	kind := KindOf(c.Peek())
	valueStart := c.Offset()
	if !l.skipper.SkipValue(c) {
		if !l.eof && l.truncated(c, kind, valueStart) {
			return start, -1, nil
		}
		return 0, 0, fmt.Errorf(
			"invalid JSON at position %d: %w",
			l.base+int64(l.cursor+c.Offset()),
			c.Err(),
		)
	}

	// A number running into the end of the buffer may continue in the next read.
	if kind == KindNumber && !l.eof && numberTail(c.Rest()) {
		return start, -1, nil
	}
	return start, l.cursor + c.Offset(), nil
}

// truncated reports whether a failed value only failed for lack of input.
func (l *StreamLexer) truncated(c *scan.Cursor, kind Kind, valueStart int) bool {
	if c.AtEnd() || c.Code() == scan.EndOfInput {
		return true
	}
	return kind == KindNumber && numberTail(c.Input()[valueStart:])
}

func numberTail(b []byte) bool {
	for _, c := range b {
		switch {
		case c-'0' < 10, c == '-', c == '+', c == '.', c == 'e', c == 'E':
		default:
			return false
		}
	}
	return true
}

// processBuffer emits every complete value in the buffer and compacts it.
func (l *StreamLexer) processBuffer(cb func([]byte), errCb func(err error)) (stop bool) {
	defer l.compact()

	for {
		start, end, err := l.NextValue()
		if err != nil {
			errCb(err)
			return true // Exit on parsing errors
		}
		if end == -1 {
			l.cursor = start
			if l.maxFrame > 0 && l.length-start > l.maxFrame {
				errCb(fmt.Errorf("value at position %d: %w", l.base+int64(start), ErrFrameTooLarge))
				return true
			}
			return false // Need more data
		}

		l.logger.Trace().
			Int64("offset", l.base+int64(start)).
			Int("size", end-start).
			Msg("Frame")
		cb(l.buffer[start:end])
		l.frames++
		l.cursor = end
	}
}

func (l *StreamLexer) compact() {
	if l.cursor == 0 {
		return
	}
	copy(l.buffer, l.buffer[l.cursor:l.length])
	l.length -= l.cursor
	l.base += int64(l.cursor)
	l.cursor = 0
}

// BufferLength returns the number of buffered, not yet emitted bytes.
func (l *StreamLexer) BufferLength() int { return l.length - l.cursor }

// BufferContent returns a preview of the buffered bytes for debugging.
func (l *StreamLexer) BufferContent() string {
	pending := l.buffer[l.cursor:l.length]
	if len(pending) > 256 {
		pending = pending[:256]
	}
	return string(pending)
}
