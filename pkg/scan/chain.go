package scan

// Chain sequences scanner calls on one Cursor. After the first failing step
// every later step returns the chain unchanged without touching the cursor.
//
//	ch := scan.Begin(c).SkipWhitespace().Expect('{').QuotedString()
//	if !ch.OK() {
//		return ch.Err()
//	}
type Chain struct {
	c      *Cursor
	ok     bool
	result View
}

func Begin(c *Cursor) Chain {
	return Chain{c: c, ok: true}
}

func (ch Chain) OK() bool { return ch.ok }

// Result is the View produced by the last successful QuotedString step.
func (ch Chain) Result() View { return ch.result }

func (ch Chain) Cursor() *Cursor { return ch.c }

// Err returns the cursor's pending error if the chain failed.
func (ch Chain) Err() error {
	if ch.ok {
		return nil
	}
	return ch.c.Err()
}

func (ch Chain) SkipWhitespace() Chain {
	if ch.ok {
		ch.c.SkipWhitespace()
	}
	return ch
}

// Expect consumes b or fails with Custom "Expected 'b'".
func (ch Chain) Expect(b byte) Chain {
	if !ch.ok {
		return ch
	}
	if ch.ok = ch.c.MatchByte(b); !ch.ok {
		ch.c.SetErrorByte(Custom, "Expected ", b)
	}
	return ch
}

// ExpectLiteral consumes lit or fails with Custom "Expected lit".
func (ch Chain) ExpectLiteral(lit string) Chain {
	if !ch.ok {
		return ch
	}
	if ch.ok = ch.c.MatchString(lit); !ch.ok {
		ch.c.SetError(Custom, "Expected ")
		ch.c.appendMessage(lit)
	}
	return ch
}

func (ch Chain) QuotedString() Chain {
	if !ch.ok {
		return ch
	}
	var v View
	if v, ch.ok = ch.c.ParseQuotedString(); ch.ok {
		ch.result = v
	}
	return ch
}

func (ch Chain) Int64(dst *int64) Chain {
	if !ch.ok {
		return ch
	}
	var v int64
	if v, ch.ok = ch.c.ParseInt64(); ch.ok {
		*dst = v
	}
	return ch
}

func (ch Chain) Float64(dst *float64) Chain {
	if !ch.ok {
		return ch
	}
	var v float64
	if v, ch.ok = ch.c.ParseFloat64(); ch.ok {
		*dst = v
	}
	return ch
}

// Then runs an arbitrary step, e.g. csv.ParseField or json.SkipValue. The step
// is responsible for setting the cursor error when it fails.
func (ch Chain) Then(step func(*Cursor) bool) Chain {
	if ch.ok {
		ch.ok = step(ch.c)
	}
	return ch
}
