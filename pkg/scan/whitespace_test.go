package scan

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type wsState struct {
	off, line, col int
}

func skipBoth(buf []byte, off, line, col int) (bulk, scalar wsState) {
	bulk.off, bulk.line, bulk.col = skipWhitespaceBulk(buf, off, line, col)
	scalar.off, scalar.line, scalar.col = skipWhitespaceScalar(buf, off, line, col)
	return bulk, scalar
}

func TestSkipWhitespace(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  wsState
	}{
		{name: "empty", input: "", want: wsState{0, 1, 1}},
		{name: "no whitespace", input: "x   ", want: wsState{0, 1, 1}},
		{name: "spaces", input: "   x", want: wsState{3, 1, 4}},
		{name: "all whitespace", input: " \t\r\n ", want: wsState{5, 2, 2}},
		{name: "exactly one word", input: "  \n  \t  x", want: wsState{8, 2, 6}},
		{name: "newline last in word", input: "       \nx", want: wsState{8, 2, 1}},
		{name: "several words", input: strings.Repeat(" \n\t\r", 9) + "{", want: wsState{36, 10, 3}},
		{name: "crlf", input: "\r\n\r\n\r\nvalue", want: wsState{6, 4, 1}},
		{name: "stop inside word", input: "\n\n\nabc\n\n\n\n\n", want: wsState{3, 4, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bulk, scalar := skipBoth([]byte(tc.input), 0, 1, 1)
			assert.Equal(t, tc.want, bulk, "bulk")
			assert.Equal(t, tc.want, scalar, "scalar")

			c := NewString(tc.input)
			c.SkipWhitespace()
			assert.Equal(t, tc.want, wsState{c.Offset(), c.Line(), c.Column()})
		})
	}
}

// The word path and the byte path must agree on every input, from every
// starting offset.
func TestSkipWhitespaceBulkMatchesScalar(t *testing.T) {
	alphabet := []byte(" \t\n\r \n  x{\"")
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		buf := make([]byte, rng.Intn(80))
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		off := 0
		if len(buf) > 0 {
			off = rng.Intn(len(buf) + 1)
		}
		line, col := 1+rng.Intn(5), 1+rng.Intn(5)

		bulk, scalar := skipBoth(buf, off, line, col)
		if !assert.Equal(t, scalar, bulk, "input %q from %d", buf, off) {
			return
		}
	}
}

func TestSkipWhitespaceBulkAllBytes(t *testing.T) {
	// Every byte value at every position of a word, surrounded by whitespace.
	for b := 0; b < 256; b++ {
		for pos := 0; pos < 2*wordSize; pos++ {
			buf := []byte(strings.Repeat(" \n", 2*wordSize))
			buf[pos] = byte(b)
			bulk, scalar := skipBoth(buf, 0, 1, 1)
			assert.Equal(t, scalar, bulk, "byte %#x at %d", b, pos)
		}
	}
}

func FuzzSkipWhitespace(f *testing.F) {
	f.Add([]byte(" \t\r\n  \n        x"))
	f.Add([]byte("\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n"))
	f.Add([]byte(""))
	f.Fuzz(func(t *testing.T, buf []byte) {
		bulk, scalar := skipBoth(buf, 0, 1, 1)
		if bulk != scalar {
			t.Fatalf("bulk %+v, scalar %+v for %q", bulk, scalar, buf)
		}
	})
}

func TestIndexQuoteOrBackslash(t *testing.T) {
	saved := bulkEnabled
	defer func() { bulkEnabled = saved }()

	inputs := []string{"", "abc", `abc"`, `abcdefghijkl\m`, `abcdefgh"`, `"`, `ab\"`, "\x80\x81\x82\x83\x84\x85\x86\x87\"", strings.Repeat("z", 33)}
	for _, in := range inputs {
		want := strings.IndexAny(in, "\"\\")
		for _, bulk := range []bool{false, true} {
			bulkEnabled = bulk
			assert.Equal(t, want, indexQuoteOrBackslash([]byte(in)), "%q bulk=%v", in, bulk)
		}
	}
}

func BenchmarkSkipWhitespace(b *testing.B) {
	input := []byte(strings.Repeat(" \t\r\n", 256) + "x")
	benchmarks := []struct {
		name string
		skip func([]byte, int, int, int) (int, int, int)
	}{
		{name: "bulk", skip: skipWhitespaceBulk},
		{name: "scalar", skip: skipWhitespaceScalar},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				bm.skip(input, 0, 1, 1)
			}
		})
	}
}
