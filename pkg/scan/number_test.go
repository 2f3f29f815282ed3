package scan

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt64RoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 9, 10, -10, 42,
		math.MaxInt64, math.MaxInt64 - 1, math.MaxInt64 / 10,
		math.MinInt64, math.MinInt64 + 1, math.MinInt64 / 10,
		math.MaxInt32, math.MinInt32,
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		v := rng.Int63() >> uint(rng.Intn(63))
		if rng.Intn(2) == 0 {
			v = -v
		}
		values = append(values, v)
	}

	for _, want := range values {
		text := strconv.FormatInt(want, 10)
		c := NewString(text)
		got, ok := c.ParseInt64()
		require.True(t, ok, "parse %s: %v", text, c.Err())
		assert.Equal(t, want, got)
		assert.True(t, c.AtEnd())
		assert.False(t, c.HasError())
	}
}

func TestParseInt64(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int64
		code    Code
		wantOff int
	}{
		{name: "leading whitespace", input: " \n\t 123,", want: 123, wantOff: 7},
		{name: "plus sign", input: "+77", want: 77, wantOff: 3},
		{name: "leading zeros", input: "-0007x", want: -7, wantOff: 5},
		{name: "stops at fraction", input: "12.5", want: 12, wantOff: 2},
		{name: "empty", input: "", code: EndOfInput},
		{name: "only whitespace", input: "   ", code: EndOfInput, wantOff: 3},
		{name: "no digits", input: "abc", code: InvalidNumber},
		{name: "sign only", input: "-", code: InvalidNumber, wantOff: 1},
		{name: "sign then space", input: "- 1", code: InvalidNumber, wantOff: 1},
		{name: "one past max", input: "9223372036854775808", code: Overflow, wantOff: 18},
		{name: "one past min", input: "-9223372036854775809", code: Overflow, wantOff: 19},
		{name: "far too large", input: "123456789012345678901234567890", code: Overflow, wantOff: 19},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewString(tc.input)
			got, ok := c.ParseInt64()
			assert.Equal(t, tc.code == OK, ok)
			assert.Equal(t, tc.code, c.Code())
			assert.Equal(t, tc.wantOff, c.Offset())
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseFloat64(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    float64
		wantOff int
		fail    bool
	}{
		{name: "integer", input: "42", want: 42, wantOff: 2},
		{name: "fraction", input: "  3.25 ", want: 3.25, wantOff: 6},
		{name: "negative exponent", input: "-1.5e-3]", want: -1.5e-3, wantOff: 7},
		{name: "upper exponent", input: "2E+2", want: 200, wantOff: 4},
		{name: "dangling exponent", input: "1.5e", want: 1.5, wantOff: 3},
		{name: "dangling exponent sign", input: "7e-x", want: 7, wantOff: 1},
		{name: "trailing dot", input: "1.", want: 1, wantOff: 2},
		{name: "leading dot", input: ".5,", want: 0.5, wantOff: 2},
		{name: "overflow to inf", input: "1e400", want: math.Inf(1), wantOff: 5},
		{name: "underflow to zero", input: "1e-400", want: 0, wantOff: 6},
		{name: "infinity", input: "-Infinity", want: math.Inf(-1), wantOff: 9},
		{name: "inf", input: "infx", want: math.Inf(1), wantOff: 3},
		{name: "no number", input: "abc", fail: true},
		{name: "dot only", input: ".", fail: true},
		{name: "sign only", input: "-", fail: true},
		{name: "empty", input: "", fail: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewString(tc.input)
			got, ok := c.ParseFloat64()
			if tc.fail {
				assert.False(t, ok)
				assert.Equal(t, InvalidNumber, c.Code())
				return
			}
			require.True(t, ok, c.Err())
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOff, c.Offset())
			assert.Equal(t, tc.wantOff+1, c.Column())
		})
	}
}

func TestParseFloat64NaN(t *testing.T) {
	c := NewString("NaN")
	got, ok := c.ParseFloat64()
	require.True(t, ok)
	assert.True(t, math.IsNaN(got))
	assert.True(t, c.AtEnd())
}

func FuzzParseInt64(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(math.MaxInt64))
	f.Add(int64(math.MinInt64))
	f.Fuzz(func(t *testing.T, n int64) {
		c := NewString(strconv.FormatInt(n, 10))
		got, ok := c.ParseInt64()
		if !ok || got != n {
			t.Fatalf("parse %d: got %d, ok=%v, err=%v", n, got, ok, c.Err())
		}
	})
}

func BenchmarkParseInt64(b *testing.B) {
	input := []byte("-9223372036854775808")
	b.SetBytes(int64(len(input)))
	var c Cursor
	for i := 0; i < b.N; i++ {
		c.Reset(input)
		if _, ok := c.ParseInt64(); !ok {
			b.Fatal(c.Err())
		}
	}
}
