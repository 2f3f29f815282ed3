package scan

import (
	"encoding/binary"
	"math/bits"
)

// Word-at-a-time byte classification. Each helper works on eight input bytes
// loaded little-endian, so byte i of the input is byte i of the word.

const (
	wordSize = 8

	lo7  = 0x7f7f7f7f7f7f7f7f
	hi   = 0x8080808080808080
	ones = 0x0101010101010101
)

// bulkEnabled selects the word-at-a-time paths. It is set once by the
// per-architecture init and read-only afterwards.
var bulkEnabled bool

// zeroBytes sets the high bit of every byte of w that is zero and clears
// everything else. Unlike the classic (w-ones)&^w&hi trick it has no false
// positives, so the mask can be used to count and locate bytes.
func zeroBytes(w uint64) uint64 {
	t := (w & lo7) + lo7
	return ^(t | w | lo7)
}

func eqBytes(w uint64, b byte) uint64 {
	return zeroBytes(w ^ (ones * uint64(b)))
}

func loadWord(b []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(b[i:])
}

// firstByte is the index of the lowest flagged byte of a non-zero mask.
func firstByte(mask uint64) int {
	return bits.TrailingZeros64(mask) >> 3
}

// lastByte is the index of the highest flagged byte of a non-zero mask.
func lastByte(mask uint64) int {
	return (63 - bits.LeadingZeros64(mask)) >> 3
}

// indexQuoteOrBackslash returns the index of the first '"' or '\\' in b, or -1.
func indexQuoteOrBackslash(b []byte) int {
	i := 0
	if bulkEnabled {
		for ; len(b)-i >= wordSize; i += wordSize {
			w := loadWord(b, i)
			if m := eqBytes(w, '"') | eqBytes(w, '\\'); m != 0 {
				return i + firstByte(m)
			}
		}
	}
	for ; i < len(b); i++ {
		if c := b[i]; c == '"' || c == '\\' {
			return i
		}
	}
	return -1
}
