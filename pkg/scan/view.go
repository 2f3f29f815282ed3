package scan

import (
	"bytes"
	"unsafe"
)

// View is a borrowed span of a Cursor's input. It never owns its bytes and the
// package never writes through it, so it stays valid for as long as the
// underlying buffer does.
type View struct {
	data []byte
}

// ViewOf returns a View over the bytes of s without copying. The result must
// not be written to.
func ViewOf(s string) View {
	if len(s) == 0 {
		return View{}
	}
	return View{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// ViewBytes wraps b without copying.
func ViewBytes(b []byte) View {
	return View{data: b}
}

func (v View) Len() int { return len(v.data) }

func (v View) IsEmpty() bool { return len(v.data) == 0 }

// Bytes returns the borrowed slice. Callers must treat it as read-only.
func (v View) Bytes() []byte { return v.data }

// Substring returns up to n bytes starting at start. Out of range arguments
// are clamped; a start at or past the end yields an empty View.
func (v View) Substring(start, n int) View {
	if start < 0 || start >= len(v.data) || n <= 0 {
		return View{}
	}
	if n > len(v.data)-start {
		n = len(v.data) - start
	}
	return View{data: v.data[start : start+n : start+n]}
}

func (v View) Equal(other View) bool {
	return len(v.data) == len(other.data) && bytes.Equal(v.data, other.data)
}

// EqualString compares against s without allocating.
func (v View) EqualString(s string) bool {
	return len(v.data) == len(s) && string(v.data) == s
}

func (v View) HasPrefix(prefix View) bool {
	return len(v.data) >= len(prefix.data) && bytes.Equal(v.data[:len(prefix.data)], prefix.data)
}

// Compare orders views by content; on a shared prefix the shorter one sorts
// first. The result is -1, 0 or 1.
func (v View) Compare(other View) int {
	return bytes.Compare(v.data, other.data)
}

// String copies the view into an owned string. It is the only allocating
// operation on View.
func (v View) String() string {
	return string(v.data)
}

// unsafeString aliases the view as a string for read-only stdlib calls.
func (v View) unsafeString() string {
	if len(v.data) == 0 {
		return ""
	}
	return unsafe.String(&v.data[0], len(v.data))
}
