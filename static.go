package tachyon

import "unsafe"

// StaticStr is a compact handle to string bytes that live for the whole
// program, typically literals, carrying a "validated literal" marker.
//
// The length is not stored; whoever holds the handle tracks it. The Go
// collector does not allow spare bits in pointers, so the marker sits in its
// own field next to the pointer.
type StaticStr struct {
	ptr    *byte
	static bool
}

// NewStaticStr returns a marked handle to s. s must never be freed or
// mutated, which holds for string constants.
func NewStaticStr(s string) StaticStr {
	return StaticStr{ptr: unsafe.StringData(s), static: true}
}

// Str rebuilds the string from the handle and a caller-supplied length.
func (h StaticStr) Str(n int) string {
	if h.ptr == nil || n == 0 {
		return ""
	}
	return unsafe.String(h.ptr, n)
}

// IsStatic reports whether the handle was made by NewStaticStr.
func (h StaticStr) IsStatic() bool { return h.static }

func (h StaticStr) IsZero() bool { return h.ptr == nil && !h.static }

// StaticString returns a String value over the first n bytes of h.
func StaticString(h StaticStr, n int) Value { return String(h.Str(n)) }
