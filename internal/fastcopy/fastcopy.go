// Package fastcopy copies string payloads into a pre-sized destination with
// strategies specialised for the most common short lengths.
//
// Nothing here checks capacity against the encoder's budget. Callers must
// have reserved len(src) bytes, plus one byte of slack for 7-byte sources.
package fastcopy

import (
	"encoding/binary"
	"unsafe"
)

// Slack is the number of bytes past len(src) that Copy may overwrite.
const Slack = 1

// Copy writes src to the front of dst and returns len(src).
//
// A 7-byte source is moved with one 8-byte store; the eighth byte written is
// garbage and must be overwritten by the caller's next write. A 13-byte
// source is moved as 8+4+1. Everything else uses the generic copy.
func Copy(dst []byte, src string) int {
	switch len(src) {
	case 7:
		s := unsafe.Slice(unsafe.StringData(src), 7)
		// overlapping loads; the source is never read past its end
		w := uint64(binary.LittleEndian.Uint32(s[0:4])) |
			uint64(binary.LittleEndian.Uint32(s[3:7]))<<24
		binary.LittleEndian.PutUint64(dst[:8], w)
		return 7
	case 13:
		s := unsafe.Slice(unsafe.StringData(src), 13)
		binary.LittleEndian.PutUint64(dst[:8], binary.LittleEndian.Uint64(s[0:8]))
		binary.LittleEndian.PutUint32(dst[8:12], binary.LittleEndian.Uint32(s[8:12]))
		dst[12] = s[12]
		return 13
	default:
		return Generic(dst, src)
	}
}

// Generic is the reference byte-for-byte strategy.
func Generic(dst []byte, src string) int {
	return copy(dst, src)
}
