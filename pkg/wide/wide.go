// Package wide converts between Go strings and NUL-terminated UTF-16
// buffers, counting lengths in UTF-16 code units.
package wide

import "unicode/utf16"

// Len returns the number of UTF-16 code units needed to encode s.
func Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Copy encodes s into dst and returns the number of code units written.
// It stops before a rune that would not fit entirely; surrogate pairs are
// never split.
func Copy(dst []uint16, s string) int {
	n := 0
	for _, r := range s {
		switch utf16.RuneLen(r) {
		case 2:
			if n+2 > len(dst) {
				return n
			}
			r1, r2 := utf16.EncodeRune(r)
			dst[n], dst[n+1] = uint16(r1), uint16(r2)
			n += 2
		default:
			if n+1 > len(dst) {
				return n
			}
			dst[n] = uint16(r)
			n++
		}
	}
	return n
}

// String decodes buf up to the first NUL, or the whole slice if there is none.
func String(buf []uint16) string {
	for i, u := range buf {
		if u == 0 {
			return string(utf16.Decode(buf[:i]))
		}
	}
	return string(utf16.Decode(buf))
}
