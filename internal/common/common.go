// Package common holds byte tables and number formatting shared by the
// encoder and its tooling.
package common

import (
	"math"
	"strconv"
)

// Literal tokens.
const (
	TokenTrue  = "true"
	TokenFalse = "false"
	TokenNull  = "null"
)

// ControlEscapes maps every byte below 0x20 to its JSON escape. The five
// bytes with a short form use it; the rest use \u00XX with uppercase hex.
var ControlEscapes = [32]string{
	`\u0000`, `\u0001`, `\u0002`, `\u0003`, `\u0004`, `\u0005`, `\u0006`, `\u0007`,
	`\b`, `\t`, `\n`, `\u000B`, `\f`, `\r`, `\u000E`, `\u000F`,
	`\u0010`, `\u0011`, `\u0012`, `\u0013`, `\u0014`, `\u0015`, `\u0016`, `\u0017`,
	`\u0018`, `\u0019`, `\u001A`, `\u001B`, `\u001C`, `\u001D`, `\u001E`, `\u001F`,
}

// NeedsEscape reports whether c cannot appear verbatim inside a JSON string.
// Bytes >= 0x80 are passed through untouched.
func NeedsEscape(c byte) bool {
	return c < 0x20 || c == '"' || c == '\\'
}

// Escape returns the escape sequence for a byte that NeedsEscape.
func Escape(c byte) string {
	switch c {
	case '"':
		return `\"`
	case '\\':
		return `\\`
	}
	return ControlEscapes[c]
}

// AppendFloat appends the shortest decimal that round-trips to f.
// Magnitudes in [1e-6, 1e21) use plain notation, others exponent form.
// NaN and infinities come out as strconv renders them.
func AppendFloat(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.AppendFloat(dst, f, 'g', -1, 64)
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}
