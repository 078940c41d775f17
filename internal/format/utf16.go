package format

import (
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

// utf16LE decodes little-endian UTF-16 without BOM handling. Unpaired
// surrogates decode to U+FFFD.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16LE decodes b as UTF-16LE code units into a UTF-8 string.
// A trailing odd byte is dropped. Invalid sequences never fail; each bad
// code unit becomes U+FFFD.
func DecodeUTF16LE(b []byte) string {
	b = b[:len(b)-len(b)%utf16UnitSize]
	if len(b) == 0 {
		return ""
	}

	out, err := utf16LE.NewDecoder().Bytes(b)
	if err != nil {
		// The x/text decoder only fails on transformer misuse; fall back to a
		// unit-by-unit decode with the same substitution rules.
		units := make([]uint16, len(b)/utf16UnitSize)
		for i := range units {
			units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
		}
		return string(utf16.Decode(units))
	}
	return string(out)
}

// EncodeUTF16LE encodes s as UTF-16LE code units.
func EncodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, 0, len(units)*utf16UnitSize)
	for _, u := range units {
		b = append(b, byte(u), byte(u>>8))
	}
	return b
}
