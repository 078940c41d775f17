package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeUTF16LE(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{name: "empty", in: nil, want: ""},
		{name: "ascii", in: []byte{'a', 0, 'b', 0}, want: "ab"},
		{name: "keeps nul terminator", in: []byte{'a', 0, 'b', 0, 0, 0}, want: "ab\x00"},
		{name: "odd length drops last byte", in: []byte{'a', 0, 'b', 0, 'c'}, want: "ab"},
		{name: "single byte", in: []byte{'a'}, want: ""},
		{name: "non-ascii bmp", in: []byte{0xe9, 0x00, 0x16, 0x4e}, want: "é世"},
		{name: "surrogate pair", in: []byte{0x3d, 0xd8, 0x00, 0xde}, want: "😀"},
		{name: "lone high surrogate", in: []byte{0x3d, 0xd8, 'a', 0}, want: "\uFFFDa"},
		{name: "lone low surrogate", in: []byte{'a', 0, 0x00, 0xde}, want: "a\uFFFD"},
		{name: "high surrogate at end", in: []byte{'a', 0, 0x3d, 0xd8}, want: "a\uFFFD"},
		{name: "reversed pair", in: []byte{0x00, 0xde, 0x3d, 0xd8}, want: "\uFFFD\uFFFD"},
		{name: "bom is not stripped", in: []byte{0xff, 0xfe, 'a', 0}, want: "\uFEFFa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeUTF16LE(tt.in))
		})
	}
}

func TestEncodeUTF16LE(t *testing.T) {
	assert.Equal(t, []byte{'C', 0, ':', 0, '\\', 0}, EncodeUTF16LE(`C:\`))
	assert.Equal(t, []byte{0x3d, 0xd8, 0x00, 0xde}, EncodeUTF16LE("😀"))
	assert.Equal(t, `C:\Users\é\😀.txt`, DecodeUTF16LE(EncodeUTF16LE(`C:\Users\é\😀.txt`)))
}
