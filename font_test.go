package sevenseg

import (
	"testing"

	"gotest.tools/assert"
)

func TestLookup(t *testing.T) {
	want := map[byte]uint8{
		' ': 0x00, '!': 0x92, '"': 0x92, '#': 0x92, '$': 0x92, '%': 0x4a,
		'&': 0x92, '\'': 0x04, '(': 0x9c, ')': 0xf0, '*': 0xc6, '+': 0x62,
		',': 0x30, '-': 0x02, '.': 0x01, '/': 0x4a, '0': 0xfc, '1': 0x60,
		'2': 0xda, '3': 0xf2, '4': 0x66, '5': 0xb6, '6': 0xbe, '7': 0xe0,
		'8': 0xfe, '9': 0xf6, ':': 0x12, ';': 0x12, '<': 0x86, '=': 0x12,
		'>': 0xc2, '?': 0xca, '@': 0x92, 'A': 0xee, 'B': 0x3e, 'C': 0x1a,
		'D': 0x7a, 'E': 0x9e, 'F': 0x8e, 'G': 0xf6, 'H': 0x6e, 'I': 0x0c,
		'J': 0x7c, 'K': 0x0e, 'L': 0x1c, 'M': 0x2a, 'N': 0x2a, 'O': 0xfc,
		'P': 0xce, 'Q': 0xe6, 'R': 0x0a, 'S': 0xb6, 'T': 0x1e, 'U': 0x38,
		'V': 0x38, 'W': 0x38, 'X': 0x6e, 'Y': 0x76, 'Z': 0xda, '[': 0x9c,
		'\\': 0x26, ']': 0xf0, '^': 0xc4, '_': 0x80, '`': 0x04,
	}
	assert.Equal(t, len(want), len(Font))
	for code := byte(0x20); code <= 0x60; code++ {
		assert.Equal(t, Lookup(code), want[code], "code %q", code)
	}
}

func TestIndex(t *testing.T) {
	for c := 0; c < 256; c++ {
		ch := byte(c)
		got := Index(ch)
		switch {
		case ch >= 0x20 && ch <= 0x60:
			assert.Equal(t, got, ch-0x20, "ch %#x", ch)
			assert.Equal(t, Font[got], Lookup(ch))
		case ch >= 'a' && ch <= 'z':
			assert.Equal(t, got, Index(ch-0x20), "ch %q", ch)
		default:
			assert.Equal(t, got, Blank, "ch %#x", ch)
		}
	}
}
