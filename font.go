package sevenseg

// Font maps ASCII 0x20 (space) through 0x60 (backtick) to segment patterns.
// Lowercase letters have no glyphs of their own; see Index.
var Font = [65]uint8{
	// bit 7 is segment a through to bit 1 for g; bit 0 is the decimal point.
	0x00, // space
	0x92, // !
	0x92, // "
	0x92, // #
	0x92, // $
	0x4a, // %
	0x92, // &
	0x04, // '
	0x9c, // (
	0xf0, // )
	0xc6, // *
	0x62, // +
	0x30, // ,
	0x02, // -
	0x01, // .
	0x4a, // /
	0xfc, // 0
	0x60, // 1
	0xda, // 2
	0xf2, // 3
	0x66, // 4
	0xb6, // 5
	0xbe, // 6
	0xe0, // 7
	0xfe, // 8
	0xf6, // 9
	0x12, // :
	0x12, // ;
	0x86, // <
	0x12, // =
	0xc2, // >
	0xca, // ?
	0x92, // @
	0xee, // A
	0x3e, // B
	0x1a, // C
	0x7a, // D
	0x9e, // E
	0x8e, // F
	0xf6, // G
	0x6e, // H
	0x0c, // I
	0x7c, // J
	0x0e, // K
	0x1c, // L
	0x2a, // M
	0x2a, // N
	0xfc, // O
	0xce, // P
	0xe6, // Q
	0x0a, // R
	0xb6, // S
	0x1e, // T
	0x38, // U
	0x38, // V
	0x38, // W
	0x6e, // X
	0x76, // Y
	0xda, // Z
	0x9c, // [
	0x26, // \
	0xf0, // ]
	0xc4, // ^
	0x80, // _
	0x04, // `
}

const (
	fontFirst = 0x20
	fontLast  = 0x60
	lowerLast = 0x7a

	// Blank is the Font index of the space glyph.
	Blank uint8 = 0
)

// Lookup returns the segment pattern for code, which must be in the range
// 0x20 - 0x60.
func Lookup(code byte) uint8 {
	return Font[code-fontFirst]
}

// Index returns the Font index used to display ch. Lowercase letters share
// the uppercase glyphs, and anything else outside the font displays as
// Blank.
func Index(ch byte) uint8 {
	switch {
	case ch >= fontFirst && ch <= fontLast:
		return ch - fontFirst
	case ch > fontLast && ch <= lowerLast:
		return ch - 0x40
	default:
		return Blank
	}
}
