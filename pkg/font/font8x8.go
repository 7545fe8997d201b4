package font

// Width and Height of every glyph in pixels.
const (
	Width  = 8
	Height = 8
)

const (
	first    = 0x20
	last     = 0x7f
	fallback = last
)

// Glyph returns the column bytes of r. Bit 0 of each byte is the top row.
// Runes outside the printable ASCII range render as a filled block.
func Glyph(r rune) [Width]byte {
	if r < first || r > last {
		r = fallback
	}
	return glyphs[r-first]
}

var glyphs = [last - first + 1][Width]byte{
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // ' '
	{0x00, 0x00, 0x06, 0x5f, 0x5f, 0x06, 0x00, 0x00}, // '!'
	{0x00, 0x03, 0x03, 0x00, 0x03, 0x03, 0x00, 0x00}, // '"'
	{0x14, 0x7f, 0x7f, 0x14, 0x7f, 0x7f, 0x14, 0x00}, // '#'
	{0x24, 0x2e, 0x6b, 0x6b, 0x3a, 0x12, 0x00, 0x00}, // '$'
	{0x46, 0x66, 0x30, 0x18, 0x0c, 0x66, 0x62, 0x00}, // '%'
	{0x30, 0x7a, 0x4f, 0x5d, 0x37, 0x7a, 0x48, 0x00}, // '&'
	{0x04, 0x07, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00}, // '\''
	{0x00, 0x1c, 0x3e, 0x63, 0x41, 0x00, 0x00, 0x00}, // '('
	{0x00, 0x41, 0x63, 0x3e, 0x1c, 0x00, 0x00, 0x00}, // ')'
	{0x08, 0x2a, 0x3e, 0x1c, 0x1c, 0x3e, 0x2a, 0x08}, // '*'
	{0x08, 0x08, 0x3e, 0x3e, 0x08, 0x08, 0x00, 0x00}, // '+'
	{0x00, 0x80, 0xe0, 0x60, 0x00, 0x00, 0x00, 0x00}, // ','
	{0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x00, 0x00}, // '-'
	{0x00, 0x00, 0x60, 0x60, 0x00, 0x00, 0x00, 0x00}, // '.'
	{0x60, 0x30, 0x18, 0x0c, 0x06, 0x03, 0x01, 0x00}, // '/'
	{0x3e, 0x7f, 0x71, 0x59, 0x4d, 0x7f, 0x3e, 0x00}, // '0'
	{0x40, 0x42, 0x7f, 0x7f, 0x40, 0x40, 0x00, 0x00}, // '1'
	{0x62, 0x73, 0x59, 0x49, 0x6f, 0x66, 0x00, 0x00}, // '2'
	{0x22, 0x63, 0x49, 0x49, 0x7f, 0x36, 0x00, 0x00}, // '3'
	{0x18, 0x1c, 0x16, 0x53, 0x7f, 0x7f, 0x50, 0x00}, // '4'
	{0x27, 0x67, 0x45, 0x45, 0x7d, 0x39, 0x00, 0x00}, // '5'
	{0x3c, 0x7e, 0x4b, 0x49, 0x79, 0x30, 0x00, 0x00}, // '6'
	{0x03, 0x03, 0x71, 0x79, 0x0f, 0x07, 0x00, 0x00}, // '7'
	{0x36, 0x7f, 0x49, 0x49, 0x7f, 0x36, 0x00, 0x00}, // '8'
	{0x06, 0x4f, 0x49, 0x69, 0x3f, 0x1e, 0x00, 0x00}, // '9'
	{0x00, 0x00, 0x66, 0x66, 0x00, 0x00, 0x00, 0x00}, // ':'
	{0x00, 0x80, 0xe6, 0x66, 0x00, 0x00, 0x00, 0x00}, // ';'
	{0x08, 0x1c, 0x36, 0x63, 0x41, 0x00, 0x00, 0x00}, // '<'
	{0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x00, 0x00}, // '='
	{0x00, 0x41, 0x63, 0x36, 0x1c, 0x08, 0x00, 0x00}, // '>'
	{0x02, 0x03, 0x51, 0x59, 0x0f, 0x06, 0x00, 0x00}, // '?'
	{0x3e, 0x7f, 0x41, 0x5d, 0x5d, 0x1f, 0x1e, 0x00}, // '@'
	{0x7c, 0x7e, 0x13, 0x13, 0x7e, 0x7c, 0x00, 0x00}, // 'A'
	{0x41, 0x7f, 0x7f, 0x49, 0x49, 0x7f, 0x36, 0x00}, // 'B'
	{0x1c, 0x3e, 0x63, 0x41, 0x41, 0x63, 0x22, 0x00}, // 'C'
	{0x41, 0x7f, 0x7f, 0x41, 0x63, 0x3e, 0x1c, 0x00}, // 'D'
	{0x41, 0x7f, 0x7f, 0x49, 0x5d, 0x41, 0x63, 0x00}, // 'E'
	{0x41, 0x7f, 0x7f, 0x49, 0x1d, 0x01, 0x03, 0x00}, // 'F'
	{0x1c, 0x3e, 0x63, 0x41, 0x51, 0x73, 0x72, 0x00}, // 'G'
	{0x7f, 0x7f, 0x08, 0x08, 0x7f, 0x7f, 0x00, 0x00}, // 'H'
	{0x00, 0x41, 0x7f, 0x7f, 0x41, 0x00, 0x00, 0x00}, // 'I'
	{0x30, 0x70, 0x40, 0x41, 0x7f, 0x3f, 0x01, 0x00}, // 'J'
	{0x41, 0x7f, 0x7f, 0x08, 0x1c, 0x77, 0x63, 0x00}, // 'K'
	{0x41, 0x7f, 0x7f, 0x41, 0x40, 0x60, 0x70, 0x00}, // 'L'
	{0x7f, 0x7f, 0x0e, 0x1c, 0x0e, 0x7f, 0x7f, 0x00}, // 'M'
	{0x7f, 0x7f, 0x06, 0x0c, 0x18, 0x7f, 0x7f, 0x00}, // 'N'
	{0x1c, 0x3e, 0x63, 0x41, 0x63, 0x3e, 0x1c, 0x00}, // 'O'
	{0x41, 0x7f, 0x7f, 0x49, 0x09, 0x0f, 0x06, 0x00}, // 'P'
	{0x1e, 0x3f, 0x21, 0x71, 0x7f, 0x5e, 0x00, 0x00}, // 'Q'
	{0x41, 0x7f, 0x7f, 0x09, 0x19, 0x7f, 0x66, 0x00}, // 'R'
	{0x26, 0x6f, 0x4d, 0x59, 0x73, 0x32, 0x00, 0x00}, // 'S'
	{0x03, 0x41, 0x7f, 0x7f, 0x41, 0x03, 0x00, 0x00}, // 'T'
	{0x7f, 0x7f, 0x40, 0x40, 0x7f, 0x7f, 0x00, 0x00}, // 'U'
	{0x1f, 0x3f, 0x60, 0x60, 0x3f, 0x1f, 0x00, 0x00}, // 'V'
	{0x7f, 0x7f, 0x30, 0x18, 0x30, 0x7f, 0x7f, 0x00}, // 'W'
	{0x43, 0x67, 0x3c, 0x18, 0x3c, 0x67, 0x43, 0x00}, // 'X'
	{0x07, 0x4f, 0x78, 0x78, 0x4f, 0x07, 0x00, 0x00}, // 'Y'
	{0x47, 0x63, 0x71, 0x59, 0x4d, 0x67, 0x73, 0x00}, // 'Z'
	{0x00, 0x7f, 0x7f, 0x41, 0x41, 0x00, 0x00, 0x00}, // '['
	{0x01, 0x03, 0x06, 0x0c, 0x18, 0x30, 0x60, 0x00}, // '\\'
	{0x00, 0x41, 0x41, 0x7f, 0x7f, 0x00, 0x00, 0x00}, // ']'
	{0x08, 0x0c, 0x06, 0x03, 0x06, 0x0c, 0x08, 0x00}, // '^'
	{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}, // '_'
	{0x00, 0x00, 0x03, 0x07, 0x04, 0x00, 0x00, 0x00}, // '`'
	{0x20, 0x74, 0x54, 0x54, 0x3c, 0x78, 0x40, 0x00}, // 'a'
	{0x41, 0x7f, 0x3f, 0x48, 0x48, 0x78, 0x30, 0x00}, // 'b'
	{0x38, 0x7c, 0x44, 0x44, 0x6c, 0x28, 0x00, 0x00}, // 'c'
	{0x30, 0x78, 0x48, 0x49, 0x3f, 0x7f, 0x40, 0x00}, // 'd'
	{0x38, 0x7c, 0x54, 0x54, 0x5c, 0x18, 0x00, 0x00}, // 'e'
	{0x48, 0x7e, 0x7f, 0x49, 0x03, 0x02, 0x00, 0x00}, // 'f'
	{0x98, 0xbc, 0xa4, 0xa4, 0xf8, 0x7c, 0x04, 0x00}, // 'g'
	{0x41, 0x7f, 0x7f, 0x08, 0x04, 0x7c, 0x78, 0x00}, // 'h'
	{0x00, 0x44, 0x7d, 0x7d, 0x40, 0x00, 0x00, 0x00}, // 'i'
	{0x60, 0xe0, 0x80, 0x80, 0xfd, 0x7d, 0x00, 0x00}, // 'j'
	{0x41, 0x7f, 0x7f, 0x10, 0x38, 0x6c, 0x44, 0x00}, // 'k'
	{0x00, 0x41, 0x7f, 0x7f, 0x40, 0x00, 0x00, 0x00}, // 'l'
	{0x7c, 0x7c, 0x18, 0x38, 0x1c, 0x7c, 0x78, 0x00}, // 'm'
	{0x7c, 0x7c, 0x04, 0x04, 0x7c, 0x78, 0x00, 0x00}, // 'n'
	{0x38, 0x7c, 0x44, 0x44, 0x7c, 0x38, 0x00, 0x00}, // 'o'
	{0x84, 0xfc, 0xf8, 0xa4, 0x24, 0x3c, 0x18, 0x00}, // 'p'
	{0x18, 0x3c, 0x24, 0xa4, 0xf8, 0xfc, 0x84, 0x00}, // 'q'
	{0x44, 0x7c, 0x78, 0x4c, 0x04, 0x1c, 0x18, 0x00}, // 'r'
	{0x48, 0x5c, 0x54, 0x54, 0x74, 0x24, 0x00, 0x00}, // 's'
	{0x00, 0x04, 0x3e, 0x7f, 0x44, 0x24, 0x00, 0x00}, // 't'
	{0x3c, 0x7c, 0x40, 0x40, 0x3c, 0x7c, 0x40, 0x00}, // 'u'
	{0x1c, 0x3c, 0x60, 0x60, 0x3c, 0x1c, 0x00, 0x00}, // 'v'
	{0x3c, 0x7c, 0x70, 0x38, 0x70, 0x7c, 0x3c, 0x00}, // 'w'
	{0x44, 0x6c, 0x38, 0x10, 0x38, 0x6c, 0x44, 0x00}, // 'x'
	{0x9c, 0xbc, 0xa0, 0xa0, 0xfc, 0x7c, 0x00, 0x00}, // 'y'
	{0x4c, 0x64, 0x74, 0x5c, 0x4c, 0x64, 0x00, 0x00}, // 'z'
	{0x08, 0x08, 0x3e, 0x77, 0x41, 0x41, 0x00, 0x00}, // '{'
	{0x00, 0x00, 0x00, 0x77, 0x77, 0x00, 0x00, 0x00}, // '|'
	{0x41, 0x41, 0x77, 0x3e, 0x08, 0x08, 0x00, 0x00}, // '}'
	{0x02, 0x03, 0x01, 0x03, 0x02, 0x03, 0x01, 0x00}, // '~'
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, // DEL
}
