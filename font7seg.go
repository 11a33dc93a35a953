package microoled

// Font7Seg is an 8x16 pixel seven-segment style numeric font covering the
// digits '0' through '9'. All ten glyphs sit on a single 80 pixel wide sheet
// row; each column spans two vertically packed bytes.
var Font7Seg = &Font{
	Width:      8,
	Height:     16,
	FirstChar:  '0',
	GlyphCount: 10,
	SheetWidth: 80,
	Data:       font7SegData,
}

var font7SegData = []byte{
	// Rows 0-7
	0x7E, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x7E, // '0'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7E, // '1'
	0x00, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0x7E, // '2'
	0x00, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0x7E, // '3'
	0x7E, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7E, // '4'
	0x7E, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0x00, // '5'
	0x7E, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0x00, // '6'
	0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x7E, // '7'
	0x7E, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0x7E, // '8'
	0x7E, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0x7E, // '9'
	// Rows 8-15
	0x7E, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7E, // '0'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7E, // '1'
	0x7E, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00, // '2'
	0x00, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7E, // '3'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7E, // '4'
	0x00, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7E, // '5'
	0x7E, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7E, // '6'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7E, // '7'
	0x7E, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7E, // '8'
	0x00, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7E, // '9'
}
