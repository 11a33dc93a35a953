package microoled

// FontLargeNumber is an 8x16 pixel heavy numeric font covering '-' through
// ':' (minus, period, slash, digits, colon). Glyphs are tiled on a 56 pixel
// wide sheet, 7 per sheet row, so decoding exercises the two-dimensional
// tile lookup. Each column spans two vertically packed bytes, LSB at the top
// of each 8-row band.
var FontLargeNumber = &Font{
	Width:      8,
	Height:     16,
	FirstChar:  0x2D,
	GlyphCount: 14,
	SheetWidth: 56,
	Data:       fontLargeNumberData,
}

var fontLargeNumberData = []byte{
	// Sheet row 0, rows 0-7: '-' '.' '/' '0' '1' '2' '3'
	0x00, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00, // '-'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // '.'
	0x00, 0x00, 0x00, 0x00, 0xC0, 0x30, 0x0C, 0x03, // '/'
	0xFE, 0xFF, 0x03, 0x03, 0x03, 0x03, 0xFF, 0xFE, // '0'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFE, 0xFE, // '1'
	0x00, 0x83, 0x83, 0x83, 0x83, 0x83, 0xFF, 0xFE, // '2'
	0x00, 0x83, 0x83, 0x83, 0x83, 0x83, 0xFF, 0xFE, // '3'
	// Sheet row 0, rows 8-15
	0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x00, // '-'
	0x00, 0xE0, 0xE0, 0xE0, 0x00, 0x00, 0x00, 0x00, // '.'
	0xC0, 0x30, 0x0C, 0x03, 0x00, 0x00, 0x00, 0x00, // '/'
	0x7F, 0xFF, 0xC0, 0xC0, 0xC0, 0xC0, 0xFF, 0x7F, // '0'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7F, 0x7F, // '1'
	0x7F, 0xFF, 0xC1, 0xC1, 0xC1, 0xC1, 0xC1, 0x00, // '2'
	0x00, 0xC1, 0xC1, 0xC1, 0xC1, 0xC1, 0xFF, 0x7F, // '3'
	// Sheet row 1, rows 0-7: '4' '5' '6' '7' '8' '9' ':'
	0xFE, 0xFE, 0x80, 0x80, 0x80, 0x80, 0xFE, 0xFE, // '4'
	0xFE, 0xFF, 0x83, 0x83, 0x83, 0x83, 0x83, 0x00, // '5'
	0xFE, 0xFF, 0x83, 0x83, 0x83, 0x83, 0x83, 0x00, // '6'
	0x00, 0x03, 0x03, 0x03, 0x03, 0x03, 0xFF, 0xFE, // '7'
	0xFE, 0xFF, 0x83, 0x83, 0x83, 0x83, 0xFF, 0xFE, // '8'
	0xFE, 0xFF, 0x83, 0x83, 0x83, 0x83, 0xFF, 0xFE, // '9'
	0x00, 0x00, 0x00, 0x30, 0x30, 0x00, 0x00, 0x00, // ':'
	// Sheet row 1, rows 8-15
	0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x7F, 0x7F, // '4'
	0x00, 0xC1, 0xC1, 0xC1, 0xC1, 0xC1, 0xFF, 0x7F, // '5'
	0x7F, 0xFF, 0xC1, 0xC1, 0xC1, 0xC1, 0xFF, 0x7F, // '6'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7F, 0x7F, // '7'
	0x7F, 0xFF, 0xC1, 0xC1, 0xC1, 0xC1, 0xFF, 0x7F, // '8'
	0x00, 0xC1, 0xC1, 0xC1, 0xC1, 0xC1, 0xFF, 0x7F, // '9'
	0x00, 0x00, 0x00, 0x0C, 0x0C, 0x00, 0x00, 0x00, // ':'
}
