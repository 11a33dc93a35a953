package microoled

import (
	"fmt"

	"github.com/oledkit/microoled/image1bit"
)

// SetCursor moves the text cursor to pixel position (x, y).
func (d *Dev) SetCursor(x, y int) {
	d.curX = x
	d.curY = y
}

// Cursor returns the current text cursor position.
func (d *Dev) Cursor() (x, y int) {
	return d.curX, d.curY
}

// WriteChar emits one character at the cursor using the current color and
// draw mode, then advances the cursor by the glyph width plus one spacing
// column. The cursor wraps to the start of the next line when the next glyph
// would not fit; '\n' moves to the next line and '\r' is ignored.
func (d *Dev) WriteChar(ch byte) {
	switch ch {
	case '\n':
		d.curY += int(d.font.Height)
		d.curX = 0
	case '\r':
		// skip
	default:
		d.DrawCharOp(d.curX, d.curY, ch, d.color, d.mode)
		d.curX += int(d.font.Width) + 1
		if d.curX > d.rect.Dx()-int(d.font.Width) {
			d.curY += int(d.font.Height)
			d.curX = 0
		}
	}
}

// WriteString emits every byte of s through WriteChar.
func (d *Dev) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		d.WriteChar(s[i])
	}
}

// Printf formats per fmt.Sprintf and emits the result at the cursor.
func (d *Dev) Printf(format string, args ...interface{}) {
	d.WriteString(fmt.Sprintf(format, args...))
}

// DrawChar draws character ch at (x, y) using the current color and draw
// mode. The cursor is not moved.
func (d *Dev) DrawChar(x, y int, ch byte) {
	d.DrawCharOp(x, y, ch, d.color, d.mode)
}

// DrawCharOp draws character ch at (x, y) with an explicit color and draw
// mode. Characters without a glyph in the active font draw nothing.
//
// Glyphs are opaque: a 1 bit in the glyph plots the requested color and a 0
// bit plots its inverse, so text fully overwrites whatever was underneath.
func (d *Dev) DrawCharOp(x, y int, ch byte, c image1bit.Bit, mode Mode) {
	f := d.font
	if int(ch) < int(f.FirstChar) || int(ch) >= int(f.FirstChar)+int(f.GlyphCount) {
		return
	}
	glyph := int(ch - f.FirstChar)

	width := int(f.Width)
	bands := int(f.Height) / 8
	if bands <= 1 {
		// Single-band glyph: one byte per column, plus a synthesized blank
		// spacing column after the glyph.
		for i := 0; i <= width; i++ {
			var b byte
			if i < width {
				b = f.Data[glyph*width+i]
			}
			for j := 0; j < 8; j++ {
				if b&0x01 != 0 {
					d.PixelOp(x+i, y+j, c, mode)
				} else {
					d.PixelOp(x+i, y+j, !c, mode)
				}
				b >>= 1
			}
		}
		return
	}

	// Taller glyphs are tiled row-major on the sheet; locate the tile, then
	// walk its 8-row bands with a byte stride of one sheet row.
	glyphsPerRow := f.SheetWidth / width
	tileCol := glyph % glyphsPerRow
	tileRow := glyph / glyphsPerRow
	start := tileRow*f.SheetWidth*bands + tileCol*width

	for band := 0; band < bands; band++ {
		for i := 0; i < width; i++ {
			b := f.Data[start+i+band*f.SheetWidth]
			for j := 0; j < 8; j++ {
				if b&0x01 != 0 {
					d.PixelOp(x+i, y+j+band*8, c, mode)
				} else {
					d.PixelOp(x+i, y+j+band*8, !c, mode)
				}
				b >>= 1
			}
		}
	}
}
