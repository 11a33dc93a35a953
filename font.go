package microoled

import (
	"fmt"
)

// Font is an immutable bitmap font descriptor.
//
// Data holds the glyph sheet: glyphs tiled row-major, SheetWidth/Width
// glyphs per sheet row. Each glyph column is stored as Height/8 vertically
// packed bytes, least significant bit on top, with a byte stride of
// SheetWidth between the 8-row bands.
type Font struct {
	Width      byte // Glyph width in pixels
	Height     byte // Glyph height in pixels, a multiple of 8
	FirstChar  byte // Lowest character code with a glyph
	GlyphCount byte // Number of consecutive characters covered
	SheetWidth int  // Glyph sheet width in pixels
	Data       []byte
}

// The font registry. Fonts are selected by index via Dev.SetFont.
var fonts = []*Font{
	Font5x7,
	FontLargeNumber,
	Font7Seg,
}

// NumFonts returns the number of fonts in the registry.
func NumFonts() int {
	return len(fonts)
}

// SetFont selects the active font by registry index. An out-of-range index
// returns an error and leaves the active font unchanged.
func (d *Dev) SetFont(index int) error {
	if index < 0 || index >= len(fonts) {
		return fmt.Errorf("microoled: invalid font index %d", index)
	}
	d.fontIdx = index
	d.font = fonts[index]
	return nil
}

// Font returns the active font descriptor.
func (d *Dev) Font() *Font {
	return d.font
}

// FontIndex returns the registry index of the active font.
func (d *Dev) FontIndex() int {
	return d.fontIdx
}
