// Package image1bit provides a 1-bit monochrome image format matching the SSD1306 memory layout.
//
// The SSD1306 stores pixels in vertical byte packing where each byte contains
// 8 vertically stacked pixels, least significant bit on top. The display RAM
// is divided into 8-pixel tall horizontal bands ("pages") of one byte per
// column. This package provides the Bit color type and the VerticalLSB image
// implementation.
package image1bit

import (
	"image"
	"image/color"
)

// Bit is a binary black and white color.
type Bit bool

// Possible bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the Bit to standard RGBA. On maps to white, Off to black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard luma conversion, thresholded at mid scale.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image where each byte packs 8 vertical pixels.
//
// The byte for pixel (x, y) is Pix[x+(y/8)*Stride] and the bit within it is
// y%8, least significant bit at the top. This is exactly the byte stream the
// SSD1306 expects in horizontal addressing mode.
type VerticalLSB struct {
	Pix    []byte          // Pixel data (8 vertical pixels per byte)
	Stride int             // Bytes per 8-pixel band; equals the width
	Rect   image.Rectangle // Image bounds; height is a multiple of 8
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height must be a multiple of 8 (one byte per column per band).
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}

	bands := h / 8
	return &VerticalLSB{
		Pix:    make([]byte, w*bands),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit value of the pixel at (x, y). Out of bounds pixels
// read as Off.
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return Bit(p.Pix[offset]&mask != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit value of the pixel at (x, y). Out of bounds writes are
// silently dropped.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Memory layout: each byte holds 8 vertical pixels of one band, LSB on top.
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	ly := y - p.Rect.Min.Y
	offset = (ly/8)*p.Stride + (x - p.Rect.Min.X)
	mask = 1 << uint(ly%8)
	return
}
