package image1bit

import (
	"image"
	"image/color"
	"testing"
)

func TestBitRGBA(t *testing.T) {
	tests := []struct {
		name string
		bit  Bit
		want uint32
	}{
		{"off is black", Off, 0x0000},
		{"on is white", On, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.bit.RGBA()
			if r != tt.want || g != tt.want || b != tt.want || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, %x)",
					r, g, b, a, tt.want, tt.want, tt.want, uint32(0xFFFF))
			}
		})
	}
}

func TestBitString(t *testing.T) {
	if On.String() != "On" || Off.String() != "Off" {
		t.Errorf("String() = %q/%q, want On/Off", On, Off)
	}
}

func TestBitModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Bit
	}{
		{"bit passthrough on", On, On},
		{"bit passthrough off", Off, Off},
		{"black", color.Black, Off},
		{"white", color.White, On},
		{"dark gray", color.RGBA{0x40, 0x40, 0x40, 0xFF}, Off},
		{"light gray", color.RGBA{0xC0, 0xC0, 0xC0, 0xFF}, On},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BitModel.Convert(tt.input).(Bit)
			if result != tt.want {
				t.Errorf("BitModel.Convert(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestNewVerticalLSB(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantPanic  bool
		wantStride int
		wantPixLen int
	}{
		{"64x48", image.Rect(0, 0, 64, 48), false, 64, 384},
		{"128x64", image.Rect(0, 0, 128, 64), false, 128, 1024},
		{"8x8", image.Rect(0, 0, 8, 8), false, 8, 8},
		{"offset rect", image.Rect(10, 16, 14, 24), false, 4, 4},
		{"unaligned height panics", image.Rect(0, 0, 8, 5), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()

			img := NewVerticalLSB(tt.rect)
			if !tt.wantPanic {
				if img.Rect != tt.rect {
					t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
				}
				if img.Stride != tt.wantStride {
					t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
				}
				if len(img.Pix) != tt.wantPixLen {
					t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
				}
			}
		})
	}
}

func TestVerticalLSBBitPacking(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 4, 16))

	// Rows 0..7 of column 0 land in byte 0, LSB on top.
	img.SetBit(0, 0, On)
	img.SetBit(0, 7, On)
	if img.Pix[0] != 0x81 {
		t.Errorf("Pix[0] = 0x%02X, want 0x81", img.Pix[0])
	}

	// Row 8 starts the second page: byte index = stride + x.
	img.SetBit(1, 8, On)
	if img.Pix[4+1] != 0x01 {
		t.Errorf("Pix[5] = 0x%02X, want 0x01", img.Pix[5])
	}

	// Row 13 is bit 5 of the second page.
	img.SetBit(3, 13, On)
	if img.Pix[4+3] != 0x20 {
		t.Errorf("Pix[7] = 0x%02X, want 0x20", img.Pix[7])
	}
}

func TestVerticalLSBSetGet(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 16))

	// Checkered pattern across the page seam.
	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			img.SetBit(x, y, Bit((x+y)%2 == 0))
		}
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			want := Bit((x+y)%2 == 0)
			if got := img.BitAt(x, y); got != want {
				t.Errorf("BitAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestVerticalLSBClearBit(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 4, 8))
	img.Pix[2] = 0xFF

	img.SetBit(2, 3, Off)
	if img.Pix[2] != 0xF7 {
		t.Errorf("Pix[2] = 0x%02X, want 0xF7", img.Pix[2])
	}
	if img.BitAt(2, 3) != Off {
		t.Error("BitAt(2, 3) = On, want Off")
	}
}

func TestVerticalLSBAt(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 2, 8))
	img.SetBit(0, 0, On)

	c := img.At(0, 0)
	b, ok := c.(Bit)
	if !ok {
		t.Errorf("At(0, 0) returned %T, want Bit", c)
	}
	if b != On {
		t.Error("At(0, 0) = Off, want On")
	}
}

func TestVerticalLSBSet(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 2, 8))

	img.Set(0, 0, color.White)
	if img.BitAt(0, 0) != On {
		t.Error("After Set(0, 0, color.White), BitAt(0, 0) = Off, want On")
	}

	img.Set(0, 0, color.Black)
	if img.BitAt(0, 0) != Off {
		t.Error("After Set(0, 0, color.Black), BitAt(0, 0) = On, want Off")
	}
}

func TestVerticalLSBColorModel(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 4, 8))
	if img.ColorModel() != BitModel {
		t.Error("ColorModel() did not return BitModel")
	}
}

func TestVerticalLSBBounds(t *testing.T) {
	rect := image.Rect(10, 16, 14, 24)
	img := NewVerticalLSB(rect)
	if img.Bounds() != rect {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), rect)
	}
}

func TestVerticalLSBOutOfBounds(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 4, 8))

	// Out of bounds reads return Off.
	for _, pt := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 8}} {
		if img.BitAt(pt.X, pt.Y) != Off {
			t.Errorf("BitAt(%d, %d) = On, want Off (out of bounds)", pt.X, pt.Y)
		}
	}

	// Out of bounds writes do nothing.
	img.SetBit(-1, 0, On)
	img.SetBit(0, -1, On)
	img.SetBit(4, 0, On)
	img.SetBit(0, 8, On)
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatalf("out-of-bounds SetBit modified the pixel data: % X", img.Pix)
		}
	}
}

func TestVerticalLSBOffsetRect(t *testing.T) {
	rect := image.Rect(100, 48, 104, 56)
	img := NewVerticalLSB(rect)

	img.SetBit(100, 48, On)
	if img.BitAt(100, 48) != On {
		t.Error("SetBit(100, 48, On) then BitAt(100, 48) = Off, want On")
	}
	if img.Pix[0] != 0x01 {
		t.Errorf("Pix[0] = 0x%02X, want 0x01", img.Pix[0])
	}
}

func TestVerticalLSBPixOffset(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 24))

	tests := []struct {
		x, y   int
		offset int
		mask   byte
	}{
		{0, 0, 0, 0x01},
		{7, 0, 7, 0x01},
		{0, 7, 0, 0x80},
		{3, 5, 3, 0x20},
		{0, 8, 8, 0x01},
		{5, 12, 13, 0x10},
		{2, 23, 18, 0x80},
	}

	for _, tt := range tests {
		offset, mask := img.pixOffset(tt.x, tt.y)
		if offset != tt.offset || mask != tt.mask {
			t.Errorf("pixOffset(%d, %d) = (%d, 0x%02X), want (%d, 0x%02X)",
				tt.x, tt.y, offset, mask, tt.offset, tt.mask)
		}
	}
}
