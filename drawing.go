package microoled

import (
	"github.com/oledkit/microoled/image1bit"
)

// Mode selects how drawn pixels combine with the framebuffer.
type Mode uint8

const (
	// ModeNormal overwrites: color On sets the pixel, Off clears it.
	ModeNormal Mode = iota
	// ModeXOR toggles the pixel when the color is On. Drawing with Off in
	// XOR mode is a no-op; overlapping shapes rely on this asymmetry.
	ModeXOR
)

// SetColor sets the foreground color used by the argument-less drawing
// calls. Only On and Off exist.
func (d *Dev) SetColor(c image1bit.Bit) {
	d.color = c
}

// SetDrawMode sets the draw mode used by the argument-less drawing calls.
func (d *Dev) SetDrawMode(m Mode) {
	d.mode = m
}

// Pixel draws a pixel at (x, y) using the current color and draw mode.
func (d *Dev) Pixel(x, y int) {
	d.PixelOp(x, y, d.color, d.mode)
}

// PixelOp draws a pixel at (x, y) with an explicit color and draw mode.
// Coordinates outside the framebuffer are silently discarded.
func (d *Dev) PixelOp(x, y int, c image1bit.Bit, mode Mode) {
	if x < 0 || y < 0 || x >= d.rect.Dx() || y >= d.rect.Dy() {
		return
	}
	if mode == ModeXOR {
		if c == image1bit.On {
			d.fb.SetBit(x, y, !d.fb.BitAt(x, y))
		}
		return
	}
	d.fb.SetBit(x, y, c)
}

// Line draws a line from (x0, y0) to (x1, y1) using the current color and
// draw mode.
func (d *Dev) Line(x0, y0, x1, y1 int) {
	d.LineOp(x0, y0, x1, y1, d.color, d.mode)
}

// LineOp draws a line from (x0, y0) to (x1, y1) with an explicit color and
// draw mode using the integer Bresenham algorithm.
//
// The stepping loop stops one column short of the dominant-axis endpoint, so
// the (x1, y1) pixel itself may not be plotted. Rect depends on the exact
// pixel count this produces; do not "fix" the loop bound.
func (d *Dev) LineOp(x0, y0, x1, y1 int, c image1bit.Bit, mode Mode) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2

	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 < x1; x0++ {
		if steep {
			d.PixelOp(y0, x0, c, mode)
		} else {
			d.PixelOp(x0, y0, c, mode)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// LineH draws a horizontal line of the given width starting at (x, y) using
// the current color and draw mode.
func (d *Dev) LineH(x, y, width int) {
	d.LineHOp(x, y, width, d.color, d.mode)
}

// LineHOp draws a horizontal line of the given width starting at (x, y) with
// an explicit color and draw mode.
func (d *Dev) LineHOp(x, y, width int, c image1bit.Bit, mode Mode) {
	d.LineOp(x, y, x+width, y, c, mode)
}

// LineV draws a vertical line of the given height starting at (x, y) using
// the current color and draw mode.
func (d *Dev) LineV(x, y, height int) {
	d.LineVOp(x, y, height, d.color, d.mode)
}

// LineVOp draws a vertical line of the given height starting at (x, y) with
// an explicit color and draw mode.
func (d *Dev) LineVOp(x, y, height int, c image1bit.Bit, mode Mode) {
	d.LineOp(x, y, x, y+height, c, mode)
}

// Rect draws a rectangle outline using the current color and draw mode.
func (d *Dev) Rect(x, y, width, height int) {
	d.RectOp(x, y, width, height, d.color, d.mode)
}

// RectOp draws a rectangle outline with an explicit color and draw mode.
//
// The vertical edges are inset by one pixel on each end so the corners are
// plotted exactly once, which keeps XOR drawing correct. Rectangles shorter
// than 2 pixels degenerate to the two horizontal edges.
func (d *Dev) RectOp(x, y, width, height int, c image1bit.Bit, mode Mode) {
	d.LineHOp(x, y, width, c, mode)
	d.LineHOp(x, y+height-1, width, c, mode)

	innerHeight := height - 2
	if innerHeight < 1 {
		return
	}

	d.LineVOp(x, y+1, innerHeight, c, mode)
	d.LineVOp(x+width-1, y+1, innerHeight, c, mode)
}

// RectFill draws a filled rectangle using the current color and draw mode.
func (d *Dev) RectFill(x, y, width, height int) {
	d.RectFillOp(x, y, width, height, d.color, d.mode)
}

// RectFillOp draws a filled rectangle with an explicit color and draw mode,
// as width consecutive vertical lines. In XOR mode the shared columns of
// adjacent fills double-toggle; that is a known limitation.
func (d *Dev) RectFillOp(x, y, width, height int, c image1bit.Bit, mode Mode) {
	for i := x; i < x+width; i++ {
		d.LineVOp(i, y, height, c, mode)
	}
}

// Circle draws a circle outline of the given radius centered at (x0, y0)
// using the current color and draw mode.
func (d *Dev) Circle(x0, y0, radius int) {
	d.CircleOp(x0, y0, radius, d.color, d.mode)
}

// CircleOp draws a circle outline with an explicit color and draw mode using
// the integer midpoint algorithm. The four axis-aligned extrema are plotted
// first, then 8-way symmetric points per octant step.
func (d *Dev) CircleOp(x0, y0, radius int, c image1bit.Bit, mode Mode) {
	f := 1 - radius
	ddFx := 1
	ddFy := -2 * radius
	x := 0
	y := radius

	d.PixelOp(x0, y0+radius, c, mode)
	d.PixelOp(x0, y0-radius, c, mode)
	d.PixelOp(x0+radius, y0, c, mode)
	d.PixelOp(x0-radius, y0, c, mode)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		d.PixelOp(x0+x, y0+y, c, mode)
		d.PixelOp(x0-x, y0+y, c, mode)
		d.PixelOp(x0+x, y0-y, c, mode)
		d.PixelOp(x0-x, y0-y, c, mode)

		d.PixelOp(x0+y, y0+x, c, mode)
		d.PixelOp(x0-y, y0+x, c, mode)
		d.PixelOp(x0+y, y0-x, c, mode)
		d.PixelOp(x0-y, y0-x, c, mode)
	}
}

// CircleFill draws a filled circle using the current color and draw mode.
func (d *Dev) CircleFill(x0, y0, radius int) {
	d.CircleFillOp(x0, y0, radius, d.color, d.mode)
}

// CircleFillOp draws a filled circle with an explicit color and draw mode.
//
// XOR mode is not supported: the vertical span seams overlap and would
// double-toggle, so the call returns without drawing anything. In normal
// mode the overlap is harmless and left as is.
func (d *Dev) CircleFillOp(x0, y0, radius int, c image1bit.Bit, mode Mode) {
	if mode == ModeXOR {
		return
	}

	f := 1 - radius
	ddFx := 1
	ddFy := -2 * radius
	x := 0
	y := radius

	for i := y0 - radius; i <= y0+radius; i++ {
		d.PixelOp(x0, i, c, mode)
	}

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		for i := y0 - y; i <= y0+y; i++ {
			d.PixelOp(x0+x, i, c, mode)
			d.PixelOp(x0-x, i, c, mode)
		}
		for i := y0 - x; i <= y0+x; i++ {
			d.PixelOp(x0+y, i, c, mode)
			d.PixelOp(x0-y, i, c, mode)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
