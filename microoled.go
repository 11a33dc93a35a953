// Package microoled controls a SSD1306-based Micro OLED display via SPI.
//
// The SSD1306 is a 1-bit monochrome OLED controller with 128x64 bits of
// display RAM. The common Micro OLED breakout exposes a 64x48 pixel panel
// centered inside that RAM.
//
// See the examples for how to use this package.
package microoled

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/oledkit/microoled/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SSD1306 command set. See the datasheet, pages 28-32.
const (
	setContrast        = 0x81
	displayAllOnResume = 0xA4
	normalDisplay      = 0xA6
	invertDisplay      = 0xA7
	displayOff         = 0xAE
	displayOn          = 0xAF
	setDisplayOffset   = 0xD3
	setComPins         = 0xDA
	setVComDeselect    = 0xDB
	setDisplayClockDiv = 0xD5
	setPrecharge       = 0xD9
	setMultiplex       = 0xA8
	setStartLine       = 0x40
	memoryMode         = 0x20
	columnAddr         = 0x21
	pageAddr           = 0x22
	comScanInc         = 0xC0
	comScanDec         = 0xC8
	segRemap           = 0xA0
	chargePump         = 0x8D

	// Scrolling.
	activateScroll        = 0x2F
	deactivateScroll      = 0x2E
	rightHorizontalScroll = 0x26
	leftHorizontalScroll  = 0x27

	// Addressing modes for the memoryMode command.
	horizontalAddressing = 0x00
	pageAddressing       = 0x02
)

// Controller RAM extent. Panels smaller than this are centered inside it.
const (
	ramWidth  = 128
	ramHeight = 64
)

// Opts is the configuration for the Micro OLED display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 64, must be ≤128)
	H int // Height (default: 48, must be a multiple of 8 and ≤64)

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// Dev is the device handle for the Micro OLED display.
//
// All drawing operations mutate an in-memory framebuffer only; nothing
// reaches the panel until Display is called. Dev is not safe for concurrent
// use: it is designed for a single owner.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	rst gpio.PinIO  // Reset pin (optional)

	// Display geometry
	rect      image.Rectangle
	colOffset int // For centering inside the 128-column RAM

	// Framebuffer, one bit per pixel in SSD1306 page layout.
	fb *image1bit.VerticalLSB

	// Draw state consumed by the argument-less drawing calls.
	color   image1bit.Bit
	mode    Mode
	curX    int
	curY    int
	fontIdx int
	font    *Font

	// State
	halted bool
}

// NewSPI creates a new Micro OLED device connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured
// as an output.
//
// opts can be nil to use defaults (64x48 display).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &Opts{W: 64, H: 48}
	}

	if opts.W <= 0 || opts.W > ramWidth {
		return nil, errors.New("microoled: width must be between 1 and 128")
	}
	if opts.H <= 0 || opts.H%8 != 0 || opts.H > ramHeight {
		return nil, errors.New("microoled: height must be a multiple of 8 between 8 and 64")
	}

	// Establish SPI connection
	// The SSD1306 supports Mode0 (CPOL=0, CPHA=0) or Mode3 (CPOL=1, CPHA=1)
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	// Create device
	d := &Dev{
		c:         c,
		dc:        dc,
		rst:       opts.RST,
		rect:      image.Rect(0, 0, opts.W, opts.H),
		colOffset: (ramWidth - opts.W) / 2,
		fb:        image1bit.NewVerticalLSB(image.Rect(0, 0, opts.W, opts.H)),
		color:     image1bit.On,
		mode:      ModeNormal,
		font:      fonts[0],
	}

	// Initialize the display
	if err := d.init(opts); err != nil {
		return nil, err
	}

	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided). VDD rises first, then
	// RST is pulsed low to reset the controller.
	if d.rst != nil {
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("microoled: failed to pull RST high: %w", err)
		}
		time.Sleep(5 * time.Millisecond)

		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("microoled: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("microoled: failed to pull RST high: %w", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	// COM pin layout depends on the panel height.
	comPins := byte(0x12)
	if opts.H <= 32 {
		comPins = 0x02
	}

	cmds := []byte{
		displayOff,
		setDisplayClockDiv, 0x80, // Suggested clock ratio
		setMultiplex, byte(opts.H - 1), // MUX ratio (number of lines)
		setDisplayOffset, 0x00,
		setStartLine | 0x00,
		chargePump, 0x14, // Enable charge pump regulator
		normalDisplay,
		displayAllOnResume, // Resume display from RAM content
		segRemap | 0x01,
		comScanDec,
		setComPins, comPins,
		setContrast, 0x8F,
		setPrecharge, 0xF1,
		setVComDeselect, 0x40,
		displayOn,
	}

	if err := d.sendCommands(cmds); err != nil {
		return err
	}

	// Erase the controller RAM to avoid displaying random power-on data.
	return d.ClearRAM(0x00)
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// setWindow programs a column/page addressing window in horizontal
// addressing mode. The next data burst fills it left to right, page by page.
func (d *Dev) setWindow(colStart, colEnd, pageStart, pageEnd byte) error {
	return d.sendCommands([]byte{
		memoryMode, horizontalAddressing,
		columnAddr, colStart, colEnd,
		pageAddr, pageStart, pageEnd,
	})
}

// Display transfers the framebuffer to the display RAM.
//
// Everything drawn since the previous call becomes visible at once. The
// addressing mode is restored to page addressing afterward.
func (d *Dev) Display() error {
	if d.halted {
		return errors.New("microoled: halted")
	}

	err := d.setWindow(
		byte(d.colOffset), byte(d.colOffset+d.rect.Dx()-1),
		0, byte(d.rect.Dy()/8-1),
	)
	if err != nil {
		return err
	}
	if err := d.sendData(d.fb.Pix); err != nil {
		return err
	}
	return d.sendCommands([]byte{memoryMode, pageAddressing})
}

// ClearRAM overwrites every byte of the controller's 128x64 display RAM with
// pattern, including the region outside the visible panel. The in-memory
// framebuffer is not touched.
func (d *Dev) ClearRAM(pattern byte) error {
	if d.halted {
		return errors.New("microoled: halted")
	}

	if err := d.setWindow(0, ramWidth-1, 0, ramHeight/8-1); err != nil {
		return err
	}
	data := make([]byte, ramWidth*ramHeight/8)
	for i := range data {
		data[i] = pattern
	}
	if err := d.sendData(data); err != nil {
		return err
	}
	return d.sendCommands([]byte{memoryMode, pageAddressing})
}

// Clear zeroes the framebuffer. The panel is unchanged until Display.
func (d *Dev) Clear() {
	d.Fill(0x00)
}

// Fill overwrites every byte of the framebuffer with pattern. Each byte
// covers 8 vertical pixels, so 0xFF turns a full column band on.
func (d *Dev) Fill(pattern byte) {
	for i := range d.fb.Pix {
		d.fb.Pix[i] = pattern
	}
}

// Buffer returns the live framebuffer bytes for direct access. The layout is
// the SSD1306 page layout documented in package image1bit.
func (d *Dev) Buffer() []byte {
	return d.fb.Pix
}

// SetBuffer bulk-loads a prerendered bitmap into the framebuffer. The data
// must be exactly W*H/8 bytes in the SSD1306 page layout.
func (d *Dev) SetBuffer(pixels []byte) error {
	if len(pixels) != len(d.fb.Pix) {
		return errors.New("microoled: invalid buffer size")
	}
	copy(d.fb.Pix, pixels)
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw draws an image onto the framebuffer and transfers it to the display.
// The dst rectangle specifies the destination region on the display. The src
// image is positioned at src point sp within the destination.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("microoled: halted")
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	draw.Draw(d.fb, dst, src, sp, draw.Src)
	return d.Display()
}

// Write writes raw pixel data to the display in VerticalLSB format.
// The data must be exactly d.rect.Dx() * d.rect.Dy() / 8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("microoled: halted")
	}
	if err := d.SetBuffer(pixels); err != nil {
		return 0, err
	}
	if err := d.Display(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("microoled: halted")
	}
	return d.sendCommands([]byte{setContrast, contrast})
}

// Invert inverts the display colors (lit becomes dark and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("microoled: halted")
	}
	mode := byte(normalDisplay)
	if invert {
		mode = invertDisplay
	}
	return d.sendCommand(mode)
}

// FlipVertical mirrors the panel vertically by reversing the COM scan
// direction. Only content drawn after the flip is affected.
func (d *Dev) FlipVertical(flip bool) error {
	if d.halted {
		return errors.New("microoled: halted")
	}
	cmd := byte(comScanDec)
	if flip {
		cmd = comScanInc
	}
	return d.sendCommand(cmd)
}

// FlipHorizontal mirrors the panel horizontally by reversing the segment
// remap. Only content drawn after the flip is affected.
func (d *Dev) FlipHorizontal(flip bool) error {
	if d.halted {
		return errors.New("microoled: halted")
	}
	cmd := byte(segRemap | 0x01)
	if flip {
		cmd = segRemap | 0x00
	}
	return d.sendCommand(cmd)
}

// ScrollRight scrolls the pages start through stop to the right until
// ScrollStop is called. A stop page lower than the start page is silently
// rejected and nothing is programmed.
func (d *Dev) ScrollRight(start, stop byte) error {
	return d.scrollHorizontal(rightHorizontalScroll, start, stop)
}

// ScrollLeft scrolls the pages start through stop to the left until
// ScrollStop is called. A stop page lower than the start page is silently
// rejected and nothing is programmed.
func (d *Dev) ScrollLeft(start, stop byte) error {
	return d.scrollHorizontal(leftHorizontalScroll, start, stop)
}

func (d *Dev) scrollHorizontal(cmd, start, stop byte) error {
	if d.halted {
		return errors.New("microoled: halted")
	}
	if stop < start {
		return nil
	}
	// Scrolling must be off while the scroll area is reprogrammed or the
	// display RAM can be corrupted.
	if err := d.ScrollStop(); err != nil {
		return err
	}
	return d.sendCommands([]byte{
		cmd,
		0x00,  // Dummy byte (always 0x00)
		start, // Start page
		0x07,  // Frame interval
		stop,  // End page
		0x00, 0xFF, // Dummy bytes
		activateScroll,
	})
}

// ScrollStop stops any scrolling and resets the display to normal operation.
func (d *Dev) ScrollStop() error {
	if d.halted {
		return errors.New("microoled: halted")
	}
	return d.sendCommand(deactivateScroll)
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(displayOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("microoled.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = &Dev{}
