// Package microoled controls a SSD1306-based Micro OLED display via SPI.
//
// The SSD1306 is a 1-bit monochrome OLED controller with 128x64 bits of
// display RAM. The common Micro OLED breakout exposes a 64x48 pixel panel
// centered inside that RAM. The driver keeps an off-chip framebuffer, draws
// into it with shape and text primitives and transfers it to the panel in one
// burst. It also implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 1-bit monochrome (every pixel lit or dark)
// - 64x48 visible pixels centered in 128x64 bits of controller RAM
// - Hardware scrolling (horizontal, per 8-row page)
// - Adjustable contrast (0-255)
// - Display inversion and horizontal/vertical flip
//
// # Hardware Connection
//
// Connect the Micro OLED to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDI/MOSI    → SPI Data (MOSI)
//	D/C         → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RST         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/oledkit/microoled"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get Data/Command GPIO pin
//		dcPin := gpioreg.ByName("GPIO25")
//
//		// Create device
//		dev, _ := microoled.NewSPI(spiBus, dcPin, &microoled.Opts{
//			W: 64,
//			H: 48,
//		})
//		defer dev.Halt()
//
//		// Draw into the framebuffer, then transfer it
//		dev.Circle(32, 24, 20)
//		dev.SetCursor(0, 0)
//		dev.WriteString("hello")
//		dev.Display()
//	}
//
// # Drawing Model
//
// Every drawing operation mutates the in-memory framebuffer only. Nothing
// reaches the panel until Display is called, which streams the whole buffer
// over SPI. Coordinates outside the framebuffer are silently clipped.
//
// Each primitive exists in two forms: a convenience form using the current
// draw state (SetColor, SetDrawMode) and an Op form taking the color and
// mode explicitly:
//
//	dev.SetColor(image1bit.On)
//	dev.SetDrawMode(microoled.ModeXOR)
//	dev.Rect(4, 4, 20, 12)
//
//	dev.RectOp(4, 4, 20, 12, image1bit.On, microoled.ModeXOR)
//
// ModeNormal overwrites pixels; ModeXOR toggles the pixel for color On and
// does nothing for color Off, which makes a shape drawn twice erase itself.
//
// # Text
//
// Text is rendered from built-in bitmap fonts selected by registry index:
//
//	dev.SetFont(1) // FontLargeNumber
//	dev.SetCursor(0, 0)
//	dev.Printf("%d:%02d", hours, minutes)
//
// Glyphs are opaque; drawing text fully overwrites the pixels underneath,
// including the glyph background. The cursor advances by the glyph width
// plus one spacing column and wraps at the right edge.
//
// # Bulk Images
//
// The framebuffer is exposed directly for prerendered content:
//
//	dev.SetBuffer(bitmap) // exactly W*H/8 bytes
//	dev.Display()
//
// Standard Go images can be composited through the display.Drawer interface:
//
//	img := image1bit.NewVerticalLSB(dev.Bounds())
//	draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Src)
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://cdn.sparkfun.com/assets/learn_tutorials/3/0/8/SSD1306.pdf
package microoled
