// Package image1bit provides a 1-bit monochrome image format for SSD1306-family display controllers.
//
// The SSD1306 OLED controller stores one bit per pixel. Display RAM is
// organized in horizontal "pages" of 8 pixel rows, one byte per column, least
// significant bit at the top of the page.
//
// Memory layout example for an 8x16 image:
//
//	Byte 0..7:  columns 0..7 of rows 0..7  (page 0)
//	Byte 8..15: columns 0..7 of rows 8..15 (page 1)
//	Bit n of a byte is row page*8+n of that column.
//
// This package provides:
//
// - Bit: a binary color type (On/Off)
// - BitModel: a color model converting standard Go colors to Bit
// - VerticalLSB: an image.Image implementation matching the SSD1306 layout
//
// Example usage:
//
//	// Create a 64x48 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 64, 48))
//
//	// Turn on a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Read a pixel
//	b := img.BitAt(10, 20)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
