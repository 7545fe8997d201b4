package framebuf

import (
	"image"
	"image/color"
)

// Model converts any color to pure black or white at 50% luminance.
var Model = color.ModelFunc(toMono)

func toMono(c color.Color) color.Color {
	if luminance(c) >= 0x80 {
		return color.Gray{Y: 0xff}
	}
	return color.Gray{}
}

func luminance(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

// Bounds implements the image.Image (and draw.Image) interface.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (fb *FrameBuffer) ColorModel() color.Model {
	return Model
}

// At implements the image.Image (and draw.Image) interface.
func (fb *FrameBuffer) At(x, y int) color.Color {
	if fb.Pixel(x, y) != Off {
		return color.Gray{Y: 0xff}
	}
	return color.Gray{}
}

// Set implements the draw.Image interface. Transparent colors are skipped.
func (fb *FrameBuffer) Set(x, y int, c color.Color) {
	if _, _, _, a := c.RGBA(); a == 0 {
		return
	}
	if luminance(c) >= 0x80 {
		fb.SetPixel(x, y, On)
	} else {
		fb.SetPixel(x, y, Off)
	}
}
