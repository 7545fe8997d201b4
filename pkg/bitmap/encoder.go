package bitmap

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"speedscreen/pkg/framebuf"
)

// Threshold is the default gray level at or above which a pixel is lit.
const Threshold = 0x80

// Draw paints img with its top-left corner at (x, y), clipped to fb. Pixels
// are lit at 50% luminance; fully transparent ones leave fb untouched.
func Draw(fb *framebuf.FrameBuffer, x, y int, img image.Image) {
	b := img.Bounds()
	draw.Draw(fb, b.Sub(b.Min).Add(image.Pt(x, y)), img, b.Min, draw.Over)
}

// Mono reduces img to pure black and white at threshold, keeping alpha.
func Mono(img image.Image, threshold uint8) *image.NRGBA {
	return imaging.AdjustFunc(imaging.Grayscale(img), func(c color.NRGBA) color.NRGBA {
		v := uint8(0)
		if c.R >= threshold {
			v = 0xff
		}
		return color.NRGBA{R: v, G: v, B: v, A: c.A}
	})
}

// Fit scales img down to fit w x h keeping its aspect ratio.
func Fit(img image.Image, w, h int) image.Image {
	return imaging.Fit(img, w, h, imaging.Lanczos)
}

// Encode fits img into a fresh w x h buffer and returns its page bytes, ready
// to be sent to the panel as is.
func Encode(img image.Image, w, h int, threshold uint8) ([]byte, error) {
	fb, err := framebuf.New(w, h)
	if err != nil {
		return nil, err
	}
	Draw(fb, 0, 0, Mono(Fit(img, w, h), threshold))
	return fb.Bytes(), nil
}
