package proto

import (
	"image"
)

// Text is a request to replace the screen with a line of text.
type Text struct {
	Value string
	X     int
	Y     int
	// Scale 0 picks the largest scale that fits, drawn at the origin.
	Scale int
}

type Control interface {
	PowerOn() error
	PowerOff() error

	SetContrast(contrast uint8) error
	SetInvert(invert bool) error
	SetRotate(rotated bool) error

	DrawText(text Text) error
	DrawBitmap(x, y int, img image.Image) error
}
