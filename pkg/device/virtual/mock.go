package virtual

import (
	"image"

	"go.uber.org/zap"

	"speedscreen/pkg/proto"
)

// Mock is a Control that only logs what it is asked to do.
func Mock(logger *zap.Logger) proto.Control {
	return &Mocker{logger}
}

type Mocker struct {
	l *zap.Logger
}

func (m *Mocker) PowerOn() error {
	m.l.Info("power-on")
	return nil
}

func (m *Mocker) PowerOff() error {
	m.l.Info("power-off")
	return nil
}

func (m *Mocker) SetContrast(contrast uint8) error {
	m.l.With(zap.Uint8("contrast", contrast)).Info("set-contrast")
	return nil
}

func (m *Mocker) SetInvert(invert bool) error {
	m.l.With(zap.Bool("invert", invert)).Info("set-invert")
	return nil
}

func (m *Mocker) SetRotate(rotated bool) error {
	m.l.With(zap.Bool("rotated", rotated)).Info("set-rotate")
	return nil
}

func (m *Mocker) DrawText(text proto.Text) error {
	m.l.With(
		zap.String("text", text.Value),
		zap.Int("x", text.X),
		zap.Int("y", text.Y),
		zap.Int("scale", text.Scale),
	).Info("draw-text")
	return nil
}

func (m *Mocker) DrawBitmap(x, y int, img image.Image) error {
	m.l.With(
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
	).Info("draw-bitmap")
	return nil
}
