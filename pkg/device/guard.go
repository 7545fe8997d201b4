package device

import (
	"image"
	"sync"

	"speedscreen/pkg/proto"
)

// Guard serializes calls to ctrl so several goroutines can share one panel.
func Guard(ctrl proto.Control) proto.Control {
	return &guarded{c: ctrl}
}

type guarded struct {
	l sync.Mutex
	c proto.Control
}

func (g *guarded) PowerOn() error {
	g.l.Lock()
	defer g.l.Unlock()
	return g.c.PowerOn()
}

func (g *guarded) PowerOff() error {
	g.l.Lock()
	defer g.l.Unlock()
	return g.c.PowerOff()
}

func (g *guarded) SetContrast(contrast uint8) error {
	g.l.Lock()
	defer g.l.Unlock()
	return g.c.SetContrast(contrast)
}

func (g *guarded) SetInvert(invert bool) error {
	g.l.Lock()
	defer g.l.Unlock()
	return g.c.SetInvert(invert)
}

func (g *guarded) SetRotate(rotated bool) error {
	g.l.Lock()
	defer g.l.Unlock()
	return g.c.SetRotate(rotated)
}

func (g *guarded) DrawText(text proto.Text) error {
	g.l.Lock()
	defer g.l.Unlock()
	return g.c.DrawText(text)
}

func (g *guarded) DrawBitmap(x, y int, img image.Image) error {
	g.l.Lock()
	defer g.l.Unlock()
	return g.c.DrawBitmap(x, y, img)
}
