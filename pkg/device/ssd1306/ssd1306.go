package ssd1306

import (
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"speedscreen/pkg/bitmap"
	"speedscreen/pkg/framebuf"
	"speedscreen/pkg/proto"
)

const (
	setContrast   = 0x81
	setEntireOn   = 0xA4
	setNormInv    = 0xA6
	setDisp       = 0xAE
	setMemAddr    = 0x20
	setColAddr    = 0x21
	setPageAddr   = 0x22
	setStartLine  = 0x40
	setSegRemap   = 0xA0
	setMuxRatio   = 0xA8
	setComOutDir  = 0xC0
	setDispOffset = 0xD3
	setComPinCfg  = 0xDA
	setDispClkDiv = 0xD5
	setPrecharge  = 0xD9
	setVcomDesel  = 0xDB
	setChargePump = 0x8D
)

var ErrSize = errors.New("ssd1306: unsupported size")

type Opts struct {
	W int
	H int
	// ExternalVCC is set when the panel is not powered by the internal
	// charge pump.
	ExternalVCC bool
}

// New initializes the panel and pushes a blank frame. On any transport
// failure no Dev is returned. opts can be nil for a 128x32 panel.
func New(t proto.Transport, opts *Opts, logger *zap.Logger) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 128, H: 32}
	}
	if opts.W < 1 || opts.W > 128 || (opts.H != 32 && opts.H != 64) {
		return nil, errors.Wrapf(ErrSize, "%dx%d", opts.W, opts.H)
	}

	fb, err := framebuf.New(opts.W, opts.H)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Dev{
		FrameBuffer: fb,
		t:           t,
		opts:        *opts,
		logger:      logger,
	}

	if err := d.init(); err != nil {
		return nil, err
	}

	return d, nil
}

// Dev is an SSD1306 panel with its frame buffer. Drawing happens in memory
// until Show.
type Dev struct {
	*framebuf.FrameBuffer

	t      proto.Transport
	opts   Opts
	logger *zap.Logger

	frames atomic.Uint64
	sent   atomic.Uint64
}

type Stats struct {
	Frames uint64
	Bytes  uint64
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.opts.W, d.opts.H)
}

func (d *Dev) Stats() Stats {
	return Stats{Frames: d.frames.Load(), Bytes: d.sent.Load()}
}

func (d *Dev) init() error {
	if err := d.sendCommands(
		setDisp|0x00,
		setMemAddr, 0x00,
		setStartLine|0x00,
		setSegRemap|0x01,
		setMuxRatio, byte(d.opts.H-1),
		setComOutDir|0x08,
		setDispOffset, 0x00,
		setComPinCfg, lo.Ternary[byte](d.opts.H == 32, 0x02, 0x12),
		setDispClkDiv, 0x80,
		setPrecharge, lo.Ternary[byte](d.opts.ExternalVCC, 0x22, 0xF1),
		setVcomDesel, 0x30,
		setContrast, 0xFF,
		setEntireOn,
		setNormInv,
		setChargePump, lo.Ternary[byte](d.opts.ExternalVCC, 0x10, 0x14),
		setDisp|0x01,
	); err != nil {
		return errors.Wrap(err, "ssd1306: init")
	}

	d.Fill(framebuf.Off)
	return d.Show()
}

// Show flushes the buffer page by page, resetting the address window before
// each page.
func (d *Dev) Show() error {
	start := time.Now()
	pages := d.Pages()

	for p := 0; p < pages; p++ {
		if err := d.sendCommands(
			setPageAddr, byte(p), byte(pages-1),
			setColAddr, 0, byte(d.Width()-1),
		); err != nil {
			return errors.Wrapf(err, "ssd1306: address page %d", p)
		}

		if err := d.t.SendData(d.Page(p)); err != nil {
			return errors.Wrapf(err, "ssd1306: write page %d", p)
		}
	}

	n := len(d.Bytes())
	d.frames.Add(1)
	d.sent.Add(uint64(n))

	d.logger.With(
		zap.Int("sent", n),
		zap.String("cost", time.Since(start).String()),
	).Debug("flush")

	return nil
}

func (d *Dev) PowerOff() error {
	return d.sendCommands(setDisp | 0x00)
}

func (d *Dev) PowerOn() error {
	return d.sendCommands(setDisp | 0x01)
}

func (d *Dev) SetContrast(contrast uint8) error {
	return d.sendCommands(setContrast, contrast)
}

func (d *Dev) SetInvert(invert bool) error {
	return d.sendCommands(setNormInv | lo.Ternary[byte](invert, 0x01, 0x00))
}

// SetRotate flips both scan directions together. The init sequence leaves
// the panel in the rotated=true orientation.
func (d *Dev) SetRotate(rotated bool) error {
	return d.sendCommands(
		setComOutDir|lo.Ternary[byte](rotated, 0x08, 0x00),
		setSegRemap|lo.Ternary[byte](rotated, 0x01, 0x00),
	)
}

// DrawText clears the screen, draws text and shows it.
func (d *Dev) DrawText(text proto.Text) error {
	d.Fill(framebuf.Off)
	if text.Scale > 0 {
		d.DrawScaledText(text.Value, text.X, text.Y, text.Scale, framebuf.On)
	} else {
		d.DrawTextMax(text.Value)
	}
	return d.Show()
}

// DrawBitmap clears the screen, draws img at (x, y) and shows it.
func (d *Dev) DrawBitmap(x, y int, img image.Image) error {
	d.Fill(framebuf.Off)
	bitmap.Draw(d.FrameBuffer, x, y, img)
	return d.Show()
}

func (d *Dev) sendCommands(cmds ...byte) error {
	for _, c := range cmds {
		if err := d.t.SendCommand(c); err != nil {
			return err
		}
	}
	return nil
}
