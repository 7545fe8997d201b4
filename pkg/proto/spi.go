package proto

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

const DefaultSPIChunk = 32

type SPIOption func(t *SPI)

// WithSPIChunk sets the max data bytes per write.
func WithSPIChunk(n int) SPIOption {
	return func(t *SPI) {
		if n > 0 {
			t.chunk = n
		}
	}
}

// NewSPI drives the control lines to their idle state and pulses reset.
func NewSPI(c conn.Conn, dc, res, cs Line, opts ...SPIOption) (*SPI, error) {
	t := &SPI{
		c:     c,
		dc:    dc,
		res:   res,
		cs:    cs,
		chunk: DefaultSPIChunk,
	}

	for _, opt := range opts {
		opt(t)
	}

	if err := drive(
		step{dc, gpio.Low},
		step{res, gpio.Low},
		step{cs, gpio.High},
		step{res, gpio.High},
		step{res, gpio.Low},
		step{res, gpio.High},
	); err != nil {
		return nil, errors.Wrap(err, "proto: spi reset")
	}

	return t, nil
}

// SPI is a 4-wire link: dc low selects commands, dc high selects data and
// cs low brackets each transaction.
type SPI struct {
	c     conn.Conn
	dc    Line
	res   Line
	cs    Line
	chunk int
	cmd   [1]byte
}

func (t *SPI) String() string {
	return t.c.String()
}

func (t *SPI) SendCommand(cmd byte) error {
	if err := t.begin(gpio.Low); err != nil {
		return err
	}

	t.cmd[0] = cmd
	if err := t.c.Tx(t.cmd[:], nil); err != nil {
		_ = t.end()
		return errors.Wrap(err, "proto: spi command")
	}

	return t.end()
}

func (t *SPI) SendData(data []byte) error {
	if err := t.begin(gpio.High); err != nil {
		return err
	}

	for off := 0; off < len(data); off += t.chunk {
		if err := t.c.Tx(data[off:min(off+t.chunk, len(data))], nil); err != nil {
			_ = t.end()
			return errors.Wrapf(err, "proto: spi data at %d", off)
		}
	}

	return t.end()
}

func (t *SPI) begin(mode gpio.Level) error {
	return errors.Wrap(drive(
		step{t.cs, gpio.High},
		step{t.dc, mode},
		step{t.cs, gpio.Low},
	), "proto: spi select")
}

func (t *SPI) end() error {
	return errors.Wrap(t.cs.Out(gpio.High), "proto: spi deselect")
}

type step struct {
	line  Line
	level gpio.Level
}

func drive(steps ...step) error {
	for _, s := range steps {
		if err := s.line.Out(s.level); err != nil {
			return err
		}
	}
	return nil
}
