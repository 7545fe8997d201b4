package proto

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/i2c"
)

const (
	DefaultI2CAddr  = 0x3C
	DefaultI2CChunk = 16

	i2cCommand = 0x80
	i2cData    = 0x40
)

type I2COption func(t *I2C)

// WithI2CChunk sets the max data bytes per transaction.
func WithI2CChunk(n int) I2COption {
	return func(t *I2C) {
		if n > 0 {
			t.chunk = n
		}
	}
}

func NewI2C(bus i2c.Bus, addr uint16, opts ...I2COption) *I2C {
	t := &I2C{
		dev:   &i2c.Dev{Bus: bus, Addr: addr},
		chunk: DefaultI2CChunk,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.buf = make([]byte, t.chunk+1)
	return t
}

// I2C frames every command as [0x80, cmd] and every data chunk as
// [0x40, data...], each in its own write transaction.
type I2C struct {
	dev   *i2c.Dev
	chunk int
	cmd   [2]byte
	buf   []byte
}

func (t *I2C) String() string {
	return t.dev.String()
}

func (t *I2C) SendCommand(cmd byte) error {
	t.cmd[0], t.cmd[1] = i2cCommand, cmd
	return errors.Wrap(t.dev.Tx(t.cmd[:], nil), "proto: i2c command")
}

func (t *I2C) SendData(data []byte) error {
	t.buf[0] = i2cData
	for off := 0; off < len(data); off += t.chunk {
		n := copy(t.buf[1:], data[off:min(off+t.chunk, len(data))])
		if err := t.dev.Tx(t.buf[:n+1], nil); err != nil {
			return errors.Wrapf(err, "proto: i2c data at %d", off)
		}
	}
	return nil
}
