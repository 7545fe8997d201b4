package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

func payload(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestI2CCommand(t *testing.T) {
	bus := &i2ctest.Record{}
	tr := NewI2C(bus, DefaultI2CAddr)

	require.NoError(t, tr.SendCommand(0xAE))
	require.NoError(t, tr.SendCommand(0x81))

	require.Len(t, bus.Ops, 2)
	assert.Equal(t, uint16(0x3C), bus.Ops[0].Addr)
	assert.Equal(t, []byte{0x80, 0xAE}, bus.Ops[0].W)
	assert.Equal(t, []byte{0x80, 0x81}, bus.Ops[1].W)
}

func TestI2CDataChunks(t *testing.T) {
	bus := &i2ctest.Record{}
	tr := NewI2C(bus, 0x3D)

	data := payload(128)
	require.NoError(t, tr.SendData(data))

	require.Len(t, bus.Ops, 8)
	for i, op := range bus.Ops {
		assert.Equal(t, uint16(0x3D), op.Addr)
		require.Len(t, op.W, 17)
		assert.Equal(t, byte(0x40), op.W[0])
		assert.Equal(t, data[i*16:(i+1)*16], op.W[1:])
	}
}

func TestI2CDataTail(t *testing.T) {
	bus := &i2ctest.Record{}
	tr := NewI2C(bus, DefaultI2CAddr, WithI2CChunk(30))

	require.NoError(t, tr.SendData(payload(70)))
	require.Len(t, bus.Ops, 3)
	assert.Len(t, bus.Ops[0].W, 31)
	assert.Len(t, bus.Ops[1].W, 31)
	assert.Equal(t, []byte{0x40, 60, 61, 62, 63, 64, 65, 66, 67, 68, 69}, bus.Ops[2].W)

	bus.Ops = nil
	require.NoError(t, tr.SendData(nil))
	assert.Empty(t, bus.Ops)
}

func TestI2CChunkOptionIgnoresZero(t *testing.T) {
	tr := NewI2C(&i2ctest.Record{}, DefaultI2CAddr, WithI2CChunk(0))
	assert.Equal(t, DefaultI2CChunk, tr.chunk)
}

type brokenBus struct {
	calls  int
	failAt int
}

func (b *brokenBus) String() string { return "broken" }

func (b *brokenBus) SetSpeed(physic.Frequency) error { return nil }

func (b *brokenBus) Tx(addr uint16, w, r []byte) error {
	b.calls++
	if b.calls == b.failAt {
		return assert.AnError
	}
	return nil
}

func TestI2CErrors(t *testing.T) {
	bus := &brokenBus{failAt: 1}
	err := NewI2C(bus, DefaultI2CAddr).SendCommand(0xAF)
	assert.ErrorIs(t, err, assert.AnError)

	bus = &brokenBus{failAt: 3}
	err = NewI2C(bus, DefaultI2CAddr).SendData(payload(128))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 3, bus.calls)
}
