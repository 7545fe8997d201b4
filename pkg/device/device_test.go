package device

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"speedscreen/pkg/config"
	"speedscreen/pkg/device/ssd1306"
	"speedscreen/pkg/device/virtual"
	"speedscreen/pkg/proto"
)

func mockDisplay() config.Display {
	cfg := config.Default().Display
	cfg.Bus = "mock"
	return cfg
}

func TestOpenMock(t *testing.T) {
	dev, closer, err := Open(mockDisplay(), zaptest.NewLogger(t))
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, "ssd1306.Dev{128x32}", dev.String())
	assert.Equal(t, uint64(1), dev.Stats().Frames)
	require.NoError(t, dev.DrawText(proto.Text{Value: "42"}))
	assert.Equal(t, uint64(2), dev.Stats().Frames)
}

func TestOpenErrors(t *testing.T) {
	cfg := mockDisplay()
	cfg.Bus = "usb"
	_, _, err := Open(cfg, zaptest.NewLogger(t))
	assert.Error(t, err)

	cfg = mockDisplay()
	cfg.Height = 48
	_, _, err = Open(cfg, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	bus := virtual.NewBus(nil)
	dev, err := ssd1306.New(bus, &ssd1306.Opts{W: 128, H: 32}, nil)
	require.NoError(t, err)

	cfg := mockDisplay()
	cfg.Contrast = 0x40
	cfg.Invert = true
	cfg.Flip = true

	bus.Reset()
	require.NoError(t, Setup(dev, cfg))
	assert.Equal(t, []byte{0x81, 0x40, 0xA7, 0xC0, 0xA0}, bus.Commands())

	cfg.Flip = false
	bus.Reset()
	require.NoError(t, Setup(dev, cfg))
	assert.Equal(t, []byte{0x81, 0x40, 0xA7}, bus.Commands())
}

// counting records overlapping calls.
type counting struct {
	busy     int32
	calls    int
	overlaps int
}

func (c *counting) enter() error {
	if !atomic.CompareAndSwapInt32(&c.busy, 0, 1) {
		c.overlaps++
		return nil
	}
	c.calls++
	time.Sleep(time.Microsecond)
	atomic.StoreInt32(&c.busy, 0)
	return nil
}

func (c *counting) PowerOn() error                         { return c.enter() }
func (c *counting) PowerOff() error                        { return c.enter() }
func (c *counting) SetContrast(uint8) error                { return c.enter() }
func (c *counting) SetInvert(bool) error                   { return c.enter() }
func (c *counting) SetRotate(bool) error                   { return c.enter() }
func (c *counting) DrawText(proto.Text) error              { return c.enter() }
func (c *counting) DrawBitmap(int, int, image.Image) error { return c.enter() }

func TestGuard(t *testing.T) {
	rec := &counting{}
	g := Guard(rec)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = g.DrawText(proto.Text{Value: fmt.Sprint(i)})
			_ = g.SetContrast(uint8(i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, rec.calls)
	assert.Zero(t, rec.overlaps)
}
