package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"speedscreen/pkg/device/ssd1306"
	"speedscreen/pkg/device/virtual"
	"speedscreen/pkg/monitor"
	"speedscreen/pkg/radar"
)

func newTestBot() (*Bot, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return &Bot{
		dev:    virtual.Mock(zap.New(core)),
		params: monitor.NewParams(),
		h:      monitor.NewHistory(5),
		stats:  func() ssd1306.Stats { return ssd1306.Stats{Frames: 3, Bytes: 2048} },
		logger: zap.NewNop(),
	}, logs
}

func TestPower(t *testing.T) {
	b, logs := newTestBot()
	cmds := b.Commands()

	assert.Equal(t, "OK", cmds["/off"](""))
	assert.True(t, b.params.Paused())
	assert.Equal(t, "OK", cmds["/on"](""))
	assert.False(t, b.params.Paused())

	assert.Equal(t, "OK", cmds["/pause"](""))
	assert.True(t, b.params.Paused())
	assert.Equal(t, "OK", cmds["/resume"](""))
	assert.False(t, b.params.Paused())

	assert.Equal(t, 2, logs.Len())
}

func TestSettings(t *testing.T) {
	b, logs := newTestBot()
	cmds := b.Commands()

	assert.Equal(t, "OK", cmds["/contrast"]("128"))
	assert.Contains(t, cmds["/contrast"]("300"), "bad contrast")
	assert.Equal(t, "OK", cmds["/invert"]("on"))
	assert.Equal(t, "OK", cmds["/rotate"]("off"))
	assert.Equal(t, "usage: on|off", cmds["/rotate"]("sideways"))

	entries := logs.All()
	if assert.Len(t, entries, 3) {
		assert.Equal(t, uint8(128), entries[0].ContextMap()["contrast"])
		assert.Equal(t, true, entries[1].ContextMap()["invert"])
		assert.Equal(t, false, entries[2].ContextMap()["rotated"])
	}

	assert.Equal(t, "20ms", cmds["/interval"](""))
	assert.Equal(t, "OK", cmds["/interval"]("50ms"))
	assert.Equal(t, 50*time.Millisecond, b.params.Interval())
	assert.Contains(t, cmds["/interval"]("-1s"), "bad interval")

	assert.Equal(t, "cm/s", cmds["/unit"](""))
	assert.Equal(t, "OK", cmds["/unit"]("km/h"))
	assert.Equal(t, radar.KilometersPerHour, b.params.Unit())
	assert.Contains(t, cmds["/unit"]("knots"), "change failed")
}

func TestReadings(t *testing.T) {
	b, _ := newTestBot()
	cmds := b.Commands()

	assert.Equal(t, "No reading yet", cmds["/speed"](""))
	assert.Equal(t, "No reading yet", cmds["/logs"](""))

	at := time.Date(2022, 5, 1, 10, 0, 0, 0, time.UTC)
	b.h.Add(radar.Reading{Velocity: 300, At: at})
	b.h.Add(radar.Reading{Velocity: 120, At: at.Add(time.Second)})

	assert.Equal(t, "Speed: 120 cm/s\nPeak: 300 cm/s\nAt: 2022-05-01T10:00:01Z", cmds["/speed"](""))
	assert.Equal(t, "10:00:00.000 300 cm/s\n10:00:01.000 120 cm/s", cmds["/logs"](""))

	stats := cmds["/stats"]("")
	assert.Contains(t, stats, "Frames: 3")
	assert.Contains(t, stats, "State: running")
}
