package monitor

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"speedscreen/pkg/proto"
	"speedscreen/pkg/radar"
)

// Source yields at most one reading per call.
type Source interface {
	Next() (radar.Reading, bool, error)
}

// Sink receives every accepted reading.
type Sink interface {
	Publish(r radar.Reading)
}

type Option func(m *Monitor)

func WithSink(s Sink) Option {
	return func(m *Monitor) {
		m.sinks = append(m.sinks, s)
	}
}

func New(src Source, dev proto.Control, params *Params, history *History, logger *zap.Logger, opts ...Option) *Monitor {
	m := &Monitor{
		src:     src,
		dev:     dev,
		params:  params,
		history: history,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Monitor polls the sensor and puts each reading on the display.
type Monitor struct {
	src     Source
	dev     proto.Control
	params  *Params
	history *History
	sinks   []Sink
	logger  *zap.Logger
}

// Step runs one poll. It reports whether a reading was accepted.
func (m *Monitor) Step() (bool, error) {
	reading, ok, err := m.src.Next()
	if err != nil {
		return false, errors.Wrap(err, "monitor: read sensor")
	}
	if !ok {
		return false, nil
	}

	m.history.Add(reading)
	for _, s := range m.sinks {
		s.Publish(reading)
	}

	unit := m.params.Unit()
	text := m.params.Layout().Text(unit.Format(reading.Velocity))

	m.logger.With(
		zap.Uint16("raw", uint16(reading.Velocity)),
		zap.String("value", text.Value),
		zap.String("unit", string(unit)),
	).Debug("reading")

	if err := m.dev.DrawText(text); err != nil {
		return true, errors.Wrap(err, "monitor: draw")
	}

	return true, nil
}

// Run polls until ctx is done. A paused loop sleeps until Params.Wakeup.
func (m *Monitor) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Nanosecond)
	defer timer.Stop()

	wakeup := m.params.WakeupChan()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-wakeup:
			resetTimer(timer, time.Millisecond)
		case <-timer.C:
			if m.params.Paused() {
				m.logger.Debug("paused, skip...")
				continue
			}
			if _, err := m.Step(); err != nil {
				m.logger.With(zap.Error(err)).Info("poll failed")
				timer.Reset(m.params.ErrorWait())
			} else {
				timer.Reset(m.params.Interval())
			}
		}
	}
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
