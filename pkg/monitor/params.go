package monitor

import (
	"sync"
	"time"

	"speedscreen/pkg/proto"
	"speedscreen/pkg/radar"
)

// Layout places the reading on screen. Scale 0 fits the display.
type Layout struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	Scale int `yaml:"scale"`
}

func (l Layout) Text(value string) proto.Text {
	return proto.Text{Value: value, X: l.X, Y: l.Y, Scale: l.Scale}
}

func NewParams() *Params {
	return &Params{
		interval:  20 * time.Millisecond,
		errorWait: time.Second,
		unit:      radar.CentimetersPerSecond,
		layout:    Layout{X: 10, Y: 10, Scale: 2},
		wakeup:    make(chan struct{}, 1),
	}
}

// Params are the loop settings that can change while it runs.
type Params struct {
	l sync.RWMutex

	interval  time.Duration
	errorWait time.Duration
	unit      radar.Unit
	layout    Layout

	wakeup chan struct{}
	paused bool
}

func (p *Params) Interval() time.Duration {
	p.l.RLock()
	defer p.l.RUnlock()
	return p.interval
}

func (p *Params) SetInterval(d time.Duration) {
	p.l.Lock()
	p.interval = d
	p.l.Unlock()
	p.Wakeup()
}

func (p *Params) ErrorWait() time.Duration {
	p.l.RLock()
	defer p.l.RUnlock()
	return p.errorWait
}

func (p *Params) SetErrorWait(d time.Duration) {
	p.l.Lock()
	defer p.l.Unlock()
	p.errorWait = d
}

func (p *Params) Unit() radar.Unit {
	p.l.RLock()
	defer p.l.RUnlock()
	return p.unit
}

func (p *Params) SetUnit(u radar.Unit) {
	p.l.Lock()
	defer p.l.Unlock()
	p.unit = u
}

func (p *Params) Layout() Layout {
	p.l.RLock()
	defer p.l.RUnlock()
	return p.layout
}

func (p *Params) SetLayout(l Layout) {
	p.l.Lock()
	defer p.l.Unlock()
	p.layout = l
}

func (p *Params) Paused() bool {
	p.l.RLock()
	defer p.l.RUnlock()
	return p.paused
}

func (p *Params) WakeupChan() <-chan struct{} {
	return p.wakeup
}

func (p *Params) Pause() {
	p.l.Lock()
	defer p.l.Unlock()
	p.paused = true
}

// Wakeup resumes a paused loop and polls right away.
func (p *Params) Wakeup() {
	p.l.Lock()
	p.paused = false
	p.l.Unlock()

	select {
	case p.wakeup <- struct{}{}:
	default:
	}
}
