package uplink

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/rs/xid"
	"go.uber.org/zap"

	"speedscreen/pkg/radar"
)

// Sender posts a JSON payload, e.g. wifi.Manager.
type Sender interface {
	SendJSON(ctx context.Context, payload interface{}, url string) error
}

// Report is the JSON body of one upload.
type Report struct {
	ID       string    `json:"id"`
	Device   string    `json:"device,omitempty"`
	Velocity uint16    `json:"velocity"`
	Value    float64   `json:"value"`
	Unit     string    `json:"unit"`
	At       time.Time `json:"at"`
}

func NewPublisher(sender Sender, url, device string, unit func() radar.Unit, logger *zap.Logger) *Publisher {
	return &Publisher{
		sender: sender,
		url:    url,
		device: device,
		unit:   unit,
		log:    logger,
	}
}

// Publisher uploads the latest reading on a schedule. Readings that arrive
// between two runs replace each other.
type Publisher struct {
	sender Sender
	url    string
	device string
	unit   func() radar.Unit
	log    *zap.Logger

	l       sync.Mutex
	pending *radar.Reading
	cron    *cron.Cron
}

func (p *Publisher) Publish(r radar.Reading) {
	p.l.Lock()
	defer p.l.Unlock()
	p.pending = &r
}

// Flush sends the pending reading, if any. On failure it stays pending
// unless a newer one arrived meanwhile.
func (p *Publisher) Flush(ctx context.Context) error {
	p.l.Lock()
	r := p.pending
	p.pending = nil
	p.l.Unlock()

	if r == nil {
		return nil
	}

	u := p.unit()
	report := Report{
		ID:       xid.New().String(),
		Device:   p.device,
		Velocity: uint16(r.Velocity),
		Value:    u.Convert(r.Velocity),
		Unit:     string(u),
		At:       r.At,
	}

	if err := p.sender.SendJSON(ctx, report, p.url); err != nil {
		p.l.Lock()
		if p.pending == nil {
			p.pending = r
		}
		p.l.Unlock()
		return errors.Wrap(err, "uplink: send")
	}

	p.log.With(zap.String("id", report.ID), zap.Uint16("velocity", report.Velocity)).Debug("uploaded")
	return nil
}

// Start runs Flush on a cron schedule such as "@every 10s".
func (p *Publisher) Start(schedule string, timeout time.Duration) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := p.Flush(ctx); err != nil {
			p.log.With(zap.Error(err)).Info("upload failed")
		}
	}); err != nil {
		return errors.Wrapf(err, "uplink: schedule %q", schedule)
	}

	p.cron = c
	c.Start()
	return nil
}

// Stop waits for a running upload to finish.
func (p *Publisher) Stop() {
	if p.cron != nil {
		<-p.cron.Stop().Done()
	}
}
