package wifi

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	ErrNoConnection   = errors.New("wifi: no connection")
	ErrBadCredentials = errors.New("wifi: bad ssid/pass or other connect error")
)

// Station is the wireless interface in client mode.
type Station interface {
	Connect(ctx context.Context, ssid, pass string) error
	Connected() bool
	// Status is negative after a hard association failure.
	Status() int
	Disconnect() error
	Configure(ip *IPConfig) error
}

type Option func(m *Manager)

// WithNetworks sets where ConnectKnown reads its list from.
func WithNetworks(fs afero.Fs, path string) Option {
	return func(m *Manager) {
		m.fs = fs
		m.path = path
	}
}

// WithRetry sets the association attempts and the polls per attempt.
func WithRetry(maxTries, retryDelay int) Option {
	return func(m *Manager) {
		if maxTries > 0 {
			m.maxTries = maxTries
		}
		if retryDelay > 0 {
			m.retryDelay = retryDelay
		}
	}
}

func WithPoll(d time.Duration) Option {
	return func(m *Manager) {
		m.poll = d
	}
}

func WithClient(c *resty.Client) Option {
	return func(m *Manager) {
		m.cli = c
	}
}

func NewManager(st Station, logger *zap.Logger, opts ...Option) *Manager {
	m := &Manager{
		st:         st,
		fs:         afero.NewOsFs(),
		path:       "known_networks.json",
		maxTries:   3,
		retryDelay: 4,
		poll:       time.Second,
		cli:        resty.New().SetTimeout(10 * time.Second),
		log:        logger,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Manager joins known networks and posts JSON while connected.
type Manager struct {
	st         Station
	fs         afero.Fs
	path       string
	maxTries   int
	retryDelay int
	poll       time.Duration
	cli        *resty.Client
	log        *zap.Logger
}

func (m *Manager) Connected() bool {
	return m.st.Connected()
}

// Connect tries n up to maxTries times, polling retryDelay times per try.
// A negative station status stops early with ErrBadCredentials.
func (m *Manager) Connect(ctx context.Context, n Network) error {
	log := m.log.With(zap.String("ssid", n.SSID))

	for try := 1; try <= m.maxTries; try++ {
		if err := m.st.Connect(ctx, n.SSID, n.Pass); err != nil {
			log.With(zap.Int("try", try), zap.Error(err)).Debug("connect failed")
		}

		for i := 0; i < m.retryDelay && !m.st.Connected() && m.st.Status() >= 0; i++ {
			log.Debug("connecting...")
			if err := m.sleep(ctx); err != nil {
				return err
			}
		}

		if m.st.Connected() {
			if n.IPConfig != nil && n.IPConfig.IP != "" {
				if err := m.st.Configure(n.IPConfig); err != nil {
					return errors.Wrap(err, "wifi: configure")
				}
			}
			log.With(zap.Int("try", try)).Info("connected")
			return nil
		}

		if m.st.Status() < 0 {
			log.Info("unable to connect")
			return ErrBadCredentials
		}

		if err := m.st.Disconnect(); err != nil {
			log.With(zap.Error(err)).Debug("disconnect failed")
		}
	}

	return errors.Wrapf(ErrNoConnection, "%s after %d tries", n.SSID, m.maxTries)
}

// ConnectKnown walks the known networks in order and stops at the first
// one that connects.
func (m *Manager) ConnectKnown(ctx context.Context) (Network, error) {
	networks, err := LoadNetworks(m.fs, m.path)
	if err != nil {
		return Network{}, err
	}

	for _, n := range networks {
		err := m.Connect(ctx, n)
		if err == nil {
			return n, nil
		}
		if ctx.Err() != nil {
			return Network{}, ctx.Err()
		}
	}

	return Network{}, errors.Wrap(ErrNoConnection, "no known network reachable")
}

// SendJSON posts payload as JSON to url.
func (m *Manager) SendJSON(ctx context.Context, payload interface{}, url string) error {
	if !m.st.Connected() {
		return errors.Wrap(ErrNoConnection, "unable to send")
	}

	resp, err := m.cli.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		return errors.Wrapf(err, "wifi: post %s", url)
	}

	if resp.IsError() {
		return errors.Errorf("wifi: post %s: %s", url, resp.Status())
	}

	m.log.With(zap.String("url", url), zap.Int("status", resp.StatusCode())).Debug("sent")
	return nil
}

func (m *Manager) sleep(ctx context.Context) error {
	if m.poll <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(m.poll)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
