package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/samber/lo"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"speedscreen/pkg/device/ssd1306"
	"speedscreen/pkg/monitor"
	"speedscreen/pkg/proto"
	"speedscreen/pkg/radar"
)

// Command answers a chat command given its payload.
type Command func(payload string) string

func New(token string, dev proto.Control, params *monitor.Params, h *monitor.History, stats func() ssd1306.Stats, logger *zap.Logger) (*Bot, error) {
	pref := tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 30 * time.Second,
		},
		OnError: func(err error, _ tele.Context) {
			logger.With(zap.Error(err)).Warn("bot error")
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	return &Bot{
		b:      b,
		dev:    dev,
		params: params,
		h:      h,
		stats:  stats,
		logger: logger,
	}, nil
}

type Bot struct {
	b      *tele.Bot
	dev    proto.Control
	params *monitor.Params
	h      *monitor.History
	stats  func() ssd1306.Stats
	logger *zap.Logger
}

func (b *Bot) Commands() map[string]Command {
	return map[string]Command{
		"/on":       b.on,
		"/off":      b.off,
		"/pause":    b.pause,
		"/resume":   b.resume,
		"/contrast": b.contrast,
		"/invert":   b.toggle(b.dev.SetInvert),
		"/rotate":   b.toggle(b.dev.SetRotate),
		"/interval": b.interval,
		"/unit":     b.unit,
		"/speed":    b.speed,
		"/logs":     b.logs,
		"/stats":    b.statistics,
	}
}

func (b *Bot) on(string) string {
	if err := b.dev.PowerOn(); err != nil {
		return fmt.Sprintf("power on failed: %s", err)
	}

	b.params.Wakeup()
	return "OK"
}

func (b *Bot) off(string) string {
	if err := b.dev.PowerOff(); err != nil {
		return fmt.Sprintf("power off failed: %s", err)
	}

	b.params.Pause()
	return "OK"
}

func (b *Bot) pause(string) string {
	b.params.Pause()
	return "OK"
}

func (b *Bot) resume(string) string {
	b.params.Wakeup()
	return "OK"
}

func (b *Bot) contrast(in string) string {
	parsed, err := strconv.ParseUint(in, 10, 8)
	if err != nil {
		return fmt.Sprintf("bad contrast %q, want 0-255", in)
	}

	if err := b.dev.SetContrast(uint8(parsed)); err != nil {
		return fmt.Sprintf("change failed: %s", err)
	}
	return "OK"
}

func (b *Bot) toggle(set func(bool) error) Command {
	return func(in string) string {
		var on bool
		switch in {
		case "on":
			on = true
		case "off":
		default:
			return "usage: on|off"
		}

		if err := set(on); err != nil {
			return fmt.Sprintf("change failed: %s", err)
		}
		return "OK"
	}
}

func (b *Bot) interval(in string) string {
	if in == "" {
		return b.params.Interval().String()
	}

	duration, err := time.ParseDuration(in)
	if err != nil || duration <= 0 {
		return fmt.Sprintf("bad interval %q", in)
	}

	b.params.SetInterval(duration)
	return "OK"
}

func (b *Bot) unit(in string) string {
	if in == "" {
		return string(b.params.Unit())
	}

	u, err := radar.ParseUnit(in)
	if err != nil {
		return fmt.Sprintf("change failed: %s", err)
	}

	b.params.SetUnit(u)
	return "OK"
}

func (b *Bot) speed(string) string {
	r, ok := b.h.Curr()
	if !ok {
		return "No reading yet"
	}

	u := b.params.Unit()
	lines := []string{fmt.Sprintf("Speed: %s %s", u.Format(r.Velocity), u)}
	if peak, ok := b.h.Peak(); ok {
		lines = append(lines, fmt.Sprintf("Peak: %s %s", u.Format(peak.Velocity), u))
	}
	lines = append(lines, fmt.Sprintf("At: %s", r.At.Format(time.RFC3339)))

	return strings.Join(lines, "\n")
}

func (b *Bot) logs(string) string {
	logs := b.h.Logs()
	if len(logs) == 0 {
		return "No reading yet"
	}

	u := b.params.Unit()
	lines := make([]string, 0, len(logs))
	for _, r := range logs {
		lines = append(lines, fmt.Sprintf("%s %s %s", r.At.Format("15:04:05.000"), u.Format(r.Velocity), u))
	}

	return strings.Join(lines, "\n")
}

func (b *Bot) statistics(string) string {
	if b.stats == nil {
		return "No statistics"
	}

	s := b.stats()
	return fmt.Sprintf("Frames: %d\nSent: %s\nState: %s",
		s.Frames,
		bytesize.New(float64(s.Bytes)).String(),
		lo.Ternary(b.params.Paused(), "paused", "running"),
	)
}

func (b *Bot) Start() {
	for name, cmd := range b.Commands() {
		b.b.Handle(name, func(c tele.Context) error {
			return c.Reply(cmd(c.Message().Payload))
		})
	}
	go b.b.Start()
}

func (b *Bot) Stop() {
	// TODO: call Stop inline once telebot no longer blocks it until the next poll returns.
	go b.b.Stop()
}
