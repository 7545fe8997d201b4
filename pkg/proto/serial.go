package proto

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

var ErrPortNotFound = errors.New("proto: serial port not found")

type Options struct {
	BaudRate    int
	ReadTimeout time.Duration
	DTR         bool
	RTS         bool
}

func NewSerial(name string) *Serial {
	return &Serial{name: name}
}

// Serial is a UART port picked by exact path or by a substring of it.
type Serial struct {
	name string
	port serial.Port
}

func (s *Serial) Ports() ([]string, error) {
	return serial.GetPortsList()
}

func (s *Serial) Open(opts *Options) error {
	ports, err := s.Ports()
	if err != nil {
		return errors.Wrap(err, "proto: list ports")
	}

	matched, err := matchPort(ports, s.name)
	if err != nil {
		return err
	}

	port, err := serial.Open(matched, &serial.Mode{
		BaudRate: opts.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return errors.Wrapf(err, "proto: open %s", matched)
	}

	if opts.ReadTimeout > 0 {
		if err := port.SetReadTimeout(opts.ReadTimeout); err != nil {
			_ = port.Close()
			return err
		}
	}

	if opts.DTR {
		if err := port.SetDTR(true); err != nil {
			_ = port.Close()
			return err
		}
	}

	if opts.RTS {
		if err := port.SetRTS(true); err != nil {
			_ = port.Close()
			return err
		}
	}

	s.port = port
	return nil
}

func matchPort(ports []string, name string) (string, error) {
	for _, p := range ports {
		if p == name {
			return p, nil
		}
	}
	for _, p := range ports {
		if strings.Contains(p, name) {
			return p, nil
		}
	}
	return "", errors.Wrap(ErrPortNotFound, name)
}

func (s *Serial) Close() error {
	return s.port.Close()
}

func (s *Serial) Read(p []byte) (n int, err error) {
	return s.port.Read(p)
}

func (s *Serial) Write(p []byte) (n int, err error) {
	return s.port.Write(p)
}
