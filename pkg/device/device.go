package device

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"speedscreen/pkg/config"
	"speedscreen/pkg/device/ssd1306"
	"speedscreen/pkg/device/virtual"
	"speedscreen/pkg/proto"
)

// Open brings up the panel described by cfg. Closing the returned closer
// releases the bus.
func Open(cfg config.Display, logger *zap.Logger) (*ssd1306.Dev, io.Closer, error) {
	t, closer, err := openTransport(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	dev, err := ssd1306.New(t, &ssd1306.Opts{
		W:           cfg.Width,
		H:           cfg.Height,
		ExternalVCC: cfg.ExternalVCC,
	}, logger.Named("ssd1306"))
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	logger.With(zap.String("dev", dev.String()), zap.String("bus", cfg.Bus)).Info("display ready")
	return dev, closer, nil
}

// Setup applies the runtime settings from cfg to an initialized panel.
func Setup(dev proto.Control, cfg config.Display) error {
	if err := dev.SetContrast(cfg.Contrast); err != nil {
		return err
	}
	if err := dev.SetInvert(cfg.Invert); err != nil {
		return err
	}
	if cfg.Flip {
		return dev.SetRotate(false)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openTransport(cfg config.Display, logger *zap.Logger) (proto.Transport, io.Closer, error) {
	switch cfg.Bus {
	case "mock":
		return virtual.NewBus(logger.Named("bus")), nopCloser{}, nil

	case "i2c":
		if _, err := host.Init(); err != nil {
			return nil, nil, errors.Wrap(err, "device: host init")
		}
		bus, err := i2creg.Open(cfg.I2C.Bus)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "device: open i2c %q", cfg.I2C.Bus)
		}
		return proto.NewI2C(bus, cfg.I2C.Addr, proto.WithI2CChunk(cfg.I2C.Chunk)), bus, nil

	case "spi":
		if _, err := host.Init(); err != nil {
			return nil, nil, errors.Wrap(err, "device: host init")
		}

		var pins [3]gpio.PinIO
		for i, name := range []string{cfg.SPI.DC, cfg.SPI.RES, cfg.SPI.CS} {
			if pins[i] = gpioreg.ByName(name); pins[i] == nil {
				return nil, nil, errors.Errorf("device: unknown pin %q", name)
			}
		}

		port, err := spireg.Open(cfg.SPI.Port)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "device: open spi %q", cfg.SPI.Port)
		}

		c, err := port.Connect(physic.Frequency(cfg.SPI.Hz)*physic.Hertz, spi.Mode0, 8)
		if err != nil {
			_ = port.Close()
			return nil, nil, errors.Wrap(err, "device: spi connect")
		}

		t, err := proto.NewSPI(c, pins[0], pins[1], pins[2], proto.WithSPIChunk(cfg.SPI.Chunk))
		if err != nil {
			_ = port.Close()
			return nil, nil, err
		}
		return t, port, nil
	}

	return nil, nil, errors.Errorf("device: unknown bus %q", cfg.Bus)
}
