package main

import (
	"context"
	"net/http"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"speedscreen/pkg/config"
	"speedscreen/pkg/device"
	"speedscreen/pkg/device/remote"
	"speedscreen/pkg/device/virtual"
	"speedscreen/pkg/proto"
)

var configPath = flag.String("config", "speedscreen.yaml", "config file")
var listen = flag.String("listen", ":9123", "listen addr")
var dryRun = flag.Bool("dry-run", false, "log calls instead of driving a panel")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*config.Config, error) {
				return config.Load(afero.NewOsFs(), *configPath)
			},
			func() *http.Server {
				return &http.Server{Addr: *listen}
			},
			func() (*zap.Logger, error) {
				return zap.NewDevelopment()
			},
			display,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}

func display(cfg *config.Config, logger *zap.Logger, lifecycle fx.Lifecycle) (proto.Control, error) {
	if *dryRun {
		return virtual.Mock(logger.Named("mock")), nil
	}

	panel, closer, err := device.Open(cfg.Display, logger)
	if err != nil {
		return nil, err
	}

	dev := device.Guard(panel)
	if err := device.Setup(dev, cfg.Display); err != nil {
		_ = closer.Close()
		return nil, err
	}

	lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if err := dev.PowerOff(); err != nil {
				logger.With(zap.Error(err)).Info("power off failed")
			}
			return closer.Close()
		},
	})

	return dev, nil
}
