package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"speedscreen/pkg/bot"
	"speedscreen/pkg/config"
	"speedscreen/pkg/device"
	"speedscreen/pkg/monitor"
	"speedscreen/pkg/proto"
	"speedscreen/pkg/radar"
	"speedscreen/pkg/uplink"
	"speedscreen/pkg/wifi"
)

var configPath = flag.String("config", "speedscreen.yaml", "config file, created with defaults if missing")
var debug = flag.Bool("debug", false, "set debug")
var bus = flag.String("bus", "", "display bus: i2c, spi or mock")
var serialName = flag.String("serial", "", "radar serial name")
var unit = flag.String("unit", "", "speed unit: cm/s, km/h or mph")
var tgToken = flag.String("tg-token", "", "telegram bot token")

func main() {
	flag.Parse()

	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, *configPath)
	if err != nil {
		log.Fatal(err)
	}

	if *bus != "" {
		cfg.Display.Bus = *bus
	}
	if *serialName != "" {
		cfg.Radar.Serial = *serialName
	}
	if *unit != "" {
		cfg.Radar.Unit = *unit
	}
	if *tgToken != "" {
		cfg.Telegram.Token = *tgToken
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var logger *zap.Logger
	if *debug || cfg.Log.Debug {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer func() {
		_ = logger.Sync()
	}()

	panel, closer, err := device.Open(cfg.Display, logger)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("open display failed")
	}
	defer func() {
		_ = closer.Close()
	}()

	dev := device.Guard(panel)
	if err := device.Setup(dev, cfg.Display); err != nil {
		logger.With(zap.Error(err)).Fatal("setup display failed")
	}

	sensor := proto.NewSerial(cfg.Radar.Serial)
	if err := sensor.Open(&proto.Options{
		BaudRate:    cfg.Radar.Baud,
		ReadTimeout: cfg.Radar.ReadTimeout,
	}); err != nil {
		logger.With(zap.Error(err)).Fatal("open radar failed")
	}
	defer func() {
		_ = sensor.Close()
	}()

	u, _ := radar.ParseUnit(cfg.Radar.Unit)

	params := monitor.NewParams()
	params.SetInterval(cfg.Monitor.Interval)
	params.SetErrorWait(cfg.Monitor.ErrorWait)
	params.SetUnit(u)
	params.SetLayout(cfg.Monitor.Layout)
	history := monitor.NewHistory(cfg.Monitor.History)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var station wifi.Station = wifi.HostStation{}
	if cfg.Wifi.Station == "nmcli" {
		station = wifi.NewNMCLI(cfg.Wifi.Iface)
	}
	network := wifi.NewManager(station, logger.Named("wifi"),
		wifi.WithNetworks(fs, cfg.Wifi.Networks),
		wifi.WithRetry(cfg.Wifi.MaxTries, cfg.Wifi.RetryDelay),
	)

	if cfg.Wifi.Enabled {
		if n, err := network.ConnectKnown(ctx); err != nil {
			logger.With(zap.Error(err)).Warn("no wifi, continuing offline")
		} else {
			logger.With(zap.String("ssid", n.SSID)).Info("wifi connected")
		}
	}

	var opts []monitor.Option
	var publisher *uplink.Publisher
	if cfg.Uplink.URL != "" {
		publisher = uplink.NewPublisher(network, cfg.Uplink.URL, cfg.Uplink.Device, params.Unit, logger.Named("uplink"))
		if err := publisher.Start(cfg.Uplink.Schedule, cfg.Uplink.Timeout); err != nil {
			logger.With(zap.Error(err)).Fatal("start uplink failed")
		}
		opts = append(opts, monitor.WithSink(publisher))
	}

	var b *bot.Bot
	if cfg.Telegram.Token != "" {
		b, err = bot.New(cfg.Telegram.Token, dev, params, history, panel.Stats, logger.Named("bot"))
		if err != nil {
			logger.With(zap.Error(err)).Fatal("start bot failed")
		}
		b.Start()
	}

	m := monitor.New(radar.NewReader(sensor), dev, params, history, logger.Named("monitor"), opts...)

	exited := make(chan struct{})
	go func() {
		defer func() {
			if b != nil {
				b.Stop()
			}
			if publisher != nil {
				publisher.Stop()
			}
			if err := dev.PowerOff(); err != nil {
				logger.With(zap.Error(err)).Info("power off failed")
			}
			exited <- struct{}{}
		}()

		if err := m.Run(ctx); err != nil {
			logger.With(zap.Error(err)).Info("monitor stopped")
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	<-signals
	logger.Info("shutting down")
	cancel()
	<-exited
	logger.Info("exited")
}
