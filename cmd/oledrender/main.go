package main

import (
	"io"
	"log"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"speedscreen/pkg/bitmap"
	"speedscreen/pkg/config"
	"speedscreen/pkg/device"
	"speedscreen/pkg/device/remote"
	"speedscreen/pkg/proto"
)

var configPath = flag.String("config", "speedscreen.yaml", "config file")
var target = flag.String("remote", "", "proxy addr, draw locally if empty")
var bus = flag.String("bus", "", "display bus: i2c, spi or mock")
var text = flag.String("text", "", "text to draw")
var x = flag.Int("x", 0, "text x")
var y = flag.Int("y", 0, "text y")
var scale = flag.Int("scale", 0, "text scale, 0 for the largest that fits")
var imagePath = flag.String("image", "", "image file to draw")
var threshold = flag.Uint8("threshold", bitmap.Threshold, "gray level at or above which an image pixel is lit")
var dump = flag.String("dump", "", "write the page bytes of --image to this file instead of drawing")
var sweep = flag.Bool("sweep", false, "sweep contrast 0..255")
var off = flag.Bool("off", false, "power the panel off")
var debug = flag.Bool("debug", false, "set debug")

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

	if *dump != "" {
		if *imagePath == "" {
			log.Fatal("--dump needs --image")
		}
		img, err := imaging.Open(*imagePath)
		if err != nil {
			log.Fatal(err)
		}
		bs, err := bitmap.Encode(img, cfg.Display.Width, cfg.Display.Height, *threshold)
		if err != nil {
			log.Fatal(err)
		}
		if err := afero.WriteFile(fs, *dump, bs, 0o644); err != nil {
			log.Fatal(err)
		}
		return
	}

	var logger *zap.Logger
	if *debug {
		logger, _ = zap.NewDevelopment()
	} else {
		logger = zap.NewNop()
	}

	dev, closer, err := open(cfg.Display, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = closer.Close()
	}()

	if *text != "" {
		if err := dev.DrawText(proto.Text{Value: *text, X: *x, Y: *y, Scale: *scale}); err != nil {
			log.Fatal(err)
		}
	}

	if *imagePath != "" {
		img, err := imaging.Open(*imagePath)
		if err != nil {
			log.Fatal(err)
		}
		img = bitmap.Mono(bitmap.Fit(img, cfg.Display.Width, cfg.Display.Height), *threshold)
		if err := dev.DrawBitmap(0, 0, img); err != nil {
			log.Fatal(err)
		}
	}

	if *sweep {
		bar := progressbar.Default(256, "contrast")
		for c := 0; c < 256; c++ {
			if err := dev.SetContrast(uint8(c)); err != nil {
				log.Fatal(err)
			}
			_ = bar.Add(1)
			time.Sleep(10 * time.Millisecond)
		}
		if err := dev.SetContrast(cfg.Display.Contrast); err != nil {
			log.Fatal(err)
		}
	}

	if *off {
		if err := dev.PowerOff(); err != nil {
			log.Fatal(err)
		}
	}
}

func open(cfg config.Display, logger *zap.Logger) (proto.Control, io.Closer, error) {
	if *target != "" {
		addr := *target
		if !strings.Contains(addr, ":") {
			addr += ":9123"
		}
		c, err := remote.New(addr)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil
	}

	panel, closer, err := device.Open(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := device.Setup(panel, cfg); err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return panel, closer, nil
}
