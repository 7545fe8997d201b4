package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"speedscreen/pkg/monitor"
	"speedscreen/pkg/radar"
)

type I2C struct {
	// Bus is the periph bus name, empty for the first one.
	Bus   string `yaml:"bus"`
	Addr  uint16 `yaml:"addr"`
	Chunk int    `yaml:"chunk"`
}

type SPI struct {
	Port  string `yaml:"port"`
	Hz    int64  `yaml:"hz"`
	DC    string `yaml:"dc"`
	RES   string `yaml:"res"`
	CS    string `yaml:"cs"`
	Chunk int    `yaml:"chunk"`
}

type Display struct {
	// Bus is one of i2c, spi or mock.
	Bus         string `yaml:"bus"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	ExternalVCC bool   `yaml:"external_vcc"`
	Contrast    uint8  `yaml:"contrast"`
	Invert      bool   `yaml:"invert"`
	// Flip turns the picture 180 degrees from the power-up orientation.
	Flip bool `yaml:"flip"`
	I2C  I2C  `yaml:"i2c"`
	SPI  SPI  `yaml:"spi"`
}

type Radar struct {
	Serial      string        `yaml:"serial"`
	Baud        int           `yaml:"baud"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
	Unit        string        `yaml:"unit"`
}

type Monitor struct {
	Interval  time.Duration  `yaml:"interval"`
	ErrorWait time.Duration  `yaml:"error_wait"`
	Layout    monitor.Layout `yaml:"layout"`
	History   int            `yaml:"history"`
}

type Wifi struct {
	Enabled  bool   `yaml:"enabled"`
	Networks string `yaml:"networks"`
	// Station is host (networking left to the OS) or nmcli.
	Station    string `yaml:"station"`
	Iface      string `yaml:"iface"`
	MaxTries   int    `yaml:"max_tries"`
	RetryDelay int    `yaml:"retry_delay"`
}

type Uplink struct {
	// URL empty disables uploads.
	URL      string        `yaml:"url"`
	Schedule string        `yaml:"schedule"`
	Device   string        `yaml:"device"`
	Timeout  time.Duration `yaml:"timeout"`
}

type Telegram struct {
	Token string `yaml:"token"`
}

type Log struct {
	Debug bool `yaml:"debug"`
}

type Config struct {
	Display  Display  `yaml:"display"`
	Radar    Radar    `yaml:"radar"`
	Monitor  Monitor  `yaml:"monitor"`
	Wifi     Wifi     `yaml:"wifi"`
	Uplink   Uplink   `yaml:"uplink"`
	Telegram Telegram `yaml:"telegram"`
	Log      Log      `yaml:"log"`
}

func Default() *Config {
	c := &Config{
		Display: Display{Contrast: 0xFF},
		Monitor: Monitor{Layout: monitor.Layout{X: 10, Y: 10, Scale: 2}},
	}
	c.Normalize()
	return c
}

// Normalize fills zero values with defaults.
func (c *Config) Normalize() {
	d := &c.Display
	if d.Bus == "" {
		d.Bus = "i2c"
	}
	if d.Width == 0 {
		d.Width = 128
	}
	if d.Height == 0 {
		d.Height = 32
	}
	if d.I2C.Addr == 0 {
		d.I2C.Addr = 0x3C
	}
	if d.I2C.Chunk <= 0 {
		d.I2C.Chunk = 16
	}
	if d.SPI.Hz <= 0 {
		d.SPI.Hz = 8_000_000
	}
	if d.SPI.DC == "" {
		d.SPI.DC = "GPIO25"
	}
	if d.SPI.RES == "" {
		d.SPI.RES = "GPIO24"
	}
	if d.SPI.CS == "" {
		d.SPI.CS = "GPIO8"
	}
	if d.SPI.Chunk <= 0 {
		d.SPI.Chunk = 32
	}

	if c.Radar.Serial == "" {
		c.Radar.Serial = "ttyS0"
	}
	if c.Radar.Baud <= 0 {
		c.Radar.Baud = 115200
	}
	if c.Radar.ReadTimeout <= 0 {
		c.Radar.ReadTimeout = 10 * time.Millisecond
	}
	if c.Radar.Unit == "" {
		c.Radar.Unit = string(radar.CentimetersPerSecond)
	}

	if c.Monitor.Interval <= 0 {
		c.Monitor.Interval = 20 * time.Millisecond
	}
	if c.Monitor.ErrorWait <= 0 {
		c.Monitor.ErrorWait = time.Second
	}
	if c.Monitor.History <= 0 {
		c.Monitor.History = 20
	}

	if c.Wifi.Networks == "" {
		c.Wifi.Networks = "known_networks.json"
	}
	if c.Wifi.Station == "" {
		c.Wifi.Station = "host"
	}
	if c.Wifi.MaxTries <= 0 {
		c.Wifi.MaxTries = 3
	}
	if c.Wifi.RetryDelay <= 0 {
		c.Wifi.RetryDelay = 4
	}

	if c.Uplink.Schedule == "" {
		c.Uplink.Schedule = "@every 10s"
	}
	if c.Uplink.Timeout <= 0 {
		c.Uplink.Timeout = 5 * time.Second
	}
}

// Validate rejects settings Normalize cannot repair.
func (c *Config) Validate() error {
	switch c.Display.Bus {
	case "i2c", "spi", "mock":
	default:
		return errors.Errorf("config: unknown display bus %q", c.Display.Bus)
	}
	if c.Display.Height != 32 && c.Display.Height != 64 {
		return errors.Errorf("config: display height %d, want 32 or 64", c.Display.Height)
	}
	if c.Display.Width < 1 || c.Display.Width > 128 {
		return errors.Errorf("config: display width %d out of 1..128", c.Display.Width)
	}
	if _, err := radar.ParseUnit(c.Radar.Unit); err != nil {
		return err
	}
	switch c.Wifi.Station {
	case "host", "nmcli":
	default:
		return errors.Errorf("config: unknown wifi station %q", c.Wifi.Station)
	}
	return nil
}

// Load reads path. A missing file is created with the defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: path is empty")
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			return cfg, Save(fs, path, cfg)
		}
		return nil, errors.Wrap(err, "config: read")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	cfg.Normalize()

	return cfg, cfg.Validate()
}

// Save writes cfg through a temp file and rename, mode 0600.
func Save(fs afero.Fs, path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "config: mkdir")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := afero.TempFile(fs, dir, ".speedscreen-*.tmp")
	if err != nil {
		return errors.Wrap(err, "config: temp file")
	}
	name := tmp.Name()
	defer func() {
		_ = fs.Remove(name)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "config: write")
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := fs.Chmod(name, 0o600); err != nil {
		return err
	}

	return errors.Wrap(fs.Rename(name, path), "config: rename")
}
