package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"

	"github.com/voltlab/zmpt101b"
)

type config struct {
	Bus     string `yaml:"bus"`
	Addr    uint16 `yaml:"addr"`
	Channel int    `yaml:"channel"`
	LEDPin  string `yaml:"led_pin"`

	WindowSize int `yaml:"window_size"`
	BatchSize  int `yaml:"batch_size"`

	ReadIntervalMs  int `yaml:"read_interval_ms"`
	RetryIntervalMs int `yaml:"retry_interval_ms"`

	Debug bool `yaml:"debug"`
}

func defaultConfig() config {
	return config{
		Bus:             "",
		Addr:            0x48,
		Channel:         0,
		LEDPin:          "GPIO2",
		WindowSize:      10,
		BatchSize:       128,
		ReadIntervalMs:  5000,
		RetryIntervalMs: 10000,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config: %w", err)
	}

	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	opts := []zmpt101b.Option{
		zmpt101b.OnBus(cfg.Bus),
		zmpt101b.OnAddr(cfg.Addr),
		zmpt101b.OnChannel(cfg.Channel),
		zmpt101b.WindowSize(cfg.WindowSize),
		zmpt101b.BatchSize(cfg.BatchSize),
	}
	if cfg.Debug {
		opts = append(opts, zmpt101b.DebugTo(os.Stderr))
	}

	var sensor *zmpt101b.Device
	for {
		sensor, err = zmpt101b.New(opts...)
		if err == nil {
			break
		}
		log.Printf("could not initialize sensor: %v (retry in %dms)", err, cfg.RetryIntervalMs)
		time.Sleep(time.Duration(cfg.RetryIntervalMs) * time.Millisecond)
	}
	defer sensor.Close()

	var led gpio.PinIO
	if cfg.LEDPin != "" {
		led = gpioreg.ByName(cfg.LEDPin)
		if led == nil {
			log.Printf("LED pin %q not found, running without blink", cfg.LEDPin)
		}
	}

	t := time.NewTicker(time.Duration(cfg.ReadIntervalMs) * time.Millisecond)

	for {
		setLED(led, gpio.High)
		v, err := sensor.Voltage()
		if err != nil {
			log.Printf("could not read voltage: %v", err)
		} else {
			fmt.Printf("ZMPT101B RMS voltage = %dmV\n", v)
		}
		setLED(led, gpio.Low)

		<-t.C
	}
}

func setLED(led gpio.PinIO, l gpio.Level) {
	if led == nil {
		return
	}
	if err := led.Out(l); err != nil {
		log.Printf("could not set LED: %v", err)
	}
}
