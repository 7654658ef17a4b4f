// Package ads1115 is a register-level driver for the ADS1115 16-bit I2C
// analog-to-digital converter.
package ads1115

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
)

var (
	// ErrNotDevice throws an error when no ADS1115 responds on the given
	// address.
	ErrNotDevice error = errors.New("ads1115: device does not respond")
)

// Device defines an ADS1115 device.
type Device struct {
	dev *i2c.Dev
	bus i2c.BusCloser

	channel int
	gain    Gain
	rate    DataRate
}

// New returns a new ADS1115 device. By default, this converts the
// single-ended input AIN0 with a ±4.096V full-scale range at 860 samples/s,
// in single-shot (power-down) mode.
//
// Argument "busName" can be used to specify the exact bus to use
// ("/dev/i2c-2", "I2C2", "2"). If "busName" is specified as an empty string
// "" the first available bus will be used.
// Argument "addr" can be used to specify an alternative address if the
// default (0x48, ADDR pin to GND) is unavailable.
func New(busName string, addr uint16, opts ...Option) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("ads1115: could not initialize host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("ads1115: could not open I2C bus: %w", err)
	}

	if addr == 0 {
		addr = Addr
	}

	d := &Device{
		dev: &i2c.Dev{
			Addr: addr,
			Bus:  bus,
		},
		bus:  bus,
		gain: FS4096,
		rate: DR860,
	}

	if _, err := d.ReadRegister(RegConfig); err != nil {
		bus.Close()
		return nil, ErrNotDevice
	}

	if _, err := d.Options(opts...); err != nil {
		bus.Close()
		return nil, err
	}
	if err := d.commit(modeSingle); err != nil {
		bus.Close()
		return nil, fmt.Errorf("ads1115: could not initialize device: %w", err)
	}

	return d, nil
}

// Close closes the device and cleans after itself.
func (d *Device) Close() {
	d.Shutdown()
	d.bus.Close()
}

// ReadRegister reads a 16-bit register.
func (d *Device) ReadRegister(reg byte) (uint16, error) {
	b := make([]byte, 2)
	if err := d.dev.Tx([]byte{reg}, b); err != nil {
		return 0, fmt.Errorf("ads1115: could not read register %#x: %w", reg, err)
	}

	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// WriteRegister writes a 16-bit register.
func (d *Device) WriteRegister(reg byte, value uint16) error {
	n, err := d.dev.Write([]byte{reg, byte(value >> 8), byte(value)})
	if err != nil {
		return err
	}
	n-- // remove register write
	if n != 2 {
		return fmt.Errorf("write: wrong number of bytes written: want %d, got %d", 2, n)
	}

	return nil
}

// configWord assembles the config register value for the current settings
// and the given conversion mode.
func (d *Device) configWord(mode uint16) uint16 {
	return muxSingle(d.channel) | uint16(d.gain) | mode | uint16(d.rate) | compQueDisable
}

func (d *Device) commit(mode uint16) error {
	return d.WriteRegister(RegConfig, d.configWord(mode))
}

// Read performs one single-shot conversion and returns the raw value.
// Negative conversions (noise below ground on a single-ended input) are
// clamped to 0.
func (d *Device) Read() (uint16, error) {
	if err := d.WriteRegister(RegConfig, d.configWord(modeSingle)|osSingle); err != nil {
		return 0, fmt.Errorf("ads1115: could not start conversion: %w", err)
	}

	for {
		cfg, err := d.ReadRegister(RegConfig)
		if err != nil {
			return 0, fmt.Errorf("ads1115: could not wait for conversion: %w", err)
		}
		if cfg&osSingle != 0 {
			break
		}
	}

	raw, err := d.ReadRegister(RegConversion)
	if err != nil {
		return 0, fmt.Errorf("ads1115: could not read conversion: %w", err)
	}

	return clamp(int16(raw)), nil
}

// ReadBatch switches the converter to continuous conversion mode and returns
// n consecutive samples paced at the configured data rate, then powers the
// converter back down. Negative conversions are clamped to 0.
func (d *Device) ReadBatch(n int) ([]uint16, error) {
	if n <= 0 {
		return nil, fmt.Errorf("ads1115: invalid batch size %d", n)
	}

	if err := d.commit(modeContinuous); err != nil {
		return nil, fmt.Errorf("ads1115: could not start continuous conversion: %w", err)
	}

	period := time.Second / time.Duration(d.rate.SamplesPerSecond())
	time.Sleep(period) // first conversion

	samples := make([]uint16, n)
	for i := range samples {
		raw, err := d.ReadRegister(RegConversion)
		if err != nil {
			d.Shutdown()
			return nil, fmt.Errorf("ads1115: could not read conversion: %w", err)
		}
		samples[i] = clamp(int16(raw))
		time.Sleep(period)
	}

	if err := d.Shutdown(); err != nil {
		return nil, fmt.Errorf("ads1115: could not stop continuous conversion: %w", err)
	}

	return samples, nil
}

// Voltage converts a raw conversion to millivolts using the configured
// full-scale range.
func (d *Device) Voltage(raw uint16) float64 {
	return float64(raw) * d.gain.FullScale() / 32768
}

// Shutdown sets the device into single-shot power-down mode.
func (d *Device) Shutdown() error {
	if err := d.commit(modeSingle); err != nil {
		return fmt.Errorf("ads1115: could not power down: %w", err)
	}

	return nil
}

// Startup wakes the device into continuous conversion mode.
func (d *Device) Startup() error {
	if err := d.commit(modeContinuous); err != nil {
		return fmt.Errorf("ads1115: could not start conversions: %w", err)
	}

	return nil
}

func clamp(raw int16) uint16 {
	if raw < 0 {
		return 0
	}
	return uint16(raw)
}
