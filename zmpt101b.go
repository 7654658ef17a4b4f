// Package zmpt101b reads AC voltage from a ZMPT101B sensor module through an
// ADS1115 analog-to-digital converter. One read cycle acquires a batch of
// samples, denoises it with a median filter and estimates the RMS voltage
// from the filtered peak-to-peak amplitude.
package zmpt101b

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/voltlab/zmpt101b/ads1115"
)

var (
	// ErrWrongDevice is thrown when trying to convert the underlying ADC of
	// a zmpt101b.Device and the device is not an ADS1115.
	ErrWrongDevice = errors.New("wrong device")
	// ErrWindowSize is thrown when the median filter window is larger than
	// the number of samples it is applied to.
	ErrWindowSize = errors.New("window size exceeds sample count")
	// ErrNoData is thrown when the acquisition returns no samples and there
	// is nothing to filter (e.g. the ADC stopped converting).
	ErrNoData = errors.New("no samples acquired")
)

// Device defines a ZMPT101B voltage sensor.
type Device struct {
	sensor adc
	readCh chan struct{}

	window int
	batch  int
	debug  io.Writer

	bus     string
	addr    uint16
	channel int
}

type adc interface {
	ReadBatch(n int) ([]uint16, error)
	Voltage(raw uint16) float64

	Shutdown() error
	Startup() error

	Close()
}

// New returns a new ZMPT101B device. By default, the sensor is read through
// an ADS1115 on the first available I2C bus, input AIN0, with a batch of 128
// samples per read and a median window of 10 samples (bumped to 11 by the
// filter).
func New(opts ...Option) (*Device, error) {
	d := &Device{
		readCh: make(chan struct{}, 1),
		window: defaultWindowSize,
		batch:  defaultBatchSize,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.batch < 1 {
		return nil, fmt.Errorf("zmpt101b: invalid batch size %d", d.batch)
	}
	if d.window < 1 {
		return nil, fmt.Errorf("zmpt101b: invalid window size %d", d.window)
	}
	if d.window > d.batch {
		return nil, fmt.Errorf("zmpt101b: invalid configuration: %w", ErrWindowSize)
	}

	sensor, err := ads1115.New(d.bus, d.addr, ads1115.Channel(d.channel))
	if err != nil {
		return nil, fmt.Errorf("zmpt101b: could not open ADC: %w", err)
	}
	d.sensor = sensor
	d.readCh <- struct{}{}

	return d, nil
}

// Close closes the device and cleans after itself.
func (d *Device) Close() {
	d.sensor.Close()
}

// Voltage returns one RMS voltage reading in millivolts at the sensor
// output. The mapping to line voltage depends on the calibration of the
// potentiometer on the sensor board.
//
// One call acquires a full batch of samples, median-filters it to remove
// ripple spikes and converts the filtered extremes to an RMS estimate. The
// estimate assumes the signal is roughly sinusoidal and that the batch spans
// at least one full cycle; it is not a general RMS computation.
func (d *Device) Voltage() (uint16, error) {
	<-d.readCh
	defer func() { d.readCh <- struct{}{} }()

	start := time.Now()

	samples, err := d.sensor.ReadBatch(d.batch)
	if err != nil {
		return 0, fmt.Errorf("zmpt101b: could not acquire samples: %w", err)
	}
	if len(samples) == 0 {
		return 0, fmt.Errorf("zmpt101b: could not acquire samples: %w", ErrNoData)
	}

	min, max, err := medianFilter(samples, d.window)
	if err != nil {
		return 0, fmt.Errorf("zmpt101b: could not filter samples: %w", err)
	}

	vmin := d.sensor.Voltage(min)
	vmax := d.sensor.Voltage(max)
	v := rms(vmin, vmax)

	if d.debug != nil {
		d.dump(samples, vmin, vmax, v, time.Since(start))
	}

	return uint16(v), nil
}

// dump writes the filtered waveform and the read summary to the debug
// writer, in volts.
func (d *Device) dump(samples []uint16, vmin, vmax, rms float64, elapsed time.Duration) {
	fmt.Fprintf(d.debug, "sampled: %d\n", len(samples))
	for i, s := range samples {
		fmt.Fprintf(d.debug, "%.2f ", d.sensor.Voltage(s)/1000)
		if (i+1)%32 == 0 {
			fmt.Fprintln(d.debug)
		}
	}
	if len(samples)%32 != 0 {
		fmt.Fprintln(d.debug)
	}
	fmt.Fprintf(d.debug, "voltage min = %.2fV\n", vmin/1000)
	fmt.Fprintf(d.debug, "voltage max = %.2fV\n", vmax/1000)
	fmt.Fprintf(d.debug, "voltage delta = %.2fV\n", (vmax-vmin)/1000)
	fmt.Fprintf(d.debug, "rms = %.0fmV\n", rms)
	fmt.Fprintf(d.debug, "elapsed = %s\n", elapsed)
}

// ToADS1115 converts a zmpt101b device to an ads1115 device to access low
// level functions. Check the package zmpt101b/ads1115 for detailed behavior.
func (d *Device) ToADS1115() (*ads1115.Device, error) {
	device, ok := d.sensor.(*ads1115.Device)
	if !ok {
		return nil, ErrWrongDevice
	}

	return device, nil
}

// Shutdown sets the ADC into power-save mode.
func (d *Device) Shutdown() error {
	return d.sensor.Shutdown()
}

// Startup wakes the ADC from power-save mode.
func (d *Device) Startup() error {
	return d.sensor.Startup()
}
