package zmpt101b

import "io"

// An Option configures a device.
type Option func(d *Device) Option

// OnBus can be used to specify the I²C bus name
// ("/dev/i2c-2", "I2C2", "2"). By default, the bus name is "", which selects
// the first available bus.
func OnBus(name string) Option {
	return func(d *Device) Option {
		old := d.bus
		d.bus = name
		return OnBus(old)
	}
}

// OnAddr can be used to specify an alternative I²C address.
// By default, the address is 0x48.
func OnAddr(addr uint16) Option {
	return func(d *Device) Option {
		old := d.addr
		d.addr = addr
		return OnAddr(old)
	}
}

// OnChannel selects the ADC input the sensor is wired to (0 to 3).
// By default, the channel is 0 (AIN0).
func OnChannel(ch int) Option {
	return func(d *Device) Option {
		old := d.channel
		d.channel = ch
		return OnChannel(old)
	}
}

// WindowSize sets the median filter window in samples. Even sizes are bumped
// to the next odd size by the filter. By default, the window is 10 samples.
func WindowSize(n int) Option {
	return func(d *Device) Option {
		old := d.window
		d.window = n
		return WindowSize(old)
	}
}

// BatchSize sets how many samples one read cycle acquires. The batch must
// span at least one full cycle of the measured signal for the RMS estimate
// to hold. By default, the batch is 128 samples.
func BatchSize(n int) Option {
	return func(d *Device) Option {
		old := d.batch
		d.batch = n
		return BatchSize(old)
	}
}

// DebugTo sets a writer that receives the filtered waveform and a summary of
// every read. By default, reads are silent.
func DebugTo(w io.Writer) Option {
	return func(d *Device) Option {
		old := d.debug
		d.debug = w
		return DebugTo(old)
	}
}
