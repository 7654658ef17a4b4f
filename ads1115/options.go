package ads1115

import "fmt"

// Option defines a functional option for the device.
type Option func(d *Device) (Option, error)

// Options set different configuration options and returns the previous value
// of the last option passed.
func (d *Device) Options(options ...Option) (Option, error) {
	var old Option
	var err error
	for _, opt := range options {
		old, err = opt(d)
		if err != nil {
			return nil, err
		}
	}

	return old, nil
}

// Channel selects the single-ended input to convert (AIN0 to AIN3).
func Channel(ch int) Option {
	return func(d *Device) (Option, error) {
		if ch < 0 || ch > 3 {
			return nil, fmt.Errorf("ads1115: invalid channel %d", ch)
		}

		old := d.channel
		d.channel = ch
		if err := d.commit(modeSingle); err != nil {
			return nil, fmt.Errorf("ads1115: could not configure channel: %w", err)
		}

		return Channel(old), nil
	}
}

// Range sets the PGA full-scale range. Inputs beyond the range read as the
// clipped full-scale value.
func Range(g Gain) Option {
	return func(d *Device) (Option, error) {
		if g.FullScale() == 0 {
			return nil, fmt.Errorf("ads1115: invalid full-scale range %#x", uint16(g))
		}

		old := d.gain
		d.gain = g
		if err := d.commit(modeSingle); err != nil {
			return nil, fmt.Errorf("ads1115: could not configure full-scale range: %w", err)
		}

		return Range(old), nil
	}
}

// Rate sets the conversion data rate.
func Rate(r DataRate) Option {
	return func(d *Device) (Option, error) {
		if r.SamplesPerSecond() == 0 {
			return nil, fmt.Errorf("ads1115: invalid data rate %#x", uint16(r))
		}

		old := d.rate
		d.rate = r
		if err := d.commit(modeSingle); err != nil {
			return nil, fmt.Errorf("ads1115: could not configure data rate: %w", err)
		}

		return Rate(old), nil
	}
}
