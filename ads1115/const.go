package ads1115

// Register addresses
const (
	RegConversion = 0x00
	RegConfig     = 0x01
	RegLoThresh   = 0x02
	RegHiThresh   = 0x03
)

// Device constants
const (
	// Addr is the default I²C address (ADDR pin tied to GND).
	Addr = 0x48
)

// Config register flags
const (
	// osSingle starts a single conversion when written and reads back 1
	// when the device is not converting.
	osSingle uint16 = 1 << 15

	modeSingle     uint16 = 1 << 8
	modeContinuous uint16 = 0

	// compQueDisable disables the comparator and keeps ALERT/RDY in
	// high-impedance.
	compQueDisable uint16 = 0b11
)

// Gain sets the programmable gain amplifier full-scale range.
type Gain uint16

// PGA full-scale range settings, in ±mV.
const (
	FS6144 Gain = iota << 9
	FS4096
	FS2048
	FS1024
	FS512
	FS256
)

var fullScale = [...]float64{6144, 4096, 2048, 1024, 512, 256}

// FullScale returns the full-scale range in millivolts, or 0 for an invalid
// setting.
func (g Gain) FullScale() float64 {
	i := int(g >> 9)
	if i >= len(fullScale) {
		return 0
	}
	return fullScale[i]
}

// DataRate sets the conversion rate.
type DataRate uint16

// Data rate settings, in samples per second.
const (
	DR8 DataRate = iota << 5
	DR16
	DR32
	DR64
	DR128
	DR250
	DR475
	DR860
)

var samplesPerSecond = [...]int{8, 16, 32, 64, 128, 250, 475, 860}

// SamplesPerSecond returns the conversion rate, or 0 for an invalid setting.
func (r DataRate) SamplesPerSecond() int {
	i := int(r >> 5)
	if i >= len(samplesPerSecond) {
		return 0
	}
	return samplesPerSecond[i]
}

// muxSingle returns the input mux flags for a single-ended channel (AINx vs
// GND).
func muxSingle(ch int) uint16 {
	return uint16(0b100|ch) << 12
}
