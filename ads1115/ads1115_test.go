package ads1115

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigWord(t *testing.T) {
	d := &Device{channel: 2, gain: FS2048, rate: DR860}

	// AIN2 single-ended, ±2.048V, 860SPS, single-shot, comparator off.
	assert.Equal(t, uint16(0x65E3), d.configWord(modeSingle))

	d = &Device{channel: 0, gain: FS4096, rate: DR860}
	assert.Equal(t, uint16(0x42E3), d.configWord(modeContinuous))
}

func TestVoltage(t *testing.T) {
	d := &Device{gain: FS4096}

	assert.Equal(t, float64(0), d.Voltage(0))
	assert.Equal(t, float64(2048), d.Voltage(16384))

	d.gain = FS6144
	assert.InDelta(t, 6143.8, d.Voltage(32767), 0.2)
}

func TestGainFullScale(t *testing.T) {
	assert.Equal(t, float64(6144), FS6144.FullScale())
	assert.Equal(t, float64(256), FS256.FullScale())
	assert.Equal(t, float64(0), Gain(0xFFFF).FullScale())
}

func TestDataRateSamplesPerSecond(t *testing.T) {
	assert.Equal(t, 8, DR8.SamplesPerSecond())
	assert.Equal(t, 860, DR860.SamplesPerSecond())
	assert.Equal(t, 0, DataRate(0xFFFF).SamplesPerSecond())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, uint16(0), clamp(-1))
	assert.Equal(t, uint16(0), clamp(-32768))
	assert.Equal(t, uint16(0), clamp(0))
	assert.Equal(t, uint16(32767), clamp(32767))
}

func TestMuxSingle(t *testing.T) {
	assert.Equal(t, uint16(0x4000), muxSingle(0))
	assert.Equal(t, uint16(0x7000), muxSingle(3))
}
