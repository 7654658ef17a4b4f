package zmpt101b

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedianFilter_BoundaryShrink(t *testing.T) {
	data := []uint16{5, 3, 8, 1, 9}

	min, max, err := medianFilter(data, 3)
	require.NoError(t, err)

	// Position 0 clips to a two-element window [5,3]: sorted [3,5], middle
	// index 1 picks 5. The last position clips the same way on the right.
	assert.Equal(t, uint16(5), data[0])
	assert.Equal(t, uint16(9), data[len(data)-1])

	assert.Equal(t, []uint16{5, 5, 5, 5, 9}, data)
	assert.Equal(t, uint16(5), min)
	assert.Equal(t, uint16(9), max)
}

func TestMedianFilter_EvenWindowBumped(t *testing.T) {
	even := []uint16{7, 2, 9, 4, 4, 8, 1, 6, 3, 5}
	odd := append([]uint16(nil), even...)

	minEven, maxEven, err := medianFilter(even, 4)
	require.NoError(t, err)
	minOdd, maxOdd, err := medianFilter(odd, 5)
	require.NoError(t, err)

	assert.Equal(t, odd, even, "window 4 should filter exactly like window 5")
	assert.Equal(t, minOdd, minEven)
	assert.Equal(t, maxOdd, maxEven)
}

func TestMedianFilter_BumpedWindowMayExceedLength(t *testing.T) {
	// A window equal to the length passes validation and is then bumped past
	// it; the boundary shrink keeps every effective window in range.
	data := []uint16{1, 2, 3, 4}

	min, max, err := medianFilter(data, 4)
	require.NoError(t, err)
	assert.Equal(t, []uint16{2, 3, 3, 3}, data)
	assert.Equal(t, uint16(2), min)
	assert.Equal(t, uint16(3), max)
}

func TestMedianFilter_OversizedWindow(t *testing.T) {
	data := []uint16{1, 2, 3}

	_, _, err := medianFilter(data, 5)
	assert.ErrorIs(t, err, ErrWindowSize)
}

func TestMedianFilter_NegativeWindow(t *testing.T) {
	data := []uint16{1, 2, 3}

	_, _, err := medianFilter(data, -3)
	assert.ErrorIs(t, err, ErrWindowSize)
}

func TestMedianFilter_Empty(t *testing.T) {
	_, _, err := medianFilter(nil, 11)
	assert.NoError(t, err)
}

func TestMedianFilter_SingleElement(t *testing.T) {
	data := []uint16{42}

	min, max, err := medianFilter(data, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint16{42}, data)
	assert.Equal(t, uint16(42), min)
	assert.Equal(t, uint16(42), max)
}

func TestMedianFilter_SuppressesSpikes(t *testing.T) {
	data := make([]uint16, 20)
	for i := range data {
		data[i] = 2048
	}
	data[5] = 4095
	data[13] = 0

	min, max, err := medianFilter(data, 5)
	require.NoError(t, err)
	for i, v := range data {
		assert.Equal(t, uint16(2048), v, "position %d", i)
	}
	assert.Equal(t, uint16(2048), min)
	assert.Equal(t, uint16(2048), max)
}

func TestMedianFilter_ExtremesMatchFilteredData(t *testing.T) {
	data := []uint16{1000, 4095, 900, 1100, 0, 1050, 3000, 950, 1020, 1010, 980}

	min, max, err := medianFilter(data, 3)
	require.NoError(t, err)

	wantMin, wantMax := data[0], data[0]
	for _, v := range data {
		if v < wantMin {
			wantMin = v
		}
		if v > wantMax {
			wantMax = v
		}
	}
	assert.Equal(t, wantMin, min, "min must be exactly the minimum of the filtered data")
	assert.Equal(t, wantMax, max, "max must be exactly the maximum of the filtered data")
}

func TestMedianFilter_NotIdempotent(t *testing.T) {
	data := []uint16{0, 0, 9, 9, 9, 0, 0}

	_, _, err := medianFilter(data, 5)
	require.NoError(t, err)
	once := append([]uint16(nil), data...)
	assert.Equal(t, []uint16{0, 9, 9, 9, 9, 9, 9}, once)

	_, _, err = medianFilter(data, 5)
	require.NoError(t, err)

	// A second pass keeps smoothing: the filter is not idempotent.
	assert.Equal(t, []uint16{9, 9, 9, 9, 9, 9, 9}, data)
	assert.NotEqual(t, once, data)
}
