package zmpt101b

// medianFilter smooths data in place with a sliding-window median and
// returns the minimum and maximum of the filtered sequence. The window
// shrinks near both boundaries instead of wrapping or padding, so edge
// samples are smoothed over a smaller, still-centered neighborhood. An even
// window size is bumped to the next odd size to avoid ties on the middle
// element.
//
// The returned min and max are meaningless when data is empty.
func medianFilter(data []uint16, windowSize int) (min, max uint16, err error) {
	if len(data) == 0 {
		return 0, 0, nil
	}
	if windowSize < 0 || windowSize > len(data) {
		return 0, 0, ErrWindowSize
	}
	if windowSize%2 == 0 {
		windowSize++
	}

	window := make([]uint16, windowSize)

	min = 0xFFFF
	max = 0
	half := windowSize / 2
	for i := range data {
		start := 0
		if i > half {
			start = i - half
		}
		end := i + half
		if end > len(data)-1 {
			end = len(data) - 1
		}
		n := copy(window, data[start:end+1])

		// insertion sort, windows are small
		for j := 1; j < n; j++ {
			key := window[j]
			k := j
			for k > 0 && window[k-1] > key {
				window[k] = window[k-1]
				k--
			}
			window[k] = key
		}

		data[i] = window[n/2]
		if data[i] > max {
			max = data[i]
		}
		if data[i] < min {
			min = data[i]
		}
	}

	return min, max, nil
}
