package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// SignedBounds returns the inclusive range of a signed integer of the given width.
func SignedBounds(bits int) (lo, hi int64) {
	if bits >= 64 {
		return -1 << 63, 1<<63 - 1
	}

	return -1 << (bits - 1), 1<<(bits-1) - 1
}

// UnsignedMax returns the largest unsigned integer of the given width.
func UnsignedMax(bits int) uint64 {
	if bits >= 64 {
		return 1<<64 - 1
	}

	return 1<<bits - 1
}
