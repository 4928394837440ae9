package colorconv

import (
	"sync"
)

func build_decode_lut[T Float]() (ans [256]T) {
	for i := range ans {
		ans[i] = GammaDecode(T(i) / 255)
	}
	return
}

var decode8LUT32 = sync.OnceValue(func() []float32 { v := build_decode_lut[float32](); return v[:] })
var decode8LUT64 = sync.OnceValue(func() []float64 { v := build_decode_lut[float64](); return v[:] })

// Decode8Bit converts an 8-bit sRGB encoded value to linear light in [0, 1].
// The result is bit identical to GammaDecode(T(v)/255); for float32 and
// float64 it comes from a table built on first use.
func Decode8Bit[T Float](v uint8) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(decode8LUT32()[v])
	case float64:
		return T(decode8LUT64()[v])
	}
	return GammaDecode(T(v) / 255)
}
