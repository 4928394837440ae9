package cielab

import (
	"fmt"

	"github.com/kovidgoyal/go-parallel"
)

var _ = fmt.Print

func convert_slice[S, D any](dst []D, src []S, cvt func(S) D) error {
	if len(dst) != len(src) {
		return fmt.Errorf("destination has room for %d colors but there are %d source colors", len(dst), len(src))
	}
	if len(src) == 0 {
		return nil
	}
	return parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			dst[i] = cvt(src[i])
		}
	}, 0, len(src))
}

// RGBSliceToLab converts src into dst, which must be the same length.
func RGBSliceToLab[T Float](dst []Lab[T], src []RGB) error {
	return convert_slice(dst, src, RGBToLab[T])
}

// LabSliceToRGB converts src into dst, which must be the same length. Out of
// gamut colors are clamped.
func LabSliceToRGB[T Float](dst []RGB, src []Lab[T]) error {
	return convert_slice(dst, src, LabToRGB[T])
}

// RGBSliceToXYZ converts src into dst, which must be the same length.
func RGBSliceToXYZ[T Float](dst []XYZ[T], src []RGB) error {
	return convert_slice(dst, src, RGBToXYZ[T])
}

// XYZSliceToRGB converts src into dst, which must be the same length. Out of
// gamut colors are clamped.
func XYZSliceToRGB[T Float](dst []RGB, src []XYZ[T]) error {
	return convert_slice(dst, src, XYZToRGB[T])
}
