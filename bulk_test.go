package cielab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func all_test_colors(step int) (ans []RGB) {
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				ans = append(ans, RGB{uint8(r), uint8(g), uint8(b)})
			}
		}
	}
	return
}

func TestSliceConversionMatchesScalar(t *testing.T) {
	src := all_test_colors(15)
	lab := make([]Lab[float32], len(src))
	require.NoError(t, RGBSliceToLab(lab, src))
	xyz := make([]XYZ[float64], len(src))
	require.NoError(t, RGBSliceToXYZ(xyz, src))
	for i, c := range src {
		require.Equal(t, RGBToLab[float32](c), lab[i])
		require.Equal(t, c.XYZ(), xyz[i])
	}

	back := make([]RGB, len(src))
	require.NoError(t, LabSliceToRGB(back, lab))
	for i, c := range lab {
		require.Equal(t, c.RGB(), back[i])
	}
	clear(back)
	require.NoError(t, XYZSliceToRGB(back, xyz))
	require.Equal(t, src, back)
}

func TestSliceConversionErrors(t *testing.T) {
	require.Error(t, RGBSliceToLab(make([]Lab[float64], 2), make([]RGB, 3)))
	require.Error(t, XYZSliceToRGB(make([]RGB, 1), make([]XYZ[float32], 0)))
	require.NoError(t, LabSliceToRGB(nil, []Lab[float64]{}))
}
