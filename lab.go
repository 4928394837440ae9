package cielab

import (
	"fmt"

	"github.com/kovidgoyal/cielab/colorconv"
)

// Lab is a CIE L*a*b* color relative to D65. L is in [0, 100], a and b are
// unbounded but typically within ±128.
type Lab[T Float] struct {
	L, A, B T
}

func NewLab[T Float](l, a, b T) Lab[T] { return Lab[T]{l, a, b} }

func (c Lab[T]) String() string {
	return fmt.Sprintf("Lab{%.4f %.4f %.4f}", c.L, c.A, c.B)
}

func (c Lab[T]) XYZ() XYZ[T] { return LabToXYZ(c) }

// RGB converts to 8-bit sRGB via XYZ, saturating out of gamut channels.
func (c Lab[T]) RGB() RGB { return LabToRGB(c) }

func (c Lab[T]) InGamut() bool {
	_, _, _, clipped := colorconv.LabToSRGB8Clipped(c.L, c.A, c.B)
	return !clipped
}

// RGBA implements color.Color via the clamped sRGB value.
func (c Lab[T]) RGBA() (r, g, b, a uint32) { return c.RGB().RGBA() }

func LabToXYZ[T Float](c Lab[T]) XYZ[T] {
	x, y, z := colorconv.LabToXYZ(c.L, c.A, c.B)
	return XYZ[T]{x, y, z}
}

func LabToRGB[T Float](c Lab[T]) RGB {
	r, g, b := colorconv.LabToSRGB8(c.L, c.A, c.B)
	return RGB{r, g, b}
}
