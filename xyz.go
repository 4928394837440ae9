package cielab

import (
	"fmt"

	"github.com/kovidgoyal/cielab/colorconv"
)

// XYZ is a CIE 1931 tristimulus value relative to D65, Y = 100 for white.
type XYZ[T Float] struct {
	X, Y, Z T
}

func NewXYZ[T Float](x, y, z T) XYZ[T] { return XYZ[T]{x, y, z} }

func (c XYZ[T]) String() string {
	return fmt.Sprintf("XYZ{%.4f %.4f %.4f}", c.X, c.Y, c.Z)
}

// RGB converts to 8-bit sRGB, saturating channels that are out of gamut.
func (c XYZ[T]) RGB() RGB { return XYZToRGB(c) }

func (c XYZ[T]) Lab() Lab[T] { return XYZToLab(c) }

// InGamut reports whether the color can be represented in sRGB without
// clamping.
func (c XYZ[T]) InGamut() bool { return colorconv.InGamut(c.X, c.Y, c.Z) }

// RGBA implements color.Color via the clamped sRGB value.
func (c XYZ[T]) RGBA() (r, g, b, a uint32) { return c.RGB().RGBA() }

func XYZToRGB[T Float](c XYZ[T]) RGB {
	r, g, b := colorconv.XYZToSRGB8(c.X, c.Y, c.Z)
	return RGB{r, g, b}
}

func XYZToLab[T Float](c XYZ[T]) Lab[T] {
	l, a, b := colorconv.XYZToLab(c.X, c.Y, c.Z)
	return Lab[T]{l, a, b}
}
