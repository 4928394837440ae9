package cielab

import (
	"cmp"
	"fmt"
	"image/color"

	"github.com/kovidgoyal/cielab/colorconv"
)

var _ = fmt.Print

// Float is the set of floating point precisions XYZ and Lab values can use.
type Float = colorconv.Float

// RGB is an opaque sRGB encoded color with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

func NewRGB(r, g, b uint8) RGB { return RGB{r, g, b} }

func (c RGB) AsSharp() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("RGB{%02X %02X %02X}", c.R, c.G, c.B)
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 65535 // (255 << 8 | 255)
	return
}

// Compare orders colors by R, then G, then B.
func (c RGB) Compare(o RGB) int {
	return cmp.Or(cmp.Compare(c.R, o.R), cmp.Compare(c.G, o.G), cmp.Compare(c.B, o.B))
}

// XYZ converts to XYZ in float64 precision. Use RGBToXYZ for other precisions.
func (c RGB) XYZ() XYZ[float64] { return RGBToXYZ[float64](c) }

// Lab converts to Lab in float64 precision. Use RGBToLab for other precisions.
func (c RGB) Lab() Lab[float64] { return RGBToLab[float64](c) }

func RGBToXYZ[T Float](c RGB) XYZ[T] {
	x, y, z := colorconv.SRGB8ToXYZ[T](c.R, c.G, c.B)
	return XYZ[T]{x, y, z}
}

func RGBToLab[T Float](c RGB) Lab[T] {
	l, a, b := colorconv.SRGB8ToLab[T](c.R, c.G, c.B)
	return Lab[T]{l, a, b}
}

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	switch a {
	case 0xffff:
		return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	case 0:
		return RGB{0, 0, 0}
	default:
		// Since Color.RGBA returns an alpha-premultiplied color, we should have r <= a && g <= a && b <= a.
		r = min((r*0xffff)/a, 0xffff)
		g = min((g*0xffff)/a, 0xffff)
		b = min((b*0xffff)/a, 0xffff)
		return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	}
}

// RGBModel converts any color to RGB, discarding alpha after
// un-premultiplying.
var RGBModel color.Model = color.ModelFunc(rgbModel)
