package colorconv

import (
	"math"
)

// This package converts between 8-bit sRGB, CIE XYZ and CIE L*a*b*. XYZ and
// Lab are relative to the D65 white point with Y = 100 for white.
//
// Notes:
// - Every function is total. Out of range inputs are never an error, they
//   either take the linear segment of a pivot curve or get clamped when
//   producing 8-bit RGB.
// - RGB <-> Lab always goes through XYZ, there are no fused matrices, so the
//   composite and two step paths agree exactly.
// - All arithmetic happens in the precision T the caller picks.

// SRGB8ToXYZ converts 8-bit sRGB channels to XYZ.
func SRGB8ToXYZ[T Float](r, g, b uint8) (x, y, z T) {
	rl := Decode8Bit[T](r) * 100
	gl := Decode8Bit[T](g) * 100
	bl := Decode8Bit[T](b) * 100
	m := SRGBToXYZMatrix[T]()
	return m.MulVec(rl, gl, bl)
}

// XYZToLinearSRGB converts XYZ to linear sRGB in [0, 1]. The result is not
// clamped and may be outside the unit cube for out of gamut colors.
func XYZToLinearSRGB[T Float](x, y, z T) (r, g, b T) {
	m := XYZToSRGBMatrix[T]()
	return m.MulVec(x/100, y/100, z/100)
}

// XYZToSRGB8 converts XYZ to 8-bit sRGB, saturating out of gamut channels.
func XYZToSRGB8[T Float](x, y, z T) (r, g, b uint8) {
	r, g, b, _ = XYZToSRGB8Clipped(x, y, z)
	return
}

// XYZToSRGB8Clipped is XYZToSRGB8 that also reports whether any channel had
// to be clamped into [0, 255].
func XYZToSRGB8Clipped[T Float](x, y, z T) (r, g, b uint8, clipped bool) {
	rl, gl, bl := XYZToLinearSRGB(x, y, z)
	var cr, cg, cb bool
	r, cr = to_uint8(GammaEncode(rl) * 255)
	g, cg = to_uint8(GammaEncode(gl) * 255)
	b, cb = to_uint8(GammaEncode(bl) * 255)
	return r, g, b, cr || cg || cb
}

// InGamut reports whether the XYZ color maps into sRGB without clamping.
// Channels that overshoot by less than half a step are not counted.
func InGamut[T Float](x, y, z T) bool {
	_, _, _, clipped := XYZToSRGB8Clipped(x, y, z)
	return !clipped
}

func to_uint8[T Float](v T) (uint8, bool) {
	c := max(0, min(v, 255))
	return uint8(math.Round(float64(c))), !(v >= -0.5 && v <= 255.5)
}

// XYZToLab converts XYZ to CIE L*a*b*. L is never negative.
func XYZToLab[T Float](x, y, z T) (l, a, b T) {
	w := WhiteD65[T]()
	fx := LabForward(x / w[0])
	fy := LabForward(y / w[1])
	fz := LabForward(z / w[2])

	l = max(0, 116*fy-16)
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LabToXYZ converts CIE L*a*b* to XYZ.
func LabToXYZ[T Float](l, a, b T) (x, y, z T) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	w := WhiteD65[T]()
	x = w[0] * LabInverse(fx, fx*fx*fx)
	y = w[1] * LabInverseFromL(l, fy)
	z = w[2] * LabInverse(fz, fz*fz*fz)
	return
}

// SRGB8ToLab converts 8-bit sRGB to Lab via XYZ.
func SRGB8ToLab[T Float](r, g, b uint8) (l, a, bb T) {
	x, y, z := SRGB8ToXYZ[T](r, g, b)
	return XYZToLab(x, y, z)
}

// LabToSRGB8 converts Lab to 8-bit sRGB via XYZ.
func LabToSRGB8[T Float](l, a, b T) (r, g, bb uint8) {
	x, y, z := LabToXYZ(l, a, b)
	return XYZToSRGB8(x, y, z)
}

// LabToSRGB8Clipped is LabToSRGB8 that also reports clamping.
func LabToSRGB8Clipped[T Float](l, a, b T) (r, g, bb uint8, clipped bool) {
	x, y, z := LabToXYZ(l, a, b)
	return XYZToSRGB8Clipped(x, y, z)
}
