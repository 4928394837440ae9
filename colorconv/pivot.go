package colorconv

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of precisions every conversion in this package can be
// instantiated with. float32 and float64 are both supported.
type Float interface {
	constraints.Float
}

// CIE constants as used by the reference Lab/XYZ tables. Note that the
// inverse for the a/b derived components uses KappaAB, not Kappa.
const (
	Epsilon = 0.008856
	Kappa   = 903.3
	KappaAB = 7.787
)

// GammaDecode converts a normalized sRGB encoded channel value in [0, 1] to
// linear light.
func GammaDecode[T Float](c T) T {
	if c > 0.04045 {
		return T(math.Pow(float64((c+0.055)/1.055), 2.4))
	}
	return c / 12.92
}

// GammaEncode is the inverse of GammaDecode. Values at or below the linear
// threshold, including negative ones, use the linear segment.
func GammaEncode[T Float](c T) T {
	if c > 0.0031308 {
		return 1.055*T(math.Pow(float64(c), 1/2.4)) - 0.055
	}
	return c * 12.92
}

// LabForward maps a white point normalized XYZ component into the Lab domain.
func LabForward[T Float](n T) T {
	if n > Epsilon {
		return T(math.Cbrt(float64(n)))
	}
	return (Kappa*n + 16) / 116
}

// LabInverse maps a Lab domain value back to a normalized XYZ component.
// The threshold is tested against the cube n3, which the caller supplies.
func LabInverse[T Float](n, n3 T) T {
	if n3 > Epsilon {
		return n3
	}
	return (n - 16.0/116) / KappaAB
}

// LabInverseFromL recovers normalized Y. Unlike LabInverse the branch is
// chosen from L* directly.
func LabInverseFromL[T Float](l, y T) T {
	if l > Epsilon*Kappa {
		return y * y * y
	}
	return l / Kappa
}
