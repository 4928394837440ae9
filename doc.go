/*
Package cielab converts colors between 8-bit sRGB, CIE XYZ and CIE L*a*b*.

XYZ and Lab are relative to the D65 white point (2° observer) with Y = 100
for white. XYZ and Lab values are generic over the floating point precision,
instantiate them with float32 or float64. Converting to RGB saturates out of
gamut channels, every other conversion is exact to floating point precision,
so RGB -> Lab -> RGB reproduces the original color.

The scalar math lives in the colorconv sub-package, this package wraps it in
value types and adds bulk conversion of slices and images.
*/
package cielab

import "fmt"

type CielabVersion struct {
	Major, Minor, Patch uint
}

func (v CielabVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v CielabVersion) Equal(o CielabVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v CielabVersion) After(o CielabVersion) bool {
	switch {
	case v.Major == o.Major:
		switch {
		case v.Minor == o.Minor:
			return v.Patch > o.Patch
		case v.Minor > o.Minor:
			return true
		case v.Minor < o.Minor:
			return false
		}
	case v.Major > o.Major:
		return true
	case v.Major < o.Major:
		return false
	}
	return false
}

func (v CielabVersion) Before(o CielabVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = CielabVersion{1, 0, 0}
