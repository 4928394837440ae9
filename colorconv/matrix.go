package colorconv

type Vec3[T Float] [3]T
type Mat3[T Float] [3][3]T

// sRGB primaries, D65 white, 2° observer. The inverse is the published four
// digit matrix, not the computed inverse of the forward one, to match the
// reference tables.
const (
	m00, m01, m02 = 0.4124, 0.3576, 0.1805
	m10, m11, m12 = 0.2126, 0.7152, 0.0722
	m20, m21, m22 = 0.0193, 0.1192, 0.9505

	i00, i01, i02 = 3.2406, -1.5372, -0.4986
	i10, i11, i12 = -0.9689, 1.8758, 0.0415
	i20, i21, i22 = 0.0557, -0.2040, 1.0570
)

// SRGBToXYZMatrix returns the linear sRGB to XYZ matrix in precision T.
func SRGBToXYZMatrix[T Float]() Mat3[T] {
	return Mat3[T]{{m00, m01, m02}, {m10, m11, m12}, {m20, m21, m22}}
}

// XYZToSRGBMatrix returns the XYZ to linear sRGB matrix in precision T.
func XYZToSRGBMatrix[T Float]() Mat3[T] {
	return Mat3[T]{{i00, i01, i02}, {i10, i11, i12}, {i20, i21, i22}}
}

// White point of the D65 illuminant scaled so that Y = 100.
func WhiteD65[T Float]() Vec3[T] {
	return Vec3[T]{95.047, 100.000, 108.883}
}

func (m *Mat3[T]) MulVec(x, y, z T) (T, T, T) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}
