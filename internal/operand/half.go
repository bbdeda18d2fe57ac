package operand

import "math"

// Half-precision conversion constants.
const (
	half16SignMask     = 0x8000
	half16ExponentMask = 0x7C00
	half16MantissaMask = 0x03FF
	half16MantissaBits = 10
)

// roundToHalf pushes a float64 through the float16 format and back,
// truncating precision and overflowing to infinity past the finite range.
func roundToHalf(v float64) float64 {
	return float64(halfToFloat32(float32ToHalf(float32(v))))
}

func float32ToHalf(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & half16SignMask)
	exponent := (bits >> 23) & 0xFF
	mantissa := bits & 0x7FFFFF

	if exponent == 0xFF {
		if mantissa == 0 {
			return sign | half16ExponentMask // Infinity
		}
		return sign | half16ExponentMask | uint16(mantissa>>13) // NaN
	}

	exp := int(exponent) - 127 + 15
	if exp <= 0 {
		// Underflow to zero
		return sign
	}
	if exp >= 0x1F {
		// Overflow to infinity
		return sign | half16ExponentMask
	}
	return sign | uint16(exp)<<half16MantissaBits | uint16(mantissa>>13)
}

func halfToFloat32(h uint16) float32 {
	sign := uint32(h&half16SignMask) << 16
	exponent := (h & half16ExponentMask) >> half16MantissaBits
	mantissa := h & half16MantissaMask

	if exponent == 0 {
		if mantissa == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal: normalize it
		exp := uint32(1)
		for mantissa&0x200 == 0 {
			mantissa <<= 1
			exp++
		}
		mantissa &= 0x1FF
		exponentBits := 127 - 15 - exp + 1
		return math.Float32frombits(sign | exponentBits<<23 | uint32(mantissa)<<13)
	}
	if exponent == 0x1F {
		if mantissa == 0 {
			return math.Float32frombits(sign | 0x7F800000) // Infinity
		}
		return math.Float32frombits(sign | 0x7FC00000 | uint32(mantissa)<<13) // NaN
	}
	return math.Float32frombits(sign | (uint32(exponent)+127-15)<<23 | uint32(mantissa)<<13)
}
