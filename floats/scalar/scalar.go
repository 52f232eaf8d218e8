// Copyright ©2013 The Gonum Authors. All rights reserved.
// Use of this code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar provides common floating point scalar comparisons.
package scalar // import "github.com/flexhat/flex/floats/scalar"

import (
	"math"
	"strconv"
)

// ParseWithNA converts the string s to a float64 in v. If the string matches
// the string for missing values, a true is returned for 'na'.
func ParseWithNA(s, missing string) (v float64, na bool, err error) {
	if s == missing {
		return 0, true, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	return v, false, err
}

// EqualWithinAbs returns true if a and b have an absolute difference
// not greater than tol.
func EqualWithinAbs(a, b, tol float64) bool {
	return a == b || math.Abs(a-b) <= tol
}

const minNormalFloat64 = 0x1p-1022

// EqualWithinRel returns true if the difference between a and b
// is not greater than tol times the greater absolute value of a and b,
//
//	abs(a-b) <= tol * max(abs(a), abs(b))
func EqualWithinRel(a, b, tol float64) bool {
	if a == b {
		return true
	}
	delta := math.Abs(a - b)
	if delta <= minNormalFloat64 {
		return delta <= tol*minNormalFloat64
	}
	// We depend on the division in this relationship to avoid overflow
	// when a or b are very large.
	return delta/math.Max(math.Abs(a), math.Abs(b)) <= tol
}

// EqualWithinAbsOrRel returns true if a and b are equal to within
// the absolute or relative tolerances. See EqualWithinAbs and
// EqualWithinRel for details of the tolerance definitions.
func EqualWithinAbsOrRel(a, b, absTol, relTol float64) bool {
	if EqualWithinAbs(a, b, absTol) {
		return true
	}
	return EqualWithinRel(a, b, relTol)
}

// EqualWithinULP returns true if a and b are equal to within
// the specified number of floating point units in the last place.
func EqualWithinULP(a, b float64, ulp uint) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.Signbit(a) != math.Signbit(b) {
		return math.Float64bits(math.Abs(a))+math.Float64bits(math.Abs(b)) <= uint64(ulp)
	}
	aBits := math.Float64bits(a)
	bBits := math.Float64bits(b)
	maxBits := aBits - bBits
	if aBits < bBits {
		maxBits = bBits - aBits
	}
	return maxBits <= uint64(ulp)
}

const dlamchE = 1.0 / (1 << 53)

// NaNWith returns an IEEE 754 "quiet not-a-number" value with the
// payload specified in the low 51 bits of payload. The NaN returned
// by math.NaN() has a bit pattern equal to NaNWith(1).
func NaNWith(payload uint64) float64 {
	// The exponent is 11 bits, the mantissa is 52 bits, and the bit pattern
	// for quiet-NaN is specified by having the top mantissa bit set to 1.
	// The payload is stored in the remaining 51 bits.
	return math.Float64frombits(1<<63-1<<51 | (payload & (1<<51 - 1)) | 1<<51)
}

// NaNPayload returns the lowest 51 bits payload of an IEEE 754 "quiet
// not-a-number" value. The boolean indicates whether f is a "quiet
// not-a-number" value. If f is not a "quiet not-a-number", the returned
// payload is zero.
func NaNPayload(f float64) (payload uint64, ok bool) {
	b := math.Float64bits(f)
	if b&(0x7ff<<52) != 0x7ff<<52 || b&(1<<51) == 0 {
		return 0, false
	}
	return b & (1<<51 - 1), true
}

// Round returns the half away from zero rounded value of x with prec precision.
//
// Special cases are:
//
//	Round(±0) = +0
//	Round(±Inf) = ±Inf
//	Round(NaN) = NaN
func Round(x float64, prec int) float64 {
	if x == 0 {
		// Make sure zero is returned
		// without the negative bit set.
		return 0
	}
	// Fast path for positive precision on integers.
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow(10, float64(prec))
	intermed := x * pow
	if math.IsInf(intermed, 0) {
		return x
	}
	if x < 0 {
		x = math.Ceil(intermed - 0.5)
	} else {
		x = math.Floor(intermed + 0.5)
	}

	if x == 0 {
		return 0
	}

	return x / pow
}

// RoundEven returns the half to even rounded value of x with prec precision.
//
// Special cases are:
//
//	RoundEven(±0) = +0
//	RoundEven(±Inf) = ±Inf
//	RoundEven(NaN) = NaN
func RoundEven(x float64, prec int) float64 {
	if x == 0 {
		// Make sure zero is returned
		// without the negative bit set.
		return 0
	}
	// Fast path for positive precision on integers.
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow(10, float64(prec))
	intermed := x * pow
	if math.IsInf(intermed, 0) {
		return x
	}
	if isHalfway(intermed) {
		correction, _ := math.Modf(intermed)
		if math.Mod(correction, 2) != 0 {
			if intermed < 0 {
				intermed = correction - 1
			} else {
				intermed = correction + 1
			}
		} else {
			intermed = correction
		}
	} else {
		if x < 0 {
			intermed = math.Ceil(intermed - 0.5)
		} else {
			intermed = math.Floor(intermed + 0.5)
		}
	}

	if intermed == 0 {
		return 0
	}

	return intermed / pow
}

func isHalfway(x float64) bool {
	_, frac := math.Modf(x)
	frac = math.Abs(frac)
	return frac == 0.5 || (math.Nextafter(frac, math.Inf(-1)) < 0.5 && math.Nextafter(frac, math.Inf(1)) > 0.5)
}

// Same returns true when the inputs have the same value, including NaNs, or
// are both the same signed zero.
func Same(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if a == b {
		return math.Signbit(a) == math.Signbit(b)
	}
	return false
}
