// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "golang.org/x/image/math/fixed"

// F26Dot6 is a 26.6 fixed point number: 1.0 pixel is represented as 64.
// It is an alias of fixed.Int26_6 so that device-pixel coordinates
// produced by this package interoperate directly with golang.org/x/image.
type F26Dot6 = fixed.Int26_6

// Point is a device-pixel coordinate pair.
type Point = fixed.Point26_6

const (
	one26Dot6 F26Dot6 = 1 << 6
	half26Dot6 F26Dot6 = 1 << 5
)

// abs26 returns the absolute value of x.
func abs26(x F26Dot6) F26Dot6 {
	if x < 0 {
		return -x
	}
	return x
}

// sign26 returns -1, 0 or 1.
func sign26(x F26Dot6) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// mulDiv computes sign(a*b/c) * floor((|a|*|b| + |c|/2) / |c|), the
// half-away-from-zero rounding multiply-divide the TrueType interpreter
// uses throughout (MUL, DIV, movePoint scaling, IP's range ratio, ...).
// Division by zero saturates to ±0x7FFFFFFF rather than panicking.
func mulDiv(a, b, c int32) int32 {
	if c == 0 {
		if (a < 0) != (b < 0) {
			return -0x7FFFFFFF
		}
		return 0x7FFFFFFF
	}
	sign := int64(1)
	aa, bb, cc := int64(a), int64(b), int64(c)
	if aa < 0 {
		aa, sign = -aa, -sign
	}
	if bb < 0 {
		bb, sign = -bb, -sign
	}
	if cc < 0 {
		cc, sign = -cc, -sign
	}
	result := (aa*bb + cc/2) / cc
	return int32(sign * result)
}

// mulDivFloor is mulDiv without the rounding bias: truncation toward zero.
func mulDivFloor(a, b, c int32) int32 {
	if c == 0 {
		if (a < 0) != (b < 0) {
			return -0x7FFFFFFF
		}
		return 0x7FFFFFFF
	}
	return int32((int64(a) * int64(b)) / int64(c))
}

// mul26 returns x*y in 26.6 fixed point arithmetic, rounding half away
// from zero.
func mul26(x, y F26Dot6) F26Dot6 {
	return F26Dot6(mulDiv(int32(x), int32(y), 1<<6))
}

// div26 returns x/y in 26.6 fixed point arithmetic, rounding half away
// from zero; division by zero saturates.
func div26(x, y F26Dot6) F26Dot6 {
	return F26Dot6(mulDiv(int32(x), 1<<6, int32(y)))
}

// scaleFUnits scales a font-unit value by a 16.16 scale factor (see
// newScaleFix) and rounds half away from zero, producing an F26Dot6.
func scaleFUnits(funits int32, scaleFix int32) F26Dot6 {
	return F26Dot6(mulDiv(funits, scaleFix, 1<<16))
}

// newScaleFix computes scaleFix = round(ppem*64/unitsPerEm * 65536), the
// 16.16 factor that converts font units into F26Dot6 device pixels.
func newScaleFix(ppem, unitsPerEm int32) int32 {
	if unitsPerEm == 0 {
		return 0
	}
	return mulDiv(ppem<<6, 1<<16, unitsPerEm)
}
