// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// F2Dot14 is a 2.14 fixed point number: 1.0 is represented as 0x4000.
// It is used for unit-vector components (projection/freedom/dual
// vectors). It is an alias of fixed.Int2_14.
type F2Dot14 = fixed.Int2_14

const oneF2Dot14 F2Dot14 = 0x4000

// Vec2 is a pair of F2Dot14 unit-vector components.
type Vec2 struct {
	X, Y F2Dot14
}

var (
	xAxis = Vec2{oneF2Dot14, 0}
	yAxis = Vec2{0, oneF2Dot14}
)

// dotFix14 computes the F2Dot14-weighted dot product of two vectors and
// returns it as a plain int32, using the documented asymmetric rounding:
// floor((ax*bx + ay*by + 0x2000 - (c<0?1:0)) / 0x4000).
func dotFix14(ax, ay, bx, by F2Dot14) int32 {
	c := int64(ax)*int64(bx) + int64(ay)*int64(by)
	bias := int64(0x2000)
	if c < 0 {
		bias--
	}
	return int32((c + bias) >> 14)
}

// mulFix14 scales an F26Dot6 distance by one component of a 2.14 unit
// vector, producing an F26Dot6 delta: floor((distance*v + 0x2000)/0x4000).
func mulFix14(distance F26Dot6, v F2Dot14) F26Dot6 {
	c := int64(distance)*int64(v) + 0x2000
	return F26Dot6(c >> 14)
}

// normalizeVec2 scales (x, y) to unit length in F2Dot14, using the
// half-away-from-zero rounding convention. A zero-length input defaults
// to the X axis, matching FreeType's behavior for degenerate SPVFS/SFVFS
// and SPVTL/SFVTL inputs.
func normalizeVec2(x, y int32) Vec2 {
	if x == 0 && y == 0 {
		return xAxis
	}
	fx, fy := float64(x), float64(y)
	length := math.Hypot(fx, fy)
	if length == 0 {
		return xAxis
	}
	nx := int32(roundHalfAwayF(fx / length * 0x4000))
	ny := int32(roundHalfAwayF(fy / length * 0x4000))
	return Vec2{F2Dot14(clamp16(nx)), F2Dot14(clamp16(ny))}
}

func roundHalfAwayF(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}

func clamp16(v int32) int32 {
	if v > 0x7fff {
		return 0x7fff
	}
	if v < -0x8000 {
		return -0x8000
	}
	return v
}

// perp rotates a unit vector 90 degrees counter-clockwise: (x,y) -> (-y,x).
// This matches FreeType, not the clockwise variant seen in some historical
// interpreters (spec Design Notes, "Perpendicular rotation direction").
func perp(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}
