// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulDivRounding(t *testing.T) {
	cases := []struct {
		a, b, c, want int32
	}{
		{1, 1, 1, 1},
		{3, 3, 2, 5},  // 4.5 rounds away from zero to 5
		{-3, 3, 2, -5},
		{1 << 6, 1 << 6, 1 << 6, 1 << 6},
		{10, 0, 5, 0},
	}
	for _, c := range cases {
		got := mulDiv(c.a, c.b, c.c)
		assert.Equalf(t, c.want, got, "mulDiv(%d,%d,%d)", c.a, c.b, c.c)
	}
}

func TestMulDivDivByZeroSaturates(t *testing.T) {
	assert.Equal(t, int32(0x7FFFFFFF), mulDiv(5, 5, 0))
	assert.Equal(t, int32(-0x7FFFFFFF), mulDiv(-5, 5, 0))
}

func TestScaleFUnitsRoundTrip(t *testing.T) {
	scale := newScaleFix(16, 1000) // 16ppem, 1000 upm font
	got := scaleFUnits(1000, scale)
	assert.Equal(t, F26Dot6(16<<6), got)
}

func TestMul26Div26Inverse(t *testing.T) {
	x := F26Dot6(3 << 6)
	y := F26Dot6(2 << 6)
	assert.Equal(t, x, div26(mul26(x, y), y))
}
