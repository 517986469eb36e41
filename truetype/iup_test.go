// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIUPShiftsUntouchedPointsByTouchedDelta verifies the single-touched-
// point case: every other point in the contour moves by the same delta
// the one touched point moved.
func TestIUPShiftsUntouchedPointsByTouchedDelta(t *testing.T) {
	z := &Zone{
		Org:      []Point{{X: 0}, {X: 10 << 6}, {X: 20 << 6}},
		Cur:      []Point{{X: 0}, {X: 10 << 6}, {X: 20 << 6}},
		Tags:     make([]byte, 3),
		Contours: []int{2},
	}
	z.Cur[1].X += 2 << 6 // only point 1 touched and moved by 2px
	z.touch(1, Vec2{X: oneF2Dot14})

	e := &Engine{glyphZone: z}
	assert.NoError(t, e.execIUP(true))

	assert.Equal(t, F26Dot6(2<<6), z.Cur[0].X)
	assert.Equal(t, F26Dot6(12<<6), z.Cur[1].X)
	assert.Equal(t, F26Dot6(22<<6), z.Cur[2].X)
}

// TestIUPInterpolatesBetweenTwoTouchedPoints checks the linear-interpolation
// branch for a point strictly between two touched reference points.
func TestIUPInterpolatesBetweenTwoTouchedPoints(t *testing.T) {
	z := &Zone{
		Orus:     []Point{{X: 0}, {X: 10 << 6}, {X: 20 << 6}}, // unscaled font units
		Org:      []Point{{X: 0}, {X: 10 << 6}, {X: 20 << 6}}, // scaled 1:1 for this test
		Cur:      []Point{{X: 0}, {X: 10 << 6}, {X: 24 << 6}}, // point 2 scaled up
		Tags:     make([]byte, 3),
		Contours: []int{2},
	}
	z.touch(0, Vec2{X: oneF2Dot14})
	z.touch(2, Vec2{X: oneF2Dot14})

	e := &Engine{glyphZone: z}
	assert.NoError(t, e.execIUP(true))

	// point 1 sits halfway between 0 and 20 in Orus, so it should land
	// halfway between Cur[0]=0 and Cur[2]=24<<6, i.e. 12<<6.
	assert.Equal(t, F26Dot6(12<<6), z.Cur[1].X)
}

// TestIUPRatioUsesOrusNotOrg constructs a point whose scaled-original
// (Org) position would pick the wrong branch (outside the anchor pair)
// if the implementation mistakenly drove the ratio/branch decision off
// Org instead of the unscaled-original Orus array, per spec.md 4.6.
func TestIUPRatioUsesOrusNotOrg(t *testing.T) {
	z := &Zone{
		Orus:     []Point{{X: 0}, {X: 5}, {X: 10}},  // point 1 sits between the anchors here
		Org:      []Point{{X: 0}, {X: 50}, {X: 10}}, // ...but not here
		Cur:      []Point{{X: 0}, {X: 0}, {X: 20}},
		Tags:     make([]byte, 3),
		Contours: []int{2},
	}
	z.touch(0, Vec2{X: oneF2Dot14})
	z.touch(2, Vec2{X: oneF2Dot14})

	e := &Engine{glyphZone: z}
	assert.NoError(t, e.execIUP(true))

	// Proportional interpolation in Orus space: 0 + (5-0)/(10-0)*(20-0) = 10.
	assert.Equal(t, F26Dot6(10), z.Cur[1].X)
}

func TestIUPNoOpWhenNothingTouched(t *testing.T) {
	z := &Zone{
		Org:      []Point{{X: 0}, {X: 10 << 6}},
		Cur:      []Point{{X: 0}, {X: 10 << 6}},
		Tags:     make([]byte, 2),
		Contours: []int{1},
	}
	e := &Engine{glyphZone: z}
	assert.NoError(t, e.execIUP(true))
	assert.Equal(t, F26Dot6(0), z.Cur[0].X)
	assert.Equal(t, F26Dot6(10<<6), z.Cur[1].X)
}
