// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPointEngine() *Engine {
	e := &Engine{stack: make([]int32, 32)}
	e.gs = defaultGraphicsState()
	e.glyphZone = &Zone{
		Org:  []Point{{X: 0}, {X: 10 << 6}},
		Cur:  []Point{{X: 0}, {X: 10 << 6}},
		Tags: make([]byte, 2),
	}
	e.twilightZone = NewTwilightZone(0)
	return e
}

// TestMDRPHoldsOrgDistanceWithNoFlags exercises the spec.md 8 MDRP example:
// with no round/minimum-distance flags set, the point is moved to
// reproduce the original (font-space) distance from rp0.
func TestMDRPHoldsOrgDistanceWithNoFlags(t *testing.T) {
	e := newPointEngine()
	e.gs.RP0 = 0
	e.gs.Loop = 1
	require.NoError(t, e.push(1)) // move point 1

	require.NoError(t, e.execMDRP(opMDRPBase))

	assert.Equal(t, F26Dot6(10<<6), e.glyphZone.Cur[1].X)
	assert.Equal(t, int32(0), e.gs.RP1)
	assert.Equal(t, int32(1), e.gs.RP2)
	assert.Equal(t, int32(0), e.gs.RP0, "setRP0 bit was not set")
}

// TestMDRPSetRP0Flag checks the low bit-4 "set rp0" flag rewires rp0 to
// the just-moved point.
func TestMDRPSetRP0Flag(t *testing.T) {
	e := newPointEngine()
	e.gs.RP0 = 0
	require.NoError(t, e.push(1))

	require.NoError(t, e.execMDRP(opMDRPBase|0x10))

	assert.Equal(t, int32(1), e.gs.RP0)
}

// TestMIRPMovesPointToCvtDistance exercises MIRP pulling a point to the
// distance recorded in the CVT, per spec.md 4.5.
func TestMIRPMovesPointToCvtDistance(t *testing.T) {
	e := newPointEngine()
	e.cvt = []int32{20 << 6}
	e.gs.RP0 = 0
	e.gs.AutoFlip = false
	e.gs.ControlValueCutIn = 1 << 20 // wide enough that the cvt value always wins

	require.NoError(t, e.push(1)) // point index
	require.NoError(t, e.push(0)) // cvt index, popped first

	require.NoError(t, e.execMIRP(opMIRPBase))

	assert.Equal(t, F26Dot6(20<<6), e.glyphZone.Cur[1].X)
}

func TestMSIRPSetsExactDistance(t *testing.T) {
	e := newPointEngine()
	e.gs.RP0 = 0

	require.NoError(t, e.push(1))    // point index
	require.NoError(t, e.push(5<<6)) // distance

	require.NoError(t, e.execMSIRP(true))

	assert.Equal(t, F26Dot6(5<<6), e.glyphZone.Cur[1].X)
	assert.Equal(t, int32(1), e.gs.RP0)
}

// TestALIGNPTSMeetsInTheMiddle moves both points to their shared midpoint.
func TestALIGNPTSMeetsInTheMiddle(t *testing.T) {
	e := newPointEngine()
	require.NoError(t, e.push(0))
	require.NoError(t, e.push(1))

	require.NoError(t, e.execALIGNPTS())

	assert.Equal(t, e.glyphZone.Cur[0].X, e.glyphZone.Cur[1].X)
	assert.Equal(t, F26Dot6(5<<6), e.glyphZone.Cur[0].X)
}

// TestISECTFindsCrossingPoint checks the two-segment intersection math
// against a simple right-angle crossing.
func TestISECTFindsCrossingPoint(t *testing.T) {
	e := newPointEngine()
	e.glyphZone = &Zone{
		// a0-a1: horizontal segment at y=0 from x=0 to x=10.
		// b0-b1: vertical segment at x=5 from y=-10 to y=10.
		// point 4 receives the intersection, (5,0).
		Org:  make([]Point, 5),
		Cur:  []Point{{X: 0, Y: 0}, {X: 10 << 6, Y: 0}, {X: 5 << 6, Y: -10 << 6}, {X: 5 << 6, Y: 10 << 6}, {}},
		Tags: make([]byte, 5),
	}
	require.NoError(t, e.push(0)) // a0
	require.NoError(t, e.push(1)) // a1
	require.NoError(t, e.push(2)) // b0
	require.NoError(t, e.push(3)) // b1
	require.NoError(t, e.push(4)) // destination point

	require.NoError(t, e.execISECT())

	assert.Equal(t, F26Dot6(5<<6), e.glyphZone.Cur[4].X)
	assert.Equal(t, F26Dot6(0), e.glyphZone.Cur[4].Y)
}
