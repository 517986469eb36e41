// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToGrid(t *testing.T) {
	assert.Equal(t, F26Dot6(1<<6), roundToGrid(40, 0))
	assert.Equal(t, F26Dot6(0), roundToGrid(31, 0))
	assert.Equal(t, F26Dot6(-1<<6), roundToGrid(-40, 0))
}

func TestRoundDownUpToGrid(t *testing.T) {
	assert.Equal(t, F26Dot6(0), roundDownToGrid(40, 0))
	assert.Equal(t, F26Dot6(1<<6), roundUpToGrid(1, 0))
	assert.Equal(t, F26Dot6(0), roundUpToGrid(0, 0))
}

func TestRoundOffPassesThrough(t *testing.T) {
	gs := defaultGraphicsState()
	gs.RoundState = RoundOff
	assert.Equal(t, F26Dot6(37), round(37, &gs))
}

func TestParseSuperRoundSelector0x40(t *testing.T) {
	// selector 0x40: period=1<<6(default group), phase=0, bits=0 -> threshold=period-1
	p := parseSuperRound(0x40, false)
	assert.Equal(t, F26Dot6(1<<6), p.period)
	assert.Equal(t, F26Dot6(0), p.phase)
	assert.Equal(t, F26Dot6(1<<6-1), p.threshold)
}
