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

func newTestEngineWithSize(t *testing.T, ppem int32) *Engine {
	t.Helper()
	cfg := Config{
		UnitsPerEm:           1000,
		MaxStackElements:     64,
		MaxStorage:           8,
		MaxFunctionDefs:      4,
		MaxTwilightPoints:    4,
		MaxInstructions:      1000,
		MaxCallStackDepth:    8,
		DeltaPointIndexOnTop: true,
	}
	e := NewEngine(cfg, nil, nil, []int32{500})
	require.NoError(t, e.SetSize(ppem, float64(ppem)))
	return e
}

// TestHintGlyphMDAPRoundsOntoGrid exercises the full driver lifecycle
// (SetSize then HintGlyph) with a single MDAP[round] instruction, the
// spec.md 8 "MDAP rounding" example.
func TestHintGlyphMDAPRoundsOntoGrid(t *testing.T) {
	e := newTestEngineWithSize(t, 16)
	in := GlyphInput{
		Orus:         []Point{{X: 500, Y: 0}},
		OnCurve:      []bool{true},
		Contours:     []int{0},
		Instructions: []byte{0xB0, 0, opMDAP1},
	}
	z, err := e.HintGlyph(in)
	require.NoError(t, err)
	assert.Equal(t, int32(0), int32(z.Cur[0].X)%64, "MDAP[round] must land on a pixel boundary")
}

func TestHintGlyphEmptyInstructionsLeavesScaledOutline(t *testing.T) {
	e := newTestEngineWithSize(t, 16)
	in := GlyphInput{
		Orus:     []Point{{X: 1000, Y: 0}},
		OnCurve:  []bool{true},
		Contours: []int{0},
	}
	z, err := e.HintGlyph(in)
	require.NoError(t, err)
	assert.Equal(t, F26Dot6(16<<6), z.Cur[0].X)
}

func TestFpgmRunsOnce(t *testing.T) {
	cfg := Config{
		UnitsPerEm: 1000, MaxStackElements: 64, MaxStorage: 8,
		MaxFunctionDefs: 4, MaxTwilightPoints: 4,
		MaxInstructions: 1000, MaxCallStackDepth: 8,
	}
	// storage[0] += 1: push 0; DUP; RS; push 1; ADD; WS
	fpgm := []byte{0xB0, 0, opDUP, opRS, 0xB0, 1, opADD, opWS}
	e := NewEngine(cfg, fpgm, nil, nil)
	require.NoError(t, e.ExecuteFontProgram())
	require.NoError(t, e.ExecuteFontProgram()) // second call is a no-op
	assert.Equal(t, int32(1), e.storage[0], "a second fpgm run would leave 2")
}
