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

func newTestEngine(maxInstr int) *Engine {
	cfg := Config{
		UnitsPerEm:           1000,
		MaxStackElements:     64,
		MaxStorage:           8,
		MaxFunctionDefs:      4,
		MaxTwilightPoints:    4,
		MaxInstructions:      maxInstr,
		MaxCallStackDepth:    8,
		DeltaPointIndexOnTop: true,
	}
	e := NewEngine(cfg, nil, nil, nil)
	e.gs = defaultGraphicsState()
	return e
}

func TestPushAndAdd(t *testing.T) {
	e := newTestEngine(1000)
	code := []byte{0xB1, 5, 10, opADD} // PUSHB[1] 5 10, ADD
	require.NoError(t, e.runProgram(code, RangeGlyph))
	require.Equal(t, 1, e.stackTop)
	assert.Equal(t, int32(15), e.stack[0])
}

func TestIfElse(t *testing.T) {
	e := newTestEngine(1000)
	// push 0 (false); IF; push 1; ELSE; push 2; EIF
	code := []byte{0xB0, 0, opIF, 0xB0, 1, opELSE, 0xB0, 2, opEIF}
	require.NoError(t, e.runProgram(code, RangeGlyph))
	require.Equal(t, 1, e.stackTop)
	assert.Equal(t, int32(2), e.stack[0])
}

func TestIfElseTrueBranch(t *testing.T) {
	e := newTestEngine(1000)
	code := []byte{0xB0, 1, opIF, 0xB0, 1, opELSE, 0xB0, 2, opEIF}
	require.NoError(t, e.runProgram(code, RangeGlyph))
	require.Equal(t, 1, e.stackTop)
	assert.Equal(t, int32(1), e.stack[0])
}

func TestFunctionDefineAndCall(t *testing.T) {
	e := newTestEngine(1000)
	// fpgm: push 0 (fn index); FDEF; ADD; ENDF
	fpgm := []byte{0xB0, 0, opFDEF, opADD, opENDF}
	e.fpgm = fpgm // CALL reads RangeFont bodies from e.fpgm
	require.NoError(t, e.runProgram(fpgm, RangeFont))
	require.Len(t, e.fdefs, 4)
	assert.True(t, e.fdefs[0].Active)

	// glyph program: push 3, 4; push fn index 0; CALL
	glyph := []byte{0xB1, 3, 4, 0xB0, 0, opCALL}
	require.NoError(t, e.runProgram(glyph, RangeGlyph))
	require.Equal(t, 1, e.stackTop)
	assert.Equal(t, int32(7), e.stack[0])
}

func TestLoopCall(t *testing.T) {
	e := newTestEngine(1000)
	fpgm := []byte{0xB0, 0, opFDEF, 0xB0, 1, opADD, opENDF} // fn0: push 1, ADD
	e.fpgm = fpgm
	require.NoError(t, e.runProgram(fpgm, RangeFont))

	// seed 0 on the stack, then LOOPCALL fn 0 three times: 0+1+1+1=3
	glyph := []byte{0xB0, 0, 0xB0, 3, 0xB0, 0, opLOOPCALL}
	require.NoError(t, e.runProgram(glyph, RangeGlyph))
	require.Equal(t, 1, e.stackTop)
	assert.Equal(t, int32(3), e.stack[0])
}

func TestInstructionLimitTrips(t *testing.T) {
	e := newTestEngine(3)
	code := []byte{0xB0, 0, 0xB0, 0, 0xB0, 0, 0xB0, 0}
	err := e.runProgram(code, RangeGlyph)
	require.Error(t, err)
	var he *HintError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, ErrInstructionLimit, he.Kind)
}

func TestStackUnderflow(t *testing.T) {
	e := newTestEngine(1000)
	code := []byte{opADD}
	err := e.runProgram(code, RangeGlyph)
	require.Error(t, err)
	var he *HintError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, ErrStackUnderflow, he.Kind)
}

func TestUnknownOpcode(t *testing.T) {
	e := newTestEngine(1000)
	code := []byte{0x28} // reserved
	err := e.runProgram(code, RangeGlyph)
	require.Error(t, err)
	var he *HintError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, ErrUnknownOpcode, he.Kind)
}

func TestDupDepth(t *testing.T) {
	e := newTestEngine(1000)
	code := []byte{0xB0, 7, opDUP, opDEPTH}
	require.NoError(t, e.runProgram(code, RangeGlyph))
	require.Equal(t, 3, e.stackTop)
	assert.Equal(t, []int32{7, 7, 2}, e.stack[:3])
}
