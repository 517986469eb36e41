// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "fmt"

// codeForRange returns the bytecode buffer backing cr. RangeGlyph has no
// persistent buffer of its own (a glyph program is only ever the
// outermost thing being run, passed directly to runProgram), so a
// function defined while executing a glyph program is read back out of
// e.glyphCode, captured by runProgram for exactly this purpose.
func (e *Engine) codeForRange(cr CodeRange) []byte {
	switch cr {
	case RangeFont:
		return e.fpgm
	case RangeCVT:
		return e.prep
	default:
		return e.glyphCode
	}
}

func (e *Engine) execIF() error {
	cond, err := e.pop()
	if err != nil {
		return err
	}
	if cond != 0 {
		return nil
	}
	_, err = e.skipForward(true)
	return err
}

func (e *Engine) execELSE() error {
	_, err := e.skipForward(false)
	return err
}

func (e *Engine) execEIF() error {
	return nil
}

func (e *Engine) execJMPR() error {
	offset, err := e.pop()
	if err != nil {
		return err
	}
	e.ip += int(offset)
	e.setJumped()
	return nil
}

func (e *Engine) execJROT() error {
	offset, err := e.pop()
	if err != nil {
		return err
	}
	test, err := e.pop()
	if err != nil {
		return err
	}
	if test != 0 {
		e.ip += int(offset)
		e.setJumped()
	}
	return nil
}

func (e *Engine) execJROF() error {
	offset, err := e.pop()
	if err != nil {
		return err
	}
	test, err := e.pop()
	if err != nil {
		return err
	}
	if test == 0 {
		e.ip += int(offset)
		e.setJumped()
	}
	return nil
}

func (e *Engine) execFDEF() error {
	idx, err := e.pop()
	if err != nil {
		return err
	}
	if idx < 0 || int(idx) >= len(e.fdefs) {
		return e.fail(ErrBadFunction)
	}
	start := e.ip + 1
	if _, err := e.skipForward(false); err != nil {
		return err
	}
	e.fdefs[idx] = FunctionDef{Start: start, End: e.ip, Range: e.currentRange, Active: true}
	return nil
}

func (e *Engine) execIDEF() error {
	opcode, err := e.pop()
	if err != nil {
		return err
	}
	start := e.ip + 1
	if _, err := e.skipForward(false); err != nil {
		return err
	}
	e.idefs[byte(opcode)] = FunctionDef{Start: start, End: e.ip, Range: e.currentRange, Active: true}
	return nil
}

func (e *Engine) execENDF() error {
	return e.fail(ErrMissingMarker)
}

func (e *Engine) execCALL() error {
	idx, err := e.pop()
	if err != nil {
		return err
	}
	def, err := e.lookupFunction(idx)
	if err != nil {
		return err
	}
	return e.callFunction(def, 1)
}

func (e *Engine) execLOOPCALL() error {
	idx, err := e.pop()
	if err != nil {
		return err
	}
	count, err := e.pop()
	if err != nil {
		return err
	}
	def, err := e.lookupFunction(idx)
	if err != nil {
		return err
	}
	if count <= 0 {
		return nil
	}
	return e.callFunction(def, count)
}

func (e *Engine) lookupFunction(idx int32) (FunctionDef, error) {
	if idx < 0 || int(idx) >= len(e.fdefs) || !e.fdefs[idx].Active {
		return FunctionDef{}, e.fail(ErrBadFunction)
	}
	return e.fdefs[idx], nil
}

// callFunction runs def's body count times, sharing the operand stack,
// graphics state, storage and zones with the caller but swapping in the
// callee's own code buffer and instruction pointer range. It is the one
// place besides runProgram that drives the fetch-execute loop, since
// CALL/LOOPCALL must return control to the exact instruction following
// the call rather than falling off the end of a buffer.
func (e *Engine) callFunction(def FunctionDef, times int32) error {
	if len(e.callStack) >= e.cfg.MaxCallStackDepth {
		return e.fail(ErrCallStackOverflow)
	}
	body := e.codeForRange(def.Range)
	savedCode, savedSize, savedIP, savedRange := e.code, e.codeSize, e.ip, e.currentRange

	e.callStack = append(e.callStack, callRecord{callerIP: savedIP, callerRange: savedRange, def: def, count: times})
	defer func() { e.callStack = e.callStack[:len(e.callStack)-1] }()

	for i := int32(0); i < times; i++ {
		e.code, e.codeSize, e.currentRange = body, len(body), def.Range
		e.ip = def.Start
		for e.ip < def.End {
			if err := e.step(); err != nil {
				e.code, e.codeSize, e.ip, e.currentRange = savedCode, savedSize, savedIP, savedRange
				if he, ok := err.(*HintError); ok {
					return wrapHintError(he, fmt.Sprintf("function at %d (call %d/%d)", def.Start, i+1, times))
				}
				return err
			}
		}
	}
	e.code, e.codeSize, e.ip, e.currentRange = savedCode, savedSize, savedIP, savedRange
	return nil
}
