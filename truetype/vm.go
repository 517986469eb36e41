// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// runProgram executes code (interpreted as belonging to cr) from offset
// zero until it falls off the end or an instruction returns an error (an
// ENDF reached at this level is an ErrMissingMarker error). It is the single entry point vectorops/pointops/control/etc.
// opcode handlers assume is already active (e.code/e.ip/e.currentRange
// are only ever set here and by call/return bookkeeping in control.go).
func (e *Engine) runProgram(code []byte, cr CodeRange) error {
	savedCode, savedSize, savedIP, savedRange := e.code, e.codeSize, e.ip, e.currentRange
	e.code, e.codeSize, e.ip, e.currentRange = code, len(code), 0, cr
	if cr == RangeGlyph {
		e.glyphCode = code
	}
	defer func() {
		e.code, e.codeSize, e.ip, e.currentRange = savedCode, savedSize, savedIP, savedRange
	}()

	for e.ip < e.codeSize {
		if err := e.step(); err != nil {
			return err
		}
	}
	return nil
}

// step decodes and executes one instruction, advancing e.ip. The
// relative jumps (JMPR/JROT/JROF) set e.ip to their target and mark the
// step as jumped so it is not advanced again; IF/ELSE/FDEF/IDEF leave
// e.ip on the marker they skipped to and CALL/LOOPCALL restore the
// caller's e.ip, so the normal increment below moves past those.
func (e *Engine) step() error {
	if e.instrCount >= e.cfg.MaxInstructions {
		return e.fail(ErrInstructionLimit)
	}
	e.instrCount++

	op := e.code[e.ip]
	jumped := false
	var err error

	switch {
	case op == opPUSHB000 || (op > opPUSHB000 && op < opPUSHB000+8):
		err = e.execPushBytes(int(op-opPUSHB000) + 1)
	case op == opPUSHW000 || (op > opPUSHW000 && op < opPUSHW000+8):
		err = e.execPushWords(int(op-opPUSHW000) + 1)
	case op == opNPUSHB:
		err = e.execNPushBytes()
	case op == opNPUSHW:
		err = e.execNPushWords()

	case op >= opMDRPBase && op < opMIRPBase:
		err = e.execMDRP(op)
	case op >= opMIRPBase:
		err = e.execMIRP(op)

	default:
		err = e.dispatchSimple(op)
		jumped = e.lastStepJumped
		e.lastStepJumped = false
	}
	if err != nil {
		return err
	}
	if !jumped {
		e.ip++
	}
	return nil
}

// lastStepJumped is set by the relative-jump handlers (JMPR/JROT/JROF)
// to tell step not to auto-advance e.ip, since they already left it
// where execution should resume.
//
// It lives as an Engine field (rather than a return value threaded
// through dispatchSimple) purely to keep the opcode table in
// dispatchSimple a flat switch of one-line calls.
func (e *Engine) setJumped() { e.lastStepJumped = true }

func (e *Engine) fail(kind ErrorKind) error {
	return newHintError(kind, e.currentOpcode(), e.ip)
}

func (e *Engine) currentOpcode() byte {
	if e.ip < 0 || e.ip >= e.codeSize {
		return 0
	}
	return e.code[e.ip]
}

// --- operand stack ---

func (e *Engine) push(v int32) error {
	if e.stackTop >= len(e.stack) {
		return e.fail(ErrStackOverflow)
	}
	e.stack[e.stackTop] = v
	e.stackTop++
	return nil
}

func (e *Engine) pop() (int32, error) {
	if e.stackTop <= 0 {
		return 0, e.fail(ErrStackUnderflow)
	}
	e.stackTop--
	return e.stack[e.stackTop], nil
}

func (e *Engine) popF26() (F26Dot6, error) {
	v, err := e.pop()
	return F26Dot6(v), err
}

func (e *Engine) peek(fromTop int) (int32, error) {
	i := e.stackTop - 1 - fromTop
	if i < 0 {
		return 0, e.fail(ErrStackUnderflow)
	}
	return e.stack[i], nil
}

func (e *Engine) popN(n int) ([]int32, error) {
	if n < 0 || e.stackTop < n {
		return nil, e.fail(ErrStackUnderflow)
	}
	out := make([]int32, n)
	copy(out, e.stack[e.stackTop-n:e.stackTop])
	e.stackTop -= n
	return out, nil
}

// --- variable-length push opcodes ---

func (e *Engine) execPushBytes(n int) error {
	for i := 0; i < n; i++ {
		if e.ip+1+i >= e.codeSize {
			return e.fail(ErrMissingMarker)
		}
		if err := e.push(int32(e.code[e.ip+1+i])); err != nil {
			return err
		}
	}
	e.ip += n
	return nil
}

func (e *Engine) execPushWords(n int) error {
	for i := 0; i < n; i++ {
		if e.ip+2+2*i > e.codeSize {
			return e.fail(ErrMissingMarker)
		}
		hi := int16(e.code[e.ip+1+2*i])<<8 | int16(e.code[e.ip+2+2*i])
		if err := e.push(int32(hi)); err != nil {
			return err
		}
	}
	e.ip += 2 * n
	return nil
}

func (e *Engine) execNPushBytes() error {
	if e.ip+1 >= e.codeSize {
		return e.fail(ErrMissingMarker)
	}
	n := int(e.code[e.ip+1])
	for i := 0; i < n; i++ {
		if e.ip+2+i >= e.codeSize {
			return e.fail(ErrMissingMarker)
		}
		if err := e.push(int32(e.code[e.ip+2+i])); err != nil {
			return err
		}
	}
	e.ip += 1 + n
	return nil
}

func (e *Engine) execNPushWords() error {
	if e.ip+1 >= e.codeSize {
		return e.fail(ErrMissingMarker)
	}
	n := int(e.code[e.ip+1])
	for i := 0; i < n; i++ {
		if e.ip+3+2*i > e.codeSize {
			return e.fail(ErrMissingMarker)
		}
		hi := int16(e.code[e.ip+2+2*i])<<8 | int16(e.code[e.ip+3+2*i])
		if err := e.push(int32(hi)); err != nil {
			return err
		}
	}
	e.ip += 1 + 2*n
	return nil
}

// skipForward moves e.ip to the end of a structured region (IF/ELSE
// body or a top-level FDEF body) by tracking nesting of IF/FDEF against
// EIF/ENDF, leaving e.ip on the first unmatched stop opcode (or on ELSE,
// when requested). It consumes the variable-length payload of any push
// opcode encountered along the way so nesting bytes are never
// misread as opcodes.
func (e *Engine) skipForward(stopAtElse bool) (stoppedAtElse bool, err error) {
	depth := 0
	ip := e.ip + 1
	for {
		if ip >= e.codeSize {
			return false, e.fail(ErrMissingMarker)
		}
		op := e.code[ip]
		switch {
		case op == opPUSHB000 || (op > opPUSHB000 && op < opPUSHB000+8):
			ip += int(op-opPUSHB000) + 2
			continue
		case op == opPUSHW000 || (op > opPUSHW000 && op < opPUSHW000+8):
			ip += 2*(int(op-opPUSHW000)+1) + 1
			continue
		case op == opNPUSHB:
			if ip+1 >= e.codeSize {
				return false, e.fail(ErrMissingMarker)
			}
			ip += 2 + int(e.code[ip+1])
			continue
		case op == opNPUSHW:
			if ip+1 >= e.codeSize {
				return false, e.fail(ErrMissingMarker)
			}
			ip += 2 + 2*int(e.code[ip+1])
			continue
		case op == opIF || op == opFDEF:
			depth++
		case op == opELSE:
			if depth == 0 && stopAtElse {
				e.ip = ip
				return true, nil
			}
		case op == opEIF:
			if depth == 0 {
				e.ip = ip
				return false, nil
			}
			depth--
		case op == opENDF:
			if depth == 0 {
				e.ip = ip
				return false, nil
			}
			depth--
		}
		ip++
	}
}
