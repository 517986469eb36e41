// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

func (e *Engine) execDUP() error {
	v, err := e.peek(0)
	if err != nil {
		return err
	}
	return e.push(v)
}

func (e *Engine) execPOP() error {
	_, err := e.pop()
	return err
}

func (e *Engine) execCLEAR() error {
	e.stackTop = 0
	return nil
}

func (e *Engine) execSWAP() error {
	a, err := e.pop()
	if err != nil {
		return err
	}
	b, err := e.pop()
	if err != nil {
		return err
	}
	if err := e.push(a); err != nil {
		return err
	}
	return e.push(b)
}

func (e *Engine) execDEPTH() error {
	return e.push(int32(e.stackTop))
}

func (e *Engine) execCINDEX() error {
	k, err := e.pop()
	if err != nil {
		return err
	}
	if k < 1 || int(k) > e.stackTop {
		return e.fail(ErrStackUnderflow)
	}
	return e.push(e.stack[e.stackTop-int(k)])
}

func (e *Engine) execMINDEX() error {
	k, err := e.pop()
	if err != nil {
		return err
	}
	if k < 1 || int(k) > e.stackTop {
		return e.fail(ErrStackUnderflow)
	}
	i := e.stackTop - int(k)
	v := e.stack[i]
	copy(e.stack[i:e.stackTop-1], e.stack[i+1:e.stackTop])
	e.stack[e.stackTop-1] = v
	return nil
}

func (e *Engine) execROLL() error {
	if e.stackTop < 3 {
		return e.fail(ErrStackUnderflow)
	}
	i := e.stackTop - 3
	a, b, c := e.stack[i], e.stack[i+1], e.stack[i+2]
	e.stack[i], e.stack[i+1], e.stack[i+2] = b, c, a
	return nil
}

func (e *Engine) execWS() error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	loc, err := e.pop()
	if err != nil {
		return err
	}
	if loc < 0 || int(loc) >= len(e.storage) {
		return e.fail(ErrBadPointIndex)
	}
	e.storage[loc] = v
	return nil
}

func (e *Engine) execRS() error {
	loc, err := e.pop()
	if err != nil {
		return err
	}
	if loc < 0 || int(loc) >= len(e.storage) {
		return e.push(0)
	}
	return e.push(e.storage[loc])
}

func (e *Engine) execWCVTP() error {
	v, err := e.popF26()
	if err != nil {
		return err
	}
	loc, err := e.pop()
	if err != nil {
		return err
	}
	e.setCvtAt(loc, v)
	return nil
}

func (e *Engine) execWCVTF() error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	loc, err := e.pop()
	if err != nil {
		return err
	}
	e.setCvtAt(loc, scaleFUnits(v, e.scaleFix))
	return nil
}

func (e *Engine) execRCVT() error {
	loc, err := e.pop()
	if err != nil {
		return err
	}
	return e.push(int32(e.cvtAt(loc)))
}
