// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

func (e *Engine) binop(f func(a, b int32) (int32, error)) error {
	b, err := e.pop()
	if err != nil {
		return err
	}
	a, err := e.pop()
	if err != nil {
		return err
	}
	v, err := f(a, b)
	if err != nil {
		return err
	}
	return e.push(v)
}

func (e *Engine) unop(f func(a int32) int32) error {
	a, err := e.pop()
	if err != nil {
		return err
	}
	return e.push(f(a))
}

func (e *Engine) execADD() error {
	return e.binop(func(a, b int32) (int32, error) { return a + b, nil })
}

func (e *Engine) execSUB() error {
	return e.binop(func(a, b int32) (int32, error) { return a - b, nil })
}

func (e *Engine) execMUL() error {
	return e.binop(func(a, b int32) (int32, error) { return mulDiv(a, b, 1<<6), nil })
}

func (e *Engine) execDIV() error {
	return e.binop(func(a, b int32) (int32, error) {
		if b == 0 {
			return 0, e.fail(ErrDivByZero)
		}
		return mulDiv(a, 1<<6, b), nil
	})
}

func (e *Engine) execABS() error {
	return e.unop(func(a int32) int32 {
		if a < 0 {
			return -a
		}
		return a
	})
}

func (e *Engine) execNEG() error {
	return e.unop(func(a int32) int32 { return -a })
}

func (e *Engine) execFLOOR() error {
	return e.unop(func(a int32) int32 { return int32(F26Dot6(a).Floor()) << 6 })
}

func (e *Engine) execCEILING() error {
	return e.unop(func(a int32) int32 { return int32(F26Dot6(a).Ceil()) << 6 })
}

func (e *Engine) execMIN() error {
	return e.binop(func(a, b int32) (int32, error) {
		if a < b {
			return a, nil
		}
		return b, nil
	})
}

func (e *Engine) execMAX() error {
	return e.binop(func(a, b int32) (int32, error) {
		if a > b {
			return a, nil
		}
		return b, nil
	})
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func (e *Engine) execLT() error {
	return e.binop(func(a, b int32) (int32, error) { return boolInt(a < b), nil })
}

func (e *Engine) execLTEQ() error {
	return e.binop(func(a, b int32) (int32, error) { return boolInt(a <= b), nil })
}

func (e *Engine) execGT() error {
	return e.binop(func(a, b int32) (int32, error) { return boolInt(a > b), nil })
}

func (e *Engine) execGTEQ() error {
	return e.binop(func(a, b int32) (int32, error) { return boolInt(a >= b), nil })
}

func (e *Engine) execEQ() error {
	return e.binop(func(a, b int32) (int32, error) { return boolInt(a == b), nil })
}

func (e *Engine) execNEQ() error {
	return e.binop(func(a, b int32) (int32, error) { return boolInt(a != b), nil })
}

// execODD and execEVEN round to the nearest integer pixel (bias 32) and
// test bit 6 of the result (spec.md 4.8), using the currently active
// RoundState -- not a hardcoded mode -- matching real FreeType, which
// consults round() here exactly as ROUND[ab] does.
func (e *Engine) execODD() error {
	return e.unop(func(a int32) int32 {
		return boolInt(int32(round(F26Dot6(a), &e.gs))/64%2 != 0)
	})
}

func (e *Engine) execEVEN() error {
	return e.unop(func(a int32) int32 {
		return boolInt(int32(round(F26Dot6(a), &e.gs))/64%2 == 0)
	})
}

func (e *Engine) execAND() error {
	return e.binop(func(a, b int32) (int32, error) { return boolInt(a != 0 && b != 0), nil })
}

func (e *Engine) execOR() error {
	return e.binop(func(a, b int32) (int32, error) { return boolInt(a != 0 || b != 0), nil })
}

func (e *Engine) execNOT() error {
	return e.unop(func(a int32) int32 { return boolInt(a == 0) })
}

// execROUND implements ROUND[ab]: distance types 0..3 (gray/black/white)
// all apply the current rounding state identically in this engine, since
// it has no notion of color-specific compensation (see compensate in
// rounding.go).
func (e *Engine) execROUND() error {
	return e.unop(func(a int32) int32 { return int32(round(F26Dot6(a), &e.gs)) })
}

// execNROUND is ROUND's no-op-compensation twin: the distance passes
// through engine compensation (a no-op here) without being snapped to
// the rounding grid.
func (e *Engine) execNROUND() error {
	return e.unop(func(a int32) int32 { return int32(F26Dot6(a) + compensate(F26Dot6(a), &e.gs)) })
}
