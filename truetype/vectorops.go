// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// execSVTCA sets both the projection and freedom vectors to a coordinate
// axis: axis 0 is the Y axis (SVTCA[0]), axis 1 is the X axis (SVTCA[1]),
// matching the Apple instruction table's slightly surprising numbering.
func (e *Engine) execSVTCA(axis int) error {
	v := yAxis
	if axis == 1 {
		v = xAxis
	}
	e.gs.ProjVector, e.gs.FreeVector, e.gs.DualVector = v, v, v
	return nil
}

func (e *Engine) execSPVTCA(axis int) error {
	v := yAxis
	if axis == 1 {
		v = xAxis
	}
	e.gs.ProjVector, e.gs.DualVector = v, v
	return nil
}

func (e *Engine) execSFVTCA(axis int) error {
	v := yAxis
	if axis == 1 {
		v = xAxis
	}
	e.gs.FreeVector = v
	return nil
}

// linePoints reads the two point indices SPVTL/SFVTL/SDPVTL take (p2 on
// top of the stack, then p1), resolving p1 against zp1 and p2 against
// zp2.
func (e *Engine) linePoints() (p1, p2 Point, err error) {
	i2, err := e.pop()
	if err != nil {
		return
	}
	i1, err := e.pop()
	if err != nil {
		return
	}
	z2 := e.zone(e.gs.ZP2)
	z1 := e.zone(e.gs.ZP1)
	if int(i1) < 0 || int(i1) >= z1.len() || int(i2) < 0 || int(i2) >= z2.len() {
		err = e.fail(ErrBadPointIndex)
		return
	}
	return z1.Cur[i1], z2.Cur[i2], nil
}

func (e *Engine) execSPVTL(perpendicular bool) error {
	p1, p2, err := e.linePoints()
	if err != nil {
		return err
	}
	v := normalizeVec2(int32(p2.X-p1.X), int32(p2.Y-p1.Y))
	if perpendicular {
		v = perp(v)
	}
	e.gs.ProjVector, e.gs.DualVector = v, v
	return nil
}

func (e *Engine) execSFVTL(perpendicular bool) error {
	p1, p2, err := e.linePoints()
	if err != nil {
		return err
	}
	v := normalizeVec2(int32(p2.X-p1.X), int32(p2.Y-p1.Y))
	if perpendicular {
		v = perp(v)
	}
	e.gs.FreeVector = v
	return nil
}

// execSDPVTL is SPVTL's dual-projection-vector cousin: the same line but
// measured against Org instead of Cur, so the dual vector can track an
// unscaled/unhinted reference while ProjVector tracks the hinted one.
func (e *Engine) execSDPVTL(perpendicular bool) error {
	i2, err := e.pop()
	if err != nil {
		return err
	}
	i1, err := e.pop()
	if err != nil {
		return err
	}
	z2, z1 := e.zone(e.gs.ZP2), e.zone(e.gs.ZP1)
	if int(i1) < 0 || int(i1) >= z1.len() || int(i2) < 0 || int(i2) >= z2.len() {
		return e.fail(ErrBadPointIndex)
	}
	cp1, cp2 := z1.Cur[i1], z2.Cur[i2]
	op1, op2 := z1.Org[i1], z2.Org[i2]
	pv := normalizeVec2(int32(cp2.X-cp1.X), int32(cp2.Y-cp1.Y))
	dv := normalizeVec2(int32(op2.X-op1.X), int32(op2.Y-op1.Y))
	if perpendicular {
		pv, dv = perp(pv), perp(dv)
	}
	e.gs.ProjVector, e.gs.DualVector = pv, dv
	return nil
}

func (e *Engine) execSPVFS() error {
	y, err := e.pop()
	if err != nil {
		return err
	}
	x, err := e.pop()
	if err != nil {
		return err
	}
	v := normalizeVec2(x, y)
	e.gs.ProjVector, e.gs.DualVector = v, v
	return nil
}

func (e *Engine) execSFVFS() error {
	y, err := e.pop()
	if err != nil {
		return err
	}
	x, err := e.pop()
	if err != nil {
		return err
	}
	e.gs.FreeVector = normalizeVec2(x, y)
	return nil
}

func (e *Engine) execGPV() error {
	if err := e.push(int32(e.gs.ProjVector.X)); err != nil {
		return err
	}
	return e.push(int32(e.gs.ProjVector.Y))
}

func (e *Engine) execGFV() error {
	if err := e.push(int32(e.gs.FreeVector.X)); err != nil {
		return err
	}
	return e.push(int32(e.gs.FreeVector.Y))
}

func (e *Engine) execSFVTPV() error {
	e.gs.FreeVector = e.gs.ProjVector
	return nil
}

func (e *Engine) execSRP(which int) error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	e.gs.setRefPoint(which, v)
	return nil
}

func (e *Engine) execSZP(which int) error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	if v != 0 && v != 1 {
		return e.fail(ErrBadZone)
	}
	e.gs.setZonePointer(which, ZonePointer(v))
	return nil
}

func (e *Engine) execSZPS() error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	if v != 0 && v != 1 {
		return e.fail(ErrBadZone)
	}
	e.gs.ZP0, e.gs.ZP1, e.gs.ZP2 = ZonePointer(v), ZonePointer(v), ZonePointer(v)
	return nil
}

func (e *Engine) execSLOOP() error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	if v < 0 {
		return e.fail(ErrBadPointIndex)
	}
	e.gs.Loop = v
	return nil
}

func (e *Engine) execSMD() error {
	v, err := e.popF26()
	if err != nil {
		return err
	}
	e.gs.MinimumDistance = v
	return nil
}

func (e *Engine) execRTG() error {
	e.gs.RoundState = RoundToGrid
	return nil
}
func (e *Engine) execRTHG() error {
	e.gs.RoundState = RoundToHalfGrid
	return nil
}
func (e *Engine) execRTDG() error {
	e.gs.RoundState = RoundToDoubleGrid
	return nil
}
func (e *Engine) execROFF() error {
	e.gs.RoundState = RoundOff
	return nil
}
func (e *Engine) execRUTG() error {
	e.gs.RoundState = RoundUpToGrid
	return nil
}
func (e *Engine) execRDTG() error {
	e.gs.RoundState = RoundDownToGrid
	return nil
}

func (e *Engine) execSROUND() error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	e.gs.RoundState = RoundSuper
	e.gs.SuperRound = parseSuperRound(v, false)
	return nil
}

func (e *Engine) execS45ROUND() error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	e.gs.RoundState = RoundSuper45
	e.gs.SuperRound = parseSuperRound(v, true)
	return nil
}

func (e *Engine) execSCVTCI() error {
	v, err := e.popF26()
	if err != nil {
		return err
	}
	e.gs.ControlValueCutIn = v
	return nil
}

func (e *Engine) execSSWCI() error {
	v, err := e.popF26()
	if err != nil {
		return err
	}
	e.gs.SingleWidthCutIn = v
	return nil
}

func (e *Engine) execSSW() error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	e.gs.SingleWidthValue = scaleFUnits(v, e.scaleFix)
	return nil
}

func (e *Engine) execINSTCTRL() error {
	sel, err := e.pop()
	if err != nil {
		return err
	}
	val, err := e.pop()
	if err != nil {
		return err
	}
	var bit uint8
	switch sel {
	case 1:
		bit = instructControlInhibitGridFit
	case 2:
		bit = instructControlIgnoreCVT
	case 3:
		bit = instructControlSubpixelToggle
	default:
		return nil
	}
	if val != 0 {
		e.gs.InstructControl |= bit
	} else {
		e.gs.InstructControl &^= bit
	}
	if bit == instructControlInhibitGridFit {
		e.gridFitInhibited = val != 0
	}
	if bit == instructControlSubpixelToggle && e.currentRange == RangeGlyph {
		if val != 0 {
			e.backwardCompat = 4
		} else {
			e.backwardCompat = 0
		}
	}
	return nil
}

// execGETINFO reports a minimal, FreeType-like capability word: scalar
// version 40 (a "no subpixel hinting, no ClearType" TrueType engine),
// rotation/stretch bits left clear since this engine applies neither.
func (e *Engine) execGETINFO() error {
	sel, err := e.pop()
	if err != nil {
		return err
	}
	var out int32
	if sel&0x01 != 0 {
		out |= 40
	}
	if sel&0x20 != 0 && e.gs.InstructControl&instructControlSubpixelToggle != 0 {
		out |= 1 << 9
	}
	return e.push(out)
}

func (e *Engine) execMPPEM() error {
	return e.push(e.ppem)
}

func (e *Engine) execMPS() error {
	return e.push(int32(e.pointSize))
}

func (e *Engine) execFLIPON() error {
	e.gs.AutoFlip = true
	return nil
}
func (e *Engine) execFLIPOFF() error {
	e.gs.AutoFlip = false
	return nil
}

func (e *Engine) execSCANCTRL() error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	e.gs.ScanControl = v != 0
	return nil
}

func (e *Engine) execSCANTYPE() error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	e.gs.ScanType = v
	return nil
}

func (e *Engine) execSANGW() error {
	_, err := e.pop()
	return err
}

func (e *Engine) execAA() error {
	_, err := e.pop()
	return err
}

func (e *Engine) execDEBUG() error {
	_, err := e.pop()
	return err
}

func (e *Engine) execSDB() error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	e.gs.DeltaBase = v
	return nil
}

func (e *Engine) execSDS() error {
	v, err := e.pop()
	if err != nil {
		return err
	}
	e.gs.DeltaShift = v
	return nil
}
