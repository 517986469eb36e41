// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "math"

// projCoord returns p's coordinate along unit vector v.
func projCoord(p Point, v Vec2) F26Dot6 {
	return mulFix14(p.X, v.X) + mulFix14(p.Y, v.Y)
}

// maskBackwardCompat applies spec.md 4.9's light-hinting/backward-
// compatibility suppression to a movePoint delta: X is zeroed whenever
// either flag is active, Y only once backwardCompat is fully locked
// (0x7, "after both IUPs").
func (e *Engine) maskBackwardCompat(dx, dy F26Dot6) (F26Dot6, F26Dot6) {
	if e.lightMode || e.backwardCompat != 0 {
		dx = 0
	}
	if e.backwardCompat == 0x7 {
		dy = 0
	}
	return dx, dy
}

// moveAlongFreedom shifts zone point idx by distance measured along the
// projection vector, applying the displacement along the freedom
// vector -- the general "direct move" primitive every point-movement
// opcode bottoms out in (spec.md 4.5, "movePoint"). dx/dy are computed
// directly via the dot-product rescale in one rounding division each,
// matching movePoint's documented `dx = mulDiv(distance, fv.x, dot)`.
func (e *Engine) moveAlongFreedom(z *Zone, idx int32, distance F26Dot6) {
	if idx < 0 || int(idx) >= z.len() {
		return
	}
	fv, pv := e.gs.FreeVector, e.gs.ProjVector
	dot := dotFix14(fv.X, fv.Y, pv.X, pv.Y)
	if dot == 0 {
		return
	}
	dx := F26Dot6(mulDiv(int32(distance), int32(fv.X), dot))
	dy := F26Dot6(mulDiv(int32(distance), int32(fv.Y), dot))
	dx, dy = e.maskBackwardCompat(dx, dy)
	p := &z.Cur[idx]
	p.X += dx
	p.Y += dy
	z.touch(idx, fv)
}

func (e *Engine) pointIn(zp ZonePointer, idx int32) (Point, error) {
	z := e.zone(zp)
	if idx < 0 || int(idx) >= z.len() {
		return Point{}, e.fail(ErrBadPointIndex)
	}
	return z.Cur[idx], nil
}

func (e *Engine) execMDAP(doRound bool) error {
	idx, err := e.pop()
	if err != nil {
		return err
	}
	z := e.zone(e.gs.ZP0)
	if idx < 0 || int(idx) >= z.len() {
		return e.fail(ErrBadPointIndex)
	}
	cur := projCoord(z.Cur[idx], e.gs.ProjVector)
	target := cur
	if doRound {
		target = round(cur, &e.gs)
	}
	e.moveAlongFreedom(z, idx, target-cur)
	e.gs.RP0, e.gs.RP1 = idx, idx
	return nil
}

func (e *Engine) execMIAP(doRound bool) error {
	cvtIdx, err := e.pop()
	if err != nil {
		return err
	}
	idx, err := e.pop()
	if err != nil {
		return err
	}
	z := e.zone(e.gs.ZP0)
	if idx < 0 || int(idx) >= z.len() {
		return e.fail(ErrBadPointIndex)
	}
	target := e.cvtAt(cvtIdx)
	if e.gs.ZP0 == TwilightZone {
		z.Org[idx].X = mulFix14(target, e.gs.FreeVector.X)
		z.Org[idx].Y = mulFix14(target, e.gs.FreeVector.Y)
		z.Cur[idx] = z.Org[idx]
	}
	cur := projCoord(z.Cur[idx], e.gs.ProjVector)
	if doRound {
		if abs26(target-cur) > e.gs.ControlValueCutIn {
			target = cur
		}
		target = round(target, &e.gs)
	}
	e.moveAlongFreedom(z, idx, target-cur)
	e.gs.RP0, e.gs.RP1 = idx, idx
	return nil
}

// applySingleWidth replaces dist with a signed singleWidthValue when it
// is within the single-width cut-in of it, per spec.md 4.5.
func (gs *GraphicsState) applySingleWidth(dist F26Dot6) F26Dot6 {
	if abs26(dist-gs.SingleWidthValue) < gs.SingleWidthCutIn {
		if dist < 0 {
			return -gs.SingleWidthValue
		}
		return gs.SingleWidthValue
	}
	return dist
}

func clampMinimum(dist, min F26Dot6) F26Dot6 {
	if dist >= 0 {
		if dist < min {
			return min
		}
		return dist
	}
	if dist > -min {
		return -min
	}
	return dist
}

func (e *Engine) execMDRP(opcode byte) error {
	flags := decodeMdrpMirpFlags(opcode)
	idx, err := e.pop()
	if err != nil {
		return err
	}
	z0 := e.zone(e.gs.ZP0)
	z1 := e.zone(e.gs.ZP1)
	if idx < 0 || int(idx) >= z1.len() || int(e.gs.RP0) >= z0.len() || e.gs.RP0 < 0 {
		return e.fail(ErrBadPointIndex)
	}
	orgDist := projCoord(z1.Org[idx], e.gs.DualVector) - projCoord(z0.Org[e.gs.RP0], e.gs.DualVector)
	dist := e.gs.applySingleWidth(orgDist)
	if flags.round {
		dist = roundWithDistanceType(dist, flags.distanceType, &e.gs)
	}
	if flags.minimumDist {
		dist = clampMinimum(dist, e.gs.MinimumDistance)
	}
	curDist := projCoord(z1.Cur[idx], e.gs.ProjVector) - projCoord(z0.Cur[e.gs.RP0], e.gs.ProjVector)
	e.moveAlongFreedom(z1, idx, dist-curDist)

	e.gs.RP1 = e.gs.RP0
	e.gs.RP2 = idx
	if flags.setRP0 {
		e.gs.RP0 = idx
	}
	return nil
}

func (e *Engine) execMIRP(opcode byte) error {
	flags := decodeMdrpMirpFlags(opcode)
	cvtIdx, err := e.pop()
	if err != nil {
		return err
	}
	idx, err := e.pop()
	if err != nil {
		return err
	}
	z0 := e.zone(e.gs.ZP0)
	z1 := e.zone(e.gs.ZP1)
	if idx < 0 || int(idx) >= z1.len() || int(e.gs.RP0) >= z0.len() || e.gs.RP0 < 0 {
		return e.fail(ErrBadPointIndex)
	}
	cvtDist := e.cvtAt(cvtIdx)
	cvtDist = e.gs.applySingleWidth(cvtDist)
	if e.gs.ZP1 == TwilightZone {
		z1.Org[idx].X = z0.Org[e.gs.RP0].X + mulFix14(cvtDist, e.gs.FreeVector.X)
		z1.Org[idx].Y = z0.Org[e.gs.RP0].Y + mulFix14(cvtDist, e.gs.FreeVector.Y)
		z1.Cur[idx] = z1.Org[idx]
	}
	orgDist := projCoord(z1.Org[idx], e.gs.DualVector) - projCoord(z0.Org[e.gs.RP0], e.gs.DualVector)
	if e.gs.AutoFlip && sign26(cvtDist) != sign26(orgDist) && cvtDist != 0 {
		cvtDist = -cvtDist
	}
	dist := cvtDist
	if e.gs.ZP0 == GlyphZone && e.gs.ZP1 == GlyphZone {
		if abs26(cvtDist-orgDist) > e.gs.ControlValueCutIn {
			dist = orgDist
		}
	}
	if flags.round {
		dist = roundWithDistanceType(dist, flags.distanceType, &e.gs)
	}
	if flags.minimumDist {
		dist = clampMinimum(dist, e.gs.MinimumDistance)
	}
	curDist := projCoord(z1.Cur[idx], e.gs.ProjVector) - projCoord(z0.Cur[e.gs.RP0], e.gs.ProjVector)
	e.moveAlongFreedom(z1, idx, dist-curDist)

	e.gs.RP1 = e.gs.RP0
	e.gs.RP2 = idx
	if flags.setRP0 {
		e.gs.RP0 = idx
	}
	return nil
}

func (e *Engine) execMSIRP(setRP0 bool) error {
	dist, err := e.popF26()
	if err != nil {
		return err
	}
	idx, err := e.pop()
	if err != nil {
		return err
	}
	z0 := e.zone(e.gs.ZP0)
	z1 := e.zone(e.gs.ZP1)
	if idx < 0 || int(idx) >= z1.len() || int(e.gs.RP0) >= z0.len() || e.gs.RP0 < 0 {
		return e.fail(ErrBadPointIndex)
	}
	curDist := projCoord(z1.Cur[idx], e.gs.ProjVector) - projCoord(z0.Cur[e.gs.RP0], e.gs.ProjVector)
	e.moveAlongFreedom(z1, idx, dist-curDist)
	e.gs.RP1 = e.gs.RP0
	e.gs.RP2 = idx
	if setRP0 {
		e.gs.RP0 = idx
	}
	return nil
}

// refShiftDelta returns the projected displacement already applied to
// the reference point used by SHP/SHC/SHZ: how far its current position
// has moved from its original one.
func (e *Engine) refShiftDelta(useRP2 bool) F26Dot6 {
	var refZ ZonePointer
	var rp int32
	if useRP2 {
		refZ, rp = e.gs.ZP1, e.gs.RP2
	} else {
		refZ, rp = e.gs.ZP0, e.gs.RP1
	}
	z := e.zone(refZ)
	if rp < 0 || int(rp) >= z.len() {
		return 0
	}
	return projCoord(z.Cur[rp], e.gs.ProjVector) - projCoord(z.Org[rp], e.gs.ProjVector)
}

func (e *Engine) execSHP(useRP2 bool) error {
	delta := e.refShiftDelta(useRP2)
	z := e.zone(e.gs.ZP2)
	for i := int32(0); i < e.gs.Loop; i++ {
		idx, err := e.pop()
		if err != nil {
			return err
		}
		e.moveAlongFreedom(z, idx, delta)
	}
	e.gs.Loop = 1
	return nil
}

func (e *Engine) execSHC(useRP2 bool) error {
	delta := e.refShiftDelta(useRP2)
	idx, err := e.pop()
	if err != nil {
		return err
	}
	z := e.zone(e.gs.ZP2)
	start, end, ok := z.contourRange(int(idx))
	if !ok {
		return e.fail(ErrBadPointIndex)
	}
	for i := start; i <= end; i++ {
		e.moveAlongFreedom(z, int32(i), delta)
	}
	return nil
}

func (e *Engine) execSHZ(useRP2 bool) error {
	delta := e.refShiftDelta(useRP2)
	sel, err := e.pop()
	if err != nil {
		return err
	}
	z := e.zone(ZonePointer(sel))
	for i := 0; i < z.len(); i++ {
		e.moveAlongFreedom(z, int32(i), delta)
	}
	return nil
}

func (e *Engine) execSHPIX() error {
	d, err := e.popF26()
	if err != nil {
		return err
	}
	z := e.zone(e.gs.ZP2)
	dx, dy := mulFix14(d, e.gs.FreeVector.X), mulFix14(d, e.gs.FreeVector.Y)
	dx, dy = e.maskBackwardCompat(dx, dy)
	// Partially-locked compat (non-zero, not yet 0x7) additionally
	// requires the target already touched in Y, or a composite glyph
	// whose freedom vector has a Y component, per spec.md 4.9.
	partiallyLocked := e.backwardCompat != 0 && e.backwardCompat != 0x7
	for i := int32(0); i < e.gs.Loop; i++ {
		idx, err := e.pop()
		if err != nil {
			return err
		}
		if idx < 0 || int(idx) >= z.len() {
			return e.fail(ErrBadPointIndex)
		}
		if partiallyLocked && !z.touchedAlong(int(idx), TagTouchedY) &&
			!(e.isComposite && e.gs.FreeVector.Y != 0) {
			continue
		}
		z.Cur[idx].X += dx
		z.Cur[idx].Y += dy
		z.touch(idx, e.gs.FreeVector)
	}
	e.gs.Loop = 1
	return nil
}

func (e *Engine) execIP() error {
	z0 := e.zone(e.gs.ZP0)
	z1 := e.zone(e.gs.ZP1)
	z2 := e.zone(e.gs.ZP2)
	if int(e.gs.RP1) >= z0.len() || int(e.gs.RP2) >= z1.len() || e.gs.RP1 < 0 || e.gs.RP2 < 0 {
		return e.fail(ErrBadPointIndex)
	}
	orgA, orgB := projCoord(z0.Org[e.gs.RP1], e.gs.DualVector), projCoord(z1.Org[e.gs.RP2], e.gs.DualVector)
	curA, curB := projCoord(z0.Cur[e.gs.RP1], e.gs.ProjVector), projCoord(z1.Cur[e.gs.RP2], e.gs.ProjVector)
	lo, hi := orgA, orgB
	curLo, curHi := curA, curB
	if lo > hi {
		lo, hi = hi, lo
		curLo, curHi = curHi, curLo
	}
	for i := int32(0); i < e.gs.Loop; i++ {
		idx, err := e.pop()
		if err != nil {
			return err
		}
		if idx < 0 || int(idx) >= z2.len() {
			return e.fail(ErrBadPointIndex)
		}
		orgP := projCoord(z2.Org[idx], e.gs.DualVector)
		var newProj F26Dot6
		switch {
		case orgA == orgB:
			newProj = curA
		case orgP <= lo:
			newProj = curLo + (orgP - lo)
		case orgP >= hi:
			newProj = curHi + (orgP - hi)
		default:
			newProj = curA + F26Dot6(mulDiv(int32(orgP-orgA), int32(curB-curA), int32(orgB-orgA)))
		}
		curP := projCoord(z2.Cur[idx], e.gs.ProjVector)
		e.moveAlongFreedom(z2, idx, newProj-curP)
	}
	e.gs.Loop = 1
	return nil
}

func (e *Engine) execALIGNRP() error {
	z0 := e.zone(e.gs.ZP0)
	z1 := e.zone(e.gs.ZP1)
	if e.gs.RP0 < 0 || int(e.gs.RP0) >= z0.len() {
		return e.fail(ErrBadPointIndex)
	}
	rpProj := projCoord(z0.Cur[e.gs.RP0], e.gs.ProjVector)
	for i := int32(0); i < e.gs.Loop; i++ {
		idx, err := e.pop()
		if err != nil {
			return err
		}
		if idx < 0 || int(idx) >= z1.len() {
			return e.fail(ErrBadPointIndex)
		}
		e.moveAlongFreedom(z1, idx, rpProj-projCoord(z1.Cur[idx], e.gs.ProjVector))
	}
	e.gs.Loop = 1
	return nil
}

func (e *Engine) execALIGNPTS() error {
	p2, err := e.pop()
	if err != nil {
		return err
	}
	p1, err := e.pop()
	if err != nil {
		return err
	}
	z1 := e.zone(e.gs.ZP1)
	z0 := e.zone(e.gs.ZP0)
	if p1 < 0 || int(p1) >= z1.len() || p2 < 0 || int(p2) >= z0.len() {
		return e.fail(ErrBadPointIndex)
	}
	dist := projCoord(z0.Cur[p2], e.gs.ProjVector) - projCoord(z1.Cur[p1], e.gs.ProjVector)
	half := dist / 2
	e.moveAlongFreedom(z1, p1, half)
	e.moveAlongFreedom(z0, p2, half-dist)
	return nil
}

func (e *Engine) execISECT() error {
	point, err := e.pop()
	if err != nil {
		return err
	}
	b1, err := e.pop()
	if err != nil {
		return err
	}
	b0, err := e.pop()
	if err != nil {
		return err
	}
	a1, err := e.pop()
	if err != nil {
		return err
	}
	a0, err := e.pop()
	if err != nil {
		return err
	}
	z1 := e.zone(e.gs.ZP1)
	z0 := e.zone(e.gs.ZP0)
	z2 := e.zone(e.gs.ZP2)
	for _, idx := range []int32{a0, a1} {
		if idx < 0 || int(idx) >= z0.len() {
			return e.fail(ErrBadPointIndex)
		}
	}
	for _, idx := range []int32{b0, b1} {
		if idx < 0 || int(idx) >= z1.len() {
			return e.fail(ErrBadPointIndex)
		}
	}
	if point < 0 || int(point) >= z2.len() {
		return e.fail(ErrBadPointIndex)
	}
	pA0, pA1 := z0.Cur[a0], z0.Cur[a1]
	pB0, pB1 := z1.Cur[b0], z1.Cur[b1]

	dxA, dyA := float64(pA1.X-pA0.X), float64(pA1.Y-pA0.Y)
	dxB, dyB := float64(pB1.X-pB0.X), float64(pB1.Y-pB0.Y)
	denom := dxA*dyB - dyA*dxB
	if denom == 0 {
		z2.touch(point, Vec2{oneF2Dot14, oneF2Dot14})
		return nil
	}
	t := (float64(pB0.X-pA0.X)*dyB - float64(pB0.Y-pA0.Y)*dxB) / denom
	ix := float64(pA0.X) + t*dxA
	iy := float64(pA0.Y) + t*dyA
	z2.Cur[point] = Point{X: F26Dot6(math.Round(ix)), Y: F26Dot6(math.Round(iy))}
	z2.touch(point, Vec2{oneF2Dot14, oneF2Dot14})
	return nil
}

func (e *Engine) execSCFS() error {
	v, err := e.popF26()
	if err != nil {
		return err
	}
	idx, err := e.pop()
	if err != nil {
		return err
	}
	z := e.zone(e.gs.ZP2)
	if idx < 0 || int(idx) >= z.len() {
		return e.fail(ErrBadPointIndex)
	}
	cur := projCoord(z.Cur[idx], e.gs.ProjVector)
	e.moveAlongFreedom(z, idx, v-cur)
	return nil
}

func (e *Engine) execUTP() error {
	idx, err := e.pop()
	if err != nil {
		return err
	}
	z := e.zone(e.gs.ZP0)
	if idx < 0 || int(idx) >= z.len() {
		return e.fail(ErrBadPointIndex)
	}
	var mask byte
	if e.gs.FreeVector.X != 0 {
		mask |= TagTouchedX
	}
	if e.gs.FreeVector.Y != 0 {
		mask |= TagTouchedY
	}
	z.untouch(idx, mask)
	return nil
}

func (e *Engine) execGC(useOriginal bool) error {
	idx, err := e.pop()
	if err != nil {
		return err
	}
	z := e.zone(e.gs.ZP2)
	if idx < 0 || int(idx) >= z.len() {
		return e.fail(ErrBadPointIndex)
	}
	if useOriginal {
		return e.push(int32(projCoord(z.Org[idx], e.gs.DualVector)))
	}
	return e.push(int32(projCoord(z.Cur[idx], e.gs.ProjVector)))
}

func (e *Engine) execMD(useOriginal bool) error {
	p2, err := e.pop()
	if err != nil {
		return err
	}
	p1, err := e.pop()
	if err != nil {
		return err
	}
	z0 := e.zone(e.gs.ZP0)
	z1 := e.zone(e.gs.ZP1)
	if p1 < 0 || int(p1) >= z1.len() || p2 < 0 || int(p2) >= z0.len() {
		return e.fail(ErrBadPointIndex)
	}
	if useOriginal {
		return e.push(int32(projCoord(z0.Org[p2], e.gs.DualVector) - projCoord(z1.Org[p1], e.gs.DualVector)))
	}
	return e.push(int32(projCoord(z0.Cur[p2], e.gs.ProjVector) - projCoord(z1.Cur[p1], e.gs.ProjVector)))
}

func (e *Engine) execFLIPPT() error {
	z := e.zone(e.gs.ZP0)
	for i := int32(0); i < e.gs.Loop; i++ {
		idx, err := e.pop()
		if err != nil {
			return err
		}
		if idx < 0 || int(idx) >= z.len() {
			return e.fail(ErrBadPointIndex)
		}
		z.Tags[idx] ^= TagOnCurve
	}
	e.gs.Loop = 1
	return nil
}

func (e *Engine) flipRange(on bool) error {
	hi, err := e.pop()
	if err != nil {
		return err
	}
	lo, err := e.pop()
	if err != nil {
		return err
	}
	z := e.zone(e.gs.ZP0)
	if lo < 0 || hi < 0 || int(hi) >= z.len() || lo > hi {
		return e.fail(ErrBadPointIndex)
	}
	for i := lo; i <= hi; i++ {
		if on {
			z.Tags[i] |= TagOnCurve
		} else {
			z.Tags[i] &^= TagOnCurve
		}
	}
	return nil
}

func (e *Engine) execFLIPRGON() error  { return e.flipRange(true) }
func (e *Engine) execFLIPRGOFF() error { return e.flipRange(false) }
