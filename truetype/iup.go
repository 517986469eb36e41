// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// iupInterpolateRun fills in the Cur coordinate (picked by get/set) of
// every untouched point of the contour [start, end], taking each run
// between consecutive touched points of touchedAbs (absolute indices; a
// run may wrap across the contour's seam) and applying the same
// two-point interpolate-or-shift rule IP uses, just along a single
// axis instead of the projection vector. Grounded on spec.md 4.6's IUP
// description of "two-point, untouched-point interpolation per contour".
//
// Per spec.md 4.6, the ratio/position comparisons (which side of an
// anchor a point falls on, and the interpolation fraction) are made in
// **unscaled-original** (orus) space; org and cur are consulted only to
// compute the resulting delta or affine offset, never to decide a
// branch. The anchors' orus_a/orus_b are swapped to be increasing for
// the comparisons; org/cur for the same anchor are swapped alongside
// them so a "shift by the nearer anchor's delta" always pairs org/cur
// from the same point.
func iupInterpolateRun(z *Zone, start, end int, touchedAbs []int, get func(Point) F26Dot6, set func(*Point, F26Dot6)) {
	n := len(touchedAbs)
	if n == 0 {
		return
	}
	span := end - start + 1
	if n == 1 {
		only := touchedAbs[0]
		delta := get(z.Cur[only]) - get(z.Org[only])
		for i := start; i <= end; i++ {
			if i == only {
				continue
			}
			set(&z.Cur[i], get(z.Org[i])+delta)
		}
		return
	}
	touched := make([]int, n)
	for k, abs := range touchedAbs {
		touched[k] = abs - start
	}
	for k := 0; k < n; k++ {
		a := touched[k]
		b := touched[(k+1)%n]
		gap := b - a
		if gap <= 0 {
			gap += span
		}
		if gap <= 1 {
			continue
		}
		orusA, orusB := get(z.Orus[start+a]), get(z.Orus[start+b])
		orgA, orgB := get(z.Org[start+a]), get(z.Org[start+b])
		curA, curB := get(z.Cur[start+a]), get(z.Cur[start+b])
		lo, hi := orusA, orusB
		orgLo, orgHi := orgA, orgB
		curLo, curHi := curA, curB
		if lo > hi {
			lo, hi = hi, lo
			orgLo, orgHi = orgHi, orgLo
			curLo, curHi = curHi, curLo
		}
		for step := 1; step < gap; step++ {
			i := (a + step) % span
			orusP := get(z.Orus[start+i])
			orgP := get(z.Org[start+i])
			var newP F26Dot6
			switch {
			case curA == curB || lo == hi:
				switch {
				case orusP < lo:
					newP = orgP + (curLo - orgLo)
				case orusP > hi:
					newP = orgP + (curHi - orgHi)
				default:
					newP = curA
				}
			case orusP <= lo:
				newP = orgP + (curLo - orgLo)
			case orusP >= hi:
				newP = orgP + (curHi - orgHi)
			default:
				newP = curA + F26Dot6(mulDiv(int32(orusP-orusA), int32(curB-curA), int32(orusB-orusA)))
			}
			set(&z.Cur[start+i], newP)
		}
	}
}

func (e *Engine) execIUP(axisX bool) error {
	z := e.glyphZone
	if z == nil {
		return nil
	}
	var mask byte
	var get func(Point) F26Dot6
	var set func(*Point, F26Dot6)
	if axisX {
		mask = TagTouchedX
		get = func(p Point) F26Dot6 { return p.X }
		set = func(p *Point, v F26Dot6) { p.X = v }
	} else {
		mask = TagTouchedY
		get = func(p Point) F26Dot6 { return p.Y }
		set = func(p *Point, v F26Dot6) { p.Y = v }
	}

	start := 0
	for _, end := range z.Contours {
		var touched []int
		for i := start; i <= end; i++ {
			if z.touchedAlong(i, mask) {
				touched = append(touched, i)
			}
		}
		iupInterpolateRun(z, start, end, touched, get, set)
		start = end + 1
	}
	return nil
}
