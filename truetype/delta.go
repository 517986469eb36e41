// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// deltaMagnitude decodes a selector's low nibble into a signed step
// count, skipping zero: 0-7 -> -8..-1, 8-15 -> 1..8 (spec.md 4.7).
func deltaMagnitude(nibble int32) int32 {
	if nibble < 8 {
		return nibble - 8
	}
	return nibble - 7
}

// deltaDistance converts a decoded magnitude into an F26Dot6 adjustment
// using the graphics state's delta shift (default 1/8 pixel per step).
func deltaDistance(gs *GraphicsState, magnitude int32) F26Dot6 {
	shift := uint(gs.DeltaShift)
	if shift > 6 {
		shift = 6
	}
	return F26Dot6(magnitude) * F26Dot6(64>>shift)
}

// popDeltaPair reads one (selector, index) argument pair, honoring
// Config.DeltaPointIndexOnTop (spec.md 9, Open Question resolution).
func (e *Engine) popDeltaPair() (selector, index int32, err error) {
	if e.cfg.DeltaPointIndexOnTop {
		if index, err = e.pop(); err != nil {
			return
		}
		selector, err = e.pop()
		return
	}
	if selector, err = e.pop(); err != nil {
		return
	}
	index, err = e.pop()
	return
}

func (e *Engine) execDELTAP(group int32) error {
	n, err := e.pop()
	if err != nil {
		return err
	}
	z := e.zone(e.gs.ZP0)
	base := e.gs.DeltaBase + group*16
	for i := int32(0); i < n; i++ {
		selector, idx, err := e.popDeltaPair()
		if err != nil {
			return err
		}
		triggerPpem := base + (selector >> 4)
		if triggerPpem != e.ppem {
			continue
		}
		if idx < 0 || int(idx) >= z.len() {
			return e.fail(ErrBadPointIndex)
		}
		dist := deltaDistance(&e.gs, deltaMagnitude(selector&0x0f))
		e.moveAlongFreedom(z, idx, dist)
	}
	return nil
}

func (e *Engine) execDELTAC(group int32) error {
	n, err := e.pop()
	if err != nil {
		return err
	}
	base := e.gs.DeltaBase + group*16
	for i := int32(0); i < n; i++ {
		selector, idx, err := e.popDeltaPair()
		if err != nil {
			return err
		}
		triggerPpem := base + (selector >> 4)
		if triggerPpem != e.ppem {
			continue
		}
		dist := deltaDistance(&e.gs, deltaMagnitude(selector&0x0f))
		e.setCvtAt(idx, e.cvtAt(idx)+dist)
	}
	return nil
}
