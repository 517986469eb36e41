// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// RoundState selects one of the eight TrueType rounding policies. It is
// grounded on the teacher's ad-hoc period/phase/threshold fields in
// graphicsState, generalized to the full spec.md 4.2 rounding table.
type RoundState int

const (
	RoundToHalfGrid RoundState = iota
	RoundToGrid
	RoundToDoubleGrid
	RoundDownToGrid
	RoundUpToGrid
	RoundOff
	RoundSuper
	RoundSuper45
)

// roundPolicy bundles the period/phase/threshold triple that parameterizes
// RoundSuper and RoundSuper45; the other six modes ignore it.
type roundPolicy struct {
	period, phase, threshold F26Dot6
}

// compensate implements the engine-compensation hook (spec 4.2). This
// engine performs no per-axis or per-color compensation, so it always
// returns zero; the slot exists so a host embedding this VM can route a
// non-zero value in without touching the rounding math itself.
func compensate(distance F26Dot6, gs *GraphicsState) F26Dot6 {
	return 0
}

// round dispatches to the active rounding mode, applying the engine
// compensation first as the spec's "distance, compensation" pair requires.
func round(distance F26Dot6, gs *GraphicsState) F26Dot6 {
	comp := compensate(distance, gs)
	return roundMode(gs.RoundState, distance, comp, gs.SuperRound)
}

func roundMode(mode RoundState, d, comp F26Dot6, sr roundPolicy) F26Dot6 {
	switch mode {
	case RoundToGrid:
		return roundToGrid(d, comp)
	case RoundToHalfGrid:
		return roundToHalfGrid(d, comp)
	case RoundToDoubleGrid:
		return roundToDoubleGrid(d, comp)
	case RoundDownToGrid:
		return roundDownToGrid(d, comp)
	case RoundUpToGrid:
		return roundUpToGrid(d, comp)
	case RoundOff:
		return d
	case RoundSuper, RoundSuper45:
		return roundSuper(d, comp, sr)
	default:
		return d
	}
}

func roundToGrid(d, comp F26Dot6) F26Dot6 {
	if d >= 0 {
		return (d + 32 + comp) &^ 63
	}
	return -((-d + 32 + comp) &^ 63)
}

func roundToHalfGrid(d, comp F26Dot6) F26Dot6 {
	if d >= 0 {
		return ((d+comp)&^63 + 32)
	}
	return -((-d+comp)&^63 + 32)
}

func roundToDoubleGrid(d, comp F26Dot6) F26Dot6 {
	if d >= 0 {
		return (d + 16 + comp) &^ 31
	}
	return -((-d + 16 + comp) &^ 31)
}

func roundDownToGrid(d, comp F26Dot6) F26Dot6 {
	if d >= 0 {
		return (d + comp) &^ 63
	}
	return -((-d + comp) &^ 63)
}

func roundUpToGrid(d, comp F26Dot6) F26Dot6 {
	if d >= 0 {
		return (d + 63 + comp) &^ 63
	}
	return -((-d + 63 + comp) &^ 63)
}

func roundSuper(d, comp F26Dot6, sr roundPolicy) F26Dot6 {
	if sr.period == 0 {
		return d
	}
	if d >= 0 {
		ret := (d - sr.phase + sr.threshold + comp) &^ (sr.period - 1)
		if d != 0 && ret < 0 {
			ret = 0
		}
		return ret + sr.phase
	}
	ret := -((-d - sr.phase + sr.threshold + comp) &^ (sr.period - 1))
	if ret > 0 {
		ret = 0
	}
	return ret - sr.phase
}

// roundWithDistanceType applies round() under the MDRP/MIRP distance-type
// override (spec.md 4.5, opcode bits 1-0): 0 keeps the ambient
// RoundState, 1-3 force ToGrid/ToHalfGrid/ToDoubleGrid for this call
// only, restoring the prior RoundState afterward.
func roundWithDistanceType(dist F26Dot6, distanceType int, gs *GraphicsState) F26Dot6 {
	if distanceType == 0 {
		return round(dist, gs)
	}
	saved := gs.RoundState
	switch distanceType {
	case 1:
		gs.RoundState = RoundToGrid
	case 2:
		gs.RoundState = RoundToHalfGrid
	case 3:
		gs.RoundState = RoundToDoubleGrid
	}
	result := round(dist, gs)
	gs.RoundState = saved
	return result
}

// parseSuperRound decodes the SROUND/S45ROUND selector byte (spec 4.2)
// into a period/phase/threshold triple. forty5 multiplies the decoded
// period by the FreeType constant 46341/65536 (~1/sqrt(2)) used for the
// 45-degree grid.
func parseSuperRound(selector int32, forty5 bool) roundPolicy {
	var period F26Dot6
	switch (selector >> 6) & 0x03 {
	case 0:
		period = 1 << 5
	case 2:
		period = 1 << 7
	default: // 1 or 3 (3 is "reserved", treated as 64 like FreeType)
		period = 1 << 6
	}
	if forty5 {
		period = F26Dot6((int64(period) * 46341) / 65536)
	}
	phase := period * F26Dot6((selector>>4)&0x03) / 4
	var threshold F26Dot6
	if bits := selector & 0x0f; bits != 0 {
		threshold = period * F26Dot6(bits-4) / 8
	} else {
		threshold = period - 1
	}
	return roundPolicy{period: period, phase: phase, threshold: threshold}
}
