// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// ZonePointer names one of the two point zones a graphics-state zone
// selector (zp0/zp1/zp2) can reference. It models the spec's "pointer
// graph" design note as a small enum rather than a borrowed reference,
// so it never dangles across a zone resize.
type ZonePointer int32

const (
	TwilightZone ZonePointer = 0
	GlyphZone    ZonePointer = 1
)

// GraphicsState is the mutable record every point-movement and
// measurement instruction reads and writes. Grounded on the teacher's
// graphicsState (hint.go), generalized to the spec's full field set
// (backward-compatibility/light-hinting flags, scan/instruct control,
// single-width cut-in, delta tuning).
type GraphicsState struct {
	ProjVector, FreeVector, DualVector Vec2

	RP0, RP1, RP2 int32
	ZP0, ZP1, ZP2 ZonePointer

	RoundState RoundState
	SuperRound roundPolicy

	Loop int32

	MinimumDistance   F26Dot6
	ControlValueCutIn F26Dot6
	SingleWidthCutIn  F26Dot6
	SingleWidthValue  F26Dot6

	DeltaBase, DeltaShift int32

	AutoFlip bool

	InstructControl uint8
	ScanControl     bool
	ScanType        int32
}

// defaultGraphicsState returns the engine-wide default graphics state,
// installed before fpgm/prep run and restored (via Engine.defaultGS)
// before every glyph program. Values mirror spec.md 3 "Graphics State".
func defaultGraphicsState() GraphicsState {
	return GraphicsState{
		ProjVector: xAxis,
		FreeVector: xAxis,
		DualVector: xAxis,
		ZP0:        GlyphZone,
		ZP1:        GlyphZone,
		ZP2:        GlyphZone,
		RoundState: RoundToGrid,
		SuperRound: roundPolicy{period: 1 << 6, phase: 0, threshold: 0},
		Loop:       1,

		MinimumDistance:   1 << 6,
		ControlValueCutIn: (17 << 6) / 16,

		DeltaBase:  9,
		DeltaShift: 3,

		AutoFlip: true,
	}
}

// zonePointer resolves a GS zone selector field (0, 1 or 2) to its
// current ZonePointer value.
func (gs *GraphicsState) zonePointer(which int) ZonePointer {
	switch which {
	case 0:
		return gs.ZP0
	case 1:
		return gs.ZP1
	default:
		return gs.ZP2
	}
}

func (gs *GraphicsState) setZonePointer(which int, z ZonePointer) {
	switch which {
	case 0:
		gs.ZP0 = z
	case 1:
		gs.ZP1 = z
	default:
		gs.ZP2 = z
	}
}

func (gs *GraphicsState) refPoint(which int) int32 {
	switch which {
	case 0:
		return gs.RP0
	case 1:
		return gs.RP1
	default:
		return gs.RP2
	}
}

func (gs *GraphicsState) setRefPoint(which int, i int32) {
	switch which {
	case 0:
		gs.RP0 = i
	case 1:
		gs.RP1 = i
	default:
		gs.RP2 = i
	}
}

// InstructControl bits (spec 4.3 INSTCTRL).
const (
	instructControlInhibitGridFit uint8 = 1 << 0
	instructControlIgnoreCVT      uint8 = 1 << 1
	instructControlSubpixelToggle uint8 = 1 << 2
)
