// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import (
	"fmt"

	"go.uber.org/zap"
)

// CodeRange names one of the three bytecode buffers an Engine can be
// executing from (spec.md 3, "three code ranges").
type CodeRange int

const (
	RangeFont CodeRange = iota
	RangeCVT
	RangeGlyph
)

// FunctionDef is a recorded FDEF/IDEF body: bytecode offsets within the
// code range its body lives in (almost always RangeFont).
type FunctionDef struct {
	Start, End int
	Range      CodeRange
	Active     bool
}

// callRecord is a CALL/LOOPCALL activation frame.
type callRecord struct {
	callerIP    int
	callerRange CodeRange
	def         FunctionDef
	count       int32
}

// Engine is both the spec's "programs driver" and its "execution
// context": like the teacher's Hinter, it mixes three lifetimes in one
// struct -- lifetime-of-the-font (FDefs, fpgm/prep/cvt-source), per-size
// (scaled cvt, defaultGS), and per-glyph (zones, stack, gs, call stack).
// Methods and field comments call out which lifetime each belongs to.
// Per spec.md 5, an Engine is not safe for concurrent use: parallelism
// is obtained by giving each goroutine its own Engine.
type Engine struct {
	cfg Config
	log *zap.Logger

	// --- lifetime-of-the-font ---
	fpgm, prep []byte
	cvtSource  []int32
	glyphCode  []byte // most recent glyph program, for FDEFs defined inline in one
	fdefsRun   bool
	fdefs      []FunctionDef
	idefs      map[byte]FunctionDef
	storage    []int32

	// --- per-size ---
	ppem       int32
	pointSize  float64
	scaleFix   int32
	cvt        []int32
	defaultGS  GraphicsState
	sizeIsSet  bool

	// --- per-glyph (reset by HintGlyph) ---
	gs           GraphicsState
	glyphZone    *Zone
	twilightZone *Zone
	stack        []int32
	stackTop     int
	callStack    []callRecord
	code         []byte
	codeSize     int
	ip           int
	currentRange CodeRange
	instrCount  int
	err         error
	isComposite bool

	// lightMode and backwardCompat model spec.md 4.9's ClearType
	// compatibility flags: the hosting driver sets them once per glyph
	// (via GlyphInput) based on render mode. No opcode toggles
	// lightMode; INSTCTRL selector 3 switches backwardCompat between 0
	// and 4 while a glyph program runs.
	// moveAlongFreedom/execSHPIX consult them to mask movePoint's X (and,
	// once backwardCompat is fully locked at 0x7, Y) component.
	lightMode      bool
	backwardCompat uint8

	gridFitInhibited bool

	// lastStepJumped: see vm.go's setJumped.
	lastStepJumped bool
}

// NewEngine constructs an Engine sized from cfg. fpgm/prep/cvt are the
// already-parsed font program, CVT program and CVT source values (spec
// 6.1); any may be nil/empty.
func NewEngine(cfg Config, fpgm, prep []byte, cvtSource []int32, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		log:       zap.NewNop(),
		fpgm:      fpgm,
		prep:      prep,
		cvtSource: append([]int32(nil), cvtSource...),
		idefs:     make(map[byte]FunctionDef),
		storage:   make([]int32, cfg.MaxStorage),
		fdefs:     make([]FunctionDef, cfg.MaxFunctionDefs),
		stack:     make([]int32, cfg.MaxStackElements),
		callStack: make([]callRecord, 0, cfg.MaxCallStackDepth),
		defaultGS: defaultGraphicsState(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// ExecuteFontProgram runs fpgm once per engine lifetime, populating
// fdefs. It is a no-op on subsequent calls (spec.md 8, "Fpgm-once").
func (e *Engine) ExecuteFontProgram() error {
	if e.fdefsRun {
		return nil
	}
	e.fdefsRun = true
	if len(e.fpgm) == 0 {
		return nil
	}
	e.log.Debug("running font program", zap.Int("bytes", len(e.fpgm)))
	e.gs = defaultGraphicsState()
	if err := e.runProgram(e.fpgm, RangeFont); err != nil {
		e.log.Warn("font program failed", zap.Error(err))
		if he, ok := err.(*HintError); ok {
			return wrapHintError(he, "font program (fpgm)")
		}
		return err
	}
	return nil
}

// SetSize rescales the CVT for ppem and re-runs prep if ppem changed,
// snapshotting the resulting graphics state as defaultGS (spec 4.10).
func (e *Engine) SetSize(ppem int32, pointSize float64) error {
	if e.sizeIsSet && ppem == e.ppem {
		return nil
	}
	if err := e.ExecuteFontProgram(); err != nil {
		return err
	}
	e.ppem = ppem
	e.pointSize = pointSize
	e.sizeIsSet = true
	e.scaleFix = newScaleFix(ppem, e.cfg.UnitsPerEm)

	e.cvt = make([]int32, len(e.cvtSource))
	for i, v := range e.cvtSource {
		e.cvt[i] = int32(scaleFUnits(v, e.scaleFix))
	}

	e.defaultGS = defaultGraphicsState()
	e.gridFitInhibited = false
	if len(e.prep) != 0 {
		e.gs = e.defaultGS
		e.log.Debug("running prep program", zap.Int32("ppem", ppem))
		if err := e.runProgram(e.prep, RangeCVT); err != nil {
			e.log.Warn("prep program failed", zap.Error(err), zap.Int32("ppem", ppem))
			if he, ok := err.(*HintError); ok {
				return wrapHintError(he, fmt.Sprintf("cvt program (prep) at ppem %d", ppem))
			}
			return err
		}
		e.defaultGS = e.gs
	}
	return nil
}

// GlyphInput is the already-parsed, already-scaled-to-font-unit outline
// data a glyph hint pass consumes (spec 6.1).
type GlyphInput struct {
	Orus         []Point // unscaled font-unit coordinates, phantom points excluded
	OnCurve      []bool
	Contours     []int
	Instructions []byte
	IsComposite  bool
	Phantom      [4]Point // unscaled font-unit side-bearing/advance phantom points

	// LightMode and BackwardCompatibility mirror spec.md 4.9: the caller
	// sets them per glyph based on the active render mode (subpixel
	// positioning vs. grayscale/ClearType-compatible rendering).
	// BackwardCompatibility must be 0, 4, or 0x7.
	LightMode             bool
	BackwardCompatibility uint8
}

// HintGlyph scales Input into the glyph zone, resets per-glyph state,
// and runs the glyph's bytecode. It returns the zone so the caller can
// read Cur (and Tags, for diagnostics); on error the zone holds the
// scaled outline with whatever moves the glyph program made before it
// failed. The caller must have
// called SetSize at least once first.
func (e *Engine) HintGlyph(in GlyphInput) (*Zone, error) {
	if !e.sizeIsSet {
		if err := e.SetSize(e.ppem, e.pointSize); err != nil {
			return nil, err
		}
	}

	org := make([]Point, len(in.Orus))
	for i, p := range in.Orus {
		org[i] = Point{X: scaleFUnits(int32(p.X), e.scaleFix), Y: scaleFUnits(int32(p.Y), e.scaleFix)}
	}
	tags := make([]byte, len(in.Orus))
	for i, on := range in.OnCurve {
		if on {
			tags[i] = TagOnCurve
		}
	}
	phantomOrg := [4]Point{}
	for i, p := range in.Phantom {
		phantomOrg[i] = Point{X: scaleFUnits(int32(p.X), e.scaleFix), Y: scaleFUnits(int32(p.Y), e.scaleFix)}
	}

	e.glyphZone = NewGlyphZone(org, in.Orus, tags, in.Contours, phantomOrg, in.Phantom)
	e.twilightZone = NewTwilightZone(int(e.cfg.MaxTwilightPoints) + 4)

	e.gs = e.defaultGS
	e.stackTop = 0
	e.callStack = e.callStack[:0]
	e.instrCount = 0
	e.err = nil
	e.isComposite = in.IsComposite
	e.lightMode = in.LightMode
	e.backwardCompat = in.BackwardCompatibility

	if e.gridFitInhibited {
		return e.glyphZone, nil
	}
	if len(in.Instructions) == 0 {
		return e.glyphZone, nil
	}
	if err := e.runProgram(in.Instructions, RangeGlyph); err != nil {
		e.log.Warn("glyph program failed", zap.Error(err))
		if he, ok := err.(*HintError); ok {
			return e.glyphZone, wrapHintError(he, "glyph program")
		}
		return e.glyphZone, err
	}
	return e.glyphZone, nil
}

// HintedToPixels divides F26Dot6 coordinates down to float64 pixels.
func HintedToPixels(coords []Point) []float64 {
	out := make([]float64, 2*len(coords))
	for i, p := range coords {
		out[2*i] = float64(p.X) / 64
		out[2*i+1] = float64(p.Y) / 64
	}
	return out
}

func (e *Engine) zone(which ZonePointer) *Zone {
	if which == TwilightZone {
		return e.twilightZone
	}
	return e.glyphZone
}

// cvtAt returns the (already size-scaled) CVT entry at i, or 0 if i is
// out of range; RCVT/MIAP/MIRP/DELTAC treat an out-of-range read as 0,
// per the spec's "Open question -- BadCvtIndex on writes" resolution
// (silent for the read side is also accepted by real fonts).
func (e *Engine) cvtAt(i int32) F26Dot6 {
	if i < 0 || int(i) >= len(e.cvt) {
		return 0
	}
	return F26Dot6(e.cvt[i])
}

func (e *Engine) setCvtAt(i int32, v F26Dot6) {
	if i < 0 || int(i) >= len(e.cvt) {
		return
	}
	e.cvt[i] = int32(v)
}
