// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import "go.uber.org/zap"

// Config holds the per-font capacities (spec.md 6.1, "Inputs from the
// font parser") an Engine is sized for, plus engine-wide limits that are
// not tied to any one font.
type Config struct {
	UnitsPerEm int32

	MaxStackElements  int32
	MaxStorage        int32
	MaxFunctionDefs   int32
	MaxTwilightPoints int32

	// MaxInstructions bounds the number of opcodes a single program run
	// may execute before aborting with ErrInstructionLimit. The spec
	// suggests ~1,000,000 as a guard against malicious or buggy bytecode.
	MaxInstructions int

	// MaxCallStackDepth bounds CALL/LOOPCALL nesting.
	MaxCallStackDepth int

	// DeltaPointIndexOnTop resolves the DELTAP/DELTAC argument-order
	// Open Question (spec.md 9): true follows the Apple/FreeType order
	// (point or CVT index on top of the pushed pair); false pushes the
	// pair the other way around. Default true.
	DeltaPointIndexOnTop bool
}

// DefaultConfig returns sane defaults for all fields except UnitsPerEm,
// MaxStackElements, MaxStorage, MaxFunctionDefs and MaxTwilightPoints,
// which must come from the font's maxp table.
func DefaultConfig() Config {
	return Config{
		MaxInstructions:      1000000,
		MaxCallStackDepth:    32,
		DeltaPointIndexOnTop: true,
	}
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger installs a structured logger used for program-lifecycle and
// glyph-error logging (see engine.go). The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithMaxInstructions overrides Config.MaxInstructions.
func WithMaxInstructions(n int) Option {
	return func(e *Engine) { e.cfg.MaxInstructions = n }
}

// WithMaxCallStackDepth overrides Config.MaxCallStackDepth.
func WithMaxCallStackDepth(n int) Option {
	return func(e *Engine) { e.cfg.MaxCallStackDepth = n }
}

// WithDeltaPointIndexOnTop overrides Config.DeltaPointIndexOnTop.
func WithDeltaPointIndexOnTop(onTop bool) Option {
	return func(e *Engine) { e.cfg.DeltaPointIndexOnTop = onTop }
}
