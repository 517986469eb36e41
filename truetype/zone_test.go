// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestNewGlyphZoneLayout checks the full shape of a freshly built glyph
// zone: outline points followed by the four phantom points, Cur seeded
// from Org, and Orus carrying the unscaled font-unit coordinates
// separately from the scaled Org ones.
func TestNewGlyphZoneLayout(t *testing.T) {
	org := []Point{{X: 100, Y: 200}}
	orus := []Point{{X: 1000, Y: 2000}}
	tags := []byte{TagOnCurve}
	contours := []int{0}
	phantomOrg := [4]Point{{X: 1}, {X: 2}, {X: 3}, {X: 4}}
	phantomOrus := [4]Point{{X: 10}, {X: 20}, {X: 30}, {X: 40}}

	got := NewGlyphZone(org, orus, tags, contours, phantomOrg, phantomOrus)

	want := &Zone{
		Org:      []Point{{X: 100, Y: 200}, {X: 1}, {X: 2}, {X: 3}, {X: 4}},
		Cur:      []Point{{X: 100, Y: 200}, {X: 1}, {X: 2}, {X: 3}, {X: 4}},
		Orus:     []Point{{X: 1000, Y: 2000}, {X: 10}, {X: 20}, {X: 30}, {X: 40}},
		Tags:     []byte{TagOnCurve, 0, 0, 0, 0},
		Contours: []int{0},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("NewGlyphZone mismatch (-want +got):\n%s", diff)
	}
}
