/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package rating

import (
	"math"
	"testing"
)

// TestExpectBandsIntegrity verifies the ladder is contiguous from 0 through
// maxBandedDiff and that the expected fractions never decrease as the rating
// difference grows.
func TestExpectBandsIntegrity(t *testing.T) {
	if expectBands[0].minDiff != 0 {
		t.Errorf("first band starts at %d; want 0", expectBands[0].minDiff)
	}
	last := expectBands[len(expectBands)-1]
	if last.maxDiff != maxBandedDiff {
		t.Errorf("last band ends at %d; want %d", last.maxDiff, maxBandedDiff)
	}

	for i, band := range expectBands {
		if band.minDiff > band.maxDiff {
			t.Errorf("band %d: minDiff %d > maxDiff %d", i, band.minDiff,
				band.maxDiff)
		}
		if band.pHigher < 0.5 || band.pHigher >= 1.0 {
			t.Errorf("band %d: pHigher = %v; want within [0.5, 1.0)", i,
				band.pHigher)
		}
		if i == 0 {
			continue
		}
		prev := expectBands[i-1]
		if band.minDiff != prev.maxDiff+1 {
			t.Errorf("band %d: starts at %d; want %d", i, band.minDiff,
				prev.maxDiff+1)
		}
		if band.pHigher < prev.pHigher {
			t.Errorf("band %d: pHigher = %v; want >= %v", i, band.pHigher,
				prev.pHigher)
		}
	}
}

// TestExpectedScoreTable verifies band boundaries and saturation with
// hand-computed values.
func TestExpectedScoreTable(t *testing.T) {
	cases := []struct {
		name     string
		player   int
		opponent int
		fullMark float64
		want     float64
	}{
		{name: "even field", player: 1500, opponent: 1500, fullMark: 4.0, want: 2.0},
		{name: "dead band upper edge", player: 1503, opponent: 1500, fullMark: 1.0, want: 0.5},
		{name: "dead band lower side", player: 1497, opponent: 1500, fullMark: 1.0, want: 0.5},
		{name: "first live band", player: 1504, opponent: 1500, fullMark: 1.0, want: 0.51},
		{name: "first live band underdog", player: 1500, opponent: 1504, fullMark: 1.0, want: 0.49},
		{name: "mid ladder", player: 1700, opponent: 1500, fullMark: 1.0, want: 0.76},
		{name: "mid ladder underdog", player: 1500, opponent: 1700, fullMark: 1.0, want: 0.24},
		{name: "ladder top", player: 2234, opponent: 1500, fullMark: 1.0, want: 0.99},
		{name: "ladder top underdog", player: 1500, opponent: 2234, fullMark: 1.0, want: 0.01},
		{name: "past ladder favorite", player: 2235, opponent: 1500, fullMark: 4.0, want: 4.0},
		{name: "past ladder underdog", player: 1500, opponent: 2235, fullMark: 4.0, want: 0.0},
		{name: "scaled by full mark", player: 1565, opponent: 1500, fullMark: 4.0, want: 2.36},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ExpectedScore(c.player, c.opponent, c.fullMark)
			if math.Abs(got-c.want) > 1e-9 {
				t.Errorf("%s: ExpectedScore(%d, %d, %v) = %v; want %v",
					c.name, c.player, c.opponent, c.fullMark, got, c.want)
			}
		})
	}
}

// TestExpectedScoreSymmetry verifies the two sides of any pairing are
// expected to split the full mark exactly.
func TestExpectedScoreSymmetry(t *testing.T) {
	const fullMark = 4.0
	base := 1500
	for diff := 0; diff <= 800; diff++ {
		high := ExpectedScore(base+diff, base, fullMark)
		low := ExpectedScore(base, base+diff, fullMark)
		if math.Abs(high+low-fullMark) > 1e-9 {
			t.Fatalf("diff %d: expected scores %v + %v do not split %v",
				diff, high, low, fullMark)
		}
	}
}
